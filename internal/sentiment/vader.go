package sentiment

import (
	"github.com/jonreiter/govader"

	"mood-analyzer/internal/domain"
)

// VaderAnalyzer implementa Lexicon con el léxico VADER embebido en govader.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderAnalyzer) PolarityScores(text string) domain.LexiconScores {
	s := v.analyzer.PolarityScores(text)
	return domain.LexiconScores{
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Compound: s.Compound,
	}
}
