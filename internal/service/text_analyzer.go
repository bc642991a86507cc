package service

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
	"mood-analyzer/internal/sentiment"
)

// TextAnalyzer combina sentimiento léxico, sentimiento general y palabras clave.
type TextAnalyzer struct {
	lexicon sentiment.Lexicon
	general sentiment.General
	logger  *zap.Logger
}

func NewTextAnalyzer(lex sentiment.Lexicon, general sentiment.General, logger *zap.Logger) *TextAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if general == nil {
		general = sentiment.NewLexiconGeneral(lex)
	}
	return &TextAnalyzer{lexicon: lex, general: general, logger: logger}
}

// Analyze puntúa un lote de respuestas. Nunca devuelve error: una entrada vacía produce
// un resultado con Error y mood Unknown.
func (a *TextAnalyzer) Analyze(ctx context.Context, responses []string) domain.TextAnalysis {
	if len(responses) == 0 {
		return textErrorResult("No responses provided")
	}

	text := features.CleanText(strings.Join(responses, " "))

	lex := a.lexicon.PolarityScores(text)
	general, err := a.general.Analyze(ctx, text)
	if err != nil {
		a.logger.Warn("general sentiment unavailable", zap.Error(err))
		general = domain.GeneralScores{}
	}

	detected, primary := detectKeywords(text)
	mood := textMood(lex.Compound, primary)
	words := len(strings.Fields(text))

	return domain.TextAnalysis{
		OverallMood:           mood,
		OverallSentimentScore: lex.Compound,
		SentimentBreakdown: domain.SentimentBreakdown{
			Positive: lex.Positive,
			Negative: lex.Negative,
			Neutral:  lex.Neutral,
		},
		Polarity:         general.Polarity,
		Subjectivity:     general.Subjectivity,
		DetectedEmotions: detected,
		PrimaryEmotion:   primary,
		Recommendations:  textRecommendations(mood, detected),
		Confidence:       math.Min(textConfidenceCap, float64(words)*textWordWeight+math.Abs(lex.Compound)*textCompoundWeight),
		ResponseCount:    len(responses),
		TotalWords:       words,
	}
}

func textErrorResult(msg string) domain.TextAnalysis {
	return domain.TextAnalysis{
		Error:            msg,
		OverallMood:      domain.MoodUnknown,
		DetectedEmotions: map[domain.Emotion]int{},
		PrimaryEmotion:   domain.EmotionUnknown,
		Recommendations:  []string{},
	}
}

// detectKeywords cuenta cuántas palabras distintas de cada categoría aparecen en text.
func detectKeywords(text string) (map[domain.Emotion]int, domain.Emotion) {
	detected := make(map[domain.Emotion]int)
	counts := make(domain.EmotionScores)
	for _, e := range domain.TextEmotions {
		n := 0
		for _, kw := range textKeywords[e] {
			if strings.Contains(text, kw) {
				n++
			}
		}
		if n > 0 {
			detected[e] = n
			counts[e] = float64(n)
		}
	}

	if len(detected) == 0 {
		return detected, domain.EmotionNeutral
	}
	primary, _ := counts.ArgMax(domain.TextEmotions)
	return detected, primary
}

func textMood(compound float64, primary domain.Emotion) string {
	switch {
	case compound > textPositiveCompound:
		if primary == domain.EmotionHappy || primary == domain.EmotionCalm {
			return domain.MoodPositive
		}
		return domain.MoodMixed
	case compound < textNegativeCompound:
		if primary == domain.EmotionSad || primary == domain.EmotionAnxious || primary == domain.EmotionAngry {
			return domain.MoodNegative
		}
		return domain.MoodMixed
	default:
		return domain.MoodNeutral
	}
}

func textRecommendations(mood string, detected map[domain.Emotion]int) []string {
	out := []string{}
	switch mood {
	case domain.MoodNegative:
		for _, block := range textNegativeRecommendations {
			if detected[block.emotion] > 0 {
				out = append(out, block.lines...)
			}
		}
	case domain.MoodPositive:
		out = append(out, textPositiveRecommendations...)
	default:
		out = append(out, textBalancedRecommendations...)
	}
	return out
}
