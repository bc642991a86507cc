// Package sentiment agrupa los proveedores de sentimiento que usa el analizador de texto:
// un modelo léxico (VADER) y un modelo general de polaridad/subjetividad intercambiable.
package sentiment

import (
	"context"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

// Lexicon devuelve proporciones pos/neg/neu y un compound normalizado.
type Lexicon interface {
	PolarityScores(text string) domain.LexiconScores
}

// General devuelve polaridad en [-1,1] y subjetividad en [0,1].
type General interface {
	Analyze(ctx context.Context, text string) (domain.GeneralScores, error)
}

// LexiconGeneral deriva polaridad/subjetividad de un Lexicon local; nunca falla.
type LexiconGeneral struct {
	Lexicon Lexicon
}

func NewLexiconGeneral(lex Lexicon) *LexiconGeneral {
	return &LexiconGeneral{Lexicon: lex}
}

func (g *LexiconGeneral) Analyze(_ context.Context, text string) (domain.GeneralScores, error) {
	return fromLexicon(g.Lexicon.PolarityScores(text)), nil
}

func fromLexicon(s domain.LexiconScores) domain.GeneralScores {
	return domain.GeneralScores{
		Polarity:     features.Clip(s.Compound, -1, 1),
		Subjectivity: features.Clip(1-s.Neutral, 0, 1),
	}
}
