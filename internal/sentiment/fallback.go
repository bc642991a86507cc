package sentiment

import (
	"context"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
)

// FallbackGeneral usa Primary y, si falla, deriva los valores del Lexicon local.
type FallbackGeneral struct {
	Primary General
	Lexicon Lexicon
	logger  *zap.Logger
}

func NewFallbackGeneral(primary General, lex Lexicon, logger *zap.Logger) *FallbackGeneral {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackGeneral{Primary: primary, Lexicon: lex, logger: logger}
}

func (f *FallbackGeneral) Analyze(ctx context.Context, text string) (domain.GeneralScores, error) {
	if f.Primary != nil {
		scores, err := f.Primary.Analyze(ctx, text)
		if err == nil {
			return scores, nil
		}
		f.logger.Warn("general sentiment failed, using lexicon fallback", zap.Error(err))
	}
	return fromLexicon(f.Lexicon.PolarityScores(text)), nil
}
