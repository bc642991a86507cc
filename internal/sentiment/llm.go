package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
	"mood-analyzer/internal/llm"
)

const generalPrompt = `Analyze the sentiment of the following text.
Return ONLY a JSON object with two numeric fields:
- "polarity": from -1 (very negative) to 1 (very positive)
- "subjectivity": from 0 (objective) to 1 (subjective)

Text:
"""
%s
"""`

// LLMAnalyzer implementa General pidiendo polaridad/subjetividad a un LLM.
type LLMAnalyzer struct {
	client llm.LLMClient
	logger *zap.Logger
}

func NewLLMAnalyzer(client llm.LLMClient, logger *zap.Logger) *LLMAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMAnalyzer{client: client, logger: logger}
}

type llmScores struct {
	Polarity     *float64 `json:"polarity"`
	Subjectivity *float64 `json:"subjectivity"`
}

func (a *LLMAnalyzer) Analyze(ctx context.Context, text string) (domain.GeneralScores, error) {
	if strings.TrimSpace(text) == "" {
		return domain.GeneralScores{}, nil
	}

	raw, err := a.client.Generate(ctx, fmt.Sprintf(generalPrompt, text))
	if err != nil {
		return domain.GeneralScores{}, fmt.Errorf("llm sentiment: %w", err)
	}

	obj := llm.ExtractJSONObject(raw)
	if obj == "" {
		a.logger.Debug("llm sentiment without json", zap.String("raw", raw))
		return domain.GeneralScores{}, errors.New("llm sentiment: no json object in response")
	}

	var parsed llmScores
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return domain.GeneralScores{}, fmt.Errorf("llm sentiment: decode: %w", err)
	}
	if parsed.Polarity == nil || parsed.Subjectivity == nil {
		return domain.GeneralScores{}, errors.New("llm sentiment: missing polarity or subjectivity")
	}

	return domain.GeneralScores{
		Polarity:     features.Clip(*parsed.Polarity, -1, 1),
		Subjectivity: features.Clip(*parsed.Subjectivity, 0, 1),
	}, nil
}
