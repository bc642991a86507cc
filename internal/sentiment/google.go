package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

type analyzeSentimentFunc func(ctx context.Context, req *languagepb.AnalyzeSentimentRequest) (*languagepb.AnalyzeSentimentResponse, error)

// GoogleAnalyzer implementa General con Cloud Natural Language.
// La subjetividad se aproxima como magnitud media por oración, acotada a [0,1].
type GoogleAnalyzer struct {
	analyze analyzeSentimentFunc
	close   func() error
}

// NewGoogleAnalyzer crea el cliente con credenciales de service account en JSON.
func NewGoogleAnalyzer(ctx context.Context, credentialsJSON []byte) (*GoogleAnalyzer, error) {
	if len(credentialsJSON) == 0 {
		return nil, errors.New("google nl: empty credentials")
	}

	client, err := language.NewClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("google nl client: %w", err)
	}

	return &GoogleAnalyzer{
		analyze: func(ctx context.Context, req *languagepb.AnalyzeSentimentRequest) (*languagepb.AnalyzeSentimentResponse, error) {
			return client.AnalyzeSentiment(ctx, req)
		},
		close: client.Close,
	}, nil
}

func (g *GoogleAnalyzer) Analyze(ctx context.Context, text string) (domain.GeneralScores, error) {
	if strings.TrimSpace(text) == "" {
		return domain.GeneralScores{}, nil
	}

	resp, err := g.analyze(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	})
	if err != nil {
		return domain.GeneralScores{}, fmt.Errorf("google nl analyze: %w", err)
	}
	if resp.GetDocumentSentiment() == nil {
		return domain.GeneralScores{}, errors.New("google nl: missing document sentiment")
	}

	doc := resp.GetDocumentSentiment()
	sentences := len(resp.GetSentences())
	if sentences == 0 {
		sentences = 1
	}

	return domain.GeneralScores{
		Polarity:     features.Clip(float64(doc.GetScore()), -1, 1),
		Subjectivity: features.Clip(float64(doc.GetMagnitude())/float64(sentences), 0, 1),
	}, nil
}

func (g *GoogleAnalyzer) Close() error {
	if g.close == nil {
		return nil
	}
	return g.close()
}
