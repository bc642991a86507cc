package sentiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"cloud.google.com/go/language/apiv2/languagepb"
	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/llm"
)

type stubLexicon struct {
	scores domain.LexiconScores
	calls  int
}

func (s *stubLexicon) PolarityScores(string) domain.LexiconScores {
	s.calls++
	return s.scores
}

type failingGeneral struct{}

func (failingGeneral) Analyze(context.Context, string) (domain.GeneralScores, error) {
	return domain.GeneralScores{}, errors.New("provider down")
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLLMAnalyzerParsesFencedJSON(t *testing.T) {
	mock := &llm.MockClient{Response: "```json\n{\"polarity\": 0.6, \"subjectivity\": 0.8}\n```"}
	a := NewLLMAnalyzer(mock, zap.NewNop())

	got, err := a.Analyze(context.Background(), "i feel great")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got.Polarity, 0.6) || !near(got.Subjectivity, 0.8) {
		t.Fatalf("unexpected scores: %+v", got)
	}
	if mock.Calls != 1 {
		t.Fatalf("expected 1 llm call, got %d", mock.Calls)
	}
}

func TestLLMAnalyzerClipsOutOfRange(t *testing.T) {
	mock := &llm.MockClient{Response: `{"polarity": -3, "subjectivity": 1.7}`}
	got, err := NewLLMAnalyzer(mock, nil).Analyze(context.Background(), "awful")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Polarity != -1 || got.Subjectivity != 1 {
		t.Fatalf("expected clipped scores, got %+v", got)
	}
}

func TestLLMAnalyzerErrors(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		mock := &llm.MockClient{Err: errors.New("timeout")}
		if _, err := NewLLMAnalyzer(mock, nil).Analyze(context.Background(), "x"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no json", func(t *testing.T) {
		mock := &llm.MockClient{Response: "I cannot help with that"}
		if _, err := NewLLMAnalyzer(mock, nil).Analyze(context.Background(), "x"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing field", func(t *testing.T) {
		mock := &llm.MockClient{Response: `{"polarity": 0.2}`}
		if _, err := NewLLMAnalyzer(mock, nil).Analyze(context.Background(), "x"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLLMAnalyzerEmptyTextSkipsCall(t *testing.T) {
	mock := &llm.MockClient{}
	got, err := NewLLMAnalyzer(mock, nil).Analyze(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (domain.GeneralScores{}) || mock.Calls != 0 {
		t.Fatalf("expected zero scores without llm call, got %+v calls=%d", got, mock.Calls)
	}
}

func TestFallbackGeneralUsesLexiconOnError(t *testing.T) {
	lex := &stubLexicon{scores: domain.LexiconScores{Compound: -0.4, Neutral: 0.25}}
	f := NewFallbackGeneral(failingGeneral{}, lex, zap.NewNop())

	got, err := f.Analyze(context.Background(), "sad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got.Polarity, -0.4) || !near(got.Subjectivity, 0.75) {
		t.Fatalf("unexpected fallback scores: %+v", got)
	}
	if lex.calls != 1 {
		t.Fatalf("expected lexicon to be used once, got %d", lex.calls)
	}
}

func TestFallbackGeneralPrefersPrimary(t *testing.T) {
	lex := &stubLexicon{}
	primary := NewLLMAnalyzer(&llm.MockClient{Response: `{"polarity":0.1,"subjectivity":0.2}`}, nil)
	got, err := NewFallbackGeneral(primary, lex, nil).Analyze(context.Background(), "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got.Polarity, 0.1) || lex.calls != 0 {
		t.Fatalf("expected primary scores without lexicon, got %+v calls=%d", got, lex.calls)
	}
}

func TestGoogleAnalyzerMapsMagnitudePerSentence(t *testing.T) {
	var gotReq *languagepb.AnalyzeSentimentRequest
	g := &GoogleAnalyzer{
		analyze: func(_ context.Context, req *languagepb.AnalyzeSentimentRequest) (*languagepb.AnalyzeSentimentResponse, error) {
			gotReq = req
			return &languagepb.AnalyzeSentimentResponse{
				DocumentSentiment: &languagepb.Sentiment{Score: 0.5, Magnitude: 1.2},
				Sentences:         []*languagepb.Sentence{{}, {}},
			}, nil
		},
	}

	got, err := g.Analyze(context.Background(), "good day. nice weather.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got.Polarity, 0.5) || !near(got.Subjectivity, 0.6) {
		t.Fatalf("unexpected scores: %+v", got)
	}
	if gotReq.GetDocument().GetContent() != "good day. nice weather." {
		t.Fatalf("unexpected request content: %q", gotReq.GetDocument().GetContent())
	}
}

func TestGoogleAnalyzerMissingSentiment(t *testing.T) {
	g := &GoogleAnalyzer{
		analyze: func(context.Context, *languagepb.AnalyzeSentimentRequest) (*languagepb.AnalyzeSentimentResponse, error) {
			return &languagepb.AnalyzeSentimentResponse{}, nil
		},
	}
	if _, err := g.Analyze(context.Background(), "text"); err == nil {
		t.Fatalf("expected error for missing document sentiment")
	}
	if err := g.Close(); err != nil {
		t.Fatalf("close without client should be a no-op: %v", err)
	}
}

func TestVaderAnalyzerPolarity(t *testing.T) {
	v := NewVaderAnalyzer()

	pos := v.PolarityScores("i feel so happy and excited today!")
	if pos.Compound <= 0.3 {
		t.Fatalf("expected strongly positive compound, got %v", pos.Compound)
	}

	neg := v.PolarityScores("i am miserable and depressed")
	if neg.Compound >= -0.3 {
		t.Fatalf("expected strongly negative compound, got %v", neg.Compound)
	}

	general, _ := NewLexiconGeneral(v).Analyze(context.Background(), "i feel so happy and excited today!")
	if general.Polarity <= 0 || general.Subjectivity <= 0 {
		t.Fatalf("expected positive derived scores, got %+v", general)
	}
}
