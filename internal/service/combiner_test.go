package service

import (
	"reflect"
	"testing"

	"mood-analyzer/internal/domain"
)

func TestCombinePositiveScenario(t *testing.T) {
	text := &domain.TextAnalysis{OverallSentimentScore: 0.5, Recommendations: []string{"a", "b"}}
	voice := &domain.VoiceAggregate{EmotionScore: 0.4, Recommendations: []string{"b", "c"}}

	got := Combine(text, voice, nil)

	if got.OverallMood != domain.MoodPositive {
		t.Fatalf("expected Positive, got %s", got.OverallMood)
	}
	if !approx(got.Confidence, 0.6) || !approx(got.AverageScore, 0.45) || got.ModalityCount != 2 {
		t.Fatalf("unexpected combination: %+v", got)
	}
	if !reflect.DeepEqual(got.Recommendations, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected recommendations: %+v", got.Recommendations)
	}
	if got.IndividualAnalyses.Text != text || got.IndividualAnalyses.Facial != nil {
		t.Fatalf("expected inputs to be echoed")
	}
}

func TestCombineNoModalities(t *testing.T) {
	got := Combine(nil, nil, nil)
	if got.OverallMood != domain.MoodNeutral || got.Confidence != 0 {
		t.Fatalf("unexpected empty combination: %+v", got)
	}
	if !reflect.DeepEqual(got.Recommendations, combinedFallbackRecommendations) {
		t.Fatalf("expected fallback recommendations, got %+v", got.Recommendations)
	}
}

func TestCombineSkipsErroredModalities(t *testing.T) {
	text := &domain.TextAnalysis{Error: "No responses provided", OverallSentimentScore: 0.9}
	facial := &domain.FacialAggregate{EmotionScore: -0.6}
	voice := &domain.VoiceAggregate{EmotionScore: -0.2}

	got := Combine(text, voice, facial)
	if got.ModalityCount != 2 || got.OverallMood != domain.MoodNegative {
		t.Fatalf("expected errored text to be skipped, got %+v", got)
	}
	if !approx(got.Confidence, 0.6) {
		t.Fatalf("expected confidence 0.6, got %v", got.Confidence)
	}
}

func TestCombineConfidenceCap(t *testing.T) {
	got := Combine(
		&domain.TextAnalysis{OverallSentimentScore: 0.1},
		&domain.VoiceAggregate{EmotionScore: 0.1},
		&domain.FacialAggregate{EmotionScore: 0.1},
	)
	if got.OverallMood != domain.MoodNeutral || !approx(got.Confidence, 0.9) {
		t.Fatalf("unexpected result: %+v", got)
	}
}
