package service

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
)

func TestFacialAnalyzerHappyScenario(t *testing.T) {
	a := NewFacialAnalyzer(zap.NewNop())
	got := a.Analyze(domain.FrameFeatures{
		Frames: []domain.FeatureVector{{
			domain.FeatureMeanBrightness: 150,
			domain.FeatureEyeCount:       2,
			domain.FeatureEyeSymmetry:    2,
			domain.FeatureFaceWidth:      120,
			domain.FeatureFaceHeight:     100,
		}},
		FramesDecoded: 10,
		FacesDetected: 1,
	})

	if got.PrimaryEmotion != domain.EmotionHappy {
		t.Fatalf("expected happy, got %s (%+v)", got.PrimaryEmotion, got.EmotionScores)
	}
	if !approx(got.Confidence, 0.85) {
		t.Fatalf("expected confidence 0.85, got %v", got.Confidence)
	}
	if !approx(got.EmotionScore, 0.595) {
		t.Fatalf("expected emotion score 0.595, got %v", got.EmotionScore)
	}
	if !approx(got.EmotionScores[domain.EmotionNeutral], 0.5) {
		t.Fatalf("expected neutral 0.5, got %v", got.EmotionScores[domain.EmotionNeutral])
	}
	if !reflect.DeepEqual(got.Recommendations, facialEmotionRecommendations[domain.EmotionHappy]) {
		t.Fatalf("unexpected recommendations: %+v", got.Recommendations)
	}
	if got.FeaturesSummary["average_face_width"] != 120 || got.FeaturesSummary["std_face_width"] != 0 {
		t.Fatalf("unexpected features summary: %+v", got.FeaturesSummary)
	}
	if got.FaceDetectionRate != 1 {
		t.Fatalf("expected detection rate 1, got %v", got.FaceDetectionRate)
	}
}

func TestFacialAnalyzerSadWithLowEyeVisibility(t *testing.T) {
	got := NewFacialAnalyzer(nil).Analyze(domain.FrameFeatures{
		Frames: []domain.FeatureVector{
			{"mean_brightness": 80, "eye_count": 0, "face_width": 40, "face_height": 40},
		},
		FramesDecoded: 30,
	})

	if got.PrimaryEmotion != domain.EmotionSad {
		t.Fatalf("expected sad, got %s", got.PrimaryEmotion)
	}
	if !approx(got.Confidence, 0.7) || !approx(got.EmotionScore, -0.42) {
		t.Fatalf("unexpected confidence/score %v/%v", got.Confidence, got.EmotionScore)
	}
	last := got.Recommendations[len(got.Recommendations)-1]
	if last != facialLowEyeRecommendation {
		t.Fatalf("expected low eye visibility add-on, got %+v", got.Recommendations)
	}
	if got.FacesDetected != 1 || !approx(got.FaceDetectionRate, 1.0/3.0) {
		t.Fatalf("unexpected detection stats faces=%d rate=%v", got.FacesDetected, got.FaceDetectionRate)
	}
}

func TestFacialAnalyzerAveragesKeysOfFirstFrame(t *testing.T) {
	avg, summary := summarizeFrames([]domain.FeatureVector{
		{"mean_brightness": 150, "eye_count": 2},
		{"mean_brightness": 130, "face_width": 99},
	})
	if avg["mean_brightness"] != 140 || avg["eye_count"] != 2 {
		t.Fatalf("unexpected averages: %+v", avg)
	}
	if _, ok := avg["face_width"]; ok {
		t.Fatalf("expected keys outside the first frame to be ignored")
	}
	if summary["std_mean_brightness"] != 10 {
		t.Fatalf("expected population std 10, got %v", summary["std_mean_brightness"])
	}
}

func TestFacialAnalyzerDefaultBrightnessIsNeutral(t *testing.T) {
	got := NewFacialAnalyzer(nil).Analyze(domain.FrameFeatures{
		Frames: []domain.FeatureVector{{"eye_count": 1, "face_width": 60, "face_height": 60}},
	})
	if got.PrimaryEmotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral, got %s (%+v)", got.PrimaryEmotion, got.EmotionScores)
	}
	if !approx(got.Confidence, 0.6) || got.EmotionScore != 0 {
		t.Fatalf("unexpected confidence/score %v/%v", got.Confidence, got.EmotionScore)
	}
}

func TestFacialAnalyzerNoFaces(t *testing.T) {
	got := NewFacialAnalyzer(nil).Analyze(domain.FrameFeatures{FramesDecoded: 120})
	if got.Error != "No faces detected in video" {
		t.Fatalf("unexpected error: %q", got.Error)
	}
	if got.PrimaryEmotion != domain.EmotionUnknown || got.Confidence != 0 || got.FacesDetected != 0 || got.FramesAnalyzed != 120 {
		t.Fatalf("unexpected error result: %+v", got)
	}
}

func TestFacialAnalyzerDeterminism(t *testing.T) {
	a := NewFacialAnalyzer(nil)
	in := domain.FrameFeatures{Frames: []domain.FeatureVector{
		{"mean_brightness": 145, "brightness_std": 60, "eye_count": 2, "eye_symmetry": 8},
		{"mean_brightness": 90, "brightness_std": 70, "eye_count": 1, "eye_symmetry": 3},
	}, FramesDecoded: 20}
	first := a.Analyze(in)
	if !reflect.DeepEqual(first, a.Analyze(in)) {
		t.Fatalf("expected deterministic facial result")
	}
	if first.Confidence > 0.85 {
		t.Fatalf("confidence above cap: %v", first.Confidence)
	}
}
