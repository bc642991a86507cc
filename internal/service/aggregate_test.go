package service

import (
	"reflect"
	"testing"

	"mood-analyzer/internal/domain"
)

func voiceResult(e domain.Emotion, conf, score float64, energy, rate string) domain.VoiceAnalysis {
	return domain.VoiceAnalysis{
		PrimaryEmotion: e,
		Confidence:     conf,
		EmotionScore:   score,
		VocalCharacteristics: domain.VocalCharacteristics{
			EnergyLevel:    energy,
			SpeakingRate:   rate,
			PitchVariation: domain.LevelLow,
		},
	}
}

func TestAggregateVoicePositiveHighStress(t *testing.T) {
	got := AggregateVoice([]domain.VoiceAnalysis{
		voiceResult(domain.EmotionHappy, 0.7, 0.49, "high", "normal"),
		voiceResult(domain.EmotionSad, 0.6, -0.42, "low", "slow"),
		voiceResult(domain.EmotionHappy, 0.8, 0.56, "high", "normal"),
	})

	if got.DominantEmotion != domain.EmotionHappy || got.OverallMood != "positive" {
		t.Fatalf("unexpected dominant/mood: %s/%s", got.DominantEmotion, got.OverallMood)
	}
	if got.StressLevel != domain.LevelHigh {
		t.Fatalf("expected high stress, got %s", got.StressLevel)
	}
	if !approx(got.AverageConfidence, 0.7) || !approx(got.EmotionScore, 0.21) {
		t.Fatalf("unexpected averages conf=%v score=%v", got.AverageConfidence, got.EmotionScore)
	}
	if got.QuestionsAnalyzed != 3 || got.EmotionDistribution[domain.EmotionHappy] != 2 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	want := append(append([]string{}, voiceMoodRecommendations["positive"]...), voiceStressRecommendations["high"]...)
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("unexpected recommendations: %+v", got.Recommendations)
	}
	energy := got.VocalCharacteristicsSummary[domain.CharacteristicEnergy]
	if energy.MostCommon != "high" || !approx(energy.Consistency, 2.0/3.0) || energy.Distribution["low"] != 1 {
		t.Fatalf("unexpected energy summary: %+v", energy)
	}
	if got.ConsistencyConfidence <= 0 || got.ConsistencyConfidence > 0.95 {
		t.Fatalf("consistency confidence out of range: %v", got.ConsistencyConfidence)
	}
}

func TestAggregateVoiceTiesAndMajorities(t *testing.T) {
	got := AggregateVoice([]domain.VoiceAnalysis{
		voiceResult(domain.EmotionSad, 0.6, -0.42, "low", "fast"),
		voiceResult(domain.EmotionHappy, 0.7, 0.49, "low", "fast"),
	})

	if got.DominantEmotion != domain.EmotionSad {
		t.Fatalf("expected first-seen on tie, got %s", got.DominantEmotion)
	}
	if got.OverallMood != "neutral" || got.StressLevel != domain.LevelLow {
		t.Fatalf("unexpected mood/stress: %s/%s", got.OverallMood, got.StressLevel)
	}
	want := []string{voiceFastRateMajority, voiceLowEnergyMajority}
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("unexpected recommendations: %+v", got.Recommendations)
	}
}

func TestAggregateVoiceMediumStressAndDedupe(t *testing.T) {
	got := AggregateVoice([]domain.VoiceAnalysis{
		voiceResult(domain.EmotionAngry, 0.6, -0.42, "high", "normal"),
		voiceResult(domain.EmotionFearful, 0.5, -0.35, "medium", "normal"),
		voiceResult(domain.EmotionSad, 0.6, -0.42, "medium", "normal"),
	})
	if got.OverallMood != "negative" || got.StressLevel != domain.LevelMedium {
		t.Fatalf("unexpected mood/stress: %s/%s", got.OverallMood, got.StressLevel)
	}
	if len(got.Recommendations) != len(dedupe(got.Recommendations)) {
		t.Fatalf("expected deduplicated recommendations")
	}
}

func TestAggregateVoiceFallsBackWhenNothingAnalyzed(t *testing.T) {
	got := AggregateVoice([]domain.VoiceAnalysis{voiceErrorResult("Could not extract audio features")})
	if got.DominantEmotion != domain.EmotionNeutral || got.AverageConfidence != 0.5 || got.QuestionsAnalyzed != 1 {
		t.Fatalf("unexpected fallback aggregate: %+v", got)
	}
	if got.VocalCharacteristicsSummary[domain.CharacteristicEnergy].MostCommon != domain.LevelMedium {
		t.Fatalf("expected medium energy fallback, got %+v", got.VocalCharacteristicsSummary)
	}
	if got.Recommendations == nil {
		t.Fatalf("expected non-nil recommendations")
	}
}

func TestVoicePlaceholderCountsAsNeutral(t *testing.T) {
	got := AggregateVoice([]domain.VoiceAnalysis{
		VoicePlaceholder(),
		voiceResult(domain.EmotionHappy, 0.7, 0.49, "high", "normal"),
	})
	if got.QuestionsAnalyzed != 2 || got.DominantEmotion != domain.EmotionNeutral {
		t.Fatalf("expected placeholder to be aggregated first, got %+v", got)
	}
	if !approx(got.EmotionScore, 0.245) {
		t.Fatalf("expected mean emotion score 0.245, got %v", got.EmotionScore)
	}
}

func TestAggregateFacial(t *testing.T) {
	happy := domain.FacialAnalysis{
		PrimaryEmotion:  domain.EmotionHappy,
		Confidence:      0.85,
		EmotionScore:    0.595,
		FeaturesSummary: map[string]float64{"average_eye_count": 2},
		Recommendations: []string{"Continue with activities that bring you joy"},
	}
	got := AggregateFacial([]FacialQuestion{
		{Index: "0", Analysis: happy},
		{Index: "1", Analysis: FacialPlaceholder()},
		{Index: "2", Analysis: facialErrorResult("No faces detected in video")},
		{Index: "3", Analysis: happy},
	})

	if got.OverallEmotion != domain.EmotionHappy || got.QuestionsAnalyzed != 3 {
		t.Fatalf("unexpected overall: %+v", got)
	}
	if !approx(got.AverageConfidence, 1.7/3) || !approx(got.EmotionScore, 1.19/3) {
		t.Fatalf("unexpected averages conf=%v score=%v", got.AverageConfidence, got.EmotionScore)
	}
	if len(got.Recommendations) != 3 {
		t.Fatalf("expected recommendations concatenated without dedup, got %+v", got.Recommendations)
	}
	if _, ok := got.FacialFeatures["0"]; !ok || len(got.FacialFeatures) != 2 {
		t.Fatalf("unexpected facial features: %+v", got.FacialFeatures)
	}
}

func TestAggregateFacialEmpty(t *testing.T) {
	got := AggregateFacial(nil)
	if got.OverallEmotion != domain.EmotionNeutral || got.AverageConfidence != 0 || got.EmotionScore != 0 {
		t.Fatalf("unexpected empty aggregate: %+v", got)
	}
}

func TestAggregatableSwapsExtractionErrorsForPlaceholders(t *testing.T) {
	voice := AggregatableVoice(voiceErrorResult("Could not extract audio features"))
	if voice.Error != "" || voice.PrimaryEmotion != domain.EmotionNeutral || voice.Confidence != 0.5 {
		t.Fatalf("expected voice placeholder, got %+v", voice)
	}
	ok := voiceResult(domain.EmotionHappy, 0.7, 0.49, "high", "normal")
	if got := AggregatableVoice(ok); got.PrimaryEmotion != domain.EmotionHappy || got.Confidence != 0.7 {
		t.Fatalf("expected analyzed voice result untouched, got %+v", got)
	}

	facial := AggregatableFacial(facialErrorResult("No faces detected in video"))
	if facial.Error != "" || facial.PrimaryEmotion != domain.EmotionNeutral || facial.Confidence != 0 {
		t.Fatalf("expected facial placeholder, got %+v", facial)
	}

	got := AggregateFacial([]FacialQuestion{
		{Index: "0", Analysis: domain.FacialAnalysis{PrimaryEmotion: domain.EmotionHappy, Confidence: 0.8}},
		{Index: "1", Analysis: AggregatableFacial(facialErrorResult("No faces detected in video"))},
	})
	if got.QuestionsAnalyzed != 2 || !approx(got.AverageConfidence, 0.4) {
		t.Fatalf("expected placeholder in facial aggregate, got %+v", got)
	}
}
