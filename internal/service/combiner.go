package service

import (
	"math"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

const (
	combinedPositive      = 0.3
	combinedNegative      = -0.3
	combinedPerModality   = 0.3
	combinedConfidenceCap = 0.95
)

// Combine promedia los puntajes de las modalidades disponibles. Una modalidad con Error se omite.
func Combine(text *domain.TextAnalysis, voice *domain.VoiceAggregate, facial *domain.FacialAggregate) domain.CombinedResult {
	var scores []float64
	var recs []string

	if text != nil && text.Error == "" {
		scores = append(scores, text.OverallSentimentScore)
		recs = append(recs, text.Recommendations...)
	}
	if voice != nil && voice.Error == "" {
		scores = append(scores, voice.EmotionScore)
		recs = append(recs, voice.Recommendations...)
	}
	if facial != nil && facial.Error == "" {
		scores = append(scores, facial.EmotionScore)
		recs = append(recs, facial.Recommendations...)
	}

	res := domain.CombinedResult{
		OverallMood:     domain.MoodNeutral,
		ModalityCount:   len(scores),
		Recommendations: dedupe(recs),
		IndividualAnalyses: domain.IndividualAnalyses{
			Text:   text,
			Voice:  voice,
			Facial: facial,
		},
	}

	if len(scores) > 0 {
		avg, _ := features.MeanStd(scores)
		res.AverageScore = avg
		switch {
		case avg > combinedPositive:
			res.OverallMood = domain.MoodPositive
		case avg < combinedNegative:
			res.OverallMood = domain.MoodNegative
		}
		res.Confidence = math.Min(combinedConfidenceCap, float64(len(scores))*combinedPerModality)
	}

	if len(res.Recommendations) == 0 {
		res.Recommendations = append([]string{}, combinedFallbackRecommendations...)
	}
	return res
}
