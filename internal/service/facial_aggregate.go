package service

import (
	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

// FacialQuestion asocia un análisis facial con el índice de su pregunta.
type FacialQuestion struct {
	Index    string
	Analysis domain.FacialAnalysis
}

// FacialPlaceholder reemplaza una pregunta cuyo video no se pudo analizar.
func FacialPlaceholder() domain.FacialAnalysis {
	return domain.FacialAnalysis{
		PrimaryEmotion:  domain.EmotionNeutral,
		Recommendations: []string{unanalyzedRecording},
	}
}

// AggregatableFacial devuelve lo que la pregunta aporta al agregado: sin caras o con
// error de extracción cuenta como el placeholder neutral.
func AggregatableFacial(res domain.FacialAnalysis) domain.FacialAnalysis {
	if res.Error != "" {
		return FacialPlaceholder()
	}
	return res
}

// AggregateFacial combina los análisis por pregunta en orden de entrada.
// Las recomendaciones se concatenan sin deduplicar.
func AggregateFacial(questions []FacialQuestion) domain.FacialAggregate {
	agg := domain.FacialAggregate{
		OverallEmotion:   domain.EmotionNeutral,
		Emotions:         []domain.Emotion{},
		ConfidenceScores: []float64{},
		EmotionScores:    []float64{},
		FacialFeatures:   map[string]map[string]float64{},
		Recommendations:  []string{},
	}

	for _, q := range questions {
		a := q.Analysis
		if a.Error != "" {
			continue
		}
		agg.Emotions = append(agg.Emotions, a.PrimaryEmotion)
		agg.ConfidenceScores = append(agg.ConfidenceScores, a.Confidence)
		agg.EmotionScores = append(agg.EmotionScores, a.EmotionScore)
		if a.FeaturesSummary != nil {
			agg.FacialFeatures[q.Index] = a.FeaturesSummary
		}
		agg.Recommendations = append(agg.Recommendations, a.Recommendations...)
	}

	if len(agg.Emotions) > 0 {
		agg.OverallEmotion, _ = modeEmotion(agg.Emotions)
	}
	agg.AverageConfidence, _ = features.MeanStd(agg.ConfidenceScores)
	agg.EmotionScore, _ = features.MeanStd(agg.EmotionScores)
	agg.ConsistencyConfidence = features.ConsistencyConfidence(agg.ConfidenceScores)
	agg.QuestionsAnalyzed = len(agg.Emotions)
	return agg
}
