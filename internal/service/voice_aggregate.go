package service

import (
	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

var positiveVoiceEmotions = map[domain.Emotion]struct{}{
	domain.EmotionHappy:   {},
	domain.EmotionCalm:    {},
	domain.EmotionExcited: {},
}

var negativeVoiceEmotions = map[domain.Emotion]struct{}{
	domain.EmotionSad:     {},
	domain.EmotionAngry:   {},
	domain.EmotionFearful: {},
	domain.EmotionAnxious: {},
}

const (
	stressHighFraction   = 0.6
	stressMediumFraction = 0.3
	majorityFraction     = 0.5
)

// VoicePlaceholder reemplaza una pregunta cuya grabación no se pudo analizar.
func VoicePlaceholder() domain.VoiceAnalysis {
	return domain.VoiceAnalysis{
		PrimaryEmotion:       domain.EmotionNeutral,
		Confidence:           0.5,
		VocalCharacteristics: domain.VocalCharacteristics{EnergyLevel: domain.LevelMedium},
		Recommendations:      []string{unanalyzedRecording},
	}
}

// AggregatableVoice devuelve lo que la pregunta aporta al agregado: un resultado con error
// de extracción cuenta como el placeholder neutral.
func AggregatableVoice(res domain.VoiceAnalysis) domain.VoiceAnalysis {
	if res.Error != "" {
		return VoicePlaceholder()
	}
	return res
}

// AggregateVoice combina los análisis por pregunta en orden de entrada.
// Los resultados con Error se ignoran; si no queda ninguno se usa un único placeholder neutral.
func AggregateVoice(results []domain.VoiceAnalysis) domain.VoiceAggregate {
	var emotions []domain.Emotion
	var confidences, scores []float64
	chars := map[string][]string{}
	var charOrder []string

	for _, r := range results {
		if r.Error != "" {
			continue
		}
		emotions = append(emotions, r.PrimaryEmotion)
		confidences = append(confidences, r.Confidence)
		scores = append(scores, r.EmotionScore)
		values := r.VocalCharacteristics.Values()
		for _, key := range []string{domain.CharacteristicEnergy, domain.CharacteristicSpeakingRate, domain.CharacteristicPitchVariance} {
			v, ok := values[key]
			if !ok {
				continue
			}
			if _, seen := chars[key]; !seen {
				charOrder = append(charOrder, key)
			}
			chars[key] = append(chars[key], v)
		}
	}

	if len(emotions) == 0 {
		emotions = []domain.Emotion{domain.EmotionNeutral}
		confidences = []float64{0.5}
		scores = []float64{0}
		chars = map[string][]string{domain.CharacteristicEnergy: {domain.LevelMedium}}
		charOrder = []string{domain.CharacteristicEnergy}
	}

	dominant, distribution := modeEmotion(emotions)
	mood := voiceMood(emotions)
	stress := stressLevel(chars[domain.CharacteristicEnergy])
	avgConfidence, _ := features.MeanStd(confidences)
	avgScore, _ := features.MeanStd(scores)

	summary := make(map[string]domain.CharacteristicSummary, len(charOrder))
	for _, key := range charOrder {
		summary[key] = summarizeCharacteristic(chars[key])
	}

	return domain.VoiceAggregate{
		DominantEmotion:             dominant,
		OverallMood:                 mood,
		StressLevel:                 stress,
		AverageConfidence:           avgConfidence,
		ConsistencyConfidence:       features.ConsistencyConfidence(confidences),
		EmotionScore:                avgScore,
		EmotionDistribution:         distribution,
		Recommendations:             comprehensiveRecommendations(mood, stress, chars),
		QuestionsAnalyzed:           len(emotions),
		VocalCharacteristicsSummary: summary,
	}
}

// modeEmotion devuelve la etiqueta más frecuente (la primera vista en empate) y la distribución.
func modeEmotion(emotions []domain.Emotion) (domain.Emotion, map[domain.Emotion]int) {
	counts := make(map[domain.Emotion]int, len(emotions))
	best := domain.EmotionNeutral
	bestCount := 0
	for _, e := range emotions {
		counts[e]++
	}
	for _, e := range emotions {
		if counts[e] > bestCount {
			best = e
			bestCount = counts[e]
		}
	}
	return best, counts
}

func voiceMood(emotions []domain.Emotion) string {
	pos, neg := 0, 0
	for _, e := range emotions {
		if _, ok := positiveVoiceEmotions[e]; ok {
			pos++
		}
		if _, ok := negativeVoiceEmotions[e]; ok {
			neg++
		}
	}
	switch {
	case pos > neg:
		return domain.AggregateMoodPositive
	case neg > pos:
		return domain.AggregateMoodNegative
	default:
		return domain.AggregateMoodNeutral
	}
}

func stressLevel(energy []string) string {
	if len(energy) == 0 {
		return domain.LevelLow
	}
	high := countValue(energy, domain.LevelHigh)
	switch n := float64(len(energy)); {
	case float64(high) > n*stressHighFraction:
		return domain.LevelHigh
	case float64(high) > n*stressMediumFraction:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

func comprehensiveRecommendations(mood, stress string, chars map[string][]string) []string {
	var out []string
	out = append(out, voiceMoodRecommendations[mood]...)
	out = append(out, voiceStressRecommendations[stress]...)

	if rates := chars[domain.CharacteristicSpeakingRate]; len(rates) > 0 &&
		float64(countValue(rates, domain.RateFast)) > float64(len(rates))*majorityFraction {
		out = append(out, voiceFastRateMajority)
	}
	if energy := chars[domain.CharacteristicEnergy]; len(energy) > 0 &&
		float64(countValue(energy, domain.LevelLow)) > float64(len(energy))*majorityFraction {
		out = append(out, voiceLowEnergyMajority)
	}
	return dedupe(out)
}

func summarizeCharacteristic(values []string) domain.CharacteristicSummary {
	dist := make(map[string]int, len(values))
	for _, v := range values {
		dist[v]++
	}
	most, mostCount := "", 0
	for _, v := range values {
		if dist[v] > mostCount {
			most = v
			mostCount = dist[v]
		}
	}
	consistency := 0.0
	if len(values) > 0 {
		consistency = float64(mostCount) / float64(len(values))
	}
	return domain.CharacteristicSummary{
		MostCommon:   most,
		Distribution: dist,
		Consistency:  consistency,
	}
}

func countValue(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
