package service

import (
	"math"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
)

// VoiceAnalyzer clasifica una grabación a partir de sus características de audio.
type VoiceAnalyzer struct {
	logger *zap.Logger
}

func NewVoiceAnalyzer(logger *zap.Logger) *VoiceAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VoiceAnalyzer{logger: logger}
}

func (a *VoiceAnalyzer) Analyze(in domain.AudioFeatures) domain.VoiceAnalysis {
	if len(in.Features) == 0 {
		return voiceErrorResult("Could not extract audio features")
	}
	if err := in.Features.Validate(); err != nil {
		return voiceErrorResult("Analysis failed: " + err.Error())
	}

	scores := domain.EmotionScores{}
	for _, e := range domain.VoiceEmotions {
		scores[e] = 0
	}
	fired := applyRules(voiceRules, in.Features, scores)
	if scores.Max() < voiceWeakSignal {
		scores[domain.EmotionCalm] = voiceCalmFallback
	}

	emotion, score := scores.ArgMax(domain.VoiceEmotions)
	confidence := math.Min(voiceConfidenceCap, score+voiceConfidenceBoost)
	traits := vocalCharacteristics(in.Features)

	a.logger.Debug("voice classified",
		zap.String("emotion", string(emotion)),
		zap.Float64("confidence", confidence),
		zap.Strings("rules", fired),
	)

	return domain.VoiceAnalysis{
		PrimaryEmotion:       emotion,
		Confidence:           confidence,
		EmotionScores:        scores,
		VocalCharacteristics: traits,
		Recommendations:      voiceRecommendations(emotion, traits),
		EmotionScore:         voiceEmotionScore(emotion, confidence),
		AudioDuration:        in.DurationSeconds,
		FeaturesExtracted:    len(in.Features),
	}
}

// voiceErrorResult construye el resultado de error; emotion_score queda en 0.
func voiceErrorResult(msg string) domain.VoiceAnalysis {
	return domain.VoiceAnalysis{
		Error:           msg,
		PrimaryEmotion:  domain.EmotionUnknown,
		Recommendations: []string{},
	}
}

func vocalCharacteristics(f domain.FeatureVector) domain.VocalCharacteristics {
	var c domain.VocalCharacteristics

	switch rms := f.Get(domain.FeatureRMSMean); {
	case rms > 0.025:
		c.EnergyLevel = domain.LevelHigh
	case rms > 0.015:
		c.EnergyLevel = domain.LevelMedium
	default:
		c.EnergyLevel = domain.LevelLow
	}

	switch zcr := f.Get(domain.FeatureZCRMean); {
	case zcr > 0.15:
		c.SpeakingRate = domain.RateFast
	case zcr > 0.08:
		c.SpeakingRate = domain.RateNormal
	default:
		c.SpeakingRate = domain.RateSlow
	}

	switch spread := f.Get(domain.FeatureSpectralCentroidStd); {
	case spread > 600:
		c.PitchVariation = domain.LevelHigh
	case spread > 300:
		c.PitchVariation = domain.LevelMedium
	default:
		c.PitchVariation = domain.LevelLow
	}

	return c
}

func voiceRecommendations(emotion domain.Emotion, c domain.VocalCharacteristics) []string {
	out := append([]string{}, voiceEmotionRecommendations[emotion]...)
	if c.EnergyLevel == domain.LevelLow {
		out = append(out, voiceLowEnergyRecommendation)
	}
	if c.SpeakingRate == domain.RateFast {
		out = append(out, voiceFastRateRecommendation)
	}
	return out
}

// voiceEmotionScore: happy/calm positivos, sad/angry/fearful negativos, surprised sin signo.
func voiceEmotionScore(emotion domain.Emotion, confidence float64) float64 {
	switch emotion {
	case domain.EmotionHappy, domain.EmotionCalm:
		return confidence * voiceScoreWeight
	case domain.EmotionSad, domain.EmotionAngry, domain.EmotionFearful:
		return -confidence * voiceScoreWeight
	default:
		return 0
	}
}
