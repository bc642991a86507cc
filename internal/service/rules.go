package service

import "mood-analyzer/internal/domain"

// scoreRule suma deltas al mapa de puntajes cuando when se cumple.
// Las reglas se aplican en orden y no son excluyentes.
type scoreRule struct {
	name   string
	when   func(f domain.FeatureVector) bool
	deltas map[domain.Emotion]float64
}

func applyRules(rules []scoreRule, f domain.FeatureVector, scores domain.EmotionScores) []string {
	var fired []string
	for _, r := range rules {
		if !r.when(f) {
			continue
		}
		for e, d := range r.deltas {
			scores[e] += d
		}
		fired = append(fired, r.name)
	}
	return fired
}

// Umbrales del clasificador de voz.
const (
	voiceHighEnergy      = 0.02
	voiceFastTempo       = 120.0
	voiceBrightCentroid  = 2000.0
	voiceLowEnergy       = 0.015
	voiceLowZCR          = 0.1
	voiceCentroidSpread  = 500.0
	voiceWeakSignal      = 0.1
	voiceCalmFallback    = 0.5
	voiceConfidenceBoost = 0.3
	voiceConfidenceCap   = 0.95
	voiceScoreWeight     = 0.7
)

func energeticVoice(f domain.FeatureVector) bool {
	return f.Get(domain.FeatureRMSMean) > voiceHighEnergy && f.Get(domain.FeatureTempo) > voiceFastTempo
}

func quietVoice(f domain.FeatureVector) bool {
	return !energeticVoice(f) && f.Get(domain.FeatureRMSMean) < voiceLowEnergy
}

var voiceRules = []scoreRule{
	{
		name: "energetic_bright",
		when: func(f domain.FeatureVector) bool {
			return energeticVoice(f) && f.Get(domain.FeatureSpectralCentroidMean) > voiceBrightCentroid
		},
		deltas: map[domain.Emotion]float64{domain.EmotionHappy: 0.4},
	},
	{
		name: "energetic_dark",
		when: func(f domain.FeatureVector) bool {
			return energeticVoice(f) && f.Get(domain.FeatureSpectralCentroidMean) <= voiceBrightCentroid
		},
		deltas: map[domain.Emotion]float64{domain.EmotionAngry: 0.3},
	},
	{
		name: "quiet_steady",
		when: func(f domain.FeatureVector) bool {
			return quietVoice(f) && f.Get(domain.FeatureZCRMean) < voiceLowZCR
		},
		deltas: map[domain.Emotion]float64{domain.EmotionSad: 0.3},
	},
	{
		name: "quiet_noisy",
		when: func(f domain.FeatureVector) bool {
			return quietVoice(f) && f.Get(domain.FeatureZCRMean) >= voiceLowZCR
		},
		deltas: map[domain.Emotion]float64{domain.EmotionCalm: 0.4},
	},
	{
		name: "centroid_spread",
		when: func(f domain.FeatureVector) bool {
			return f.Get(domain.FeatureSpectralCentroidStd) > voiceCentroidSpread
		},
		deltas: map[domain.Emotion]float64{domain.EmotionFearful: 0.2, domain.EmotionSurprised: 0.2},
	},
}

// Umbrales del clasificador facial.
const (
	facialBaseline          = 0.4
	facialDefaultBrightness = 128.0
	facialBright            = 140.0
	facialDark              = 100.0
	facialSymmetric         = 5.0
	facialBrightnessSpread  = 50.0
	facialLargeFace         = 10000.0
	facialSmallFace         = 3000.0
	facialConfidenceBoost   = 0.2
	facialConfidenceCap     = 0.85
	facialLowEyeVisibility  = 1.0
)

func brightness(f domain.FeatureVector) float64 {
	return f.GetOr(domain.FeatureMeanBrightness, facialDefaultBrightness)
}

func faceArea(f domain.FeatureVector) float64 {
	return f.Get(domain.FeatureFaceWidth) * f.Get(domain.FeatureFaceHeight)
}

var facialRules = []scoreRule{
	{
		name:   "bright_face",
		when:   func(f domain.FeatureVector) bool { return brightness(f) > facialBright },
		deltas: map[domain.Emotion]float64{domain.EmotionHappy: 0.3},
	},
	{
		name:   "dark_face",
		when:   func(f domain.FeatureVector) bool { return brightness(f) < facialDark },
		deltas: map[domain.Emotion]float64{domain.EmotionSad: 0.2},
	},
	{
		name:   "both_eyes",
		when:   func(f domain.FeatureVector) bool { return f.Get(domain.FeatureEyeCount) >= 2 },
		deltas: map[domain.Emotion]float64{domain.EmotionHappy: 0.2},
	},
	{
		name: "symmetric_eyes",
		when: func(f domain.FeatureVector) bool {
			return f.Get(domain.FeatureEyeCount) >= 2 && f.Get(domain.FeatureEyeSymmetry) < facialSymmetric
		},
		deltas: map[domain.Emotion]float64{domain.EmotionHappy: 0.1, domain.EmotionNeutral: 0.1},
	},
	{
		name:   "no_eyes",
		when:   func(f domain.FeatureVector) bool { return f.Get(domain.FeatureEyeCount) == 0 },
		deltas: map[domain.Emotion]float64{domain.EmotionSad: 0.2},
	},
	{
		name:   "brightness_spread",
		when:   func(f domain.FeatureVector) bool { return f.Get(domain.FeatureBrightnessStd) > facialBrightnessSpread },
		deltas: map[domain.Emotion]float64{domain.EmotionSurprised: 0.2, domain.EmotionFearful: 0.1},
	},
	{
		name:   "large_face",
		when:   func(f domain.FeatureVector) bool { return faceArea(f) > facialLargeFace },
		deltas: map[domain.Emotion]float64{domain.EmotionHappy: 0.1},
	},
	{
		name:   "small_face",
		when:   func(f domain.FeatureVector) bool { return faceArea(f) < facialSmallFace },
		deltas: map[domain.Emotion]float64{domain.EmotionSad: 0.1},
	},
}

// facialPolarity pondera la confianza facial para el puntaje combinable.
var facialPolarity = map[domain.Emotion]float64{
	domain.EmotionHappy:     0.7,
	domain.EmotionSad:       -0.6,
	domain.EmotionAngry:     -0.8,
	domain.EmotionSurprised: 0.3,
	domain.EmotionFearful:   -0.7,
	domain.EmotionDisgusted: -0.5,
	domain.EmotionNeutral:   0.0,
}

// Palabras clave por categoría de texto. Se cuentan como subcadenas del texto limpio.
var textKeywords = map[domain.Emotion][]string{
	domain.EmotionHappy:   {"happy", "joy", "excited", "great", "wonderful", "amazing", "fantastic", "delighted"},
	domain.EmotionSad:     {"sad", "depressed", "miserable", "unhappy", "down", "blue", "gloomy", "melancholy"},
	domain.EmotionAnxious: {"anxious", "worried", "nervous", "stressed", "tense", "fearful", "panicked", "overwhelmed"},
	domain.EmotionAngry:   {"angry", "furious", "mad", "irritated", "frustrated", "annoyed", "rage", "livid"},
	domain.EmotionCalm:    {"calm", "peaceful", "relaxed", "serene", "tranquil", "content", "at ease", "comfortable"},
	domain.EmotionTired:   {"tired", "exhausted", "fatigued", "weary", "drained", "sleepy", "lethargic", "restless"},
}

const (
	textPositiveCompound = 0.3
	textNegativeCompound = -0.3
	textWordWeight       = 0.01
	textCompoundWeight   = 0.5
	textConfidenceCap    = 0.95
)
