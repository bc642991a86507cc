package domain

// Emotion es una etiqueta discreta de una enumeración fija por modalidad.
type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAnxious   Emotion = "anxious"
	EmotionAngry     Emotion = "angry"
	EmotionCalm      Emotion = "calm"
	EmotionTired     Emotion = "tired"
	EmotionFearful   Emotion = "fearful"
	EmotionSurprised Emotion = "surprised"
	EmotionDisgusted Emotion = "disgusted"
	EmotionExcited   Emotion = "excited"
	EmotionNeutral   Emotion = "neutral"
	EmotionUnknown   Emotion = "unknown"
)

// Orden de enumeración por modalidad. El orden define el desempate del arg-max.
var (
	TextEmotions   = []Emotion{EmotionHappy, EmotionSad, EmotionAnxious, EmotionAngry, EmotionCalm, EmotionTired}
	VoiceEmotions  = []Emotion{EmotionCalm, EmotionHappy, EmotionSad, EmotionAngry, EmotionFearful, EmotionSurprised}
	FacialEmotions = []Emotion{EmotionNeutral, EmotionHappy, EmotionSad, EmotionAngry, EmotionSurprised, EmotionFearful, EmotionDisgusted}
)

// Mood del análisis de texto y del resultado combinado.
const (
	MoodPositive = "Positive"
	MoodNegative = "Negative"
	MoodNeutral  = "Neutral"
	MoodMixed    = "Mixed"
	MoodUnknown  = "Unknown"
)

// Mood agregado por preguntas (voz), en minúsculas como lo consume el frontend.
const (
	AggregateMoodPositive = "positive"
	AggregateMoodNegative = "negative"
	AggregateMoodNeutral  = "neutral"
)

// Niveles categóricos de características vocales y estrés.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"

	RateFast   = "fast"
	RateNormal = "normal"
	RateSlow   = "slow"
)

// Claves de características vocales.
const (
	CharacteristicEnergy        = "energy_level"
	CharacteristicSpeakingRate  = "speaking_rate"
	CharacteristicPitchVariance = "pitch_variation"
)

// EmotionScores acumula puntaje por etiqueta. No está normalizado; solo se usa para el arg-max.
type EmotionScores map[Emotion]float64

// ArgMax devuelve la etiqueta con mayor puntaje recorriendo order; en empate gana la primera.
// Las etiquetas ausentes del mapa cuentan como 0.
func (s EmotionScores) ArgMax(order []Emotion) (Emotion, float64) {
	if len(order) == 0 {
		return EmotionUnknown, 0
	}
	best := order[0]
	bestScore := s[best]
	for _, e := range order[1:] {
		if s[e] > bestScore {
			best = e
			bestScore = s[e]
		}
	}
	return best, bestScore
}

// Max devuelve el mayor valor acumulado (0 si el mapa está vacío).
func (s EmotionScores) Max() float64 {
	first := true
	max := 0.0
	for _, v := range s {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}
