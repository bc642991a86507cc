package domain

// SentimentBreakdown reporta las proporciones del modelo léxico.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// TextAnalysis es el resultado de analizar un lote de respuestas de texto.
type TextAnalysis struct {
	Error                 string             `json:"error,omitempty"`
	OverallMood           string             `json:"overall_mood"`
	OverallSentimentScore float64            `json:"overall_sentiment_score"`
	SentimentBreakdown    SentimentBreakdown `json:"sentiment_breakdown"`
	Polarity              float64            `json:"polarity"`
	Subjectivity          float64            `json:"subjectivity"`
	DetectedEmotions      map[Emotion]int    `json:"detected_emotions"`
	PrimaryEmotion        Emotion            `json:"primary_emotion"`
	Recommendations       []string           `json:"recommendations"`
	Confidence            float64            `json:"confidence"`
	ResponseCount         int                `json:"response_count"`
	TotalWords            int                `json:"total_words"`
}

// VocalCharacteristics son etiquetas categóricas independientes derivadas del audio.
// Un campo vacío significa que la característica no está disponible.
type VocalCharacteristics struct {
	EnergyLevel    string `json:"energy_level,omitempty"`
	SpeakingRate   string `json:"speaking_rate,omitempty"`
	PitchVariation string `json:"pitch_variation,omitempty"`
}

// Values devuelve las características presentes indexadas por su clave.
func (v VocalCharacteristics) Values() map[string]string {
	out := make(map[string]string, 3)
	if v.EnergyLevel != "" {
		out[CharacteristicEnergy] = v.EnergyLevel
	}
	if v.SpeakingRate != "" {
		out[CharacteristicSpeakingRate] = v.SpeakingRate
	}
	if v.PitchVariation != "" {
		out[CharacteristicPitchVariance] = v.PitchVariation
	}
	return out
}

// VoiceAnalysis es el resultado de analizar una grabación de voz.
type VoiceAnalysis struct {
	Error                string               `json:"error,omitempty"`
	PrimaryEmotion       Emotion              `json:"primary_emotion"`
	Confidence           float64              `json:"confidence"`
	EmotionScores        EmotionScores        `json:"emotion_scores,omitempty"`
	VocalCharacteristics VocalCharacteristics `json:"vocal_characteristics"`
	Recommendations      []string             `json:"recommendations"`
	EmotionScore         float64              `json:"emotion_score"`
	AudioDuration        float64              `json:"audio_duration"`
	FeaturesExtracted    int                  `json:"features_extracted"`
}

// CharacteristicSummary resume una característica vocal a lo largo de varias grabaciones.
type CharacteristicSummary struct {
	MostCommon   string         `json:"most_common"`
	Distribution map[string]int `json:"distribution"`
	Consistency  float64        `json:"consistency"`
}

// VoiceAggregate combina los análisis de voz de varias preguntas.
type VoiceAggregate struct {
	Error                       string                           `json:"error,omitempty"`
	DominantEmotion             Emotion                          `json:"dominant_emotion"`
	OverallMood                 string                           `json:"overall_mood"`
	StressLevel                 string                           `json:"stress_level"`
	AverageConfidence           float64                          `json:"average_confidence"`
	ConsistencyConfidence       float64                          `json:"consistency_confidence"`
	EmotionScore                float64                          `json:"emotion_score"`
	EmotionDistribution         map[Emotion]int                  `json:"emotion_distribution"`
	Recommendations             []string                         `json:"comprehensive_recommendations"`
	QuestionsAnalyzed           int                              `json:"questions_analyzed"`
	VocalCharacteristicsSummary map[string]CharacteristicSummary `json:"vocal_characteristics_summary"`
}

// FacialAnalysis es el resultado de analizar un video (o una imagen) facial.
type FacialAnalysis struct {
	Error             string             `json:"error,omitempty"`
	PrimaryEmotion    Emotion            `json:"primary_emotion"`
	Confidence        float64            `json:"confidence"`
	EmotionScores     EmotionScores      `json:"emotion_scores,omitempty"`
	FeaturesSummary   map[string]float64 `json:"features_summary,omitempty"`
	Recommendations   []string           `json:"recommendations"`
	EmotionScore      float64            `json:"emotion_score"`
	FramesAnalyzed    int                `json:"frames_analyzed"`
	FacesDetected     int                `json:"faces_detected"`
	FaceDetectionRate float64            `json:"face_detection_rate"`
}

// FacialAggregate combina los análisis faciales de varias preguntas.
type FacialAggregate struct {
	Error                 string                        `json:"error,omitempty"`
	OverallEmotion        Emotion                       `json:"overall_emotion"`
	AverageConfidence     float64                       `json:"average_confidence"`
	ConsistencyConfidence float64                       `json:"consistency_confidence"`
	EmotionScore          float64                       `json:"emotion_score"`
	Emotions              []Emotion                     `json:"emotions"`
	ConfidenceScores      []float64                     `json:"confidence_scores"`
	EmotionScores         []float64                     `json:"emotion_scores"`
	FacialFeatures        map[string]map[string]float64 `json:"facial_features"`
	Recommendations       []string                      `json:"recommendations"`
	QuestionsAnalyzed     int                           `json:"questions_analyzed"`
}

// VoiceReport agrupa los análisis por pregunta y el agregado de voz.
type VoiceReport struct {
	QuestionAnalyses map[string]VoiceAnalysis `json:"question_analyses"`
	OverallAnalysis  VoiceAggregate           `json:"overall_analysis"`
}

// FacialReport agrupa los análisis por pregunta y el agregado facial.
type FacialReport struct {
	QuestionAnalyses map[string]FacialAnalysis `json:"question_analyses"`
	OverallAnalysis  FacialAggregate           `json:"overall_analysis"`
}

// IndividualAnalyses expone las entradas que alimentaron el resultado combinado.
type IndividualAnalyses struct {
	Text   *TextAnalysis    `json:"text"`
	Voice  *VoiceAggregate  `json:"voice"`
	Facial *FacialAggregate `json:"facial"`
}

// CombinedResult es el mood final a partir de hasta tres modalidades.
type CombinedResult struct {
	OverallMood        string             `json:"overall_mood"`
	Confidence         float64            `json:"confidence"`
	AverageScore       float64            `json:"average_score"`
	ModalityCount      int                `json:"modality_count"`
	Recommendations    []string           `json:"recommendations"`
	IndividualAnalyses IndividualAnalyses `json:"individual_analyses"`
}
