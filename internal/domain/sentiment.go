package domain

// LexiconScores es la salida del modelo léxico (VADER): proporciones pos/neg/neu y compound en [-1,1].
type LexiconScores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// GeneralScores es la salida del modelo general: polaridad en [-1,1] y subjetividad en [0,1].
type GeneralScores struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}
