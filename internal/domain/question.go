package domain

// Question es una pregunta del cuestionario mostrada al usuario.
type Question struct {
	ID       int    `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Position int    `json:"position" yaml:"position"`
}

// DefaultQuestions se usa cuando no hay catálogo configurado.
var DefaultQuestions = []string{
	"How was your day today?",
	"Have you been feeling anxious or overwhelmed lately?",
	"Can you share something that made you smile recently?",
	"How are your sleeping patterns lately?",
	"Do you often feel tired or restless?",
}
