package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-analyzer/internal/repository"
)

// QuestionHandler expone el catálogo de preguntas.
type QuestionHandler struct {
	logger    *zap.Logger
	questions repository.QuestionRepository
}

func NewQuestionHandler(logger *zap.Logger, questions repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{logger: logger, questions: questions}
}

// GetQuestions maneja GET /get_questions.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questions.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list questions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load questions"})
		return
	}

	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.Text)
	}
	c.JSON(http.StatusOK, gin.H{"questions": texts})
}
