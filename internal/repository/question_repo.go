package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"mood-analyzer/internal/domain"
)

type QuestionRepository interface {
	List(ctx context.Context) ([]domain.Question, error)
}

type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

func (r *PgQuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	const query = `
		SELECT id, text, position
		FROM questions
		WHERE active
		ORDER BY position ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Position); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// FileQuestionRepository lee el catálogo desde un archivo YAML (o JSON).
// Acepta items como texto plano o como objetos {id, text, position}.
type FileQuestionRepository struct {
	path string
}

func NewFileQuestionRepository(path string) *FileQuestionRepository {
	return &FileQuestionRepository{path: path}
}

type questionFile struct {
	Questions []fileQuestion `yaml:"questions"`
}

type fileQuestion domain.Question

func (q *fileQuestion) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		q.Text = node.Value
		return nil
	}
	var full domain.Question
	if err := node.Decode(&full); err != nil {
		return err
	}
	*q = fileQuestion(full)
	return nil
}

func (r *FileQuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, r.path)
		}
		return nil, err
	}

	var parsed questionFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}

	out := make([]domain.Question, 0, len(parsed.Questions))
	for i, q := range parsed.Questions {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			continue
		}
		if q.ID == 0 {
			q.ID = i + 1
		}
		if q.Position == 0 {
			q.Position = i
		}
		q.Text = text
		out = append(out, domain.Question(q))
	}
	return out, nil
}

// QuestionCatalog consulta las fuentes en orden y cae a las preguntas por defecto.
type QuestionCatalog struct {
	sources []QuestionRepository
	logger  *zap.Logger
}

func NewQuestionCatalog(logger *zap.Logger, sources ...QuestionRepository) *QuestionCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionCatalog{sources: sources, logger: logger}
}

func (c *QuestionCatalog) List(ctx context.Context) ([]domain.Question, error) {
	for _, src := range c.sources {
		if src == nil {
			continue
		}
		questions, err := src.List(ctx)
		if err != nil {
			c.logger.Warn("question source failed", zap.String("source", fmt.Sprintf("%T", src)), zap.Error(err))
			continue
		}
		if len(questions) > 0 {
			return questions, nil
		}
	}
	return defaultQuestions(), nil
}

func defaultQuestions() []domain.Question {
	out := make([]domain.Question, len(domain.DefaultQuestions))
	for i, text := range domain.DefaultQuestions {
		out[i] = domain.Question{ID: i + 1, Text: text, Position: i}
	}
	return out
}
