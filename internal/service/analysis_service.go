package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/extractor"
)

// MediaUpload es un archivo temporal asociado al índice de su pregunta.
type MediaUpload struct {
	Index string
	Path  string
}

// CombinedInput son las entradas opcionales del análisis combinado.
type CombinedInput struct {
	TextResponses []string
	Voice         *domain.VoiceAggregate
	Facial        *domain.FacialAggregate
}

// AnalysisService orquesta extracción, puntuación y agregación por solicitud.
type AnalysisService struct {
	logger    *zap.Logger
	text      *TextAnalyzer
	voice     *VoiceAnalyzer
	facial    *FacialAnalyzer
	extractor extractor.Client
}

func NewAnalysisService(logger *zap.Logger, text *TextAnalyzer, voice *VoiceAnalyzer, facial *FacialAnalyzer, ext extractor.Client) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		logger:    logger,
		text:      text,
		voice:     voice,
		facial:    facial,
		extractor: ext,
	}
}

func (s *AnalysisService) AnalyzeText(ctx context.Context, responses []string) (domain.TextAnalysis, error) {
	res := s.text.Analyze(ctx, responses)
	if res.Error != "" {
		return res, fmt.Errorf("%w: %s", domain.ErrNoInput, res.Error)
	}
	return res, nil
}

func (s *AnalysisService) AnalyzeVoice(ctx context.Context, uploads []MediaUpload) (domain.VoiceReport, error) {
	if len(uploads) == 0 {
		return domain.VoiceReport{}, fmt.Errorf("%w: no audio files provided", domain.ErrNoInput)
	}

	ordered := sortUploads(uploads)
	perQuestion := make(map[string]domain.VoiceAnalysis, len(ordered))
	results := make([]domain.VoiceAnalysis, 0, len(ordered))

	for _, up := range ordered {
		if err := ctx.Err(); err != nil {
			return domain.VoiceReport{}, err
		}
		shown, aggregated := s.analyzeVoiceQuestion(ctx, up)
		perQuestion[up.Index] = shown
		results = append(results, aggregated)
	}

	return domain.VoiceReport{
		QuestionAnalyses: perQuestion,
		OverallAnalysis:  AggregateVoice(results),
	}, nil
}

// analyzeVoiceQuestion devuelve el resultado visible por pregunta y el que entra al agregado.
// Un archivo inexistente queda fuera del agregado; cualquier otra falla aporta el placeholder.
func (s *AnalysisService) analyzeVoiceQuestion(ctx context.Context, up MediaUpload) (domain.VoiceAnalysis, domain.VoiceAnalysis) {
	feats, err := s.extractor.AudioFeatures(ctx, up.Path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			res := voiceErrorResult("Audio file not found")
			return res, res
		}
		s.logger.Warn("voice extraction failed", zap.String("question", up.Index), zap.Error(err))
		placeholder := VoicePlaceholder()
		return placeholder, placeholder
	}

	res := s.voice.Analyze(feats)
	if res.Error != "" {
		s.logger.Warn("voice question degraded", zap.String("question", up.Index), zap.String("reason", res.Error))
	}
	return res, AggregatableVoice(res)
}

func (s *AnalysisService) AnalyzeFacial(ctx context.Context, uploads []MediaUpload) (domain.FacialReport, error) {
	if len(uploads) == 0 {
		return domain.FacialReport{}, fmt.Errorf("%w: no video files provided", domain.ErrNoInput)
	}

	ordered := sortUploads(uploads)
	perQuestion := make(map[string]domain.FacialAnalysis, len(ordered))
	questions := make([]FacialQuestion, 0, len(ordered))

	for _, up := range ordered {
		if err := ctx.Err(); err != nil {
			return domain.FacialReport{}, err
		}
		shown, aggregated := s.analyzeFacialQuestion(ctx, up)
		perQuestion[up.Index] = shown
		questions = append(questions, FacialQuestion{Index: up.Index, Analysis: aggregated})
	}

	return domain.FacialReport{
		QuestionAnalyses: perQuestion,
		OverallAnalysis:  AggregateFacial(questions),
	}, nil
}

func (s *AnalysisService) analyzeFacialQuestion(ctx context.Context, up MediaUpload) (domain.FacialAnalysis, domain.FacialAnalysis) {
	frames, err := s.extractor.VideoFrames(ctx, up.Path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			res := facialErrorResult("Video file not found")
			return res, res
		}
		s.logger.Warn("facial extraction failed", zap.String("question", up.Index), zap.Error(err))
		placeholder := FacialPlaceholder()
		return placeholder, placeholder
	}

	res := s.facial.Analyze(frames)
	if res.Error != "" {
		s.logger.Warn("facial question degraded", zap.String("question", up.Index), zap.String("reason", res.Error))
	}
	return res, AggregatableFacial(res)
}

// AnalyzeImage analiza una imagen fija como un video de un solo frame.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, path string) (domain.FacialAnalysis, error) {
	frames, err := s.extractor.ImageFrames(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return facialErrorResult("Image file not found"), nil
		}
		return domain.FacialAnalysis{}, fmt.Errorf("image extraction: %w", err)
	}
	if len(frames.Frames) == 0 {
		return facialErrorResult("No faces detected in image"), nil
	}
	if len(frames.Frames) > 1 {
		frames.Frames = frames.Frames[:1]
	}
	if frames.FramesDecoded == 0 {
		frames.FramesDecoded = 1
	}
	return s.facial.Analyze(frames), nil
}

// Combine ejecuta el análisis de texto (si hay respuestas) y combina con los agregados recibidos.
func (s *AnalysisService) Combine(ctx context.Context, in CombinedInput) domain.CombinedResult {
	var text *domain.TextAnalysis
	if len(in.TextResponses) > 0 {
		res := s.text.Analyze(ctx, in.TextResponses)
		text = &res
	}
	return Combine(text, in.Voice, in.Facial)
}

// sortUploads ordena por índice numérico ascendente; los índices no numéricos van al final.
func sortUploads(uploads []MediaUpload) []MediaUpload {
	out := append([]MediaUpload(nil), uploads...)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].Index)
		b, errB := strconv.Atoi(out[j].Index)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return out[i].Index < out[j].Index
		}
	})
	return out
}
