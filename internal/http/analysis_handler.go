package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
	"mood-analyzer/internal/service"
)

var (
	audioExtensions = []string{"wav", "webm", "ogg", "mp3", "m4a", "flac"}
	videoExtensions = []string{"webm", "mp4", "mov", "avi", "mkv"}
	imageExtensions = []string{"png", "jpg", "jpeg", "bmp", "webp"}
)

var errUnsupportedFile = errors.New("unsupported file type")

// AnalysisHandler mantiene dependencias para los endpoints de análisis.
type AnalysisHandler struct {
	logger    *zap.Logger
	analysis  *service.AnalysisService
	maxUpload int64
	tempDir   string
}

// NewAnalysisHandler crea el handler; maxUpload limita el cuerpo de cada solicitud en bytes.
func NewAnalysisHandler(logger *zap.Logger, analysis *service.AnalysisService, maxUpload int64) *AnalysisHandler {
	return &AnalysisHandler{
		logger:    logger,
		analysis:  analysis,
		maxUpload: maxUpload,
	}
}

// AnalyzeText maneja POST /analyze_text.
func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	var req struct {
		Responses []string `json:"responses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze text request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.analysis.AnalyzeText(c.Request.Context(), req.Responses)
	if err != nil {
		h.fail(c, err, res.Error)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": res})
}

// AnalyzeVoice maneja POST /analyze_voice con archivos audio_<i>.
func (h *AnalysisHandler) AnalyzeVoice(c *gin.Context) {
	uploads, cleanup, err := h.saveIndexedUploads(c, "audio_", audioExtensions)
	defer cleanup()
	if err != nil {
		h.fail(c, err, "")
		return
	}

	report, err := h.analysis.AnalyzeVoice(c.Request.Context(), uploads)
	if err != nil {
		h.fail(c, err, "No audio files provided")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"question_analyses": report.QuestionAnalyses,
		"overall_analysis":  report.OverallAnalysis,
	})
}

// AnalyzeFacial maneja POST /analyze_facial con archivos video_<i>.
func (h *AnalysisHandler) AnalyzeFacial(c *gin.Context) {
	uploads, cleanup, err := h.saveIndexedUploads(c, "video_", videoExtensions)
	defer cleanup()
	if err != nil {
		h.fail(c, err, "")
		return
	}

	report, err := h.analysis.AnalyzeFacial(c.Request.Context(), uploads)
	if err != nil {
		h.fail(c, err, "No video files provided")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"question_analyses": report.QuestionAnalyses,
		"overall_analysis":  report.OverallAnalysis,
	})
}

// AnalyzeImage maneja POST /analyze_image con un archivo image.
func (h *AnalysisHandler) AnalyzeImage(c *gin.Context) {
	form, err := h.multipartForm(c)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	files := form.File["image"]
	if len(files) == 0 {
		h.fail(c, domain.ErrNoInput, "No image file provided")
		return
	}
	if !acceptedFile(files[0].Filename, imageExtensions) {
		h.fail(c, errUnsupportedFile, "")
		return
	}

	path, err := h.saveTemp(files[0])
	if err != nil {
		h.fail(c, err, "")
		return
	}
	defer os.Remove(path)

	res, err := h.analysis.AnalyzeImage(c.Request.Context(), path)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": res})
}

// CombinedAnalysis maneja POST /combined_analysis.
func (h *AnalysisHandler) CombinedAnalysis(c *gin.Context) {
	var req struct {
		TextResponses  []string        `json:"text_responses"`
		VoiceAnalysis  json.RawMessage `json:"voice_analysis"`
		FacialAnalysis json.RawMessage `json:"facial_analysis"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid combined analysis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var voice *domain.VoiceAggregate
	var facial *domain.FacialAggregate
	if err := decodeAggregate(req.VoiceAnalysis, &voice); err != nil {
		h.logger.Warn("invalid voice_analysis payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid voice_analysis"})
		return
	}
	if err := decodeAggregate(req.FacialAnalysis, &facial); err != nil {
		h.logger.Warn("invalid facial_analysis payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facial_analysis"})
		return
	}

	res := h.analysis.Combine(c.Request.Context(), service.CombinedInput{
		TextResponses: req.TextResponses,
		Voice:         voice,
		Facial:        facial,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": res})
}

// decodeAggregate acepta el agregado directo o el reporte completo con overall_analysis.
func decodeAggregate[T any](raw json.RawMessage, out **T) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		return nil
	}

	var wrapped struct {
		OverallAnalysis *T `json:"overall_analysis"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.OverallAnalysis != nil {
		*out = wrapped.OverallAnalysis
		return nil
	}

	var direct T
	if err := json.Unmarshal(raw, &direct); err != nil {
		return err
	}
	*out = &direct
	return nil
}

// saveIndexedUploads guarda cada archivo <prefix><i> en un temporal. cleanup siempre es invocable.
func (h *AnalysisHandler) saveIndexedUploads(c *gin.Context, prefix string, allowed []string) ([]service.MediaUpload, func(), error) {
	var paths []string
	cleanup := func() {
		for _, p := range paths {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				h.logger.Warn("remove temp upload failed", zap.String("path", p), zap.Error(err))
			}
		}
	}

	form, err := h.multipartForm(c)
	if err != nil {
		return nil, cleanup, err
	}

	var uploads []service.MediaUpload
	for key, files := range form.File {
		if !strings.HasPrefix(key, prefix) || len(files) == 0 {
			continue
		}
		if !acceptedFile(files[0].Filename, allowed) {
			return nil, cleanup, fmt.Errorf("%w: %s", errUnsupportedFile, files[0].Filename)
		}
		path, err := h.saveTemp(files[0])
		if err != nil {
			return nil, cleanup, err
		}
		paths = append(paths, path)
		uploads = append(uploads, service.MediaUpload{Index: strings.TrimPrefix(key, prefix), Path: path})
	}
	return uploads, cleanup, nil
}

func (h *AnalysisHandler) multipartForm(c *gin.Context) (*multipart.Form, error) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, fmt.Errorf("%w: expected multipart form", domain.ErrNoInput)
		}
		return nil, err
	}
	return form, nil
}

func (h *AnalysisHandler) saveTemp(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.CreateTemp(h.tempDir, "mood-"+uuid.NewString()+"-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return dst.Name(), nil
}

// acceptedFile admite nombres sin extensión (blobs del navegador) o con una extensión permitida.
func acceptedFile(name string, allowed []string) bool {
	if filepath.Ext(name) == "" {
		return true
	}
	return features.ValidateFileType(name, allowed)
}

// fail traduce errores a status HTTP. msg reemplaza el texto para errores de entrada.
func (h *AnalysisHandler) fail(c *gin.Context, err error, msg string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.logger.Warn("upload too large", zap.Int64("limit", tooLarge.Limit))
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
	case errors.Is(err, domain.ErrNoInput):
		h.logger.Warn("missing input", zap.String("path", c.Request.URL.Path), zap.Error(err))
		if msg == "" {
			msg = err.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case errors.Is(err, errUnsupportedFile):
		h.logger.Warn("unsupported upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("analysis failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
	}
}
