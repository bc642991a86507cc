// Package extractor habla con el servicio externo de procesamiento de señales que convierte
// audio, video e imágenes en vectores de características.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

// Client define las extracciones que necesita el análisis por pregunta.
type Client interface {
	AudioFeatures(ctx context.Context, path string) (domain.AudioFeatures, error)
	VideoFrames(ctx context.Context, path string) (domain.FrameFeatures, error)
	ImageFrames(ctx context.Context, path string) (domain.FrameFeatures, error)
}

const maxErrBody = 4096

// HTTPClient implementa Client sobre multipart POST al servicio de extracción.
type HTTPClient struct {
	baseURL string
	c       *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		c:       &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type audioResp struct {
	Features map[string]any `json:"features"`
	Duration float64        `json:"duration"`
}

type framesResp struct {
	Frames        []map[string]any `json:"frames"`
	FramesDecoded int              `json:"frames_decoded"`
	FacesDetected int              `json:"faces_detected"`
}

func (h *HTTPClient) AudioFeatures(ctx context.Context, path string) (domain.AudioFeatures, error) {
	var out audioResp
	if err := h.upload(ctx, "/audio/features", path, &out); err != nil {
		return domain.AudioFeatures{}, err
	}

	vec := features.ToFeatureVector(out.Features)
	if err := vec.Validate(); err != nil {
		return domain.AudioFeatures{}, err
	}
	return domain.AudioFeatures{Features: vec, DurationSeconds: out.Duration}, nil
}

func (h *HTTPClient) VideoFrames(ctx context.Context, path string) (domain.FrameFeatures, error) {
	return h.frames(ctx, "/video/frames", path)
}

func (h *HTTPClient) ImageFrames(ctx context.Context, path string) (domain.FrameFeatures, error) {
	return h.frames(ctx, "/image/frames", path)
}

func (h *HTTPClient) frames(ctx context.Context, endpoint, path string) (domain.FrameFeatures, error) {
	var out framesResp
	if err := h.upload(ctx, endpoint, path, &out); err != nil {
		return domain.FrameFeatures{}, err
	}

	frames := make([]domain.FeatureVector, 0, len(out.Frames))
	for _, raw := range out.Frames {
		vec := features.ToFeatureVector(raw)
		if len(vec) == 0 {
			continue
		}
		if err := vec.Validate(); err != nil {
			return domain.FrameFeatures{}, err
		}
		frames = append(frames, vec)
	}

	faces := out.FacesDetected
	if faces == 0 {
		faces = len(frames)
	}
	return domain.FrameFeatures{
		Frames:        frames,
		FramesDecoded: out.FramesDecoded,
		FacesDetected: faces,
	}, nil
}

func (h *HTTPClient) upload(ctx context.Context, endpoint, path string, out any) error {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	fd, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer fd.Close()

	if _, err = io.Copy(fw, fd); err != nil {
		return fmt.Errorf("copy media: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+endpoint, &b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	start := time.Now()
	resp, err := h.c.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrExtraction, endpoint, err)
	}
	defer resp.Body.Close()

	h.logger.Debug("extractor call",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return fmt.Errorf("%w: %s %s: %s", domain.ErrExtraction, endpoint, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrExtraction, endpoint, err)
	}
	return nil
}
