package service

import (
	"math"

	"go.uber.org/zap"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

const facialSampleStride = 10

// FacialAnalyzer clasifica la expresión a partir de características por frame.
type FacialAnalyzer struct {
	logger *zap.Logger
}

func NewFacialAnalyzer(logger *zap.Logger) *FacialAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacialAnalyzer{logger: logger}
}

func (a *FacialAnalyzer) Analyze(in domain.FrameFeatures) domain.FacialAnalysis {
	if len(in.Frames) == 0 {
		res := facialErrorResult("No faces detected in video")
		res.FramesAnalyzed = in.FramesDecoded
		return res
	}
	for _, f := range in.Frames {
		if err := f.Validate(); err != nil {
			return facialErrorResult("Video analysis failed: " + err.Error())
		}
	}

	avg, summary := summarizeFrames(in.Frames)

	scores := domain.EmotionScores{
		domain.EmotionNeutral:   facialBaseline,
		domain.EmotionHappy:     0,
		domain.EmotionSad:       0,
		domain.EmotionAngry:     0,
		domain.EmotionSurprised: 0,
		domain.EmotionFearful:   0,
	}
	fired := applyRules(facialRules, avg, scores)

	emotion, score := scores.ArgMax(domain.FacialEmotions)
	confidence := math.Min(facialConfidenceCap, score+facialConfidenceBoost)

	faces := in.FacesDetected
	if faces == 0 {
		faces = len(in.Frames)
	}
	windows := in.FramesDecoded / facialSampleStride
	if windows < 1 {
		windows = 1
	}

	a.logger.Debug("face classified",
		zap.String("emotion", string(emotion)),
		zap.Float64("confidence", confidence),
		zap.Strings("rules", fired),
		zap.Int("frames", len(in.Frames)),
	)

	return domain.FacialAnalysis{
		PrimaryEmotion:    emotion,
		Confidence:        confidence,
		EmotionScores:     scores,
		FeaturesSummary:   summary,
		Recommendations:   facialRecommendations(emotion, summary),
		EmotionScore:      facialPolarity[emotion] * confidence,
		FramesAnalyzed:    in.FramesDecoded,
		FacesDetected:     faces,
		FaceDetectionRate: float64(faces) / float64(windows),
	}
}

func facialErrorResult(msg string) domain.FacialAnalysis {
	return domain.FacialAnalysis{
		Error:           msg,
		PrimaryEmotion:  domain.EmotionUnknown,
		Recommendations: []string{},
	}
}

// summarizeFrames promedia usando las claves del primer frame, solo sobre frames que las tienen.
// Devuelve el vector promedio y el resumen average_/std_ por clave.
func summarizeFrames(frames []domain.FeatureVector) (domain.FeatureVector, map[string]float64) {
	avg := make(domain.FeatureVector, len(frames[0]))
	summary := make(map[string]float64, 2*len(frames[0]))
	for key := range frames[0] {
		values := make([]float64, 0, len(frames))
		for _, f := range frames {
			if v, ok := f[key]; ok {
				values = append(values, v)
			}
		}
		mean, std := features.MeanStd(values)
		avg[key] = mean
		summary["average_"+key] = mean
		summary["std_"+key] = std
	}
	return avg, summary
}

func facialRecommendations(emotion domain.Emotion, summary map[string]float64) []string {
	out := append([]string{}, facialEmotionRecommendations[emotion]...)
	if summary["average_"+domain.FeatureEyeCount] < facialLowEyeVisibility {
		out = append(out, facialLowEyeRecommendation)
	}
	return out
}
