package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mood-analyzer/internal/domain"
	"mood-analyzer/internal/features"
)

type textInput struct {
	Responses []string `yaml:"responses"`
}

type voiceInput struct {
	Questions []struct {
		Features map[string]any `yaml:"features"`
		Duration float64        `yaml:"duration"`
	} `yaml:"questions"`
}

type facialInput struct {
	Questions []struct {
		Frames        []map[string]any `yaml:"frames"`
		FramesDecoded int              `yaml:"frames_decoded"`
	} `yaml:"questions"`
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadTextInput(path string) ([]string, error) {
	var in textInput
	if err := readYAML(path, &in); err != nil {
		return nil, err
	}
	return in.Responses, nil
}

func loadVoiceInput(path string) ([]domain.AudioFeatures, error) {
	var in voiceInput
	if err := readYAML(path, &in); err != nil {
		return nil, err
	}
	out := make([]domain.AudioFeatures, 0, len(in.Questions))
	for _, q := range in.Questions {
		out = append(out, domain.AudioFeatures{
			Features:        features.ToFeatureVector(q.Features),
			DurationSeconds: q.Duration,
		})
	}
	return out, nil
}

func loadFacialInput(path string) ([]domain.FrameFeatures, error) {
	var in facialInput
	if err := readYAML(path, &in); err != nil {
		return nil, err
	}
	out := make([]domain.FrameFeatures, 0, len(in.Questions))
	for _, q := range in.Questions {
		frames := make([]domain.FeatureVector, 0, len(q.Frames))
		for _, f := range q.Frames {
			if vec := features.ToFeatureVector(f); len(vec) > 0 {
				frames = append(frames, vec)
			}
		}
		decoded := q.FramesDecoded
		if decoded == 0 {
			decoded = len(q.Frames) * 10
		}
		out = append(out, domain.FrameFeatures{
			Frames:        frames,
			FramesDecoded: decoded,
			FacesDetected: len(frames),
		})
	}
	return out, nil
}
