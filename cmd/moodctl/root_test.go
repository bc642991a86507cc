package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mood-analyzer/internal/domain"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestVoiceCommand(t *testing.T) {
	path := writeInput(t, "voice.yaml", `
questions:
  - features: {rms_mean: 0.01, zcr_mean: 0.05, spectral_centroid_std: 100, tempo: 90, spectral_centroid_mean: 1000}
    duration: 2.5
`)
	out, err := runCmd(t, "voice", "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var report domain.VoiceReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	q := report.QuestionAnalyses["0"]
	if q.PrimaryEmotion != domain.EmotionSad || q.AudioDuration != 2.5 {
		t.Fatalf("unexpected question analysis: %+v", q)
	}
	if report.OverallAnalysis.DominantEmotion != domain.EmotionSad || report.OverallAnalysis.OverallMood != "negative" {
		t.Fatalf("unexpected aggregate: %+v", report.OverallAnalysis)
	}
}

func TestFacialCommand(t *testing.T) {
	path := writeInput(t, "facial.json", `{"questions": [{"frames": [{"mean_brightness": 150, "eye_count": 2, "eye_symmetry": 2, "face_width": 120, "face_height": 100}]}]}`)
	out, err := runCmd(t, "facial", "-f", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var report domain.FacialReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if report.OverallAnalysis.OverallEmotion != domain.EmotionHappy {
		t.Fatalf("unexpected aggregate: %+v", report.OverallAnalysis)
	}
}

func TestCombineCommandWithoutInputs(t *testing.T) {
	out, err := runCmd(t, "combine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res domain.CombinedResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if res.OverallMood != domain.MoodNeutral || res.Confidence != 0 || len(res.Recommendations) != 2 {
		t.Fatalf("unexpected empty combination: %+v", res)
	}
}

func TestTextCommandRequiresResponses(t *testing.T) {
	if _, err := runCmd(t, "text"); err == nil {
		t.Fatalf("expected error without responses")
	}
}

func TestNormalizeCommand(t *testing.T) {
	path := writeInput(t, "voice.yaml", "questions:\n  - features: {tempo: 180, spectral_centroid_mean: 10000, rms_mean: 0.5}\n")
	out, err := runCmd(t, "normalize", "-f", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var vectors []domain.FeatureVector
	if err := json.Unmarshal([]byte(out), &vectors); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(vectors) != 1 || vectors[0]["tempo"] != 1 || vectors[0]["spectral_centroid_mean"] != 1 || vectors[0]["rms_mean"] != 0.5 {
		t.Fatalf("unexpected normalized features: %+v", vectors)
	}
}

func TestQuestionsCommandDefaults(t *testing.T) {
	out, err := runCmd(t, "questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var questions []domain.Question
	if err := json.Unmarshal([]byte(out), &questions); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(questions) != len(domain.DefaultQuestions) {
		t.Fatalf("expected default questions, got %d", len(questions))
	}
}
