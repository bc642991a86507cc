package service

import "mood-analyzer/internal/domain"

const unanalyzedRecording = "Unable to analyze this recording"

// Texto: bloques por emoción presentes cuando el mood es negativo.
var textNegativeRecommendations = []struct {
	emotion domain.Emotion
	lines   []string
}{
	{domain.EmotionAnxious, []string{
		"Consider deep breathing exercises or meditation",
		"Try to identify specific sources of anxiety",
	}},
	{domain.EmotionSad, []string{
		"Connect with friends or family members",
		"Engage in activities you usually enjoy",
	}},
	{domain.EmotionTired, []string{
		"Ensure you're getting adequate sleep",
		"Consider your daily routine and energy levels",
	}},
}

var textPositiveRecommendations = []string{
	"Great! Continue with activities that bring you joy",
	"Share your positive energy with others",
}

var textBalancedRecommendations = []string{
	"Maintain a balanced routine",
	"Consider trying new activities to boost mood",
}

var voiceEmotionRecommendations = map[domain.Emotion][]string{
	domain.EmotionSad: {
		"Your voice suggests low mood - consider speaking with someone you trust",
		"Vocal exercises and singing can help improve mood",
	},
	domain.EmotionAngry: {
		"Your voice indicates stress - try calming breathing exercises",
		"Consider taking breaks to manage emotional intensity",
	},
	domain.EmotionFearful: {
		"Your voice suggests anxiety - practice relaxation techniques",
		"Slow, deep breathing can help calm your nervous system",
	},
	domain.EmotionHappy: {
		"Your voice reflects positive energy - keep it up!",
		"Share your positive mood with others",
	},
}

const (
	voiceLowEnergyRecommendation = "Low vocal energy detected - ensure adequate rest"
	voiceFastRateRecommendation  = "Fast speaking rate detected - try slowing down for clarity"
)

var voiceMoodRecommendations = map[string][]string{
	domain.AggregateMoodNegative: {
		"Consider speaking with a mental health professional",
		"Practice daily relaxation techniques",
		"Engage in activities that bring you joy",
		"Maintain regular sleep patterns",
	},
	domain.AggregateMoodPositive: {
		"Your positive energy is great! Keep it up",
		"Share your positive mood with others",
		"Use this energy to tackle challenging tasks",
	},
}

var voiceStressRecommendations = map[string][]string{
	domain.LevelHigh: {
		"High stress detected - practice deep breathing exercises",
		"Consider taking regular breaks throughout the day",
		"Engage in physical activity to reduce stress",
		"Limit caffeine and ensure adequate sleep",
	},
	domain.LevelMedium: {
		"Moderate stress levels - practice mindfulness",
		"Take short breaks to reset your mind",
		"Consider stress management techniques",
	},
}

const (
	voiceFastRateMajority  = "Fast speaking rate detected - try slowing down for better communication"
	voiceLowEnergyMajority = "Low vocal energy - ensure you're getting adequate rest and nutrition"
)

var facialEmotionRecommendations = map[domain.Emotion][]string{
	domain.EmotionSad: {
		"Facial analysis suggests low mood - consider engaging in uplifting activities",
		"Try smiling exercises or watch something that makes you laugh",
	},
	domain.EmotionAngry: {
		"Facial tension detected - try facial relaxation exercises",
		"Take deep breaths and try to relax your facial muscles",
	},
	domain.EmotionFearful: {
		"Signs of anxiety in facial expression - practice calming techniques",
		"Try progressive muscle relaxation starting with your face",
	},
	domain.EmotionHappy: {
		"Great! Your facial expression shows positive emotions",
		"Continue with activities that bring you joy",
	},
	domain.EmotionSurprised: {
		"Your expression shows alertness - this can be positive energy",
	},
}

const facialLowEyeRecommendation = "Limited eye visibility - ensure good lighting and face the camera"

var combinedFallbackRecommendations = []string{
	"Continue monitoring your mental health regularly",
	"Consider speaking with a mental health professional if needed",
}

// dedupe conserva la primera aparición de cada línea.
func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
