// Package features agrupa utilidades para acotar y validar características numéricas.
package features

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"mood-analyzer/internal/domain"
)

var (
	nonTextChars = regexp.MustCompile(`[^a-z0-9\s.,!?]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// CleanText pasa a minúsculas, quita todo salvo letras, dígitos, espacios y .,!? y colapsa espacios.
func CleanText(text string) string {
	s := strings.ToLower(text)
	s = nonTextChars.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Clip acota v al rango [lo, hi].
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAudioFeatures escala cada característica de audio a [0,1] con rangos aproximados.
// MFCC se asume en [-50,50], las espectrales en [0,5000] y el tempo en [60,180] BPM.
func NormalizeAudioFeatures(f domain.FeatureVector) domain.FeatureVector {
	out := make(domain.FeatureVector, len(f))
	for key, value := range f {
		switch {
		case strings.Contains(key, "mfcc"):
			out[key] = Clip((value+50)/100, 0, 1)
		case strings.Contains(key, "spectral"):
			out[key] = Clip(value/5000, 0, 1)
		case strings.Contains(key, "tempo"):
			out[key] = Clip((value-60)/120, 0, 1)
		default:
			out[key] = Clip(value, 0, 1)
		}
	}
	return out
}

// ParseFloat intenta convertir un valor escalar decodificado de JSON/YAML a float64.
func ParseFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// SafeFloat convierte value a float64 devolviendo def si no es convertible.
func SafeFloat(value any, def float64) float64 {
	if f, ok := ParseFloat(value); ok {
		return f
	}
	return def
}

// ToFeatureVector construye un FeatureVector descartando valores no numéricos o no finitos.
func ToFeatureVector(raw map[string]any) domain.FeatureVector {
	out := make(domain.FeatureVector, len(raw))
	for k, v := range raw {
		f, ok := ParseFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out[k] = f
	}
	return out
}

// ConsistencyConfidence pondera la media de los puntajes válidos (en [0,1]) con su consistencia.
// Menor desviación estándar implica mayor confianza. El resultado se limita a 0.95.
func ConsistencyConfidence(scores []float64) float64 {
	valid := make([]float64, 0, len(scores))
	for _, s := range scores {
		if s >= 0 && s <= 1 {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return 0
	}

	mean, std := MeanStd(valid)
	consistency := math.Max(0, 1-std)
	return math.Min(0.95, mean*0.7+consistency*0.3)
}

// MeanStd calcula la media y la desviación estándar poblacional.
func MeanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(values)))
}

// ValidateFileType indica si la extensión de filename está en allowed (sin distinguir mayúsculas).
func ValidateFileType(filename string, allowed []string) bool {
	if filename == "" {
		return false
	}
	name := strings.ToLower(filename)
	ext := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = name[i+1:]
	}
	for _, a := range allowed {
		if ext == strings.ToLower(strings.TrimPrefix(a, ".")) {
			return true
		}
	}
	return false
}
