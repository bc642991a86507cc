package domain

import (
	"fmt"
	"strings"
)

// FeatureVector mapea el nombre de una característica numérica a su valor.
type FeatureVector map[string]float64

// Claves de audio consumidas por el clasificador de voz.
const (
	FeatureRMSMean              = "rms_mean"
	FeatureTempo                = "tempo"
	FeatureSpectralCentroidMean = "spectral_centroid_mean"
	FeatureSpectralCentroidStd  = "spectral_centroid_std"
	FeatureZCRMean              = "zcr_mean"
)

// Claves faciales por frame.
const (
	FeatureFaceWidth      = "face_width"
	FeatureFaceHeight     = "face_height"
	FeatureFaceRatio      = "face_ratio"
	FeatureEyeCount       = "eye_count"
	FeatureEyeDistance    = "eye_distance"
	FeatureEyeSymmetry    = "eye_symmetry"
	FeatureMeanBrightness = "mean_brightness"
	FeatureBrightnessStd  = "brightness_std"
	FeatureFaceCenterX    = "face_center_x"
	FeatureFaceCenterY    = "face_center_y"
)

// Get devuelve el valor de la clave o 0 si no existe.
func (f FeatureVector) Get(key string) float64 {
	return f[key]
}

// GetOr devuelve el valor de la clave o def si no existe.
func (f FeatureVector) GetOr(key string, def float64) float64 {
	if v, ok := f[key]; ok {
		return v
	}
	return def
}

// Validate verifica que toda clave con sufijo _std sea no negativa.
func (f FeatureVector) Validate() error {
	for k, v := range f {
		if strings.HasSuffix(k, "_std") && v < 0 {
			return fmt.Errorf("%w: feature %s is negative (%v)", ErrExtraction, k, v)
		}
	}
	return nil
}

// AudioFeatures es la salida del extractor para un clip de audio.
type AudioFeatures struct {
	Features        FeatureVector `json:"features"`
	DurationSeconds float64       `json:"duration_seconds"`
}

// FrameFeatures es la salida del extractor para un video (o una imagen como un único frame).
// Frames contiene solo los frames muestreados donde se detectó una cara.
type FrameFeatures struct {
	Frames        []FeatureVector `json:"frames"`
	FramesDecoded int             `json:"frames_decoded"`
	FacesDetected int             `json:"faces_detected"`
}
