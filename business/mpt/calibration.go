package mpt

import (
	"encoding/binary"
	"math"
)

const (
	maxAmplitude      = 32768.0
	defaultNoiseLevel = 0.01
)

// Calibration is the ambient noise estimate taken from the head of a
// recording, with the VAD sensitivity mode derived from it. Computed once
// per measurement, never mutated.
type Calibration struct {
	NoiseLevel  float64
	Sensitivity int
}

// Calibrate estimates the ambient noise level from the leading
// CalibrationWindow of pcm: mean absolute amplitude per frame, averaged
// across the window, normalized to [0,1]. A clip too short to yield a single
// calibration frame falls back to a nominal quiet-room level.
func Calibrate(pcm []byte, cfg Config) Calibration {
	window := int(math.Ceil(cfg.CalibrationWindow.Seconds() / cfg.FrameDuration.Seconds()))

	fr := frames(pcm, cfg.frameBytes())
	if len(fr) > window {
		fr = fr[:window]
	}

	if len(fr) == 0 {
		return Calibration{
			NoiseLevel:  defaultNoiseLevel,
			Sensitivity: SensitivityFor(defaultNoiseLevel),
		}
	}

	var sum float64
	for _, f := range fr {
		sum += meanAbsAmplitude(f)
	}
	noise := sum / float64(len(fr)) / maxAmplitude

	return Calibration{
		NoiseLevel:  noise,
		Sensitivity: SensitivityFor(noise),
	}
}

// SensitivityFor maps a normalized noise level to a VAD aggressiveness mode.
// Noisier rooms get the most selective mode, capped at 3. Boundary values
// belong to the bucket above them.
func SensitivityFor(noise float64) int {
	switch {
	case noise < 0.01:
		return 1
	case noise < 0.03:
		return 2
	default:
		return 3
	}
}

func meanAbsAmplitude(frame []byte) float64 {
	n := len(frame) / 2
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		v := float64(int16(binary.LittleEndian.Uint16(frame[2*i:])))
		if v < 0 {
			v = -v
		}
		sum += v
	}

	return sum / float64(n)
}
