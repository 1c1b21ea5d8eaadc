package mpt

import (
	"fmt"
	"math"
)

// Processor runs the full measurement pipeline over one decoded recording:
// calibration, frame scan, validation, classification. It holds no per-call
// state, so a single Processor may serve concurrent requests as long as its
// Oracle does the same.
type Processor struct {
	cfg    Config
	oracle Oracle
}

func NewProcessor(cfg Config, oracle Oracle) *Processor {
	return &Processor{
		cfg:    cfg,
		oracle: oracle,
	}
}

// Process scans one PCM recording (16-bit little-endian mono at the
// configured rate) and returns the measured phonation time with its
// classification. Every failure path yields a structured Result; Process
// never panics on malformed input.
func (p *Processor) Process(pcm []byte) Result {
	cal := Calibrate(pcm, p.cfg)
	det := newDetector(p.cfg)

	for _, frame := range frames(pcm, p.cfg.frameBytes()) {
		isSpeech, err := p.oracle.IsSpeech(frame, p.cfg.SampleRate, cal.Sensitivity)
		if err != nil {
			// An unjudgeable frame counts as silence.
			isSpeech = false
		}
		if det.feed(isSpeech) {
			break
		}
	}

	duration := det.duration()
	diag := diagnostics(det, cal)

	if duration < p.cfg.MinSpeechDuration.Seconds() {
		return Result{
			Mpt:   round2(duration),
			Debug: diag,
			Error: fmt.Sprintf("phonation below minimum duration of %.1fs", p.cfg.MinSpeechDuration.Seconds()),
		}
	}

	c := Classify(duration)

	return Result{
		Success:        true,
		Mpt:            round2(duration),
		Classification: &c,
		Debug:          diag,
	}
}

// =====================================================================================================================

func diagnostics(det *detector, cal Calibration) *Diagnostics {
	var pct float64
	if det.totalFrames > 0 {
		pct = float64(det.speechFrames) / float64(det.totalFrames) * 100
	}

	return &Diagnostics{
		SpeechFrames:      det.speechFrames,
		TotalFrames:       det.totalFrames,
		NoiseThreshold:    cal.NoiseLevel,
		VadAggressiveness: cal.Sensitivity,
		SpeechPercentage:  pct,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
