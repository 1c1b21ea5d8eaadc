package mpt

import "time"

// Config holds the fixed scan parameters of one measurement. The defaults
// match the clinical MPT protocol; they are not expected to change at
// runtime but can be overridden through the settings file.
type Config struct {
	SampleRate        int
	FrameDuration     time.Duration
	CalibrationWindow time.Duration
	SilenceTimeout    time.Duration
	MinSpeechDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		SampleRate:        16000,
		FrameDuration:     30 * time.Millisecond,
		CalibrationWindow: 500 * time.Millisecond,
		SilenceTimeout:    1500 * time.Millisecond,
		MinSpeechDuration: 1 * time.Second,
	}
}

func (c Config) frameSamples() int {
	return int(int64(c.SampleRate) * c.FrameDuration.Milliseconds() / 1000)
}

// 16-bit samples, two bytes each.
func (c Config) frameBytes() int {
	return c.frameSamples() * 2
}

// =====================================================================================================================

// Diagnostics carries the scan counters exposed to callers as debug_info.
type Diagnostics struct {
	SpeechFrames      int     `json:"speech_frames"`
	TotalFrames       int     `json:"total_frames"`
	NoiseThreshold    float64 `json:"noise_threshold"`
	VadAggressiveness int     `json:"vad_aggressiveness"`
	SpeechPercentage  float64 `json:"speech_percentage"`
}

// Result is the outcome of one measurement. A below-minimum phonation is
// reported with Success=false and the diagnostics still attached, so callers
// can tell a short recording apart from undecodable input.
type Result struct {
	Success        bool            `json:"success"`
	Mpt            float64         `json:"mpt"`
	Classification *Classification `json:"classification,omitempty"`
	Debug          *Diagnostics    `json:"debug_info,omitempty"`
	Error          string          `json:"error,omitempty"`
}
