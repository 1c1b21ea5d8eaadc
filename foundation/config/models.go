package config

// Settings is the on-disk engine settings file. Every field is optional; a
// zero value keeps the built-in default.
type Settings struct {
	Engine Engine `json:"engine"`
}

type Engine struct {
	SampleRate          int `json:"sample_rate"`
	FrameDurationMs     int `json:"frame_duration_ms"`
	CalibrationWindowMs int `json:"calibration_window_ms"`
	SilenceTimeoutMs    int `json:"silence_timeout_ms"`
	MinSpeechDurationMs int `json:"min_speech_duration_ms"`
}
