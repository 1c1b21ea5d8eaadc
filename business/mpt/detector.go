package mpt

type scanPhase int

const (
	phaseIdle scanPhase = iota
	phaseSpeaking
)

// detector is the two-state machine that walks per-frame speech judgments
// and locates one continuous phonation span. A silence gap shorter than the
// timeout stays inside the span; once the gap reaches the timeout the span
// is finalized and the scan stops, so nothing after the boundary can touch
// the result.
type detector struct {
	cfg Config

	phase        scanPhase
	speechStart  float64
	lastSpeech   float64
	sawSpeech    bool
	speechFrames int
	totalFrames  int
	done         bool
}

func newDetector(cfg Config) *detector {
	return &detector{cfg: cfg}
}

// feed consumes one judgment. It reports true once the span is finalized and
// the scan must stop.
func (d *detector) feed(isSpeech bool) bool {
	if d.done {
		return true
	}

	t := float64(d.totalFrames) * d.cfg.FrameDuration.Seconds()
	d.totalFrames++

	switch {
	case isSpeech:
		if d.phase == phaseIdle {
			d.phase = phaseSpeaking
			d.speechStart = t
		}
		d.lastSpeech = t
		d.sawSpeech = true
		d.speechFrames++

	case d.phase == phaseSpeaking:
		if t-d.lastSpeech >= d.cfg.SilenceTimeout.Seconds() {
			d.phase = phaseIdle
			d.done = true
		}
	}

	return d.done
}

// duration closes the span. A clip that ends mid-speech still closes at the
// last speech frame; a clip with no speech at all measures zero.
func (d *detector) duration() float64 {
	if !d.sawSpeech {
		return 0
	}
	return d.lastSpeech - d.speechStart
}
