package mpt_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/superfeelapi/goMptTriage/business/mpt"
)

// scriptOracle replays a fixed per-frame verdict sequence, ignoring the
// frame bytes. Frames past the script read as silence.
type scriptOracle struct {
	flags []bool
	calls int
}

func (o *scriptOracle) IsSpeech(frame []byte, sampleRate, sensitivity int) (bool, error) {
	i := o.calls
	o.calls++
	if i < len(o.flags) {
		return o.flags[i], nil
	}
	return false, nil
}

func repeat(v bool, n int) []bool {
	s := make([]bool, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestProcessNoSpeech(t *testing.T) {
	cfg := mpt.DefaultConfig()
	p := mpt.NewProcessor(cfg, &scriptOracle{})

	r := p.Process(constantPCM(cfg, 100, 0))

	if r.Success {
		t.Fatal("expected failure for all-silence clip")
	}
	if r.Mpt != 0 {
		t.Fatalf("Mpt = %v, want 0", r.Mpt)
	}
	if r.Error == "" {
		t.Fatal("expected a below-minimum error")
	}
	if r.Classification != nil {
		t.Fatal("no classification expected on failure")
	}
	if r.Debug == nil || r.Debug.TotalFrames != 100 || r.Debug.SpeechFrames != 0 {
		t.Fatalf("unexpected diagnostics: %+v", r.Debug)
	}
	if r.Debug.SpeechPercentage != 0 {
		t.Fatalf("SpeechPercentage = %v, want 0", r.Debug.SpeechPercentage)
	}
}

func TestProcessSilenceTimeout(t *testing.T) {
	cfg := mpt.DefaultConfig()

	// 40 speech frames then silence. The gap reaches 1.5s at frame 89
	// (t=2.67, last speech at t=1.17), so the scan must stop after 90 frames.
	oracle := &scriptOracle{flags: repeat(true, 40)}
	p := mpt.NewProcessor(cfg, oracle)

	r := p.Process(constantPCM(cfg, 200, 0))

	if !r.Success {
		t.Fatalf("expected success, got error %q", r.Error)
	}
	if r.Mpt != 1.17 {
		t.Fatalf("Mpt = %v, want 1.17", r.Mpt)
	}
	if r.Debug.TotalFrames != 90 {
		t.Fatalf("TotalFrames = %d, want 90 (scan must halt at the timeout frame)", r.Debug.TotalFrames)
	}
	if r.Debug.SpeechFrames != 40 {
		t.Fatalf("SpeechFrames = %d, want 40", r.Debug.SpeechFrames)
	}
	wantPct := 40.0 / 90.0 * 100
	if math.Abs(r.Debug.SpeechPercentage-wantPct) > 1e-9 {
		t.Fatalf("SpeechPercentage = %v, want %v", r.Debug.SpeechPercentage, wantPct)
	}
}

func TestProcessIgnoresLaterAttempts(t *testing.T) {
	cfg := mpt.DefaultConfig()

	// A second burst after the finalized boundary must not change anything.
	flags := append(repeat(true, 40), repeat(false, 60)...)
	flags = append(flags, repeat(true, 100)...)
	p := mpt.NewProcessor(cfg, &scriptOracle{flags: flags})

	r := p.Process(constantPCM(cfg, 200, 0))

	if r.Mpt != 1.17 {
		t.Fatalf("Mpt = %v, want 1.17 (first span wins)", r.Mpt)
	}
	if r.Debug.TotalFrames != 90 {
		t.Fatalf("TotalFrames = %d, want 90", r.Debug.TotalFrames)
	}
}

func TestProcessClipEndsMidSpeech(t *testing.T) {
	cfg := mpt.DefaultConfig()

	p := mpt.NewProcessor(cfg, &scriptOracle{flags: repeat(true, 50)})
	r := p.Process(constantPCM(cfg, 50, 0))

	if !r.Success {
		t.Fatalf("expected success, got error %q", r.Error)
	}
	if r.Mpt != 1.47 {
		t.Fatalf("Mpt = %v, want 1.47 (49 * 30ms)", r.Mpt)
	}
}

func TestProcessSubTimeoutPauseAbsorbed(t *testing.T) {
	cfg := mpt.DefaultConfig()

	// 0.6s pause inside the attempt stays inside the span.
	flags := append(repeat(true, 20), repeat(false, 20)...)
	flags = append(flags, repeat(true, 20)...)
	p := mpt.NewProcessor(cfg, &scriptOracle{flags: flags})

	r := p.Process(constantPCM(cfg, 200, 0))

	if !r.Success {
		t.Fatalf("expected success, got error %q", r.Error)
	}
	if r.Mpt != 1.77 {
		t.Fatalf("Mpt = %v, want 1.77 (span covers the pause)", r.Mpt)
	}
	if r.Debug.SpeechFrames != 40 {
		t.Fatalf("SpeechFrames = %d, want 40", r.Debug.SpeechFrames)
	}
}

func TestProcessBelowMinimum(t *testing.T) {
	cfg := mpt.DefaultConfig()

	p := mpt.NewProcessor(cfg, &scriptOracle{flags: repeat(true, 20)})
	r := p.Process(constantPCM(cfg, 120, 0))

	if r.Success {
		t.Fatal("expected below-minimum failure")
	}
	if r.Mpt != 0.57 {
		t.Fatalf("Mpt = %v, want 0.57", r.Mpt)
	}
	if r.Debug == nil {
		t.Fatal("diagnostics must accompany a below-minimum failure")
	}
}

func TestProcessEmptyClip(t *testing.T) {
	cfg := mpt.DefaultConfig()
	p := mpt.NewProcessor(cfg, &scriptOracle{})

	r := p.Process(nil)

	if r.Success {
		t.Fatal("expected failure for empty clip")
	}
	if r.Mpt != 0 {
		t.Fatalf("Mpt = %v, want 0", r.Mpt)
	}
	if r.Debug.TotalFrames != 0 || r.Debug.SpeechPercentage != 0 {
		t.Fatalf("unexpected diagnostics: %+v", r.Debug)
	}
	if r.Debug.NoiseThreshold != 0.01 || r.Debug.VadAggressiveness != 2 {
		t.Fatalf("expected fallback calibration, got %+v", r.Debug)
	}
}

func TestProcessOracleFailureIsSilence(t *testing.T) {
	cfg := mpt.DefaultConfig()

	failing := mpt.OracleFunc(func(frame []byte, sampleRate, sensitivity int) (bool, error) {
		return true, errors.New("classifier unavailable")
	})
	p := mpt.NewProcessor(cfg, failing)

	r := p.Process(constantPCM(cfg, 100, 0))

	if r.Success {
		t.Fatal("expected failure when every frame is unjudgeable")
	}
	if r.Mpt != 0 || r.Debug.SpeechFrames != 0 {
		t.Fatalf("oracle failures must read as silence, got %+v", r)
	}
}

func TestProcessDeterministic(t *testing.T) {
	cfg := mpt.DefaultConfig()
	flags := append(repeat(true, 45), repeat(false, 80)...)
	pcm := constantPCM(cfg, 150, 1200)

	a := mpt.NewProcessor(cfg, &scriptOracle{flags: flags}).Process(pcm)
	b := mpt.NewProcessor(cfg, &scriptOracle{flags: flags}).Process(pcm)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ across identical runs:\n%+v\n%+v", a, b)
	}
}
