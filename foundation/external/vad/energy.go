package vad

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// modeThreshold maps a sensitivity mode to the RMS level a frame must clear
// to count as speech. Higher modes are more selective, mirroring the WebRTC
// aggressiveness scale.
var modeThreshold = [4]float64{250, 500, 1000, 2000}

// Energy is a pure-Go oracle: an RMS gate over the frame's samples. It is
// the fallback when the WebRTC classifier cannot be linked, and it is
// stateless, so one value serves any number of concurrent scans.
type Energy struct{}

func (Energy) IsSpeech(frame []byte, sampleRate int, sensitivity int) (bool, error) {
	if sensitivity < 0 || sensitivity >= len(modeThreshold) {
		return false, fmt.Errorf("invalid sensitivity mode %d", sensitivity)
	}

	n := len(frame) / 2
	if n == 0 {
		return false, errors.New("empty frame")
	}

	var sum float64
	for i := 0; i < n; i++ {
		v := float64(int16(binary.LittleEndian.Uint16(frame[2*i:])))
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(n))

	return rms > modeThreshold[sensitivity], nil
}
