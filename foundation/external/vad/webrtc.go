//go:build cgo

package vad

import (
	"sync"

	webrtcvad "github.com/maxhawkins/go-webrtc-vad"
)

// WebRTC wraps the WebRTC voice activity classifier. The underlying
// instance is not safe for concurrent use and its aggressiveness mode is
// instance state, so calls are serialized and the mode is re-applied
// whenever the requested sensitivity changes.
type WebRTC struct {
	mu   sync.Mutex
	vad  *webrtcvad.VAD
	mode int
}

// New creates the default oracle backed by the WebRTC classifier.
func New() (*WebRTC, error) {
	v, err := webrtcvad.New()
	if err != nil {
		return nil, err
	}

	return &WebRTC{
		vad:  v,
		mode: -1,
	}, nil
}

func (o *WebRTC) IsSpeech(frame []byte, sampleRate int, sensitivity int) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if sensitivity != o.mode {
		if err := o.vad.SetMode(sensitivity); err != nil {
			return false, err
		}
		o.mode = sensitivity
	}

	return o.vad.Process(sampleRate, frame)
}
