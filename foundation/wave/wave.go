package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-audio/wav"
)

// Clip is a decoded recording: raw 16-bit little-endian mono samples plus
// the container's sample rate.
type Clip struct {
	SampleRate int
	PCM        []byte
}

// Decode parses a WAV container and extracts the raw PCM payload. Anything
// other than 16-bit mono linear PCM is rejected; resampling and channel
// mixing are the recorder's job, not ours.
func Decode(data []byte) (Clip, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return Clip{}, errors.New("not a valid wav file")
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("reading wav samples: %w", err)
	}

	if d.NumChans != 1 {
		return Clip{}, fmt.Errorf("expected mono audio, got %d channels", d.NumChans)
	}
	if d.BitDepth != 16 {
		return Clip{}, fmt.Errorf("expected 16-bit samples, got %d-bit", d.BitDepth)
	}

	pcm := make([]byte, len(buf.Data)*2)
	for i, s := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(s)))
	}

	return Clip{
		SampleRate: int(d.SampleRate),
		PCM:        pcm,
	}, nil
}
