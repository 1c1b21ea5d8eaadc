package mpt

// frames cuts pcm into fixed-size frames in buffer order. The trailing
// partial frame is dropped, never scanned.
func frames(pcm []byte, size int) [][]byte {
	if size <= 0 {
		return nil
	}

	out := make([][]byte, 0, len(pcm)/size)
	for off := 0; off+size <= len(pcm); off += size {
		out = append(out, pcm[off:off+size])
	}

	return out
}
