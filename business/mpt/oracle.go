package mpt

// Oracle judges whether a single PCM frame contains speech. Implementations
// live outside this package; the scan only needs the boolean verdict. A
// returned error marks the frame unjudgeable, which the scan treats as
// silence.
type Oracle interface {
	IsSpeech(frame []byte, sampleRate int, sensitivity int) (bool, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(frame []byte, sampleRate int, sensitivity int) (bool, error)

func (f OracleFunc) IsSpeech(frame []byte, sampleRate int, sensitivity int) (bool, error) {
	return f(frame, sampleRate, sensitivity)
}
