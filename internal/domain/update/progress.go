package update

// Progress reports download advancement in bytes.
type Progress struct {
	// BytesDone never decreases across updates and never exceeds BytesTotal.
	BytesDone uint64
	// BytesTotal is the expected asset size.
	BytesTotal uint64
}

// Sink consumes progress during a download.
//
// Update may be called any number of times, once per received chunk.
// Done fires exactly once after the stream has been fully drained and
// is a distinct terminal signal, not another update.
type Sink interface {
	Update(p Progress)
	Done()
}
