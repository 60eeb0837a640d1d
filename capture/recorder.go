package capture

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
)

// Recorder is an abi.Gate that forwards every call to an inner gate and
// writes the exchange to a capture stream.
type Recorder struct {
	gate    abi.Gate
	w       *Writer
	level   Level
	failure uint64

	mu  sync.Mutex
	seq uint64
	err error
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLevel sets which calls are kept. The default is LevelAll.
func WithLevel(l Level) RecorderOption {
	return func(r *Recorder) { r.level = l }
}

// WithFailureWord sets the result word LevelFailures keeps. The default
// is the all-ones word.
func WithFailureWord(w uint64) RecorderOption {
	return func(r *Recorder) { r.failure = w }
}

// NewRecorder wraps gate, writing to w.
func NewRecorder(gate abi.Gate, w *Writer, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		gate:    gate,
		w:       w,
		level:   LevelAll,
		failure: ^uint64(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Short implements abi.Gate.
func (r *Recorder) Short(opcode uint64, args abi.ShortArgs) uint64 {
	result := r.gate.Short(opcode, args)
	r.record(abi.TierShort, abi.ShortVector(opcode, args), result)
	return result
}

// Long implements abi.Gate.
func (r *Recorder) Long(opcode uint64, args abi.Args) uint64 {
	result := r.gate.Long(opcode, args)
	r.record(abi.TierLong, abi.LongVector(opcode, args), result)
	return result
}

// Err returns the first write error. Recording stops after it.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Seq returns the number of calls observed, kept or not.
func (r *Recorder) Seq() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

func (r *Recorder) record(tier abi.Tier, v abi.Vector, result uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq := r.seq
	r.seq++
	if r.err != nil || r.level == LevelOff {
		return
	}
	if r.level == LevelFailures && result != r.failure {
		return
	}
	if err := r.w.Write(Record{Seq: seq, Tier: tier, Vector: v, Result: result}); err != nil {
		r.err = err
		Logger().Error("capture write failed, recording stopped",
			zap.Uint64("seq", seq),
			zap.Error(err))
	}
}

var _ abi.Gate = (*Recorder)(nil)
