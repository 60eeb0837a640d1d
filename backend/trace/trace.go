package trace

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
)

// ResultFunc chooses the word a traced call returns when no wrapped
// resolver serves it.
type ResultFunc func(e catalog.Entry, args abi.Args) uint64

// Backend resolves operations to targets that log the decoded call and
// then either forward it or return a synthesized result.
type Backend struct {
	next   dispatch.Resolver
	result ResultFunc
	log    *zap.Logger
	level  zapcore.Level
	only   catalog.Namespace

	calls  atomic.Uint64
	mu     sync.Mutex
	counts map[string]uint64
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger overrides the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// WithLevel sets the level calls are logged at. The default is debug.
func WithLevel(level zapcore.Level) Option {
	return func(b *Backend) { b.level = level }
}

// WithResult replaces the zero result of unforwarded calls.
func WithResult(fn ResultFunc) Option {
	return func(b *Backend) {
		if fn != nil {
			b.result = fn
		}
	}
}

// WithNamespace restricts tracing to one namespace. Operations outside it
// are passed to the wrapped resolver untouched, or left unwired.
func WithNamespace(ns catalog.Namespace) Option {
	return func(b *Backend) { b.only = ns }
}

// New returns a backend that wires every cataloged operation, logs it and
// returns zero.
func New(opts ...Option) *Backend {
	return Wrap(nil, opts...)
}

// Wrap returns a backend that logs each call before handing it to next.
// Operations next leaves unwired stay unwired. A nil next behaves as New.
func Wrap(next dispatch.Resolver, opts ...Option) *Backend {
	b := &Backend{
		next:   next,
		result: func(catalog.Entry, abi.Args) uint64 { return 0 },
		log:    Logger(),
		level:  zapcore.DebugLevel,
		counts: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resolve implements dispatch.Resolver.
func (b *Backend) Resolve(e catalog.Entry) (dispatch.Target, bool) {
	var inner dispatch.Target
	if b.next != nil {
		t, ok := b.next.Resolve(e)
		if !ok {
			return nil, false
		}
		inner = t
	}
	if b.only != catalog.Invalid && e.Namespace != b.only {
		if inner == nil {
			return nil, false
		}
		return inner, true
	}
	sig := e.Signature()
	return func(args abi.Args) uint64 {
		var w uint64
		if inner != nil {
			w = inner(args)
		} else {
			w = b.result(e, args)
		}
		b.record(e, sig, args, w)
		return w
	}, true
}

func (b *Backend) record(e catalog.Entry, sig abi.Signature, args abi.Args, w uint64) {
	b.calls.Add(1)
	b.mu.Lock()
	b.counts[e.Name]++
	b.mu.Unlock()

	ce := b.log.Check(b.level, "call")
	if ce == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", e.Name),
		zap.Uint64("opcode", e.Opcode),
		zap.String("call", Format(e, args)),
	}
	if !sig.Void() {
		fields = append(fields, zap.String("result", FormatValue(e.Result, w)))
	}
	ce.Write(fields...)
}

// Calls returns the number of traced calls.
func (b *Backend) Calls() uint64 { return b.calls.Load() }

// Count returns how many times the named operation was traced.
func (b *Backend) Count(name string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[name]
}

// Counts returns a snapshot of per-operation call counts.
func (b *Backend) Counts() map[string]uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]uint64, len(b.counts))
	for k, v := range b.counts {
		out[k] = v
	}
	return out
}

// Format renders a call as it would be written in C, with enumerants and
// addresses in hex.
func Format(e catalog.Entry, args abi.Args) string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	sb.WriteByte('(')
	for i, p := range e.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatValue(p.Kind, args[i]))
	}
	sb.WriteByte(')')
	return sb.String()
}

// FormatValue renders one word as its declared kind.
func FormatValue(k abi.Kind, w uint64) string {
	switch k {
	case abi.Enum:
		return "0x" + strconv.FormatUint(uint64(abi.DecodeEnum(w)), 16)
	case abi.Ptr:
		return "0x" + strconv.FormatUint(w, 16)
	case abi.Bool:
		return strconv.FormatBool(abi.DecodeBool(w))
	case abi.F32:
		return strconv.FormatFloat(float64(abi.DecodeF32(w)), 'g', -1, 32)
	case abi.F64:
		return strconv.FormatFloat(abi.DecodeF64(w), 'g', -1, 64)
	case abi.S8, abi.S16, abi.S32, abi.S64:
		return strconv.FormatInt(signed(k, w), 10)
	case abi.U8, abi.U16, abi.U32, abi.U64:
		return strconv.FormatUint(unsigned(k, w), 10)
	}
	return "void"
}

func signed(k abi.Kind, w uint64) int64 {
	switch k {
	case abi.S8:
		return int64(abi.DecodeS8(w))
	case abi.S16:
		return int64(abi.DecodeS16(w))
	case abi.S32:
		return int64(abi.DecodeS32(w))
	}
	return abi.DecodeS64(w)
}

func unsigned(k abi.Kind, w uint64) uint64 {
	switch k {
	case abi.U8:
		return uint64(abi.DecodeU8(w))
	case abi.U16:
		return uint64(abi.DecodeU16(w))
	case abi.U32:
		return uint64(abi.DecodeU32(w))
	}
	return w
}

var _ dispatch.Resolver = (*Backend)(nil)
