package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCatalog  Phase = "catalog"  // declaration parsing and opcode layout
	PhaseMarshal  Phase = "marshal"  // Go value to transport word and back
	PhaseDispatch Phase = "dispatch" // table construction
	PhaseRoute    Phase = "route"    // per-call classification and invocation
	PhaseResolve  Phase = "resolve"  // symbol resolution
	PhaseBridge   Phase = "bridge"   // wasm domain boundary
	PhaseCapture  Phase = "capture"  // record and replay
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedAPI      Kind = "unsupported_api"
	KindUnsupportedFunction Kind = "unsupported_function"
	KindInvariant           Kind = "invariant"
	KindRangeOverlap        Kind = "range_overlap"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindOverflow            Kind = "overflow"
	KindArity               Kind = "arity"
	KindTypeMismatch        Kind = "type_mismatch"
	KindMissingSymbol       Kind = "missing_symbol"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
	KindInvalidData         Kind = "invalid_data"
	KindCatalogMismatch     Kind = "catalog_mismatch"
	KindTargetPanic         Kind = "target_panic"
)

// Error is the structured error type used throughout glforward
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		if e.Op != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two errors match when phase and kind agree; a target with an empty
// phase matches on kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase == "" {
			return e.Kind == t.Kind
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks. They match on kind only.
var (
	ErrUnsupportedAPI      = &Error{Kind: KindUnsupportedAPI}
	ErrUnsupportedFunction = &Error{Kind: KindUnsupportedFunction}
	ErrInvariant           = &Error{Kind: KindInvariant}
	ErrMissingSymbol       = &Error{Kind: KindMissingSymbol}
	ErrCatalogMismatch     = &Error{Kind: KindCatalogMismatch}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Op sets the operation name
func (b *Builder) Op(name string) *Builder {
	b.err.Op = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedAPI reports an opcode outside every namespace range.
func UnsupportedAPI(opcode uint64) *Error {
	return &Error{
		Phase:  PhaseRoute,
		Kind:   KindUnsupportedAPI,
		Detail: fmt.Sprintf("opcode %d is outside every namespace range", opcode),
		Value:  opcode,
	}
}

// UnsupportedFunction reports a valid opcode whose table slot is empty.
func UnsupportedFunction(opcode uint64, op string) *Error {
	return &Error{
		Phase:  PhaseRoute,
		Kind:   KindUnsupportedFunction,
		Op:     op,
		Detail: fmt.Sprintf("opcode %d has no wired implementation", opcode),
		Value:  opcode,
	}
}

// Invariant creates a construction-time invariant violation
func Invariant(phase Phase, msg string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: fmt.Sprintf(msg, args...),
	}
}

// RangeOverlap reports two namespaces whose opcode ranges intersect
func RangeOverlap(a, b string, lo, hi uint64) *Error {
	return &Error{
		Phase:  PhaseCatalog,
		Kind:   KindRangeOverlap,
		Detail: fmt.Sprintf("namespace %s overlaps %s in [%d, %d]", a, b, lo, hi),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %v overflows %s", value, kind),
		Value:  value,
	}
}

// Arity reports a call whose argument count does not match the signature
func Arity(phase Phase, op string, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArity,
		Op:     op,
		Detail: fmt.Sprintf("expected %d arguments, got %d", want, got),
		Value:  got,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("cannot carry Go type %s as %s", goType, kind),
	}
}

// MissingSymbol reports required operations the resolver could not supply
func MissingSymbol(names []string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindMissingSymbol,
		Detail: "unresolved: " + strings.Join(names, ", "),
		Value:  names,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// TargetPanic wraps a panic raised by an invoked operation
func TargetPanic(op string, recovered any) *Error {
	return &Error{
		Phase:  PhaseRoute,
		Kind:   KindTargetPanic,
		Op:     op,
		Detail: fmt.Sprintf("target panicked: %v", recovered),
		Value:  recovered,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
