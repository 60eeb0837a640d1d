package abi

import (
	"strconv"
	"strings"

	"github.com/wippyai/glforward/errors"
)

const (
	// VectorWords is the width of an Argument Vector: the opcode plus MaxArgs.
	VectorWords = 16
	// MaxArgs is the largest arity a single call can carry.
	MaxArgs = VectorWords - 1
	// ShortArity is the largest arity handled by the short tier.
	ShortArity = 5
)

// Args is the argument part of a vector. Slots past the callee's arity
// are zero on the way in and must not be interpreted by the callee.
type Args [MaxArgs]uint64

// ShortArgs is the argument block of the short tier.
type ShortArgs [ShortArity]uint64

// Vector is the fixed transport form of one call: word 0 is the opcode,
// words 1..15 are the arguments in declaration order.
type Vector [VectorWords]uint64

// Pack builds a vector from already-widened argument words.
func Pack(opcode uint64, words ...uint64) (Vector, error) {
	var v Vector
	if len(words) > MaxArgs {
		return v, errors.Arity(errors.PhaseMarshal, "", MaxArgs, len(words))
	}
	v[0] = opcode
	copy(v[1:], words)
	return v, nil
}

// Opcode returns word 0.
func (v Vector) Opcode() uint64 { return v[0] }

// Args returns words 1..15.
func (v Vector) Args() Args {
	var a Args
	copy(a[:], v[1:])
	return a
}

// WithArgs returns a vector carrying opcode and a.
func WithArgs(opcode uint64, a Args) Vector {
	var v Vector
	v[0] = opcode
	copy(v[1:], a[:])
	return v
}

// Signature describes an operation's declared parameter and result kinds.
type Signature struct {
	Params []Kind
	Result Kind
}

// Arity returns the number of argument words.
func (s Signature) Arity() int { return len(s.Params) }

// Tier returns the trampoline tier serving this signature.
func (s Signature) Tier() Tier { return TierOf(len(s.Params)) }

// Void reports whether the result must be ignored.
func (s Signature) Void() bool { return s.Result == Void }

func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if s.Result != Void {
		b.WriteString(" -> ")
		b.WriteString(s.Result.String())
	}
	return b.String()
}

// Encode widens args according to the signature.
func (s Signature) Encode(args ...any) (Args, error) {
	var out Args
	if len(args) != len(s.Params) {
		return out, errors.Arity(errors.PhaseMarshal, "", len(s.Params), len(args))
	}
	for i, arg := range args {
		w, err := Encode(s.Params[i], arg)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = append([]string{"arg", strconv.Itoa(i)}, e.Path...)
			}
			return out, err
		}
		out[i] = w
	}
	return out, nil
}

// Decode narrows the meaningful slots of a into Go values.
func (s Signature) Decode(a Args) []any {
	out := make([]any, len(s.Params))
	for i, k := range s.Params {
		out[i] = Decode(k, a[i])
	}
	return out
}
