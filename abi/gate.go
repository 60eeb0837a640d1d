package abi

import (
	"github.com/wippyai/glforward/errors"
)

// Tier selects the trampoline used to cross the boundary.
// It is a cost optimisation only: both tiers deliver the same vector.
type Tier uint8

const (
	TierShort Tier = iota // 0..ShortArity arguments
	TierLong              // ShortArity+1..MaxArgs arguments
)

func (t Tier) String() string {
	if t == TierShort {
		return "short"
	}
	return "long"
}

// TierOf returns the tier for an arity.
func TierOf(arity int) Tier {
	if arity <= ShortArity {
		return TierShort
	}
	return TierLong
}

// Gate is the calling side of the boundary. Short carries at most
// ShortArity argument words, Long carries all MaxArgs. Implementations
// must route both to the same callee with the same zero-filled vector.
type Gate interface {
	Short(opcode uint64, args ShortArgs) uint64
	Long(opcode uint64, args Args) uint64
}

// Invoke widens nothing: words are already transport words. It picks
// the cheaper tier that fits and zero-fills trailing slots.
func Invoke(g Gate, opcode uint64, words ...uint64) (uint64, error) {
	switch {
	case len(words) <= ShortArity:
		var s ShortArgs
		copy(s[:], words)
		return g.Short(opcode, s), nil
	case len(words) <= MaxArgs:
		var a Args
		copy(a[:], words)
		return g.Long(opcode, a), nil
	default:
		return 0, errors.Arity(errors.PhaseMarshal, "", MaxArgs, len(words))
	}
}

// ShortVector is the vector a short-tier call delivers.
func ShortVector(opcode uint64, s ShortArgs) Vector {
	var v Vector
	v[0] = opcode
	copy(v[1:], s[:])
	return v
}

// LongVector is the vector a long-tier call delivers.
func LongVector(opcode uint64, a Args) Vector {
	return WithArgs(opcode, a)
}

// Extend zero-fills a short block to a full argument block.
func Extend(s ShortArgs) Args {
	var a Args
	copy(a[:], s[:])
	return a
}

// VectorFunc adapts a function over the full vector to a Gate.
type VectorFunc func(v Vector) uint64

func (f VectorFunc) Short(opcode uint64, args ShortArgs) uint64 {
	return f(ShortVector(opcode, args))
}

func (f VectorFunc) Long(opcode uint64, args Args) uint64 {
	return f(LongVector(opcode, args))
}
