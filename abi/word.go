package abi

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Transport encoding. Each argument occupies one 64-bit word:
//
//	kind            widen                         narrow
//	s8 s16 s32 s64  sign-extend                   truncate
//	u8 u16 u32 u64  zero-extend                   truncate
//	bool            0 or 1                        low byte != 0
//	enum            zero-extend from 32 bits      truncate to 32 bits
//	f32             IEEE bits, zero-extended      low 32 bits as IEEE
//	f64             IEEE bits                     IEEE bits
//	ptr             address                       address
//
// Floats are bit-reinterpreted, never converted numerically.

func EncodeBool(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

func DecodeBool(w uint64) bool { return uint8(w) != 0 }

func EncodeS8(v int8) uint64   { return uint64(v) }
func DecodeS8(w uint64) int8   { return int8(w) }
func EncodeU8(v uint8) uint64  { return uint64(v) }
func DecodeU8(w uint64) uint8  { return uint8(w) }
func EncodeS16(v int16) uint64 { return uint64(v) }
func DecodeS16(w uint64) int16 { return int16(w) }

func EncodeU16(v uint16) uint64 { return uint64(v) }
func DecodeU16(w uint64) uint16 { return uint16(w) }
func EncodeS32(v int32) uint64  { return uint64(v) }
func DecodeS32(w uint64) int32  { return int32(w) }
func EncodeU32(v uint32) uint64 { return uint64(v) }
func DecodeU32(w uint64) uint32 { return uint32(w) }
func EncodeS64(v int64) uint64  { return uint64(v) }
func DecodeS64(w uint64) int64  { return int64(w) }
func EncodeU64(v uint64) uint64 { return v }
func DecodeU64(w uint64) uint64 { return w }

func EncodeEnum(v uint32) uint64 { return uint64(v) }
func DecodeEnum(w uint64) uint32 { return uint32(w) }

func EncodeF32(v float32) uint64 { return uint64(math.Float32bits(v)) }
func DecodeF32(w uint64) float32 { return math.Float32frombits(uint32(w)) }
func EncodeF64(v float64) uint64 { return math.Float64bits(v) }
func DecodeF64(w uint64) float64 { return math.Float64frombits(w) }

func EncodePtr(v uintptr) uint64 { return uint64(v) }
func DecodePtr(w uint64) uintptr { return uintptr(w) }

// Scalar is the set of Go types that fit one transport word by value.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Word widens v by the rule of its underlying Go type.
// Named types (type GLenum uint32) follow their underlying type.
func Word[T Scalar](v T) uint64 {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return EncodeF32(float32(v))
	case reflect.Float64:
		return EncodeF64(float64(v))
	}
	// Go integer conversion sign-extends signed sources and
	// zero-extends unsigned ones.
	return uint64(v)
}

// As narrows w to T. It is the inverse of Word.
func As[T Scalar](w uint64) T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return T(DecodeF32(w))
	case reflect.Float64:
		return T(DecodeF64(w))
	}
	return T(w)
}
