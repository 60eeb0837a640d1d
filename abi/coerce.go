package abi

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/wippyai/glforward/errors"
)

// Encode widens a Go value to a transport word as kind k.
//
// Integers of any Go width are accepted for integer kinds, ptr and enum
// as long as the value is representable in k's true width (for signed
// kinds) or fits its unsigned range. Floats are accepted only for float
// kinds, bools only for bool. Named types follow their underlying kind.
func Encode(k Kind, v any) (uint64, error) {
	switch k {
	case Void:
		return 0, errors.InvalidInput(errors.PhaseMarshal, "void carries no value")
	case F32:
		switch x := v.(type) {
		case float32:
			return EncodeF32(x), nil
		case float64:
			// float64 -> float32 is the C argument conversion for a float parameter
			return EncodeF32(float32(x)), nil
		}
	case F64:
		switch x := v.(type) {
		case float64:
			return EncodeF64(x), nil
		case float32:
			return EncodeF64(float64(x)), nil
		}
	case Bool:
		if x, ok := v.(bool); ok {
			return EncodeBool(x), nil
		}
	case Ptr:
		switch x := v.(type) {
		case uintptr:
			return EncodePtr(x), nil
		case unsafe.Pointer:
			return EncodePtr(uintptr(x)), nil
		}
	}

	if w, ok := encodeFast(k, v); ok {
		return w, nil
	}
	return encodeReflect(k, v)
}

func encodeFast(k Kind, v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return fitSigned(k, int64(x))
	case int8:
		return fitSigned(k, int64(x))
	case int16:
		return fitSigned(k, int64(x))
	case int32:
		return fitSigned(k, int64(x))
	case int64:
		return fitSigned(k, x)
	case uint:
		return fitUnsigned(k, uint64(x))
	case uint8:
		return fitUnsigned(k, uint64(x))
	case uint16:
		return fitUnsigned(k, uint64(x))
	case uint32:
		return fitUnsigned(k, uint64(x))
	case uint64:
		return fitUnsigned(k, x)
	}
	return 0, false
}

func encodeReflect(k Kind, v any) (uint64, error) {
	if v == nil {
		return 0, errors.TypeMismatch(errors.PhaseMarshal, nil, "nil", k.String())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if w, ok := fitSigned(k, rv.Int()); ok {
			return w, nil
		}
		if isInteger(k) {
			return 0, errors.Overflow(errors.PhaseMarshal, nil, v, k.String())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if w, ok := fitUnsigned(k, rv.Uint()); ok {
			return w, nil
		}
		if isInteger(k) {
			return 0, errors.Overflow(errors.PhaseMarshal, nil, v, k.String())
		}
	case reflect.Float32:
		if k == F32 {
			return EncodeF32(float32(rv.Float())), nil
		}
		if k == F64 {
			return EncodeF64(rv.Float()), nil
		}
	case reflect.Float64:
		if k == F64 {
			return EncodeF64(rv.Float()), nil
		}
		if k == F32 {
			return EncodeF32(float32(rv.Float())), nil
		}
	case reflect.Bool:
		if k == Bool {
			return EncodeBool(rv.Bool()), nil
		}
	case reflect.Pointer, reflect.UnsafePointer:
		if k == Ptr {
			return EncodePtr(rv.Pointer()), nil
		}
	}
	return 0, errors.TypeMismatch(errors.PhaseMarshal, nil, rv.Type().String(), k.String())
}

func isInteger(k Kind) bool {
	switch k {
	case S8, U8, S16, U16, S32, U32, S64, U64, Ptr, Enum:
		return true
	}
	return false
}

func fitSigned(k Kind, v int64) (uint64, bool) {
	switch k {
	case S8:
		if v >= math.MinInt8 && v <= math.MaxInt8 {
			return EncodeS8(int8(v)), true
		}
	case S16:
		if v >= math.MinInt16 && v <= math.MaxInt16 {
			return EncodeS16(int16(v)), true
		}
	case S32:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return EncodeS32(int32(v)), true
		}
	case S64:
		return EncodeS64(v), true
	case U8, U16, U32, U64, Enum, Ptr:
		if v >= 0 {
			return fitUnsigned(k, uint64(v))
		}
	}
	return 0, false
}

func fitUnsigned(k Kind, v uint64) (uint64, bool) {
	switch k {
	case U8:
		if v <= math.MaxUint8 {
			return EncodeU8(uint8(v)), true
		}
	case U16:
		if v <= math.MaxUint16 {
			return EncodeU16(uint16(v)), true
		}
	case U32:
		if v <= math.MaxUint32 {
			return EncodeU32(uint32(v)), true
		}
	case Enum:
		if v <= math.MaxUint32 {
			return EncodeEnum(uint32(v)), true
		}
	case U64:
		return EncodeU64(v), true
	case Ptr:
		return EncodePtr(uintptr(v)), true
	case S8, S16, S32, S64:
		if v <= math.MaxInt64 {
			return fitSigned(k, int64(v))
		}
	}
	return 0, false
}

// Decode narrows w to the Go type that carries k:
// bool, int8..int64, uint8..uint64, float32, float64, uintptr (ptr)
// or uint32 (enum). Void decodes to nil.
func Decode(k Kind, w uint64) any {
	switch k {
	case Bool:
		return DecodeBool(w)
	case S8:
		return DecodeS8(w)
	case U8:
		return DecodeU8(w)
	case S16:
		return DecodeS16(w)
	case U16:
		return DecodeU16(w)
	case S32:
		return DecodeS32(w)
	case U32:
		return DecodeU32(w)
	case S64:
		return DecodeS64(w)
	case U64:
		return DecodeU64(w)
	case F32:
		return DecodeF32(w)
	case F64:
		return DecodeF64(w)
	case Ptr:
		return DecodePtr(w)
	case Enum:
		return DecodeEnum(w)
	default:
		return nil
	}
}

// GoType returns the Go type Decode produces for k.
func GoType(k Kind) reflect.Type {
	switch k {
	case Bool:
		return reflect.TypeFor[bool]()
	case S8:
		return reflect.TypeFor[int8]()
	case U8:
		return reflect.TypeFor[uint8]()
	case S16:
		return reflect.TypeFor[int16]()
	case U16:
		return reflect.TypeFor[uint16]()
	case S32:
		return reflect.TypeFor[int32]()
	case U32, Enum:
		return reflect.TypeFor[uint32]()
	case S64:
		return reflect.TypeFor[int64]()
	case U64:
		return reflect.TypeFor[uint64]()
	case F32:
		return reflect.TypeFor[float32]()
	case F64:
		return reflect.TypeFor[float64]()
	case Ptr:
		return reflect.TypeFor[uintptr]()
	default:
		return nil
	}
}

// Widen encodes a result value. It follows the argument rule.
func Widen(k Kind, v any) (uint64, error) {
	if k == Void {
		return 0, nil
	}
	return Encode(k, v)
}

// Narrow decodes a result word. Void results are ignored and yield nil.
func Narrow(k Kind, w uint64) any {
	return Decode(k, w)
}
