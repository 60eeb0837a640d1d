package abi

import (
	"go.bytecodealliance.org/wit"
)

// Kind is the declared type of a parameter or result as it crosses the
// domain boundary. Every kind except Void occupies exactly one word.
type Kind uint8

const (
	Void Kind = iota
	Bool
	S8
	U8
	S16
	U16
	S32
	U32
	S64
	U64
	F32
	F64
	Ptr  // address in the calling domain
	Enum // 32-bit enumerant or bitmask
)

var kindNames = [...]string{
	Void: "void",
	Bool: "bool",
	S8:   "s8",
	U8:   "u8",
	S16:  "s16",
	U16:  "u16",
	S32:  "s32",
	U32:  "u32",
	S64:  "s64",
	U64:  "u64",
	F32:  "f32",
	F64:  "f64",
	Ptr:  "ptr",
	Enum: "enum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Size returns the true width of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case Bool, S8, U8:
		return 1
	case S16, U16:
		return 2
	case S32, U32, F32, Enum:
		return 4
	case S64, U64, F64, Ptr:
		return 8
	default:
		return 0
	}
}

// Signed reports whether widening sign-extends.
func (k Kind) Signed() bool {
	return k == S8 || k == S16 || k == S32 || k == S64
}

// Float reports whether the kind is carried as IEEE-754 bits.
func (k Kind) Float() bool {
	return k == F32 || k == F64
}

// Valid reports whether k names a declared kind.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind resolves a declaration type name. The transport aliases
// "ptr" and "enum" are recognised directly; everything else must be a
// WIT primitive.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "ptr":
		return Ptr, nil
	case "enum":
		return Enum, nil
	}
	t, err := wit.ParseType(s)
	if err != nil {
		return Void, err
	}
	k, ok := FromWIT(t)
	if !ok {
		return Void, &unsupportedTypeError{name: s}
	}
	return k, nil
}

type unsupportedTypeError struct {
	name string
}

func (e *unsupportedTypeError) Error() string {
	return "type " + e.name + " does not fit a single transport word"
}

// FromWIT maps a WIT primitive onto its transport kind.
// Only types whose flat representation is a single scalar qualify.
func FromWIT(t wit.Type) (Kind, bool) {
	switch t.(type) {
	case wit.Bool:
		return Bool, true
	case wit.S8:
		return S8, true
	case wit.U8:
		return U8, true
	case wit.S16:
		return S16, true
	case wit.U16:
		return U16, true
	case wit.S32:
		return S32, true
	case wit.U32, wit.Char:
		return U32, true
	case wit.S64:
		return S64, true
	case wit.U64:
		return U64, true
	case wit.F32:
		return F32, true
	case wit.F64:
		return F64, true
	default:
		return Void, false
	}
}

// WIT returns the WIT primitive used to describe k.
// Ptr is described as u64 and Enum as u32.
func (k Kind) WIT() wit.Type {
	switch k {
	case Bool:
		return wit.Bool{}
	case S8:
		return wit.S8{}
	case U8:
		return wit.U8{}
	case S16:
		return wit.S16{}
	case U16:
		return wit.U16{}
	case S32:
		return wit.S32{}
	case U32, Enum:
		return wit.U32{}
	case S64:
		return wit.S64{}
	case U64, Ptr:
		return wit.U64{}
	case F32:
		return wit.F32{}
	case F64:
		return wit.F64{}
	default:
		return nil
	}
}
