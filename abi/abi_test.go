package abi

import (
	stderrors "errors"
	"math"
	"reflect"
	"testing"

	"github.com/wippyai/glforward/errors"
)

func TestWidenNarrowRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   any
	}{
		{"bool true", Bool, true},
		{"bool false", Bool, false},
		{"s8 min", S8, int8(math.MinInt8)},
		{"u8 max", U8, uint8(math.MaxUint8)},
		{"s16 negative", S16, int16(-1234)},
		{"u16 max", U16, uint16(math.MaxUint16)},
		{"s32 min", S32, int32(math.MinInt32)},
		{"s32 minus one", S32, int32(-1)},
		{"u32 max", U32, uint32(math.MaxUint32)},
		{"s64 min", S64, int64(math.MinInt64)},
		{"u64 max", U64, uint64(math.MaxUint64)},
		{"f32 pi", F32, float32(math.Pi)},
		{"f32 negative zero", F32, float32(math.Copysign(0, -1))},
		{"f32 inf", F32, float32(math.Inf(1))},
		{"f64 e", F64, math.E},
		{"f64 smallest", F64, math.SmallestNonzeroFloat64},
		{"ptr", Ptr, uintptr(0xdeadbeef)},
		{"enum", Enum, uint32(0x0DE1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Encode(tt.kind, tt.in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got := Decode(tt.kind, w)
			if !reflect.DeepEqual(got, tt.in) {
				t.Errorf("round trip = %#v, want %#v", got, tt.in)
			}
			if reflect.TypeOf(got) != GoType(tt.kind) {
				t.Errorf("Decode type = %v, GoType = %v", reflect.TypeOf(got), GoType(tt.kind))
			}
		})
	}
}

func TestF32NaNBitsPreserved(t *testing.T) {
	nan := math.Float32frombits(0x7fc00123)
	w := EncodeF32(nan)
	if w>>32 != 0 {
		t.Errorf("f32 word has high bits set: %#x", w)
	}
	if bits := math.Float32bits(DecodeF32(w)); bits != 0x7fc00123 {
		t.Errorf("NaN payload = %#x, want 0x7fc00123", bits)
	}
}

func TestWidening(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   any
		want uint64
	}{
		{"s32 sign extends", S32, int32(-1), math.MaxUint64},
		{"s8 sign extends", S8, int8(-2), math.MaxUint64 - 1},
		{"u32 zero extends", U32, uint32(math.MaxUint32), 0xffffffff},
		{"enum zero extends", Enum, uint32(0x8000_0000), 0x8000_0000},
		{"bool", Bool, true, 1},
		{"untyped int into s32", S32, -5, uint64(math.MaxUint64 - 4)},
		{"f64 narrowed to f32", F32, 1.5, uint64(math.Float32bits(1.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.kind, tt.in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestNarrowIgnoresHighBits(t *testing.T) {
	w := uint64(0xffff_ffff_0000_0007)
	if got := DecodeS32(w); got != 7 {
		t.Errorf("DecodeS32 = %d, want 7", got)
	}
	if got := DecodeEnum(w); got != 7 {
		t.Errorf("DecodeEnum = %d, want 7", got)
	}
	if !DecodeBool(0x100_0000_0001) {
		t.Error("DecodeBool should read the low byte")
	}
	if DecodeBool(0x100) {
		t.Error("DecodeBool should ignore bits above the low byte")
	}
}

type glEnum uint32
type glFloat float32

func TestNamedTypes(t *testing.T) {
	w, err := Encode(Enum, glEnum(0x1701))
	if err != nil {
		t.Fatalf("Encode named enum: %v", err)
	}
	if w != 0x1701 {
		t.Errorf("named enum = %#x", w)
	}

	w, err = Encode(F32, glFloat(0.25))
	if err != nil {
		t.Fatalf("Encode named float: %v", err)
	}
	if DecodeF32(w) != 0.25 {
		t.Errorf("named float = %v", DecodeF32(w))
	}

	if Word(glFloat(0.25)) != w {
		t.Error("Word and Encode disagree on named float")
	}
	if As[glEnum](Word(glEnum(9))) != 9 {
		t.Error("As does not invert Word for named enum")
	}
}

func TestWordAs(t *testing.T) {
	if got := Word(int16(-1)); got != math.MaxUint64 {
		t.Errorf("Word(int16(-1)) = %#x", got)
	}
	if got := Word(uint16(0xffff)); got != 0xffff {
		t.Errorf("Word(uint16) = %#x", got)
	}
	if got := As[float64](Word(2.5)); got != 2.5 {
		t.Errorf("As[float64] = %v", got)
	}
	if got := As[float32](Word(float32(-0.5))); got != -0.5 {
		t.Errorf("As[float32] = %v", got)
	}
	if got := As[int8](Word(int8(-100))); got != -100 {
		t.Errorf("As[int8] = %v", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   any
		want errors.Kind
	}{
		{"s8 overflow", S8, 200, errors.KindOverflow},
		{"u8 negative", U8, -1, errors.KindOverflow},
		{"s32 from huge uint", S32, uint64(math.MaxUint64), errors.KindOverflow},
		{"enum overflow", Enum, uint64(1) << 40, errors.KindOverflow},
		{"string as s32", S32, "seven", errors.KindTypeMismatch},
		{"float as s32", S32, 1.0, errors.KindTypeMismatch},
		{"int as bool", Bool, 1, errors.KindTypeMismatch},
		{"nil", U32, nil, errors.KindTypeMismatch},
		{"void", Void, 1, errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.kind, tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error type = %T", err)
			}
			if e.Kind != tt.want {
				t.Errorf("Kind = %s, want %s", e.Kind, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"s32", S32, false},
		{"u64", U64, false},
		{"f32", F32, false},
		{"bool", Bool, false},
		{"ptr", Ptr, false},
		{"enum", Enum, false},
		{"string", Void, true},
		{"nonsense", Void, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKindWITRoundTrip(t *testing.T) {
	for k := Bool; k <= F64; k++ {
		got, ok := FromWIT(k.WIT())
		if !ok || got != k {
			t.Errorf("FromWIT(%s.WIT()) = %s, %v", k, got, ok)
		}
	}
	if Void.WIT() != nil {
		t.Error("void has no WIT type")
	}
}

func TestSignatureEncodeDecode(t *testing.T) {
	sig := Signature{
		Params: []Kind{S32, S32, S32, S32, U32, S32, S32, S32, S32, S32, Enum},
		Result: Void,
	}
	if sig.Tier() != TierLong {
		t.Errorf("Tier = %s", sig.Tier())
	}

	in := []any{int32(1), int32(-2), int32(3), int32(-4), uint32(5), int32(6), int32(7), int32(8), int32(9), int32(10), uint32(0x1401)}
	a, err := sig.Encode(in...)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := len(in); i < MaxArgs; i++ {
		if a[i] != 0 {
			t.Errorf("slot %d = %#x, want zero", i, a[i])
		}
	}
	if got := sig.Decode(a); !reflect.DeepEqual(got, in) {
		t.Errorf("Decode = %v, want %v", got, in)
	}
}

// sample returns a value of kind k that exercises its edges: sign bits,
// full unsigned width and a NaN with a payload.
func sample(k Kind, i int) any {
	neg := i%2 == 0
	switch k {
	case Bool:
		return neg
	case S8:
		if neg {
			return int8(math.MinInt8)
		}
		return int8(math.MaxInt8)
	case U8:
		return uint8(math.MaxUint8 - i)
	case S16:
		return int16(-1 - i)
	case U16:
		return uint16(math.MaxUint16 - i)
	case S32:
		return int32(math.MinInt32 + i)
	case U32:
		return uint32(math.MaxUint32 - i)
	case S64:
		return int64(math.MinInt64 + i)
	case U64:
		return uint64(math.MaxUint64 - uint64(i))
	case F32:
		return math.Float32frombits(0x7fa0_0000 | uint32(i))
	case F64:
		return math.Float64frombits(0xfff4_0000_0000_0000 | uint64(i))
	case Ptr:
		return uintptr(0x1000 + 8*i)
	case Enum:
		return uint32(0x8000_0000 | i)
	}
	return nil
}

// bits reinterprets a decoded value so NaN payloads compare exactly.
func bits(v any) any {
	switch v := v.(type) {
	case float32:
		return math.Float32bits(v)
	case float64:
		return math.Float64bits(v)
	}
	return v
}

func TestVectorRoundTripEveryArity(t *testing.T) {
	kinds := []Kind{Bool, S8, U8, S16, U16, S32, U32, S64, U64, F32, F64, Ptr, Enum}
	for arity := 0; arity <= MaxArgs; arity++ {
		for shift := range kinds {
			sig := Signature{Params: make([]Kind, arity)}
			in := make([]any, arity)
			for i := range sig.Params {
				sig.Params[i] = kinds[(shift+i)%len(kinds)]
				in[i] = sample(sig.Params[i], i)
			}
			a, err := sig.Encode(in...)
			if err != nil {
				t.Fatalf("arity %d shift %d: Encode: %v", arity, shift, err)
			}
			v, err := Pack(0x2a, a[:arity]...)
			if err != nil {
				t.Fatalf("arity %d: Pack: %v", arity, err)
			}
			if v.Opcode() != 0x2a {
				t.Fatalf("arity %d: opcode = %#x", arity, v.Opcode())
			}
			got := v.Args()
			for i := arity; i < MaxArgs; i++ {
				if got[i] != 0 {
					t.Errorf("arity %d: slot %d = %#x, want zero", arity, i, got[i])
				}
			}
			out := sig.Decode(got)
			for i := range in {
				if bits(out[i]) != bits(in[i]) {
					t.Errorf("arity %d shift %d: slot %d (%s) = %#v, want %#v",
						arity, shift, i, sig.Params[i], out[i], in[i])
				}
			}
			if sig.Tier() != TierOf(arity) {
				t.Errorf("arity %d: tier = %s", arity, sig.Tier())
			}
		}
	}
}

func TestSignatureEncodeErrors(t *testing.T) {
	sig := Signature{Params: []Kind{S32, U8}}

	_, err := sig.Encode(int32(1))
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindArity}) {
		t.Errorf("short call: %v", err)
	}

	_, err = sig.Encode(int32(1), 300)
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if len(e.Path) != 2 || e.Path[0] != "arg" || e.Path[1] != "1" {
		t.Errorf("Path = %v, want [arg 1]", e.Path)
	}
}

func TestSignatureString(t *testing.T) {
	tests := []struct {
		sig  Signature
		want string
	}{
		{Signature{}, "()"},
		{Signature{Result: Enum}, "() -> enum"},
		{Signature{Params: []Kind{S32, S32, S32, S32}}, "(s32, s32, s32, s32)"},
		{Signature{Params: []Kind{U32, Ptr}, Result: Bool}, "(u32, ptr) -> bool"},
	}
	for _, tt := range tests {
		if got := tt.sig.String(); got != tt.want {
			t.Errorf("String = %q, want %q", got, tt.want)
		}
	}
}

func TestPack(t *testing.T) {
	v, err := Pack(16, 1, 2, 3)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if v.Opcode() != 16 {
		t.Errorf("Opcode = %d", v.Opcode())
	}
	a := v.Args()
	if a[0] != 1 || a[2] != 3 || a[3] != 0 {
		t.Errorf("Args = %v", a)
	}
	if WithArgs(16, a) != v {
		t.Error("WithArgs does not rebuild the vector")
	}

	if _, err := Pack(0, make([]uint64, MaxArgs+1)...); err == nil {
		t.Error("expected arity error for 16 arguments")
	}
}
