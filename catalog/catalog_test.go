package catalog

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/errors"
)

func TestDefaultRanges(t *testing.T) {
	c := Default()

	tests := []struct {
		ns   Namespace
		want Range
	}{
		{GLES2, Range{Min: 0, Max: 7168}},
		{EGL, Range{Min: 10000, Max: 10520}},
	}
	for _, tt := range tests {
		t.Run(tt.ns.String(), func(t *testing.T) {
			got, ok := c.RangeOf(tt.ns)
			if !ok {
				t.Fatal("range not loaded")
			}
			if got != tt.want {
				t.Errorf("RangeOf = %s, want %s", got, tt.want)
			}
		})
	}

	if _, ok := c.RangeOf(Invalid); ok {
		t.Error("Invalid has no range")
	}
	if c.Stride() != 8 || c.Bias(EGL) != 10000 || c.Bias(GLES2) != 0 {
		t.Errorf("layout = %+v", c.Layout())
	}
}

func TestNamespaceOf(t *testing.T) {
	tests := []struct {
		opcode Opcode
		want   Namespace
	}{
		{0, GLES2},
		{160, GLES2},
		{1776, GLES2},
		{7168, GLES2},
		{7169, Invalid},
		{7200, Invalid},
		{9999, Invalid},
		{10000, EGL},
		{10024, EGL},
		{10520, EGL},
		{10521, Invalid},
		{1<<64 - 1, Invalid},
	}
	for _, tt := range tests {
		if got := NamespaceOf(tt.opcode); got != tt.want {
			t.Errorf("NamespaceOf(%d) = %s, want %s", tt.opcode, got, tt.want)
		}
	}
}

func TestOpcodeLayout(t *testing.T) {
	tests := []struct {
		op     Op
		name   string
		opcode Opcode
	}{
		{GLActiveShaderProgram, "glActiveShaderProgram", 0},
		{GLActiveTexture, "glActiveTexture", 16},
		{GLClear, "glClear", 528},
		{GLViewport, "glViewport", 7112},
		{GLWaitSync, "glWaitSync", 7144},
		{GLWeightPointerOES, "glWeightPointerOES", 7168},
		{EGLGetDisplay, "eglGetDisplay", 10000},
		{EGLGetConfigs, "eglGetConfigs", 10024},
		{EGLSetDamageRegionKHR, "eglSetDamageRegionKHR", 10520},
	}
	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.op.String() != tt.name {
				t.Errorf("String = %s", tt.op)
			}
			if got := OpcodeOf(tt.op); got != tt.opcode {
				t.Errorf("OpcodeOf = %d, want %d", got, tt.opcode)
			}
			if got := c.OpcodeOf(tt.op); got != tt.opcode {
				t.Errorf("Catalog.OpcodeOf = %d, want %d", got, tt.opcode)
			}
			op, ok := c.OpAt(tt.opcode)
			if !ok || op != tt.op {
				t.Errorf("OpAt(%d) = %s, %v", tt.opcode, op, ok)
			}
			op, ok = Lookup(tt.name)
			if !ok || op != tt.op {
				t.Errorf("Lookup = %s, %v", op, ok)
			}
		})
	}
}

func TestEGLSlotRemovesBias(t *testing.T) {
	c := Default()
	if got := c.Slot(EGL, 10024); got != 3 {
		t.Errorf("Slot(EGL, 10024) = %d, want 3", got)
	}
	if got := c.Slot(GLES2, 160); got != 20 {
		t.Errorf("Slot(GLES2, 160) = %d, want 20", got)
	}
}

func TestEntriesIncreasingOpcode(t *testing.T) {
	c := Default()
	for _, ns := range Namespaces {
		entries := c.Entries(ns)
		if len(entries) != c.Count(ns) {
			t.Fatalf("%s: %d entries, Count %d", ns, len(entries), c.Count(ns))
		}
		for i, e := range entries {
			if e.Namespace != ns || e.Index != i {
				t.Errorf("%s: entry %d = %+v", ns, i, e)
			}
			if i > 0 && e.Opcode != entries[i-1].Opcode+Stride {
				t.Errorf("%s: %s opcode %d does not follow %d", ns, e.Name, e.Opcode, entries[i-1].Opcode)
			}
			if e.Op.Namespace() != ns {
				t.Errorf("%s.Namespace() = %s", e.Op, e.Op.Namespace())
			}
		}
	}
	if got := len(c.Entries(Invalid)); got != c.Len() || got != len(Ops()) {
		t.Errorf("all entries = %d, Len %d, Ops %d", got, c.Len(), len(Ops()))
	}
}

func TestEntrySignature(t *testing.T) {
	c := Default()

	tests := []struct {
		op   Op
		want string
		tier abi.Tier
	}{
		{GLGetError, "() -> enum", abi.TierShort},
		{GLClearColor, "(f32, f32, f32, f32)", abi.TierShort},
		{GLIsEnabled, "(enum) -> bool", abi.TierShort},
		{GLGetString, "(enum) -> ptr", abi.TierShort},
		{GLVertexAttribPointer, "(u32, s32, enum, bool, s32, ptr)", abi.TierLong},
		{GLTexSubImage3D, "(enum, s32, s32, s32, s32, s32, s32, s32, enum, enum, ptr)", abi.TierLong},
		{GLDrawTexsOES, "(s16, s16, s16, s16, s16)", abi.TierShort},
		{GLColor4ub, "(u8, u8, u8, u8)", abi.TierShort},
		{GLGetTextureHandleNV, "(u32) -> u64", abi.TierShort},
		{GLBlitFramebufferANGLE, "(s32, s32, s32, s32, s32, s32, s32, s32, u32, enum)", abi.TierLong},
		{GLCopyImageSubData, "(u32, enum, s32, s32, s32, s32, u32, enum, s32, s32, s32, s32, s32, s32, s32)", abi.TierLong},
		{EGLInitialize, "(ptr, ptr, ptr) -> u32", abi.TierShort},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			sig := c.Entry(tt.op).Signature()
			if sig.String() != tt.want {
				t.Errorf("Signature = %s, want %s", sig, tt.want)
			}
			if sig.Tier() != tt.tier {
				t.Errorf("Tier = %s, want %s", sig.Tier(), tt.tier)
			}
		})
	}
}

func TestGLES2DeclarationsSorted(t *testing.T) {
	entries := Default().Entries(GLES2)
	if len(entries) != 897 {
		t.Fatalf("GLES2 declares %d entries, want 897", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name >= entries[i].Name {
			t.Errorf("%s declared before %s", entries[i-1].Name, entries[i].Name)
		}
	}
}

func TestEveryArityWithinLimit(t *testing.T) {
	for _, e := range Default().Entries(Invalid) {
		if len(e.Params) > abi.MaxArgs {
			t.Errorf("%s has %d params", e.Name, len(e.Params))
		}
	}
}

func TestWITRoundTrip(t *testing.T) {
	c := Default()
	again, err := Load(c.Layout(),
		Source{Namespace: GLES2, Text: c.WIT(GLES2)},
		Source{Namespace: EGL, Text: c.WIT(EGL)},
	)
	if err != nil {
		t.Fatalf("Load rendered WIT: %v", err)
	}
	if again.Len() != c.Len() {
		t.Fatalf("Len = %d, want %d", again.Len(), c.Len())
	}
	for _, e := range c.Entries(Invalid) {
		got := again.Entry(e.Op)
		if got.Decl() != e.Decl() || got.Opcode != e.Opcode {
			t.Errorf("%s: %s at %d, want %s at %d", e.Name, got.Decl(), got.Opcode, e.Decl(), e.Opcode)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := Default().Fingerprint()
	if a == 0 {
		t.Fatal("zero fingerprint")
	}

	small := "interface a {\n\tf: func();\n}\n"
	c1, err := Load(DefaultLayout, Source{Namespace: GLES2, Text: small})
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Load(Layout{Stride: 4}, Source{Namespace: GLES2, Text: small})
	if err != nil {
		t.Fatal(err)
	}
	if c1.Fingerprint() == c2.Fingerprint() {
		t.Error("stride change must change the fingerprint")
	}
	if c1.Fingerprint() == a {
		t.Error("different declarations share a fingerprint")
	}
}

func TestLoadCustomLayout(t *testing.T) {
	a := "interface a {\n" +
		"\tf0: func();\n\tf1: func(x: s32) -> s32;\n\tf2: func();\n}\n"
	b := "interface b {\n\tg0: func(p: ptr);\n\tg1: func();\n}\n"

	c, err := Load(Layout{Stride: 8, Bias: [EGL + 1]Opcode{EGL: 10000}},
		Source{Namespace: GLES2, Text: a},
		Source{Namespace: EGL, Text: b},
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r, _ := c.RangeOf(GLES2); r != (Range{0, 16}) {
		t.Errorf("GLES2 range = %s", r)
	}
	if r, _ := c.RangeOf(EGL); r != (Range{10000, 10008}) {
		t.Errorf("EGL range = %s", r)
	}
	op, ok := c.OpAt(10008)
	if !ok || c.Entry(op).Name != "g1" {
		t.Errorf("OpAt(10008) = %v, %v", op, ok)
	}
	if c.Interface(EGL) != "b" {
		t.Errorf("Interface = %q", c.Interface(EGL))
	}
}

func TestLoadErrors(t *testing.T) {
	many := make([]string, abi.MaxArgs+1)
	for i := range many {
		many[i] = "p" + string(rune('a'+i)) + ": s32"
	}

	tests := []struct {
		name    string
		layout  Layout
		sources []Source
		kind    errors.Kind
	}{
		{
			name:   "overlapping ranges",
			layout: Layout{Stride: 8, Bias: [EGL + 1]Opcode{EGL: 8}},
			sources: []Source{
				{GLES2, "interface a {\n\tf0: func();\n\tf1: func();\n\tf2: func();\n}"},
				{EGL, "interface b {\n\tg0: func();\n}"},
			},
			kind: errors.KindRangeOverlap,
		},
		{
			name:    "too many params",
			layout:  DefaultLayout,
			sources: []Source{{GLES2, "interface a {\n\tf: func(" + strings.Join(many, ", ") + ");\n}"}},
			kind:    errors.KindArity,
		},
		{
			name:    "unknown type",
			layout:  DefaultLayout,
			sources: []Source{{GLES2, "interface a {\n\tf: func(x: string);\n}"}},
			kind:    errors.KindInvalidData,
		},
		{
			name:    "duplicate name",
			layout:  DefaultLayout,
			sources: []Source{{GLES2, "interface a {\n\tf: func();\n\tf: func();\n}"}},
			kind:    errors.KindInvalidData,
		},
		{
			name:    "missing terminator",
			layout:  DefaultLayout,
			sources: []Source{{GLES2, "interface a {\n\tf: func();\n"}},
			kind:    errors.KindInvalidData,
		},
		{
			name:    "empty namespace",
			layout:  DefaultLayout,
			sources: []Source{{GLES2, "interface a {\n}"}},
			kind:    errors.KindInvariant,
		},
		{
			name:    "zero stride",
			layout:  Layout{},
			sources: []Source{{GLES2, "interface a {\n\tf: func();\n}"}},
			kind:    errors.KindInvariant,
		},
		{
			name:   "namespaces out of order",
			layout: DefaultLayout,
			sources: []Source{
				{EGL, "interface b {\n\tg: func();\n}"},
				{GLES2, "interface a {\n\tf: func();\n}"},
			},
			kind: errors.KindInvariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.layout, tt.sources...)
			if err == nil {
				t.Fatal("expected error")
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error type = %T: %v", err, err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s (%v)", e.Kind, tt.kind, err)
			}
		})
	}
}

func TestParseNamespace(t *testing.T) {
	for _, ns := range Namespaces {
		got, ok := ParseNamespace(ns.String())
		if !ok || got != ns {
			t.Errorf("ParseNamespace(%q) = %s, %v", ns, got, ok)
		}
	}
	if _, ok := ParseNamespace("vulkan"); ok {
		t.Error("unexpected namespace")
	}
}
