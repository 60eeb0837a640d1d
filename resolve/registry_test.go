package resolve

import (
	stderrors "errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/errors"
	"github.com/wippyai/glforward/router"
)

type (
	glEnum  uint32
	glInt   int32
	glFloat float32
)

type fakeGL struct {
	viewport [4]int32
	clear    [4]float32
	errs     int
}

func (g *fakeGL) Namespace() catalog.Namespace { return catalog.GLES2 }

func (g *fakeGL) Viewport(x, y, w, h int32) { g.viewport = [4]int32{x, y, w, h} }

func (g *fakeGL) ClearColor(r, gr, b, a glFloat) {
	g.clear = [4]float32{float32(r), float32(gr), float32(b), float32(a)}
}

func (g *fakeGL) GetError() glEnum {
	g.errs++
	return 0x0500
}

func (g *fakeGL) IsEnabled(cap glEnum) bool { return cap == 0x0B71 }

// Helper is not a GL operation and must be ignored.
func (g *fakeGL) Helper() string { return "" }

func entry(t *testing.T, name string) catalog.Entry {
	t.Helper()
	op, ok := catalog.Lookup(name)
	if !ok {
		t.Fatalf("no %s in catalog", name)
	}
	return catalog.Default().Entry(op)
}

func call(t *testing.T, r dispatch.Resolver, name string, args ...any) uint64 {
	t.Helper()
	e := entry(t, name)
	target, ok := r.Resolve(e)
	if !ok {
		t.Fatalf("%s not resolved", name)
	}
	a, err := e.Signature().Encode(args...)
	if err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return target(a)
}

func TestRegisterHost(t *testing.T) {
	reg := NewRegistry(catalog.Default())
	gl := &fakeGL{}
	if err := reg.RegisterHost(gl); err != nil {
		t.Fatalf("RegisterHost: %v", err)
	}

	want := []string{"glClearColor", "glGetError", "glIsEnabled", "glViewport"}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	call(t, reg, "glViewport", int32(-1), int32(2), int32(640), int32(480))
	if gl.viewport != [4]int32{-1, 2, 640, 480} {
		t.Errorf("viewport = %v", gl.viewport)
	}

	call(t, reg, "glClearColor", float32(0.25), float32(0.5), float32(1), float32(0))
	if gl.clear != [4]float32{0.25, 0.5, 1, 0} {
		t.Errorf("clear = %v", gl.clear)
	}

	if got := call(t, reg, "glGetError"); got != 0x0500 {
		t.Errorf("glGetError = %#x", got)
	}
	if got := call(t, reg, "glIsEnabled", uint32(0x0B71)); got != 1 {
		t.Errorf("glIsEnabled = %d", got)
	}
}

func TestAdaptSignedResult(t *testing.T) {
	e := entry(t, "glGetAttribLocation")
	target, err := Adapt(e, func(program uint32, name uintptr) glInt { return -1 })
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if got := target(abi.Args{}); got != math.MaxUint64 {
		t.Errorf("result = %#x, want sign-extended -1", got)
	}
}

func TestUnwidenableResultIsTargetPanic(t *testing.T) {
	cat := catalog.Default()
	r := dispatch.ResolverFunc(func(e catalog.Entry) (dispatch.Target, bool) {
		if e.Op != catalog.GLGetError {
			return nil, false
		}
		return func(abi.Args) uint64 { return widenResult(abi.Enum, "not an enum") }, true
	})
	table, err := dispatch.Build(cat, r)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := router.New(table, router.WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatal(err)
	}
	w, err := rt.Call(catalog.GLGetError.Opcode(), abi.Args{})
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindTargetPanic}) {
		t.Errorf("err = %v, want target panic", err)
	}
	if w != router.Failure {
		t.Errorf("result = %#x, want failure word", w)
	}

	if got := widenResult(abi.Enum, glEnum(0x1701)); got != 0x1701 {
		t.Errorf("widenResult = %#x", got)
	}
}

func TestAdaptErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		fn   any
		kind errors.Kind
	}{
		{"not a function", "glFlush", 42, errors.KindTypeMismatch},
		{"nil", "glFlush", nil, errors.KindTypeMismatch},
		{"wrong arity", "glViewport", func(x, y int32) {}, errors.KindArity},
		{"variadic", "glViewport", func(v ...int32) {}, errors.KindArity},
		{"wrong param kind", "glViewport", func(x, y, w int32, h uint32) {}, errors.KindTypeMismatch},
		{"void with result", "glFlush", func() int { return 0 }, errors.KindTypeMismatch},
		{"missing result", "glGetError", func() {}, errors.KindTypeMismatch},
		{"wrong result kind", "glGetError", func() int64 { return 0 }, errors.KindTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Adapt(entry(t, tt.op), tt.fn)
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("err = %v", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", e.Kind, tt.kind)
			}
		})
	}
}

func TestRegisterUnknown(t *testing.T) {
	reg := NewRegistry(catalog.Default())
	err := reg.RegisterTarget("glNotAThing", func(abi.Args) uint64 { return 0 })
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindNotFound}) {
		t.Errorf("err = %v", err)
	}
	if err := reg.RegisterTarget("glFlush", nil); err == nil {
		t.Error("nil target accepted")
	}
	if err := reg.RegisterFunc("glBogus", func() {}); err == nil {
		t.Error("unknown function accepted")
	}
}

func TestChainAndOnly(t *testing.T) {
	first := NewRegistry(catalog.Default())
	second := NewRegistry(catalog.Default())
	_ = first.RegisterTarget("glFlush", func(abi.Args) uint64 { return 1 })
	_ = second.RegisterTarget("glFlush", func(abi.Args) uint64 { return 2 })
	_ = second.RegisterTarget("glFinish", func(abi.Args) uint64 { return 3 })

	r := Chain(first, nil, second)
	if got := call(t, r, "glFlush"); got != 1 {
		t.Errorf("glFlush = %d, want first registry", got)
	}
	if got := call(t, r, "glFinish"); got != 3 {
		t.Errorf("glFinish = %d, want fallback", got)
	}

	only := Only(r, "glFinish")
	if _, ok := only.Resolve(entry(t, "glFlush")); ok {
		t.Error("Only leaked glFlush")
	}
}

func TestRequire(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	cat := catalog.Default()
	reg := NewRegistry(cat)
	_ = reg.RegisterTarget("glFlush", func(abi.Args) uint64 { return 0 })

	if err := Require(cat, reg, "glFlush"); err != nil {
		t.Errorf("Require satisfied: %v", err)
	}

	err := Require(cat, reg, "glFlush", "glFinish", "eglGetDisplay")
	if !stderrors.Is(err, errors.ErrMissingSymbol) {
		t.Fatalf("err = %v", err)
	}
	var e *errors.Error
	stderrors.As(err, &e)
	if names, _ := e.Value.([]string); len(names) != 2 || names[0] != "glFinish" {
		t.Errorf("missing = %v", e.Value)
	}
	if logs.FilterMessage("missing required symbols").Len() != 1 {
		t.Errorf("logs = %v", logs.All())
	}

	err = Require(cat, reg, "egl")
	if !stderrors.As(err, &e) || len(e.Value.([]string)) != cat.Count(catalog.EGL) {
		t.Errorf("namespace requirement: %v", err)
	}

	if err := Require(cat, reg, "glNope"); !stderrors.Is(err, &errors.Error{Kind: errors.KindNotFound}) {
		t.Errorf("unknown name: %v", err)
	}
}

type badHost struct{}

func (badHost) Namespace() catalog.Namespace { return catalog.Invalid }

func TestRegisterHostInvalidNamespace(t *testing.T) {
	if err := NewRegistry(catalog.Default()).RegisterHost(badHost{}); err == nil {
		t.Error("expected error")
	}
}

type explicitHost struct{}

func (explicitHost) Namespace() catalog.Namespace { return catalog.EGL }

func (explicitHost) Register() map[string]any {
	return map[string]any{
		"eglGetError": func() int32 { return 0x3000 },
	}
}

func TestExplicitRegistrar(t *testing.T) {
	reg := NewRegistry(catalog.Default())
	if err := reg.RegisterHost(explicitHost{}); err != nil {
		t.Fatal(err)
	}
	if got := call(t, reg, "eglGetError"); got != 0x3000 {
		t.Errorf("eglGetError = %#x", got)
	}
}
