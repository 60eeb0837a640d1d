package bridge

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/router"
)

// spy records the last vector each operation received and answers
// with a configured word.
type spy struct {
	mu      sync.Mutex
	seen    map[catalog.Op]abi.Args
	answers map[catalog.Op]uint64
}

func newSpy() *spy {
	return &spy{seen: make(map[catalog.Op]abi.Args), answers: make(map[catalog.Op]uint64)}
}

func (p *spy) Resolve(e catalog.Entry) (dispatch.Target, bool) {
	if e.Op == catalog.EGLTerminate {
		return nil, false
	}
	op := e.Op
	return func(a abi.Args) uint64 {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.seen[op] = a
		return p.answers[op]
	}, true
}

func setup(t *testing.T, ops ...catalog.Op) (*Guest, *spy) {
	t.Helper()
	ctx := context.Background()

	p := newSpy()
	tbl, err := dispatch.Build(catalog.Default(), p)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := router.New(tbl)
	if err != nil {
		t.Fatal(err)
	}

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	if _, err := Instantiate(ctx, r, rt); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	g, err := NewGuest(ctx, r, catalog.Default(), ops...)
	if err != nil {
		t.Fatalf("NewGuest: %v", err)
	}
	return g, p
}

func TestGuestArgumentsBitExact(t *testing.T) {
	g, p := setup(t, catalog.GLViewport, catalog.GLClearColor, catalog.GLBindBufferRange, catalog.GLVertexAttribPointer)
	ctx := context.Background()

	if _, err := g.Call(ctx, catalog.GLViewport, int32(-8), int32(0), int32(math.MaxInt32), int32(math.MinInt32)); err != nil {
		t.Fatal(err)
	}
	want := abi.Args{
		abi.EncodeS32(-8), 0, abi.EncodeS32(math.MaxInt32), abi.EncodeS32(math.MinInt32),
	}
	if got := p.seen[catalog.GLViewport]; got != want {
		t.Errorf("glViewport words = %x, want %x", got, want)
	}

	negZero := float32(math.Copysign(0, -1))
	if _, err := g.Call(ctx, catalog.GLClearColor, float32(0.1), negZero, float32(math.Inf(-1)), float32(1)); err != nil {
		t.Fatal(err)
	}
	want = abi.Args{abi.EncodeF32(0.1), abi.EncodeF32(negZero), abi.EncodeF32(float32(math.Inf(-1))), abi.EncodeF32(1)}
	if got := p.seen[catalog.GLClearColor]; got != want {
		t.Errorf("glClearColor words = %x, want %x", got, want)
	}

	if _, err := g.Call(ctx, catalog.GLBindBufferRange, uint32(0x8A11), uint32(2), uint32(7), int64(-4096), int64(1)<<40); err != nil {
		t.Fatal(err)
	}
	want = abi.Args{0x8A11, 2, 7, abi.EncodeS64(-4096), 1 << 40}
	if got := p.seen[catalog.GLBindBufferRange]; got != want {
		t.Errorf("glBindBufferRange words = %x, want %x", got, want)
	}

	// six arguments take the long tier
	if _, err := g.Call(ctx, catalog.GLVertexAttribPointer, uint32(3), int32(4), uint32(0x1406), true, int32(16), uintptr(0xdead0000)); err != nil {
		t.Fatal(err)
	}
	want = abi.Args{3, 4, 0x1406, 1, 16, 0xdead0000}
	if got := p.seen[catalog.GLVertexAttribPointer]; got != want {
		t.Errorf("glVertexAttribPointer words = %x, want %x", got, want)
	}
}

func TestGuestCanonicalizesBools(t *testing.T) {
	g, p := setup(t, catalog.GLColorMask)
	fn := g.Module().ExportedFunction("glColorMask")
	if fn == nil {
		t.Fatal("glColorMask not exported")
	}
	if _, err := fn.Call(context.Background(), 2, 0, 0x100, 0xffffffff); err != nil {
		t.Fatal(err)
	}
	want := abi.Args{1, 0, 1, 1}
	if got := p.seen[catalog.GLColorMask]; got != want {
		t.Errorf("glColorMask words = %x, want %x", got, want)
	}
}

func TestGuestLongestCall(t *testing.T) {
	g, p := setup(t, catalog.GLTexSubImage3D)
	args := []any{uint32(0x806F), int32(1), int32(-2), int32(3), int32(-4), int32(5), int32(6), int32(7), uint32(0x1908), uint32(0x1401), uintptr(1 << 33)}
	if _, err := g.Call(context.Background(), catalog.GLTexSubImage3D, args...); err != nil {
		t.Fatal(err)
	}
	want, err := catalog.Default().Entry(catalog.GLTexSubImage3D).Signature().Encode(args...)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.seen[catalog.GLTexSubImage3D]; got != want {
		t.Errorf("words = %x, want %x", got, want)
	}
}

func TestGuestResults(t *testing.T) {
	g, p := setup(t)
	ctx := context.Background()

	p.answers[catalog.GLGetAttribLocation] = abi.EncodeS32(-1)
	p.answers[catalog.GLIsEnabled] = 1
	p.answers[catalog.GLGetString] = 0x1_0000_0040
	p.answers[catalog.EGLGetSystemTimeNV] = math.MaxUint64 - 1
	p.answers[catalog.GLGetError] = 0x0505

	tests := []struct {
		op   catalog.Op
		args []any
		want any
	}{
		{catalog.GLGetAttribLocation, []any{uint32(1), uintptr(64)}, int32(-1)},
		{catalog.GLIsEnabled, []any{uint32(0x0B71)}, true},
		{catalog.GLGetString, []any{uint32(0x1F00)}, uintptr(0x1_0000_0040)},
		{catalog.EGLGetSystemTimeNV, nil, uint64(math.MaxUint64 - 1)},
		{catalog.GLGetError, nil, uint32(0x0505)},
		{catalog.GLFlush, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := g.Call(ctx, tt.op, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("result = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestGuestUnwiredReturnsFailure(t *testing.T) {
	g, _ := setup(t, catalog.EGLTerminate)
	got, err := g.Call(context.Background(), catalog.EGLTerminate, uintptr(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != uint32(math.MaxUint32) {
		t.Errorf("result = %#v, want the failure word narrowed to u32", got)
	}
}

func TestGuestMissingExport(t *testing.T) {
	g, _ := setup(t, catalog.GLFlush)
	if _, err := g.Call(context.Background(), catalog.GLFinish); err == nil {
		t.Error("expected error for op without a stub")
	}
}

func TestBuildGuestCompilesWholeCatalog(t *testing.T) {
	ctx := context.Background()
	bin, err := BuildGuest(catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, bin)
	if err != nil {
		t.Fatalf("CompileModule: %v", err)
	}
	if got, want := len(compiled.ExportedFunctions()), catalog.Default().Len(); got != want {
		t.Errorf("exports = %d, want %d", got, want)
	}
	imports := compiled.ImportedFunctions()
	if len(imports) != 2 {
		t.Fatalf("imports = %d", len(imports))
	}
	for _, def := range imports {
		mod, name, _ := def.Import()
		if mod != ModuleName || (name != ShortExport && name != LongExport) {
			t.Errorf("unexpected import %s.%s", mod, name)
		}
	}
}

func TestBuildGuestRejectsUnknownOp(t *testing.T) {
	if _, err := BuildGuest(catalog.Default(), catalog.Op(65000)); err == nil {
		t.Error("expected error")
	}
}

func TestInstantiateNilGate(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)
	if _, err := Instantiate(ctx, r, nil); err == nil {
		t.Error("expected error")
	}
}
