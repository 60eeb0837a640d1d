package dispatch

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// byName resolves the listed names to targets returning their opcode.
func byName(names ...string) Resolver {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	return ResolverFunc(func(e catalog.Entry) (Target, bool) {
		if !want[e.Name] {
			return nil, false
		}
		opcode := e.Opcode
		return func(abi.Args) uint64 { return opcode }, true
	})
}

// everything resolves every entry.
var everything = ResolverFunc(func(e catalog.Entry) (Target, bool) {
	opcode := e.Opcode
	return func(abi.Args) uint64 { return opcode }, true
})

// wideCatalog reproduces a GLES2 range of [0, 7000] next to the EGL range
// [10000, 10520].
func wideCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var a, b strings.Builder
	a.WriteString("interface a {\n")
	for i := 0; i <= 7000/8; i++ {
		fmt.Fprintf(&a, "\tf%d: func(x: s32) -> s32;\n", i)
	}
	a.WriteString("}\n")
	b.WriteString("interface b {\n")
	for i := 0; i <= 520/8; i++ {
		fmt.Fprintf(&b, "\tg%d: func();\n", i)
	}
	b.WriteString("}\n")

	c, err := catalog.Load(catalog.DefaultLayout,
		catalog.Source{Namespace: catalog.GLES2, Text: a.String()},
		catalog.Source{Namespace: catalog.EGL, Text: b.String()},
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestBuildLengths(t *testing.T) {
	tbl, err := Build(catalog.Default(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := tbl.Len(catalog.GLES2); got != 7168/8+1 {
		t.Errorf("GLES2 len = %d", got)
	}
	if got := tbl.Len(catalog.EGL); got != 520/8+1 {
		t.Errorf("EGL len = %d", got)
	}
	if tbl.Len(catalog.Invalid) != 0 {
		t.Error("Invalid has no table")
	}
}

func TestResolveScenario(t *testing.T) {
	c := wideCatalog(t)
	tbl, err := Build(c, byName("g3", "f0"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name   string
		opcode uint64
		status Status
		op     string
	}{
		{"biased B opcode indexes slot 3", 10024, Resolved, "g3"},
		{"gap between ranges", 7200, OutOfRange, ""},
		{"past B range", 10528, OutOfRange, ""},
		{"in range, hole", 160, Unwired, "f20"},
		{"first A slot", 0, Resolved, "f0"},
		{"last A slot", 7000, Unwired, "f875"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, status := tbl.Resolve(tt.opcode)
			if status != tt.status {
				t.Fatalf("status = %s, want %s", status, tt.status)
			}
			if status == OutOfRange {
				if slot.Present() {
					t.Error("out-of-range slot must be absent")
				}
				return
			}
			if got := c.Entry(slot.Op()).Name; got != tt.op {
				t.Errorf("slot op = %s, want %s", got, tt.op)
			}
			if slot.Present() != (status == Resolved) {
				t.Errorf("Present = %v with status %s", slot.Present(), status)
			}
			if status == Resolved {
				if got := slot.Target()(abi.Args{}); got != c.OpcodeOf(slot.Op()) {
					t.Errorf("target returned %d", got)
				}
			}
		})
	}
}

func TestEveryInRangeOpcodeIndexesInside(t *testing.T) {
	tbl, err := Build(catalog.Default(), everything)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, ns := range catalog.Namespaces {
		rng, _ := catalog.Default().RangeOf(ns)
		for opcode := rng.Min; opcode <= rng.Max; opcode++ {
			slot, status := tbl.Resolve(opcode)
			if status != Resolved {
				t.Fatalf("opcode %d: status %s", opcode, status)
			}
			want := rng.Min + (opcode-rng.Min)/8*8
			if got := slot.Target()(abi.Args{}); got != want {
				t.Fatalf("opcode %d reached %d, want %d", opcode, got, want)
			}
		}
	}
}

func TestCoverage(t *testing.T) {
	tbl, err := Build(catalog.Default(), byName("glClear", "glViewport", "eglGetDisplay"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	gl := tbl.Coverage(catalog.GLES2)
	if gl.Total != catalog.Default().Count(catalog.GLES2) || gl.Wired != 2 {
		t.Errorf("GLES2 coverage = %d/%d", gl.Wired, gl.Total)
	}
	if len(gl.Missing) != gl.Total-gl.Wired {
		t.Errorf("missing = %d", len(gl.Missing))
	}
	for _, op := range gl.Missing {
		if op == catalog.GLClear || op == catalog.GLViewport {
			t.Errorf("%s reported missing", op)
		}
	}

	egl := tbl.Coverage(catalog.EGL)
	if egl.Wired != 1 || egl.Total != 66 {
		t.Errorf("EGL coverage = %d/%d", egl.Wired, egl.Total)
	}

	full, err := Build(catalog.Default(), everything)
	if err != nil {
		t.Fatal(err)
	}
	if r := full.Coverage(catalog.GLES2).Ratio(); r != 1 {
		t.Errorf("full ratio = %v", r)
	}
	if r := (Coverage{}).Ratio(); r != 0 {
		t.Errorf("empty ratio = %v", r)
	}
}

func TestNilTargetIsHole(t *testing.T) {
	r := ResolverFunc(func(e catalog.Entry) (Target, bool) { return nil, true })
	tbl, err := Build(catalog.Default(), r)
	if err != nil {
		t.Fatal(err)
	}
	if _, status := tbl.Resolve(catalog.GLClear.Opcode()); status != Unwired {
		t.Errorf("status = %s", status)
	}
}

func TestBuildNilCatalog(t *testing.T) {
	_, err := Build(nil, everything)
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindInvalidInput}) {
		t.Errorf("err = %v", err)
	}
}

func TestSingleNamespaceCatalog(t *testing.T) {
	c, err := catalog.Load(catalog.DefaultLayout, catalog.Source{
		Namespace: catalog.EGL,
		Text:      "interface b {\n\tg0: func();\n\tg1: func();\n}\n",
	})
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := Build(c, everything)
	if err != nil {
		t.Fatal(err)
	}
	if _, status := tbl.Resolve(0); status != OutOfRange {
		t.Errorf("opcode 0 status = %s", status)
	}
	if _, status := tbl.Resolve(10008); status != Resolved {
		t.Errorf("opcode 10008 status = %s", status)
	}
}

func BenchmarkResolve(b *testing.B) {
	tbl, err := Build(catalog.Default(), everything)
	if err != nil {
		b.Fatal(err)
	}
	opcode := catalog.EGLSwapBuffers.Opcode()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, status := tbl.Resolve(opcode); status != Resolved {
			b.Fatal(status)
		}
	}
}
