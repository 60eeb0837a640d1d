package client

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/errors"
	"github.com/wippyai/glforward/router"
)

type recordingGate struct {
	tier   abi.Tier
	vector abi.Vector
	result uint64
}

func (g *recordingGate) Short(opcode uint64, s abi.ShortArgs) uint64 {
	g.tier, g.vector = abi.TierShort, abi.ShortVector(opcode, s)
	return g.result
}

func (g *recordingGate) Long(opcode uint64, a abi.Args) uint64 {
	g.tier, g.vector = abi.TierLong, abi.LongVector(opcode, a)
	return g.result
}

func TestCallTiers(t *testing.T) {
	g := &recordingGate{}
	c := New(catalog.Default(), g)

	if _, err := c.Call(catalog.GLViewport, int32(0), int32(-1), int32(640), int32(480)); err != nil {
		t.Fatal(err)
	}
	if g.tier != abi.TierShort {
		t.Errorf("glViewport used %s tier", g.tier)
	}
	want := abi.Vector{7112, 0, math.MaxUint64, 640, 480}
	if g.vector != want {
		t.Errorf("vector = %v, want %v", g.vector, want)
	}

	_, err := c.Call(catalog.GLVertexAttribPointer, uint32(1), int32(3), uint32(0x1406), false, int32(12), uintptr(0x1000))
	if err != nil {
		t.Fatal(err)
	}
	if g.tier != abi.TierLong {
		t.Errorf("glVertexAttribPointer used %s tier", g.tier)
	}
	if g.vector[6] != 0x1000 || g.vector[7] != 0 {
		t.Errorf("vector = %v", g.vector)
	}
}

func TestCallNarrowsResult(t *testing.T) {
	tests := []struct {
		op   catalog.Op
		args []any
		word uint64
		want any
	}{
		{catalog.GLGetError, nil, 0x0502, uint32(0x0502)},
		{catalog.GLIsEnabled, []any{uint32(0x0B71)}, 0xff00, false},
		{catalog.GLIsEnabled, []any{uint32(0x0B71)}, 1, true},
		{catalog.GLGetAttribLocation, []any{uint32(1), uintptr(0)}, math.MaxUint64, int32(-1)},
		{catalog.GLFlush, nil, 1234, nil},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			c := New(catalog.Default(), &recordingGate{result: tt.word})
			got, err := c.Call(tt.op, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Call = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCallErrors(t *testing.T) {
	c := New(catalog.Default(), &recordingGate{})

	_, err := c.Call(catalog.GLViewport, int32(1))
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindArity || e.Op != "glViewport" {
		t.Errorf("arity: %v", err)
	}

	_, err = c.Call(catalog.GLClearColor, "red", 0.0, 0.0, 0.0)
	if !stderrors.As(err, &e) || e.Kind != errors.KindTypeMismatch || e.Op != "glClearColor" {
		t.Errorf("type: %v", err)
	}

	if _, err := c.CallName("glMadeUp"); !stderrors.Is(err, &errors.Error{Kind: errors.KindNotFound}) {
		t.Errorf("unknown: %v", err)
	}
	if _, err := c.CallWords(catalog.GLViewport, 1, 2); err == nil {
		t.Error("CallWords arity accepted")
	}
	if _, err := c.Call(catalog.Op(60000)); err == nil {
		t.Error("invalid op accepted")
	}
}

func TestStrictThroughRouter(t *testing.T) {
	tbl, err := dispatch.Build(catalog.Default(), dispatch.ResolverFunc(func(e catalog.Entry) (dispatch.Target, bool) {
		if e.Op != catalog.GLGetError {
			return nil, false
		}
		return func(abi.Args) uint64 { return 0 }, true
	}))
	if err != nil {
		t.Fatal(err)
	}
	rt, err := router.New(tbl)
	if err != nil {
		t.Fatal(err)
	}

	loose := New(catalog.Default(), rt)
	got, err := loose.CallWords(catalog.GLFlush)
	if err != nil || got != router.Failure {
		t.Errorf("loose = %d, %v", got, err)
	}

	strict := New(catalog.Default(), rt, WithStrict())
	if _, err := strict.Call(catalog.GLFlush); !stderrors.Is(err, errors.ErrUnsupportedFunction) {
		t.Errorf("strict = %v", err)
	}
	if v, err := strict.CallName("glGetError"); err != nil || v != uint32(0) {
		t.Errorf("glGetError = %v, %v", v, err)
	}
}
