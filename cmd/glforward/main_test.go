package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/config"
	"github.com/wippyai/glforward/errors"
)

func TestParseArg(t *testing.T) {
	tests := []struct {
		kind abi.Kind
		in   string
		want any
	}{
		{abi.Bool, "true", true},
		{abi.S8, "-128", int8(-128)},
		{abi.U8, "0xff", uint8(255)},
		{abi.S16, "-2", int16(-2)},
		{abi.U16, "0o17", uint16(15)},
		{abi.S32, " -8 ", int32(-8)},
		{abi.U32, "0b101", uint32(5)},
		{abi.Enum, "0x4000", uint32(0x4000)},
		{abi.S64, "-9000000000", int64(-9000000000)},
		{abi.U64, "18446744073709551615", uint64(18446744073709551615)},
		{abi.Ptr, "0x100", uintptr(0x100)},
		{abi.F32, "0.5", float32(0.5)},
		{abi.F64, "-1e3", float64(-1000)},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := parseArg(tt.kind, tt.in)
			if err != nil {
				t.Fatalf("parseArg: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseArg = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseArgRejects(t *testing.T) {
	tests := []struct {
		kind abi.Kind
		in   string
	}{
		{abi.S8, "128"},
		{abi.U32, "-1"},
		{abi.Enum, "0x1_0000_0000"},
		{abi.Bool, "yes"},
		{abi.F32, "one"},
		{abi.Void, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.in, func(t *testing.T) {
			if _, err := parseArg(tt.kind, tt.in); !stderrors.Is(err, &errors.Error{Kind: errors.KindInvalidInput}) {
				t.Errorf("err = %v, want invalid input", err)
			}
		})
	}
}

func TestParseCall(t *testing.T) {
	cat := catalog.Default()
	c, err := parseCall(cat, []string{"glViewport", "0", "0", "640", "480"})
	if err != nil {
		t.Fatal(err)
	}
	if c.op != catalog.GLViewport || len(c.args) != 4 || c.args[3] != int32(480) {
		t.Errorf("call = %+v", c)
	}

	tests := []struct {
		name   string
		fields []string
		kind   errors.Kind
	}{
		{"empty", nil, errors.KindInvalidInput},
		{"unknown", []string{"glFrobnicate"}, errors.KindNotFound},
		{"arity", []string{"glClear"}, errors.KindArity},
		{"bad arg", []string{"glClear", "x"}, errors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCall(cat, tt.fields)
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != tt.kind {
				t.Errorf("err = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	script := `
# set up
glClearColor(0.5, 0, 0, 1);
glClear 0x4000

eglGetDisplay 0
`
	calls, err := parseScript(catalog.Default(), strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	want := []catalog.Op{catalog.GLClearColor, catalog.GLClear, catalog.EGLGetDisplay}
	if len(calls) != len(want) {
		t.Fatalf("%d calls", len(calls))
	}
	for i, op := range want {
		if calls[i].op != op {
			t.Errorf("call %d = %s, want %s", i, calls[i].op, op)
		}
	}

	_, err = parseScript(catalog.Default(), strings.NewReader("glClear 1\nglClear\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line 2", err)
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	err := run(context.Background(), args, &out, &errb)
	return out.String(), err
}

func TestCatalogCommand(t *testing.T) {
	out, err := runCmd(t, "catalog", "-ns", "egl", "-wired")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "eglMakeCurrent: func(") || strings.Contains(out, "glClear:") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.HasPrefix(out, "OPCODE") {
		t.Errorf("missing header:\n%s", out)
	}

	if _, err := runCmd(t, "catalog", "-ns", "vulkan"); err == nil {
		t.Error("unknown namespace accepted")
	}
}

func TestCoverageCommand(t *testing.T) {
	out, err := runCmd(t, "-backend", "trace", "coverage")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "897/897") || !strings.Contains(out, "66/66") {
		t.Errorf("trace coverage:\n%s", out)
	}

	out, err = runCmd(t, "coverage", "-missing")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "glGetString") {
		t.Errorf("soft coverage does not list glGetString:\n%s", out)
	}
}

func TestRouteCommand(t *testing.T) {
	out, err := runCmd(t, "route", "glIsEnabled", "0x0BD0")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "glIsEnabled(0xbd0) = true" {
		t.Errorf("output = %q", out)
	}

	_, err = runCmd(t, "route", "glGetString", "0x1F00")
	if !stderrors.Is(err, errors.ErrUnsupportedFunction) {
		t.Errorf("err = %v, want unsupported function", err)
	}
}

func TestRecordAndReplay(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "calls.txt")
	capPath := filepath.Join(dir, "calls.glcap")
	err := os.WriteFile(script, []byte(strings.Join([]string{
		"glGenBuffers 2 0x100",
		"glBindBuffer 0x8892 1",
		"glBufferData 0x8892 64 0 0x88E4",
		"glIsBuffer 1",
		"glEnable 0x1234",
		"glGetError",
		"eglGetDisplay 0",
		"eglInitialize 1 0 0",
	}, "\n")), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "route", "-capture", capPath, "-f", script)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"glIsBuffer(1) = true", "glGetError() = 0x500", "eglInitialize(0x1, 0x0, 0x0) = 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("route output missing %q:\n%s", want, out)
		}
	}

	out, err = runCmd(t, "replay", capPath)
	if err != nil {
		t.Fatalf("replay: %v\n%s", err, out)
	}
	if !strings.Contains(out, "replayed 8 calls, 0 diverged") {
		t.Errorf("replay output:\n%s", out)
	}

	// Against the trace backend every call returns zero.
	out, err = runCmd(t, "-backend", "trace", "replay", capPath)
	if err == nil || !strings.Contains(out, "glGetError: recorded 0x500, got 0x0") {
		t.Errorf("trace replay err = %v\n%s", err, out)
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := runCmd(t, "bench", "-workers", "3", "-calls", "1000")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "3 workers, 1000 calls") || strings.Contains(out, "failures") {
		t.Errorf("output = %q", out)
	}
}

func TestBenchCancelled(t *testing.T) {
	a, err := newApp(config.Default(), zap.NewNop(), &bytes.Buffer{}, false)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := a.bench(ctx, 2, 10_000)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	if res.Calls != 0 {
		t.Errorf("calls = %d after cancel", res.Calls)
	}
}

func TestRequireFailsSetup(t *testing.T) {
	cfg := config.Default()
	cfg.Backend.Require = []string{"glClear", "glGetString"}
	_, err := newApp(cfg, zap.NewNop(), &bytes.Buffer{}, false)
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindMissingSymbol}) {
		t.Errorf("err = %v, want missing symbol", err)
	}
}

func TestUsage(t *testing.T) {
	if _, err := runCmd(t); err != errUsage {
		t.Errorf("no command err = %v", err)
	}
	if _, err := runCmd(t, "frobnicate"); err == nil {
		t.Error("unknown command accepted")
	}
	out, err := runCmd(t, "help")
	if err != nil || !strings.Contains(out, "Commands:") {
		t.Errorf("help = %q, %v", out, err)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInteractiveModel(t *testing.T) {
	a, err := newApp(config.Default(), zap.NewNop(), &bytes.Buffer{}, false)
	if err != nil {
		t.Fatal(err)
	}
	m := newInteractiveModel(a)
	if len(m.visible) != a.cat.Len() {
		t.Fatalf("visible = %d, want %d", len(m.visible), a.cat.Len())
	}

	m.Update(key("/"))
	if m.state != stateFilter {
		t.Fatalf("state = %v after /", m.state)
	}
	for _, r := range "clearcolor" {
		m.Update(key(string(r)))
	}
	// glClearColor, glClearColorx, glClearColorxOES
	if len(m.visible) != 3 {
		t.Fatalf("filter left %d operations", len(m.visible))
	}
	if op, _ := m.current(); op.entry.Name != "glClearColor" {
		t.Fatalf("selected %s", op.entry.Name)
	}
	m.Update(key("enter"))
	m.Update(key("enter"))
	if m.state != stateInputArgs || len(m.inputs) != 4 {
		t.Fatalf("state = %v, inputs = %d", m.state, len(m.inputs))
	}
	for i, v := range []string{"0.5", "0", "0", "1"} {
		m.inputs[i].SetValue(v)
	}
	m.Update(m.callOp())
	if m.state != stateShowResult || m.err != nil {
		t.Fatalf("state = %v, err = %v", m.state, m.err)
	}
	if m.result != "glClearColor(0.5, 0, 0, 1)" {
		t.Errorf("result = %q", m.result)
	}
	if !strings.Contains(m.View(), "glClearColor") {
		t.Error("view does not show the call")
	}

	m.Update(key("enter"))
	if m.state != stateSelectOp {
		t.Errorf("state = %v after dismissing result", m.state)
	}
}

func TestInteractiveBadArgument(t *testing.T) {
	a, err := newApp(config.Default(), zap.NewNop(), &bytes.Buffer{}, false)
	if err != nil {
		t.Fatal(err)
	}
	m := newInteractiveModel(a)
	m.filter.SetValue("glClear")
	m.applyFilter()
	m.Update(key("enter"))
	m.inputs[0].SetValue("lots")
	m.Update(m.callOp())
	if m.err == nil || !strings.Contains(m.err.Error(), "mask") {
		t.Errorf("err = %v", m.err)
	}
}
