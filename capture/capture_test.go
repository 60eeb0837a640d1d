package capture

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/client"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/errors"
	"github.com/wippyai/glforward/router"
)

// newRouter wires every operation except eglTerminate to a target that
// returns its first argument plus bump.
func newRouter(t *testing.T, bump uint64) *router.Router {
	t.Helper()
	res := dispatch.ResolverFunc(func(e catalog.Entry) (dispatch.Target, bool) {
		if e.Op == catalog.EGLTerminate {
			return nil, false
		}
		return func(a abi.Args) uint64 { return a[0] + bump }, true
	})
	tbl, err := dispatch.Build(catalog.Default(), res)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := router.New(tbl)
	if err != nil {
		t.Fatal(err)
	}
	return rt
}

func drive(t *testing.T, gate abi.Gate) {
	t.Helper()
	c := client.New(catalog.Default(), gate)
	calls := []struct {
		op   catalog.Op
		args []any
	}{
		{catalog.GLClear, []any{uint32(0x4000)}},
		{catalog.GLViewport, []any{int32(-8), int32(0), int32(640), int32(480)}},
		{catalog.GLTexSubImage3D, []any{uint32(0x806F), int32(0), int32(1), int32(2), int32(3), int32(4), int32(5), int32(6), uint32(0x1908), uint32(0x1401), uintptr(0x1000)}},
		{catalog.EGLTerminate, []any{uintptr(1)}},
	}
	for _, call := range calls {
		if _, err := c.Call(call.op, call.args...); err != nil {
			t.Fatalf("%s: %v", call.op, err)
		}
	}
}

func TestRecordAndRead(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(newRouter(t, 0), w)
	drive(t, rec)
	if err := rec.Err(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	h := r.Header()
	if h.Session != w.Header().Session {
		t.Errorf("session = %s, want %s", h.Session, w.Header().Session)
	}
	if err := h.Verify(catalog.Default()); err != nil {
		t.Errorf("Verify: %v", err)
	}

	records, err := r.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("records = %d, want 4", len(records))
	}

	tests := []struct {
		seq    uint64
		tier   abi.Tier
		opcode uint64
		arg0   uint64
		result uint64
	}{
		{0, abi.TierShort, catalog.GLClear.Opcode(), 0x4000, 0x4000},
		{1, abi.TierShort, catalog.GLViewport.Opcode(), abi.EncodeS32(-8), abi.EncodeS32(-8)},
		{2, abi.TierLong, catalog.GLTexSubImage3D.Opcode(), 0x806F, 0x806F},
		{3, abi.TierShort, catalog.EGLTerminate.Opcode(), 1, router.Failure},
	}
	for i, tt := range tests {
		got := records[i]
		if got.Seq != tt.seq || got.Tier != tt.tier || got.Vector.Opcode() != tt.opcode ||
			got.Vector[1] != tt.arg0 || got.Result != tt.result {
			t.Errorf("record %d = %+v", i, got)
		}
	}
	if records[2].Vector[11] != 0x1000 || records[2].Vector[12] != 0 {
		t.Errorf("long vector tail = %x", records[2].Vector[10:])
	}
}

func TestReplay(t *testing.T) {
	record := func(t *testing.T) *bytes.Buffer {
		var buf bytes.Buffer
		w, err := NewWriter(&buf, catalog.Default())
		if err != nil {
			t.Fatal(err)
		}
		drive(t, NewRecorder(newRouter(t, 0), w))
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		return &buf
	}

	tests := []struct {
		name     string
		bump     uint64
		diverged int
	}{
		{"same backend", 0, 0},
		// eglTerminate stays unwired and still fails identically
		{"changed backend", 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(record(t))
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			rep, err := Replay(context.Background(), r, newRouter(t, tt.bump))
			if err != nil {
				t.Fatal(err)
			}
			if rep.Replayed != 4 {
				t.Errorf("replayed = %d, want 4", rep.Replayed)
			}
			if rep.Diverged != tt.diverged || len(rep.Divergences) != tt.diverged {
				t.Errorf("diverged = %d (%d kept), want %d", rep.Diverged, len(rep.Divergences), tt.diverged)
			}
			for _, d := range rep.Divergences {
				if d.Got != d.Record.Result+1 {
					t.Errorf("seq %d: got %x, recorded %x", d.Record.Seq, d.Got, d.Record.Result)
				}
			}
		})
	}
}

func TestReplayRefusesOtherCatalog(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	h := NewHeader(catalog.Default())
	h.Fingerprint ^= 1
	if err := encMode.NewEncoder(zw).Encode(h); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	_, err = Replay(context.Background(), r, newRouter(t, 0))
	if !stderrors.Is(err, errors.ErrCatalogMismatch) {
		t.Fatalf("err = %v, want catalog mismatch", err)
	}
}

func TestReplayHonorsContext(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, catalog.Default())
	drive(t, NewRecorder(newRouter(t, 0), w))
	w.Close()

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := Replay(ctx, r, newRouter(t, 0))
	if err != context.Canceled {
		t.Errorf("err = %v", err)
	}
	if rep.Replayed != 0 {
		t.Errorf("replayed = %d", rep.Replayed)
	}
}

func TestRecorderLevels(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelAll, 4},
		{LevelFailures, 1},
		{LevelOff, 0},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, catalog.Default())
			if err != nil {
				t.Fatal(err)
			}
			rec := NewRecorder(newRouter(t, 0), w, WithLevel(tt.level))
			drive(t, rec)
			w.Close()

			if rec.Seq() != 4 {
				t.Errorf("seq = %d, want 4", rec.Seq())
			}
			if int(w.Count()) != tt.want {
				t.Errorf("written = %d, want %d", w.Count(), tt.want)
			}
			r, err := NewReader(&buf)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()
			records, err := r.All()
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != tt.want {
				t.Errorf("read = %d, want %d", len(records), tt.want)
			}
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.glcap")
	w, err := Create(path, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	drive(t, NewRecorder(newRouter(t, 0), w))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if r.Header().Created.IsZero() {
		t.Error("created time not preserved")
	}
	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 4 {
		t.Errorf("records = %d, want 4", n)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error")
	}
}

func TestNewReaderRejectsGarbage(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte("not a capture"))); err == nil {
		t.Error("expected error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelAll, false},
		{"all", LevelAll, false},
		{"Failures", LevelFailures, false},
		{"off", LevelOff, false},
		{"some", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}
