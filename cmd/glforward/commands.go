package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/backend/trace"
	"github.com/wippyai/glforward/capture"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
)

// listCatalog prints every entry of the selected namespaces with its
// opcode, tier and whether the app's table wires it.
func (a *app) listCatalog(namespaces []catalog.Namespace, wiredOnly bool) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPCODE\tTIER\tWIRED\tDECLARATION")
	for _, ns := range namespaces {
		for _, e := range a.cat.Entries(ns) {
			_, status := a.table.Resolve(e.Opcode)
			wired := status == dispatch.Resolved
			if wiredOnly && !wired {
				continue
			}
			mark := "-"
			if wired {
				mark = "yes"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Opcode, e.Signature().Tier(), mark, e.Decl())
		}
	}
	return tw.Flush()
}

// coverage prints wired/total per namespace and, when missing is set,
// the unwired operation names.
func (a *app) coverage(missing bool) error {
	for _, ns := range catalog.Namespaces {
		cov := a.table.Coverage(ns)
		rng, _ := a.cat.RangeOf(ns)
		fmt.Fprintf(a.out, "%-6s %v  %3d/%-3d wired  %5.1f%%\n",
			ns, rng, cov.Wired, cov.Total, 100*cov.Ratio())
		if !missing {
			continue
		}
		names := make([]string, len(cov.Missing))
		for i, op := range cov.Missing {
			names[i] = op.String()
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(a.out, "       %s\n", n)
		}
	}
	return nil
}

// route sends calls in order and prints each with its result. It stops at
// the first call that fails.
func (a *app) route(calls []call) error {
	c := a.client()
	for _, cl := range calls {
		e := a.cat.Entry(cl.op)
		words, err := e.Signature().Encode(cl.args...)
		if err != nil {
			return err
		}
		v, err := c.Call(cl.op, cl.args...)
		if err != nil {
			return err
		}
		line := trace.Format(e, words)
		if e.Result != abi.Void {
			w, _ := abi.Widen(e.Result, v)
			line += " = " + trace.FormatValue(e.Result, w)
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// replay re-sends a capture file through the app's router.
func (a *app) replay(ctx context.Context, path string) (capture.Report, error) {
	r, err := capture.Open(path)
	if err != nil {
		return capture.Report{}, err
	}
	defer r.Close()

	h := r.Header()
	fmt.Fprintf(a.out, "session %s recorded %s\n", h.Session, h.Created.Format(time.RFC3339))

	rep, err := capture.Replay(ctx, r, a.router)
	if err != nil {
		return rep, err
	}
	fmt.Fprintf(a.out, "replayed %d calls, %d diverged\n", rep.Replayed, rep.Diverged)
	for _, d := range rep.Divergences {
		op, ok := a.cat.OpAt(d.Record.Vector.Opcode())
		name := fmt.Sprintf("opcode %d", d.Record.Vector.Opcode())
		if ok {
			name = op.String()
		}
		fmt.Fprintf(a.out, "  #%d %s: recorded %#x, got %#x\n", d.Record.Seq, name, d.Record.Result, d.Got)
	}
	return rep, nil
}

// benchCall is one entry of the bench mix, pre-encoded.
type benchCall struct {
	opcode uint64
	tier   abi.Tier
	args   abi.Args
}

// benchMix returns the calls the bench cycles through, restricted to
// operations the table wires.
func (a *app) benchMix() []benchCall {
	mix := []struct {
		op   catalog.Op
		args []uint64
	}{
		{catalog.GLClear, []uint64{0x4000}},
		{catalog.GLViewport, []uint64{0, 0, 640, 480}},
		{catalog.GLIsEnabled, []uint64{0x0BD0}},
		{catalog.GLGetError, nil},
		{catalog.GLClearColor, []uint64{abi.EncodeF32(0.1), abi.EncodeF32(0.2), abi.EncodeF32(0.3), abi.EncodeF32(1)}},
		{catalog.EGLGetCurrentContext, nil},
		{catalog.GLTexSubImage3D, []uint64{0x806F, 0, 0, 0, 0, 4, 4, 1, 0x1908, 0x1401, 0}},
		{catalog.GLDrawArrays, []uint64{4, 0, 3}},
	}
	var out []benchCall
	for _, m := range mix {
		e := a.cat.Entry(m.op)
		if _, status := a.table.Resolve(e.Opcode); status != dispatch.Resolved {
			continue
		}
		bc := benchCall{opcode: e.Opcode, tier: abi.TierOf(len(e.Params))}
		copy(bc.args[:], m.args)
		out = append(out, bc)
	}
	return out
}

// benchResult summarizes a bench run.
type benchResult struct {
	Calls    uint64
	Failures uint64
	Elapsed  time.Duration
}

func (r benchResult) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Calls) / r.Elapsed.Seconds()
}

// bench routes calls from workers goroutines until calls have been sent
// or ctx is done.
func (a *app) bench(ctx context.Context, workers, calls int) (benchResult, error) {
	mix := a.benchMix()
	if len(mix) == 0 {
		return benchResult{}, fmt.Errorf("backend %q wires none of the bench operations", a.cfg.Backend.Name)
	}
	workers = max(workers, 1)

	var sent, failed atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < workers; w++ {
		n := calls / workers
		if w < calls%workers {
			n++
		}
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				bc := mix[(w+i)%len(mix)]
				var res uint64
				if bc.tier == abi.TierShort {
					var s abi.ShortArgs
					copy(s[:], bc.args[:abi.ShortArity])
					res = a.gate.Short(bc.opcode, s)
				} else {
					res = a.gate.Long(bc.opcode, bc.args)
				}
				sent.Add(1)
				if res == ^uint64(0) {
					failed.Add(1)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	res := benchResult{Calls: sent.Load(), Failures: failed.Load(), Elapsed: time.Since(start)}
	a.log.Debug("bench finished",
		zap.Int("workers", workers),
		zap.Uint64("calls", res.Calls),
		zap.Duration("elapsed", res.Elapsed))
	return res, err
}

func printBench(w io.Writer, workers int, r benchResult) {
	fmt.Fprintf(w, "%d workers, %d calls in %v (%.0f calls/s)", workers, r.Calls, r.Elapsed.Round(time.Microsecond), r.PerSecond())
	if r.Failures > 0 {
		fmt.Fprintf(w, ", %d failures", r.Failures)
	}
	fmt.Fprintln(w)
}

// openScript returns the named script, or stdin for "-".
func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// parseNamespaces parses a comma-separated list; empty means all.
func parseNamespaces(s string) ([]catalog.Namespace, error) {
	if s == "" {
		return catalog.Namespaces, nil
	}
	var out []catalog.Namespace
	for _, part := range strings.Split(s, ",") {
		ns, ok := catalog.ParseNamespace(strings.TrimSpace(part))
		if !ok {
			return nil, fmt.Errorf("unknown namespace %q", part)
		}
		out = append(out, ns)
	}
	return out, nil
}
