package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/backend/soft"
	"github.com/wippyai/glforward/backend/trace"
	"github.com/wippyai/glforward/capture"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/client"
	"github.com/wippyai/glforward/config"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/resolve"
	"github.com/wippyai/glforward/router"
)

// app is one configured forwarding stack.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	out    io.Writer
	cat    *catalog.Catalog
	soft   *soft.Backend
	tracer *trace.Backend
	table  *dispatch.Table
	router *router.Router
	gate   abi.Gate
	rec    *capture.Recorder
	capw   *capture.Writer
}

// setLoggers hands l to every package that logs.
func setLoggers(l *zap.Logger) {
	router.SetLogger(l.Named("router"))
	resolve.SetLogger(l.Named("resolve"))
	capture.SetLogger(l.Named("capture"))
	soft.SetLogger(l.Named("soft"))
	trace.SetLogger(l.Named("trace"))
}

// newApp builds the stack cfg describes. When record is false the
// [capture] section is ignored.
func newApp(cfg *config.Config, log *zap.Logger, out io.Writer, record bool) (*app, error) {
	a := &app{cfg: cfg, log: log, out: out, cat: catalog.Default()}

	var r dispatch.Resolver
	switch cfg.Backend.Name {
	case config.BackendTrace:
		a.tracer = trace.New(trace.WithLogger(log.Named("trace")), trace.WithLevel(zapcore.InfoLevel))
		r = a.tracer
	default:
		sb, err := soft.New(a.cat, make(soft.Bytes, cfg.Backend.Memory))
		if err != nil {
			return nil, err
		}
		a.soft = sb
		r = sb
		if cfg.Backend.Trace {
			a.tracer = trace.Wrap(sb, trace.WithLogger(log.Named("trace")))
			r = a.tracer
		}
	}

	if len(cfg.Backend.Require) > 0 {
		if err := resolve.Require(a.cat, r, cfg.Backend.Require...); err != nil {
			return nil, err
		}
	}

	table, err := dispatch.Build(a.cat, r)
	if err != nil {
		return nil, err
	}
	a.table = table
	a.router, err = router.New(table, router.WithLogger(log.Named("router")))
	if err != nil {
		return nil, err
	}
	a.gate = a.router

	if record && cfg.Capture.Path != "" {
		level, err := cfg.CaptureLevel()
		if err != nil {
			return nil, err
		}
		if level != capture.LevelOff {
			a.capw, err = capture.Create(cfg.Capture.Path, a.cat)
			if err != nil {
				return nil, err
			}
			a.rec = capture.NewRecorder(a.router, a.capw, capture.WithLevel(level))
			a.gate = a.rec
			log.Info("recording calls", zap.String("path", cfg.Capture.Path), zap.Stringer("level", level))
		}
	}
	return a, nil
}

// client returns a typed client over the app's gate. Without a recorder
// in the way failures come back as errors.
func (a *app) client() *client.Client {
	return client.New(a.cat, a.gate, client.WithStrict())
}

func (a *app) Close() error {
	if a.capw == nil {
		return nil
	}
	if err := a.rec.Err(); err != nil {
		a.capw.Close()
		return err
	}
	return a.capw.Close()
}
