// Command glforward inspects the call catalog and drives calls through the
// forwarding stack.
//
// Usage:
//
//	glforward [-config glforward.toml] <command> [flags] [args]
//
// Commands:
//
//	catalog      list operations with opcode, tier and wiring
//	coverage     report how much of each namespace the backend wires
//	route        route one call (name args...) or a script (-f file)
//	replay       re-send a capture file and report divergences
//	bench        route a call mix from concurrent workers
//	interactive  browse the catalog and make calls in a terminal UI
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/wippyai/glforward/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: glforward [-config file] <command> [flags] [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  catalog [-ns gles2,egl] [-wired]")
	fmt.Fprintln(w, "  coverage [-missing]")
	fmt.Fprintln(w, "  route [-f script] [name args...]")
	fmt.Fprintln(w, "  replay <capture>")
	fmt.Fprintln(w, "  bench [-workers n] [-calls n]")
	fmt.Fprintln(w, "  interactive")
}

// errUsage reports a command line that could not be parsed. Usage has
// already been printed.
var errUsage = fmt.Errorf("invalid usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("glforward", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { usage(stderr) }
	var (
		cfgPath = global.String("config", "", "Path to glforward.toml")
		backend = global.String("backend", "", "Override [backend] name (soft, trace)")
		verbose = global.Bool("v", false, "Debug logging")
	)
	if err := global.Parse(args); err != nil {
		return errUsage
	}
	if global.NArg() == 0 {
		usage(stderr)
		return errUsage
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *backend != "" {
		cfg.Backend.Name = *backend
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer log.Sync()
	setLoggers(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cmd, rest := global.Arg(0), global.Args()[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	switch cmd {
	case "catalog":
		nsList := fs.String("ns", "", "Comma-separated namespaces (default all)")
		wired := fs.Bool("wired", false, "Only wired operations")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		namespaces, err := parseNamespaces(*nsList)
		if err != nil {
			return err
		}
		return withApp(cfg, log, stdout, false, func(a *app) error {
			return a.listCatalog(namespaces, *wired)
		})

	case "coverage":
		missing := fs.Bool("missing", false, "List unwired operations")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		return withApp(cfg, log, stdout, false, func(a *app) error {
			return a.coverage(*missing)
		})

	case "route":
		script := fs.String("f", "", "Script with one call per line (- for stdin)")
		capturePath := fs.String("capture", "", "Override [capture] path")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		if *capturePath != "" {
			cfg.Capture.Path = *capturePath
		}
		return withApp(cfg, log, stdout, true, func(a *app) error {
			var calls []call
			if *script != "" {
				f, err := openScript(*script)
				if err != nil {
					return err
				}
				defer f.Close()
				if calls, err = parseScript(a.cat, f); err != nil {
					return err
				}
			} else {
				c, err := parseCall(a.cat, fs.Args())
				if err != nil {
					return err
				}
				calls = []call{c}
			}
			return a.route(calls)
		})

	case "replay":
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		if fs.NArg() != 1 {
			usage(stderr)
			return errUsage
		}
		return withApp(cfg, log, stdout, false, func(a *app) error {
			rep, err := a.replay(ctx, fs.Arg(0))
			if err != nil {
				return err
			}
			if rep.Diverged > 0 {
				return fmt.Errorf("%d of %d calls diverged", rep.Diverged, rep.Replayed)
			}
			return nil
		})

	case "bench":
		workers := fs.Int("workers", cfg.Bench.Workers, "Concurrent workers")
		calls := fs.Int("calls", cfg.Bench.Calls, "Total calls")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		return withApp(cfg, log, stdout, true, func(a *app) error {
			res, err := a.bench(ctx, *workers, *calls)
			printBench(stdout, max(*workers, 1), res)
			return err
		})

	case "interactive":
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		// The UI owns the terminal; logs would tear it.
		quiet := zap.NewNop()
		setLoggers(quiet)
		return withApp(cfg, quiet, stdout, true, runInteractive)

	case "help":
		usage(stdout)
		return nil
	}

	usage(stderr)
	return fmt.Errorf("unknown command %q", cmd)
}

func withApp(cfg *config.Config, log *zap.Logger, out io.Writer, record bool, fn func(*app) error) error {
	a, err := newApp(cfg, log, out, record)
	if err != nil {
		return err
	}
	err = fn(a)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}
