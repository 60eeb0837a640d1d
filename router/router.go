package router

import (
	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/errors"
)

// Failure is the result Route returns for any call it cannot complete.
// It is the all-ones word, -1 as a signed value.
const Failure = ^uint64(0)

// Router is the single entry point for forwarded calls. It holds no
// mutable state and may be used from any number of goroutines.
type Router struct {
	table *dispatch.Table
	log   *zap.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger overrides the package logger for one router.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a router over a built table. Requiring the table here is
// what guarantees no call is routed before initialization.
func New(t *dispatch.Table, opts ...Option) (*Router, error) {
	if t == nil {
		return nil, errors.InvalidInput(errors.PhaseRoute, "router requires a built dispatch table")
	}
	r := &Router{table: t, log: Logger()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Table returns the dispatch table the router reads.
func (r *Router) Table() *dispatch.Table { return r.table }

// Catalog returns the catalog behind the table.
func (r *Router) Catalog() *catalog.Catalog { return r.table.Catalog() }

// Route classifies opcode, resolves it and invokes the target with all
// fifteen argument slots. Failures are logged and yield Failure; an
// opcode outside every namespace and an unwired operation are reported
// with different messages.
func (r *Router) Route(opcode uint64, args abi.Args) uint64 {
	result, err := r.invoke(opcode, args)
	if err != nil {
		r.report(err)
		return Failure
	}
	return result
}

// Call is Route with the failure returned instead of logged.
func (r *Router) Call(opcode uint64, args abi.Args) (uint64, error) {
	result, err := r.invoke(opcode, args)
	if err != nil {
		return Failure, err
	}
	return result, nil
}

// RouteVector routes a full Argument Vector.
func (r *Router) RouteVector(v abi.Vector) uint64 {
	return r.Route(v.Opcode(), v.Args())
}

// Short implements abi.Gate. Slots beyond the short block are zero.
func (r *Router) Short(opcode uint64, args abi.ShortArgs) uint64 {
	return r.Route(opcode, abi.Extend(args))
}

// Long implements abi.Gate.
func (r *Router) Long(opcode uint64, args abi.Args) uint64 {
	return r.Route(opcode, args)
}

func (r *Router) invoke(opcode uint64, args abi.Args) (result uint64, err error) {
	slot, status := r.table.Resolve(opcode)
	switch status {
	case dispatch.OutOfRange:
		return Failure, errors.UnsupportedAPI(opcode)
	case dispatch.Unwired:
		return Failure, errors.UnsupportedFunction(opcode, r.name(slot.Op()))
	}

	defer func() {
		if p := recover(); p != nil {
			result, err = Failure, errors.TargetPanic(r.name(slot.Op()), p)
		}
	}()
	return slot.Target()(args), nil
}

func (r *Router) name(op catalog.Op) string {
	return r.table.Catalog().Entry(op).Name
}

func (r *Router) report(err error) {
	e, ok := err.(*errors.Error)
	if !ok {
		r.log.Error("route failed", zap.Error(err))
		return
	}
	switch e.Kind {
	case errors.KindUnsupportedAPI:
		r.log.Error("unsupported API", zap.Any("opcode", e.Value))
	case errors.KindUnsupportedFunction:
		r.log.Error("unsupported function", zap.String("op", e.Op), zap.Any("opcode", e.Value))
	case errors.KindTargetPanic:
		r.log.Error("target panicked", zap.String("op", e.Op), zap.Any("panic", e.Value))
	default:
		r.log.Error("route failed", zap.Error(err))
	}
}

var _ abi.Gate = (*Router)(nil)
