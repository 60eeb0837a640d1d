package bridge

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/bridge/internal/wasm"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// GuestModuleName is the instance name of the generated guest module.
const GuestModuleName = "glforward-guest"

// BuildGuest generates a core wasm module importing the trampolines from
// ModuleName and exporting one function per op under its declared name.
// Each export has the operation's natural wasm signature; its body widens
// the arguments to words, fills the tier's remaining slots with zero and
// narrows the result. With no ops every catalog entry is included.
func BuildGuest(cat *catalog.Catalog, ops ...catalog.Op) ([]byte, error) {
	if len(ops) == 0 {
		for _, e := range cat.Entries(catalog.Invalid) {
			ops = append(ops, e.Op)
		}
	}

	b := wasm.NewGuestBuilder(ModuleName, ShortExport, LongExport)
	seen := make(map[catalog.Op]bool, len(ops))
	for _, op := range ops {
		if !cat.Has(op) {
			return nil, errors.NotFound(errors.PhaseBridge, "operation", op.String())
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		e := cat.Entry(op)
		sig := e.Signature()
		if sig.Arity() > abi.MaxArgs {
			return nil, errors.Arity(errors.PhaseBridge, e.Name, abi.MaxArgs, sig.Arity())
		}
		b.AddStub(e.Name, e.Opcode, sig.Params, sig.Result)
	}
	return b.Build(), nil
}

// Guest is an instantiated guest module. Calls made through it travel the
// same path a compiled client would: typed wasm call, stub, trampoline,
// host gate.
type Guest struct {
	cat *catalog.Catalog
	mod api.Module
	fns map[catalog.Op]api.Function
}

// NewGuest builds, compiles and instantiates a guest for ops in r. The
// host module must already be instantiated in r.
func NewGuest(ctx context.Context, r wazero.Runtime, cat *catalog.Catalog, ops ...catalog.Op) (*Guest, error) {
	bin, err := BuildGuest(cat, ops...)
	if err != nil {
		return nil, err
	}

	compiled, err := r.CompileModule(ctx, bin)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBridge, errors.KindInvalidData, err, "compile guest module")
	}
	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(GuestModuleName))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBridge, errors.KindInvalidData, err, "instantiate guest module")
	}

	g := &Guest{cat: cat, mod: mod, fns: make(map[catalog.Op]api.Function)}
	for name := range compiled.ExportedFunctions() {
		op, ok := cat.Lookup(name)
		if !ok {
			continue
		}
		g.fns[op] = mod.ExportedFunction(name)
	}

	Logger().Debug("guest module instantiated",
		zap.Int("stubs", len(g.fns)),
		zap.Int("bytes", len(bin)))
	return g, nil
}

// Module returns the underlying wazero module.
func (g *Guest) Module() api.Module { return g.mod }

// Close releases the guest instance.
func (g *Guest) Close(ctx context.Context) error { return g.mod.Close(ctx) }

// Call invokes the stub for op with Go-typed arguments and returns the
// narrowed result, or nil for void operations.
func (g *Guest) Call(ctx context.Context, op catalog.Op, args ...any) (any, error) {
	fn, ok := g.fns[op]
	if !ok {
		return nil, errors.NotFound(errors.PhaseBridge, "guest export", op.String())
	}
	e := g.cat.Entry(op)
	sig := e.Signature()

	words, err := sig.Encode(args...)
	if err != nil {
		return nil, err
	}
	params := make([]uint64, sig.Arity())
	for i, k := range sig.Params {
		params[i] = toWasm(k, words[i])
	}

	results, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, errors.New(errors.PhaseBridge, errors.KindInvalidData).
			Op(e.Name).
			Cause(err).
			Detail("guest call").
			Build()
	}
	if sig.Void() {
		return nil, nil
	}
	return abi.Narrow(sig.Result, results[0]), nil
}

// toWasm converts a transport word to the raw wazero encoding of the
// kind's wasm type: 32-bit values occupy the low half with the high half
// clear.
func toWasm(k abi.Kind, w uint64) uint64 {
	vt, _ := wasm.ValueType(k)
	if vt == api.ValueTypeI32 || vt == api.ValueTypeF32 {
		return uint64(uint32(w))
	}
	return w
}
