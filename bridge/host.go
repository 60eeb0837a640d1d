package bridge

import (
	"context"
	"strconv"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/errors"
)

const (
	// ModuleName is the host module guests import the trampolines from.
	ModuleName = "glforward"
	// ShortExport takes the opcode and five argument words.
	ShortExport = "call"
	// LongExport takes the opcode and fifteen argument words.
	LongExport = "call_long"
)

// Instantiate registers the trampoline host module in r. Both exports
// forward to gate; every value crosses as an i64 word.
func Instantiate(ctx context.Context, r wazero.Runtime, gate abi.Gate) (api.Module, error) {
	if gate == nil {
		return nil, errors.InvalidInput(errors.PhaseBridge, "gate cannot be nil")
	}

	builder := r.NewHostModuleBuilder(ModuleName)

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			var s abi.ShortArgs
			copy(s[:], stack[1:1+abi.ShortArity])
			stack[0] = gate.Short(stack[0], s)
		}), i64Params(1+abi.ShortArity), i64Params(1)).
		WithParameterNames(paramNames(abi.ShortArity)...).
		Export(ShortExport)

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			var a abi.Args
			copy(a[:], stack[1:abi.VectorWords])
			stack[0] = gate.Long(stack[0], a)
		}), i64Params(abi.VectorWords), i64Params(1)).
		WithParameterNames(paramNames(abi.MaxArgs)...).
		Export(LongExport)

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBridge, errors.KindInvalidData, err, "instantiate host module")
	}
	Logger().Debug("host module instantiated", zap.String("module", ModuleName))
	return mod, nil
}

func i64Params(n int) []api.ValueType {
	out := make([]api.ValueType, n)
	for i := range out {
		out[i] = api.ValueTypeI64
	}
	return out
}

func paramNames(args int) []string {
	names := make([]string, 0, args+1)
	names = append(names, "opcode")
	for i := 1; i <= args; i++ {
		names = append(names, "arg"+strconv.Itoa(i))
	}
	return names
}
