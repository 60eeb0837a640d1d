package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// parseArg converts command-line text to the Go value that carries k.
// Integers accept 0x, 0o and 0b prefixes.
func parseArg(k abi.Kind, s string) (any, error) {
	s = strings.TrimSpace(s)
	var (
		v   any
		err error
	)
	switch k {
	case abi.Bool:
		v, err = strconv.ParseBool(s)
	case abi.S8:
		var n int64
		n, err = strconv.ParseInt(s, 0, 8)
		v = int8(n)
	case abi.S16:
		var n int64
		n, err = strconv.ParseInt(s, 0, 16)
		v = int16(n)
	case abi.S32:
		var n int64
		n, err = strconv.ParseInt(s, 0, 32)
		v = int32(n)
	case abi.S64:
		v, err = strconv.ParseInt(s, 0, 64)
	case abi.U8:
		var n uint64
		n, err = strconv.ParseUint(s, 0, 8)
		v = uint8(n)
	case abi.U16:
		var n uint64
		n, err = strconv.ParseUint(s, 0, 16)
		v = uint16(n)
	case abi.U32, abi.Enum:
		var n uint64
		n, err = strconv.ParseUint(s, 0, 32)
		v = uint32(n)
	case abi.U64:
		v, err = strconv.ParseUint(s, 0, 64)
	case abi.Ptr:
		var n uint64
		n, err = strconv.ParseUint(s, 0, 64)
		v = uintptr(n)
	case abi.F32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case abi.F64:
		v, err = strconv.ParseFloat(s, 64)
	default:
		return nil, errors.InvalidInput(errors.PhaseMarshal, "no argument of kind "+k.String())
	}
	if err != nil {
		return nil, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Cause(err).Detail("%q is not a valid %s", s, k).Build()
	}
	return v, nil
}

// call is one parsed invocation.
type call struct {
	op   catalog.Op
	args []any
}

// parseCall parses "name arg..." against cat.
func parseCall(cat *catalog.Catalog, fields []string) (call, error) {
	if len(fields) == 0 {
		return call{}, errors.InvalidInput(errors.PhaseMarshal, "empty call")
	}
	op, ok := cat.Lookup(fields[0])
	if !ok {
		return call{}, errors.NotFound(errors.PhaseMarshal, "operation", fields[0])
	}
	e := cat.Entry(op)
	if len(fields)-1 != len(e.Params) {
		return call{}, errors.Arity(errors.PhaseMarshal, e.Name, len(e.Params), len(fields)-1)
	}
	c := call{op: op, args: make([]any, len(e.Params))}
	for i, p := range e.Params {
		v, err := parseArg(p.Kind, fields[i+1])
		if err != nil {
			if ee, ok := err.(*errors.Error); ok {
				ee.Op = e.Name
				ee.Path = []string{p.Name}
			}
			return call{}, err
		}
		c.args[i] = v
	}
	return c, nil
}

// parseScript reads one call per line. Blank lines and lines starting
// with # are skipped; commas between arguments are optional.
func parseScript(cat *catalog.Catalog, r io.Reader) ([]call, error) {
	var calls []call
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(strings.NewReplacer(",", " ", "(", " ", ")", " ", ";", " ").Replace(text))
		c, err := parseCall(cat, fields)
		if err != nil {
			return nil, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
				Cause(err).Detail("line %d", line).Build()
		}
		calls = append(calls, c)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseMarshal, errors.KindInvalidData, err, "read script")
	}
	return calls, nil
}
