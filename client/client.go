// Package client is the calling side of the boundary: it turns a typed
// call into transport words and hands them to a trampoline tier.
package client

import (
	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// Checker is a gate that can report failures explicitly instead of
// through the failure sentinel. *router.Router is one.
type Checker interface {
	Call(opcode uint64, args abi.Args) (uint64, error)
}

// Client encodes calls by catalog signature.
type Client struct {
	cat     *catalog.Catalog
	gate    abi.Gate
	checker Checker
}

// Option configures a Client.
type Option func(*Client)

// WithStrict routes through the gate's Checker when it has one, so
// unsupported opcodes become errors rather than the failure word.
func WithStrict() Option {
	return func(c *Client) {
		if ch, ok := c.gate.(Checker); ok {
			c.checker = ch
		}
	}
}

// New returns a client sending calls described by cat through gate.
func New(cat *catalog.Catalog, gate abi.Gate, opts ...Option) *Client {
	c := &Client{cat: cat, gate: gate}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call invokes op with Go-typed arguments. The result is narrowed to the
// declared result type; void operations return nil.
func (c *Client) Call(op catalog.Op, args ...any) (any, error) {
	if !c.cat.Has(op) {
		return nil, errors.NotFound(errors.PhaseMarshal, "operation", op.String())
	}
	e := c.cat.Entry(op)
	sig := e.Signature()

	words, err := sig.Encode(args...)
	if err != nil {
		if ee, ok := err.(*errors.Error); ok && ee.Op == "" {
			ee.Op = e.Name
		}
		return nil, err
	}

	w, err := c.send(e.Opcode, sig.Tier(), words)
	if err != nil {
		return nil, err
	}
	return abi.Narrow(sig.Result, w), nil
}

// CallName is Call with the operation looked up by declared name.
func (c *Client) CallName(name string, args ...any) (any, error) {
	op, ok := c.cat.Lookup(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseMarshal, "operation", name)
	}
	return c.Call(op, args...)
}

// CallWords invokes op with already-widened words.
func (c *Client) CallWords(op catalog.Op, words ...uint64) (uint64, error) {
	if !c.cat.Has(op) {
		return 0, errors.NotFound(errors.PhaseMarshal, "operation", op.String())
	}
	e := c.cat.Entry(op)
	if len(words) != len(e.Params) {
		return 0, errors.Arity(errors.PhaseMarshal, e.Name, len(e.Params), len(words))
	}
	var a abi.Args
	copy(a[:], words)
	return c.send(e.Opcode, abi.TierOf(len(words)), a)
}

func (c *Client) send(opcode uint64, tier abi.Tier, a abi.Args) (uint64, error) {
	if c.checker != nil {
		return c.checker.Call(opcode, a)
	}
	if tier == abi.TierShort {
		var s abi.ShortArgs
		copy(s[:], a[:abi.ShortArity])
		return c.gate.Short(opcode, s), nil
	}
	return c.gate.Long(opcode, a), nil
}
