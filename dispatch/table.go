package dispatch

import (
	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// Target is a resolved operation. It receives every argument slot and
// reads only as many as its declared arity; the result is already widened.
type Target func(args abi.Args) uint64

// Resolver supplies the implementation of a cataloged operation.
// The second result is false when the receiving domain does not provide it.
type Resolver interface {
	Resolve(e catalog.Entry) (Target, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(e catalog.Entry) (Target, bool)

func (f ResolverFunc) Resolve(e catalog.Entry) (Target, bool) { return f(e) }

// Slot is one table position: either a resolved target or an explicit hole.
type Slot struct {
	target Target
	op     catalog.Op
	filled bool
}

// Present reports whether the slot holds a target.
func (s Slot) Present() bool { return s.filled }

// Target returns the slot's target, or nil for a hole.
func (s Slot) Target() Target { return s.target }

// Op returns the operation the slot is assigned to.
func (s Slot) Op() catalog.Op { return s.op }

// Status classifies a lookup.
type Status uint8

const (
	Resolved   Status = iota // slot holds a target
	Unwired                  // opcode is valid, no implementation
	OutOfRange               // opcode belongs to no namespace
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Unwired:
		return "unwired"
	default:
		return "out_of_range"
	}
}

// Table holds one flat slot array per namespace. It is read-only after
// Build and safe for concurrent lookups.
type Table struct {
	cat   *catalog.Catalog
	slots [catalog.EGL + 1][]Slot
	rng   [catalog.EGL + 1]catalog.Range
	bias  [catalog.EGL + 1]catalog.Opcode
	live  [catalog.EGL + 1]bool
	shift uint
	pow2  bool
	div   catalog.Opcode
}

// Build resolves every cataloged operation and lays the results out by
// opcode. Operations the resolver does not supply leave holes.
func Build(cat *catalog.Catalog, r Resolver) (*Table, error) {
	if cat == nil {
		return nil, errors.InvalidInput(errors.PhaseDispatch, "nil catalog")
	}
	if r == nil {
		r = ResolverFunc(func(catalog.Entry) (Target, bool) { return nil, false })
	}

	t := &Table{cat: cat, div: cat.Stride()}
	if d := t.div; d&(d-1) == 0 {
		t.pow2 = true
		for d > 1 {
			d >>= 1
			t.shift++
		}
	}

	for _, ns := range catalog.Namespaces {
		rng, ok := cat.RangeOf(ns)
		if !ok {
			continue
		}
		t.rng[ns] = rng
		t.bias[ns] = cat.Bias(ns)
		t.live[ns] = true

		// Length derives from the same bound used for range membership, so
		// every in-range opcode indexes inside the array.
		n := int((rng.Max-t.bias[ns])/t.div) + 1
		slots := make([]Slot, n)

		entries := cat.Entries(ns)
		taken := make([]bool, n)
		if len(entries) > n {
			return nil, errors.Invariant(errors.PhaseDispatch,
				"%s table has %d slots for %d operations", ns, n, len(entries))
		}
		for _, e := range entries {
			i := t.index(ns, e.Opcode)
			if i < 0 || i >= n {
				return nil, errors.OutOfBounds(errors.PhaseDispatch, []string{ns.String(), e.Name}, i, n)
			}
			if taken[i] {
				return nil, errors.Invariant(errors.PhaseDispatch,
					"%s and %s share slot %d", cat.Entry(slots[i].op).Name, e.Name, i)
			}
			taken[i] = true
			slots[i].op = e.Op
			if target, ok := r.Resolve(e); ok && target != nil {
				slots[i].target = target
				slots[i].filled = true
			}
		}
		t.slots[ns] = slots
	}

	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

// check asserts that the slot arrays cover their ranges exactly.
func (t *Table) check() error {
	for _, ns := range catalog.Namespaces {
		if !t.live[ns] {
			continue
		}
		last := t.index(ns, t.rng[ns].Max)
		if last != len(t.slots[ns])-1 {
			return errors.Invariant(errors.PhaseDispatch,
				"%s range %s ends at slot %d, table has %d", ns, t.rng[ns], last, len(t.slots[ns]))
		}
	}
	return nil
}

func (t *Table) index(ns catalog.Namespace, opcode catalog.Opcode) int {
	off := opcode - t.bias[ns]
	if t.pow2 {
		return int(off >> t.shift)
	}
	return int(off / t.div)
}

// Catalog returns the catalog the table was built from.
func (t *Table) Catalog() *catalog.Catalog { return t.cat }

// Classify returns the namespace whose range contains opcode.
func (t *Table) Classify(opcode catalog.Opcode) catalog.Namespace {
	for _, ns := range catalog.Namespaces {
		if t.live[ns] && t.rng[ns].Contains(opcode) {
			return ns
		}
	}
	return catalog.Invalid
}

// Resolve looks opcode up. An in-range opcode always yields a slot; the
// slot is absent when the operation is not wired.
func (t *Table) Resolve(opcode catalog.Opcode) (Slot, Status) {
	ns := t.Classify(opcode)
	if ns == catalog.Invalid {
		return Slot{}, OutOfRange
	}
	s := t.slots[ns][t.index(ns, opcode)]
	if !s.filled {
		return s, Unwired
	}
	return s, Resolved
}

// Len returns the slot count of ns.
func (t *Table) Len(ns catalog.Namespace) int {
	if ns == catalog.Invalid || ns > catalog.EGL {
		return 0
	}
	return len(t.slots[ns])
}

// Coverage summarises how much of a namespace is wired.
type Coverage struct {
	Missing   []catalog.Op
	Namespace catalog.Namespace
	Total     int
	Wired     int
}

// Ratio returns the wired fraction in [0, 1].
func (c Coverage) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Wired) / float64(c.Total)
}

// Coverage reports wired and missing operations of ns.
func (t *Table) Coverage(ns catalog.Namespace) Coverage {
	cov := Coverage{Namespace: ns}
	if ns == catalog.Invalid || ns > catalog.EGL {
		return cov
	}
	for _, e := range t.cat.Entries(ns) {
		cov.Total++
		if t.slots[ns][t.index(ns, e.Opcode)].filled {
			cov.Wired++
		} else {
			cov.Missing = append(cov.Missing, e.Op)
		}
	}
	return cov
}
