package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/dchest/siphash"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/errors"
)

//go:embed gles2.wit
var gles2Source string

//go:embed egl.wit
var eglSource string

// Namespace identifies one of the API surfaces sharing the dispatch mechanism.
type Namespace uint8

const (
	Invalid Namespace = iota
	GLES2
	EGL
)

// Namespaces lists the valid namespaces in opcode order.
var Namespaces = []Namespace{GLES2, EGL}

func (n Namespace) String() string {
	switch n {
	case GLES2:
		return "gles2"
	case EGL:
		return "egl"
	default:
		return "invalid"
	}
}

// ParseNamespace accepts the names produced by String.
func ParseNamespace(s string) (Namespace, bool) {
	switch strings.ToLower(s) {
	case "gles2", "gl":
		return GLES2, true
	case "egl":
		return EGL, true
	}
	return Invalid, false
}

// Opcode is the raw integer identifying an operation on the wire.
type Opcode = uint64

const (
	// Stride is the number of opcode values each entry consumes.
	Stride Opcode = 8
	// Bias separates the EGL range from the GLES2 range.
	Bias Opcode = 10000
)

// Layout fixes how declaration positions map to opcodes.
type Layout struct {
	Stride Opcode
	Bias   [EGL + 1]Opcode
}

// DefaultLayout is the layout the generated Op constants assume.
var DefaultLayout = Layout{
	Stride: Stride,
	Bias:   [EGL + 1]Opcode{GLES2: 0, EGL: Bias},
}

// Range is a closed interval of raw opcodes.
type Range struct {
	Min, Max Opcode
}

// Contains reports whether o lies in r.
func (r Range) Contains(o Opcode) bool {
	return o >= r.Min && o <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Param is a declared parameter.
type Param struct {
	Name string
	Kind abi.Kind
}

// Entry describes one cataloged operation.
type Entry struct {
	Params    []Param
	Name      string
	Op        Op
	Namespace Namespace
	Index     int // position within the namespace
	Opcode    Opcode
	Result    abi.Kind
}

// Signature returns the transport signature of the entry.
func (e Entry) Signature() abi.Signature {
	sig := abi.Signature{Result: e.Result, Params: make([]abi.Kind, len(e.Params))}
	for i, p := range e.Params {
		sig.Params[i] = p.Kind
	}
	return sig
}

// Decl renders the entry in declaration syntax.
func (e Entry) Decl() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString(": func(")
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Kind.String())
	}
	b.WriteByte(')')
	if e.Result != abi.Void {
		b.WriteString(" -> ")
		b.WriteString(e.Result.String())
	}
	b.WriteByte(';')
	return b.String()
}

type space struct {
	iface string
	first Op
	count int
	rng   Range
}

// Catalog is the closed, ordered set of operations and their opcodes.
// It is immutable once loaded.
type Catalog struct {
	byName      map[string]Op
	entries     []Entry
	spaces      [EGL + 1]space
	layout      Layout
	fingerprint uint64
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog built from the embedded declarations.
// It panics if the declarations violate a catalog invariant; that is a
// build defect, not a runtime condition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(DefaultLayout,
			Source{Namespace: GLES2, Text: gles2Source},
			Source{Namespace: EGL, Text: eglSource},
		)
		if err == nil {
			err = c.checkGenerated()
		}
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses declaration sources and lays them out under layout.
// Sources must be given in namespace order, each namespace once.
func Load(layout Layout, sources ...Source) (*Catalog, error) {
	if layout.Stride == 0 {
		return nil, errors.Invariant(errors.PhaseCatalog, "stride must be positive")
	}

	c := &Catalog{
		layout: layout,
		byName: make(map[string]Op),
	}

	var text strings.Builder
	prev := Invalid
	for _, src := range sources {
		if src.Namespace <= prev || src.Namespace > EGL {
			return nil, errors.Invariant(errors.PhaseCatalog, "namespace %s out of order", src.Namespace)
		}
		prev = src.Namespace

		iface, decls, err := parseDecls(src.Text)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = append([]string{src.Namespace.String()}, e.Path...)
			}
			return nil, err
		}
		if len(decls) == 0 {
			return nil, errors.Invariant(errors.PhaseCatalog, "namespace %s declares no operations", src.Namespace)
		}

		sp := space{iface: iface, first: Op(len(c.entries)), count: len(decls)}
		base := layout.Bias[src.Namespace]
		sp.rng = Range{Min: base, Max: base + Opcode(len(decls)-1)*layout.Stride}
		c.spaces[src.Namespace] = sp

		for i, d := range decls {
			if len(d.params) > abi.MaxArgs {
				return nil, errors.Arity(errors.PhaseCatalog, d.name, abi.MaxArgs, len(d.params))
			}
			if other, dup := c.byName[d.name]; dup {
				return nil, errors.Invariant(errors.PhaseCatalog, "%s declared in %s and %s",
					d.name, c.entries[other].Namespace, src.Namespace)
			}
			op := Op(len(c.entries))
			c.byName[d.name] = op
			c.entries = append(c.entries, Entry{
				Op:        op,
				Name:      d.name,
				Namespace: src.Namespace,
				Index:     i,
				Opcode:    base + Opcode(i)*layout.Stride,
				Params:    d.params,
				Result:    d.result,
			})
		}

		text.WriteString(src.Text)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.fingerprint = fingerprint(layout, text.String())
	return c, nil
}

// Validate checks the layout invariants: every namespace range is well
// formed, ranges do not overlap, and every entry's opcode lies in its range.
func (c *Catalog) Validate() error {
	var loaded []Namespace
	for _, ns := range Namespaces {
		if c.spaces[ns].count > 0 {
			loaded = append(loaded, ns)
		}
	}

	for i, a := range loaded {
		ra := c.spaces[a].rng
		if ra.Max < ra.Min {
			return errors.Invariant(errors.PhaseCatalog, "namespace %s range %s wraps", a, ra)
		}
		for _, b := range loaded[i+1:] {
			rb := c.spaces[b].rng
			lo, hi := max(ra.Min, rb.Min), min(ra.Max, rb.Max)
			if lo <= hi {
				return errors.RangeOverlap(a.String(), b.String(), lo, hi)
			}
		}
	}

	for _, e := range c.entries {
		if c.NamespaceOf(e.Opcode) != e.Namespace {
			return errors.Invariant(errors.PhaseCatalog, "%s opcode %d classifies outside %s", e.Name, e.Opcode, e.Namespace)
		}
		if got, ok := c.OpAt(e.Opcode); !ok || got != e.Op {
			return errors.Invariant(errors.PhaseCatalog, "%s opcode %d does not map back to its entry", e.Name, e.Opcode)
		}
	}
	return nil
}

// checkGenerated verifies the generated Op constants match the parsed
// declarations name for name.
func (c *Catalog) checkGenerated() error {
	if len(c.entries) != len(opNames) {
		return errors.New(errors.PhaseCatalog, errors.KindCatalogMismatch).
			Detail("generated constants cover %d operations, declarations have %d; rerun opgen", len(opNames), len(c.entries)).
			Build()
	}
	for i, e := range c.entries {
		if opNames[i] != e.Name {
			return errors.New(errors.PhaseCatalog, errors.KindCatalogMismatch).
				Op(e.Name).
				Detail("generated constant %d is %s; rerun opgen", i, opNames[i]).
				Build()
		}
	}
	if c.spaces[EGL].first != firstEGL {
		return errors.New(errors.PhaseCatalog, errors.KindCatalogMismatch).
			Detail("first EGL constant is %d, declarations start EGL at %d", firstEGL, c.spaces[EGL].first).
			Build()
	}
	return nil
}

func fingerprint(l Layout, text string) uint64 {
	h := siphash.New(fingerprintKey[:])
	fmt.Fprintf(h, "stride=%d;", l.Stride)
	for _, b := range l.Bias {
		fmt.Fprintf(h, "bias=%d;", b)
	}
	h.Write([]byte(text))
	return h.Sum64()
}

var fingerprintKey = [16]byte{'g', 'l', 'f', 'o', 'r', 'w', 'a', 'r', 'd', '.', 'c', 'a', 't', 'a', 'l', 'g'}

// Fingerprint identifies the declarations and layout. Two catalogs with
// the same fingerprint assign the same opcodes to the same signatures.
func (c *Catalog) Fingerprint() uint64 { return c.fingerprint }

// Layout returns the opcode layout.
func (c *Catalog) Layout() Layout { return c.layout }

// Stride returns the table indexing divisor.
func (c *Catalog) Stride() Opcode { return c.layout.Stride }

// Bias returns the opcode offset of ns.
func (c *Catalog) Bias(ns Namespace) Opcode {
	if ns == Invalid || ns > EGL {
		return 0
	}
	return c.layout.Bias[ns]
}

// Len returns the number of operations across all namespaces.
func (c *Catalog) Len() int { return len(c.entries) }

// Count returns the number of operations declared in ns.
func (c *Catalog) Count(ns Namespace) int {
	if ns == Invalid || ns > EGL {
		return 0
	}
	return c.spaces[ns].count
}

// Interface returns the interface name declared for ns.
func (c *Catalog) Interface(ns Namespace) string {
	if ns == Invalid || ns > EGL {
		return ""
	}
	return c.spaces[ns].iface
}

// RangeOf returns the closed opcode range of ns. The second result is
// false for Invalid or an unloaded namespace.
func (c *Catalog) RangeOf(ns Namespace) (Range, bool) {
	if ns == Invalid || ns > EGL || c.spaces[ns].count == 0 {
		return Range{}, false
	}
	return c.spaces[ns].rng, true
}

// NamespaceOf classifies a raw opcode by range membership.
func (c *Catalog) NamespaceOf(opcode Opcode) Namespace {
	for _, ns := range Namespaces {
		sp := &c.spaces[ns]
		if sp.count > 0 && sp.rng.Contains(opcode) {
			return ns
		}
	}
	return Invalid
}

// Slot returns the table index of opcode within its namespace: the
// bias is removed and the remainder divided by the stride.
func (c *Catalog) Slot(ns Namespace, opcode Opcode) int {
	return int((opcode - c.layout.Bias[ns]) / c.layout.Stride)
}

// OpAt returns the operation whose table slot opcode indexes.
func (c *Catalog) OpAt(opcode Opcode) (Op, bool) {
	ns := c.NamespaceOf(opcode)
	if ns == Invalid {
		return 0, false
	}
	i := c.Slot(ns, opcode)
	sp := &c.spaces[ns]
	if i >= sp.count {
		return 0, false
	}
	return sp.first + Op(i), true
}

// OpcodeOf returns the opcode assigned to op.
func (c *Catalog) OpcodeOf(op Op) Opcode {
	return c.entries[op].Opcode
}

// Lookup finds an operation by name.
func (c *Catalog) Lookup(name string) (Op, bool) {
	op, ok := c.byName[name]
	return op, ok
}

// Entry returns the description of op. It panics if op is not in the catalog.
func (c *Catalog) Entry(op Op) Entry {
	return c.entries[op]
}

// Has reports whether op belongs to the catalog.
func (c *Catalog) Has(op Op) bool {
	return int(op) < len(c.entries)
}

// Entries returns the operations of ns in increasing opcode order.
// Invalid returns every entry.
func (c *Catalog) Entries(ns Namespace) []Entry {
	if ns == Invalid {
		return c.entries
	}
	if ns > EGL {
		return nil
	}
	sp := c.spaces[ns]
	return c.entries[sp.first : int(sp.first)+sp.count]
}

// WIT renders ns back to declaration syntax.
func (c *Catalog) WIT(ns Namespace) string {
	var b strings.Builder
	b.WriteString("interface ")
	b.WriteString(c.Interface(ns))
	b.WriteString(" {\n")
	for _, e := range c.Entries(ns) {
		b.WriteString("\t")
		b.WriteString(e.Decl())
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

// OpcodeOf returns the opcode of op in the default catalog.
func OpcodeOf(op Op) Opcode { return op.Opcode() }

// NamespaceOf classifies opcode against the default catalog.
func NamespaceOf(opcode Opcode) Namespace { return Default().NamespaceOf(opcode) }

// RangeOf returns the default catalog's range for ns.
func RangeOf(ns Namespace) (Range, bool) { return Default().RangeOf(ns) }

// Lookup finds name in the default catalog.
func Lookup(name string) (Op, bool) { return Default().Lookup(name) }
