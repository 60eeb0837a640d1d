package resolve

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/errors"
)

// Host is a struct-based implementation of one namespace. Every exported
// method whose name, prefixed with the namespace's symbol prefix, names a
// cataloged operation is registered: method Clear on a "gles2" host
// implements glClear.
type Host interface {
	Namespace() catalog.Namespace
}

// ExplicitRegistrar lets a host list its operations by declared name
// instead of relying on method names.
type ExplicitRegistrar interface {
	Register() map[string]any
}

// Registry maps declared operation names to targets. It is safe for
// concurrent registration; resolution happens once, when a dispatch
// table is built from it.
type Registry struct {
	cat     *catalog.Catalog
	targets map[string]dispatch.Target
	mu      sync.RWMutex
}

// NewRegistry returns an empty registry bound to cat.
func NewRegistry(cat *catalog.Catalog) *Registry {
	return &Registry{
		cat:     cat,
		targets: make(map[string]dispatch.Target),
	}
}

// Prefix returns the symbol prefix of ns.
func Prefix(ns catalog.Namespace) string {
	switch ns {
	case catalog.GLES2:
		return "gl"
	case catalog.EGL:
		return "egl"
	default:
		return ""
	}
}

// RegisterTarget registers a raw target for name.
func (r *Registry) RegisterTarget(name string, t dispatch.Target) error {
	if t == nil {
		return errors.InvalidInput(errors.PhaseResolve, "target cannot be nil")
	}
	if _, ok := r.cat.Lookup(name); !ok {
		return errors.NotFound(errors.PhaseResolve, "operation", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[name] = t
	return nil
}

// RegisterFunc registers a typed Go function for name. Its parameters
// and result must match the declared signature kind for kind; named
// types are accepted by their underlying kind.
func (r *Registry) RegisterFunc(name string, fn any) error {
	op, ok := r.cat.Lookup(name)
	if !ok {
		return errors.NotFound(errors.PhaseResolve, "operation", name)
	}
	t, err := Adapt(r.cat.Entry(op), fn)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[name] = t
	return nil
}

// RegisterHost registers the methods of h that name cataloged operations
// of h's namespace. Other exported methods are ignored.
func (r *Registry) RegisterHost(h Host) error {
	ns := h.Namespace()
	prefix := Prefix(ns)
	if prefix == "" {
		return errors.InvalidInput(errors.PhaseResolve, "host namespace must be gles2 or egl")
	}

	if er, ok := h.(ExplicitRegistrar); ok {
		for name, fn := range er.Register() {
			if err := r.RegisterFunc(name, fn); err != nil {
				return err
			}
		}
		return nil
	}

	rv := reflect.ValueOf(h)
	rt := rv.Type()
	registered := 0
	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() || method.Name == "Namespace" {
			continue
		}
		name := prefix + method.Name
		op, ok := r.cat.Lookup(name)
		if !ok || r.cat.Entry(op).Namespace != ns {
			continue
		}
		if err := r.RegisterFunc(name, rv.Method(i).Interface()); err != nil {
			return err
		}
		registered++
	}

	Logger().Debug("registered host",
		zap.Stringer("namespace", ns),
		zap.String("type", rt.String()),
		zap.Int("operations", registered))
	return nil
}

// Resolve implements dispatch.Resolver.
func (r *Registry) Resolve(e catalog.Entry) (dispatch.Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.targets[e.Name]
	return t, ok
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Adapt wraps a typed Go function as a target for e. Each call decodes
// the meaningful argument slots, converts them to the function's
// parameter types and widens the result.
func Adapt(e catalog.Entry, fn any) (dispatch.Target, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			Op(e.Name).
			Detail("handler must be a function, got %T", fn).
			Build()
	}
	ft := rv.Type()
	sig := e.Signature()

	if ft.IsVariadic() || ft.NumIn() != sig.Arity() {
		return nil, errors.Arity(errors.PhaseResolve, e.Name, sig.Arity(), ft.NumIn())
	}
	ins := make([]reflect.Type, ft.NumIn())
	for i, k := range sig.Params {
		in := ft.In(i)
		if !compatible(in, k) {
			return nil, errors.TypeMismatch(errors.PhaseResolve,
				[]string{e.Name, e.Params[i].Name}, in.String(), k.String())
		}
		ins[i] = in
	}

	switch {
	case sig.Void() && ft.NumOut() != 0:
		return nil, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			Op(e.Name).
			Detail("void operation bound to function returning %d values", ft.NumOut()).
			Build()
	case !sig.Void() && ft.NumOut() != 1:
		return nil, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			Op(e.Name).
			Detail("operation returns %s, function returns %d values", sig.Result, ft.NumOut()).
			Build()
	case !sig.Void() && !compatible(ft.Out(0), sig.Result):
		return nil, errors.TypeMismatch(errors.PhaseResolve,
			[]string{e.Name, "result"}, ft.Out(0).String(), sig.Result.String())
	}

	params := sig.Params
	result := sig.Result
	return func(a abi.Args) uint64 {
		args := make([]reflect.Value, len(params))
		for i, k := range params {
			args[i] = reflect.ValueOf(abi.Decode(k, a[i])).Convert(ins[i])
		}
		out := rv.Call(args)
		if result == abi.Void {
			return 0
		}
		return widenResult(result, out[0].Interface())
	}, nil
}

// widenResult panics when v cannot be widened as k; the router reports the
// panic as a target failure.
func widenResult(k abi.Kind, v any) uint64 {
	w, err := abi.Widen(k, v)
	if err != nil {
		panic(err)
	}
	return w
}

// compatible reports whether values of Go type t carry kind k.
func compatible(t reflect.Type, k abi.Kind) bool {
	want := abi.GoType(k)
	if want == nil {
		return false
	}
	return t.Kind() == want.Kind()
}

// Chain resolves through each resolver in turn; the first hit wins.
func Chain(resolvers ...dispatch.Resolver) dispatch.Resolver {
	return dispatch.ResolverFunc(func(e catalog.Entry) (dispatch.Target, bool) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if t, ok := r.Resolve(e); ok && t != nil {
				return t, true
			}
		}
		return nil, false
	})
}

// Only restricts r to the named operations.
func Only(r dispatch.Resolver, names ...string) dispatch.Resolver {
	allow := make(map[string]bool, len(names))
	for _, n := range names {
		allow[n] = true
	}
	return dispatch.ResolverFunc(func(e catalog.Entry) (dispatch.Target, bool) {
		if !allow[e.Name] {
			return nil, false
		}
		return r.Resolve(e)
	})
}

// Require checks that r supplies every named operation. Missing names are
// logged and returned as one missing-symbol error; unknown names are an
// input error. A namespace name ("gles2", "egl") requires all of it.
func Require(cat *catalog.Catalog, r dispatch.Resolver, names ...string) error {
	var missing []string
	for _, name := range names {
		if ns, ok := catalog.ParseNamespace(name); ok {
			for _, e := range cat.Entries(ns) {
				if t, ok := r.Resolve(e); !ok || t == nil {
					missing = append(missing, e.Name)
				}
			}
			continue
		}
		op, ok := cat.Lookup(strings.TrimSpace(name))
		if !ok {
			return errors.NotFound(errors.PhaseResolve, "operation", name)
		}
		if t, ok := r.Resolve(cat.Entry(op)); !ok || t == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	err := errors.MissingSymbol(missing)
	Logger().Error("missing required symbols", zap.Strings("names", missing))
	return err
}
