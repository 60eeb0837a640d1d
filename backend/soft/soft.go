package soft

import (
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
	"github.com/wippyai/glforward/resolve"
)

// Backend pairs a GLES context with the EGL that owns it.
type Backend struct {
	GL  *GLES2
	EGL *EGL
	reg *resolve.Registry
}

// New returns a backend over mem with both hosts registered against cat.
func New(cat *catalog.Catalog, mem Memory) (*Backend, error) {
	b := &Backend{
		GL:  NewGLES2(mem),
		EGL: NewEGL(mem),
		reg: resolve.NewRegistry(cat),
	}
	if err := b.reg.RegisterHost(b.GL); err != nil {
		return nil, err
	}
	if err := b.reg.RegisterHost(b.EGL); err != nil {
		return nil, err
	}
	return b, nil
}

// Resolve implements dispatch.Resolver.
func (b *Backend) Resolve(e catalog.Entry) (dispatch.Target, bool) {
	return b.reg.Resolve(e)
}

// Names returns the implemented operation names, sorted.
func (b *Backend) Names() []string {
	return b.reg.Names()
}

var _ dispatch.Resolver = (*Backend)(nil)
