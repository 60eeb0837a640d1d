package soft

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/resource"
)

type buffer struct {
	size  int64
	usage uint32
}

type texture struct {
	target uint32
}

type framebuffer struct {
	attachments int
}

type shader struct {
	typ      uint32
	source   string
	compiled bool
	log      string
	deleted  bool
	attached int
}

type program struct {
	shaders   []resource.Name
	linked    bool
	validated bool
	log       string
	deleted   bool
}

// GLES2 is a software GLES context. It tracks the state GLES exposes
// through its query calls and object model; it draws nothing.
//
// Methods are named after the operations they implement without the
// "gl" prefix and are registered with resolve.Registry.RegisterHost.
type GLES2 struct {
	mu  sync.Mutex
	mem Memory
	log *zap.Logger

	err          uint32
	caps         map[uint32]bool
	clearColor   [4]float32
	clearDepth   float32
	clearStencil int32
	viewport     [4]int32
	scissor      [4]int32
	activeUnit   uint32

	buffers       *resource.Table
	textures      *resource.Table
	framebuffers  *resource.Table
	renderbuffers *resource.Table
	objects       *resource.Table // shaders and programs share a namespace

	bufferBinding  map[uint32]resource.Name
	textureBinding map[[2]uint32]resource.Name
	framebufferRW  [2]resource.Name // draw, read
	renderbufferB  resource.Name
	program        resource.Name

	clears int
	draws  int
}

// NewGLES2 returns a context in its initial state. mem may be nil, in
// which case calls that read or write calling-domain memory fail with
// GL_INVALID_VALUE.
func NewGLES2(mem Memory) *GLES2 {
	gl := &GLES2{
		mem:            mem,
		log:            Logger(),
		clearDepth:     1,
		activeUnit:     glTexture0,
		buffers:        resource.NewTable(),
		textures:       resource.NewTable(),
		framebuffers:   resource.NewTable(),
		renderbuffers:  resource.NewTable(),
		objects:        resource.NewTable(),
		bufferBinding:  make(map[uint32]resource.Name),
		textureBinding: make(map[[2]uint32]resource.Name),
		caps: map[uint32]bool{
			glBlend: false, glCullFace: false, glDepthTest: false, glDither: true,
			glPolygonOffsetFill: false, glSampleAlphaToCoverage: false,
			glSampleCoverage: false, glScissorTest: false, glStencilTest: false,
			glRasterizerDiscard: false, glPrimitiveRestartFixedIdx: false,
		},
	}
	obs := resource.ObserverFunc(gl.onObject)
	for _, t := range []*resource.Table{gl.buffers, gl.textures, gl.framebuffers, gl.renderbuffers, gl.objects} {
		t.Subscribe(obs)
	}
	return gl
}

func (gl *GLES2) onObject(e resource.Event) {
	gl.log.Debug("gl object",
		zap.Stringer("kind", e.Kind),
		zap.Uint32("name", uint32(e.Name)),
		zap.Stringer("event", e.Type))
}

// Namespace implements resolve.Host.
func (gl *GLES2) Namespace() catalog.Namespace { return catalog.GLES2 }

// Stats reports how many clears and draws were issued.
func (gl *GLES2) Stats() (clears, draws int) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	return gl.clears, gl.draws
}

// setError records the first error since the last glGetError.
func (gl *GLES2) setError(code uint32) {
	if gl.err == glNoError {
		gl.err = code
	}
}

func (gl *GLES2) GetError() uint32 {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	code := gl.err
	gl.err = glNoError
	return code
}

func (gl *GLES2) Enable(capability uint32)  { gl.setCap(capability, true) }
func (gl *GLES2) Disable(capability uint32) { gl.setCap(capability, false) }

func (gl *GLES2) setCap(capability uint32, on bool) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if _, ok := gl.caps[capability]; !ok {
		gl.setError(glInvalidEnum)
		return
	}
	gl.caps[capability] = on
}

func (gl *GLES2) IsEnabled(capability uint32) bool {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	on, ok := gl.caps[capability]
	if !ok {
		gl.setError(glInvalidEnum)
	}
	return on
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (gl *GLES2) ClearColor(red, green, blue, alpha float32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	gl.clearColor = [4]float32{clamp01(red), clamp01(green), clamp01(blue), clamp01(alpha)}
}

func (gl *GLES2) ClearDepthf(d float32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	gl.clearDepth = clamp01(d)
}

func (gl *GLES2) ClearStencil(s int32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	gl.clearStencil = s
}

func (gl *GLES2) Clear(mask uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if mask&^(glColorBufferBit|glDepthBufferBit|glStencilBufferBit) != 0 {
		gl.setError(glInvalidValue)
		return
	}
	gl.clears++
}

func (gl *GLES2) Viewport(x, y, width, height int32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if width < 0 || height < 0 {
		gl.setError(glInvalidValue)
		return
	}
	gl.viewport = [4]int32{x, y, width, height}
}

func (gl *GLES2) Scissor(x, y, width, height int32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if width < 0 || height < 0 {
		gl.setError(glInvalidValue)
		return
	}
	gl.scissor = [4]int32{x, y, width, height}
}

func (gl *GLES2) ActiveTexture(unit uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if unit < glTexture0 || unit >= glTexture0+MaxTextureUnits {
		gl.setError(glInvalidEnum)
		return
	}
	gl.activeUnit = unit
}

func (gl *GLES2) DrawArrays(mode uint32, first, count int32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if mode > glTriangleFan {
		gl.setError(glInvalidEnum)
		return
	}
	if first < 0 || count < 0 {
		gl.setError(glInvalidValue)
		return
	}
	gl.draws++
}

func (gl *GLES2) Flush()  {}
func (gl *GLES2) Finish() {}

// gen reserves n names in t and writes them to p.
func (gl *GLES2) gen(t *resource.Table, kind resource.Kind, n int32, p uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if n < 0 {
		gl.setError(glInvalidValue)
		return
	}
	if n > 0 {
		if _, _, ok := span(gl.mem, p, int(n)); !ok {
			gl.setError(glInvalidValue)
			return
		}
	}
	names := t.Reserve(kind, int(n))
	if len(names) != int(n) {
		gl.setError(glOutOfMemory)
		return
	}
	out := make([]uint32, len(names))
	for i, name := range names {
		out[i] = uint32(name)
	}
	if n > 0 && !writeU32s(gl.mem, p, out...) {
		for _, name := range names {
			t.Remove(name)
		}
		gl.setError(glInvalidValue)
	}
}

// del frees the n names at p. Zero and unused names are ignored; unbind
// clears any binding of a deleted name.
func (gl *GLES2) del(t *resource.Table, n int32, p uintptr, unbind func(resource.Name)) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if n < 0 {
		gl.setError(glInvalidValue)
		return
	}
	names, ok := readU32s(gl.mem, p, int(n))
	if !ok {
		gl.setError(glInvalidValue)
		return
	}
	for _, raw := range names {
		name := resource.Name(raw)
		if _, ok := t.Remove(name); ok {
			unbind(name)
		}
	}
}

func (gl *GLES2) GenBuffers(n int32, buffers uintptr) {
	gl.gen(gl.buffers, resource.KindBuffer, n, buffers)
}

func (gl *GLES2) DeleteBuffers(n int32, buffers uintptr) {
	gl.del(gl.buffers, n, buffers, func(name resource.Name) {
		for target, bound := range gl.bufferBinding {
			if bound == name {
				delete(gl.bufferBinding, target)
			}
		}
	})
}

func validBufferTarget(target uint32) bool {
	switch target {
	case glArrayBuffer, glElementArrayBuffer, glCopyReadBuffer, glCopyWriteBuffer,
		glPixelPackBuffer, glPixelUnpackBuffer, glTransformFeedbackBuffer, glUniformBuffer:
		return true
	}
	return false
}

func (gl *GLES2) BindBuffer(target, name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if !validBufferTarget(target) {
		gl.setError(glInvalidEnum)
		return
	}
	if name == 0 {
		delete(gl.bufferBinding, target)
		return
	}
	if _, ok := gl.buffers.Bind(resource.Name(name), resource.KindBuffer, func() any { return &buffer{usage: 0x88E4} }); !ok {
		gl.setError(glInvalidOperation)
		return
	}
	gl.bufferBinding[target] = resource.Name(name)
}

func (gl *GLES2) boundBuffer(target uint32) (*buffer, bool) {
	if !validBufferTarget(target) {
		gl.setError(glInvalidEnum)
		return nil, false
	}
	name, ok := gl.bufferBinding[target]
	if !ok {
		gl.setError(glInvalidOperation)
		return nil, false
	}
	v, _ := gl.buffers.Get(name)
	return v.(*buffer), true
}

func (gl *GLES2) BufferData(target uint32, size int64, data uintptr, usage uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if size < 0 {
		gl.setError(glInvalidValue)
		return
	}
	if usage < glStreamDraw || usage > glDynamicCopy {
		gl.setError(glInvalidEnum)
		return
	}
	b, ok := gl.boundBuffer(target)
	if !ok {
		return
	}
	b.size, b.usage = size, usage
}

func (gl *GLES2) GetBufferParameteriv(target, pname uint32, params uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	b, ok := gl.boundBuffer(target)
	if !ok {
		return
	}
	var v int32
	switch pname {
	case glBufferSize:
		v = int32(b.size)
	case glBufferUsage:
		v = int32(b.usage)
	default:
		gl.setError(glInvalidEnum)
		return
	}
	if !writeI32s(gl.mem, params, v) {
		gl.setError(glInvalidValue)
	}
}

func (gl *GLES2) IsBuffer(name uint32) bool {
	return gl.buffers.Is(resource.Name(name), resource.KindBuffer)
}

func (gl *GLES2) GenTextures(n int32, textures uintptr) {
	gl.gen(gl.textures, resource.KindTexture, n, textures)
}

func (gl *GLES2) DeleteTextures(n int32, textures uintptr) {
	gl.del(gl.textures, n, textures, func(name resource.Name) {
		for key, bound := range gl.textureBinding {
			if bound == name {
				delete(gl.textureBinding, key)
			}
		}
	})
}

func (gl *GLES2) BindTexture(target, name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	switch target {
	case glTexture2D, glTexture3D, glTextureCubeMap, glTexture2DArray:
	default:
		gl.setError(glInvalidEnum)
		return
	}
	key := [2]uint32{gl.activeUnit, target}
	if name == 0 {
		delete(gl.textureBinding, key)
		return
	}
	v, ok := gl.textures.Bind(resource.Name(name), resource.KindTexture, func() any { return &texture{target: target} })
	if !ok || v.(*texture).target != target {
		gl.setError(glInvalidOperation)
		return
	}
	gl.textureBinding[key] = resource.Name(name)
}

func (gl *GLES2) IsTexture(name uint32) bool {
	return gl.textures.Is(resource.Name(name), resource.KindTexture)
}

func (gl *GLES2) GenFramebuffers(n int32, framebuffers uintptr) {
	gl.gen(gl.framebuffers, resource.KindFramebuffer, n, framebuffers)
}

func (gl *GLES2) DeleteFramebuffers(n int32, framebuffers uintptr) {
	gl.del(gl.framebuffers, n, framebuffers, func(name resource.Name) {
		for i, bound := range gl.framebufferRW {
			if bound == name {
				gl.framebufferRW[i] = 0
			}
		}
	})
}

func (gl *GLES2) BindFramebuffer(target, name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	var slots []int
	switch target {
	case glFramebuffer:
		slots = []int{0, 1}
	case glDrawFramebuffer:
		slots = []int{0}
	case glReadFramebuffer:
		slots = []int{1}
	default:
		gl.setError(glInvalidEnum)
		return
	}
	if name != 0 {
		if _, ok := gl.framebuffers.Bind(resource.Name(name), resource.KindFramebuffer, func() any { return &framebuffer{} }); !ok {
			gl.setError(glInvalidOperation)
			return
		}
	}
	for _, s := range slots {
		gl.framebufferRW[s] = resource.Name(name)
	}
}

func (gl *GLES2) CheckFramebufferStatus(target uint32) uint32 {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	var name resource.Name
	switch target {
	case glFramebuffer, glDrawFramebuffer:
		name = gl.framebufferRW[0]
	case glReadFramebuffer:
		name = gl.framebufferRW[1]
	default:
		gl.setError(glInvalidEnum)
		return 0
	}
	if name == 0 {
		return glFramebufferComplete
	}
	v, _ := gl.framebuffers.Get(name)
	if v.(*framebuffer).attachments == 0 {
		return glFramebufferIncompleteMissingAttmt
	}
	return glFramebufferComplete
}

func (gl *GLES2) IsFramebuffer(name uint32) bool {
	return gl.framebuffers.Is(resource.Name(name), resource.KindFramebuffer)
}

func (gl *GLES2) GenRenderbuffers(n int32, renderbuffers uintptr) {
	gl.gen(gl.renderbuffers, resource.KindRenderbuffer, n, renderbuffers)
}

func (gl *GLES2) DeleteRenderbuffers(n int32, renderbuffers uintptr) {
	gl.del(gl.renderbuffers, n, renderbuffers, func(name resource.Name) {
		if gl.renderbufferB == name {
			gl.renderbufferB = 0
		}
	})
}

func (gl *GLES2) BindRenderbuffer(target, name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if target != glRenderbuffer {
		gl.setError(glInvalidEnum)
		return
	}
	if name != 0 {
		if _, ok := gl.renderbuffers.Bind(resource.Name(name), resource.KindRenderbuffer, func() any { return struct{}{} }); !ok {
			gl.setError(glInvalidOperation)
			return
		}
	}
	gl.renderbufferB = resource.Name(name)
}

func (gl *GLES2) IsRenderbuffer(name uint32) bool {
	return gl.renderbuffers.Is(resource.Name(name), resource.KindRenderbuffer)
}

func (gl *GLES2) FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer uint32) {
	gl.attach(target, renderbuffer, gl.renderbuffers, resource.KindRenderbuffer)
}

func (gl *GLES2) FramebufferTexture2D(target, attachment, textarget, tex uint32, level int32) {
	gl.attach(target, tex, gl.textures, resource.KindTexture)
}

func (gl *GLES2) attach(target, name uint32, t *resource.Table, kind resource.Kind) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	var fb resource.Name
	switch target {
	case glFramebuffer, glDrawFramebuffer:
		fb = gl.framebufferRW[0]
	case glReadFramebuffer:
		fb = gl.framebufferRW[1]
	default:
		gl.setError(glInvalidEnum)
		return
	}
	if fb == 0 || (name != 0 && !t.Is(resource.Name(name), kind)) {
		gl.setError(glInvalidOperation)
		return
	}
	v, _ := gl.framebuffers.Get(fb)
	if name != 0 {
		v.(*framebuffer).attachments++
	}
}

// shaderOrError returns the shader named name, setting GL_INVALID_VALUE
// for an unknown name and GL_INVALID_OPERATION for a program.
func (gl *GLES2) shaderOrError(name uint32) (*shader, bool) {
	v, ok := gl.objects.Get(resource.Name(name))
	if !ok {
		gl.setError(glInvalidValue)
		return nil, false
	}
	s, ok := v.(*shader)
	if !ok {
		gl.setError(glInvalidOperation)
		return nil, false
	}
	return s, true
}

func (gl *GLES2) programOrError(name uint32) (*program, bool) {
	v, ok := gl.objects.Get(resource.Name(name))
	if !ok {
		gl.setError(glInvalidValue)
		return nil, false
	}
	p, ok := v.(*program)
	if !ok {
		gl.setError(glInvalidOperation)
		return nil, false
	}
	return p, true
}

func (gl *GLES2) CreateShader(typ uint32) uint32 {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if typ != glVertexShader && typ != glFragmentShader {
		gl.setError(glInvalidEnum)
		return 0
	}
	return uint32(gl.objects.Insert(resource.KindShader, &shader{typ: typ}))
}

// ShaderSource reads count string pointers at strs, each four bytes, and
// their lengths at length. A null length array or a negative entry means
// the string is NUL-terminated.
func (gl *GLES2) ShaderSource(name uint32, count int32, strs uintptr, length uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if count < 0 {
		gl.setError(glInvalidValue)
		return
	}
	s, ok := gl.shaderOrError(name)
	if !ok {
		return
	}
	ptrs, ok := readU32s(gl.mem, strs, int(count))
	if !ok {
		gl.setError(glInvalidValue)
		return
	}
	lens := make([]uint32, count)
	if length != 0 {
		if lens, ok = readU32s(gl.mem, length, int(count)); !ok {
			gl.setError(glInvalidValue)
			return
		}
	} else {
		for i := range lens {
			lens[i] = ^uint32(0)
		}
	}
	var b strings.Builder
	for i, p := range ptrs {
		part, ok := readString(gl.mem, uintptr(p), int32(lens[i]))
		if !ok {
			gl.setError(glInvalidValue)
			return
		}
		b.WriteString(part)
	}
	s.source = b.String()
	s.compiled = false
}

// CompileShader accepts any source that declares a main function.
func (gl *GLES2) CompileShader(name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	s, ok := gl.shaderOrError(name)
	if !ok {
		return
	}
	s.compiled = strings.Contains(s.source, "void main")
	s.log = ""
	if !s.compiled {
		s.log = "ERROR: 0:1: no main function\n"
	}
}

func (gl *GLES2) GetShaderiv(name, pname uint32, params uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	s, ok := gl.shaderOrError(name)
	if !ok {
		return
	}
	var v int32
	switch pname {
	case glShaderType:
		v = int32(s.typ)
	case glDeleteStatus:
		v = boolInt(s.deleted)
	case glCompileStatus:
		v = boolInt(s.compiled)
	case glInfoLogLength:
		v = stringLen(s.log)
	case glShaderSourceLen:
		v = stringLen(s.source)
	default:
		gl.setError(glInvalidEnum)
		return
	}
	if !writeI32s(gl.mem, params, v) {
		gl.setError(glInvalidValue)
	}
}

func (gl *GLES2) DeleteShader(name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if name == 0 {
		return
	}
	s, ok := gl.shaderOrError(name)
	if !ok {
		return
	}
	s.deleted = true
	if s.attached == 0 {
		gl.objects.Remove(resource.Name(name))
	}
}

func (gl *GLES2) IsShader(name uint32) bool {
	_, ok := gl.objects.GetTyped(resource.Name(name), resource.KindShader)
	return ok
}

func (gl *GLES2) CreateProgram() uint32 {
	return uint32(gl.objects.Insert(resource.KindProgram, &program{}))
}

func (gl *GLES2) AttachShader(prog, sh uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	p, ok := gl.programOrError(prog)
	if !ok {
		return
	}
	s, ok := gl.shaderOrError(sh)
	if !ok {
		return
	}
	for _, n := range p.shaders {
		if n == resource.Name(sh) {
			gl.setError(glInvalidOperation)
			return
		}
		if v, _ := gl.objects.Get(n); v.(*shader).typ == s.typ {
			gl.setError(glInvalidOperation)
			return
		}
	}
	p.shaders = append(p.shaders, resource.Name(sh))
	s.attached++
}

func (gl *GLES2) DetachShader(prog, sh uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	p, ok := gl.programOrError(prog)
	if !ok {
		return
	}
	if _, ok := gl.shaderOrError(sh); !ok {
		return
	}
	for i, n := range p.shaders {
		if n == resource.Name(sh) {
			p.shaders = append(p.shaders[:i], p.shaders[i+1:]...)
			gl.release(n)
			return
		}
	}
	gl.setError(glInvalidOperation)
}

// release drops one attachment of a shader, deleting it when it was
// flagged for deletion and is now unattached.
func (gl *GLES2) release(name resource.Name) {
	v, ok := gl.objects.Get(name)
	if !ok {
		return
	}
	s := v.(*shader)
	s.attached--
	if s.deleted && s.attached == 0 {
		gl.objects.Remove(name)
	}
}

// LinkProgram succeeds when a compiled vertex and fragment shader are
// attached.
func (gl *GLES2) LinkProgram(name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	p, ok := gl.programOrError(name)
	if !ok {
		return
	}
	var vs, fs bool
	for _, n := range p.shaders {
		v, _ := gl.objects.Get(n)
		s := v.(*shader)
		if !s.compiled {
			continue
		}
		vs = vs || s.typ == glVertexShader
		fs = fs || s.typ == glFragmentShader
	}
	p.linked = vs && fs
	p.log = ""
	if !p.linked {
		p.log = "error: program needs a compiled vertex and fragment shader\n"
	}
}

func (gl *GLES2) ValidateProgram(name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if p, ok := gl.programOrError(name); ok {
		p.validated = p.linked
	}
}

func (gl *GLES2) UseProgram(name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if name == 0 {
		gl.unuse()
		return
	}
	p, ok := gl.programOrError(name)
	if !ok {
		return
	}
	if !p.linked {
		gl.setError(glInvalidOperation)
		return
	}
	gl.unuse()
	gl.program = resource.Name(name)
}

// unuse clears the current program, deleting it if it was flagged.
func (gl *GLES2) unuse() {
	prev := gl.program
	gl.program = 0
	if prev == 0 {
		return
	}
	if v, ok := gl.objects.Get(prev); ok && v.(*program).deleted {
		gl.deleteProgram(prev, v.(*program))
	}
}

func (gl *GLES2) deleteProgram(name resource.Name, p *program) {
	for _, n := range p.shaders {
		gl.release(n)
	}
	p.shaders = nil
	gl.objects.Remove(name)
}

func (gl *GLES2) DeleteProgram(name uint32) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	if name == 0 {
		return
	}
	p, ok := gl.programOrError(name)
	if !ok {
		return
	}
	p.deleted = true
	if gl.program != resource.Name(name) {
		gl.deleteProgram(resource.Name(name), p)
	}
}

func (gl *GLES2) IsProgram(name uint32) bool {
	_, ok := gl.objects.GetTyped(resource.Name(name), resource.KindProgram)
	return ok
}

func (gl *GLES2) GetProgramiv(name, pname uint32, params uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	p, ok := gl.programOrError(name)
	if !ok {
		return
	}
	var v int32
	switch pname {
	case glDeleteStatus:
		v = boolInt(p.deleted)
	case glLinkStatus:
		v = boolInt(p.linked)
	case glValidateStatus:
		v = boolInt(p.validated)
	case glAttachedShaders:
		v = int32(len(p.shaders))
	case glInfoLogLength:
		v = stringLen(p.log)
	default:
		gl.setError(glInvalidEnum)
		return
	}
	if !writeI32s(gl.mem, params, v) {
		gl.setError(glInvalidValue)
	}
}

func (gl *GLES2) GetIntegerv(pname uint32, data uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	var vals []int32
	switch pname {
	case glViewport:
		vals = gl.viewport[:]
	case glScissorBox:
		vals = gl.scissor[:]
	case glMaxTextureSize:
		vals = []int32{MaxTextureSize}
	case glMaxVertexAttribs:
		vals = []int32{MaxVertexAttribs}
	case glMaxCombinedTextureUnits:
		vals = []int32{MaxTextureUnits}
	case glActiveTexture:
		vals = []int32{int32(gl.activeUnit)}
	case glCurrentProgram:
		vals = []int32{int32(gl.program)}
	case glArrayBufferBinding:
		vals = []int32{int32(gl.bufferBinding[glArrayBuffer])}
	case glElementArrayBufferBinding:
		vals = []int32{int32(gl.bufferBinding[glElementArrayBuffer])}
	case glTextureBinding2D:
		vals = []int32{int32(gl.textureBinding[[2]uint32{gl.activeUnit, glTexture2D}])}
	case glFramebufferBinding:
		vals = []int32{int32(gl.framebufferRW[0])}
	case glStencilClearValue:
		vals = []int32{gl.clearStencil}
	default:
		on, ok := gl.caps[pname]
		if !ok {
			gl.setError(glInvalidEnum)
			return
		}
		vals = []int32{boolInt(on)}
	}
	if !writeI32s(gl.mem, data, vals...) {
		gl.setError(glInvalidValue)
	}
}

func (gl *GLES2) GetFloatv(pname uint32, data uintptr) {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	var vals []float32
	switch pname {
	case glColorClearValue:
		vals = gl.clearColor[:]
	case glDepthClearValue:
		vals = []float32{gl.clearDepth}
	case glViewport:
		for _, v := range gl.viewport {
			vals = append(vals, float32(v))
		}
	default:
		gl.setError(glInvalidEnum)
		return
	}
	if !writeF32s(gl.mem, data, vals...) {
		gl.setError(glInvalidValue)
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// stringLen is the GL length of a string including its terminator, or
// zero for an empty string.
func stringLen(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s) + 1)
}
