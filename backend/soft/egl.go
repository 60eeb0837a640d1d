package soft

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/resource"
)

type surfaceState struct {
	width, height int32
	pbuffer       bool
	swaps         int
	interval      int32
}

type contextState struct {
	version int32
}

type fence struct {
	signaled bool
}

// EGL is a software EGL with one display and one config. Every call sets
// the thread error to EGL_SUCCESS or to the reason it failed; the
// backend models a single client thread.
type EGL struct {
	mu  sync.Mutex
	mem Memory
	log *zap.Logger

	err         int32
	initialized bool
	api         uint32
	handles     *resource.Table
	draw, read  resource.Name
	ctx         resource.Name
	start       time.Time
}

// NewEGL returns an uninitialized EGL. mem is used for out-parameters
// and attribute lists; it may be nil.
func NewEGL(mem Memory) *EGL {
	e := &EGL{
		mem:     mem,
		log:     Logger(),
		err:     eglSuccess,
		api:     eglOpenGLESAPI,
		handles: resource.NewTable(),
		start:   time.Now(),
	}
	e.handles.Subscribe(resource.ObserverFunc(func(ev resource.Event) {
		e.log.Debug("egl object",
			zap.Stringer("kind", ev.Kind),
			zap.Uint32("handle", uint32(ev.Name)),
			zap.Stringer("event", ev.Type))
	}))
	return e
}

// Namespace implements resolve.Host.
func (e *EGL) Namespace() catalog.Namespace { return catalog.EGL }

func (e *EGL) fail(code int32) uint32 {
	e.err = code
	return 0
}

func (e *EGL) ok() uint32 {
	e.err = eglSuccess
	return 1
}

// display validates dpy and, when live is set, initialization.
func (e *EGL) display(dpy uintptr, live bool) bool {
	if dpy != DisplayHandle {
		e.err = eglBadDisplay
		return false
	}
	if live && !e.initialized {
		e.err = eglNotInitialized
		return false
	}
	return true
}

func (e *EGL) GetError() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	code := e.err
	e.err = eglSuccess
	return code
}

// GetDisplay returns the single display for EGL_DEFAULT_DISPLAY and
// EGL_NO_DISPLAY for anything else.
func (e *EGL) GetDisplay(displayID uintptr) uintptr {
	if displayID != 0 {
		return 0
	}
	return DisplayHandle
}

func (e *EGL) Initialize(dpy, major, minor uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, false) {
		return 0
	}
	if major != 0 && !writeI32s(e.mem, major, 1) {
		return e.fail(eglBadParameter)
	}
	if minor != 0 && !writeI32s(e.mem, minor, 5) {
		return e.fail(eglBadParameter)
	}
	e.initialized = true
	return e.ok()
}

// Terminate releases every surface and context. Current bindings are
// dropped with them.
func (e *EGL) Terminate(dpy uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, false) {
		return 0
	}
	e.handles.Clear()
	e.draw, e.read, e.ctx = 0, 0, 0
	e.initialized = false
	return e.ok()
}

func (e *EGL) writeConfigs(configs uintptr, size int32, numConfig uintptr) uint32 {
	if numConfig == 0 {
		return e.fail(eglBadParameter)
	}
	n := int32(1)
	if configs != 0 {
		if size < 1 {
			n = 0
		} else if !writeU32s(e.mem, configs, uint32(ConfigHandle)) {
			return e.fail(eglBadParameter)
		}
	}
	if !writeI32s(e.mem, numConfig, n) {
		return e.fail(eglBadParameter)
	}
	return e.ok()
}

func (e *EGL) GetConfigs(dpy, configs uintptr, configSize int32, numConfig uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	return e.writeConfigs(configs, configSize, numConfig)
}

// ChooseConfig matches every attribute list to the single config.
func (e *EGL) ChooseConfig(dpy, attribList, configs uintptr, configSize int32, numConfig uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if _, ok := readAttribs(e.mem, attribList); !ok {
		return e.fail(eglBadAttribute)
	}
	return e.writeConfigs(configs, configSize, numConfig)
}

func (e *EGL) GetConfigAttrib(dpy, config uintptr, attribute int32, value uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if config != ConfigHandle {
		return e.fail(eglBadConfig)
	}
	var v int32
	switch attribute {
	case eglRedSize, eglGreenSize, eglBlueSize, eglAlphaSize, eglStencilSize:
		v = 8
	case eglDepthSize:
		v = 24
	case eglConfigID:
		v = int32(ConfigHandle)
	default:
		return e.fail(eglBadAttribute)
	}
	if !writeI32s(e.mem, value, v) {
		return e.fail(eglBadParameter)
	}
	return e.ok()
}

func (e *EGL) createSurface(dpy, config, attribList uintptr, pbuffer bool) uintptr {
	if !e.display(dpy, true) {
		return 0
	}
	if config != ConfigHandle {
		e.fail(eglBadConfig)
		return 0
	}
	attrs, ok := readAttribs(e.mem, attribList)
	if !ok {
		e.fail(eglBadAttribute)
		return 0
	}
	s := &surfaceState{pbuffer: pbuffer, interval: 1}
	if pbuffer {
		s.width, s.height = attrs[eglWidth], attrs[eglHeight]
		if s.width < 0 || s.height < 0 {
			e.fail(eglBadParameter)
			return 0
		}
	}
	name := e.handles.Insert(resource.KindSurface, s)
	if name == 0 {
		e.fail(eglBadAlloc)
		return 0
	}
	e.ok()
	return uintptr(name)
}

func (e *EGL) CreatePbufferSurface(dpy, config, attribList uintptr) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createSurface(dpy, config, attribList, true)
}

// CreateWindowSurface accepts any native window. Window surfaces report
// a zero size.
func (e *EGL) CreateWindowSurface(dpy, config, win, attribList uintptr) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createSurface(dpy, config, attribList, false)
}

func (e *EGL) surface(h uintptr) (*surfaceState, bool) {
	v, ok := e.handles.GetTyped(resource.Name(h), resource.KindSurface)
	if !ok {
		e.fail(eglBadSurface)
		return nil, false
	}
	return v.(*surfaceState), true
}

func (e *EGL) DestroySurface(dpy, surf uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if _, ok := e.surface(surf); !ok {
		return 0
	}
	e.handles.Remove(resource.Name(surf))
	if e.draw == resource.Name(surf) {
		e.draw = 0
	}
	if e.read == resource.Name(surf) {
		e.read = 0
	}
	return e.ok()
}

func (e *EGL) QuerySurface(dpy, surf uintptr, attribute int32, value uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	s, ok := e.surface(surf)
	if !ok {
		return 0
	}
	var v int32
	switch attribute {
	case eglWidth:
		v = s.width
	case eglHeight:
		v = s.height
	case eglConfigID:
		v = int32(ConfigHandle)
	case eglRenderBuffer:
		v = eglBackBuffer
	default:
		return e.fail(eglBadAttribute)
	}
	if !writeI32s(e.mem, value, v) {
		return e.fail(eglBadParameter)
	}
	return e.ok()
}

func (e *EGL) SwapBuffers(dpy, surf uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	s, ok := e.surface(surf)
	if !ok {
		return 0
	}
	if e.ctx == 0 || e.draw != resource.Name(surf) {
		return e.fail(eglBadSurface)
	}
	s.swaps++
	return e.ok()
}

func (e *EGL) SwapInterval(dpy uintptr, interval int32) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if e.draw == 0 {
		return e.fail(eglBadSurface)
	}
	v, _ := e.handles.Get(e.draw)
	v.(*surfaceState).interval = max(interval, 0)
	return e.ok()
}

func (e *EGL) BindAPI(api uint32) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if api != eglOpenGLESAPI {
		return e.fail(eglBadParameter)
	}
	e.api = api
	return e.ok()
}

func (e *EGL) QueryAPI() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = eglSuccess
	return e.api
}

func (e *EGL) CreateContext(dpy, config, shareContext, attribList uintptr) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if config != ConfigHandle {
		e.fail(eglBadConfig)
		return 0
	}
	if shareContext != 0 {
		if _, ok := e.handles.GetTyped(resource.Name(shareContext), resource.KindContext); !ok {
			e.fail(eglBadContext)
			return 0
		}
	}
	attrs, ok := readAttribs(e.mem, attribList)
	if !ok {
		e.fail(eglBadAttribute)
		return 0
	}
	version, ok := attrs[eglContextClientVersion]
	if !ok {
		version = 1
	}
	if version < 1 || version > 3 {
		e.fail(eglBadMatch)
		return 0
	}
	name := e.handles.Insert(resource.KindContext, &contextState{version: version})
	if name == 0 {
		e.fail(eglBadAlloc)
		return 0
	}
	e.ok()
	return uintptr(name)
}

func (e *EGL) context(h uintptr) (*contextState, bool) {
	v, ok := e.handles.GetTyped(resource.Name(h), resource.KindContext)
	if !ok {
		e.fail(eglBadContext)
		return nil, false
	}
	return v.(*contextState), true
}

func (e *EGL) DestroyContext(dpy, ctx uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if _, ok := e.context(ctx); !ok {
		return 0
	}
	e.handles.Remove(resource.Name(ctx))
	if e.ctx == resource.Name(ctx) {
		e.ctx, e.draw, e.read = 0, 0, 0
	}
	return e.ok()
}

func (e *EGL) QueryContext(dpy, ctx uintptr, attribute int32, value uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	c, ok := e.context(ctx)
	if !ok {
		return 0
	}
	var v int32
	switch attribute {
	case eglConfigID:
		v = int32(ConfigHandle)
	case eglContextClientType:
		v = eglOpenGLESAPI
	case eglContextClientVersion:
		v = c.version
	case eglRenderBuffer:
		v = eglBackBuffer
	default:
		return e.fail(eglBadAttribute)
	}
	if !writeI32s(e.mem, value, v) {
		return e.fail(eglBadParameter)
	}
	return e.ok()
}

// MakeCurrent binds ctx with its draw and read surfaces. Passing no
// context and no surfaces releases the current binding.
func (e *EGL) MakeCurrent(dpy, draw, read, ctx uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if ctx == 0 {
		if draw != 0 || read != 0 {
			return e.fail(eglBadMatch)
		}
		e.ctx, e.draw, e.read = 0, 0, 0
		return e.ok()
	}
	if _, ok := e.context(ctx); !ok {
		return 0
	}
	if _, ok := e.surface(draw); !ok {
		return 0
	}
	if _, ok := e.surface(read); !ok {
		return 0
	}
	e.ctx, e.draw, e.read = resource.Name(ctx), resource.Name(draw), resource.Name(read)
	return e.ok()
}

func (e *EGL) GetCurrentContext() uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = eglSuccess
	return uintptr(e.ctx)
}

func (e *EGL) GetCurrentSurface(readdraw int32) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch readdraw {
	case eglDraw:
		e.err = eglSuccess
		return uintptr(e.draw)
	case eglRead:
		e.err = eglSuccess
		return uintptr(e.read)
	}
	e.fail(eglBadParameter)
	return 0
}

func (e *EGL) GetCurrentDisplay() uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = eglSuccess
	if e.ctx == 0 {
		return 0
	}
	return DisplayHandle
}

func (e *EGL) WaitGL() uint32                 { return e.sync() }
func (e *EGL) WaitClient() uint32             { return e.sync() }
func (e *EGL) WaitNative(engine int32) uint32 { return e.sync() }

func (e *EGL) sync() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ok()
}

// ReleaseThread returns the thread to its initial state.
func (e *EGL) ReleaseThread() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctx, e.draw, e.read = 0, 0, 0
	e.api = eglOpenGLESAPI
	return e.ok()
}

func (e *EGL) CreateSyncKHR(dpy uintptr, typ uint32, attribList uintptr) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if typ != eglSyncFenceKHR {
		e.fail(eglBadAttribute)
		return 0
	}
	if e.ctx == 0 {
		e.fail(eglBadMatch)
		return 0
	}
	// Every command has completed by the time it returns, so a fence is
	// signaled at creation.
	name := e.handles.Insert(resource.KindSync, &fence{signaled: true})
	e.ok()
	return uintptr(name)
}

func (e *EGL) DestroySyncKHR(dpy, sync uintptr) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if _, ok := e.handles.GetTyped(resource.Name(sync), resource.KindSync); !ok {
		return e.fail(eglBadParameter)
	}
	e.handles.Remove(resource.Name(sync))
	return e.ok()
}

func (e *EGL) ClientWaitSyncKHR(dpy, sync uintptr, flags int32, timeout uint64) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.display(dpy, true) {
		return 0
	}
	if _, ok := e.handles.GetTyped(resource.Name(sync), resource.KindSync); !ok {
		e.fail(eglBadParameter)
		return 0
	}
	e.ok()
	return eglConditionSatisfiedKHR
}

func (e *EGL) GetSystemTimeFrequencyNV() uint64 {
	return uint64(time.Second)
}

func (e *EGL) GetSystemTimeNV() uint64 {
	return uint64(time.Since(e.start))
}

// Current reports the current context and draw surface handles.
func (e *EGL) Current() (ctx, draw uintptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return uintptr(e.ctx), uintptr(e.draw)
}

// Swaps returns how many times surf was presented.
func (e *EGL) Swaps(surf uintptr) int {
	v, ok := e.handles.GetTyped(resource.Name(surf), resource.KindSurface)
	if !ok {
		return 0
	}
	return v.(*surfaceState).swaps
}
