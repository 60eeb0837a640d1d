package resource

// Name is an object name as the calling domain sees it: a GL object name
// or an EGL handle. Name 0 is reserved and never refers to an object.
type Name uint32

// Kind is the type of object a name refers to.
type Kind uint8

const (
	KindNone Kind = iota
	KindBuffer
	KindTexture
	KindFramebuffer
	KindRenderbuffer
	KindSampler
	KindTransformFeedback
	KindShader
	KindProgram
	KindSync
	KindSurface
	KindContext
	KindImage
)

var kindNames = [...]string{
	KindNone:              "none",
	KindBuffer:            "buffer",
	KindTexture:           "texture",
	KindFramebuffer:       "framebuffer",
	KindRenderbuffer:      "renderbuffer",
	KindSampler:           "sampler",
	KindTransformFeedback: "transform-feedback",
	KindShader:            "shader",
	KindProgram:           "program",
	KindSync:              "sync",
	KindSurface:           "surface",
	KindContext:           "context",
	KindImage:             "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// EventType identifies an object lifecycle transition.
type EventType uint8

const (
	EventReserved EventType = iota
	EventCreated
	EventDeleted
)

func (t EventType) String() string {
	switch t {
	case EventReserved:
		return "reserved"
	case EventCreated:
		return "created"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is one lifecycle notification.
type Event struct {
	Value any
	Name  Name
	Kind  Kind
	Type  EventType
}

// Observer receives lifecycle events.
type Observer interface {
	OnObjectEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnObjectEvent(e Event) { f(e) }

// Dropper is optionally implemented by object values that need cleanup
// when deleted.
type Dropper interface {
	Drop()
}
