package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("object space closed")

// Space allocates names for one object namespace. GL keeps separate
// namespaces per object type, except that shaders and programs share
// one, so a context holds several spaces.
//
// A name is either reserved (handed out by a glGen* call, no object yet)
// or live (an object exists). Deleted names go on a free list and are
// handed out again.
type Space struct {
	entries  []entry
	freeList []Name
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value any
	kind  Kind
	state state
}

type state uint8

const (
	stateFree state = iota
	stateReserved
	stateLive
)

// NewSpace creates an empty space.
func NewSpace() *Space {
	return &Space{
		entries:  make([]entry, 0, 64),
		freeList: make([]Name, 0, 16),
	}
}

func (s *Space) alloc(e entry) Name {
	if len(s.freeList) > 0 {
		name := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[name-1] = e
		return name
	}
	s.entries = append(s.entries, e)
	return Name(len(s.entries))
}

// Reserve hands out a name with no object behind it.
func (s *Space) Reserve(kind Kind) (Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.alloc(entry{kind: kind, state: stateReserved}), nil
}

// Create allocates a name with value as its object.
func (s *Space) Create(kind Kind, value any) (Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.alloc(entry{kind: kind, value: value, state: stateLive}), nil
}

// Attach gives a reserved name its object. It reports false when name is
// free, already live, or reserved for another kind.
func (s *Space) Attach(name Name, kind Kind, value any) bool {
	if name == 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := int(name) - 1
	if idx >= len(s.entries) {
		return false
	}
	e := &s.entries[idx]
	if e.state != stateReserved || e.kind != kind {
		return false
	}
	e.value = value
	e.state = stateLive
	return true
}

func (s *Space) lookup(name Name) (entry, bool) {
	if name == 0 {
		return entry{}, false
	}
	idx := int(name) - 1
	if idx >= len(s.entries) {
		return entry{}, false
	}
	e := s.entries[idx]
	return e, e.state != stateFree
}

// Get returns the object behind a live name.
func (s *Space) Get(name Name) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.lookup(name)
	if !ok || e.state != stateLive {
		return nil, false
	}
	return e.value, true
}

// Kind returns the kind of a reserved or live name.
func (s *Space) Kind(name Name) (Kind, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.lookup(name)
	if !ok {
		return KindNone, false
	}
	return e.kind, true
}

// Reserved reports whether name is reserved and not yet live.
func (s *Space) Reserved(name Name) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.lookup(name)
	return ok && e.state == stateReserved
}

// Delete frees name and returns the object it held, if any. The second
// result is false when name was not in use.
func (s *Space) Delete(name Name) (any, bool) {
	if name == 0 {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := int(name) - 1
	if idx >= len(s.entries) {
		return nil, false
	}
	e := &s.entries[idx]
	if e.state == stateFree {
		return nil, false
	}
	value := e.value
	*e = entry{}
	s.freeList = append(s.freeList, name)
	return value, true
}

// Close frees every name, dropping live objects.
func (s *Space) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	for i := range s.entries {
		if s.entries[i].state == stateLive {
			if d, ok := s.entries[i].value.(Dropper); ok {
				d.Drop()
			}
		}
	}
	s.entries = nil
	s.freeList = nil
	return nil
}

// Len returns the number of names in use, reserved or live.
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, e := range s.entries {
		if e.state != stateFree {
			count++
		}
	}
	return count
}

// Each calls fn for every live object until fn returns false.
func (s *Space) Each(fn func(Name, Kind, any) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, e := range s.entries {
		if e.state == stateLive {
			if !fn(Name(i+1), e.kind, e.value) {
				break
			}
		}
	}
}
