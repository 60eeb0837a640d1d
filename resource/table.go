package resource

import (
	"sync"
)

// Table is a Space with lifecycle notifications and kind-checked access.
type Table struct {
	space     *Space
	observers []Observer
	obsMu     sync.RWMutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{space: NewSpace()}
}

// Reserve hands out n names of kind with no objects behind them.
func (t *Table) Reserve(kind Kind, n int) []Name {
	names := make([]Name, 0, n)
	for i := 0; i < n; i++ {
		name, err := t.space.Reserve(kind)
		if err != nil {
			break
		}
		names = append(names, name)
		t.notify(Event{Type: EventReserved, Name: name, Kind: kind})
	}
	return names
}

// Insert creates an object and returns its name, or 0 once the table is
// closed.
func (t *Table) Insert(kind Kind, value any) Name {
	name, err := t.space.Create(kind, value)
	if err != nil {
		return 0
	}
	t.notify(Event{Type: EventCreated, Name: name, Kind: kind, Value: value})
	return name
}

// Bind makes name live on first use. A live name of the right kind is
// returned as is; a reserved one gets the object made by create.
func (t *Table) Bind(name Name, kind Kind, create func() any) (any, bool) {
	if v, ok := t.GetTyped(name, kind); ok {
		return v, true
	}
	if !t.space.Reserved(name) {
		return nil, false
	}
	v := create()
	if !t.space.Attach(name, kind, v) {
		return nil, false
	}
	t.notify(Event{Type: EventCreated, Name: name, Kind: kind, Value: v})
	return v, true
}

// Get returns the object behind a live name.
func (t *Table) Get(name Name) (any, bool) {
	return t.space.Get(name)
}

// GetTyped returns the object only if it is of kind.
func (t *Table) GetTyped(name Name, kind Kind) (any, bool) {
	actual, ok := t.space.Kind(name)
	if !ok || actual != kind {
		return nil, false
	}
	return t.space.Get(name)
}

// Is reports whether name is a live object of kind, the test behind
// glIsBuffer and its siblings.
func (t *Table) Is(name Name, kind Kind) bool {
	_, ok := t.GetTyped(name, kind)
	return ok
}

// Kind returns the kind of a reserved or live name.
func (t *Table) Kind(name Name) (Kind, bool) {
	return t.space.Kind(name)
}

// Remove deletes name, dropping its object. It reports false when name
// was not in use.
func (t *Table) Remove(name Name) (any, bool) {
	kind, _ := t.space.Kind(name)
	value, ok := t.space.Delete(name)
	if !ok {
		return nil, false
	}
	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	t.notify(Event{Type: EventDeleted, Name: name, Kind: kind, Value: value})
	return value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of names in use.
func (t *Table) Len() int {
	return t.space.Len()
}

// Count returns the number of live objects of kind.
func (t *Table) Count(kind Kind) int {
	n := 0
	t.space.Each(func(_ Name, k Kind, _ any) bool {
		if k == kind {
			n++
		}
		return true
	})
	return n
}

// Each iterates over live objects.
func (t *Table) Each(fn func(Name, Kind, any) bool) {
	t.space.Each(fn)
}

// Clear deletes every live object.
func (t *Table) Clear() {
	// Collect names first to avoid holding the lock during Remove
	var names []Name
	t.space.Each(func(n Name, _ Kind, _ any) bool {
		names = append(names, n)
		return true
	})
	for _, n := range names {
		t.Remove(n)
	}
}

// Close releases all objects and stops handing out names.
func (t *Table) Close() error {
	return t.space.Close()
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnObjectEvent(e)
	}
}
