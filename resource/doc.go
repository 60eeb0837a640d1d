// Package resource allocates object names for a software GL/EGL backend.
//
// GL object names are small integers chosen by the implementation. A
// glGen* call reserves names; the object behind a name only comes into
// existence on first bind, which is why glIsBuffer answers false for a
// name that was generated but never bound. Shaders and programs are
// created directly and share one namespace.
//
//	buffers := resource.NewTable()
//	names := buffers.Reserve(resource.KindBuffer, 2)
//	buffers.Is(names[0], resource.KindBuffer)       // false
//	buffers.Bind(names[0], resource.KindBuffer, newBuffer)
//	buffers.Is(names[0], resource.KindBuffer)       // true
//	buffers.Remove(names[0])                        // name is reused later
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    log.Printf("%s %d %s", e.Kind, e.Name, e.Type)
//	}))
//
// ObserverFunc values cannot be compared, so they cannot be unsubscribed;
// use a pointer type for observers that need Unsubscribe.
//
// EGL handles (surfaces, contexts, images, syncs) are allocated the same
// way and travel to the calling domain as pointer-sized words.
package resource
