// Package resolve binds cataloged operations to implementations.
//
// A Registry accepts raw dispatch targets, typed Go functions checked
// against the declared signature, or whole host structs whose method names
// follow the declared names without their namespace prefix:
//
//	type gl struct{}
//	func (gl) Namespace() catalog.Namespace { return catalog.GLES2 }
//	func (gl) Viewport(x, y, w, h int32)    { ... } // glViewport
//
// Require reports operations a deployment cannot run without, so a
// missing symbol surfaces at initialization rather than as a stream of
// unsupported-function failures.
package resolve
