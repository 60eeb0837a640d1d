// Package catalog assigns opcodes to the GLES2 and EGL operations.
//
// Operations are declared in gles2.wit and egl.wit. Declaration order is
// opcode order: the n-th GLES2 operation has opcode n*Stride and the n-th
// EGL operation has Bias + n*Stride. The two ranges never overlap; Load
// rejects any layout in which they would.
//
// The Op constants in ops_gen.go are generated from the same files by
// cmd/opgen and checked against them when Default builds the catalog, so
// the constants cannot drift from the declarations unnoticed.
//
//	op := catalog.GLViewport
//	op.Opcode()                      // 7112
//	catalog.NamespaceOf(10024)       // EGL
//	catalog.Default().Entry(op).Decl() // glViewport: func(x: s32, ...);
package catalog
