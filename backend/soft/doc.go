// Package soft is a receiving-domain implementation of a GLES2 and EGL
// subset kept entirely in Go memory.
//
// It renders nothing. What it keeps is the state a GLES client can
// observe: the error flag, object names and their lifetimes, capability
// bits, clear values, viewport and scissor, shader and program status,
// and for EGL the display, config, surfaces, contexts and the current
// binding. Calls that pass addresses read and write them through a
// Memory, 32-bit little-endian offsets as a wasm32 guest would use.
//
//	mem := make(soft.Bytes, 1<<16)
//	b, _ := soft.New(catalog.Default(), mem)
//	table, _ := dispatch.Build(catalog.Default(), b)
//
// Operations it does not implement stay unwired, so the router reports
// them as unsupported functions.
package soft
