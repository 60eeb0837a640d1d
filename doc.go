// Package glforward forwards GLES2 and EGL calls from a calling execution
// domain to a receiving domain that implements them.
//
// Every call crosses the boundary as an opcode plus up to fifteen 64-bit
// argument words. The calling side encodes typed arguments into words and
// sends them through one of two trampoline tiers; the receiving side
// classifies the opcode, looks up the implementation in a flat table and
// invokes it, answering with a single result word.
//
// # Architecture Overview
//
//	glforward/
//	├── catalog/         Opcode Catalog: declarations, opcodes, namespaces
//	├── abi/             Argument Marshaller: kinds, words, vectors, tiers
//	├── dispatch/        Dispatch Table: opcode to target, holes allowed
//	├── router/          Call Router: classify, resolve, invoke
//	├── resolve/         Name to callable: registries and host adapters
//	├── client/          Calling side: typed call to words to a gate
//	├── bridge/          wazero boundary: guest wasm stubs call the router
//	├── capture/         Record and replay of argument vectors
//	├── resource/        Object name tables for GL and EGL objects
//	├── backend/soft/    Software GLES2/EGL state machine
//	├── backend/trace/   Backend that logs every call
//	├── config/          glforward.toml
//	├── errors/          Structured error types
//	└── cmd/             glforward CLI and the opgen generator
//
// # Quick Start
//
// Route calls into the software backend:
//
//	cat := catalog.Default()
//	b, _ := soft.New(cat, make(soft.Bytes, 1<<16))
//	table, _ := dispatch.Build(cat, b)
//	rt, _ := router.New(table)
//
//	c := client.New(cat, rt)
//	c.Call(catalog.GLClearColor, float32(0), float32(0), float32(0), float32(1))
//	c.Call(catalog.GLClear, uint32(0x4000))
//
// A guest module built with bridge.BuildGuest makes the same calls from
// inside wazero.
//
// # Failures
//
// Route never panics. An opcode outside every namespace range and an
// opcode whose operation has no implementation both return
// router.Failure, the all-ones word, and are logged with different
// messages. router.Call returns the same conditions as errors.
//
// # Thread Safety
//
// The catalog, a built table and a router are read-only and safe for
// concurrent use. Backends synchronize their own state.
package glforward
