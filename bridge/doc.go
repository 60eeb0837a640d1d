// Package bridge carries forwarded calls across a WebAssembly boundary.
//
// The host side is a wazero host module named "glforward" with two
// exports, one per trampoline tier:
//
//	call      (opcode, a1..a5: i64) -> i64
//	call_long (opcode, a1..a15: i64) -> i64
//
// The guest side is generated: BuildGuest emits a core module with one
// export per cataloged operation, typed the way a wasm32 C compiler would
// type it (i32 for 32-bit and narrower integers, f32, f64, i64). Each stub
// widens its arguments, pushes the opcode, pads to the tier width, calls
// the tier and narrows the result.
//
//	r := wazero.NewRuntime(ctx)
//	bridge.Instantiate(ctx, r, router)
//	g, _ := bridge.NewGuest(ctx, r, catalog.Default())
//	g.Call(ctx, catalog.GLViewport, int32(0), int32(0), int32(640), int32(480))
package bridge
