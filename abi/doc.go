// Package abi implements the fixed-width transport encoding used to carry
// a call across the domain boundary.
//
// Every argument, whatever its declared width or signedness, occupies one
// 64-bit word in declaration order. A call is an Argument Vector of 16
// words: the opcode followed by up to 15 arguments.
//
// # Contents
//
//   - kind.go: declared kinds and their mapping to WIT primitives
//   - word.go: per-kind encode/decode and the generic Word/As helpers
//   - coerce.go: dynamic encode/decode of Go values by kind
//   - vector.go: Argument Vector, Args and Signature
//   - gate.go: short and long trampoline tiers
//
// The tier split exists for cost only. A call with five or fewer arguments
// may use the short gate; both gates must deliver identical vectors.
package abi
