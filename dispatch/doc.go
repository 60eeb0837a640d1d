// Package dispatch maps opcodes to resolved operations.
//
// A Table keeps one flat array per namespace, indexed by
// (opcode - bias) / stride. Every slot is either present or an explicit
// hole, so "valid opcode, not implemented" is distinguishable from "opcode
// outside every range" and coverage can be computed instead of inspected.
//
// Tables are built once from a catalog and a Resolver and never change.
package dispatch
