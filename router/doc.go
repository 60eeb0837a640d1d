// Package router is the single entry point for forwarded calls.
//
// A call arrives as an opcode and fifteen argument words. The router
// classifies the opcode by namespace range, looks up its dispatch slot and
// invokes the target. Two failures are distinguished:
//
//   - unsupported API: the opcode lies outside every namespace range
//   - unsupported function: the opcode is valid but its slot is a hole
//
// Route logs the failure and returns Failure; Call returns it as an error
// matching errors.ErrUnsupportedAPI or errors.ErrUnsupportedFunction.
//
// Router implements abi.Gate, so the short and long trampoline tiers can
// be pointed at it directly.
package router
