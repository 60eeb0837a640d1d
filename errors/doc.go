// Package errors provides structured error types for glforward.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the operation name, a detail message and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
//		Op("glViewport").
//		Path("arg", "2").
//		Detail("cannot carry string as s32").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedAPI(7200)
//	err := errors.UnsupportedFunction(160, "glBlendColor")
//
// Per-call failures (KindUnsupportedAPI, KindUnsupportedFunction) are
// recoverable. Construction failures (KindInvariant, KindRangeOverlap,
// KindMissingSymbol) mean the dispatch machinery must not be used.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
