// Package trace provides a receiving-domain backend that logs every call
// it receives.
//
// Standalone, it wires the whole catalog and answers each call with zero
// (or a WithResult choice), which makes a routed call stream observable
// without any real implementation behind it. Wrapped around another
// resolver it logs and forwards:
//
//	soft, _ := soft.New(cat, mem)
//	table, _ := dispatch.Build(cat, trace.Wrap(soft, trace.WithLogger(log)))
package trace
