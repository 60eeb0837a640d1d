// Package capture records forwarded calls and replays them.
//
// A capture stream is zstd compressed and holds a sequence of CBOR
// values: one Header, then one Record per call. The header carries a
// session id and the catalog fingerprint, so a stream recorded against
// one set of declarations is never replayed against another.
//
//	w, _ := capture.Create("session.glcap", cat)
//	rec := capture.NewRecorder(router, w)
//	client.New(cat, rec).Call(catalog.GLClear, uint32(0x4000))
//	w.Close()
//
//	r, _ := capture.Open("session.glcap")
//	report, err := capture.Replay(ctx, r, router)
package capture
