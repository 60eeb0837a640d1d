package capture

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
)

// MaxDivergences bounds the divergences a Report keeps. Later ones are
// only counted.
const MaxDivergences = 256

// Divergence is a replayed call whose result differs from the recording.
type Divergence struct {
	Record Record
	Got    uint64
}

// Report summarizes a replay.
type Report struct {
	Session     string
	Replayed    int
	Diverged    int
	Divergences []Divergence
}

// Cataloged is implemented by gates that know their catalog, such as
// *router.Router. Replay verifies the stream header against it.
type Cataloged interface {
	Catalog() *catalog.Catalog
}

// Replay re-sends every remaining record of r through gate on the tier it
// was recorded with and compares results. When gate is Cataloged a
// header recorded under another catalog is refused before any call.
func Replay(ctx context.Context, r *Reader, gate abi.Gate) (Report, error) {
	h := r.Header()
	rep := Report{Session: h.Session.String()}

	if c, ok := gate.(Cataloged); ok {
		if err := h.Verify(c.Catalog()); err != nil {
			return rep, err
		}
	}

	log := Logger().With(zap.Stringer("session", h.Session))
	for {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, err
		}

		got := send(gate, rec)
		rep.Replayed++
		if got == rec.Result {
			continue
		}
		rep.Diverged++
		if len(rep.Divergences) < MaxDivergences {
			rep.Divergences = append(rep.Divergences, Divergence{Record: rec, Got: got})
		}
		log.Warn("replay diverged",
			zap.Uint64("seq", rec.Seq),
			zap.Uint64("opcode", rec.Vector.Opcode()),
			zap.Uint64("recorded", rec.Result),
			zap.Uint64("replayed", got))
	}

	log.Info("replay finished",
		zap.Int("replayed", rep.Replayed),
		zap.Int("diverged", rep.Diverged))
	return rep, nil
}

func send(gate abi.Gate, rec Record) uint64 {
	args := rec.Vector.Args()
	if rec.Tier == abi.TierShort {
		var s abi.ShortArgs
		copy(s[:], args[:abi.ShortArity])
		return gate.Short(rec.Vector.Opcode(), s)
	}
	return gate.Long(rec.Vector.Opcode(), args)
}
