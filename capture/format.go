package capture

import (
	"fmt"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// Version is the capture stream format version.
const Version = 1

// Header opens every capture stream. It pins the catalog the vectors were
// encoded against; replaying under a different catalog is refused.
type Header struct {
	Version     int       `cbor:"1,keyasint"`
	Session     uuid.UUID `cbor:"2,keyasint"`
	Fingerprint uint64    `cbor:"3,keyasint"`
	Stride      uint64    `cbor:"4,keyasint"`
	Bias        uint64    `cbor:"5,keyasint"`
	Created     time.Time `cbor:"6,keyasint"`
}

// NewHeader returns a header for a fresh session over cat.
func NewHeader(cat *catalog.Catalog) Header {
	return Header{
		Version:     Version,
		Session:     uuid.New(),
		Fingerprint: cat.Fingerprint(),
		Stride:      cat.Stride(),
		Bias:        cat.Bias(catalog.EGL),
		Created:     time.Now().UTC(),
	}
}

// Verify checks that h was written against cat.
func (h Header) Verify(cat *catalog.Catalog) error {
	if h.Version != Version {
		return errors.New(errors.PhaseCapture, errors.KindInvalidData).
			Value(h.Version).
			Detail("unsupported capture version %d", h.Version).
			Build()
	}
	if h.Fingerprint != cat.Fingerprint() || h.Stride != cat.Stride() || h.Bias != cat.Bias(catalog.EGL) {
		return errors.New(errors.PhaseCapture, errors.KindCatalogMismatch).
			Detail("capture %s was recorded with catalog %016x (stride %d, bias %d), current is %016x (stride %d, bias %d)",
				h.Session, h.Fingerprint, h.Stride, h.Bias,
				cat.Fingerprint(), cat.Stride(), cat.Bias(catalog.EGL)).
			Build()
	}
	return nil
}

// Record is one forwarded call: the full vector as it crossed the gate,
// the tier it used and the result it produced.
type Record struct {
	Seq    uint64     `cbor:"1,keyasint"`
	Tier   abi.Tier   `cbor:"2,keyasint"`
	Vector abi.Vector `cbor:"3,keyasint"`
	Result uint64     `cbor:"4,keyasint"`
}

// Level selects which calls a Recorder keeps.
type Level uint8

const (
	LevelOff Level = iota
	LevelFailures
	LevelAll
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelFailures:
		return "failures"
	case LevelAll:
		return "all"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// ParseLevel accepts the names produced by String. The empty string is
// LevelAll.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return LevelAll, nil
	case "failures":
		return LevelFailures, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelOff, errors.InvalidInput(errors.PhaseCapture, fmt.Sprintf("unknown capture level %q", s))
}

var encMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("capture: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}
