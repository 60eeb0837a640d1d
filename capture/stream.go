package capture

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/errors"
)

// Writer encodes a capture stream: a Header followed by Records, each a
// CBOR value, the whole stream zstd compressed.
type Writer struct {
	header Header
	zw     *zstd.Encoder
	enc    *cbor.Encoder
	file   *os.File
	count  uint64
}

// NewWriter writes a header for cat to w and returns a writer for the
// records that follow. Close must be called to flush the stream; it does
// not close w.
func NewWriter(w io.Writer, cat *catalog.Catalog) (*Writer, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindInvalidInput, err, "create zstd writer")
	}
	cw := &Writer{
		header: NewHeader(cat),
		zw:     zw,
		enc:    encMode.NewEncoder(zw),
	}
	if err := cw.enc.Encode(cw.header); err != nil {
		zw.Close()
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "encode header")
	}
	return cw, nil
}

// Create creates the file at path and writes a capture stream to it.
func Create(path string, cat *catalog.Catalog) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindInvalidInput, err, "create capture file")
	}
	w, err := NewWriter(f, cat)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.file = f
	Logger().Info("capture started",
		zap.String("path", path),
		zap.Stringer("session", w.header.Session))
	return w, nil
}

// Header returns the header written at the start of the stream.
func (w *Writer) Header() Header { return w.header }

// Count returns the number of records written.
func (w *Writer) Count() uint64 { return w.count }

// Write appends one record.
func (w *Writer) Write(rec Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "encode record")
	}
	w.count++
	return nil
}

// Close flushes the compressed stream, and closes the file when the
// writer was made by Create.
func (w *Writer) Close() error {
	err := w.zw.Close()
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
		Logger().Info("capture closed",
			zap.Stringer("session", w.header.Session),
			zap.Uint64("records", w.count))
	}
	if err != nil {
		return errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "close capture stream")
	}
	return nil
}

// Reader decodes a capture stream.
type Reader struct {
	header Header
	zr     *zstd.Decoder
	dec    *cbor.Decoder
	file   *os.File
}

// NewReader reads the stream header from r.
func NewReader(r io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "open zstd stream")
	}
	cr := &Reader{zr: zr, dec: cbor.NewDecoder(zr)}
	if err := cr.dec.Decode(&cr.header); err != nil {
		zr.Close()
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "decode header")
	}
	return cr, nil
}

// Open opens the capture file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindNotFound, err, "open capture file")
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// Header returns the stream header.
func (r *Reader) Header() Header { return r.header }

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if stderrors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "decode record")
	}
	return rec, nil
}

// All reads every remaining record.
func (r *Reader) All() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Close releases the decoder and the file opened by Open.
func (r *Reader) Close() error {
	r.zr.Close()
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
