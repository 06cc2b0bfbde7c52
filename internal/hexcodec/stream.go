package hexcodec

import (
	"math/big"
	"strings"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

// Writer appends fixed-width fields to a hex string. The first error is
// sticky; later writes are ignored and String reports it.
type Writer struct {
	buf strings.Builder
	err error
}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteScalar appends one field.
func (w *Writer) WriteScalar(v *big.Int) {
	if w.err != nil {
		return
	}
	b, err := scalarBytes(v)
	if err != nil {
		w.err = err
		return
	}
	w.buf.WriteString(EncodeBytes(b))
}

// WritePoint appends hex(x) || hex(y). The point at infinity has no encoding.
func (w *Writer) WritePoint(p curves.Point) {
	if w.err != nil {
		return
	}
	if p.IsInfinity() {
		w.err = cryptoerr.New(cryptoerr.ErrCrypto, "hexcodec: point at infinity has no encoding")
		return
	}
	w.WriteScalar(p.X)
	w.WriteScalar(p.Y)
}

// WritePoints appends each point in order.
func (w *Writer) WritePoints(ps []curves.Point) {
	for _, p := range ps {
		w.WritePoint(p)
	}
}

// String returns the text written so far, or the first error.
func (w *Writer) String() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	return w.buf.String(), nil
}

// Reader consumes fixed-width fields from a hex string. Reads past the end
// or over malformed text set a sticky error and return zero values.
type Reader struct {
	src string
	off int
	err error
}

func NewReader(s string) *Reader {
	return &Reader{src: s}
}

// Remaining returns the number of unread hex characters.
func (r *Reader) Remaining() int {
	return len(r.src) - r.off
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}

// Close returns the first error, or an ErrFormat error if unread text
// remains.
func (r *Reader) Close() error {
	if r.err != nil {
		return r.err
	}
	if n := r.Remaining(); n > 0 {
		return cryptoerr.Newf(cryptoerr.ErrFormat, "hexcodec: %d trailing hex chars", n)
	}
	return nil
}

// ReadScalar reads one field.
func (r *Reader) ReadScalar() *big.Int {
	if r.err != nil {
		return nil
	}
	if r.Remaining() < FieldHexLen {
		r.err = cryptoerr.Newf(cryptoerr.ErrFormat,
			"hexcodec: field needs %d hex chars at offset %d, %d available", FieldHexLen, r.off, r.Remaining())
		return nil
	}
	b, err := DecodeBytes(r.src[r.off : r.off+FieldHexLen])
	if err != nil {
		r.err = err
		return nil
	}
	r.off += FieldHexLen
	return LittleEndianInt(b)
}

// ReadPoint reads hex(x) || hex(y).
func (r *Reader) ReadPoint() curves.Point {
	if r.err == nil && r.Remaining() < PointHexLen {
		r.err = cryptoerr.Newf(cryptoerr.ErrFormat,
			"hexcodec: point needs %d hex chars at offset %d, %d available", PointHexLen, r.off, r.Remaining())
	}
	x := r.ReadScalar()
	y := r.ReadScalar()
	if r.err != nil {
		return curves.Point{}
	}
	return curves.Point{X: x, Y: y}
}

// ReadPoints reads every remaining block as a point. The remaining length
// must be a multiple of PointHexLen.
func (r *Reader) ReadPoints() []curves.Point {
	if r.err != nil {
		return nil
	}
	if r.Remaining()%PointHexLen != 0 {
		r.err = cryptoerr.Newf(cryptoerr.ErrFormat,
			"hexcodec: point sequence of %d hex chars is not a multiple of %d", r.Remaining(), PointHexLen)
		return nil
	}
	ps := make([]curves.Point, 0, r.Remaining()/PointHexLen)
	for r.Remaining() > 0 {
		p := r.ReadPoint()
		if r.err != nil {
			return nil
		}
		ps = append(ps, p)
	}
	return ps
}
