// Package mapping packs byte strings into sequences of curve points and back.
//
// Each point carries one chunk of FieldBytes-2 bytes in its x coordinate.
// Read big-endian, x is laid out as
//
//	0x00 || counter || chunk
//
// where counter is the first value in 0..255 for which x is the abscissa of
// a curve point (the even-y point is used). The leading zero byte keeps x
// below the field prime. Before packing, the input is padded with a single
// 0x80 byte followed by zero bytes up to a whole number of chunks.
package mapping

import (
	"fmt"
	"math/big"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

const (
	padMarker = 0x80

	// headerBytes is the zero byte plus the counter byte.
	headerBytes = 2
)

// Mapper converts between byte strings and point sequences on one curve.
type Mapper struct {
	curve      curves.Curve
	fieldBytes int
}

// New returns a Mapper for curve. The curve field must be at least three
// bytes wide so that every point carries at least one byte.
func New(curve curves.Curve) (*Mapper, error) {
	fb := curves.FieldBytes(curve)
	if fb <= headerBytes {
		return nil, fmt.Errorf("mapping: field of %d bytes is too narrow", fb)
	}
	return &Mapper{curve: curve, fieldBytes: fb}, nil
}

// ChunkSize returns the number of payload bytes carried by one point.
func (m *Mapper) ChunkSize() int {
	return m.fieldBytes - headerBytes
}

// Blocks returns the number of points Pack produces for n input bytes.
func (m *Mapper) Blocks(n int) int {
	return n/m.ChunkSize() + 1
}

// Pack pads data and maps every chunk to a curve point.
func (m *Mapper) Pack(data []byte) ([]curves.Point, error) {
	chunk := m.ChunkSize()
	padded := make([]byte, m.Blocks(len(data))*chunk)
	copy(padded, data)
	padded[len(data)] = padMarker

	points := make([]curves.Point, 0, len(padded)/chunk)
	buf := make([]byte, m.fieldBytes)
	for off := 0; off < len(padded); off += chunk {
		copy(buf[headerBytes:], padded[off:off+chunk])
		p, err := m.embed(buf)
		if err != nil {
			return nil, fmt.Errorf("mapping: block %d: %w", off/chunk, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// embed searches the counter byte of buf until its value lifts to a point.
func (m *Mapper) embed(buf []byte) (curves.Point, error) {
	x := new(big.Int)
	for counter := 0; counter < 256; counter++ {
		buf[1] = byte(counter)
		if p, ok := m.curve.LiftX(x.SetBytes(buf)); ok {
			return p, nil
		}
	}
	return curves.Point{}, cryptoerr.New(cryptoerr.ErrCrypto, "no curve point for chunk")
}

// Unpack recovers the bytes carried by points and removes the padding.
func (m *Mapper) Unpack(points []curves.Point) ([]byte, error) {
	if len(points) == 0 {
		return nil, cryptoerr.New(cryptoerr.ErrDecode, "mapping: empty point sequence")
	}

	chunk := m.ChunkSize()
	limit := 8 * (m.fieldBytes - 1)
	data := make([]byte, 0, len(points)*chunk)
	buf := make([]byte, m.fieldBytes)
	for i, p := range points {
		if p.IsInfinity() || p.X.Sign() < 0 || p.X.BitLen() > limit {
			return nil, cryptoerr.Newf(cryptoerr.ErrDecode, "mapping: block %d does not carry data", i)
		}
		p.X.FillBytes(buf)
		data = append(data, buf[headerBytes:]...)
	}

	end := len(data) - 1
	for end >= 0 && data[end] == 0 {
		end--
	}
	if end < 0 || data[end] != padMarker {
		return nil, cryptoerr.New(cryptoerr.ErrDecode, "mapping: invalid padding")
	}
	return data[:end], nil
}
