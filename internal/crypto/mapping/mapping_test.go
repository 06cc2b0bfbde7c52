package mapping

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/hash-storage-go/internal/crypto/curves"
	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

func newMapper(t *testing.T, c curves.Curve) *Mapper {
	t.Helper()
	m, err := New(c)
	require.NoError(t, err)
	return m
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, 30, newMapper(t, curves.NewSecp256k1()).ChunkSize())
	assert.Equal(t, 1, newMapper(t, curves.NewToy()).ChunkSize())
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("Some text."),
		{0x00},
		{0x80},
		{0x80, 0x00, 0x00},
		bytes.Repeat([]byte{0xff}, 30),
		bytes.Repeat([]byte{0xab}, 31),
		bytes.Repeat([]byte("hash storage "), 20),
	}

	for name, c := range map[string]curves.Curve{"secp256k1": curves.NewSecp256k1(), "toy": curves.NewToy()} {
		m := newMapper(t, c)
		for _, in := range inputs {
			points, err := m.Pack(in)
			require.NoError(t, err, "%s: pack %x", name, in)
			require.Len(t, points, m.Blocks(len(in)), "%s: %x", name, in)

			for i, p := range points {
				require.True(t, c.IsOnCurve(p), "%s: block %d off curve", name, i)
				require.Zero(t, p.Y.Bit(0), "%s: block %d has odd y", name, i)
			}

			out, err := m.Unpack(points)
			require.NoError(t, err, "%s: unpack %x", name, in)
			assert.Equal(t, in, out, name)
		}
	}
}

func TestPackDeterministic(t *testing.T) {
	m := newMapper(t, curves.NewSecp256k1())
	a, err := m.Pack([]byte("Data block"))
	require.NoError(t, err)
	b, err := m.Pack([]byte("Data block"))
	require.NoError(t, err)
	require.Len(t, b, len(a))
	for i := range a {
		assert.True(t, a[i].Equal(b[i]))
	}
}

func TestBlocks(t *testing.T) {
	m := newMapper(t, curves.NewSecp256k1())
	assert.Equal(t, 1, m.Blocks(0))
	assert.Equal(t, 1, m.Blocks(29))
	assert.Equal(t, 2, m.Blocks(30))
	assert.Equal(t, 3, m.Blocks(61))
}

func TestUnpackErrors(t *testing.T) {
	c := curves.NewToy()
	m := newMapper(t, c)

	_, err := m.Unpack(nil)
	assert.True(t, errors.Is(err, cryptoerr.ErrDecode))

	_, err = m.Unpack([]curves.Point{curves.Infinity()})
	assert.True(t, errors.Is(err, cryptoerr.ErrDecode))

	// The generator's x coordinate (5) carries byte 0x05 and no pad marker.
	g := curves.Point{X: c.Params().Gx, Y: c.Params().Gy}
	_, err = m.Unpack([]curves.Point{g})
	assert.True(t, errors.Is(err, cryptoerr.ErrDecode))

	// Top byte set: not produced by Pack.
	_, err = m.Unpack([]curves.Point{{X: big.NewInt(0x010080), Y: big.NewInt(1)}})
	assert.True(t, errors.Is(err, cryptoerr.ErrDecode))
}

func TestNewRejectsNarrowField(t *testing.T) {
	narrow := curves.NewWeierstrass("narrow", big.NewInt(251), big.NewInt(0), big.NewInt(7), big.NewInt(263), big.NewInt(1), big.NewInt(1))
	_, err := New(narrow)
	assert.Error(t, err)
}
