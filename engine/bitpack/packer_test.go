package bitpack

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packMatrix(p *Packer, pixels [][]bool) {
	for _, row := range pixels {
		for _, on := range row {
			p.Add(on)
		}
	}
	p.Pad()
}

func allOn(w, h int) [][]bool {
	m := make([][]bool, h)
	for y := range m {
		m[y] = make([]bool, w)
		for x := range m[y] {
			m[y][x] = true
		}
	}
	return m
}

func TestSinglePixel(t *testing.T) {
	p := NewPacker()
	p.Add(true)
	assert.Equal(t, 0, p.Len(), "byte must not be emitted before it is complete")
	assert.Equal(t, byte(0x40), p.Cursor())
	assert.Equal(t, 7, p.Pad())
	assert.Equal(t, []byte{0x80}, p.Bytes())
	assert.True(t, p.Emitted())
	assert.True(t, p.Aligned())
	assert.NoError(t, p.Err())
}

func TestNinePixels(t *testing.T) {
	p := NewPacker()
	packMatrix(p, allOn(9, 1))
	assert.Equal(t, []byte{0xFF, 0x80}, p.Bytes())
}

func TestMSBFirst(t *testing.T) {
	p := NewPacker()
	for _, on := range []bool{true, false, true, false, false, false, false, true} {
		p.Add(on)
	}
	assert.Equal(t, []byte{0xA1}, p.Bytes())
	assert.Equal(t, 0, p.Pad(), "aligned packer needs no padding")
}

func TestResetClearsState(t *testing.T) {
	p := NewPacker()
	packMatrix(p, allOn(3, 5))
	require.Equal(t, 2, p.Len())
	p.Add(true)
	p.Reset()
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Emitted())
	assert.Equal(t, byte(0x80), p.Cursor())
	p.Add(true)
	p.Pad()
	assert.Equal(t, []byte{0x80}, p.Bytes())
}

// Packing then unpacking must reproduce every pixel matrix, including
// empty ones and pixel counts which are not a multiple of 8.
func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for w := 0; w <= 17; w++ {
		for h := 0; h <= 9; h++ {
			t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
				m := make([][]bool, h)
				for y := range m {
					m[y] = make([]bool, w)
					for x := range m[y] {
						m[y][x] = rnd.Intn(2) == 1
					}
				}
				p := NewPacker()
				packMatrix(p, m)
				assert.Equal(t, (w*h+7)/8, p.Len())
				assert.Equal(t, m, Unpack(p.Bytes(), w, h))
			})
		}
	}
}

// Glyphs packed one after another each start on a fresh byte.
func TestConsecutiveGlyphsAreByteAligned(t *testing.T) {
	p := NewPacker()
	packMatrix(p, allOn(1, 1))
	packMatrix(p, allOn(3, 3))
	packMatrix(p, allOn(0, 0))
	packMatrix(p, allOn(2, 1))
	assert.Equal(t, []byte{0x80, 0xFF, 0x80, 0xC0}, p.Bytes())
}
