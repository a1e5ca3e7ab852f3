/*
Package bitpack packs monochrome pixels into bytes, most significant bit first.

A Packer knows nothing about glyphs or rows: clients feed pixels one at a
time and are responsible for padding to a byte boundary wherever they need
one.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bitpack

import (
	"bytes"

	"github.com/icza/bitio"
)

// Packer is a sink for 1-bit pixels. The zero value is not usable, clients
// have to call NewPacker.
type Packer struct {
	buf     bytes.Buffer
	w       *bitio.Writer
	cursor  byte // bit in the current byte to be set next
	emitted bool // at least one byte has been completed
}

// NewPacker creates an empty packer with its cursor at the most significant bit.
func NewPacker() *Packer {
	p := &Packer{}
	p.Reset()
	return p
}

// Reset discards all packed bytes and partial state.
func (p *Packer) Reset() {
	p.buf.Reset()
	p.w = bitio.NewWriter(&p.buf)
	p.cursor = 0x80
	p.emitted = false
}

// Add appends a single pixel. When the cursor wraps past the least
// significant bit, the byte is complete and will be emitted.
func (p *Packer) Add(on bool) {
	p.w.TryWriteBool(on)
	if p.cursor >>= 1; p.cursor == 0 {
		p.cursor = 0x80
		p.emitted = true
	}
}

// Pad adds "off" pixels up to the next byte boundary and returns the number
// of pixels added. If the cursor already sits on a byte boundary, Pad is a
// no-op.
func (p *Packer) Pad() int {
	n := 0
	for p.cursor != 0x80 {
		p.Add(false)
		n++
	}
	return n
}

// Cursor returns the bit mask of the next bit to be written within the
// current byte, 0x80 for a fresh byte.
func (p *Packer) Cursor() byte {
	return p.cursor
}

// Aligned is a predicate: does the cursor sit on a byte boundary?
func (p *Packer) Aligned() bool {
	return p.cursor == 0x80
}

// Emitted is true if at least one byte has been completed since the last
// reset. It is of interest for output formatting only.
func (p *Packer) Emitted() bool {
	return p.emitted
}

// Len is the number of completed bytes.
func (p *Packer) Len() int {
	return p.buf.Len()
}

// Bytes returns the completed bytes. Pending bits of a partially filled
// byte are not included. The slice is valid until the next call to Add or
// Reset.
func (p *Packer) Bytes() []byte {
	return p.buf.Bytes()
}

// Err returns the first error which occurred during writing bits, if any.
func (p *Packer) Err() error {
	return p.w.TryError
}

// Unpack is the inverse of packing a w×h pixel matrix row by row,
// starting at data[0]. Missing bytes read as "off".
func Unpack(data []byte, w, h int) [][]bool {
	pixels := make([][]bool, h)
	i := 0
	for y := 0; y < h; y++ {
		pixels[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			if i/8 < len(data) {
				pixels[y][x] = data[i/8]&(0x80>>(i%8)) != 0
			}
			i++
		}
	}
	return pixels
}
