// Package recordview implements a zero-copy window over a byte buffer,
// anchored at a fixed base offset, that the player and team packages use
// to express field placements relative to a record's start rather than
// the whole file's start.
package recordview

import (
	"errors"
	"fmt"

	"rosedit/bitio"
)

// ErrOutOfRange is returned when a primitive's target bytes fall outside
// the buffer. BitsAt and WriteBitsAt return the bitio package's errors
// instead.
var ErrOutOfRange = errors.New("recordview: out of range")

// View is a (buffer, length, base) triple. It never copies the buffer;
// all reads and writes go straight through to buf.
type View struct {
	buf    []byte
	length int
	base   int
}

// New constructs a View over buf with the record starting at base.
// recordSize is used only to validate that the whole record fits in buf;
// pass 0 to skip that check.
func New(buf []byte, base int, recordSize int) (View, error) {
	if base < 0 || base > len(buf) {
		return View{}, fmt.Errorf("%w: base %d outside buffer of length %d", ErrOutOfRange, base, len(buf))
	}
	if recordSize > 0 && base+recordSize > len(buf) {
		return View{}, fmt.Errorf("%w: record [%d,%d) exceeds buffer of length %d", ErrOutOfRange, base, base+recordSize, len(buf))
	}
	return View{buf: buf, length: len(buf), base: base}, nil
}

// Base returns the record's absolute base offset into the buffer.
func (v View) Base() int { return v.base }

// ByteAt reads one byte at base+off.
func (v View) ByteAt(off int) (byte, error) {
	abs := v.base + off
	if abs < 0 || abs >= v.length {
		return 0, fmt.Errorf("%w: byte_at(%d): absolute %d >= length %d", ErrOutOfRange, off, abs, v.length)
	}
	return v.buf[abs], nil
}

// WriteByteAt writes one byte at base+off.
func (v View) WriteByteAt(off int, val byte) error {
	abs := v.base + off
	if abs < 0 || abs >= v.length {
		return fmt.Errorf("%w: write_byte_at(%d): absolute %d >= length %d", ErrOutOfRange, off, abs, v.length)
	}
	v.buf[abs] = val
	return nil
}

// U16LEAt reads a little-endian 16-bit integer at base+off.
func (v View) U16LEAt(off int) (uint16, error) {
	abs := v.base + off
	if abs < 0 || abs+1 >= v.length {
		return 0, fmt.Errorf("%w: u16_le_at(%d): absolute %d+1 >= length %d", ErrOutOfRange, off, abs, v.length)
	}
	return uint16(v.buf[abs]) | uint16(v.buf[abs+1])<<8, nil
}

// WriteU16LEAt writes a little-endian 16-bit integer at base+off.
func (v View) WriteU16LEAt(off int, val uint16) error {
	abs := v.base + off
	if abs < 0 || abs+1 >= v.length {
		return fmt.Errorf("%w: write_u16_le_at(%d): absolute %d+1 >= length %d", ErrOutOfRange, off, abs, v.length)
	}
	v.buf[abs] = byte(val)
	v.buf[abs+1] = byte(val >> 8)
	return nil
}

// U32LEAt reads a little-endian 32-bit integer at base+off.
func (v View) U32LEAt(off int) (uint32, error) {
	abs := v.base + off
	if abs < 0 || abs+3 >= v.length {
		return 0, fmt.Errorf("%w: u32_le_at(%d): absolute %d+3 >= length %d", ErrOutOfRange, off, abs, v.length)
	}
	return uint32(v.buf[abs]) | uint32(v.buf[abs+1])<<8 | uint32(v.buf[abs+2])<<16 | uint32(v.buf[abs+3])<<24, nil
}

// WriteU32LEAt writes a little-endian 32-bit integer at base+off.
func (v View) WriteU32LEAt(off int, val uint32) error {
	abs := v.base + off
	if abs < 0 || abs+3 >= v.length {
		return fmt.Errorf("%w: write_u32_le_at(%d): absolute %d+3 >= length %d", ErrOutOfRange, off, abs, v.length)
	}
	v.buf[abs] = byte(val)
	v.buf[abs+1] = byte(val >> 8)
	v.buf[abs+2] = byte(val >> 16)
	v.buf[abs+3] = byte(val >> 24)
	return nil
}

// BitsAt reads n (1..32) bits MSB-first starting at (base+byteOff, bitOff).
func (v View) BitsAt(byteOff int, bitOff uint8, n int) (uint32, error) {
	c := bitio.New(v.buf)
	if err := c.SeekAbsolute(uint32(v.base+byteOff), bitOff); err != nil {
		return 0, err
	}
	return c.ReadBits(n)
}

// WriteBitsAt writes the low n (1..32) bits of val MSB-first starting at
// (base+byteOff, bitOff).
func (v View) WriteBitsAt(byteOff int, bitOff uint8, n int, val uint32) error {
	c := bitio.New(v.buf)
	if err := c.SeekAbsolute(uint32(v.base+byteOff), bitOff); err != nil {
		return err
	}
	return c.WriteBits(val, n)
}

// BytesAt reads n raw bytes starting at base+off, for fixed ASCII windows.
func (v View) BytesAt(off, n int) ([]byte, error) {
	abs := v.base + off
	if abs < 0 || abs+n > v.length {
		return nil, fmt.Errorf("%w: bytes_at(%d,%d): absolute range exceeds length %d", ErrOutOfRange, off, n, v.length)
	}
	out := make([]byte, n)
	copy(out, v.buf[abs:abs+n])
	return out, nil
}

// WriteBytesAt writes data (truncated/zero-padded to n bytes) starting at base+off.
func (v View) WriteBytesAt(off, n int, data []byte) error {
	abs := v.base + off
	if abs < 0 || abs+n > v.length {
		return fmt.Errorf("%w: write_bytes_at(%d,%d): absolute range exceeds length %d", ErrOutOfRange, off, n, v.length)
	}
	for i := 0; i < n; i++ {
		if i < len(data) {
			v.buf[abs+i] = data[i]
		} else {
			v.buf[abs+i] = 0
		}
	}
	return nil
}
