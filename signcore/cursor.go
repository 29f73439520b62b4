package signcore

import "encoding/binary"

// cursor is a bounds-checked forward reader over a borrowed byte range.
// It never copies; take returns a slice into the underlying array.
type cursor struct {
	b   []byte
	pos int
}

func newCursor(b []byte) *cursor {
	return &cursor{b: b, pos: 0}
}

func (c *cursor) remaining() int {
	if c.pos >= len(c.b) {
		return 0
	}
	return len(c.b) - c.pos
}

// canRead reports whether n more bytes can be read without overflowing the buffer.
func (c *cursor) canRead(n int) bool {
	if n < 0 {
		return false
	}
	return c.remaining() >= n
}

// take returns the next n bytes and advances the cursor, or nil if n bytes
// are not available. This is the sole primitive the deserializer uses to
// interpret a fixed-layout record in place.
func (c *cursor) take(n int) []byte {
	if !c.canRead(n) {
		return nil
	}
	start := c.pos
	c.pos += n
	return c.b[start:c.pos]
}

// seek advances the cursor by n, reporting false on overflow or underflow
// of the valid range.
func (c *cursor) seek(n int) bool {
	if n < 0 {
		return false
	}
	if c.pos+n < c.pos || c.pos+n > len(c.b) {
		return false
	}
	c.pos += n
	return true
}

// takeAt behaves like take but reports the (offset, length) of the
// returned range within the backing array instead of the slice itself,
// for callers that record a field pointing back into scratch.
func (c *cursor) takeAt(n int) (offset, length int, ok bool) {
	if !c.canRead(n) {
		return 0, 0, false
	}
	offset = c.pos
	c.pos += n
	return offset, n, true
}

func (c *cursor) takeU8() (byte, bool) {
	b := c.take(1)
	if b == nil {
		return 0, false
	}
	return b[0], true
}

func (c *cursor) takeI8() (int8, bool) {
	b, ok := c.takeU8()
	return int8(b), ok
}

func (c *cursor) takeU16() (uint16, bool) {
	b := c.take(2)
	if b == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

func (c *cursor) takeU32() (uint32, bool) {
	b := c.take(4)
	if b == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (c *cursor) takeU64() (uint64, bool) {
	b := c.take(8)
	if b == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

// takeBIP32Path consumes a length-prefixed BIP32 path: one length byte L
// followed by L big-endian 32-bit components. Endianness note: this is the
// one field on the wire that is big-endian, unlike the little-endian
// transaction body format read by the other take* methods.
func (c *cursor) takeBIP32Path(maxComponents int) ([]uint32, bool) {
	n, ok := c.takeU8()
	if !ok {
		return nil, false
	}
	if n == 0 || int(n) > maxComponents {
		return nil, false
	}
	path := make([]uint32, n)
	for i := range path {
		b := c.take(4)
		if b == nil {
			return nil, false
		}
		path[i] = binary.BigEndian.Uint32(b)
	}
	return path, true
}

// EncodeBIP32Path re-serializes a path in the same length-prefixed,
// big-endian-component wire format takeBIP32Path consumes.
func EncodeBIP32Path(path []uint32) []byte {
	out := make([]byte, 1+4*len(path))
	out[0] = byte(len(path))
	for i, c := range path {
		binary.BigEndian.PutUint32(out[1+4*i:], c)
	}
	return out
}

// DecodeBIP32Path reads a length-prefixed BIP32 path from the front of data
// and reports whether the full path was present within MaxBIP32Path
// components. Exported for GET_PUBLIC_KEY; any bytes after the path (such
// as a trailing network-type byte) are ignored.
func DecodeBIP32Path(data []byte) ([]uint32, bool) {
	c := newCursor(data)
	return c.takeBIP32Path(MaxBIP32Path)
}
