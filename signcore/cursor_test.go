package signcore

import "testing"

func TestCursorTakePrimitives(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}
	c := newCursor(raw)

	u8, ok := c.takeU8()
	if !ok || u8 != 0x01 {
		t.Fatalf("takeU8: got %v,%v", u8, ok)
	}
	u16, ok := c.takeU16()
	if !ok || u16 != 0x0302 {
		t.Fatalf("takeU16: got %#x,%v", u16, ok)
	}
	u32, ok := c.takeU32()
	if !ok || u32 != 0x07060504 {
		t.Fatalf("takeU32: got %#x,%v", u32, ok)
	}
	u64, ok := c.takeU64()
	if !ok || u64 != 0x0F0E0D0C0B0A0908 {
		t.Fatalf("takeU64: got %#x,%v", u64, ok)
	}
}

func TestCursorTakeFailsPastEnd(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02})
	if _, ok := c.takeU32(); ok {
		t.Fatalf("expected takeU32 to fail on a 2-byte buffer")
	}
	// cursor position must not have moved on a failed read.
	if c.pos != 0 {
		t.Fatalf("cursor advanced on failed read: pos=%d", c.pos)
	}
}

func TestCursorTakeAtReportsOffsets(t *testing.T) {
	c := newCursor([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	_, _ = c.takeU8() // skip first byte
	off, length, ok := c.takeAt(2)
	if !ok || off != 1 || length != 2 {
		t.Fatalf("takeAt: got off=%d length=%d ok=%v", off, length, ok)
	}
}

func TestCursorSeek(t *testing.T) {
	c := newCursor(make([]byte, 10))
	if !c.seek(4) {
		t.Fatalf("seek within bounds failed")
	}
	if c.pos != 4 {
		t.Fatalf("pos after seek = %d, want 4", c.pos)
	}
	if c.seek(100) {
		t.Fatalf("seek past end unexpectedly succeeded")
	}
	if c.seek(-1) {
		t.Fatalf("negative seek unexpectedly succeeded")
	}
}

func TestTakeBIP32PathRoundtrip(t *testing.T) {
	path := []uint32{44, 4343, 0, 0, 0}
	wire := EncodeBIP32Path(path)

	got, ok := DecodeBIP32Path(wire)
	if !ok {
		t.Fatalf("DecodeBIP32Path failed")
	}
	if len(got) != len(path) {
		t.Fatalf("path length = %d, want %d", len(got), len(path))
	}
	for i := range path {
		if got[i] != path[i] {
			t.Fatalf("component %d = %d, want %d", i, got[i], path[i])
		}
	}
}

func TestTakeBIP32PathRejectsEmptyAndOverlong(t *testing.T) {
	zero := []byte{0x00}
	if _, ok := DecodeBIP32Path(zero); ok {
		t.Fatalf("expected zero-length path to be rejected")
	}

	overlong := make([]byte, 1+4*(MaxBIP32Path+1))
	overlong[0] = byte(MaxBIP32Path + 1)
	if _, ok := DecodeBIP32Path(overlong); ok {
		t.Fatalf("expected over-long path to be rejected")
	}
}

func TestTakeBIP32PathIsBigEndian(t *testing.T) {
	// length=1, component=0x0000002C (44), encoded big-endian.
	wire := []byte{0x01, 0x00, 0x00, 0x00, 0x2C}
	got, ok := DecodeBIP32Path(wire)
	if !ok || len(got) != 1 || got[0] != 44 {
		t.Fatalf("got %v, ok=%v", got, ok)
	}
}
