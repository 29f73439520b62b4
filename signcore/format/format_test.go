package format

import (
	"testing"

	"xymsign/signcore"
)

func TestCollapseASCIIPassesThroughPrintable(t *testing.T) {
	got := collapseASCII([]byte("hello"))
	if got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestCollapseASCIISingleNonPrintable(t *testing.T) {
	got := collapseASCII([]byte{'a', 0x01, 'b'})
	if got != "a?b" {
		t.Fatalf("got %q, want a?b", got)
	}
}

// A run of two non-printable bytes collapses to a single '?'.
func TestCollapseASCIITwoByteRunProducesOneMarker(t *testing.T) {
	got := collapseASCII([]byte{'a', 0x01, 0x02, 'b'})
	if got != "a?b" {
		t.Fatalf("got %q, want a?b (one marker for the whole run)", got)
	}
}

func TestCollapseASCIIThreeByteRunProducesOneMarker(t *testing.T) {
	got := collapseASCII([]byte{0x01, 0x02, 0x03})
	// the whole run of three collapses to one '?'.
	if got != "?" {
		t.Fatalf("got %q, want ?", got)
	}
}

func TestXYMAmountStripsTrailingZeros(t *testing.T) {
	if got := xymAmount(1000000, 6, "XYM"); got != "1 XYM" {
		t.Fatalf("got %q", got)
	}
	if got := xymAmount(1500000, 6, "XYM"); got != "1.5 XYM" {
		t.Fatalf("got %q", got)
	}
	if got := xymAmount(1, 6, "XYM"); got != "0.000001 XYM" {
		t.Fatalf("got %q", got)
	}
}

func TestXYMAmountZeroDivisibility(t *testing.T) {
	if got := xymAmount(42, 0, ""); got != "42" {
		t.Fatalf("got %q", got)
	}
	if got := xymAmount(42, 0, "micro"); got != "42 micro" {
		t.Fatalf("got %q", got)
	}
}

func TestDurationLabel(t *testing.T) {
	if got := durationLabel(0); got != "Unlimited" {
		t.Fatalf("got %q", got)
	}
	// 1 day, 2 hours, 3 minutes = 2880 + 2*120 + 3*2 = 3126 blocks.
	if got := durationLabel(2880 + 2*120 + 3*2); got != "1d 2h 3m" {
		t.Fatalf("got %q", got)
	}
}

func TestLabelKnownAndUnknownField(t *testing.T) {
	f := signcore.Field{ID: signcore.FieldTxFee, Type: signcore.TypeXYM}
	if got := Label(f); got != "Fee" {
		t.Fatalf("got %q, want Fee", got)
	}

	unknown := signcore.Field{ID: 250, Type: 250}
	if got := Label(unknown); got != "Unknown Field" {
		t.Fatalf("got %q, want Unknown Field", got)
	}
}

func TestValueEmptyMessageRendersPlaceholder(t *testing.T) {
	f := signcore.Field{ID: signcore.FieldMessage, Type: signcore.TypeMessage, Offset: 0, Length: 0}
	got := Value(f, nil)
	if got != "<empty msg>" {
		// messageValue itself already renders a non-empty placeholder, so
		// the outer empty-to-space fallback never triggers for messages;
		// assert the placeholder directly.
		t.Fatalf("got %q", got)
	}
}

func TestScreenRendersTransferInOrder(t *testing.T) {
	s := signcore.NewSession()
	path := signcore.EncodeBIP32Path([]uint32{44, 4343, 0, 0, 0})

	// 36-byte common header + 16-byte fee envelope + 24-byte recipient
	// (first byte a recognized network byte) + zero message size/mosaic
	// count/reserved tail: a minimal, fully parseable transfer.
	tx := make([]byte, 36+16+24+2+1+5)
	tx[32] = 0x01
	tx[33] = byte(signcore.NetworkTestnet)
	tx[34] = byte(uint16(signcore.TxTransfer) & 0xFF)
	tx[35] = byte(uint16(signcore.TxTransfer) >> 8)
	tx[36+16] = byte(signcore.NetworkTestnet)

	data := append(append([]byte{}, path...), tx...)
	if err := s.HandleFirstFrame(0x00, signcore.P2Ed25519, data); err != nil {
		t.Fatalf("HandleFirstFrame: %v", err)
	}

	lines := Screen(s)
	if len(lines) == 0 {
		t.Fatalf("expected at least one rendered line")
	}
	if lines[0].Label != "Transaction Type" || lines[0].Value != "Transfer" {
		t.Fatalf("first line = %+v, want Transaction Type: Transfer", lines[0])
	}
	// Fee is always the last field a standalone transaction's dispatcher
	// appends.
	last := lines[len(lines)-1]
	if last.Label != "Fee" {
		t.Fatalf("last line = %+v, want Fee", last)
	}
}

func TestMosaicValueNativeAndForeign(t *testing.T) {
	data := make([]byte, 16)
	// native mosaic id, amount = 2_000_000 micro-XYM = 2 XYM.
	putU64LE(data[0:8], signcore.NativeMosaicID)
	putU64LE(data[8:16], 2_000_000)
	f := signcore.Field{Type: signcore.TypeMosaicCurrency}
	if got := renderValue(f, data); got != "2 XYM" {
		t.Fatalf("got %q, want 2 XYM", got)
	}

	foreign := make([]byte, 16)
	putU64LE(foreign[0:8], 0x1234)
	putU64LE(foreign[8:16], 7)
	if got := renderValue(f, foreign); got != "7 micro 0x0000000000001234" {
		t.Fatalf("got %q", got)
	}
}

func putU64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
