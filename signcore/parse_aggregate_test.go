package signcore

import "testing"

// minimalInnerTransfer builds one 48-byte inner header plus a zero-mosaic,
// zero-message transfer body — 80 bytes total, already 8-byte aligned.
func minimalInnerTransfer() []byte {
	buf := make([]byte, 48)
	buf[46] = byte(TxTransfer & 0xFF)
	buf[47] = byte(uint16(TxTransfer) >> 8)

	body := make([]byte, addressLength+2+1+5)
	body[0] = byte(NetworkTestnet)
	return append(buf, body...)
}

func buildAggregateOriginator(path []uint32, inner []byte) []byte {
	genHash := generationHashFor(path)
	raw := buildCommonHeader(genHash, TxAggregateComplete, NetworkTestnet)
	raw = append(raw, make([]byte, feeEnvelopeLength)...) // fee envelope
	raw = append(raw, make([]byte, hashLength)...)        // aggregate inner-tx hash

	var size [4]byte
	payloadSize := uint32(len(inner))
	size[0] = byte(payloadSize)
	size[1] = byte(payloadSize >> 8)
	size[2] = byte(payloadSize >> 16)
	size[3] = byte(payloadSize >> 24)
	raw = append(raw, size[:]...)
	raw = append(raw, make([]byte, 4)...) // reserved
	raw = append(raw, inner...)
	return raw
}

func TestParseAggregateOriginatorWithOneInnerTransfer(t *testing.T) {
	path := []uint32{44, 4343}
	s := NewSession()
	s.bip32Path = path
	raw := buildAggregateOriginator(path, minimalInnerTransfer())
	s.appendRawTx(raw)

	if err := Parse(s); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var sawInnerType, sawFee bool
	for _, f := range s.Fields() {
		switch f.ID {
		case FieldInnerTransactionType:
			sawInnerType = true
		case FieldTxFee:
			sawFee = true
		}
	}
	if !sawInnerType {
		t.Fatalf("expected an inner transaction type field")
	}
	if !sawFee {
		t.Fatalf("expected a fee field")
	}
}

func TestParseAggregateRejectsNestedAggregate(t *testing.T) {
	path := []uint32{44, 4343}
	nestedInner := make([]byte, 48)
	nestedInner[46] = byte(TxAggregateComplete & 0xFF)
	nestedInner[47] = byte(uint16(TxAggregateComplete) >> 8)

	s := NewSession()
	s.bip32Path = path
	raw := buildAggregateOriginator(path, nestedInner)
	s.appendRawTx(raw)

	err := Parse(s)
	if err == nil {
		t.Fatalf("expected nested-aggregate error")
	}
	if code, ok := CodeOf(err); !ok || code != ErrInvalidData {
		t.Fatalf("want ErrInvalidData, got %v (ok=%v)", code, ok)
	}
}

func TestParseAggregateRejectsPayloadSizeExceedingBuffer(t *testing.T) {
	path := []uint32{44, 4343}
	genHash := generationHashFor(path)
	raw := buildCommonHeader(genHash, TxAggregateComplete, NetworkTestnet)
	raw = append(raw, make([]byte, feeEnvelopeLength)...)
	raw = append(raw, make([]byte, hashLength)...)
	raw = append(raw, 0xFF, 0xFF, 0x00, 0x00) // payload size far larger than remaining buffer
	raw = append(raw, make([]byte, 4)...)     // reserved

	s := NewSession()
	s.bip32Path = path
	s.appendRawTx(raw)

	err := Parse(s)
	if err == nil {
		t.Fatalf("expected payload-size-exceeds-buffer error")
	}
	if code, ok := CodeOf(err); !ok || code != ErrInvalidData {
		t.Fatalf("want ErrInvalidData, got %v (ok=%v)", code, ok)
	}
}

func TestParseAggregateCosignerSkipsInnerTransactions(t *testing.T) {
	path := []uint32{44, 4343}
	var mismatchedHash [32]byte
	mismatchedHash[0] = 0xFF
	raw := buildCommonHeader(mismatchedHash, TxAggregateBonded, NetworkTestnet)
	raw = append(raw, make([]byte, feeEnvelopeLength)...)

	s := NewSession()
	s.bip32Path = path
	s.appendRawTx(raw)

	if err := Parse(s); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, f := range s.Fields() {
		if f.ID == FieldInnerTransactionType {
			t.Fatalf("cosigner encoding must not parse inner transactions")
		}
	}
}
