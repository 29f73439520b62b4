package signcore

// parseAggregate handles both roles of an aggregate transaction. An
// originator (signingLen == 84) has a real aggregate header — a 32-byte
// inner-transaction hash, a u32 payload size, and 4 reserved bytes —
// followed by the inner-transaction loop. A cosigner (signingLen ==
// hashLength) has sent nothing beyond the common header and fee envelope:
// the "hash" field is read from the scratch area's first 32 bytes (the
// generation-hash position, which in the cosigning encoding holds the
// hash being cosigned instead), and no inner-transaction parsing occurs.
func parseAggregate(cur *cursor, fa *fieldArray, signingLen int) error {
	feeStart := cur.pos
	if cur.take(feeEnvelopeLength) == nil {
		return perr(ErrNotEnoughData, "aggregate fee envelope")
	}

	if signingLen == hashLength {
		if err := fa.appendRaw(FieldAggregateHash, TypeHash256, 0, hashLength); err != nil {
			return err
		}
	} else {
		hashStart := cur.pos
		if cur.take(hashLength) == nil {
			return perr(ErrNotEnoughData, "aggregate inner hash")
		}
		payloadSize, ok := cur.takeU32()
		if !ok {
			return perr(ErrNotEnoughData, "aggregate payload size")
		}
		if cur.take(4) == nil { // reserved
			return perr(ErrNotEnoughData, "aggregate reserved")
		}
		if err := fa.appendRaw(FieldAggregateHash, TypeHash256, hashStart, hashLength); err != nil {
			return err
		}
		if !cur.canRead(int(payloadSize)) {
			return perr(ErrInvalidData, "aggregate payload size exceeds buffer")
		}
		if err := parseInnerTransactions(cur, fa, int(payloadSize)); err != nil {
			return err
		}
	}

	return fa.appendRaw(FieldTxFee, TypeXYM, feeStart, 8)
}

// parseInnerTransactions repeatedly reads a 48-byte inner header (size, 4
// reserved, 32-byte signer public key, 4 reserved, version, network,
// 2-byte inner type), dispatches the inner body, and advances to the next
// 8-byte boundary, until payloadSize bytes have been consumed.
func parseInnerTransactions(cur *cursor, fa *fieldArray, payloadSize int) error {
	payloadStart := cur.pos
	for cur.pos-payloadStart < payloadSize {
		entryStart := cur.pos
		if cur.take(4) == nil { // declared inner size (informational only; position tracking is authoritative)
			return perr(ErrNotEnoughData, "inner header size")
		}
		if cur.take(4) == nil { // reserved
			return perr(ErrNotEnoughData, "inner header reserved")
		}
		if cur.take(publicKeyLength) == nil { // signer public key
			return perr(ErrNotEnoughData, "inner header signer")
		}
		if cur.take(4) == nil { // reserved
			return perr(ErrNotEnoughData, "inner header reserved")
		}
		if cur.take(2) == nil { // version + network
			return perr(ErrNotEnoughData, "inner header version/network")
		}
		innerTypeStart := cur.pos
		rawType, ok := cur.takeU16()
		if !ok {
			return perr(ErrNotEnoughData, "inner transaction type")
		}
		innerType := TxType(rawType)

		if err := fa.appendRaw(FieldInnerTransactionType, TypeUint16, innerTypeStart, 2); err != nil {
			return err
		}
		if innerType.isAggregate() {
			return perr(ErrInvalidData, "nested aggregate forbidden")
		}
		if err := parseBody(cur, fa, innerType, true); err != nil {
			return err
		}

		consumed := cur.pos - payloadStart
		if consumed > payloadSize {
			return perr(ErrInvalidData, "inner transaction overruns payload size")
		}
		// Pad to the next 8-byte boundary, unless this was the final inner
		// transaction (no trailing padding past the declared payload).
		if consumed < payloadSize {
			entryLen := cur.pos - entryStart
			pad := alignUp8(entryLen) - entryLen
			if pad > 0 && !cur.seek(pad) {
				return perr(ErrNotEnoughData, "inner transaction alignment padding")
			}
		}
	}
	if cur.pos-payloadStart != payloadSize {
		return perr(ErrInvalidData, "inner transaction payload size mismatch")
	}
	return nil
}

func alignUp8(n int) int {
	return (n + 7) &^ 7
}
