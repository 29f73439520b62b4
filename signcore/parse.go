package signcore

// Parse consumes the session's accumulated raw transaction bytes and
// populates its field array and signing length. It is the sole entry point
// the packet-assembly state machine calls once the final frame has
// arrived. Every bounds violation surfaces as a *ParseError; nothing here
// panics on malformed input.
func Parse(s *Session) error {
	raw := s.RawTx()
	if len(raw) < commonHeaderLength {
		return perr(ErrNotEnoughData, "common header")
	}

	fa := newFieldArray(raw)
	cur := newCursor(raw)

	// Generation hash is read but not itself displayed; it is consulted
	// below (via raw[:hashLength]) only for aggregate signing-length
	// derivation.
	if cur.take(hashLength) == nil {
		return perr(ErrNotEnoughData, "generation hash")
	}
	if _, ok := cur.takeU8(); !ok { // version
		return perr(ErrNotEnoughData, "version")
	}
	if _, ok := cur.takeU8(); !ok { // network type
		return perr(ErrNotEnoughData, "network type")
	}
	rawType, ok := cur.takeU16()
	if !ok {
		return perr(ErrNotEnoughData, "transaction type")
	}
	txType := TxType(rawType)

	s.signingLen = signingLength(txType, raw, s.bip32Path)

	typeStart := cur.pos - 2
	if err := fa.append(FieldTransactionType, TypeUint16, typeStart, 2, true); err != nil {
		return err
	}

	var err error
	if txType.isAggregate() {
		err = parseAggregate(cur, fa, s.signingLen)
	} else {
		err = dispatchStandalone(cur, fa, txType)
	}
	if err != nil {
		return err
	}

	s.fields = fa
	return nil
}

// signingLength implements the asymmetric signing-length rule of §4.3: for
// aggregate transactions, whether the leading 32 bytes of raw match the
// active network's generation hash distinguishes an originator (sign a
// fixed 84-byte prefix) from a cosigner (sign the 32-byte hash alone). For
// every other type, the signing length is the full raw length.
func signingLength(txType TxType, raw []byte, bip32Path []uint32) int {
	if !txType.isAggregate() {
		return len(raw)
	}
	genHash := generationHashFor(bip32Path)
	if len(raw) >= hashLength && bytesEqualHash(genHash, raw[:hashLength]) {
		return 84
	}
	return hashLength
}

// dispatchStandalone handles the fee envelope for a non-inner transaction
// and dispatches to the type-specific body parser, appending the trailing
// Fee field on success.
func dispatchStandalone(cur *cursor, fa *fieldArray, txType TxType) error {
	feeStart := cur.pos
	feeData := cur.take(feeEnvelopeLength)
	if feeData == nil {
		return perr(ErrNotEnoughData, "fee envelope")
	}
	maxFeeOffset := feeStart

	if err := parseBody(cur, fa, txType, false); err != nil {
		return err
	}
	return fa.append(FieldTxFee, TypeXYM, maxFeeOffset, 8, true)
}

// parseBody dispatches a transaction body (standalone or inner) to its
// type-specific parser. inner selects the fee-envelope-less variant used
// inside an aggregate's inner-transaction loop.
func parseBody(cur *cursor, fa *fieldArray, txType TxType, inner bool) error {
	switch txType {
	case TxTransfer:
		return parseTransfer(cur, fa)
	case TxMosaicDefinition:
		return parseMosaicDefinition(cur, fa)
	case TxMosaicSupplyChange:
		return parseMosaicSupplyChange(cur, fa)
	case TxModifyMultisigAccount:
		return parseMultisigModification(cur, fa)
	case TxRegisterNamespace:
		return parseNamespaceRegistration(cur, fa)
	case TxAccountMetadata:
		return parseMetadata(cur, fa, false)
	case TxMosaicMetadata:
		return parseMetadata(cur, fa, true)
	case TxNamespaceMetadata:
		return parseMetadata(cur, fa, true)
	case TxAddressAlias:
		return parseAlias(cur, fa, false)
	case TxMosaicAlias:
		return parseAlias(cur, fa, true)
	case TxAccountAddressRestriction:
		return parseRestriction(cur, fa, restrictionAddress)
	case TxAccountMosaicRestriction:
		return parseRestriction(cur, fa, restrictionMosaic)
	case TxAccountOperationRestriction:
		return parseRestriction(cur, fa, restrictionOperation)
	case TxAccountKeyLink:
		return parseKeyLink(cur, fa, FieldLinkedAccountKey)
	case TxNodeKeyLink:
		return parseKeyLink(cur, fa, FieldLinkedNodeKey)
	case TxVRFKeyLink:
		return parseKeyLink(cur, fa, FieldLinkedVRFKey)
	case TxVotingKeyLink:
		return parseVotingKeyLink(cur, fa)
	case TxHashLock:
		return parseHashLock(cur, fa)
	case TxAggregateComplete, TxAggregateBonded:
		if inner {
			return perr(ErrInvalidData, "nested aggregate forbidden")
		}
		return perr(ErrInvalidData, "aggregate must be outermost")
	default:
		return perr(ErrInvalidData, "unknown transaction type")
	}
}
