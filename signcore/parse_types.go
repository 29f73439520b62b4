package signcore

// Each parser below reads a fixed-layout header via the cursor's take
// primitive and appends fields in the order display expects. A null take
// short-circuits to NOT_ENOUGH_DATA, including a take driven by a count or
// size read from the wire that runs past the end of the buffer (such an
// out-of-range count or size is not reported separately as INVALID_DATA);
// an array over-append surfaces as TOO_MANY_FIELDS. None of these parsers handle the fee envelope — that is
// the dispatcher's job (dispatchStandalone) for standalone transactions,
// and omitted entirely for inner transactions.

const harvestingPageSize = 16

func parseTransfer(cur *cursor, fa *fieldArray) error {
	recipStart := cur.pos
	recipient := cur.take(addressLength)
	if recipient == nil {
		return perr(ErrNotEnoughData, "transfer recipient")
	}
	messageSize, ok := cur.takeU16()
	if !ok {
		return perr(ErrNotEnoughData, "transfer message size")
	}
	mosaicCountStart := cur.pos
	mosaicCount, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "transfer mosaic count")
	}
	if cur.take(5) == nil { // reserved
		return perr(ErrNotEnoughData, "transfer reserved")
	}

	recipientType := TypeAddress
	if recipient[0] != byte(NetworkMainnet) && recipient[0] != byte(NetworkTestnet) {
		recipientType = TypeUint64 // namespace-alias ID view over bytes 2..9
		if err := fa.appendRaw(FieldRecipientAddress, TypeUint64, recipStart+2, 8); err != nil {
			return err
		}
	} else {
		if err := fa.appendRaw(FieldRecipientAddress, recipientType, recipStart, addressLength); err != nil {
			return err
		}
	}

	if err := parseTransferMosaics(cur, fa, int(mosaicCount), mosaicCountStart); err != nil {
		return err
	}

	return parseTransferMessage(cur, fa, int(messageSize))
}

func parseTransferMosaics(cur *cursor, fa *fieldArray, count, countOffset int) error {
	if count == 1 {
		idStart := cur.pos
		id, ok := cur.takeU64()
		if !ok {
			return perr(ErrNotEnoughData, "mosaic id")
		}
		amountStart := cur.pos
		if cur.take(8) == nil {
			return perr(ErrNotEnoughData, "mosaic amount")
		}
		if !isNativeMosaic(id) {
			// Single-mosaic, non-native: count is shown, with a notice that
			// divisibility/levy cannot be resolved on-device.
			if err := fa.appendRaw(FieldMosaicCount, TypeUint8, countOffset, 1); err != nil {
				return err
			}
			if err := fa.appendRaw(FieldUnknownMosaic, TypeStr, idStart, 0); err != nil {
				return err
			}
		}
		// Single native mosaic: the count field is suppressed.
		return fa.appendRaw(FieldMosaicAmount, TypeMosaicCurrency, idStart, amountStart+8-idStart)
	}

	if count > 0 {
		if err := fa.appendRaw(FieldMosaicCount, TypeUint8, countOffset, 1); err != nil {
			return err
		}
	}
	for i := 0; i < count; i++ {
		start := cur.pos
		if cur.take(16) == nil {
			return perr(ErrNotEnoughData, "mosaic entry")
		}
		if err := fa.appendRaw(FieldMosaicAmount, TypeMosaicCurrency, start, 16); err != nil {
			return err
		}
	}
	return nil
}

func parseTransferMessage(cur *cursor, fa *fieldArray, messageSize int) error {
	if messageSize == 0 {
		return fa.appendRaw(FieldMessage, TypeMessage, cur.pos, 0)
	}
	if messageSize < 1 {
		return perr(ErrInvalidData, "message size")
	}
	msgTypeStart := cur.pos
	msgType, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "message type")
	}
	if err := fa.appendRaw(FieldMessageType, TypeUint8, msgTypeStart, 1); err != nil {
		return err
	}
	remaining := messageSize - 1

	if msgType == 0xFE {
		return parseHarvestingMessage(cur, fa, remaining)
	}
	bodyStart := cur.pos
	if cur.take(remaining) == nil {
		return perr(ErrNotEnoughData, "message body")
	}
	return fa.appendRaw(FieldMessage, TypeMessage, bodyStart, remaining)
}

// parseHarvestingMessage splits a persistent-delegated-harvesting message
// into up to three paginated hex fields of harvestingPageSize bytes each
// (the last absorbing any remainder), matching the device's small-screen
// pagination for this message type.
func parseHarvestingMessage(cur *cursor, fa *fieldArray, length int) error {
	bodyStart := cur.pos
	if cur.take(length) == nil {
		return perr(ErrNotEnoughData, "harvesting message")
	}
	if length <= harvestingPageSize {
		return fa.appendRaw(FieldHarvestingMessage, TypeHexMessage, bodyStart, length)
	}
	ids := [3]FieldID{FieldHarvestingMessage1, FieldHarvestingMessage2, FieldHarvestingMessage3}
	offset := bodyStart
	remaining := length
	for i := 0; i < 3 && remaining > 0; i++ {
		n := harvestingPageSize
		if i == 2 || n > remaining {
			n = remaining
		}
		if err := fa.appendRaw(ids[i], TypeHexMessage, offset, n); err != nil {
			return err
		}
		offset += n
		remaining -= n
	}
	return nil
}

// Layout: id(8) duration(8) nonce(4) flags(1) divisibility(1).
func parseMosaicDefinition(cur *cursor, fa *fieldArray) error {
	if err := fa.appendN(cur, FieldMosaicID, TypeUint64, 8); err != nil {
		return err
	}
	durStart := cur.pos
	if cur.take(8) == nil {
		return perr(ErrNotEnoughData, "mosaic duration")
	}
	if cur.take(4) == nil { // nonce
		return perr(ErrNotEnoughData, "mosaic nonce")
	}
	flagsStart := cur.pos
	if cur.take(1) == nil {
		return perr(ErrNotEnoughData, "mosaic flags")
	}
	if err := fa.appendN(cur, FieldMosaicDivisibility, TypeUint8, 1); err != nil {
		return err
	}
	if err := fa.appendRaw(FieldDuration, TypeUint64, durStart, 8); err != nil {
		return err
	}
	if err := fa.appendRaw(FieldMosaicTransferable, TypeUint8, flagsStart, 1); err != nil {
		return err
	}
	if err := fa.appendRaw(FieldMosaicSupplyMutable, TypeUint8, flagsStart, 1); err != nil {
		return err
	}
	return fa.appendRaw(FieldMosaicRestrictable, TypeUint8, flagsStart, 1)
}

func parseMosaicSupplyChange(cur *cursor, fa *fieldArray) error {
	if err := fa.appendN(cur, FieldMosaicID, TypeUint64, 8); err != nil {
		return err
	}
	amountStart := cur.pos
	if cur.take(8) == nil {
		return perr(ErrNotEnoughData, "supply change amount")
	}
	if err := fa.appendN(cur, FieldMosaicSupplyAction, TypeUint8, 1); err != nil {
		return err
	}
	return fa.appendRaw(FieldMosaicChangeAmount, TypeUint64, amountStart, 8)
}

func parseMultisigModification(cur *cursor, fa *fieldArray) error {
	removalStart := cur.pos
	if cur.take(1) == nil {
		return perr(ErrNotEnoughData, "multisig removal delta")
	}
	approvalStart := cur.pos
	if cur.take(1) == nil {
		return perr(ErrNotEnoughData, "multisig approval delta")
	}
	additionsStart := cur.pos
	additions, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "multisig additions count")
	}
	deletionsStart := cur.pos
	deletions, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "multisig deletions count")
	}
	if cur.take(4) == nil { // reserved
		return perr(ErrNotEnoughData, "multisig reserved")
	}

	if err := fa.appendRaw(FieldMultisigAddAddrCount, TypeUint8, additionsStart, 1); err != nil {
		return err
	}
	for i := 0; i < int(additions); i++ {
		if err := fa.appendN(cur, FieldAddress, TypeAddress, addressLength); err != nil {
			return err
		}
	}
	if err := fa.appendRaw(FieldMultisigDelAddrCount, TypeUint8, deletionsStart, 1); err != nil {
		return err
	}
	for i := 0; i < int(deletions); i++ {
		if err := fa.appendN(cur, FieldAddress, TypeAddress, addressLength); err != nil {
			return err
		}
	}
	if err := fa.appendRaw(FieldMultisigApprovalDelta, TypeInt8, approvalStart, 1); err != nil {
		return err
	}
	return fa.appendRaw(FieldMultisigRemovalDelta, TypeInt8, removalStart, 1)
}

func parseNamespaceRegistration(cur *cursor, fa *fieldArray) error {
	durOrParentStart := cur.pos
	if cur.take(8) == nil {
		return perr(ErrNotEnoughData, "namespace duration/parent")
	}
	regTypeStart := cur.pos
	regType, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "namespace registration type")
	}
	nameSize, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "namespace name size")
	}

	if err := fa.appendRaw(FieldNamespaceRegType, TypeUint8, regTypeStart, 1); err != nil {
		return err
	}
	if err := fa.appendN(cur, FieldNamespaceName, TypeStr, int(nameSize)); err != nil {
		return err
	}
	id := FieldDuration
	if regType != 0 {
		id = FieldParentID
	}
	return fa.appendRaw(id, TypeUint64, durOrParentStart, 8)
}

// metadata covers account / mosaic / namespace metadata: a shared shape of
// target address, scoped metadata key, an optional target id (present for
// mosaic/namespace, absent for account), a value-size delta, a value size,
// and the value bytes.
func parseMetadata(cur *cursor, fa *fieldArray, hasTargetID bool) error {
	if err := fa.appendN(cur, FieldMetadataTargetAddress, TypeAddress, addressLength); err != nil {
		return err
	}
	keyStart := cur.pos
	if cur.take(8) == nil {
		return perr(ErrNotEnoughData, "metadata key")
	}
	if hasTargetID {
		if err := fa.appendN(cur, FieldMosaicID, TypeUint64, 8); err != nil {
			return err
		}
	}
	if err := fa.appendRaw(FieldMetadataKey, TypeUint64, keyStart, 8); err != nil {
		return err
	}
	deltaStart := cur.pos
	if cur.take(2) == nil {
		return perr(ErrNotEnoughData, "metadata value-size delta")
	}
	valueSize, ok := cur.takeU16()
	if !ok {
		return perr(ErrNotEnoughData, "metadata value size")
	}
	if err := fa.appendN(cur, FieldMetadataValue, TypeMessage, int(valueSize)); err != nil {
		return err
	}
	return fa.appendRaw(FieldValueSizeDelta, TypeInt16, deltaStart, 2)
}

func parseAlias(cur *cursor, fa *fieldArray, mosaic bool) error {
	nsStart := cur.pos
	if cur.take(8) == nil {
		return perr(ErrNotEnoughData, "alias namespace id")
	}
	targetStart := cur.pos
	targetLen := addressLength
	if mosaic {
		targetLen = 8
	}
	if cur.take(targetLen) == nil {
		return perr(ErrNotEnoughData, "alias target")
	}
	actionStart := cur.pos
	if cur.take(1) == nil {
		return perr(ErrNotEnoughData, "alias action")
	}

	if err := fa.appendRaw(FieldAliasActionType, TypeUint8, actionStart, 1); err != nil {
		return err
	}
	if err := fa.appendRaw(FieldNamespaceID, TypeUint64, nsStart, 8); err != nil {
		return err
	}
	if mosaic {
		return fa.appendRaw(FieldMosaicID, TypeUint64, targetStart, 8)
	}
	return fa.appendRaw(FieldAddress, TypeAddress, targetStart, addressLength)
}

type restrictionVariant uint8

const (
	restrictionAddress restrictionVariant = iota
	restrictionMosaic
	restrictionOperation
)

func (v restrictionVariant) entrySize() int {
	switch v {
	case restrictionAddress:
		return addressLength
	case restrictionMosaic:
		return 8
	default:
		return 2
	}
}

func (v restrictionVariant) fieldID() FieldID {
	switch v {
	case restrictionAddress:
		return FieldRestrictionAddress
	case restrictionMosaic:
		return FieldMosaicID
	default:
		return FieldRestrictionType
	}
}

func (v restrictionVariant) dataType() DataType {
	switch v {
	case restrictionAddress:
		return TypeAddress
	case restrictionMosaic:
		return TypeUint64
	default:
		return TypeUint16
	}
}

func parseRestriction(cur *cursor, fa *fieldArray, variant restrictionVariant) error {
	flagsStart := cur.pos
	if cur.take(2) == nil {
		return perr(ErrNotEnoughData, "restriction flags")
	}
	additionsStart := cur.pos
	additions, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "restriction additions count")
	}
	deletionsStart := cur.pos
	deletions, ok := cur.takeU8()
	if !ok {
		return perr(ErrNotEnoughData, "restriction deletions count")
	}
	if cur.take(4) == nil { // reserved
		return perr(ErrNotEnoughData, "restriction reserved")
	}

	if err := fa.appendRaw(FieldMultisigAddAddrCount, TypeUint8, additionsStart, 1); err != nil {
		return err
	}
	for i := 0; i < int(additions); i++ {
		if err := fa.appendN(cur, variant.fieldID(), variant.dataType(), variant.entrySize()); err != nil {
			return err
		}
	}
	if err := fa.appendRaw(FieldMultisigDelAddrCount, TypeUint8, deletionsStart, 1); err != nil {
		return err
	}
	for i := 0; i < int(deletions); i++ {
		if err := fa.appendN(cur, variant.fieldID(), variant.dataType(), variant.entrySize()); err != nil {
			return err
		}
	}

	if err := fa.appendRaw(FieldRestrictionOperation, TypeUint8, flagsStart, 1); err != nil {
		return err
	}
	if variant != restrictionMosaic {
		if err := fa.appendRaw(FieldRestrictionDirection, TypeUint8, flagsStart, 1); err != nil {
			return err
		}
	}
	return fa.appendRaw(FieldRestrictionType, TypeUint8, flagsStart+1, 1)
}

func parseKeyLink(cur *cursor, fa *fieldArray, keyFieldID FieldID) error {
	keyStart := cur.pos
	if cur.take(publicKeyLength) == nil {
		return perr(ErrNotEnoughData, "key link public key")
	}
	actionStart := cur.pos
	if cur.take(1) == nil {
		return perr(ErrNotEnoughData, "key link action")
	}
	if cur.take(7) == nil { // trailing reserved
		return perr(ErrNotEnoughData, "key link reserved")
	}
	if err := fa.appendRaw(FieldKeyLinkActionID(), TypeUint8, actionStart, 1); err != nil {
		return err
	}
	return fa.appendRaw(keyFieldID, TypePublicKey, keyStart, publicKeyLength)
}

// FieldKeyLinkActionID is a function (not a const) because the action
// field id is shared by all key-link variants.
func FieldKeyLinkActionID() FieldID { return FieldKeyLinkAction }

func parseVotingKeyLink(cur *cursor, fa *fieldArray) error {
	keyStart := cur.pos
	if cur.take(publicKeyLength) == nil {
		return perr(ErrNotEnoughData, "voting key")
	}
	startStart := cur.pos
	if cur.take(4) == nil {
		return perr(ErrNotEnoughData, "voting start")
	}
	endStart := cur.pos
	if cur.take(4) == nil {
		return perr(ErrNotEnoughData, "voting end")
	}
	actionStart := cur.pos
	if cur.take(1) == nil {
		return perr(ErrNotEnoughData, "voting key link action")
	}

	if err := fa.appendRaw(FieldKeyLinkActionID(), TypeUint8, actionStart, 1); err != nil {
		return err
	}
	if err := fa.appendRaw(FieldVotingStart, TypeUint32, startStart, 4); err != nil {
		return err
	}
	if err := fa.appendRaw(FieldVotingEnd, TypeUint32, endStart, 4); err != nil {
		return err
	}
	return fa.appendRaw(FieldLinkedVotingKey, TypePublicKey, keyStart, publicKeyLength)
}

func parseHashLock(cur *cursor, fa *fieldArray) error {
	mosaicStart := cur.pos
	if cur.take(16) == nil { // mosaic id + amount
		return perr(ErrNotEnoughData, "hash lock mosaic")
	}
	if err := fa.appendN(cur, FieldDuration, TypeUint64, 8); err != nil {
		return err
	}
	if err := fa.appendN(cur, FieldLockHash, TypeHash256, hashLength); err != nil {
		return err
	}
	return fa.appendRaw(FieldLockQuantity, TypeMosaicCurrency, mosaicStart, 16)
}
