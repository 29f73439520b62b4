package signcore

// DataType tags the interpretation of a field record's bytes.
type DataType uint8

const (
	TypeInt8 DataType = iota
	TypeInt16
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeHash256
	TypePublicKey
	TypeAddress
	TypeStr
	TypeXYM
	TypeMosaicCount
	TypeMosaicCurrency
	TypeMessage
	TypeHexMessage
)

// FieldID identifies the semantic role of a field record (e.g. "recipient
// address", "mosaic amount"). IDs are only unique within a DataType, the
// same pairing the original field_t struct uses.
type FieldID uint8

// Field ids, grouped by the DataType they pair with. Mirrors the original
// app's field id table (xym/format/fields.h) plus the additional ids this
// module's expanded type set needs.
const (
	FieldMultisigRemovalDelta FieldID = iota + 1
	FieldMultisigApprovalDelta
)

const (
	FieldMosaicCount FieldID = iota + 1
	FieldNamespaceRegType
	FieldAliasActionType
	FieldMessageType
	FieldMosaicSupplyAction
	FieldMultisigAddAddrCount
	FieldMultisigDelAddrCount
	FieldMosaicSupplyMutable
	FieldMosaicTransferable
	FieldMosaicRestrictable
	FieldMosaicDivisibility
	FieldKeyLinkAction
	FieldRestrictionOperation
	FieldRestrictionDirection
	FieldRestrictionType
)

const (
	FieldValueSizeDelta FieldID = iota + 1
)

const (
	FieldTransactionType FieldID = iota + 1
	FieldInnerTransactionType
)

const (
	FieldTxFee FieldID = iota + 1
	FieldDuration
	FieldParentID
	FieldNamespaceID
	FieldMosaicID
	FieldMosaicChangeAmount
	FieldRootRentalFee
	FieldSubRentalFee
	FieldMetadataKey
	FieldVotingStart
	FieldVotingEnd
)

const (
	FieldAggregateHash FieldID = iota + 1
	FieldLockHash
)

const (
	FieldLinkedAccountKey FieldID = iota + 1
	FieldLinkedNodeKey
	FieldLinkedVotingKey
	FieldLinkedVRFKey
)

const (
	FieldRecipientAddress FieldID = iota + 1
	FieldMetadataTargetAddress
	FieldAddress
	FieldRestrictionAddress
)

const (
	FieldMosaicAmount FieldID = iota + 1
	FieldLockQuantity
)

const (
	FieldMessage FieldID = iota + 1
	FieldMetadataValue
)

const (
	FieldHarvestingMessage FieldID = iota + 1
	FieldHarvestingMessage1
	FieldHarvestingMessage2
	FieldHarvestingMessage3
)

const (
	FieldUnknownMosaic FieldID = iota + 1
	FieldNamespaceName
)

// Field is a single display record: an identified, typed view into the
// scratch buffer. It does not own its bytes; the referenced range must lie
// entirely within the scratch buffer's valid prefix, and the scratch
// outlives every Field that references it.
type Field struct {
	ID     FieldID
	Type   DataType
	Offset int
	Length int
}

// MaxFieldCount bounds the number of fields a single review screen can
// hold; sized to accommodate the largest display-worthy aggregate.
const MaxFieldCount = 64

// fieldArray is an append-only, bounded collection of Field records.
// Append is the sole mutation; order defines on-screen review order.
type fieldArray struct {
	scratch []byte
	fields  []Field
}

func newFieldArray(scratch []byte) *fieldArray {
	return &fieldArray{scratch: scratch, fields: make([]Field, 0, MaxFieldCount)}
}

// append records a field at (offset, length) within scratch. It fails with
// ErrNotEnoughData if ok is false (a failed upstream cursor read) and
// ErrTooManyFields once MaxFieldCount entries are recorded.
func (fa *fieldArray) append(id FieldID, typ DataType, offset, length int, ok bool) error {
	if !ok {
		return perr(ErrNotEnoughData, "nil field data")
	}
	if len(fa.fields) >= MaxFieldCount {
		return perr(ErrTooManyFields, "field array full")
	}
	fa.fields = append(fa.fields, Field{ID: id, Type: typ, Offset: offset, Length: length})
	return nil
}

// appendN reads n bytes from cur and records them as a field of the given
// id/type. It is the workhorse every per-type parser uses for a
// fixed-or-known-length take-then-append step.
func (fa *fieldArray) appendN(cur *cursor, id FieldID, typ DataType, n int) error {
	start := cur.pos
	data := cur.take(n)
	return fa.append(id, typ, start, n, data != nil)
}

// appendRaw records a pre-taken (offset, length) range, for callers that
// already captured the position (e.g. a value nested inside a larger take).
func (fa *fieldArray) appendRaw(id FieldID, typ DataType, offset, length int) error {
	return fa.append(id, typ, offset, length, true)
}

// Bytes returns the bytes this field refers to, re-borrowed from scratch.
func (f Field) Bytes(scratch []byte) []byte {
	return scratch[f.Offset : f.Offset+f.Length]
}

// Fields returns the recorded field records in append order.
func (fa *fieldArray) Fields() []Field {
	return fa.fields
}
