package signcore

// TxType is the 2-byte little-endian transaction-type tag from the common
// header. Values match the Symbol network's canonical transaction type
// registry (mirrored from xym/xym_helpers.h in the reference app).
type TxType uint16

const (
	TxTransfer                     TxType = 0x4154
	TxRegisterNamespace            TxType = 0x414E
	TxAddressAlias                 TxType = 0x424E
	TxMosaicAlias                  TxType = 0x434E
	TxMosaicDefinition              TxType = 0x414D
	TxMosaicSupplyChange            TxType = 0x424D
	TxModifyMultisigAccount         TxType = 0x4155
	TxAggregateComplete             TxType = 0x4141
	TxAggregateBonded               TxType = 0x4241
	TxAccountMetadata                TxType = 0x4144
	TxMosaicMetadata                 TxType = 0x4244
	TxNamespaceMetadata              TxType = 0x4344
	TxHashLock                       TxType = 0x4148
	TxAccountAddressRestriction      TxType = 0x4150
	TxAccountMosaicRestriction       TxType = 0x4250
	TxAccountOperationRestriction    TxType = 0x4350

	// Key-link family. The reference app revision retrieved for this module
	// only hard-codes the transaction types above; the tags for these four
	// were chosen for this module and are not verified against the
	// network's published type registry (see DESIGN.md).
	TxAccountKeyLink TxType = 0x414C
	TxNodeKeyLink    TxType = 0x424C
	TxVRFKeyLink     TxType = 0x4343
	TxVotingKeyLink  TxType = 0x4143
)

// Name returns the display label used for the "Transaction Type" and
// "Inner TX Type" fields. Unknown types render "Unknown".
func (t TxType) Name() string {
	switch t {
	case TxTransfer:
		return "Transfer"
	case TxRegisterNamespace:
		return "Register Namespace"
	case TxAddressAlias:
		return "Address Alias"
	case TxMosaicAlias:
		return "Mosaic Alias"
	case TxMosaicDefinition:
		return "Mosaic definition"
	case TxMosaicSupplyChange:
		return "Mosaic Supply Change"
	case TxModifyMultisigAccount:
		return "Multisig Account Modification"
	case TxAggregateComplete:
		return "Aggregate Complete"
	case TxAggregateBonded:
		return "Aggregate Bonded"
	case TxAccountMetadata:
		return "Account Metadata"
	case TxMosaicMetadata:
		return "Mosaic Metadata"
	case TxNamespaceMetadata:
		return "Namespace Metadata"
	case TxHashLock:
		return "Hash Lock"
	case TxAccountAddressRestriction:
		return "Account Address Restriction"
	case TxAccountMosaicRestriction:
		return "Account Mosaic Restriction"
	case TxAccountOperationRestriction:
		return "Account Operation Restriction"
	case TxAccountKeyLink:
		return "Account Key Link"
	case TxNodeKeyLink:
		return "Node Key Link"
	case TxVRFKeyLink:
		return "VRF Key Link"
	case TxVotingKeyLink:
		return "Voting Key Link"
	default:
		return "Unknown"
	}
}

// isAggregate reports whether t is one of the two aggregate types.
func (t TxType) isAggregate() bool {
	return t == TxAggregateComplete || t == TxAggregateBonded
}

const (
	// NativeMosaicID is the network's native currency mosaic id (XYM_MOSAIC_ID).
	NativeMosaicID uint64 = 0x5B66E76BECAD0860

	addressLength      = 24
	publicKeyLength    = 32
	hashLength         = 32
	// commonHeaderLength is the 36-byte common header: 32-byte generation
	// hash, 1 version byte, 1 network-type byte, 2-byte type tag.
	commonHeaderLength = hashLength + 1 + 1 + 2
	feeEnvelopeLength  = 8 + 8 // max fee + deadline
	innerHeaderLength  = 4 + 4 + publicKeyLength + 4 + 1 + 1 + 2
)

// NetworkType identifies mainnet vs testnet, read as the common header's
// network-type byte.
type NetworkType uint8

const (
	NetworkMainnet NetworkType = 0x68
	NetworkTestnet NetworkType = 0x98
)
