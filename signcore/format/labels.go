// Package format renders the field records a parsed transaction produces
// (see package signcore) into the (label, value) string pairs a review
// screen displays. It depends only on signcore's exported Field/DataType/
// FieldID surface.
package format

import "xymsign/signcore"

// Label resolves the on-screen name for a field. Unlike the value
// formatter, names are scoped by (DataType, FieldID) pair the same way the
// reference app's field table is: the same numeric FieldID can mean
// different things under different DataTypes.
func Label(f signcore.Field) string {
	switch f.Type {
	case signcore.TypeInt8:
		switch f.ID {
		case signcore.FieldMultisigRemovalDelta:
			return "Min Removal"
		case signcore.FieldMultisigApprovalDelta:
			return "Min Approval"
		}
	case signcore.TypeUint8:
		switch f.ID {
		case signcore.FieldMessageType:
			return "Message Type"
		case signcore.FieldMosaicCount:
			return "Mosaics"
		case signcore.FieldMosaicSupplyAction:
			return "Change Direction"
		case signcore.FieldNamespaceRegType:
			return "Namespace Type"
		case signcore.FieldAliasActionType:
			return "Alias Type"
		case signcore.FieldMosaicDivisibility:
			return "Divisibility"
		case signcore.FieldKeyLinkAction:
			return "Action"
		case signcore.FieldMosaicTransferable:
			return "Transferable"
		case signcore.FieldMosaicSupplyMutable:
			return "Supply Mutable"
		case signcore.FieldMosaicRestrictable:
			return "Restrictable"
		case signcore.FieldMultisigAddAddrCount:
			return "Address Add Num"
		case signcore.FieldMultisigDelAddrCount:
			return "Address Del Num"
		case signcore.FieldRestrictionOperation:
			return "Operation"
		case signcore.FieldRestrictionDirection:
			return "Direction"
		case signcore.FieldRestrictionType:
			return "Restriction Type"
		}
	case signcore.TypeInt16:
		if f.ID == signcore.FieldValueSizeDelta {
			return "Value Size Delta"
		}
	case signcore.TypeUint16:
		switch f.ID {
		case signcore.FieldTransactionType:
			return "Transaction Type"
		case signcore.FieldInnerTransactionType:
			return "Inner TX Type"
		}
	case signcore.TypeUint64:
		switch f.ID {
		case signcore.FieldDuration:
			return "Duration"
		case signcore.FieldParentID:
			return "Parent ID"
		case signcore.FieldMosaicChangeAmount:
			return "Change Amount"
		case signcore.FieldNamespaceID:
			return "Namespace ID"
		case signcore.FieldMosaicID:
			return "Mosaic ID"
		case signcore.FieldMetadataKey:
			return "Metadata Key"
		case signcore.FieldRootRentalFee:
			return "Root Rental Fee"
		case signcore.FieldSubRentalFee:
			return "Sub Rental Fee"
		case signcore.FieldVotingStart:
			return "Voting Start"
		case signcore.FieldVotingEnd:
			return "Voting End"
		}
	case signcore.TypeHash256:
		switch f.ID {
		case signcore.FieldAggregateHash:
			return "Agg. Tx Hash"
		case signcore.FieldLockHash:
			return "Tx Hash"
		}
	case signcore.TypePublicKey:
		switch f.ID {
		case signcore.FieldLinkedAccountKey:
			return "Linked Acct. PbK"
		case signcore.FieldLinkedNodeKey:
			return "Linked Node PbK"
		case signcore.FieldLinkedVotingKey:
			return "LinkedVotingPbK"
		case signcore.FieldLinkedVRFKey:
			return "Linked Vrf PbK"
		}
	case signcore.TypeAddress:
		switch f.ID {
		case signcore.FieldRecipientAddress:
			return "Recipient"
		case signcore.FieldMetadataTargetAddress:
			return "Target Address"
		case signcore.FieldAddress, signcore.FieldRestrictionAddress:
			return "Address"
		}
	case signcore.TypeMosaicCurrency:
		switch f.ID {
		case signcore.FieldMosaicAmount:
			return "Amount"
		case signcore.FieldLockQuantity:
			return "Lock Quantity"
		}
	case signcore.TypeXYM:
		if f.ID == signcore.FieldTxFee {
			return "Fee"
		}
	case signcore.TypeMessage:
		switch f.ID {
		case signcore.FieldMessage:
			return "Message"
		case signcore.FieldMetadataValue:
			return "Value"
		}
	case signcore.TypeHexMessage:
		switch f.ID {
		case signcore.FieldHarvestingMessage:
			return "Harvesting Message"
		case signcore.FieldHarvestingMessage1:
			return "Harvest. Msg 1"
		case signcore.FieldHarvestingMessage2:
			return "Harvest. Msg 2"
		case signcore.FieldHarvestingMessage3:
			return "Harvest. Msg 3"
		}
	case signcore.TypeStr:
		switch f.ID {
		case signcore.FieldUnknownMosaic:
			return "Unknown Mosaic"
		case signcore.FieldNamespaceName:
			return "Name"
		}
	}
	return "Unknown Field"
}
