package format

import (
	"encoding/base32"
	"encoding/binary"
	"strconv"

	"xymsign/signcore"
)

// Value renders the display string for a field, given the scratch buffer
// its Offset/Length range into. An empty rendering is replaced with a
// single space, matching the reference renderer's guard against blank
// screen lines.
func Value(f signcore.Field, scratch []byte) string {
	s := renderValue(f, f.Bytes(scratch))
	if s == "" {
		return " "
	}
	return s
}

func renderValue(f signcore.Field, data []byte) string {
	switch f.Type {
	case signcore.TypeInt8:
		return int8Value(int8(data[0]))
	case signcore.TypeInt16:
		return int16Value(int16(binary.LittleEndian.Uint16(data)))
	case signcore.TypeUint8:
		return uint8Value(f.ID, data[0])
	case signcore.TypeUint16:
		return uint16Value(binary.LittleEndian.Uint16(data))
	case signcore.TypeUint32:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(data)), 10)
	case signcore.TypeUint64:
		return uint64Value(f.ID, binary.LittleEndian.Uint64(data))
	case signcore.TypeHash256, signcore.TypePublicKey:
		return hexValue(data, false)
	case signcore.TypeAddress:
		return addressValue(data)
	case signcore.TypeXYM:
		return xymAmount(binary.LittleEndian.Uint64(data), 6, "XYM")
	case signcore.TypeMosaicCurrency:
		return mosaicValue(f, data)
	case signcore.TypeMessage:
		return messageValue(data)
	case signcore.TypeStr:
		return strValue(f, data)
	case signcore.TypeHexMessage:
		return hexValue(data, false)
	default:
		return "[Not implemented]"
	}
}

func int8Value(v int8) string {
	switch {
	case v > 0:
		return "Add " + strconv.Itoa(int(v)) + " address(es)"
	case v < 0:
		return "Remove " + strconv.Itoa(-int(v)) + " address(es)"
	default:
		return "Not change"
	}
}

func int16Value(v int16) string {
	switch {
	case v > 0:
		return "Increase " + strconv.Itoa(int(v)) + " byte(s)"
	case v < 0:
		return "Decrease " + strconv.Itoa(-int(v)) + " byte(s)"
	default:
		return "Not change"
	}
}

func uint8Value(id signcore.FieldID, v byte) string {
	switch id {
	case signcore.FieldMosaicCount:
		return "Found " + strconv.Itoa(int(v)) + " txs"
	case signcore.FieldMessageType:
		switch v {
		case 0x00:
			return "Plain text"
		case 0x01:
			return "Encrypted text"
		case 0xFE:
			return "Persistent harvesting delegation"
		}
	case signcore.FieldAliasActionType:
		if v == 0 {
			return "Unlink address"
		}
		return "Link address"
	case signcore.FieldKeyLinkAction:
		if v == 0 {
			return "Unlink"
		}
		return "Link"
	case signcore.FieldNamespaceRegType:
		if v == 0 {
			return "Root namespace"
		}
		return "Sub namespace"
	case signcore.FieldMosaicSupplyAction:
		if v == 0 {
			return "Decrease"
		}
		return "Increase"
	case signcore.FieldMosaicSupplyMutable:
		return yesNo(v&0x01 != 0)
	case signcore.FieldMosaicTransferable:
		return yesNo(v&0x02 != 0)
	case signcore.FieldMosaicRestrictable:
		return yesNo(v&0x04 != 0)
	}
	return strconv.Itoa(int(v))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func uint16Value(v uint16) string {
	return signcore.TxType(v).Name()
}

func uint64Value(id signcore.FieldID, v uint64) string {
	switch id {
	case signcore.FieldDuration:
		return durationLabel(v)
	case signcore.FieldMosaicChangeAmount:
		return xymAmount(v, 0, "")
	default:
		return hexValueU64(v)
	}
}

func hexValueU64(v uint64) string {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return hexValue(b, true)
}

const hexDigits = "0123456789ABCDEF"

func hexValue(data []byte, reverse bool) string {
	out := make([]byte, len(data)*2)
	for i, n := 0, len(data); i < n; i++ {
		b := data[i]
		if reverse {
			b = data[n-1-i]
		}
		out[2*i] = hexDigits[b>>4]
		out[2*i+1] = hexDigits[b&0x0F]
	}
	return string(out)
}

var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

func addressValue(raw []byte) string {
	return base32NoPad.EncodeToString(raw)
}

func mosaicValue(f signcore.Field, data []byte) string {
	id := binary.LittleEndian.Uint64(data[0:8])
	amount := binary.LittleEndian.Uint64(data[8:16])
	if f.ID == signcore.FieldLockQuantity || id == signcore.NativeMosaicID {
		return xymAmount(amount, 6, "XYM")
	}
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, id)
	return xymAmount(amount, 0, "micro") + " 0x" + hexValue(b, true)
}

func messageValue(data []byte) string {
	if len(data) == 0 {
		return "<empty msg>"
	}
	return collapseASCII(data)
}

func strValue(f signcore.Field, data []byte) string {
	if f.ID == signcore.FieldUnknownMosaic {
		return "Divisibility and levy cannot be shown"
	}
	return collapseASCII(data)
}
