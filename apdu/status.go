// Package apdu implements the command envelope, status-word taxonomy, and
// instruction dispatch for the transaction-signing device: the external
// collaborator spec.md §6 describes as "assumed", given a concrete shape.
package apdu

// StatusWord is the two-byte big-endian status word appended to every
// response payload.
type StatusWord uint16

const (
	StatusOK                         StatusWord = 0x9000
	StatusNoAPDUReceived              StatusWord = 0x6982
	StatusAddressRejected             StatusWord = 0x6985
	StatusTransactionRejected         StatusWord = 0x6986
	StatusInvalidPkgKeyLength         StatusWord = 0x6A80
	StatusInvalidBIP32PathLength      StatusWord = 0x6A81
	StatusInvalidSigningPacketOrder   StatusWord = 0x6A82
	StatusWrongAPDUDataLength         StatusWord = 0x6A87
	StatusInvalidP1OrP2               StatusWord = 0x6B00
	StatusUnknownInstruction          StatusWord = 0x6D00
	StatusUnknownInstructionClass     StatusWord = 0x6E00
	StatusSigningDataTooLarge         StatusWord = 0x6700
	StatusTooManyTransactionFields    StatusWord = 0x6701
	StatusInvalidTransactionData      StatusWord = 0x6702
	StatusWrongResponseLength         StatusWord = 0xB000
)

// Instruction bytes (INS).
const (
	InsGetPublicKey byte = 0x02
	InsSignTx       byte = 0x04
	InsGetVersion   byte = 0x06
)

// CLA is the only instruction class this device accepts.
const CLA byte = 0x50

// P1 for GET_PUBLIC_KEY.
const (
	P1Confirm    byte = 0x01
	P1NonConfirm byte = 0x00
)

// GET_VERSION response bytes: a leading format byte followed by
// major/minor/patch, matching the reference app's handle_app_configuration.
const (
	VersionMajor byte = 1
	VersionMinor byte = 0
	VersionPatch byte = 0
)

// EncodeResponse appends the big-endian status word to payload.
func EncodeResponse(payload []byte, sw StatusWord) []byte {
	out := make([]byte, len(payload)+2)
	copy(out, payload)
	out[len(payload)] = byte(sw >> 8)
	out[len(payload)+1] = byte(sw)
	return out
}
