package apdu

import (
	"xymsign/crypto"
	"xymsign/signcore"
	"xymsign/signcore/format"
)

// SignedSummary is a snapshot of the last SIGN_TX session approved by this
// Dispatcher, taken just before the session resets. It exists so a caller
// (the simulator CLI) can log or trace what was signed without the
// Dispatcher exposing its Session directly.
type SignedSummary struct {
	BIP32Path []uint32
	Curve     signcore.Curve
	Lines     []string // "label: value", in review order
}

// Dispatcher is the device's instruction-dispatch loop: one Session, one
// crypto backend, and the last-seen INS byte used for the instruction-change
// guard against "instruction change" attacks (see entry.c in the reference
// app: a command with an INS different from the previous command forces an
// unconditional reset before doing anything else, including before the
// CLA/INS validity checks that would otherwise run first).
type Dispatcher struct {
	session    *signcore.Session
	provider   crypto.Provider
	lastIns    byte
	hasLast    bool
	lastSigned *SignedSummary
}

func NewDispatcher(provider crypto.Provider) *Dispatcher {
	return &Dispatcher{session: signcore.NewSession(), provider: provider}
}

// Handle decodes and processes a single raw APDU, returning the full
// response (payload + status word) ready to write back to the transport.
func (d *Dispatcher) Handle(raw []byte) []byte {
	cmd, err := DecodeCommand(raw)
	if err != nil {
		return EncodeResponse(nil, StatusWrongAPDUDataLength)
	}

	if !d.hasLast || cmd.INS != d.lastIns {
		d.session.Reset()
	}
	d.lastIns = cmd.INS
	d.hasLast = true

	if cmd.CLA != CLA {
		return EncodeResponse(nil, StatusUnknownInstructionClass)
	}

	switch cmd.INS {
	case InsGetPublicKey:
		return d.handleGetPublicKey(cmd)
	case InsSignTx:
		return d.handleSignTx(cmd)
	case InsGetVersion:
		return d.handleGetVersion()
	default:
		// Matches the reference app's entry.c: an unrecognized INS falls
		// through to the same default case as a rejected transaction.
		return EncodeResponse(nil, StatusTransactionRejected)
	}
}

func (d *Dispatcher) handleGetVersion() []byte {
	return EncodeResponse([]byte{0x00, VersionMajor, VersionMinor, VersionPatch}, StatusOK)
}

func (d *Dispatcher) handleGetPublicKey(cmd Command) []byte {
	path, ok := signcore.DecodeBIP32Path(cmd.Data)
	if !ok {
		return EncodeResponse(nil, StatusInvalidBIP32PathLength)
	}
	secp := cmd.P2&signcore.P2Secp256k1 != 0
	ed := cmd.P2&signcore.P2Ed25519 != 0
	if secp == ed { // neither or both set
		return EncodeResponse(nil, StatusInvalidP1OrP2)
	}
	curve := signcore.CurveEd25519
	if secp {
		curve = signcore.CurveSecp256k1
	}
	pub, err := d.provider.PublicKey(path, curve)
	if err != nil {
		return EncodeResponse(nil, StatusAddressRejected)
	}
	return EncodeResponse(pub, StatusOK)
}

func (d *Dispatcher) handleSignTx(cmd Command) []byte {
	var err error
	if isFirstSignFrame(cmd.P1) {
		err = d.session.HandleFirstFrame(cmd.P1, cmd.P2, cmd.Data)
	} else {
		err = d.session.HandleSubsequentFrame(cmd.P1, cmd.Data)
	}
	if err != nil {
		return EncodeResponse(nil, statusForSessionErr(err))
	}
	if d.session.State != signcore.StatePendingReview {
		return EncodeResponse(nil, StatusOK) // more frames expected
	}

	summary := SignedSummary{BIP32Path: d.session.BIP32Path(), Curve: d.session.Curve()}
	for _, line := range format.Screen(d.session) {
		summary.Lines = append(summary.Lines, line.Label+": "+line.Value)
	}

	sig, err := d.session.Approve(d.provider.Sign)
	if err != nil {
		return EncodeResponse(nil, StatusTransactionRejected)
	}
	d.lastSigned = &summary
	return EncodeResponse(sig, StatusOK)
}

// TakeLastSigned returns a snapshot of the SIGN_TX session this Dispatcher
// just approved and clears it, so a caller polling after every Handle only
// observes it once.
func (d *Dispatcher) TakeLastSigned() (SignedSummary, bool) {
	if d.lastSigned == nil {
		return SignedSummary{}, false
	}
	s := *d.lastSigned
	d.lastSigned = nil
	return s, true
}

func isFirstSignFrame(p1 byte) bool { return p1&0x01 == 0 }

func statusForSessionErr(err error) StatusWord {
	if code, ok := signcore.CodeOf(err); ok {
		switch code {
		case signcore.ErrTooManyFields:
			return StatusTooManyTransactionFields
		case signcore.ErrInvalidData:
			return StatusInvalidTransactionData
		case signcore.ErrNotEnoughData:
			return StatusInvalidTransactionData
		}
	}
	if se, ok := err.(*signcore.SessionError); ok {
		switch se.Code {
		case signcore.SessInvalidOrder:
			return StatusInvalidSigningPacketOrder
		case signcore.SessInvalidP1OrP2:
			return StatusInvalidP1OrP2
		case signcore.SessInvalidBIP32Path:
			return StatusInvalidBIP32PathLength
		case signcore.SessDataTooLarge:
			return StatusSigningDataTooLarge
		}
	}
	return StatusTransactionRejected
}
