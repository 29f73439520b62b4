package signcore

// SignState is the three-valued packet-assembly state.
type SignState uint8

const (
	StateIdle SignState = iota
	StateWaitingForMore
	StatePendingReview
)

// Curve selects the signing scheme requested by P2 on the first SIGN_TX frame.
type Curve uint8

const (
	CurveEd25519 Curve = iota
	CurveSecp256k1
)

const (
	// MaxRawTx bounds the cumulative size of a multi-frame SIGN_TX payload.
	MaxRawTx = 4096
	// MaxBIP32Path bounds the number of derivation path components.
	MaxBIP32Path = 10
)

// Session is the owned, single-threaded session object: the scratch area,
// sign-state, BIP32 path, and derived signing length. It replaces the
// original app's process-wide globals (scratch, signState, fields) with
// fields of one value created at boot and mutated by the command dispatcher.
type Session struct {
	State SignState

	scratch    [MaxRawTx]byte
	rawTxLen   int
	bip32Path  []uint32
	curve      Curve
	signingLen int

	fields *fieldArray
}

// NewSession returns a freshly reset session, ready to receive commands.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset zeros the scratch area and returns the session to IDLE. Per the
// ownership contract, any Field values obtained before a Reset become
// invalid the instant Reset runs; callers must not retain them across it.
func (s *Session) Reset() {
	for i := range s.scratch {
		s.scratch[i] = 0
	}
	s.rawTxLen = 0
	s.bip32Path = nil
	s.curve = CurveEd25519
	s.signingLen = 0
	s.fields = nil
	s.State = StateIdle
}

// RawTx returns the accumulated scratch bytes.
func (s *Session) RawTx() []byte {
	return s.scratch[:s.rawTxLen]
}

// SigningLength returns the signing length derived during parse.
func (s *Session) SigningLength() int {
	return s.signingLen
}

// SigningRange returns the leading bytes of the scratch area that the
// signer must cover.
func (s *Session) SigningRange() []byte {
	return s.scratch[:s.signingLen]
}

// BIP32Path returns the path extracted from the first frame.
func (s *Session) BIP32Path() []uint32 {
	return s.bip32Path
}

// Curve returns the curve selected by the first frame's P2 byte.
func (s *Session) Curve() Curve {
	return s.curve
}

// Fields returns the field array populated by the last successful parse.
// Valid only in StatePendingReview, and only until the next Reset.
func (s *Session) Fields() []Field {
	if s.fields == nil {
		return nil
	}
	return s.fields.Fields()
}

// appendRawTx appends payload to the scratch area, returning false (the
// caller reports it as SessDataTooLarge; it is not a parse error) if the
// cumulative length would exceed MaxRawTx.
func (s *Session) appendRawTx(payload []byte) bool {
	if s.rawTxLen+len(payload) > MaxRawTx {
		return false
	}
	copy(s.scratch[s.rawTxLen:], payload)
	s.rawTxLen += len(payload)
	return true
}
