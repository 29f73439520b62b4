package signcore

// SessionErrorCode enumerates packet-assembly-level failures distinct from
// the parser's ErrorCode — these occur before or around invoking Parse,
// at the framing layer the state machine itself is responsible for.
type SessionErrorCode string

const (
	SessInvalidOrder     SessionErrorCode = "INVALID_SIGNING_PACKET_ORDER"
	SessInvalidP1OrP2    SessionErrorCode = "INVALID_P1_OR_P2"
	SessInvalidBIP32Path SessionErrorCode = "INVALID_BIP32_PATH_LENGTH"
	SessDataTooLarge     SessionErrorCode = "SIGNING_DATA_TOO_LARGE"
)

type SessionError struct {
	Code SessionErrorCode
	Msg  string
}

func (e *SessionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Code) + ": " + e.Msg
}

func serr(code SessionErrorCode, msg string) error {
	return &SessionError{Code: code, Msg: msg}
}

// P1 bits for the SIGN_TX command.
const (
	P1MaskOrder byte = 0x01 // 0 = first frame, 1 = subsequent
	P1MaskMore  byte = 0x02 // 1 = more frames follow, 0 = last frame
)

// P2 bits for SIGN_TX / GET_PUBLIC_KEY.
const (
	P2Secp256k1 byte = 0x01
	P2Ed25519   byte = 0x02
)

func isFirstFrame(p1 byte) bool { return p1&P1MaskOrder == 0 }
func hasMoreFrames(p1 byte) bool { return p1&P1MaskMore != 0 }

// HandleFirstFrame processes the first SIGN_TX frame: it extracts the
// BIP32 path and curve selector from data, resets any stale session state,
// and appends the remaining payload. p1 must carry the first-frame order
// bit, and a first frame arriving while WaitingForMore is rejected as out
// of order; from Idle or PendingReview it starts a new session.
func (s *Session) HandleFirstFrame(p1, p2 byte, data []byte) error {
	if !isFirstFrame(p1) {
		return serr(SessInvalidOrder, "expected first frame")
	}
	if s.State == StateWaitingForMore {
		return serr(SessInvalidOrder, "first frame while waiting for more")
	}
	s.Reset()

	secp := p2&P2Secp256k1 != 0
	ed := p2&P2Ed25519 != 0
	if secp == ed { // neither or both set
		return serr(SessInvalidP1OrP2, "exactly one curve bit must be set")
	}

	path, payload, ok := splitBIP32Path(data, MaxBIP32Path)
	if !ok {
		return serr(SessInvalidBIP32Path, "malformed bip32 path prefix")
	}
	s.bip32Path = path
	if ed {
		s.curve = CurveEd25519
	} else {
		s.curve = CurveSecp256k1
	}

	return s.handleFramePayload(p1, payload)
}

// HandleSubsequentFrame processes a continuation SIGN_TX frame: the entire
// payload is raw transaction continuation bytes. Only valid from
// WaitingForMore — a subsequent frame arriving in Idle (no first frame seen
// yet) or PendingReview (already finalized) is an out-of-order packet.
func (s *Session) HandleSubsequentFrame(p1 byte, data []byte) error {
	if isFirstFrame(p1) {
		return serr(SessInvalidOrder, "expected subsequent frame")
	}
	if s.State != StateWaitingForMore {
		return serr(SessInvalidOrder, "subsequent frame outside waiting-for-more")
	}
	return s.handleFramePayload(p1, data)
}

// handleFramePayload appends data to the scratch area and, depending on
// the MORE bit, either stays in WAITING_FOR_MORE or finalizes by invoking
// Parse and transitioning to PENDING_REVIEW.
func (s *Session) handleFramePayload(p1 byte, data []byte) error {
	if !s.appendRawTx(data) {
		return serr(SessDataTooLarge, "cumulative payload exceeds MaxRawTx")
	}

	if hasMoreFrames(p1) {
		s.State = StateWaitingForMore
		return nil
	}

	s.State = StatePendingReview
	if err := Parse(s); err != nil {
		s.Reset()
		return err
	}
	return nil
}

// Approve signs the session's signing range and resets the session. It is
// a guard error (no signature produced) unless called from
// StatePendingReview. The caller supplies the signing function so this
// package never depends on a concrete crypto backend.
func (s *Session) Approve(sign func(path []uint32, curve Curve, message []byte) ([]byte, error)) ([]byte, error) {
	if s.State != StatePendingReview {
		s.Reset()
		return nil, serr(SessInvalidOrder, "approve outside pending review")
	}
	sig, err := sign(s.bip32Path, s.curve, s.SigningRange())
	s.Reset()
	return sig, err
}

// Reject resets the session from any state; the caller is responsible for
// reporting TRANSACTION_REJECTED at the APDU layer.
func (s *Session) Reject() {
	s.Reset()
}

// splitBIP32Path consumes the length-prefixed, big-endian-component BIP32
// path from the front of data and returns the path plus the remaining
// bytes. See cursor.takeBIP32Path for the wire format.
func splitBIP32Path(data []byte, maxComponents int) (path []uint32, rest []byte, ok bool) {
	c := newCursor(data)
	path, ok = c.takeBIP32Path(maxComponents)
	if !ok {
		return nil, nil, false
	}
	return path, data[c.pos:], true
}
