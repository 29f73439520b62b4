package apdu

import "fmt"

// Command is a single decoded APDU: the 5-byte header plus its data
// payload. Lc is implied by len(Data).
type Command struct {
	CLA  byte
	INS  byte
	P1   byte
	P2   byte
	Data []byte
}

// DecodeCommand splits a raw APDU buffer into its header fields and
// payload. It does not validate CLA/INS — that is the Dispatcher's job,
// since the right response to an invalid one is a status word, not a Go
// error.
func DecodeCommand(raw []byte) (Command, error) {
	if len(raw) < 5 {
		return Command{}, fmt.Errorf("apdu: command shorter than header (%d bytes)", len(raw))
	}
	lc := int(raw[4])
	if len(raw) != 5+lc {
		return Command{}, fmt.Errorf("apdu: declared Lc=%d does not match payload length %d", lc, len(raw)-5)
	}
	return Command{CLA: raw[0], INS: raw[1], P1: raw[2], P2: raw[3], Data: raw[5:]}, nil
}
