package format

import "xymsign/signcore"

// Line is a single (label, value) pair ready for display.
type Line struct {
	Label string
	Value string
}

// Screen renders every field a parsed session produced, in append order —
// the same order the device review flow steps through.
func Screen(s *signcore.Session) []Line {
	fields := s.Fields()
	lines := make([]Line, len(fields))
	scratch := s.RawTx()
	for i, f := range fields {
		lines[i] = Line{Label: Label(f), Value: Value(f, scratch)}
	}
	return lines
}
