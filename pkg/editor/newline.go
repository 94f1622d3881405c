package editor

// Newline identifies which character sequence counts as one newline unit,
// both when scanning input and when re-emitting literal newlines.
type Newline int

const (
	// LF is the Unix style "\n" line ending.
	LF Newline = iota

	// CRLF is the Windows style "\r\n" line ending.
	CRLF
)

// String returns the literal character sequence for this line ending.
func (n Newline) String() string {
	switch n {
	case CRLF:
		return "\r\n"
	default:
		return "\n"
	}
}
