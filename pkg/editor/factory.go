package editor

import (
	"fmt"
	"strings"
)

// EditType selects where replacement text goes relative to the newline run
// that triggered it.
type EditType int

const (
	// Append places the text after the newlines.
	Append EditType = iota

	// Insert places the text before the newlines.
	Insert

	// Replace removes the newlines and emits the text alone.
	Replace
)

// String returns the lower-case name of the edit type.
func (t EditType) String() string {
	switch t {
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	default:
		return "append"
	}
}

// ParseEditType maps a mode name ("append", "insert" or "replace") onto its
// EditType.
func ParseEditType(s string) (EditType, error) {
	switch s {
	case "append":
		return Append, nil
	case "insert":
		return Insert, nil
	case "replace":
		return Replace, nil
	}
	return 0, fmt.Errorf("unknown edit type %q", s)
}

// NewEditor assembles an Editor from an edit mode. The replacement string is
// the given text spliced with trigger copies of the newline literal, in the
// order the mode dictates: after them for Append, before them for Insert,
// and alone for Replace. Every input combination is valid; a trigger of 0
// simply yields an editor that never fires.
func NewEditor(text string, trigger uint8, editType EditType, newline Newline) Editor {
	nl := newline.String()

	var replace strings.Builder
	replace.Grow(len(text) + int(trigger)*len(nl))

	switch editType {
	case Insert:
		replace.WriteString(text)
		writeNewlineRun(&replace, nl, trigger)
	case Replace:
		replace.WriteString(text)
	default:
		writeNewlineRun(&replace, nl, trigger)
		replace.WriteString(text)
	}

	return New(replace.String(), trigger, newline)
}

// Appender creates an Editor that adds text after every newlines-long run
// of LF newlines.
func Appender(text string, newlines uint8) Editor {
	return NewEditor(text, newlines, Append, LF)
}

// Inserter creates an Editor that adds text before every newlines-long run
// of LF newlines.
func Inserter(text string, newlines uint8) Editor {
	return NewEditor(text, newlines, Insert, LF)
}

// Replacer creates an Editor that replaces every newlines-long run of LF
// newlines with text.
func Replacer(text string, newlines uint8) Editor {
	return NewEditor(text, newlines, Replace, LF)
}

// AppenderCRLF is Appender for CRLF line endings.
func AppenderCRLF(text string, newlines uint8) Editor {
	return NewEditor(text, newlines, Append, CRLF)
}

// InserterCRLF is Inserter for CRLF line endings.
func InserterCRLF(text string, newlines uint8) Editor {
	return NewEditor(text, newlines, Insert, CRLF)
}

// ReplacerCRLF is Replacer for CRLF line endings.
func ReplacerCRLF(text string, newlines uint8) Editor {
	return NewEditor(text, newlines, Replace, CRLF)
}

func writeNewlineRun(b *strings.Builder, nl string, count uint8) {
	for i := uint8(0); i < count; i++ {
		b.WriteString(nl)
	}
}
