// Package editor rewrites runs of consecutive newlines in text.
//
// An Editor holds one immutable rule: when exactly trigger consecutive
// newlines are seen, emit the replacement text in their place. Runs that
// never reach the trigger pass through unchanged, as does everything else.
// Editors are plain values and may be shared between goroutines; every edit
// call owns its own counter and output buffer.
//
// Use New when the exact replacement string is already known, or NewEditor
// and the convenience constructors (Appender, Inserter, Replacer and their
// CRLF variants) to derive it from an edit mode. Edit transforms a string in
// memory; EditStream does the same over a line-buffered source and a writer
// with memory bounded by one line.
package editor

import "strings"

// Editor applies a single newline-run substitution rule to text.
//
// The zero value never edits anything: a trigger of 0 makes the editor an
// identity transform.
type Editor struct {
	replace string
	trigger uint8
	newline Newline
}

// New creates an Editor that emits replace whenever it has counted trigger
// consecutive newlines of the given style. Most callers want NewEditor,
// which derives the replacement string from an edit mode instead.
func New(replace string, trigger uint8, newline Newline) Editor {
	return Editor{
		replace: replace,
		trigger: trigger,
		newline: newline,
	}
}

// Edit scans input in a single left to right pass and returns a new string
// with every run of exactly trigger consecutive newlines substituted by the
// replacement text. The input is never modified.
//
// A run longer than the trigger fires each time the count reaches the
// trigger and then restarts from zero, so a run of twice the trigger fires
// twice. Newlines that never reach the trigger are emitted literally, right
// before the next regular character or at the end of the output.
//
// A trigger of 0 returns the input unchanged, byte for byte, whatever the
// line ending style.
func (e Editor) Edit(input string) string {
	if e.trigger == 0 {
		return input
	}

	switch e.newline {
	case CRLF:
		return e.editCRLF(input)
	default:
		return e.editLF(input)
	}
}

func (e Editor) editLF(input string) string {
	var out strings.Builder
	out.Grow(len(input) + len(e.replace))

	run := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c != '\n' {
			flushLF(&out, run)
			run = 0
			out.WriteByte(c)
			continue
		}

		run++
		if run == int(e.trigger) {
			out.WriteString(e.replace)
			run = 0
		}
	}
	flushLF(&out, run)

	return out.String()
}

// editCRLF counts on the \n half of a pair only. A bare \r with no \n
// partner is plain text: it is emitted as-is and leaves the count alone.
// A lone \n still counts as one unit, and literal flushes always use the
// full "\r\n" sequence.
func (e Editor) editCRLF(input string) string {
	var out strings.Builder
	out.Grow(len(input) + len(e.replace))

	run := 0
	pendingCR := false
	for i := 0; i < len(input); i++ {
		switch c := input[i]; c {
		case '\r':
			if pendingCR {
				// previous \r had no partner
				flushCRLF(&out, run)
				run = 0
				out.WriteByte('\r')
			}
			pendingCR = true
		case '\n':
			pendingCR = false
			run++
			if run == int(e.trigger) {
				out.WriteString(e.replace)
				run = 0
			}
		default:
			flushCRLF(&out, run)
			run = 0
			if pendingCR {
				out.WriteByte('\r')
				pendingCR = false
			}
			out.WriteByte(c)
		}
	}
	flushCRLF(&out, run)
	if pendingCR {
		out.WriteByte('\r')
	}

	return out.String()
}

func flushLF(out *strings.Builder, run int) {
	for ; run > 0; run-- {
		out.WriteByte('\n')
	}
}

func flushCRLF(out *strings.Builder, run int) {
	for ; run > 0; run-- {
		out.WriteString("\r\n")
	}
}
