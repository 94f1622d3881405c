package editor

import (
	"io"
	"strings"
)

// LineSource yields input one line at a time. ReadString must behave like
// (*bufio.Reader).ReadString: return everything up to and including the
// delimiter, and at end of input return any leftover bytes together with
// io.EOF.
type LineSource interface {
	ReadString(delim byte) (string, error)
}

// EditStream applies the editor's rule to src line by line, writing results
// to w as it goes. Memory use is bounded by one input line, so it suits
// large files and endless streams such as logs.
//
// The substitution policy is identical to Edit: for any input, the bytes
// written here equal the bytes Edit would return. The only failure mode is
// an I/O error from src or w, returned unchanged; the edit stops immediately
// and the sink must be treated as truncated. Each call owns its own run
// counter, so one Editor can serve many streams, concurrently or in turn.
func (e Editor) EditStream(src LineSource, w io.Writer) error {
	// a zero trigger is an identity transform, whatever the line endings
	if e.trigger == 0 {
		return copyLines(src, w)
	}

	nl := e.newline.String()

	run := 0
	for {
		line, err := src.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		content, terminated := e.splitLine(line)
		if content != "" {
			if werr := writeNewlines(w, nl, run); werr != nil {
				return werr
			}
			run = 0
			if _, werr := io.WriteString(w, content); werr != nil {
				return werr
			}
		}
		if terminated {
			run++
			if run == int(e.trigger) {
				if _, werr := io.WriteString(w, e.replace); werr != nil {
					return werr
				}
				run = 0
			}
		}

		if err == io.EOF {
			break
		}
	}

	// the trigger cannot fire on a run cut short by end of input
	return writeNewlines(w, nl, run)
}

// splitLine separates a raw line from its terminator. For CRLF editors the
// \r half of a pair belongs to the terminator; a bare \r stays in content.
func (e Editor) splitLine(line string) (content string, terminated bool) {
	content, terminated = strings.CutSuffix(line, "\n")
	if terminated && e.newline == CRLF {
		content = strings.TrimSuffix(content, "\r")
	}
	return content, terminated
}

func copyLines(src LineSource, w io.Writer) error {
	for {
		line, err := src.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line != "" {
			if _, werr := io.WriteString(w, line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func writeNewlines(w io.Writer, nl string, run int) error {
	for ; run > 0; run-- {
		if _, err := io.WriteString(w, nl); err != nil {
			return err
		}
	}
	return nil
}
