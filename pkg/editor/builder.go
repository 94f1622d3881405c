package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Builder wires an Editor together with input and output endpoints and runs
// a streaming edit end to end. It is a convenience layer over NewEditor and
// EditStream for programs that just want "edit this stream with these
// settings" without any plumbing.
//
// Start from NewBuilder, chain setters, then call Run. Defaults read stdin,
// write stdout, and append a line of dashes after every two newlines.
type Builder struct {
	text     string
	trigger  uint8
	editType EditType
	newline  Newline

	reader     io.Reader
	inputPath  string
	writer     io.Writer
	outputPath string
}

// NewBuilder returns a Builder with the default configuration: input stdin,
// output stdout, trigger 2, text "-------\n", edit type Append, LF endings.
func NewBuilder() *Builder {
	return &Builder{
		text:     "-------\n",
		trigger:  2,
		editType: Append,
		newline:  LF,
	}
}

// Text sets the text spliced in when the newline trigger fires.
func (b *Builder) Text(text string) *Builder {
	b.text = text
	return b
}

// Trigger sets the newline count that fires an edit. 0 disables editing.
func (b *Builder) Trigger(count uint8) *Builder {
	b.trigger = count
	return b
}

// EditType sets where the text goes relative to the triggering newlines.
func (b *Builder) EditType(editType EditType) *Builder {
	b.editType = editType
	return b
}

// Newline sets the line ending style to scan for and re-emit.
func (b *Builder) Newline(newline Newline) *Builder {
	b.newline = newline
	return b
}

// FromReader reads input from r. The reader is not closed by Run.
func (b *Builder) FromReader(r io.Reader) *Builder {
	b.reader = r
	b.inputPath = ""
	return b
}

// FromFile reads input from the named file, opened and closed by Run.
func (b *Builder) FromFile(path string) *Builder {
	b.inputPath = path
	b.reader = nil
	return b
}

// FromString reads input from an in-memory string.
func (b *Builder) FromString(s string) *Builder {
	return b.FromReader(strings.NewReader(s))
}

// ToWriter writes output to w. The writer is not closed by Run.
func (b *Builder) ToWriter(w io.Writer) *Builder {
	b.writer = w
	b.outputPath = ""
	return b
}

// ToFile writes output to the named file, created (or truncated) and closed
// by Run.
func (b *Builder) ToFile(path string) *Builder {
	b.outputPath = path
	b.writer = nil
	return b
}

// Run assembles the editor and streams the configured input into the
// configured output. It blocks until the input is exhausted. Any I/O failure
// aborts the edit immediately, and a file or stream written up to that point
// must be treated as truncated.
func (b *Builder) Run() error {
	r := b.reader
	if b.inputPath != "" {
		f, err := os.Open(b.inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input %s: %w", b.inputPath, err)
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}

	w := b.writer
	var outFile *os.File
	if b.outputPath != "" {
		f, err := os.Create(b.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output %s: %w", b.outputPath, err)
		}
		outFile = f
		w = f
	}
	if w == nil {
		w = os.Stdout
	}

	ed := NewEditor(b.text, b.trigger, b.editType, b.newline)
	if err := ed.EditStream(bufio.NewReader(r), w); err != nil {
		if outFile != nil {
			outFile.Close()
		}
		return fmt.Errorf("edit failed: %w", err)
	}

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("failed to close output %s: %w", b.outputPath, err)
		}
	}
	return nil
}
