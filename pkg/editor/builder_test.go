package editor_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sonro/linurgy/pkg/editor"
)

func TestBuilderDefaults(t *testing.T) {
	var out bytes.Buffer
	b := editor.NewBuilder().
		FromString("foo\n\nbar\n").
		ToWriter(&out)

	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// defaults append a line of dashes after every double newline
	want := "foo\n\n-------\nbar\n"
	if got := out.String(); got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

func TestBuilderReplace(t *testing.T) {
	var out bytes.Buffer
	b := editor.NewBuilder().
		Text("-").
		Trigger(1).
		EditType(editor.Replace).
		FromString("foo\nbar").
		ToWriter(&out)

	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "foo-bar" {
		t.Errorf("Run() wrote %q, want %q", got, "foo-bar")
	}
}

func TestBuilderCRLF(t *testing.T) {
	var out bytes.Buffer
	b := editor.NewBuilder().
		Text("---").
		Trigger(2).
		EditType(editor.Insert).
		Newline(editor.CRLF).
		FromString("foo\r\n\r\nbar\r\n").
		ToWriter(&out)

	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "foo---\r\n\r\nbar\r\n"
	if got := out.String(); got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

func TestBuilderFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath := filepath.Join(dir, "output.txt")

	if err := os.WriteFile(inPath, []byte("example line\n\nanother line\n"), 0o644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	b := editor.NewBuilder().
		Text("___\n").
		Trigger(2).
		FromFile(inPath).
		ToFile(outPath)

	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	want := "example line\n\n___\nanother line\n"
	if string(got) != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestBuilderMissingInputFile(t *testing.T) {
	b := editor.NewBuilder().
		FromFile(filepath.Join(t.TempDir(), "missing.txt")).
		ToWriter(&bytes.Buffer{})

	if err := b.Run(); err == nil {
		t.Fatal("Run() expected an error for a missing input file")
	}
}
