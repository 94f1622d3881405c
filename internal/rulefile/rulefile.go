// Package rulefile loads YAML rulebooks: ordered lists of newline edit
// rules that are applied to an input as a pipeline, first rule to last.
package rulefile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/sonro/linurgy/pkg/editor"
)

// Rule describes one newline edit in a rulebook.
type Rule struct {
	// Name is an optional label shown when listing rules.
	Name string `yaml:"name"`

	// Mode is one of "append", "insert" or "replace".
	Mode string `yaml:"mode" validate:"required,oneof=append insert replace"`

	// Text is spliced in when the trigger fires.
	Text string `yaml:"text"`

	// Trigger is the newline run length that fires the edit. 0 makes the
	// rule a no-op.
	Trigger uint8 `yaml:"trigger"`

	// CRLF switches the rule to "\r\n" line endings.
	CRLF bool `yaml:"crlf"`
}

// Rulebook is an ordered, non-empty list of rules.
type Rulebook struct {
	Rules []Rule `yaml:"rules" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads and validates the rulebook at path.
func Load(path string) (*Rulebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rulebook %s: %w", path, err)
	}
	defer f.Close()

	book, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("invalid rulebook %s: %w", path, err)
	}
	return book, nil
}

// Parse decodes and validates a YAML rulebook. Unknown fields, unknown
// modes, and empty rule lists are all errors.
func Parse(r io.Reader) (*Rulebook, error) {
	var book Rulebook
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&book); err != nil {
		return nil, fmt.Errorf("failed to parse rulebook: %w", err)
	}
	if err := validate.Struct(&book); err != nil {
		return nil, fmt.Errorf("failed to validate rulebook: %w", err)
	}
	return &book, nil
}

// Newline returns the line ending style the rule edits.
func (r Rule) Newline() editor.Newline {
	if r.CRLF {
		return editor.CRLF
	}
	return editor.LF
}

// Editor assembles the editor this rule describes.
func (r Rule) Editor() (editor.Editor, error) {
	editType, err := editor.ParseEditType(r.Mode)
	if err != nil {
		return editor.Editor{}, err
	}
	return editor.NewEditor(r.Text, r.Trigger, editType, r.Newline()), nil
}
