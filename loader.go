package cheatsvg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alnah/go-cheatsvg/internal/yamlutil"
)

// LoadDocument parses raw cheatsheet YAML into a validated Document.
//
// The bytes are decoded into a generic map first so that schema problems
// surface as specific validation errors rather than decode noise.
// Validation short-circuits in a fixed order: empty document, missing
// filename, missing or empty sections. Rows inside a section are not
// validated here; a row without a command is caught by the renderer.
func LoadDocument(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var raw map[string]any
	if err := yamlutil.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDocument
	}

	name, ok := raw["filename"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "filename")
	}
	// The filename becomes an output basename; anything that escapes
	// the output directory is rejected up front.
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	if sections, ok := raw["sections"].([]any); !ok || len(sections) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, "sections")
	}

	var doc Document
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &doc, nil
}
