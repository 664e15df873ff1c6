package cheatsvg

import (
	"errors"
	"strings"
	"testing"
)

const validDocYAML = `filename: git_cheatsheet
terminal_title: Git Cheatsheet
sections:
  - title: Basics
    commands:
      - command: git init
        description: Create a new repository
      - command: git status
        description: Show working tree status
  - title: Branching
    commands:
      - command: git branch
        description: List branches
`

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument([]byte(validDocYAML))
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.Filename != "git_cheatsheet" {
		t.Errorf("Filename = %q, want %q", doc.Filename, "git_cheatsheet")
	}
	if doc.TerminalTitle != "Git Cheatsheet" {
		t.Errorf("TerminalTitle = %q, want %q", doc.TerminalTitle, "Git Cheatsheet")
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(doc.Sections))
	}
	if doc.Sections[0].Title != "Basics" || doc.Sections[1].Title != "Branching" {
		t.Errorf("section order = %q, %q", doc.Sections[0].Title, doc.Sections[1].Title)
	}
	if got := doc.Sections[0].Commands[1].Command; got != "git status" {
		t.Errorf("Commands[1].Command = %q, want %q", got, "git status")
	}
}

func TestLoadDocumentOptionalTitle(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument([]byte("filename: x\nsections:\n  - title: A\n    commands: []\n"))
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if doc.TerminalTitle != "" {
		t.Errorf("TerminalTitle = %q, want empty", doc.TerminalTitle)
	}
}

func TestLoadDocumentValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty input",
			data:    "",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "whitespace only",
			data:    "   \n\t\n",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "explicit null document",
			data:    "null\n",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "malformed YAML",
			data:    "filename: [unclosed\nsections",
			wantErr: ErrParse,
		},
		{
			name:    "missing filename",
			data:    "sections:\n  - title: A\n    commands: []\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "empty filename",
			data:    "filename: \"\"\nsections:\n  - title: A\n    commands: []\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "non-string filename",
			data:    "filename: 42\nsections:\n  - title: A\n    commands: []\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "missing sections",
			data:    "filename: x\nterminal_title: X\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "empty sections",
			data:    "filename: x\nsections: []\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "sections not a list",
			data:    "filename: x\nsections: nope\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "filename with path separator",
			data:    "filename: ../escape\nsections:\n  - title: A\n    commands: []\n",
			wantErr: ErrInvalidFilename,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadDocument([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDocumentErrorNamesField(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument([]byte("filename: x\n"))
	if err == nil || !strings.Contains(err.Error(), "sections") {
		t.Errorf("error = %v, want mention of %q", err, "sections")
	}

	_, err = LoadDocument([]byte("sections:\n  - title: A\n    commands: []\n"))
	if err == nil || !strings.Contains(err.Error(), "filename") {
		t.Errorf("error = %v, want mention of %q", err, "filename")
	}
}
