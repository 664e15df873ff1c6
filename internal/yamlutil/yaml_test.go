package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions) which are compile-time
//   detectable and not realistic in production usage.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-cheatsvg/internal/yamlutil"
)

type testSheet struct {
	Filename string   `yaml:"filename"`
	Title    string   `yaml:"terminal_title"`
	Tags     []string `yaml:"tags"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("filename: git_cheatsheet\nterminal_title: Git Cheatsheet\ntags: [vcs, daily]"),
			dest: &testSheet{},
			check: func(t *testing.T, v any) {
				sheet := v.(*testSheet)
				if sheet.Filename != "git_cheatsheet" {
					t.Errorf("Filename = %q, want %q", sheet.Filename, "git_cheatsheet")
				}
				if sheet.Title != "Git Cheatsheet" {
					t.Errorf("Title = %q, want %q", sheet.Title, "Git Cheatsheet")
				}
				if len(sheet.Tags) != 2 {
					t.Errorf("Tags = %v, want 2 entries", sheet.Tags)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testSheet{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testSheet{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("filename: git"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("filename: [unclosed"),
			dest:    &testSheet{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
		{
			name: "unicode content",
			data: []byte("terminal_title: 日本語テスト"),
			dest: &testSheet{},
			check: func(t *testing.T, v any) {
				sheet := v.(*testSheet)
				if sheet.Title != "日本語テスト" {
					t.Errorf("Title = %q, want %q", sheet.Title, "日本語テスト")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Unmarshal() error = nil, want %v", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) && !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalInputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("filename: " + strings.Repeat("a", yamlutil.MaxInputSize))
	err := yamlutil.Unmarshal(data, &testSheet{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want %v", err, yamlutil.ErrInputTooLarge)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes Go structs into YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	got, err := yamlutil.Marshal(map[string]string{"git_cheatsheet": "abc123"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(got), "git_cheatsheet: abc123") {
		t.Errorf("Marshal() = %q, want it to contain the key-value pair", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := testSheet{Filename: "tmux_cheatsheet", Title: "Tmux", Tags: []string{"terminal"}}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out testSheet
	if err := yamlutil.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Filename != in.Filename || out.Title != in.Title || len(out.Tags) != 1 {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
