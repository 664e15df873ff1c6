package main

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"cheatsvg"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.input != "doc" {
		t.Errorf("input = %q, want %q", flags.input, "doc")
	}
	if flags.output != "svg" {
		t.Errorf("output = %q, want %q", flags.output, "svg")
	}
	if flags.png || flags.force || flags.quiet || flags.verbose || flags.version {
		t.Errorf("boolean flags = %+v, want all false", flags)
	}
	if flags.width != 100 {
		t.Errorf("width = %d, want 100", flags.width)
	}
	if flags.scale != 2.0 {
		t.Errorf("scale = %v, want 2.0", flags.scale)
	}
	if flags.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", flags.timeout)
	}
}

func TestParseFlagsAllSet(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{
		"cheatsvg",
		"-i", "cheatsheets",
		"-o", "out",
		"--png",
		"--force",
		"--width", "120",
		"--scale", "1.5",
		"--timeout", "10s",
		"-q",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.input != "cheatsheets" || flags.output != "out" {
		t.Errorf("dirs = %q/%q, want cheatsheets/out", flags.input, flags.output)
	}
	if !flags.png || !flags.force || !flags.quiet {
		t.Errorf("flags = %+v, want png, force, quiet all set", flags)
	}
	if flags.width != 120 || flags.scale != 1.5 || flags.timeout != 10*time.Second {
		t.Errorf("tuning = %d/%v/%v, want 120/1.5/10s", flags.width, flags.scale, flags.timeout)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"cheatsvg", "--bogus"}},
		{"positional argument", []string{"cheatsvg", "doc/"}},
		{"quiet and verbose", []string{"cheatsvg", "-q", "-v"}},
		{"malformed duration", []string{"cheatsvg", "--timeout", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseFlags(tt.args); err == nil {
				t.Errorf("parseFlags(%v) error = nil, want error", tt.args)
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"cheatsvg", "--help"})
	if !errors.Is(err, ErrHelpRequested) {
		t.Errorf("parseFlags(--help) error = %v, want ErrHelpRequested", err)
	}
}

func TestPrintUsageMentionsEveryFlag(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	printUsage(&sb)
	usage := sb.String()

	for _, flag := range []string{
		"--input", "--output", "--png", "--force", "--width",
		"--scale", "--timeout", "--quiet", "--verbose", "--version", "--help",
	} {
		if !strings.Contains(usage, flag) {
			t.Errorf("usage does not mention %s", flag)
		}
	}
}
