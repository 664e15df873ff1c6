package main

import (
	"context"
	"errors"
	"os"

	cheatsvg "github.com/alnah/go-cheatsvg"
)

// Exit codes for the cheatsvg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All documents compiled or skipped
	ExitGeneral = 1 // Batch ran but some documents failed
	ExitUsage   = 2 // Invalid flags
	ExitIO      = 3 // Input directory unreadable, output dir uncreatable
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for a fatal batch error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, cheatsvg.ErrBrowserConnect) ||
		errors.Is(err, cheatsvg.ErrPageCreate) ||
		errors.Is(err, cheatsvg.ErrPageLoad) ||
		errors.Is(err, cheatsvg.ErrScreenshot) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Interrupted runs report as general failures
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ExitGeneral
	}

	return ExitGeneral
}
