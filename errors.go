package cheatsvg

import "errors"

// Sentinel errors for library operations.
var (
	// Document loading errors.
	ErrParse            = errors.New("document is not well-formed YAML")
	ErrEmptyDocument    = errors.New("document is empty")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidFilename  = errors.New("filename must not contain path separators")
	ErrMalformedSection = errors.New("malformed section")

	// Post-processing errors.
	ErrPostProcess = errors.New("markup post-processing failed")

	// Ledger persistence errors.
	ErrLedgerIO = errors.New("fingerprint ledger write failed")

	// Rasterization errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("screenshot capture failed")
	ErrArtifactRead   = errors.New("failed to read SVG artifact")
)
