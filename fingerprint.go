package cheatsvg

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/alnah/go-cheatsvg/internal/yamlutil"
)

// Fingerprint returns the content fingerprint of raw source bytes:
// a lowercase hex SHA-256 digest. Any change to the source, including
// whitespace, produces a different fingerprint.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Ledger maps document filenames to the fingerprint of the source they
// were last compiled from.
type Ledger map[string]string

// LoadLedger reads a persisted ledger. A missing or unreadable file
// degrades to an empty ledger rather than an error: a lost cache only
// costs recompilation.
func LoadLedger(path string) Ledger {
	data, err := os.ReadFile(path) // #nosec G304 -- ledger path is derived from the input dir
	if err != nil {
		return Ledger{}
	}

	var ledger Ledger
	if err := yamlutil.Unmarshal(data, &ledger); err != nil {
		return Ledger{}
	}
	if ledger == nil {
		return Ledger{}
	}
	return ledger
}

// SaveLedger persists the ledger as YAML. The write goes through a
// rename of a complete temp file, so a crash mid-save leaves the
// previous ledger intact for the next run.
func SaveLedger(path string, ledger Ledger) error {
	data, err := yamlutil.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerIO, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerIO, err)
	}
	return nil
}
