package cheatsvg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFingerprintDeterminism(t *testing.T) {
	t.Parallel()

	data := []byte("filename: x\nsections: []\n")
	if Fingerprint(data) != Fingerprint(data) {
		t.Error("identical bytes produced different fingerprints")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	t.Parallel()

	data := []byte("filename: x\n")
	withNewline := append(append([]byte{}, data...), '\n')
	if Fingerprint(data) == Fingerprint(withNewline) {
		t.Error("trailing newline did not change the fingerprint")
	}
}

func TestFingerprintFormat(t *testing.T) {
	t.Parallel()

	got := Fingerprint([]byte("x"))
	if len(got) != 64 {
		t.Errorf("len(fingerprint) = %d, want 64 hex chars", len(got))
	}
	for _, r := range got {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Errorf("fingerprint contains non-hex rune %q", r)
		}
	}
}

func TestLoadLedgerMissingFile(t *testing.T) {
	t.Parallel()

	ledger := LoadLedger(filepath.Join(t.TempDir(), "nope.yaml"))
	if ledger == nil {
		t.Fatal("LoadLedger() = nil, want empty ledger")
	}
	if len(ledger) != 0 {
		t.Errorf("len(ledger) = %d, want 0", len(ledger))
	}
}

func TestLoadLedgerCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	ledger := LoadLedger(path)
	if len(ledger) != 0 {
		t.Errorf("corrupt ledger loaded %d entries, want 0", len(ledger))
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.yaml")
	want := Ledger{
		"git_cheatsheet":  Fingerprint([]byte("a")),
		"tmux_cheatsheet": Fingerprint([]byte("b")),
	}

	if err := SaveLedger(path, want); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}

	got := LoadLedger(path)
	if len(got) != len(want) {
		t.Fatalf("len(ledger) = %d, want %d", len(got), len(want))
	}
	for name, digest := range want {
		if got[name] != digest {
			t.Errorf("ledger[%q] = %q, want %q", name, got[name], digest)
		}
	}
}

func TestSaveLedgerUnwritablePath(t *testing.T) {
	t.Parallel()

	err := SaveLedger(filepath.Join(t.TempDir(), "missing", "dir", "ledger.yaml"), Ledger{"x": "y"})
	if !errors.Is(err, ErrLedgerIO) {
		t.Errorf("SaveLedger() error = %v, want %v", err, ErrLedgerIO)
	}
}
