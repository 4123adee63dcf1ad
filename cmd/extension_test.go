package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// setLedgerFile overrides the global ledger file for the duration of the test.
func setLedgerFile(t *testing.T, path string) {
	t.Helper()
	old := ledgerFile
	ledgerFile = &path
	t.Cleanup(func() { ledgerFile = old })
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")

	script := "#!/bin/sh\n" +
		"echo \"$" + EnvLedgerFile + " $" + EnvLogLevel + " $*\" > " + out + "\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "wf-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write wf-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ledger := filepath.Join(tempDir, "random_ledger.jsonl")
	setLedgerFile(t, ledger)

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("wf-hello was not found")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	if want := ledger + " " + *logLevel + " a b"; strings.TrimSpace(string(got)) != want {
		t.Errorf("extension saw %q, want %q", strings.TrimSpace(string(got)), want)
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
