package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the voicecv binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "voicecv")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// emptyStoreEnv returns environment variables pointing the CLI at a
// throwaway session store so tests never touch the real one.
func emptyStoreEnv(t *testing.T) []string {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "store.json")
	return append(os.Environ(),
		"VOICECV_STORE="+storePath,
		"VOICECV_API_BASE=http://127.0.0.1:1",
	)
}
