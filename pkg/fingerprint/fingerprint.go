// Package fingerprint computes stable content fingerprints for published artifacts.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// Compute returns the SHA-256 hex fingerprint of content.
func Compute(content []byte) string {
	hash := sha256.Sum256(content)

	return hex.EncodeToString(hash[:])
}

// ComputeFile returns the fingerprint of a file's contents. A missing file
// fingerprints to the empty string without error, so a first run always
// counts as changed.
func ComputeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Compute(data), nil
}

// FileChanged reports whether content differs from what path currently holds.
func FileChanged(path string, content []byte) (bool, error) {
	existing, err := ComputeFile(path)
	if err != nil {
		return false, err
	}

	return existing != Compute(content), nil
}
