package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomFileName builds an unguessable name for a stored upload, keeping
// the original extension.
func RandomFileName(ext string) (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + ext, nil
}
