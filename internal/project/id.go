package project

import (
	"crypto/sha256"
	"fmt"
)

// ID derives a deterministic 8-character hex identifier from the project
// root path. All persisted state (favorites, recents, script configs) is
// scoped under this identifier.
func ID(root string) string {
	sum := sha256.Sum256([]byte(root))
	return fmt.Sprintf("%02x%02x%02x%02x", sum[0], sum[1], sum[2], sum[3])
}
