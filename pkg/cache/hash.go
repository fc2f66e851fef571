package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a "prefix:digest" cache key from a stage prefix and
// its keying inputs. The inputs are JSON-encoded before hashing, so a
// key changes whenever any option that affects the stage output
// changes.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the SHA-256 digest of data as a 64-character hex
// string. Pipeline stages use it to content-address mesh snapshots.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
