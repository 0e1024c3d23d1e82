package object

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashBytes computes the raw SHA-1 hash of data and returns it as a
// lowercase hex-encoded Hash. Blob fingerprints hash the file's raw
// bytes; commit fingerprints hash the serialized record.
func HashBytes(data []byte) Hash {
	sum := sha1.Sum(data)
	return Hash(hex.EncodeToString(sum[:]))
}
