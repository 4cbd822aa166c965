package model

import (
	"strings"

	"github.com/minio/highwayhash"
)

// hashKey is a fixed 32-byte key; ContentHash is used only to fingerprint a
// file's decoded line sequence for cheap change detection across runs, not
// as a security primitive, so a constant key is appropriate.
var hashKey = []byte("lockscan-content-hash-key-000000")

// ContentHash returns a 64-bit fingerprint of the decoded line sequence of
// a file. Two runs over byte-identical input produce the same hash, giving
// callers a cheap way to confirm whether a file's content changed across
// runs without re-diffing the full report.
func ContentHash(lines []string) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write([]byte(strings.Join(lines, "\n"))); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
