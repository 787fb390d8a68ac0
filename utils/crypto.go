package utils

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// DigestJSON returns the 0x-prefixed Keccak-256 hash of the canonical JSON
// encoding of v. Struct fields keep declaration order and map keys are
// sorted, so equal values always hash the same.
func DigestJSON(v interface{}) (string, error) {
	data, err := NormalizeJSON(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	canonical, err := CompactJSON(data)
	if err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(canonical).Hex(), nil
}

// VerifyDigest checks digest against the document it claims to describe.
func VerifyDigest(v interface{}, digest string) (bool, error) {
	if _, err := hexutil.Decode(digest); err != nil {
		return false, fmt.Errorf("invalid digest %q: %w", digest, err)
	}
	got, err := DigestJSON(v)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(got, digest), nil
}

// ShortDigest trims a digest to 0x plus eight hex characters for display
func ShortDigest(digest string) string {
	if len(digest) <= 10 {
		return digest
	}
	return digest[:10]
}

// ETag quotes a digest for use in an HTTP ETag header.
func ETag(digest string) string {
	return `"` + digest + `"`
}
