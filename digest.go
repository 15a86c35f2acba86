// Digest algorithm implementations for the extraction report.
//
// The report digest is a 16 hex character hash of the matched bytes in
// file order. Three algorithms are supported, selectable via
// Config.DigestAlgorithm.
package logslice

import (
	"encoding/hex"
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Digest algorithm constants.
const (
	AlgXXH3    = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

type digest struct {
	h hash.Hash
}

func newDigest(alg int) (*digest, error) {
	switch alg {
	case AlgXXH3:
		return &digest{xxh3.New()}, nil
	case AlgFNV1a:
		return &digest{fnv.New64a()}, nil
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		return &digest{h}, nil
	default:
		return nil, fmt.Errorf("%w: unknown digest algorithm %d", ErrInvalidConfig, alg)
	}
}

func (d *digest) Write(p []byte) {
	d.h.Write(p)
}

func (d *digest) sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
