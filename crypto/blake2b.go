// Package crypto bundles the primitives the node's ecosystem standardizes
// on: blake2b-256 with the chain's hash personalization, and secp256k1
// recoverable signatures for the default lock script.
package crypto

import (
	"hash"

	"github.com/minio/blake2b-simd"
)

// Personal is the blake2b personalization every hash on the chain uses.
// A digest computed without it will not match anything the node computes.
const Personal = "ckb-default-hash"

// NewBlake2b returns a streaming personalized blake2b-256 hasher.
func NewBlake2b() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(Personal),
	})
	if err != nil {
		// Config is constant and valid; blake2b only rejects bad sizes
		// or oversized personalization.
		panic(err)
	}
	return h
}

// Blake2b256 returns the personalized blake2b-256 digest of data.
func Blake2b256(data []byte) [32]byte {
	h := NewBlake2b()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Blake160 returns the first 20 bytes of Blake2b256(data). The default
// lock script identifies key owners by the blake160 of their compressed
// public key.
func Blake160(data []byte) [20]byte {
	digest := Blake2b256(data)
	var out [20]byte
	copy(out[:], digest[:20])
	return out
}
