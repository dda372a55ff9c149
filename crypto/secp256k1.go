package crypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

// SignatureLength is the byte length of a recoverable signature:
// R (32) || S (32) || recovery id (1).
const SignatureLength = 65

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GenerateKey returns a fresh random private key.
func GenerateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate secp256k1 key")
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes builds a key from its 32-byte scalar.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, errors.Errorf("private key must be 32 bytes, got %d", len(b))
	}
	return &PrivateKey{key: secp256k1.PrivKeyFromBytes(b)}, nil
}

// Bytes returns the 32-byte scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// PubKey returns the compressed 33-byte public key.
func (k *PrivateKey) PubKey() []byte {
	return k.key.PubKey().SerializeCompressed()
}

// ScriptArgs returns the blake160 of the compressed public key, the args
// field of the default lock script guarding this key's cells.
func (k *PrivateKey) ScriptArgs() [20]byte {
	return Blake160(k.PubKey())
}

// Sign produces a recoverable signature over a 32-byte message digest in
// the node's [R || S || recovery id] layout.
func (k *PrivateKey) Sign(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, errors.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	// SignCompact emits [header || R || S] with header = 27 + recovery id
	// (+4 when the key is compressed); rearrange to the node's layout.
	compact := ecdsa.SignCompact(k.key, digest, false)
	sig := make([]byte, SignatureLength)
	copy(sig, compact[1:])
	sig[64] = compact[0] - 27
	return sig, nil
}

// RecoverPubkey returns the compressed public key that produced the
// signature over the digest.
func RecoverPubkey(digest, sig []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, errors.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	if len(sig) != SignatureLength {
		return nil, errors.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	compact := make([]byte, SignatureLength)
	compact[0] = sig[64] + 27
	copy(compact[1:], sig[:64])
	pub, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, errors.Wrap(err, "recover public key")
	}
	return pub.SerializeCompressed(), nil
}
