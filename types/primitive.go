// Package types defines the wire schema of the node's JSON-RPC interface:
// shared primitives with their canonical hex encodings, and the parameter
// and result shapes of every supported method. Pure data, no I/O.
package types

import (
	"encoding/hex"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
)

// ErrMalformedValue is the root cause of every strict-decode failure:
// wrong length, non-hex characters, missing 0x prefix, redundant leading
// zeros or out-of-range numerics. Check with errors.Is.
var ErrMalformedValue = errors.New("malformed value")

// HashLength is the byte length of a Hash.
const HashLength = 32

// Hash is a 32-byte value encoded as 0x + 64 hex characters.
type Hash [HashLength]byte

// HexToHash decodes the canonical textual form of a hash.
func HexToHash(s string) (Hash, error) {
	var h Hash
	b, err := decodeFixedHex(s, HashLength)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	v, err := HexToHash(s)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ProposalShortIDLength is the byte length of a ProposalShortID.
const ProposalShortIDLength = 10

// ProposalShortID is the 10-byte prefix identifying a proposed transaction.
type ProposalShortID [ProposalShortIDLength]byte

func (p ProposalShortID) Hex() string { return "0x" + hex.EncodeToString(p[:]) }

func (p ProposalShortID) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Hex())
}

func (p *ProposalShortID) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	b, err := decodeFixedHex(s, ProposalShortIDLength)
	if err != nil {
		return err
	}
	copy(p[:], b)
	return nil
}

// Bytes is a variable-length byte string encoded as 0x + an even number of
// hex characters. An empty value encodes as "0x".
type Bytes []byte

func (b Bytes) Hex() string { return "0x" + hex.EncodeToString(b) }

func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Hex())
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	if len(s) < 2 || s[0] != '0' || s[1] != 'x' {
		return errors.WithMessage(ErrMalformedValue, "bytes: missing 0x prefix")
	}
	if len(s)%2 != 0 {
		return errors.WithMessage(ErrMalformedValue, "bytes: odd number of hex digits")
	}
	v, err := hex.DecodeString(s[2:])
	if err != nil {
		return errors.WithMessagef(ErrMalformedValue, "bytes: %v", err)
	}
	*b = v
	return nil
}

// Uint32 is a 32-bit unsigned integer encoded as a 0x-prefixed hex string
// without redundant leading zeros.
type Uint32 uint32

func (u Uint32) MarshalJSON() ([]byte, error) {
	return json.Marshal(formatHexUint(uint64(u)))
}

func (u *Uint32) UnmarshalJSON(data []byte) error {
	v, err := parseHexUint(data, 32)
	if err != nil {
		return err
	}
	*u = Uint32(v)
	return nil
}

// Uint64 is a 64-bit unsigned integer encoded as a 0x-prefixed hex string
// without redundant leading zeros; "0x400" decodes to 1024.
type Uint64 uint64

func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(formatHexUint(uint64(u)))
}

func (u *Uint64) UnmarshalJSON(data []byte) error {
	v, err := parseHexUint(data, 64)
	if err != nil {
		return err
	}
	*u = Uint64(v)
	return nil
}

// Domain aliases over the numeric encodings. The wire form is identical;
// the names carry the meaning at call sites.
type (
	BlockNumber = Uint64
	EpochNumber = Uint64
	Capacity    = Uint64
	Timestamp   = Uint64
	Cycle       = Uint64
	Version     = Uint32
)

// Uint128 is a 128-bit unsigned integer encoded as a 0x-prefixed hex
// string, used for difficulty and header nonces.
type Uint128 struct {
	i big.Int
}

// NewUint128 builds a Uint128 from a uint64.
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.i.SetUint64(v)
	return u
}

// Big returns a copy of the value.
func (u *Uint128) Big() *big.Int { return new(big.Int).Set(&u.i) }

func (u *Uint128) Hex() string { return "0x" + u.i.Text(16) }

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + u.i.Text(16))
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	if err := checkHexDigits(s); err != nil {
		return err
	}
	if len(s)-2 > 32 {
		return errors.WithMessagef(ErrMalformedValue, "number %q overflows 128 bits", s)
	}
	if _, ok := u.i.SetString(s[2:], 16); !ok {
		return errors.WithMessagef(ErrMalformedValue, "number %q is not hex", s)
	}
	return nil
}

func formatHexUint(v uint64) string {
	return "0x" + big.NewInt(0).SetUint64(v).Text(16)
}

func parseHexUint(data []byte, bits int) (uint64, error) {
	s, err := unquote(data)
	if err != nil {
		return 0, err
	}
	if err := checkHexDigits(s); err != nil {
		return 0, err
	}
	if (len(s)-2)*4 > bits+3 {
		return 0, errors.WithMessagef(ErrMalformedValue, "number %q overflows %d bits", s, bits)
	}
	var v uint64
	for _, c := range []byte(s[2:]) {
		v = v<<4 | uint64(fromHexChar(c))
	}
	if bits < 64 && v>>uint(bits) != 0 {
		return 0, errors.WithMessagef(ErrMalformedValue, "number %q overflows %d bits", s, bits)
	}
	return v, nil
}

// checkHexDigits enforces the canonical numeric form: 0x prefix, at least
// one digit, no redundant leading zeros, hex digits only.
func checkHexDigits(s string) error {
	if len(s) < 2 || s[0] != '0' || s[1] != 'x' {
		return errors.WithMessagef(ErrMalformedValue, "number %q: missing 0x prefix", s)
	}
	if len(s) == 2 {
		return errors.WithMessagef(ErrMalformedValue, "number %q: no digits", s)
	}
	if len(s) > 3 && s[2] == '0' {
		return errors.WithMessagef(ErrMalformedValue, "number %q: redundant leading zeros", s)
	}
	for _, c := range []byte(s[2:]) {
		if fromHexChar(c) < 0 {
			return errors.WithMessagef(ErrMalformedValue, "number %q is not hex", s)
		}
	}
	return nil
}

func fromHexChar(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func decodeFixedHex(s string, n int) ([]byte, error) {
	if len(s) < 2 || s[0] != '0' || s[1] != 'x' {
		return nil, errors.WithMessagef(ErrMalformedValue, "hash %q: missing 0x prefix", s)
	}
	if len(s) != 2+2*n {
		return nil, errors.WithMessagef(ErrMalformedValue, "hash %q: want %d hex digits, got %d", s, 2*n, len(s)-2)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, errors.WithMessagef(ErrMalformedValue, "hash %q: %v", s, err)
	}
	return b, nil
}

func unquote(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", errors.WithMessagef(ErrMalformedValue, "want a JSON string, got %s", data)
	}
	return s, nil
}
