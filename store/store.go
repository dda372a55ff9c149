// Package store is a local cache of fetched blocks, so sync tooling can
// re-read chain data without another round trip to the node. It stores
// shapes, not truth: nothing is validated beyond decoding.
package store

import (
	"encoding/binary"
	"encoding/json"

	"github.com/pkg/errors"
	"go.mills.io/bitcask/v2"

	"github.com/uckb/ckbrpc/types"
)

// Key namespaces. Values are JSON for block payloads and raw bytes for
// the index entries.
//
//	b: block number  -> block
//	n: block number  -> block hash
//	h: block hash    -> block number
//	t: tx hash       -> block number || tx index
//	m:               -> max stored block number
var (
	prefixBlock  = []byte("b:")
	prefixNumber = []byte("n:")
	prefixHash   = []byte("h:")
	prefixTx     = []byte("t:")
	keyMaxNumber = []byte("m:")
)

// ErrNotFound reports a key with no stored value.
var ErrNotFound = errors.New("store: not found")

type Store struct {
	db *bitcask.Bitcask
}

// Open opens (or creates) the cache at path.
func Open(path string) (*Store, error) {
	db, err := bitcask.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open block store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertBlock stores the block and all its index entries. Re-inserting
// the same height overwrites the previous entry; the caller decides what
// the canonical chain is.
func (s *Store) InsertBlock(block *types.BlockView) error {
	number := uint64(block.Header.Number)
	payload, err := json.Marshal(block)
	if err != nil {
		return errors.Wrap(err, "marshal block")
	}
	if err := s.db.Put(numberKey(prefixBlock, number), payload); err != nil {
		return errors.Wrap(err, "store block")
	}
	if err := s.db.Put(numberKey(prefixNumber, number), block.Header.Hash.Bytes()); err != nil {
		return errors.Wrap(err, "store number index")
	}
	if err := s.db.Put(hashKey(prefixHash, block.Header.Hash), beUint64(number)); err != nil {
		return errors.Wrap(err, "store hash index")
	}
	for i, tx := range block.Transactions {
		entry := append(beUint64(number), beUint64(uint64(i))...)
		if err := s.db.Put(hashKey(prefixTx, tx.Hash), entry); err != nil {
			return errors.Wrap(err, "store tx index")
		}
	}

	max, err := s.MaxNumber()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, ErrNotFound) || number > max {
		if err := s.db.Put(keyMaxNumber, beUint64(number)); err != nil {
			return errors.Wrap(err, "store max number")
		}
	}
	return nil
}

// BlockByNumber returns the stored block at the given height.
func (s *Store) BlockByNumber(number uint64) (*types.BlockView, error) {
	payload, err := s.get(numberKey(prefixBlock, number))
	if err != nil {
		return nil, err
	}
	var block types.BlockView
	if err := json.Unmarshal(payload, &block); err != nil {
		return nil, errors.Wrap(err, "corrupt block payload")
	}
	return &block, nil
}

// BlockByHash returns the stored block with the given hash.
func (s *Store) BlockByHash(hash types.Hash) (*types.BlockView, error) {
	number, err := s.BlockNumber(hash)
	if err != nil {
		return nil, err
	}
	return s.BlockByNumber(number)
}

// BlockNumber returns the height of the stored block with the given hash.
func (s *Store) BlockNumber(hash types.Hash) (uint64, error) {
	raw, err := s.get(hashKey(prefixHash, hash))
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Errorf("corrupt hash index entry: %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// BlockHash returns the hash of the stored block at the given height.
func (s *Store) BlockHash(number uint64) (types.Hash, error) {
	raw, err := s.get(numberKey(prefixNumber, number))
	if err != nil {
		return types.Hash{}, err
	}
	if len(raw) != types.HashLength {
		return types.Hash{}, errors.Errorf("corrupt number index entry: %d bytes", len(raw))
	}
	var h types.Hash
	copy(h[:], raw)
	return h, nil
}

// Transaction returns a stored transaction by hash, loading it out of the
// block it was committed in.
func (s *Store) Transaction(hash types.Hash) (*types.TransactionView, error) {
	raw, err := s.get(hashKey(prefixTx, hash))
	if err != nil {
		return nil, err
	}
	if len(raw) != 16 {
		return nil, errors.Errorf("corrupt tx index entry: %d bytes", len(raw))
	}
	number := binary.BigEndian.Uint64(raw[:8])
	index := binary.BigEndian.Uint64(raw[8:])

	block, err := s.BlockByNumber(number)
	if err != nil {
		return nil, err
	}
	if index >= uint64(len(block.Transactions)) {
		return nil, errors.Errorf("tx index %d out of range for block %d", index, number)
	}
	tx := block.Transactions[index]
	return &tx, nil
}

// MaxNumber returns the highest stored height.
func (s *Store) MaxNumber() (uint64, error) {
	raw, err := s.get(keyMaxNumber)
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Errorf("corrupt max number entry: %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (s *Store) get(key []byte) ([]byte, error) {
	v, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, bitcask.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "read block store")
	}
	return v, nil
}

func numberKey(prefix []byte, number uint64) []byte {
	return append(append([]byte{}, prefix...), beUint64(number)...)
}

func hashKey(prefix []byte, hash types.Hash) []byte {
	return append(append([]byte{}, prefix...), hash.Bytes()...)
}

func beUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
