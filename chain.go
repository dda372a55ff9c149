package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// GetBlock returns the block with the given hash, or nil if the node does
// not know it.
func (c *Client) GetBlock(ctx context.Context, hash types.Hash) (*types.BlockView, error) {
	var block *types.BlockView
	if err := c.CallResult(ctx, GetBlock, &block, hash); err != nil {
		return nil, err
	}
	return block, nil
}

// GetBlockByNumber returns the block at the given height on the canonical
// chain, or nil if the height is beyond the tip.
func (c *Client) GetBlockByNumber(ctx context.Context, number types.BlockNumber) (*types.BlockView, error) {
	var block *types.BlockView
	if err := c.CallResult(ctx, GetBlockByNumber, &block, number); err != nil {
		return nil, err
	}
	return block, nil
}

// GetHeader returns the header with the given hash, or nil if unknown.
func (c *Client) GetHeader(ctx context.Context, hash types.Hash) (*types.HeaderView, error) {
	var header *types.HeaderView
	if err := c.CallResult(ctx, GetHeader, &header, hash); err != nil {
		return nil, err
	}
	return header, nil
}

// GetHeaderByNumber returns the header at the given height on the
// canonical chain, or nil if the height is beyond the tip.
func (c *Client) GetHeaderByNumber(ctx context.Context, number types.BlockNumber) (*types.HeaderView, error) {
	var header *types.HeaderView
	if err := c.CallResult(ctx, GetHeaderByNumber, &header, number); err != nil {
		return nil, err
	}
	return header, nil
}

// GetTransaction returns the transaction and its commitment status, or nil
// if the node does not know the hash.
func (c *Client) GetTransaction(ctx context.Context, hash types.Hash) (*types.TransactionWithStatus, error) {
	var tx *types.TransactionWithStatus
	if err := c.CallResult(ctx, GetTransaction, &tx, hash); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetBlockHash returns the canonical block hash at the given height, or
// nil if the height is beyond the tip.
func (c *Client) GetBlockHash(ctx context.Context, number types.BlockNumber) (*types.Hash, error) {
	var hash *types.Hash
	if err := c.CallResult(ctx, GetBlockHash, &hash, number); err != nil {
		return nil, err
	}
	return hash, nil
}

// GetTipHeader returns the header of the current tip.
func (c *Client) GetTipHeader(ctx context.Context) (*types.HeaderView, error) {
	var header types.HeaderView
	if err := c.CallResult(ctx, GetTipHeader, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// GetLiveCell returns the cell at outPoint and its liveness status. Cell
// data is included only when withData is true.
func (c *Client) GetLiveCell(ctx context.Context, outPoint types.OutPoint, withData bool) (*types.CellWithStatus, error) {
	var cell types.CellWithStatus
	if err := c.CallResult(ctx, GetLiveCell, &cell, outPoint, withData); err != nil {
		return nil, err
	}
	return &cell, nil
}

// GetTipBlockNumber returns the height of the current tip.
func (c *Client) GetTipBlockNumber(ctx context.Context) (types.BlockNumber, error) {
	var number types.BlockNumber
	if err := c.CallResult(ctx, GetTipBlockNumber, &number); err != nil {
		return 0, err
	}
	return number, nil
}

// GetCurrentEpoch returns the epoch the tip belongs to.
func (c *Client) GetCurrentEpoch(ctx context.Context) (*types.EpochView, error) {
	var epoch types.EpochView
	if err := c.CallResult(ctx, GetCurrentEpoch, &epoch); err != nil {
		return nil, err
	}
	return &epoch, nil
}

// GetEpochByNumber returns the epoch with the given number, or nil if it
// has not started yet.
func (c *Client) GetEpochByNumber(ctx context.Context, number types.EpochNumber) (*types.EpochView, error) {
	var epoch *types.EpochView
	if err := c.CallResult(ctx, GetEpochByNumber, &epoch, number); err != nil {
		return nil, err
	}
	return epoch, nil
}

// GetBlockEconomicState returns issuance, miner reward and fee totals for
// the block, or nil before the reward is finalized.
func (c *Client) GetBlockEconomicState(ctx context.Context, hash types.Hash) (*types.BlockEconomicState, error) {
	var state *types.BlockEconomicState
	if err := c.CallResult(ctx, GetBlockEconomicState, &state, hash); err != nil {
		return nil, err
	}
	return state, nil
}

// GetTransactionProof builds a merkle proof that the transactions are
// committed in a block. blockHash pins the block; pass nil to let the node
// pick it.
func (c *Client) GetTransactionProof(ctx context.Context, txHashes []types.Hash, blockHash *types.Hash) (*types.TransactionProof, error) {
	var proof types.TransactionProof
	if err := c.CallResult(ctx, GetTransactionProof, &proof, txHashes, blockHash); err != nil {
		return nil, err
	}
	return &proof, nil
}

// VerifyTransactionProof checks a proof and returns the hashes it commits.
func (c *Client) VerifyTransactionProof(ctx context.Context, proof types.TransactionProof) ([]types.Hash, error) {
	var hashes []types.Hash
	if err := c.CallResult(ctx, VerifyTransactionProof, &hashes, proof); err != nil {
		return nil, err
	}
	return hashes, nil
}

// GetForkBlock returns a block that is on a fork, or nil if the hash is
// unknown or on the canonical chain.
func (c *Client) GetForkBlock(ctx context.Context, hash types.Hash) (*types.BlockView, error) {
	var block *types.BlockView
	if err := c.CallResult(ctx, GetForkBlock, &block, hash); err != nil {
		return nil, err
	}
	return block, nil
}

// GenesisHash returns the hash of block zero.
func (c *Client) GenesisHash(ctx context.Context) (*types.Hash, error) {
	return c.GetBlockHash(ctx, 0)
}

// GenesisBlock returns block zero.
func (c *Client) GenesisBlock(ctx context.Context) (*types.BlockView, error) {
	return c.GetBlockByNumber(ctx, 0)
}

// TipBlockHash returns the hash of the current tip.
func (c *Client) TipBlockHash(ctx context.Context) (*types.Hash, error) {
	number, err := c.GetTipBlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetBlockHash(ctx, number)
}
