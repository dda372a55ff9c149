package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// Dev-node tooling. These methods exist only on nodes started with the
// integration-test module enabled; a production node answers -32601.

// ProcessBlockWithoutVerify injects a block skipping verification and
// returns its hash, or nil if the node rejected it. broadcast relays the
// block to peers.
func (c *Client) ProcessBlockWithoutVerify(ctx context.Context, block types.Block, broadcast bool) (*types.Hash, error) {
	var hash *types.Hash
	if err := c.CallResult(ctx, ProcessBlockWithoutVerify, &hash, block, broadcast); err != nil {
		return nil, err
	}
	return hash, nil
}

// Truncate rolls the chain back so the block with the given hash becomes
// the tip.
func (c *Client) Truncate(ctx context.Context, targetTipHash types.Hash) error {
	var null interface{}
	return c.CallResult(ctx, Truncate, &null, targetTipHash)
}

// GenerateBlock mines one block immediately and returns its hash. The
// assembler script and message override the node's block assembler config
// when non-nil.
func (c *Client) GenerateBlock(ctx context.Context, blockAssemblerScript *types.Script, blockAssemblerMessage *types.Bytes) (types.Hash, error) {
	var hash types.Hash
	if err := c.CallResult(ctx, GenerateBlock, &hash, blockAssemblerScript, blockAssemblerMessage); err != nil {
		return types.Hash{}, err
	}
	return hash, nil
}

// BroadcastTransaction relays a transaction to peers without submitting it
// to the local pool. cycles is the declared script cost.
func (c *Client) BroadcastTransaction(ctx context.Context, tx types.Transaction, cycles types.Cycle) (types.Hash, error) {
	var hash types.Hash
	if err := c.CallResult(ctx, BroadcastTransaction, &hash, tx, cycles); err != nil {
		return types.Hash{}, err
	}
	return hash, nil
}
