package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// SendTransaction submits a signed transaction to the pool and returns the
// hash the node computed for it. validator defaults to
// well_known_scripts_only when nil.
func (c *Client) SendTransaction(ctx context.Context, tx types.Transaction, validator *types.OutputsValidator) (types.Hash, error) {
	var hash types.Hash
	if err := c.CallResult(ctx, SendTransaction, &hash, tx, validator); err != nil {
		return types.Hash{}, err
	}
	return hash, nil
}

// TxPoolInfo returns the pool's counters and fee floor.
func (c *Client) TxPoolInfo(ctx context.Context) (*types.TxPoolInfo, error) {
	var info types.TxPoolInfo
	if err := c.CallResult(ctx, TxPoolInfo, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ClearTxPool removes every transaction from the pool.
func (c *Client) ClearTxPool(ctx context.Context) error {
	var null interface{}
	return c.CallResult(ctx, ClearTxPool, &null)
}
