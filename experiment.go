package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// DryRunTransaction runs the transaction's scripts without submitting it
// and returns the cycles they consume.
func (c *Client) DryRunTransaction(ctx context.Context, tx types.Transaction) (*types.DryRunResult, error) {
	var result types.DryRunResult
	if err := c.CallResult(ctx, DryRunTransaction, &result, tx); err != nil {
		return nil, err
	}
	return &result, nil
}

// CalculateDaoMaximumWithdraw returns the capacity withdrawable from a DAO
// deposit cell as of the block with the given hash.
func (c *Client) CalculateDaoMaximumWithdraw(ctx context.Context, outPoint types.OutPoint, hash types.Hash) (types.Capacity, error) {
	var capacity types.Capacity
	if err := c.CallResult(ctx, CalculateDaoMaximumWithdraw, &capacity, outPoint, hash); err != nil {
		return 0, err
	}
	return capacity, nil
}

// SendAlert broadcasts a signed alert to the network.
func (c *Client) SendAlert(ctx context.Context, alert types.Alert) error {
	var null interface{}
	return c.CallResult(ctx, SendAlert, &null, alert)
}
