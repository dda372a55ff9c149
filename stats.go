package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// GetBlockchainInfo returns the chain identifier, current difficulty and
// any active alerts.
func (c *Client) GetBlockchainInfo(ctx context.Context) (*types.ChainInfo, error) {
	var info types.ChainInfo
	if err := c.CallResult(ctx, GetBlockchainInfo, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
