package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// GetBlockTemplate returns a template for assembling the next block. The
// limits override the node's defaults when non-nil.
func (c *Client) GetBlockTemplate(ctx context.Context, bytesLimit, proposalsLimit *types.Uint64, maxVersion *types.Version) (*types.BlockTemplate, error) {
	var template types.BlockTemplate
	if err := c.CallResult(ctx, GetBlockTemplate, &template, bytesLimit, proposalsLimit, maxVersion); err != nil {
		return nil, err
	}
	return &template, nil
}

// SubmitBlock submits a sealed block built from the template identified by
// workID and returns its hash.
func (c *Client) SubmitBlock(ctx context.Context, workID string, block types.Block) (types.Hash, error) {
	var hash types.Hash
	if err := c.CallResult(ctx, SubmitBlock, &hash, workID, block); err != nil {
		return types.Hash{}, err
	}
	return hash, nil
}
