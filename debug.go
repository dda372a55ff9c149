package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// JemallocProfilingDump writes a heap profile on the node and returns the
// path of the dump file.
func (c *Client) JemallocProfilingDump(ctx context.Context) (string, error) {
	var path string
	if err := c.CallResult(ctx, JemallocProfilingDump, &path); err != nil {
		return "", err
	}
	return path, nil
}

// UpdateMainLogger reconfigures the node's main logger at runtime.
func (c *Client) UpdateMainLogger(ctx context.Context, config types.MainLoggerConfig) error {
	var null interface{}
	return c.CallResult(ctx, UpdateMainLogger, &null, config)
}

// SetExtraLogger installs or removes a named extra logger; a nil config
// removes it.
func (c *Client) SetExtraLogger(ctx context.Context, name string, config *types.ExtraLoggerConfig) error {
	var null interface{}
	return c.CallResult(ctx, SetExtraLogger, &null, name, config)
}
