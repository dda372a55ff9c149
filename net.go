package ckbrpc

import (
	"context"

	"github.com/uckb/ckbrpc/types"
)

// LocalNodeInfo returns the node's own identity, addresses and protocols.
func (c *Client) LocalNodeInfo(ctx context.Context) (*types.LocalNode, error) {
	var node types.LocalNode
	if err := c.CallResult(ctx, LocalNodeInfo, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// GetPeers returns the currently connected peers.
func (c *Client) GetPeers(ctx context.Context) ([]types.RemoteNode, error) {
	var peers []types.RemoteNode
	if err := c.CallResult(ctx, GetPeers, &peers); err != nil {
		return nil, err
	}
	return peers, nil
}

// GetBannedAddresses returns the ban list.
func (c *Client) GetBannedAddresses(ctx context.Context) ([]types.BannedAddr, error) {
	var banned []types.BannedAddr
	if err := c.CallResult(ctx, GetBannedAddresses, &banned); err != nil {
		return nil, err
	}
	return banned, nil
}

// ClearBannedAddresses empties the ban list.
func (c *Client) ClearBannedAddresses(ctx context.Context) error {
	var null interface{}
	return c.CallResult(ctx, ClearBannedAddresses, &null)
}

// SetBan inserts or deletes a ban. command is "insert" or "delete";
// banTime is a duration in milliseconds (node default 24h when nil);
// absolute marks banTime as an absolute timestamp.
func (c *Client) SetBan(ctx context.Context, address, command string, banTime *types.Timestamp, absolute *bool, reason *string) error {
	var null interface{}
	return c.CallResult(ctx, SetBan, &null, address, command, banTime, absolute, reason)
}

// SyncState reports the node's chain synchronization progress.
func (c *Client) SyncState(ctx context.Context) (*types.SyncState, error) {
	var state types.SyncState
	if err := c.CallResult(ctx, SyncState, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SetNetworkActive suspends or resumes all p2p traffic.
func (c *Client) SetNetworkActive(ctx context.Context, state bool) error {
	var null interface{}
	return c.CallResult(ctx, SetNetworkActive, &null, state)
}

// AddNode dials a peer and keeps the connection.
func (c *Client) AddNode(ctx context.Context, peerID, address string) error {
	var null interface{}
	return c.CallResult(ctx, AddNode, &null, peerID, address)
}

// RemoveNode disconnects a peer added with AddNode.
func (c *Client) RemoveNode(ctx context.Context, peerID string) error {
	var null interface{}
	return c.CallResult(ctx, RemoveNode, &null, peerID)
}

// PingPeers sends a ping to every connected peer.
func (c *Client) PingPeers(ctx context.Context) error {
	var null interface{}
	return c.CallResult(ctx, PingPeers, &null)
}
