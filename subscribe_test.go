package ckbrpc_test

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uckb/ckbrpc"
	"github.com/uckb/ckbrpc/types"
)

// pubsubNode is an in-process stand-in for the node's TCP subscription
// listener: it answers subscribe/unsubscribe and lets the test push
// notifications.
type pubsubNode struct {
	t    *testing.T
	ln   net.Listener
	mu   sync.Mutex
	enc  *json.Encoder
	next int
}

func newPubsubNode(t *testing.T) *pubsubNode {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	n := &pubsubNode{t: t, ln: ln}
	t.Cleanup(func() { ln.Close() })
	go n.serve()
	return n
}

func (n *pubsubNode) addr() string { return n.ln.Addr().String() }

func (n *pubsubNode) serve() {
	conn, err := n.ln.Accept()
	if err != nil {
		return
	}
	dec := json.NewDecoder(conn)
	n.mu.Lock()
	n.enc = json.NewEncoder(conn)
	n.mu.Unlock()

	for {
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
			ID     uint64            `json:"id"`
		}
		if err := dec.Decode(&req); err != nil {
			return
		}
		switch req.Method {
		case ckbrpc.Subscribe:
			n.mu.Lock()
			n.next++
			id := n.next
			n.mu.Unlock()
			n.reply(req.ID, `"`+subID(id)+`"`)
		case ckbrpc.Unsubscribe:
			n.reply(req.ID, "true")
		}
	}
}

func subID(n int) string {
	return string(rune('0' + n))
}

func (n *pubsubNode) reply(id uint64, result string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	err := n.enc.Encode(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  json.RawMessage(result),
	})
	assert.NoError(n.t, err)
}

func (n *pubsubNode) notify(subscription string, result string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	err := n.enc.Encode(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  ckbrpc.Subscribe,
		"params": map[string]interface{}{
			"subscription": subscription,
			"result":       json.RawMessage(result),
		},
	})
	assert.NoError(n.t, err)
}

func TestSubscribe(t *testing.T) {
	node := newPubsubNode(t)

	sub, err := ckbrpc.DialTCP(node.addr())
	require.NoError(t, err)
	defer sub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	headers, err := sub.Subscribe(ctx, types.TopicNewTipHeader)
	require.NoError(t, err)
	assert.Equal(t, types.TopicNewTipHeader, headers.Topic)
	assert.NotEmpty(t, headers.ID)

	node.notify(headers.ID, `{"number":"0x400"}`)

	select {
	case raw := <-headers.C:
		var got struct {
			Number types.BlockNumber `json:"number"`
		}
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, types.BlockNumber(1024), got.Number)
	case <-ctx.Done():
		t.Fatal("notification never arrived")
	}
}

func TestSubscribeDemux(t *testing.T) {
	node := newPubsubNode(t)

	sub, err := ckbrpc.DialTCP(node.addr())
	require.NoError(t, err)
	defer sub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	headers, err := sub.Subscribe(ctx, types.TopicNewTipHeader)
	require.NoError(t, err)
	txs, err := sub.Subscribe(ctx, types.TopicNewTransaction)
	require.NoError(t, err)
	require.NotEqual(t, headers.ID, txs.ID)

	// A frame for an unknown subscription id is dropped, not misrouted.
	node.notify("no-such-subscription", `"stray"`)
	node.notify(txs.ID, `"tx"`)

	select {
	case raw := <-txs.C:
		assert.Equal(t, `"tx"`, string(raw))
	case <-ctx.Done():
		t.Fatal("notification never arrived")
	}
	select {
	case raw := <-headers.C:
		t.Fatalf("unexpected notification on header stream: %s", raw)
	default:
	}
}

func TestUnsubscribe(t *testing.T) {
	node := newPubsubNode(t)

	sub, err := ckbrpc.DialTCP(node.addr())
	require.NoError(t, err)
	defer sub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	blocks, err := sub.Subscribe(ctx, types.TopicNewTipBlock)
	require.NoError(t, err)
	require.NoError(t, sub.Unsubscribe(ctx, blocks))

	_, open := <-blocks.C
	assert.False(t, open, "channel must close on unsubscribe")
}

// floodNode accepts one connection, answers the first subscribe, then
// pushes notifications as fast as the stream accepts them until the peer
// hangs up.
func floodNode(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		dec := json.NewDecoder(conn)
		enc := json.NewEncoder(conn)
		var req struct {
			ID uint64 `json:"id"`
		}
		if dec.Decode(&req) != nil {
			return
		}
		if enc.Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  "0",
		}) != nil {
			return
		}
		for {
			if enc.Encode(map[string]interface{}{
				"jsonrpc": "2.0",
				"method":  ckbrpc.Subscribe,
				"params": map[string]interface{}{
					"subscription": "0",
					"result":       json.RawMessage(`"tick"`),
				},
			}) != nil {
				return
			}
		}
	}()
	return ln
}

// Closing while the node keeps streaming must never race the demux loop
// into sending on a channel the teardown already closed.
func TestSubscriberCloseDuringNotifications(t *testing.T) {
	for i := 0; i < 100; i++ {
		ln := floodNode(t)

		sub, err := ckbrpc.DialTCP(ln.Addr().String())
		require.NoError(t, err)
		headers, err := sub.Subscribe(context.Background(), types.TopicNewTipHeader)
		require.NoError(t, err)

		<-headers.C // at least one frame is in flight
		require.NoError(t, sub.Close())

		for range headers.C {
			// drain whatever was buffered before the close landed
		}
		ln.Close()
	}
}

func TestSubscriberClose(t *testing.T) {
	node := newPubsubNode(t)

	sub, err := ckbrpc.DialTCP(node.addr())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	headers, err := sub.Subscribe(ctx, types.TopicNewTipHeader)
	require.NoError(t, err)
	require.NoError(t, sub.Close())

	_, open := <-headers.C
	assert.False(t, open, "channel must close when the subscriber closes")

	_, err = sub.Subscribe(ctx, types.TopicNewTipHeader)
	var te *ckbrpc.TransportError
	assert.ErrorAs(t, err, &te)
}
