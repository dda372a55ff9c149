package ckbrpc

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/uckb/ckbrpc/internal/rpc"
	"github.com/uckb/ckbrpc/types"
)

// streamConn is a bidirectional JSON frame stream. The node exposes the
// subscription module over both raw TCP and websocket listeners; both
// carry the same JSON-RPC frames.
type streamConn interface {
	WriteJSON(v interface{}) error
	ReadJSON(v interface{}) error
	Close() error
}

type tcpConn struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
}

func (c *tcpConn) WriteJSON(v interface{}) error { return c.enc.Encode(v) }
func (c *tcpConn) ReadJSON(v interface{}) error  { return c.dec.Decode(v) }
func (c *tcpConn) Close() error                  { return c.conn.Close() }

// Subscription is one active topic stream. Notifications arrive on C
// until the subscription is cancelled or the subscriber closes; then C is
// closed.
type Subscription struct {
	ID    string
	Topic types.Topic
	C     <-chan json.RawMessage
}

// Subscriber speaks the node's pubsub module over a persistent stream.
// One read loop demuxes frames: responses are matched to in-flight
// requests by request id, notifications to subscriptions by subscription
// id. Frames matching neither are dropped.
type Subscriber struct {
	conn streamConn
	id   uint64

	mu      sync.Mutex
	pending map[uint64]chan *rpc.Response
	subs    map[string]chan json.RawMessage
	closed  bool
	err     error

	writeMu sync.Mutex
}

// DialTCP connects to the node's TCP subscription listener.
func DialTCP(addr string) (*Subscriber, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "dial subscription listener")
	}
	return newSubscriber(&tcpConn{conn: conn, enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}), nil
}

// DialWS connects to the node's websocket subscription listener.
func DialWS(url string) (*Subscriber, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial subscription listener")
	}
	return newSubscriber(conn), nil
}

func newSubscriber(conn streamConn) *Subscriber {
	s := &Subscriber{
		conn:    conn,
		pending: make(map[uint64]chan *rpc.Response),
		subs:    make(map[string]chan json.RawMessage),
	}
	go s.readLoop()
	return s
}

// frame is the union of everything the stream can carry: a response to
// one of our requests (ID set) or a subscription notification (Method
// set, ID absent).
type frame struct {
	Version string          `json:"jsonrpc"`
	ID      *uint64         `json:"id"`
	Method  string          `json:"method"`
	Params  *notification   `json:"params"`
	Result  json.RawMessage `json:"result"`
	Error   *rpc.Error      `json:"error"`
}

type notification struct {
	Subscription string          `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

func (s *Subscriber) readLoop() {
	for {
		var f frame
		if err := s.conn.ReadJSON(&f); err != nil {
			s.fail(err)
			return
		}
		switch {
		case f.ID != nil:
			s.mu.Lock()
			ch, ok := s.pending[*f.ID]
			if ok {
				delete(s.pending, *f.ID)
			}
			s.mu.Unlock()
			if ok {
				ch <- &rpc.Response{Version: f.Version, ID: *f.ID, Result: f.Result, Error: f.Error}
			}
		case f.Method == Subscribe && f.Params != nil:
			// The send stays under the lock so Unsubscribe/Close cannot
			// close the channel between the lookup and the send. The
			// default case drops rather than blocks: a slow consumer
			// must not stall the demux loop for every other
			// subscription.
			s.mu.Lock()
			if ch, ok := s.subs[f.Params.Subscription]; ok {
				select {
				case ch <- f.Params.Result:
				default:
				}
			}
			s.mu.Unlock()
		}
	}
}

// fail closes every pending wait and notification channel so callers do
// not block on a dead stream.
func (s *Subscriber) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	for id, ch := range s.pending {
		close(ch)
		delete(s.pending, id)
	}
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

func (s *Subscriber) call(ctx context.Context, method string, params ...interface{}) (*rpc.Response, error) {
	if params == nil {
		params = []interface{}{}
	}
	id := atomic.AddUint64(&s.id, 1)
	ch := make(chan *rpc.Response, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, &TransportError{Method: method, Err: s.closeErr()}
	}
	s.pending[id] = ch
	s.mu.Unlock()

	s.writeMu.Lock()
	err := s.conn.WriteJSON(rpc.Request{Version: rpc.Version, Method: method, Params: params, ID: id})
	s.writeMu.Unlock()
	if err != nil {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		return nil, &TransportError{Method: method, Err: err}
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, &TransportError{Method: method, Err: s.closeErr()}
		}
		if resp.Error != nil {
			return nil, &ProtocolError{Method: method, RPC: resp.Error}
		}
		if resp.Result == nil {
			return nil, &ProtocolError{Method: method, Err: errors.New("response carries neither result nor error")}
		}
		return resp, nil
	case <-ctx.Done():
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		return nil, &TransportError{Method: method, Err: ctx.Err()}
	}
}

func (s *Subscriber) closeErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	return errors.New("subscriber closed")
}

// Subscribe registers for a topic. Notification payloads are the topic's
// result type (a HeaderView for new_tip_header, a BlockView for
// new_tip_block, a TransactionView for new_transaction), delivered raw for
// the caller to decode.
func (s *Subscriber) Subscribe(ctx context.Context, topic types.Topic) (*Subscription, error) {
	resp, err := s.call(ctx, Subscribe, topic)
	if err != nil {
		return nil, err
	}
	var id string
	if err := json.Unmarshal(resp.Result, &id); err != nil {
		return nil, &DecodeError{Method: Subscribe, Err: err}
	}

	ch := make(chan json.RawMessage, 64)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, &TransportError{Method: Subscribe, Err: s.closeErr()}
	}
	s.subs[id] = ch
	s.mu.Unlock()

	return &Subscription{ID: id, Topic: topic, C: ch}, nil
}

// Unsubscribe cancels a subscription and closes its channel.
func (s *Subscriber) Unsubscribe(ctx context.Context, sub *Subscription) error {
	resp, err := s.call(ctx, Unsubscribe, sub.ID)
	if err != nil {
		return err
	}
	var ok bool
	if err := json.Unmarshal(resp.Result, &ok); err != nil {
		return &DecodeError{Method: Unsubscribe, Err: err}
	}
	if !ok {
		return &ProtocolError{Method: Unsubscribe, Err: errors.Errorf("node refused to cancel subscription %s", sub.ID)}
	}

	s.mu.Lock()
	if ch, live := s.subs[sub.ID]; live {
		close(ch)
		delete(s.subs, sub.ID)
	}
	s.mu.Unlock()
	return nil
}

// Close tears down the stream; every pending call and subscription channel
// is released.
func (s *Subscriber) Close() error {
	err := s.conn.Close()
	s.fail(errors.New("subscriber closed"))
	return err
}
