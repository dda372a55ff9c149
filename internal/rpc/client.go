package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Client implements remote calls to an HTTP JSON-RPC server.
//
// The zero value with URL set is usable; HTTP defaults to
// http.DefaultClient. A single Client may issue concurrent calls: the only
// shared mutable state is the request id counter, which is incremented
// atomically.
type Client struct {
	HTTP   HTTP
	URL    string
	Header http.Header

	chain Interceptor
	id    uint64
}

func (c *Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// Use appends interceptors around every subsequent Call. None are
// installed by default; in particular the client never retries on its own.
func (c *Client) Use(ics ...Interceptor) {
	if c.chain == nil {
		c.chain = Chain(ics...)
		return
	}
	c.chain = Chain(append([]Interceptor{c.chain}, ics...)...)
}

// Call posts one JSON-RPC request with the given method and positional
// params and returns the matching response. The response id must equal the
// request id; a mismatch is a ProtocolError, never misattributed.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (*Response, error) {
	do := c.do
	if c.chain != nil {
		do = c.chain(do)
	}
	return do(ctx, method, params)
}

func (c *Client) do(ctx context.Context, method string, params []interface{}) (*Response, error) {
	if params == nil {
		params = []interface{}{}
	}
	id := atomic.AddUint64(&c.id, 1)
	b, err := json.Marshal(Request{Version: Version, Method: method, Params: params, ID: id})
	if err != nil {
		return nil, &DecodeError{Method: method, Err: errors.Wrap(err, "marshal params")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(b))
	if err != nil {
		return nil, &TransportError{Method: method, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	for k, vs := range c.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http().Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{Method: method, Err: errors.Errorf("bad status %s", resp.Status)}
	}

	r := Response{}
	if err = json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, &ProtocolError{Method: method, Err: errors.Wrap(err, "unmarshal response")}
	}
	if r.Error != nil && r.Result != nil {
		return nil, &ProtocolError{Method: method, Err: errors.New("response carries both result and error")}
	}
	if r.Error != nil {
		return nil, &ProtocolError{Method: method, RPC: r.Error}
	}
	if r.Result == nil {
		return nil, &ProtocolError{Method: method, Err: errors.New("response carries neither result nor error")}
	}
	if r.ID != id {
		return nil, &ProtocolError{Method: method, Err: errors.Errorf("response id %d does not match request id %d", r.ID, id)}
	}
	return &r, nil
}

// CallResult executes a call, with params if any, and decodes the result
// into the value pointed to by result.
func (c *Client) CallResult(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	resp, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return &DecodeError{Method: method, Err: err}
	}
	return nil
}
