package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// echoServer answers every request with the given result, echoing the
// request id unless rewriteID is set.
func echoServer(t *testing.T, result string, rewriteID func(uint64) uint64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, Version, req.Version)
		assert.NotNil(t, req.Params)

		id := req.ID
		if rewriteID != nil {
			id = rewriteID(id)
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, id, result)
	}))
}

func TestCallResult(t *testing.T) {
	srv := echoServer(t, `"0x400"`, nil)
	defer srv.Close()

	c := &Client{URL: srv.URL}
	var got string
	require.NoError(t, c.CallResult(context.Background(), "get_tip_block_number", &got))
	assert.Equal(t, "0x400", got)
}

func TestCallNodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"Method not found"}}`, req.ID)
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "no_such_method")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	require.NotNil(t, pe.RPC)
	assert.Equal(t, -32601, pe.RPC.Code)
	assert.Equal(t, "Method not found", pe.RPC.Message)
}

func TestCallBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "get_tip_header")
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestCallConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "get_tip_header")
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestCallMismatchedID(t *testing.T) {
	srv := echoServer(t, `"0x1"`, func(id uint64) uint64 { return id + 1000 })
	defer srv.Close()

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "get_tip_block_number")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Nil(t, pe.RPC)
}

func TestCallBothResultAndError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":"0x1","error":{"code":-32000,"message":"boom"}}`, req.ID)
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "get_tip_block_number")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Nil(t, pe.RPC, "a frame with both members is a framing fault, not a node error")
}

func TestCallNeitherResultNorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d}`, req.ID)
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "get_tip_header")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
}

func TestCallNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>oops</html>")
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL}
	_, err := c.Call(context.Background(), "get_tip_header")
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
}

func TestCallResultShapeMismatch(t *testing.T) {
	srv := echoServer(t, `"not-a-hex-number"`, nil)
	defer srv.Close()

	c := &Client{URL: srv.URL}
	var got uint64 // result is a string on the wire
	err := c.CallResult(context.Background(), "get_tip_block_number", &got)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestCallHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sesame", r.Header.Get("Authorization"))
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":true}`, req.ID)
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL, Header: http.Header{"Authorization": {"Bearer sesame"}}}
	_, err := c.Call(context.Background(), "ping_peers")
	require.NoError(t, err)
}

func TestConcurrentIDsDistinct(t *testing.T) {
	const calls = 64

	var mu sync.Mutex
	seen := make(map[uint64]bool)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		assert.False(t, seen[req.ID], "request id %d reused", req.ID)
		seen[req.ID] = true
		mu.Unlock()
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":true}`, req.ID)
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL}
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Call(context.Background(), "ping_peers")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, seen, calls)
}

func TestRetryInterceptor(t *testing.T) {
	attempts := 0
	next := func(ctx context.Context, method string, params []interface{}) (*Response, error) {
		attempts++
		if attempts < 3 {
			return nil, &TransportError{Method: method, Err: errors.New("connection refused")}
		}
		return &Response{Version: Version, ID: 1, Result: json.RawMessage(`true`)}, nil
	}

	resp, err := Retry(5, time.Millisecond)(next)(context.Background(), "ping_peers", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.NotNil(t, resp)
}

func TestRetryInterceptorSkipsProtocolErrors(t *testing.T) {
	attempts := 0
	next := func(ctx context.Context, method string, params []interface{}) (*Response, error) {
		attempts++
		return nil, &ProtocolError{Method: method, RPC: &Error{Code: -32601, Message: "Method not found"}}
	}

	_, err := Retry(5, time.Millisecond)(next)(context.Background(), "no_such_method", nil)
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, attempts, "a node-reported error must not be retried")
}

func TestRateLimitInterceptor(t *testing.T) {
	next := func(ctx context.Context, method string, params []interface{}) (*Response, error) {
		return &Response{Version: Version, ID: 1, Result: json.RawMessage(`true`)}, nil
	}

	start := time.Now()
	call := RateLimit(rate.NewLimiter(rate.Every(10*time.Millisecond), 1))(next)
	for i := 0; i < 3; i++ {
		_, err := call(context.Background(), "ping_peers", nil)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Interceptor {
		return func(next CallFunc) CallFunc {
			return func(ctx context.Context, method string, params []interface{}) (*Response, error) {
				order = append(order, name)
				return next(ctx, method, params)
			}
		}
	}
	next := func(ctx context.Context, method string, params []interface{}) (*Response, error) {
		order = append(order, "call")
		return nil, nil
	}

	_, _ = Chain(tag("outer"), tag("inner"))(next)(context.Background(), "m", nil)
	assert.Equal(t, []string{"outer", "inner", "call"}, order)
}
