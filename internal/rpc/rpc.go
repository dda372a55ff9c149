package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Version is the JSON-RPC protocol version sent with every request.
const Version = "2.0"

type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Version string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

type Response struct {
	Version string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the error object reported by the node. Code and Message are
// preserved verbatim for caller inspection.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
