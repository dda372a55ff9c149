package rpc

import "fmt"

// The client maps every failure into one of three kinds so callers can
// branch with errors.As without inspecting strings:
//
//   - TransportError: the request never completed a round trip
//     (connection failure, timeout, non-2xx HTTP status).
//   - ProtocolError: the round trip completed but the response is not a
//     usable JSON-RPC frame, or the node reported an error object.
//   - DecodeError: the frame is fine but the result does not match the
//     expected type shape.

type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError carries the node-reported error object in RPC when the
// node answered with one; otherwise Err describes the framing fault.
type ProtocolError struct {
	Method string
	RPC    *Error
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.RPC != nil {
		return fmt.Sprintf("protocol: %s: %v", e.Method, e.RPC)
	}
	return fmt.Sprintf("protocol: %s: %v", e.Method, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	if e.RPC != nil {
		return e.RPC
	}
	return e.Err
}

type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
