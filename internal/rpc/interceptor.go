package rpc

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// CallFunc performs one JSON-RPC round trip.
type CallFunc func(ctx context.Context, method string, params []interface{}) (*Response, error)

// Interceptor wraps a CallFunc. Interceptors compose transport policy
// (retry, rate limiting) that the client deliberately does not hard-code.
type Interceptor func(next CallFunc) CallFunc

// Chain composes interceptors; the first one listed runs outermost.
func Chain(ics ...Interceptor) Interceptor {
	return func(next CallFunc) CallFunc {
		for i := len(ics) - 1; i >= 0; i-- {
			next = ics[i](next)
		}
		return next
	}
}

// Retry retries calls that failed with a TransportError, waiting
// baseDelay*2^attempt between attempts. Protocol and decode errors are
// returned immediately: the node answered, retrying cannot help.
func Retry(maxRetries int, baseDelay time.Duration) Interceptor {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, method string, params []interface{}) (*Response, error) {
			resp, err := next(ctx, method, params)
			for i := 0; i < maxRetries && err != nil; i++ {
				var te *TransportError
				if !errors.As(err, &te) {
					return resp, err
				}
				select {
				case <-time.After(baseDelay * (1 << i)):
				case <-ctx.Done():
					return nil, &TransportError{Method: method, Err: ctx.Err()}
				}
				resp, err = next(ctx, method, params)
			}
			return resp, err
		}
	}
}

// Timeout bounds each round trip with a context deadline.
func Timeout(d time.Duration) Interceptor {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, method string, params []interface{}) (*Response, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, method, params)
		}
	}
}

// RateLimit delays calls to respect the given limiter.
func RateLimit(l *rate.Limiter) Interceptor {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, method string, params []interface{}) (*Response, error) {
			if err := l.Wait(ctx); err != nil {
				return nil, &TransportError{Method: method, Err: err}
			}
			return next(ctx, method, params)
		}
	}
}
