// Package ckbrpc is an unofficial SDK for the CKB node's JSON-RPC API.
// It exposes one strongly-typed method per supported RPC call on top of a
// small JSON-RPC 2.0 core, plus Call/CallResult escape hatches for methods
// the SDK does not wrap.
package ckbrpc

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/uckb/ckbrpc/internal/rpc"
)

// Client wrapper of rpc.Client.
//
// A Client is safe for concurrent use; request ids are assigned atomically
// and each call is an independent round trip.
type Client struct {
	*rpc.Client

	timeout time.Duration
}

// Error kinds surfaced by every call. Branch with errors.As:
//
//	var pe *ckbrpc.ProtocolError
//	if errors.As(err, &pe) && pe.RPC != nil { ... pe.RPC.Code ... }
type (
	// TransportError: the round trip failed (network error, timeout,
	// non-2xx HTTP status). Never retried unless a Retry interceptor is
	// installed.
	TransportError = rpc.TransportError
	// ProtocolError: malformed JSON-RPC framing, mismatched response id,
	// or a node-reported error object (carried verbatim in RPC).
	ProtocolError = rpc.ProtocolError
	// DecodeError: the result does not match the method's type shape.
	DecodeError = rpc.DecodeError
	// RPCError is the raw error object a node reports.
	RPCError = rpc.Error

	// Interceptor composes transport policy around calls.
	Interceptor = rpc.Interceptor
)

// Retry returns an interceptor that retries transport failures with
// exponential backoff. It is never installed by default.
func Retry(maxRetries int, baseDelay time.Duration) Interceptor {
	return rpc.Retry(maxRetries, baseDelay)
}

// RateLimit returns an interceptor that throttles outgoing calls.
func RateLimit(l *rate.Limiter) Interceptor {
	return rpc.RateLimit(l)
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTP replaces the HTTP transport (connection pooling, TLS, proxies
// are its concern, not the client's).
func WithHTTP(h rpc.HTTP) Option {
	return func(c *Client) { c.HTTP = h }
}

// WithTimeout bounds every round trip with a per-call deadline, whatever
// transport is installed and in whatever order the options are given.
// Without it the client imposes no timeout of its own.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHeader adds a header (e.g. authentication) to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.Header == nil {
			c.Header = http.Header{}
		}
		c.Header.Add(key, value)
	}
}

// WithInterceptors installs transport policy, outermost first.
func WithInterceptors(ics ...Interceptor) Option {
	return func(c *Client) { c.Use(ics...) }
}

// New returns a client for the node listening at url.
func New(url string, opts ...Option) *Client {
	c := &Client{Client: &rpc.Client{URL: url}}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.Use(rpc.Timeout(c.timeout))
	}
	return c
}

// Methods, grouped by node module.
const (
	// Chain
	GetBlock               = "get_block"
	GetBlockByNumber       = "get_block_by_number"
	GetHeader              = "get_header"
	GetHeaderByNumber      = "get_header_by_number"
	GetTransaction         = "get_transaction"
	GetBlockHash           = "get_block_hash"
	GetTipHeader           = "get_tip_header"
	GetLiveCell            = "get_live_cell"
	GetTipBlockNumber      = "get_tip_block_number"
	GetCurrentEpoch        = "get_current_epoch"
	GetEpochByNumber       = "get_epoch_by_number"
	GetBlockEconomicState  = "get_block_economic_state"
	GetTransactionProof    = "get_transaction_proof"
	VerifyTransactionProof = "verify_transaction_proof"
	GetForkBlock           = "get_fork_block"
	// Pool
	SendTransaction = "send_transaction"
	TxPoolInfo      = "tx_pool_info"
	ClearTxPool     = "clear_tx_pool"
	// Miner
	GetBlockTemplate = "get_block_template"
	SubmitBlock      = "submit_block"
	// Stats
	GetBlockchainInfo = "get_blockchain_info"
	// Net
	LocalNodeInfo        = "local_node_info"
	GetPeers             = "get_peers"
	GetBannedAddresses   = "get_banned_addresses"
	ClearBannedAddresses = "clear_banned_addresses"
	SetBan               = "set_ban"
	SyncState            = "sync_state"
	SetNetworkActive     = "set_network_active"
	AddNode              = "add_node"
	RemoveNode           = "remove_node"
	PingPeers            = "ping_peers"
	// Alert
	SendAlert = "send_alert"
	// Experiment
	DryRunTransaction           = "dry_run_transaction"
	CalculateDaoMaximumWithdraw = "calculate_dao_maximum_withdraw"
	// Debug
	JemallocProfilingDump = "jemalloc_profiling_dump"
	UpdateMainLogger      = "update_main_logger"
	SetExtraLogger        = "set_extra_logger"
	// IntegrationTest
	ProcessBlockWithoutVerify = "process_block_without_verify"
	Truncate                  = "truncate"
	GenerateBlock             = "generate_block"
	BroadcastTransaction      = "broadcast_transaction"
	// Subscription
	Subscribe   = "subscribe"
	Unsubscribe = "unsubscribe"
)
