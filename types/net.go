package types

type NodeAddress struct {
	Address string `json:"address"`
	Score   Uint64 `json:"score"`
}

type LocalNodeProtocol struct {
	ID              Uint64   `json:"id"`
	Name            string   `json:"name"`
	SupportVersions []string `json:"support_versions"`
}

type LocalNode struct {
	Version     string              `json:"version"`
	NodeID      string              `json:"node_id"`
	Active      bool                `json:"active"`
	Addresses   []NodeAddress       `json:"addresses"`
	Protocols   []LocalNodeProtocol `json:"protocols"`
	Connections Uint64              `json:"connections"`
}

type RemoteNodeProtocol struct {
	ID      Uint64 `json:"id"`
	Version string `json:"version"`
}

type PeerSyncState struct {
	BestKnownHeaderHash    *Hash   `json:"best_known_header_hash"`
	BestKnownHeaderNumber  *Uint64 `json:"best_known_header_number"`
	LastCommonHeaderHash   *Hash   `json:"last_common_header_hash"`
	LastCommonHeaderNumber *Uint64 `json:"last_common_header_number"`
	UnknownHeaderListSize  Uint64  `json:"unknown_header_list_size"`
}

type RemoteNode struct {
	Version           string               `json:"version"`
	NodeID            string               `json:"node_id"`
	ConnectedDuration Uint64               `json:"connected_duration"`
	Addresses         []NodeAddress        `json:"addresses"`
	IsOutbound        bool                 `json:"is_outbound"`
	LastPingDuration  *Uint64              `json:"last_ping_duration"`
	SyncState         *PeerSyncState       `json:"sync_state"`
	Protocols         []RemoteNodeProtocol `json:"protocols"`
}

type BannedAddr struct {
	Address   string    `json:"address"`
	BanUntil  Timestamp `json:"ban_until"`
	BanReason string    `json:"ban_reason"`
	CreatedAt Timestamp `json:"created_at"`
}

type SyncState struct {
	IBD                     bool        `json:"ibd"`
	BestKnownBlockNumber    BlockNumber `json:"best_known_block_number"`
	BestKnownBlockTimestamp Timestamp   `json:"best_known_block_timestamp"`
	OrphanBlocksCount       Uint64      `json:"orphan_blocks_count"`
	InflightBlocksCount     Uint64      `json:"inflight_blocks_count"`
	FastTime                Uint64      `json:"fast_time"`
	NormalTime              Uint64      `json:"normal_time"`
	LowTime                 Uint64      `json:"low_time"`
}

type TxPoolInfo struct {
	TipHash          Hash        `json:"tip_hash"`
	TipNumber        BlockNumber `json:"tip_number"`
	Pending          Uint64      `json:"pending"`
	Proposed         Uint64      `json:"proposed"`
	Orphan           Uint64      `json:"orphan"`
	TotalTxSize      Uint64      `json:"total_tx_size"`
	TotalTxCycles    Uint64      `json:"total_tx_cycles"`
	MinFeeRate       Uint64      `json:"min_fee_rate"`
	LastTxsUpdatedAt Timestamp   `json:"last_txs_updated_at"`
}

// AlertMessage is the readable digest of an alert, reported by
// get_blockchain_info.
type AlertMessage struct {
	ID          Uint32    `json:"id"`
	Priority    Uint32    `json:"priority"`
	NoticeUntil Timestamp `json:"notice_until"`
	Message     string    `json:"message"`
}

// Alert is the full signed alert accepted by send_alert.
type Alert struct {
	ID          Uint32    `json:"id"`
	Cancel      Uint32    `json:"cancel"`
	MinVersion  *string   `json:"min_version"`
	MaxVersion  *string   `json:"max_version"`
	Priority    Uint32    `json:"priority"`
	NoticeUntil Timestamp `json:"notice_until"`
	Message     string    `json:"message"`
	Signatures  []Bytes   `json:"signatures"`
}

type ChainInfo struct {
	Chain                  string         `json:"chain"`
	MedianTime             Timestamp      `json:"median_time"`
	Epoch                  EpochNumber    `json:"epoch"`
	Difficulty             Uint128        `json:"difficulty"`
	IsInitialBlockDownload bool           `json:"is_initial_block_download"`
	Alerts                 []AlertMessage `json:"alerts"`
}

// Topic identifies a pubsub event stream.
type Topic string

const (
	TopicNewTipHeader   Topic = "new_tip_header"
	TopicNewTipBlock    Topic = "new_tip_block"
	TopicNewTransaction Topic = "new_transaction"
)
