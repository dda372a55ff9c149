package types

type UncleTemplate struct {
	Hash      Hash              `json:"hash"`
	Required  bool              `json:"required"`
	Proposals []ProposalShortID `json:"proposals"`
	Header    Header            `json:"header"`
}

type CellbaseTemplate struct {
	Hash   Hash        `json:"hash"`
	Cycles *Cycle      `json:"cycles"`
	Data   Transaction `json:"data"`
}

type TransactionTemplate struct {
	Hash     Hash        `json:"hash"`
	Required bool        `json:"required"`
	Cycles   *Cycle      `json:"cycles"`
	Depends  []Uint64    `json:"depends"`
	Data     Transaction `json:"data"`
}

// BlockTemplate is everything a miner needs to assemble the next block.
type BlockTemplate struct {
	Version          Version               `json:"version"`
	CompactTarget    Uint32                `json:"compact_target"`
	CurrentTime      Timestamp             `json:"current_time"`
	Number           BlockNumber           `json:"number"`
	Epoch            EpochNumber           `json:"epoch"`
	ParentHash       Hash                  `json:"parent_hash"`
	CyclesLimit      Cycle                 `json:"cycles_limit"`
	BytesLimit       Uint64                `json:"bytes_limit"`
	UnclesCountLimit Uint64                `json:"uncles_count_limit"`
	Uncles           []UncleTemplate       `json:"uncles"`
	Transactions     []TransactionTemplate `json:"transactions"`
	Proposals        []ProposalShortID     `json:"proposals"`
	Cellbase         CellbaseTemplate      `json:"cellbase"`
	WorkID           Uint64                `json:"work_id"`
	Dao              Hash                  `json:"dao"`
}
