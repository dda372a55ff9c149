package types

// ScriptHashType controls how a script's code_hash is matched against
// cells carrying the code.
type ScriptHashType string

const (
	ScriptHashTypeData  ScriptHashType = "data"
	ScriptHashTypeType  ScriptHashType = "type"
	ScriptHashTypeData1 ScriptHashType = "data1"
)

// DepType describes how a cell dependency is resolved.
type DepType string

const (
	DepTypeCode     DepType = "code"
	DepTypeDepGroup DepType = "dep_group"
)

type Script struct {
	CodeHash Hash           `json:"code_hash"`
	HashType ScriptHashType `json:"hash_type"`
	Args     Bytes          `json:"args"`
}

type OutPoint struct {
	TxHash Hash   `json:"tx_hash"`
	Index  Uint32 `json:"index"`
}

type CellInput struct {
	Since          Uint64   `json:"since"`
	PreviousOutput OutPoint `json:"previous_output"`
}

// CellOutput's Type script is optional; nil round-trips as JSON null.
type CellOutput struct {
	Capacity Capacity `json:"capacity"`
	Lock     Script   `json:"lock"`
	Type     *Script  `json:"type"`
}

type CellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  DepType  `json:"dep_type"`
}

type Transaction struct {
	Version     Version      `json:"version"`
	CellDeps    []CellDep    `json:"cell_deps"`
	HeaderDeps  []Hash       `json:"header_deps"`
	Inputs      []CellInput  `json:"inputs"`
	Outputs     []CellOutput `json:"outputs"`
	OutputsData []Bytes      `json:"outputs_data"`
	Witnesses   []Bytes      `json:"witnesses"`
}

// TransactionView is a Transaction together with the hash the node
// computed for it.
type TransactionView struct {
	Transaction
	Hash Hash `json:"hash"`
}

type Header struct {
	Version          Version     `json:"version"`
	CompactTarget    Uint32      `json:"compact_target"`
	Timestamp        Timestamp   `json:"timestamp"`
	Number           BlockNumber `json:"number"`
	Epoch            Uint64      `json:"epoch"`
	ParentHash       Hash        `json:"parent_hash"`
	TransactionsRoot Hash        `json:"transactions_root"`
	ProposalsHash    Hash        `json:"proposals_hash"`
	ExtraHash        Hash        `json:"extra_hash"`
	Dao              Hash        `json:"dao"`
	Nonce            Uint128     `json:"nonce"`
}

type HeaderView struct {
	Header
	Hash Hash `json:"hash"`
}

type UncleBlock struct {
	Header    Header            `json:"header"`
	Proposals []ProposalShortID `json:"proposals"`
}

type UncleBlockView struct {
	Header    HeaderView        `json:"header"`
	Proposals []ProposalShortID `json:"proposals"`
}

type Block struct {
	Header       Header            `json:"header"`
	Uncles       []UncleBlock      `json:"uncles"`
	Transactions []Transaction     `json:"transactions"`
	Proposals    []ProposalShortID `json:"proposals"`
}

type BlockView struct {
	Header       HeaderView        `json:"header"`
	Uncles       []UncleBlockView  `json:"uncles"`
	Transactions []TransactionView `json:"transactions"`
	Proposals    []ProposalShortID `json:"proposals"`
}

// TransactionStatus is the lifecycle stage of a transaction known to the
// node.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusProposed  TransactionStatus = "proposed"
	TransactionStatusCommitted TransactionStatus = "committed"
)

// TxStatus's BlockHash is only set once the transaction is committed.
type TxStatus struct {
	Status    TransactionStatus `json:"status"`
	BlockHash *Hash             `json:"block_hash"`
}

type TransactionWithStatus struct {
	Transaction TransactionView `json:"transaction"`
	TxStatus    TxStatus        `json:"tx_status"`
}

// CellStatus is the liveness of a cell: live, dead or unknown.
type CellStatus string

const (
	CellStatusLive    CellStatus = "live"
	CellStatusDead    CellStatus = "dead"
	CellStatusUnknown CellStatus = "unknown"
)

type CellData struct {
	Content Bytes `json:"content"`
	Hash    Hash  `json:"hash"`
}

// CellInfo's Data is nil unless the cell was fetched with its data.
type CellInfo struct {
	Output CellOutput `json:"output"`
	Data   *CellData  `json:"data"`
}

type CellWithStatus struct {
	Cell   *CellInfo  `json:"cell"`
	Status CellStatus `json:"status"`
}

type EpochView struct {
	Number        EpochNumber `json:"number"`
	StartNumber   BlockNumber `json:"start_number"`
	Length        Uint64      `json:"length"`
	CompactTarget Uint32      `json:"compact_target"`
}

type BlockIssuance struct {
	Primary   Capacity `json:"primary"`
	Secondary Capacity `json:"secondary"`
}

type MinerReward struct {
	Primary   Capacity `json:"primary"`
	Secondary Capacity `json:"secondary"`
	Committed Capacity `json:"committed"`
	Proposed  Capacity `json:"proposed"`
}

type BlockEconomicState struct {
	Issuance    BlockIssuance `json:"issuance"`
	MinerReward MinerReward   `json:"miner_reward"`
	TxsFee      Capacity      `json:"txs_fee"`
	FinalizedAt Hash          `json:"finalized_at"`
}

type MerkleProof struct {
	Indices []Uint32 `json:"indices"`
	Lemmas  []Hash   `json:"lemmas"`
}

type TransactionProof struct {
	BlockHash     Hash        `json:"block_hash"`
	WitnessesRoot Hash        `json:"witnesses_root"`
	Proof         MerkleProof `json:"proof"`
}

// OutputsValidator restricts which output lock scripts send_transaction
// accepts.
type OutputsValidator string

const (
	OutputsValidatorPassthrough          OutputsValidator = "passthrough"
	OutputsValidatorWellKnownScriptsOnly OutputsValidator = "well_known_scripts_only"
)

type DryRunResult struct {
	Cycles Cycle `json:"cycles"`
}
