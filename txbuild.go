package ckbrpc

import (
	"github.com/pkg/errors"

	"github.com/uckb/ckbrpc/types"
)

type (
	// TransactionBuilder assembles a types.Transaction ready for
	// SendTransaction or DryRunTransaction.
	//
	// Example:
	//
	//	tx, err := ckbrpc.NewTransactionBuilder().
	//		CellDep(dep).
	//		Input(types.CellInput{PreviousOutput: op}).
	//		Output(out, data).
	//		Witness(witness).
	//		Build()
	TransactionBuilder struct {
		build *transactionBuild
	}

	transactionBuild struct {
		version     types.Version
		cellDeps    []types.CellDep
		headerDeps  []types.Hash
		inputs      []types.CellInput
		outputs     []types.CellOutput
		outputsData []types.Bytes
		witnesses   []types.Bytes
	}
)

var (
	ErrNoInputs         = errors.New("transaction requires at least one input")
	ErrOutputsDataCount = errors.New("outputs and outputs_data lengths differ")
)

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{build: &transactionBuild{}}
}

func (t *TransactionBuilder) Version(v types.Version) *TransactionBuilder {
	t.build.version = v
	return t
}

// CellDep appends dependencies resolving the scripts the transaction runs.
func (t *TransactionBuilder) CellDep(deps ...types.CellDep) *TransactionBuilder {
	t.build.cellDeps = append(t.build.cellDeps, deps...)
	return t
}

// HeaderDep appends block headers the transaction's scripts may read.
func (t *TransactionBuilder) HeaderDep(hashes ...types.Hash) *TransactionBuilder {
	t.build.headerDeps = append(t.build.headerDeps, hashes...)
	return t
}

func (t *TransactionBuilder) Input(inputs ...types.CellInput) *TransactionBuilder {
	t.build.inputs = append(t.build.inputs, inputs...)
	return t
}

// Output appends an output cell together with its data. Data and outputs
// travel in parallel arrays on the wire, so they are set together here.
func (t *TransactionBuilder) Output(output types.CellOutput, data types.Bytes) *TransactionBuilder {
	t.build.outputs = append(t.build.outputs, output)
	if data == nil {
		data = types.Bytes{}
	}
	t.build.outputsData = append(t.build.outputsData, data)
	return t
}

func (t *TransactionBuilder) Witness(witnesses ...types.Bytes) *TransactionBuilder {
	t.build.witnesses = append(t.build.witnesses, witnesses...)
	return t
}

// Build validates the parallel-array invariants and returns the
// transaction. Slices are never nil so the wire form always carries
// arrays, matching what the node emits.
func (t *TransactionBuilder) Build() (types.Transaction, error) {
	b := t.build
	if len(b.inputs) == 0 {
		return types.Transaction{}, ErrNoInputs
	}
	if len(b.outputs) != len(b.outputsData) {
		return types.Transaction{}, ErrOutputsDataCount
	}
	return types.Transaction{
		Version:     b.version,
		CellDeps:    orEmpty(b.cellDeps),
		HeaderDeps:  orEmpty(b.headerDeps),
		Inputs:      b.inputs,
		Outputs:     orEmpty(b.outputs),
		OutputsData: orEmpty(b.outputsData),
		Witnesses:   orEmpty(b.witnesses),
	}, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
