package ckb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"

	"ccc/pkg/codec"
	"ccc/pkg/entity"
	"ccc/pkg/hasher"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Transaction consumes Inputs and creates Outputs. OutputsData is index
// aligned with Outputs and Witnesses with Inputs.
type Transaction struct {
	Version     uint32
	CellDeps    []*CellDep
	HeaderDeps  []Hash
	Inputs      []*CellInput
	Outputs     []*CellOutput
	OutputsData [][]byte
	Witnesses   [][]byte
}

var transactionCodec = entity.New("transaction", decodeTransaction, encodeTransaction)

func NewTransaction() *Transaction {
	return &Transaction{
		CellDeps:    []*CellDep{},
		HeaderDeps:  []Hash{},
		Inputs:      []*CellInput{},
		Outputs:     []*CellOutput{},
		OutputsData: [][]byte{},
		Witnesses:   [][]byte{},
	}
}

func TransactionFromBytes(b []byte) (*Transaction, error) {
	return transactionCodec.FromBytes(b)
}

func encodeRawTransaction(t *Transaction) []byte {
	cellDeps := make([][]byte, len(t.CellDeps))
	for i, d := range t.CellDeps {
		cellDeps[i] = encodeCellDep(d)
	}
	headerDeps := make([][]byte, len(t.HeaderDeps))
	for i, h := range t.HeaderDeps {
		headerDeps[i] = h[:]
	}
	inputs := make([][]byte, len(t.Inputs))
	for i, in := range t.Inputs {
		inputs[i] = encodeCellInput(in)
	}
	outputs := make([][]byte, len(t.Outputs))
	for i, out := range t.Outputs {
		outputs[i] = encodeCellOutput(out)
	}
	// outputs data always encodes aligned with outputs
	outputsData := make([][]byte, len(t.Outputs))
	for i := range t.Outputs {
		var d []byte
		if i < len(t.OutputsData) {
			d = t.OutputsData[i]
		}
		outputsData[i] = codec.PackBytes(d)
	}

	return codec.PackTable(
		codec.Uint32Le(t.Version),
		codec.PackFixVec(cellDeps),
		codec.PackFixVec(headerDeps),
		codec.PackFixVec(inputs),
		codec.PackDynVec(outputs),
		codec.PackDynVec(outputsData),
	)
}

func encodeTransaction(t *Transaction) []byte {
	witnesses := make([][]byte, len(t.Witnesses))
	for i, w := range t.Witnesses {
		witnesses[i] = codec.PackBytes(w)
	}
	return codec.PackTable(encodeRawTransaction(t), codec.PackDynVec(witnesses))
}

func decodeTransaction(b []byte) (*Transaction, error) {
	fields, err := codec.UnpackTable(b, 2)
	if err != nil {
		return nil, err
	}
	tx, err := decodeRawTransaction(fields[0])
	if err != nil {
		return nil, fmt.Errorf("raw: %w", err)
	}
	witnesses, err := unpackBytesVec(fields[1])
	if err != nil {
		return nil, fmt.Errorf("witnesses: %w", err)
	}
	tx.Witnesses = witnesses
	return tx, nil
}

func decodeRawTransaction(b []byte) (*Transaction, error) {
	fields, err := codec.UnpackTable(b, 6)
	if err != nil {
		return nil, err
	}
	tx := NewTransaction()

	if tx.Version, err = codec.Uint32FromLe(fields[0]); err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}

	deps, err := codec.UnpackFixVec(fields[1], cellDepSize)
	if err != nil {
		return nil, fmt.Errorf("cell deps: %w", err)
	}
	for _, d := range deps {
		dep, err := decodeCellDep(d)
		if err != nil {
			return nil, fmt.Errorf("cell dep: %w", err)
		}
		tx.CellDeps = append(tx.CellDeps, dep)
	}

	headers, err := codec.UnpackFixVec(fields[2], 32)
	if err != nil {
		return nil, fmt.Errorf("header deps: %w", err)
	}
	for _, h := range headers {
		tx.HeaderDeps = append(tx.HeaderDeps, Hash(h))
	}

	inputs, err := codec.UnpackFixVec(fields[3], cellInputSize)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	for _, in := range inputs {
		input, err := decodeCellInput(in)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		tx.Inputs = append(tx.Inputs, input)
	}

	outputs, err := codec.UnpackDynVec(fields[4])
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}
	for _, out := range outputs {
		output, err := decodeCellOutput(out)
		if err != nil {
			return nil, fmt.Errorf("output: %w", err)
		}
		tx.Outputs = append(tx.Outputs, output)
	}

	if tx.OutputsData, err = unpackBytesVec(fields[5]); err != nil {
		return nil, fmt.Errorf("outputs data: %w", err)
	}
	if len(tx.OutputsData) != len(tx.Outputs) {
		return nil, fmt.Errorf("%w: %d outputs with %d outputs data", ErrInvalidLength, len(tx.Outputs), len(tx.OutputsData))
	}
	return tx, nil
}

func unpackBytesVec(b []byte) ([][]byte, error) {
	items, err := codec.UnpackDynVec(b)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(items))
	for i, item := range items {
		if out[i], err = codec.UnpackBytes(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t *Transaction) ToBytes() []byte {
	return encodeTransaction(t)
}

// RawBytes is the encoding without witnesses, the preimage of the transaction hash.
func (t *Transaction) RawBytes() []byte {
	return encodeRawTransaction(t)
}

// Hash identifies the transaction. Witnesses are excluded since they carry
// signatures over this hash.
func (t *Transaction) Hash() Hash {
	return hasher.HashCkb(encodeRawTransaction(t))
}

// WitnessHash covers the full encoding including witnesses.
func (t *Transaction) WitnessHash() Hash {
	return transactionCodec.MustHash(t)
}

func (t *Transaction) Eq(other *Transaction) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return transactionCodec.Equal(t, other)
}

// Clone deep copies the transaction, keeping resolved input cells.
func (t *Transaction) Clone() *Transaction {
	cloned := transactionCodec.MustClone(t)
	for i, in := range t.Inputs {
		cloned.Inputs[i].CellOutput = in.CellOutput.Clone()
		cloned.Inputs[i].OutputData = bytes.Clone(in.OutputData)
	}
	return cloned
}

// CopyFrom replaces the content of t with a deep copy of other.
func (t *Transaction) CopyFrom(other *Transaction) {
	*t = *other.Clone()
}

// Size is the serialized size in a block, including the 4-byte offset entry.
func (t *Transaction) Size() uint64 {
	return uint64(len(encodeTransaction(t))) + 4
}

// EstimateFee prices the transaction at feeRate shannons per 1000 bytes, rounding up.
func (t *Transaction) EstimateFee(feeRate uint64) uint64 {
	return (t.Size()*feeRate + 999) / 1000
}

// AddInput appends an input and returns its index. An input spending an
// out point the transaction already spends is not added again.
func (t *Transaction) AddInput(in *CellInput) (int, bool) {
	for i, existing := range t.Inputs {
		if existing.PreviousOutput.Eq(in.PreviousOutput) {
			return i, false
		}
	}
	t.Inputs = append(t.Inputs, in)
	return len(t.Inputs) - 1, true
}

// AddOutput appends an output with its data, keeping both lists aligned.
func (t *Transaction) AddOutput(out *CellOutput, data []byte) int {
	t.padOutputsData()
	if data == nil {
		data = []byte{}
	}
	t.Outputs = append(t.Outputs, out)
	t.OutputsData = append(t.OutputsData, data)
	return len(t.Outputs) - 1
}

func (t *Transaction) padOutputsData() {
	for len(t.OutputsData) < len(t.Outputs) {
		t.OutputsData = append(t.OutputsData, []byte{})
	}
	t.OutputsData = t.OutputsData[:len(t.Outputs)]
}

// SetOutputDataAt replaces the data of output i.
func (t *Transaction) SetOutputDataAt(i int, data []byte) {
	t.padOutputsData()
	t.OutputsData[i] = bytes.Clone(data)
}

// AddCellDeps appends deps not already present.
func (t *Transaction) AddCellDeps(deps ...*CellDep) {
	for _, dep := range deps {
		found := false
		for _, existing := range t.CellDeps {
			if existing.Eq(dep) {
				found = true
				break
			}
		}
		if !found {
			t.CellDeps = append(t.CellDeps, dep.Clone())
		}
	}
}

// AddHeaderDeps appends header hashes not already present.
func (t *Transaction) AddHeaderDeps(hashes ...Hash) {
	for _, h := range hashes {
		found := false
		for _, existing := range t.HeaderDeps {
			if existing == h {
				found = true
				break
			}
		}
		if !found {
			t.HeaderDeps = append(t.HeaderDeps, h)
		}
	}
}

// GetWitnessArgsAt decodes witness i. A missing or empty witness yields nil.
func (t *Transaction) GetWitnessArgsAt(i int) (*WitnessArgs, error) {
	if i < 0 || i >= len(t.Witnesses) || len(t.Witnesses[i]) == 0 {
		return nil, nil
	}
	wa, err := WitnessArgsFromBytes(t.Witnesses[i])
	if err != nil {
		return nil, fmt.Errorf("witness %d: %w", i, err)
	}
	return wa, nil
}

// SetWitnessArgsAt encodes wa into witness i, growing the witness list with empty witnesses.
func (t *Transaction) SetWitnessArgsAt(i int, wa *WitnessArgs) {
	for len(t.Witnesses) <= i {
		t.Witnesses = append(t.Witnesses, []byte{})
	}
	t.Witnesses[i] = wa.ToBytes()
}

// CompleteExtraInfos resolves every input's spent cell.
func (t *Transaction) CompleteExtraInfos(ctx context.Context, resolver CellResolver) error {
	for _, in := range t.Inputs {
		if err := in.CompleteExtraInfos(ctx, resolver); err != nil {
			return err
		}
	}
	return nil
}

// FindInputIndexByLock returns the first input locked by lock, or -1.
func (t *Transaction) FindInputIndexByLock(ctx context.Context, lock *Script, resolver CellResolver) (int, error) {
	for i, in := range t.Inputs {
		if err := in.CompleteExtraInfos(ctx, resolver); err != nil {
			return -1, err
		}
		if in.CellOutput.Lock.Eq(lock) {
			return i, nil
		}
	}
	return -1, nil
}

// FindLastInputIndexByLock returns the last input locked by lock, or -1.
func (t *Transaction) FindLastInputIndexByLock(ctx context.Context, lock *Script, resolver CellResolver) (int, error) {
	for i := len(t.Inputs) - 1; i >= 0; i-- {
		in := t.Inputs[i]
		if err := in.CompleteExtraInfos(ctx, resolver); err != nil {
			return -1, err
		}
		if in.CellOutput.Lock.Eq(lock) {
			return i, nil
		}
	}
	return -1, nil
}

func (t *Transaction) GetInputsCapacity(ctx context.Context, resolver CellResolver) (uint64, error) {
	var total uint64
	for _, in := range t.Inputs {
		if err := in.CompleteExtraInfos(ctx, resolver); err != nil {
			return 0, err
		}
		if total > math.MaxUint64-in.CellOutput.Capacity {
			return 0, fmt.Errorf("inputs capacity: %w", codec.ErrNumberOverflow)
		}
		total += in.CellOutput.Capacity
	}
	return total, nil
}

func (t *Transaction) GetOutputsCapacity() (uint64, error) {
	var total uint64
	for _, out := range t.Outputs {
		if total > math.MaxUint64-out.Capacity {
			return 0, fmt.Errorf("outputs capacity: %w", codec.ErrNumberOverflow)
		}
		total += out.Capacity
	}
	return total, nil
}

// GetFee is the inputs capacity left unclaimed by outputs.
func (t *Transaction) GetFee(ctx context.Context, resolver CellResolver) (uint64, error) {
	in, err := t.GetInputsCapacity(ctx, resolver)
	if err != nil {
		return 0, err
	}
	out, err := t.GetOutputsCapacity()
	if err != nil {
		return 0, err
	}
	if out > in {
		return 0, fmt.Errorf("%w: inputs %d, outputs %d", ErrOutputsExceed, in, out)
	}
	return in - out, nil
}

// GetFeeRate is the fee per 1000 bytes the transaction currently pays.
func (t *Transaction) GetFeeRate(ctx context.Context, resolver CellResolver) (uint64, error) {
	fee, err := t.GetFee(ctx, resolver)
	if err != nil {
		return 0, err
	}
	return fee * 1000 / t.Size(), nil
}

type transactionJSON struct {
	Version     hexutil.Uint64  `json:"version"`
	CellDeps    []*CellDep      `json:"cell_deps"`
	HeaderDeps  []Hash          `json:"header_deps"`
	Inputs      []*CellInput    `json:"inputs"`
	Outputs     []*CellOutput   `json:"outputs"`
	OutputsData []hexutil.Bytes `json:"outputs_data"`
	Witnesses   []hexutil.Bytes `json:"witnesses"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	w := transactionJSON{
		Version:     hexutil.Uint64(t.Version),
		CellDeps:    nonNil(t.CellDeps),
		HeaderDeps:  nonNil(t.HeaderDeps),
		Inputs:      nonNil(t.Inputs),
		Outputs:     nonNil(t.Outputs),
		OutputsData: make([]hexutil.Bytes, len(t.Outputs)),
		Witnesses:   make([]hexutil.Bytes, len(t.Witnesses)),
	}
	for i := range t.Outputs {
		w.OutputsData[i] = hexutil.Bytes{}
		if i < len(t.OutputsData) {
			w.OutputsData[i] = t.OutputsData[i]
		}
	}
	for i, d := range t.Witnesses {
		w.Witnesses[i] = d
	}
	return json.Marshal(w)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	if uint64(w.Version) > math.MaxUint32 {
		return fmt.Errorf("transaction version %d: %w", uint64(w.Version), codec.ErrNumberOverflow)
	}
	if len(w.OutputsData) != len(w.Outputs) {
		return fmt.Errorf("transaction: %w: %d outputs with %d outputs data", ErrInvalidLength, len(w.Outputs), len(w.OutputsData))
	}

	*t = Transaction{
		Version:     uint32(w.Version),
		CellDeps:    nonNil(w.CellDeps),
		HeaderDeps:  nonNil(w.HeaderDeps),
		Inputs:      nonNil(w.Inputs),
		Outputs:     nonNil(w.Outputs),
		OutputsData: make([][]byte, len(w.OutputsData)),
		Witnesses:   make([][]byte, len(w.Witnesses)),
	}
	for i, d := range w.OutputsData {
		t.OutputsData[i] = nonNil([]byte(d))
	}
	for i, d := range w.Witnesses {
		t.Witnesses[i] = nonNil([]byte(d))
	}
	return nil
}
