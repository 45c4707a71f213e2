package ckb

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"ccc/pkg/codec"
	"ccc/pkg/entity"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	cellInputSize = 8 + outPointSize
	cellDepSize   = outPointSize + 1

	// ShannonsPerByte is the capacity one occupied byte costs.
	ShannonsPerByte = 100_000_000
)

// CellInput spends PreviousOutput once Since is satisfied.
//
// CellOutput and OutputData describe the spent cell when known. They are not
// part of the encoding and only save lookups while a transaction is built.
type CellInput struct {
	PreviousOutput *OutPoint
	Since          uint64

	CellOutput *CellOutput
	OutputData []byte
}

var cellInputCodec = entity.New("cell input", decodeCellInput, encodeCellInput)

func CellInputFromBytes(b []byte) (*CellInput, error) {
	return cellInputCodec.FromBytes(b)
}

func encodeCellInput(c *CellInput) []byte {
	out := make([]byte, 0, cellInputSize)
	out = binary.LittleEndian.AppendUint64(out, c.Since)
	return append(out, encodeOutPoint(c.PreviousOutput)...)
}

func decodeCellInput(b []byte) (*CellInput, error) {
	if len(b) != cellInputSize {
		return nil, fmt.Errorf("%w: cell input has %d bytes, want %d", ErrInvalidLength, len(b), cellInputSize)
	}
	since, err := codec.Uint64FromLe(b[:8])
	if err != nil {
		return nil, err
	}
	previous, err := decodeOutPoint(b[8:])
	if err != nil {
		return nil, err
	}
	return &CellInput{PreviousOutput: previous, Since: since}, nil
}

func (c *CellInput) ToBytes() []byte {
	return encodeCellInput(c)
}

func (c *CellInput) Eq(other *CellInput) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	return cellInputCodec.Equal(c, other)
}

// Clone copies the encoded fields through the codec and keeps the resolved cell.
func (c *CellInput) Clone() *CellInput {
	cloned := cellInputCodec.MustClone(c)
	cloned.CellOutput = c.CellOutput.Clone()
	cloned.OutputData = bytes.Clone(c.OutputData)
	return cloned
}

// CellResolver looks cells up by out point.
type CellResolver interface {
	GetCell(ctx context.Context, outPoint *OutPoint) (*Cell, error)
}

// CompleteExtraInfos resolves the spent cell if it is not known yet.
func (c *CellInput) CompleteExtraInfos(ctx context.Context, resolver CellResolver) error {
	if c.CellOutput != nil {
		return nil
	}
	cell, err := resolver.GetCell(ctx, c.PreviousOutput)
	if err != nil {
		return fmt.Errorf("resolve input %s: %w", c.PreviousOutput, err)
	}
	if cell == nil {
		return fmt.Errorf("%w: %s", ErrCellNotResolved, c.PreviousOutput)
	}
	c.CellOutput = cell.CellOutput.Clone()
	c.OutputData = bytes.Clone(cell.OutputData)
	return nil
}

type cellInputJSON struct {
	Since          hexutil.Uint64 `json:"since"`
	PreviousOutput *OutPoint      `json:"previous_output"`
}

func (c CellInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellInputJSON{Since: hexutil.Uint64(c.Since), PreviousOutput: c.PreviousOutput})
}

func (c *CellInput) UnmarshalJSON(data []byte) error {
	var w cellInputJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cell input: %w", err)
	}
	if w.PreviousOutput == nil {
		return fmt.Errorf("cell input: missing previous_output")
	}
	c.Since = uint64(w.Since)
	c.PreviousOutput = w.PreviousOutput
	return nil
}

// CellOutput is the state of a cell: its Capacity in shannons and the scripts guarding it.
type CellOutput struct {
	Capacity uint64
	Lock     *Script
	Type     *Script
}

var cellOutputCodec = entity.New("cell output", decodeCellOutput, encodeCellOutput)

func CellOutputFromBytes(b []byte) (*CellOutput, error) {
	return cellOutputCodec.FromBytes(b)
}

func encodeCellOutput(c *CellOutput) []byte {
	typ := []byte{}
	if c.Type != nil {
		typ = encodeScript(c.Type)
	}
	return codec.PackTable(codec.Uint64Le(c.Capacity), encodeScript(c.Lock), typ)
}

func decodeCellOutput(b []byte) (*CellOutput, error) {
	fields, err := codec.UnpackTable(b, 3)
	if err != nil {
		return nil, err
	}
	capacity, err := codec.Uint64FromLe(fields[0])
	if err != nil {
		return nil, fmt.Errorf("capacity: %w", err)
	}
	lock, err := decodeScript(fields[1])
	if err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	out := &CellOutput{Capacity: capacity, Lock: lock}
	if len(fields[2]) > 0 {
		out.Type, err = decodeScript(fields[2])
		if err != nil {
			return nil, fmt.Errorf("type: %w", err)
		}
	}
	return out, nil
}

func (c *CellOutput) ToBytes() []byte {
	return encodeCellOutput(c)
}

func (c *CellOutput) Hash() Hash {
	return cellOutputCodec.MustHash(c)
}

func (c *CellOutput) Clone() *CellOutput {
	if c == nil {
		return nil
	}
	return cellOutputCodec.MustClone(c)
}

func (c *CellOutput) Eq(other *CellOutput) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	return cellOutputCodec.Equal(c, other)
}

// OccupiedSize is the number of bytes the cell occupies when it holds dataLen bytes of data.
func (c *CellOutput) OccupiedSize(dataLen int) uint64 {
	return 8 + c.Lock.OccupiedSize() + c.Type.OccupiedSize() + uint64(dataLen)
}

// MinCapacity is the smallest capacity that can hold the cell with dataLen bytes of data.
func (c *CellOutput) MinCapacity(dataLen int) uint64 {
	return c.OccupiedSize(dataLen) * ShannonsPerByte
}

type cellOutputJSON struct {
	Capacity hexutil.Uint64 `json:"capacity"`
	Lock     *Script        `json:"lock"`
	Type     *Script        `json:"type"`
}

func (c CellOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellOutputJSON{Capacity: hexutil.Uint64(c.Capacity), Lock: c.Lock, Type: c.Type})
}

func (c *CellOutput) UnmarshalJSON(data []byte) error {
	var w cellOutputJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cell output: %w", err)
	}
	if w.Lock == nil {
		return fmt.Errorf("cell output: missing lock")
	}
	c.Capacity = uint64(w.Capacity)
	c.Lock = w.Lock
	c.Type = w.Type
	return nil
}

// CellDep makes the code or dep group at OutPoint available to scripts.
type CellDep struct {
	OutPoint *OutPoint
	DepType  DepType
}

var cellDepCodec = entity.New("cell dep", decodeCellDep, encodeCellDep)

func CellDepFromBytes(b []byte) (*CellDep, error) {
	return cellDepCodec.FromBytes(b)
}

func encodeCellDep(c *CellDep) []byte {
	dt, err := c.DepType.Byte()
	if err != nil {
		panic(err)
	}
	return append(encodeOutPoint(c.OutPoint), dt)
}

func decodeCellDep(b []byte) (*CellDep, error) {
	if len(b) != cellDepSize {
		return nil, fmt.Errorf("%w: cell dep has %d bytes, want %d", ErrInvalidLength, len(b), cellDepSize)
	}
	outPoint, err := decodeOutPoint(b[:outPointSize])
	if err != nil {
		return nil, err
	}
	depType, err := DepTypeFromByte(b[outPointSize])
	if err != nil {
		return nil, err
	}
	return &CellDep{OutPoint: outPoint, DepType: depType}, nil
}

func (c *CellDep) ToBytes() []byte {
	return encodeCellDep(c)
}

func (c *CellDep) Clone() *CellDep {
	return cellDepCodec.MustClone(c)
}

func (c *CellDep) Eq(other *CellDep) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	return cellDepCodec.Equal(c, other)
}

type cellDepJSON struct {
	OutPoint *OutPoint `json:"out_point"`
	DepType  DepType   `json:"dep_type"`
}

func (c CellDep) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellDepJSON{OutPoint: c.OutPoint, DepType: c.DepType})
}

func (c *CellDep) UnmarshalJSON(data []byte) error {
	var w cellDepJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cell dep: %w", err)
	}
	if w.OutPoint == nil {
		return fmt.Errorf("cell dep: missing out_point")
	}
	if _, err := w.DepType.Byte(); err != nil {
		return fmt.Errorf("cell dep: %w", err)
	}
	c.OutPoint = w.OutPoint
	c.DepType = w.DepType
	return nil
}

// Cell is a live or historical output together with its location and data.
type Cell struct {
	OutPoint   *OutPoint
	CellOutput *CellOutput
	OutputData []byte
}

func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	return &Cell{
		OutPoint:   c.OutPoint.Clone(),
		CellOutput: c.CellOutput.Clone(),
		OutputData: bytes.Clone(c.OutputData),
	}
}

// Eq compares the out point, output and data encodings.
func (c *Cell) Eq(other *Cell) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	return c.OutPoint.Eq(other.OutPoint) &&
		c.CellOutput.Eq(other.CellOutput) &&
		bytes.Equal(c.OutputData, other.OutputData)
}

// CellInput spends the cell, carrying its output and data along.
func (c *Cell) CellInput() *CellInput {
	return &CellInput{
		PreviousOutput: c.OutPoint.Clone(),
		CellOutput:     c.CellOutput.Clone(),
		OutputData:     bytes.Clone(c.OutputData),
	}
}

// Capacity returns the cell's capacity in shannons.
func (c *Cell) Capacity() uint64 {
	return c.CellOutput.Capacity
}

type cellJSON struct {
	OutPoint   *OutPoint     `json:"out_point"`
	CellOutput *CellOutput   `json:"output"`
	OutputData hexutil.Bytes `json:"output_data"`
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellJSON{OutPoint: c.OutPoint, CellOutput: c.CellOutput, OutputData: c.OutputData})
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var w cellJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	if w.OutPoint == nil || w.CellOutput == nil {
		return fmt.Errorf("cell: missing out_point or output")
	}
	c.OutPoint = w.OutPoint
	c.CellOutput = w.CellOutput
	c.OutputData = w.OutputData
	if c.OutputData == nil {
		c.OutputData = []byte{}
	}
	return nil
}
