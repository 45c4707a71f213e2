package ckb

import (
	"fmt"
	"regexp"

	"ccc/pkg/codec"
	"ccc/pkg/fixedpoint"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// Like types are loosely typed inputs, usually decoded from user facing JSON.
// The From functions validate them and build entities.

var (
	hexRegex    = regexp.MustCompile(`^0x([0-9a-fA-F]{2})*$`)
	hash32Regex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

type ScriptLike struct {
	CodeHash string `json:"codeHash"`
	HashType string `json:"hashType"`
	Args     string `json:"args"`
}

func (l ScriptLike) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.CodeHash, validation.Required, validation.Match(hash32Regex)),
		validation.Field(&l.HashType, validation.Required,
			validation.In(string(HashTypeType), string(HashTypeData), string(HashTypeData1), string(HashTypeData2))),
		validation.Field(&l.Args, validation.Match(hexRegex)),
	)
}

func ScriptFrom(l ScriptLike) (*Script, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validate script: %w", err)
	}
	args, err := codec.BytesFrom(l.Args)
	if err != nil {
		return nil, fmt.Errorf("script args: %w", err)
	}
	return NewScript(common.HexToHash(l.CodeHash), HashType(l.HashType), args)
}

type OutPointLike struct {
	TxHash string `json:"txHash"`
	Index  uint32 `json:"index"`
}

func (l OutPointLike) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.TxHash, validation.Required, validation.Match(hash32Regex)),
	)
}

func OutPointFrom(l OutPointLike) (*OutPoint, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validate out point: %w", err)
	}
	return NewOutPoint(common.HexToHash(l.TxHash), l.Index), nil
}

type CellInputLike struct {
	PreviousOutput OutPointLike `json:"previousOutput"`
	Since          uint64       `json:"since"`
}

func CellInputFrom(l CellInputLike) (*CellInput, error) {
	previous, err := OutPointFrom(l.PreviousOutput)
	if err != nil {
		return nil, fmt.Errorf("cell input: %w", err)
	}
	return &CellInput{PreviousOutput: previous, Since: l.Since}, nil
}

// CellOutputLike carries Capacity in CKB as a decimal string. An empty
// capacity means the minimum capacity of the cell with empty data.
type CellOutputLike struct {
	Capacity string      `json:"capacity"`
	Lock     ScriptLike  `json:"lock"`
	Type     *ScriptLike `json:"type,omitempty"`
}

func CellOutputFrom(l CellOutputLike) (*CellOutput, error) {
	lock, err := ScriptFrom(l.Lock)
	if err != nil {
		return nil, fmt.Errorf("cell output lock: %w", err)
	}
	out := &CellOutput{Lock: lock}
	if l.Type != nil {
		if out.Type, err = ScriptFrom(*l.Type); err != nil {
			return nil, fmt.Errorf("cell output type: %w", err)
		}
	}

	if l.Capacity == "" {
		out.Capacity = out.MinCapacity(0)
		return out, nil
	}
	capacity, err := fixedpoint.From(l.Capacity, fixedpoint.DefaultDecimals)
	if err != nil {
		return nil, fmt.Errorf("cell output capacity: %w", err)
	}
	if capacity.Sign() < 0 || !capacity.IsUint64() {
		return nil, fmt.Errorf("cell output capacity %q: %w", l.Capacity, codec.ErrNumberOverflow)
	}
	out.Capacity = capacity.Uint64()
	return out, nil
}

type CellDepLike struct {
	OutPoint OutPointLike `json:"outPoint"`
	DepType  string       `json:"depType"`
}

func CellDepFrom(l CellDepLike) (*CellDep, error) {
	outPoint, err := OutPointFrom(l.OutPoint)
	if err != nil {
		return nil, fmt.Errorf("cell dep: %w", err)
	}
	depType, err := DepTypeFrom(l.DepType)
	if err != nil {
		return nil, fmt.Errorf("cell dep: %w", err)
	}
	return &CellDep{OutPoint: outPoint, DepType: depType}, nil
}

type TransactionLike struct {
	Version     uint32           `json:"version"`
	CellDeps    []CellDepLike    `json:"cellDeps"`
	HeaderDeps  []string         `json:"headerDeps"`
	Inputs      []CellInputLike  `json:"inputs"`
	Outputs     []CellOutputLike `json:"outputs"`
	OutputsData []string         `json:"outputsData"`
	Witnesses   []string         `json:"witnesses"`
}

func (l TransactionLike) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.HeaderDeps, validation.Each(validation.Match(hash32Regex))),
		validation.Field(&l.OutputsData, validation.Each(validation.Match(hexRegex))),
		validation.Field(&l.Witnesses, validation.Each(validation.Match(hexRegex))),
	)
}

// TransactionFrom builds a transaction, padding outputs data with empty data up to the outputs count.
func TransactionFrom(l TransactionLike) (*Transaction, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validate transaction: %w", err)
	}
	if len(l.OutputsData) > len(l.Outputs) {
		return nil, fmt.Errorf("validate transaction: %w: %d outputs data for %d outputs", ErrInvalidLength, len(l.OutputsData), len(l.Outputs))
	}

	tx := NewTransaction()
	tx.Version = l.Version
	for i, d := range l.CellDeps {
		dep, err := CellDepFrom(d)
		if err != nil {
			return nil, fmt.Errorf("cell dep %d: %w", i, err)
		}
		tx.CellDeps = append(tx.CellDeps, dep)
	}
	for _, h := range l.HeaderDeps {
		tx.HeaderDeps = append(tx.HeaderDeps, common.HexToHash(h))
	}
	for i, in := range l.Inputs {
		input, err := CellInputFrom(in)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		tx.Inputs = append(tx.Inputs, input)
	}
	for i, out := range l.Outputs {
		output, err := CellOutputFrom(out)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		var data []byte
		if i < len(l.OutputsData) {
			if data, err = codec.BytesFrom(l.OutputsData[i]); err != nil {
				return nil, fmt.Errorf("output data %d: %w", i, err)
			}
		}
		tx.AddOutput(output, data)
	}
	for i, w := range l.Witnesses {
		witness, err := codec.BytesFrom(w)
		if err != nil {
			return nil, fmt.Errorf("witness %d: %w", i, err)
		}
		tx.Witnesses = append(tx.Witnesses, witness)
	}
	return tx, nil
}
