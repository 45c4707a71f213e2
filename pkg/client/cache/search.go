package cache

import (
	"bytes"
	"fmt"

	"ccc/pkg/ckb"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type ScriptType string

const (
	ScriptTypeLock ScriptType = "lock"
	ScriptTypeType ScriptType = "type"
)

type SearchMode string

const (
	SearchModePrefix  SearchMode = "prefix"
	SearchModeExact   SearchMode = "exact"
	SearchModePartial SearchMode = "partial"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

func (r *Range) Contains(v uint64) bool {
	return r == nil || (v >= r.Start && v < r.End)
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]hexutil.Uint64{hexutil.Uint64(r.Start), hexutil.Uint64(r.End)})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]hexutil.Uint64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	r.Start, r.End = uint64(pair[0]), uint64(pair[1])
	return nil
}

// SearchFilter narrows a search. Script and ScriptLenRange apply to the
// script on the other side of SearchKey.ScriptType.
type SearchFilter struct {
	Script               *ckb.Script   `json:"script,omitempty"`
	ScriptLenRange       *Range        `json:"script_len_range,omitempty"`
	OutputData           hexutil.Bytes `json:"output_data,omitempty"`
	OutputDataSearchMode SearchMode    `json:"output_data_filter_mode,omitempty"`
	OutputDataLenRange   *Range        `json:"output_data_len_range,omitempty"`
	OutputCapacityRange  *Range        `json:"output_capacity_range,omitempty"`
}

// SearchKey selects cells by one of their scripts, in the shape the node indexer expects.
type SearchKey struct {
	Script           *ckb.Script   `json:"script"`
	ScriptType       ScriptType    `json:"script_type"`
	ScriptSearchMode SearchMode    `json:"script_search_mode,omitempty"`
	Filter           *SearchFilter `json:"filter,omitempty"`
	WithData         bool          `json:"with_data"`
}

// Match reports whether cell satisfies key.
func (key *SearchKey) Match(cell *ckb.Cell) bool {
	primary, other := cell.CellOutput.Lock, cell.CellOutput.Type
	if key.ScriptType == ScriptTypeType {
		primary, other = other, primary
	}
	if !matchScript(key.Script, primary, key.ScriptSearchMode) {
		return false
	}

	f := key.Filter
	if f == nil {
		return true
	}
	if f.Script != nil && !matchScript(f.Script, other, SearchModePrefix) {
		return false
	}
	if !f.ScriptLenRange.Contains(other.OccupiedSize()) {
		return false
	}
	if f.OutputData != nil && !matchBytes(f.OutputData, cell.OutputData, f.OutputDataSearchMode) {
		return false
	}
	if !f.OutputDataLenRange.Contains(uint64(len(cell.OutputData))) {
		return false
	}
	return f.OutputCapacityRange.Contains(cell.CellOutput.Capacity)
}

func matchScript(want, got *ckb.Script, mode SearchMode) bool {
	if want == nil {
		return true
	}
	if got == nil || want.CodeHash != got.CodeHash || want.HashType != got.HashType {
		return false
	}
	return matchBytes(want.Args, got.Args, mode)
}

// an empty mode is a prefix match, the indexer default
func matchBytes(want, got []byte, mode SearchMode) bool {
	switch mode {
	case SearchModeExact:
		return bytes.Equal(want, got)
	case SearchModePartial:
		return bytes.Contains(got, want)
	default:
		return bytes.HasPrefix(got, want)
	}
}
