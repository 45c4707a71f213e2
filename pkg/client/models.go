package client

import (
	"ccc/pkg/ckb"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusProposed  TransactionStatus = "proposed"
	StatusCommitted TransactionStatus = "committed"
	StatusUnknown   TransactionStatus = "unknown"
	StatusRejected  TransactionStatus = "rejected"
)

// TransactionResponse is a transaction as the node reports it.
type TransactionResponse struct {
	Transaction *ckb.Transaction
	Status      TransactionStatus
	BlockHash   *ckb.Hash
	BlockNumber *uint64
}

type TipHeader struct {
	Number     uint64
	Hash       ckb.Hash
	ParentHash ckb.Hash
	Epoch      uint64
	Timestamp  uint64
}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// CellsPage is one page of an indexer search.
type CellsPage struct {
	Cells      []*ckb.Cell
	LastCursor string
}

type OutputsValidator string

const (
	ValidatorPassthrough         OutputsValidator = "passthrough"
	ValidatorWellKnownScriptOnly OutputsValidator = "well_known_scripts_only"
)

type txResult struct {
	index       int
	transaction *ckb.Transaction
	err         error
}

type transactionJSON struct {
	Transaction *ckb.Transaction `json:"transaction"`
	TxStatus    struct {
		Status      TransactionStatus `json:"status"`
		BlockHash   *ckb.Hash         `json:"block_hash"`
		BlockNumber *hexutil.Uint64   `json:"block_number"`
	} `json:"tx_status"`
}

type headerJSON struct {
	Number     hexutil.Uint64 `json:"number"`
	Hash       ckb.Hash       `json:"hash"`
	ParentHash ckb.Hash       `json:"parent_hash"`
	Epoch      hexutil.Uint64 `json:"epoch"`
	Timestamp  hexutil.Uint64 `json:"timestamp"`
}

type feeRateStatisticsJSON struct {
	Mean   hexutil.Uint64 `json:"mean"`
	Median hexutil.Uint64 `json:"median"`
}

type liveCellJSON struct {
	Cell *struct {
		Output *ckb.CellOutput `json:"output"`
		Data   *struct {
			Content hexutil.Bytes `json:"content"`
		} `json:"data"`
	} `json:"cell"`
	Status string `json:"status"`
}

type indexerCellJSON struct {
	Output     *ckb.CellOutput `json:"output"`
	OutputData hexutil.Bytes   `json:"output_data"`
	OutPoint   *ckb.OutPoint   `json:"out_point"`
}

type indexerCellsJSON struct {
	Objects    []indexerCellJSON `json:"objects"`
	LastCursor string            `json:"last_cursor"`
}

type cellsCapacityJSON struct {
	Capacity hexutil.Uint64 `json:"capacity"`
}
