package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ccc/pkg/ckb"
	"ccc/pkg/jsonrpc"
)

// GetTransaction returns the transaction with hash from the cache, or from the
// node when the cache does not hold it. It returns nil when neither knows it.
func (c *Client) GetTransaction(ctx context.Context, hash ckb.Hash) (*ckb.Transaction, error) {
	tx, err := c.cache.GetTransaction(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get cached transaction %s: %w", hash.Hex(), err)
	}
	if tx != nil {
		return tx, nil
	}

	c.logs.Debugw("transaction not cached, asking node", "tx_hash", hash.Hex())
	res, err := c.GetTransactionWithStatus(ctx, hash)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return res.Transaction, nil
}

// GetTransactionWithStatus always asks the node. Found transactions are recorded in the cache.
func (c *Client) GetTransactionWithStatus(ctx context.Context, hash ckb.Hash) (*TransactionResponse, error) {
	var res *transactionJSON
	if err := jsonrpc.Call(ctx, c.transport, &res, "get_transaction", hash); err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", hash.Hex(), err)
	}
	if res == nil || res.Transaction == nil {
		return nil, nil
	}

	if err := c.cache.RecordTransactions(ctx, res.Transaction); err != nil {
		return nil, fmt.Errorf("record transaction %s: %w", hash.Hex(), err)
	}

	out := &TransactionResponse{
		Transaction: res.Transaction,
		Status:      res.TxStatus.Status,
		BlockHash:   res.TxStatus.BlockHash,
	}
	if res.TxStatus.BlockNumber != nil {
		n := uint64(*res.TxStatus.BlockNumber)
		out.BlockNumber = &n
	}
	return out, nil
}

// GetTransactions fetches hashes concurrently. The result is aligned with
// hashes; failed or unknown entries are nil and failures are joined into the error.
func (c *Client) GetTransactions(ctx context.Context, hashes []ckb.Hash) ([]*ckb.Transaction, error) {
	resultsChan := make(chan *txResult)

	var wg sync.WaitGroup
	for i, hash := range hashes {
		wg.Add(1)
		go func(i int, hash ckb.Hash) {
			defer wg.Done()
			tx, err := c.GetTransaction(ctx, hash)
			resultsChan <- &txResult{index: i, transaction: tx, err: err}
		}(i, hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make([]*ckb.Transaction, len(hashes))
	var aggrErr error
	for result := range resultsChan {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		results[result.index] = result.transaction
	}

	return results, aggrErr
}
