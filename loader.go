package tally

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	accountsFile     = "accounts.jsonl"
	transactionsFile = "transactions.jsonl"
)

// Book is the on-disk working set: the persisted account definitions and
// the imported transactions, as found in a data directory. It is the local
// cache of whatever hosted store the importer syncs with.
type Book struct {
	Accounts     []Account
	Transactions []Transaction
}

// LoadBook reads accounts.jsonl and transactions.jsonl from dir. A missing
// file is treated as an empty set, so a fresh directory is a valid empty
// book.
func LoadBook(dir string) (*Book, error) {
	book := &Book{}

	accounts, err := decodeFile(filepath.Join(dir, accountsFile), DecodeAccounts)
	if err != nil {
		return nil, err
	}
	book.Accounts = accounts

	txs, err := decodeFile(filepath.Join(dir, transactionsFile), DecodeTransactions)
	if err != nil {
		return nil, err
	}
	book.Transactions = txs

	return book, nil
}

// SaveTransactions rewrites the transactions file of a book directory in
// canonical replay order.
func SaveTransactions(dir string, txs []Transaction) error {
	path := filepath.Join(dir, transactionsFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeTransactions(f, txs)
}

// AppendTransaction appends a single transaction to the transactions file,
// creating it if needed.
func AppendTransaction(dir string, tx Transaction) error {
	path := filepath.Join(dir, transactionsFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %q for appending: %w", path, err)
	}
	defer f.Close()
	return EncodeTransaction(f, tx)
}

// decodeFile opens a JSONL file and decodes it with the given decoder,
// mapping a missing file to an empty result.
func decodeFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	items, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return items, nil
}
