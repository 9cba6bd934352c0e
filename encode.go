package tally

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txRecord is the wire form of a Transaction in JSONL files. The date stays
// a plain string on decode so that one malformed row degrades gracefully
// instead of failing the whole file.
type txRecord struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	Type             TxType          `json:"type"`
	Account          string          `json:"account"`
	Category         string          `json:"category,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency,omitempty"`
	Note             string          `json:"note,omitempty"`
	Index            int             `json:"index,omitempty"`
}

// accountRecord is the wire form of an Account in JSONL files. Field names
// match the hosted store's columns.
type accountRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Currency    string          `json:"currency"`
	Type        AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	BalanceDate string          `json:"balance_date,omitempty"`
	BalanceTxID string          `json:"balance_checkpoint_tx_id,omitempty"`
}

// DecodeTransactions reads transactions from a stream of JSONL data. A row
// whose date cannot be parsed is kept as undated (it will sort last in
// replay) and logged; a row that is not valid JSON fails the decode.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec txRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		tx := Transaction{
			ID:               rec.ID,
			Type:             rec.Type,
			Account:          rec.Account,
			Category:         rec.Category,
			Amount:           rec.Amount,
			OriginalAmount:   rec.OriginalAmount,
			OriginalCurrency: rec.OriginalCurrency,
			Note:             rec.Note,
			Index:            rec.Index,
		}
		if rec.Date != "" {
			on, err := ParseDate(rec.Date)
			if err != nil {
				log.Printf("transaction %s: %v, treating as undated", rec.ID, err)
			}
			tx.Date = on // zero on error
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransactions writes transactions to an io.Writer in JSONL format,
// one canonical line per record, in replay order.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	SortForReplay(sorted)
	for _, tx := range sorted {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransaction marshals a single transaction and writes it followed by
// a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	rec := txRecord{
		ID:               tx.ID,
		Type:             tx.Type,
		Account:          tx.Account,
		Category:         tx.Category,
		Amount:           tx.Amount,
		OriginalAmount:   tx.OriginalAmount,
		OriginalCurrency: tx.OriginalCurrency,
		Note:             tx.Note,
		Index:            tx.Index,
	}
	if !tx.Date.IsZero() {
		rec.Date = tx.Date.String()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %s: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction %s: %w", tx.ID, err)
	}
	return nil
}

// DecodeAccounts reads account definitions from a stream of JSONL data.
func DecodeAccounts(r io.Reader) ([]Account, error) {
	var accounts []Account
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec accountRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode account line %q: %w", string(line), err)
		}
		a := Account{
			ID:          rec.ID,
			Name:        rec.Name,
			Currency:    rec.Currency,
			Type:        rec.Type,
			Balance:     rec.Balance,
			BalanceTxID: rec.BalanceTxID,
		}
		if rec.BalanceDate != "" {
			on, err := ParseDate(rec.BalanceDate)
			if err != nil {
				return nil, fmt.Errorf("account %s: %w", rec.Name, err)
			}
			a.BalanceDate = on
		}
		accounts = append(accounts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading accounts: %w", err)
	}
	return accounts, nil
}

// EncodeAccounts writes account definitions to an io.Writer in JSONL format.
func EncodeAccounts(w io.Writer, accounts []Account) error {
	for _, a := range accounts {
		rec := accountRecord{
			ID:          a.ID,
			Name:        a.Name,
			Currency:    a.Currency,
			Type:        a.Type,
			Balance:     a.Balance,
			BalanceTxID: a.BalanceTxID,
		}
		if !a.BalanceDate.IsZero() {
			rec.BalanceDate = a.BalanceDate.String()
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal account %s: %w", a.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write account %s: %w", a.Name, err)
		}
	}
	return nil
}
