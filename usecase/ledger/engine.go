package ledger

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/entity"
)

// RecordSource yields records in input order and io.EOF once drained.
type RecordSource interface {
	Next() (entity.TransactionRecord, error)
}

// Engine replays a ledger into client accounts. It is not safe for
// concurrent use.
type Engine struct {
	accounts     map[uint16]*account
	transactions map[uint32]entity.TransactionRecord
}

func NewEngine() *Engine {
	return &Engine{
		accounts:     make(map[uint16]*account),
		transactions: make(map[uint32]entity.TransactionRecord),
	}
}

// Stats summarizes one Run.
type Stats struct {
	Records         int64
	Applied         int64
	Skipped         int64
	SkippedByReason map[SkipReason]int64
}

// Apply folds one record into the engine state. A record that cannot take
// effect leaves every balance unchanged and is reported as skipped.
func (e *Engine) Apply(rec entity.TransactionRecord) Outcome {
	acc := e.account(rec.ClientID)

	switch rec.Operation {
	case entity.OperationDeposit:
		return e.deposit(acc, rec)
	case entity.OperationWithdrawal:
		return e.withdrawal(acc, rec)
	case entity.OperationDispute:
		return e.dispute(acc, rec)
	case entity.OperationResolve:
		return e.resolve(acc, rec)
	case entity.OperationChargeback:
		return e.chargeback(acc, rec)
	default:
		return skipped(ReasonUnknownOperation)
	}
}

// Run applies every record from src until io.EOF. Any other error from src
// stops the run and is returned as is.
func (e *Engine) Run(ctx context.Context, src RecordSource) (Stats, error) {
	stats := Stats{SkippedByReason: make(map[SkipReason]int64)}

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		stats.Records++
		outcome := e.Apply(rec)
		if outcome.Applied {
			stats.Applied++
			continue
		}

		stats.Skipped++
		stats.SkippedByReason[outcome.Reason]++
		log.Debugf("[Engine] Record %d %s client=%d tx=%d: %s", stats.Records, rec.Operation, rec.ClientID, rec.TxID, outcome)
	}
}

// Accounts returns one summary per known client, ordered by client id.
func (e *Engine) Accounts() []entity.ClientAccount {
	result := make([]entity.ClientAccount, 0, len(e.accounts))
	for _, acc := range e.accounts {
		result = append(result, acc.summary())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Client < result[j].Client
	})
	return result
}

func (e *Engine) Account(client uint16) (entity.ClientAccount, bool) {
	acc, ok := e.accounts[client]
	if !ok {
		return entity.ClientAccount{}, false
	}
	return acc.summary(), true
}

func (e *Engine) account(client uint16) *account {
	acc, ok := e.accounts[client]
	if !ok {
		acc = newAccount(client)
		e.accounts[client] = acc
	}
	return acc
}

func (e *Engine) deposit(acc *account, rec entity.TransactionRecord) Outcome {
	if !rec.Amount.Valid {
		return skipped(ReasonMissingAmount)
	}
	if _, exists := e.transactions[rec.TxID]; exists {
		return skipped(ReasonDuplicateTransaction)
	}

	acc.deposit(rec.Amount.Decimal)
	e.transactions[rec.TxID] = rec
	return applied
}

func (e *Engine) withdrawal(acc *account, rec entity.TransactionRecord) Outcome {
	if !rec.Amount.Valid {
		return skipped(ReasonMissingAmount)
	}
	if _, exists := e.transactions[rec.TxID]; exists {
		return skipped(ReasonDuplicateTransaction)
	}
	if !acc.withdraw(rec.Amount.Decimal) {
		return skipped(ReasonInsufficientFunds)
	}

	e.transactions[rec.TxID] = rec
	return applied
}

func (e *Engine) dispute(acc *account, rec entity.TransactionRecord) Outcome {
	ref, reason, ok := e.referenced(rec)
	if !ok {
		return skipped(reason)
	}
	if acc.isDisputed(ref.TxID) {
		return skipped(ReasonAlreadyDisputed)
	}

	acc.hold(ref.TxID, ref.Amount.Decimal)
	return applied
}

func (e *Engine) resolve(acc *account, rec entity.TransactionRecord) Outcome {
	ref, reason, ok := e.referenced(rec)
	if !ok {
		return skipped(reason)
	}
	if !acc.isDisputed(ref.TxID) {
		return skipped(ReasonNotDisputed)
	}

	acc.release(ref.TxID, ref.Amount.Decimal)
	return applied
}

func (e *Engine) chargeback(acc *account, rec entity.TransactionRecord) Outcome {
	ref, reason, ok := e.referenced(rec)
	if !ok {
		return skipped(reason)
	}
	if !acc.isDisputed(ref.TxID) {
		return skipped(ReasonNotDisputed)
	}

	acc.chargeback(ref.TxID, ref.Amount.Decimal)
	return applied
}

// referenced looks up the deposit or withdrawal a dispute-type record points at.
func (e *Engine) referenced(rec entity.TransactionRecord) (entity.TransactionRecord, SkipReason, bool) {
	ref, ok := e.transactions[rec.TxID]
	if !ok || !ref.Amount.Valid {
		return ref, ReasonUnknownTransaction, false
	}
	if ref.ClientID != rec.ClientID {
		return ref, ReasonClientMismatch, false
	}
	return ref, "", true
}
