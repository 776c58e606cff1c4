package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/radhian/ledger-engine/consts"
	"github.com/shopspring/decimal"
)

type Operation string

const (
	OperationDeposit    Operation = "deposit"
	OperationWithdrawal Operation = "withdrawal"
	OperationDispute    Operation = "dispute"
	OperationResolve    Operation = "resolve"
	OperationChargeback Operation = "chargeback"
)

var operations = map[string]Operation{
	string(OperationDeposit):    OperationDeposit,
	string(OperationWithdrawal): OperationWithdrawal,
	string(OperationDispute):    OperationDispute,
	string(OperationResolve):    OperationResolve,
	string(OperationChargeback): OperationChargeback,
}

// ParseOperation matches name against the known operations, ignoring case.
func ParseOperation(name string) (Operation, error) {
	op, ok := operations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", NewParseError(fmt.Errorf("unknown transaction type %q", name))
	}
	return op, nil
}

// TransactionRecord is one row of the input ledger.
type TransactionRecord struct {
	Operation Operation           `json:"type"`
	ClientID  uint16              `json:"client"`
	TxID      uint32              `json:"tx"`
	Amount    decimal.NullDecimal `json:"amount"`
}

// maxAmountExponent bounds the decimal exponent of a parsed amount. Larger
// exponents make normalization and formatting allocate 10^exp sized integers.
const maxAmountExponent = 18

// RawTransaction holds the trimmed string fields of one input row.
type RawTransaction struct {
	Type   string
	Client string
	Tx     string
	Amount string
}

// NormalizeAmount rounds d down to four fractional digits.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Shift(consts.AmountPrecision).Floor().Shift(-consts.AmountPrecision)
}

func ParseTransactionRecord(raw RawTransaction) (TransactionRecord, error) {
	var rec TransactionRecord

	op, err := ParseOperation(raw.Type)
	if err != nil {
		return rec, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(raw.Client), 10, 16)
	if err != nil {
		return rec, NewCsvError(fmt.Errorf("invalid client %q: %w", raw.Client, err))
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(raw.Tx), 10, 32)
	if err != nil {
		return rec, NewCsvError(fmt.Errorf("invalid tx %q: %w", raw.Tx, err))
	}

	rec.Operation = op
	rec.ClientID = uint16(client)
	rec.TxID = uint32(tx)

	if amountStr := strings.TrimSpace(raw.Amount); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return rec, NewCsvError(fmt.Errorf("invalid amount %q: %w", raw.Amount, err))
		}
		if amount.Exponent() < -maxAmountExponent || amount.Exponent() > maxAmountExponent {
			return rec, NewCsvError(fmt.Errorf("amount %q out of range", raw.Amount))
		}
		rec.Amount = decimal.NullDecimal{Decimal: NormalizeAmount(amount), Valid: true}
	}

	return rec, nil
}
