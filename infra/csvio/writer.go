package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/radhian/ledger-engine/consts"
	"github.com/radhian/ledger-engine/entity"
)

var accountHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders account summaries as CSV.
type Writer struct {
	UseCRLF bool
}

func (w Writer) WriteAccounts(dst io.Writer, accounts []entity.ClientAccount) error {
	cw := csv.NewWriter(dst)
	cw.UseCRLF = w.UseCRLF

	if err := cw.Write(accountHeader); err != nil {
		return entity.NewFileError(fmt.Errorf("failed to write header: %w", err))
	}
	for _, acc := range accounts {
		if err := cw.Write(AccountRow(acc)); err != nil {
			return entity.NewFileError(fmt.Errorf("failed to write client %d: %w", acc.Client, err))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return entity.NewFileError(fmt.Errorf("failed to flush accounts: %w", err))
	}
	return nil
}

// WriteAccounts writes accounts with "\n" line endings.
func WriteAccounts(dst io.Writer, accounts []entity.ClientAccount) error {
	return Writer{}.WriteAccounts(dst, accounts)
}

// AccountHeader returns the column names used by WriteAccounts.
func AccountHeader() []string {
	return append([]string(nil), accountHeader...)
}

// AccountRow formats one account the way WriteAccounts does.
func AccountRow(acc entity.ClientAccount) []string {
	return []string{
		strconv.FormatUint(uint64(acc.Client), 10),
		acc.Available.StringFixed(consts.AmountPrecision),
		acc.Held.StringFixed(consts.AmountPrecision),
		acc.Total.StringFixed(consts.AmountPrecision),
		strconv.FormatBool(acc.Locked),
	}
}
