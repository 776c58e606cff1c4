package entity

type ProcessLedgerRequest struct {
	TransactionCSVPath string `json:"transaction_csv_path"`
	Operator           string `json:"operator"`
}

// LedgerProcessResult is stored as JSON in the process log once a job finishes.
type LedgerProcessResult struct {
	TotalRows       int64            `json:"total_rows"`
	Applied         int64            `json:"applied"`
	Skipped         int64            `json:"skipped"`
	SkippedByReason map[string]int64 `json:"skipped_by_reason"`
	Accounts        []ClientAccount  `json:"accounts"`
}
