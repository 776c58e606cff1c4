package ledger

// SkipReason says why a record left every balance untouched.
type SkipReason string

const (
	ReasonMissingAmount        SkipReason = "missing_amount"
	ReasonDuplicateTransaction SkipReason = "duplicate_transaction"
	ReasonInsufficientFunds    SkipReason = "insufficient_funds"
	ReasonUnknownTransaction   SkipReason = "unknown_transaction"
	ReasonClientMismatch       SkipReason = "client_mismatch"
	ReasonAlreadyDisputed      SkipReason = "already_disputed"
	ReasonNotDisputed          SkipReason = "not_disputed"
	ReasonUnknownOperation     SkipReason = "unknown_operation"
)

// Outcome is the result of applying one record: either applied, or skipped
// with a reason. Skips are not errors.
type Outcome struct {
	Applied bool
	Reason  SkipReason
}

var applied = Outcome{Applied: true}

func skipped(reason SkipReason) Outcome {
	return Outcome{Reason: reason}
}

func (o Outcome) String() string {
	if o.Applied {
		return "applied"
	}
	return "skipped(" + string(o.Reason) + ")"
}
