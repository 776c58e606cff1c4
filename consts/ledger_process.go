package consts

const (
	// Ledger process status codes
	StatusInit     = 1
	StatusRunning  = 2
	StatusFinished = 3
	StatusFailed   = 4

	// DataType constants
	DataTypeTransactionFile = 1

	// Default config
	DefaultWorkerNumber  = 1
	DefaultIntervalInSec = 2
	DefaultPort          = "8080"
	DefaultUploadDir     = "uploads"
	DefaultLogLevel      = "INFO"

	// Amounts are kept with this many fractional digits
	AmountPrecision = 4

	SystemOperator = "system"
)
