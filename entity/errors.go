package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures that abort a whole ledger run.
type ErrorKind string

const (
	FileError  ErrorKind = "FileError"
	CsvError   ErrorKind = "CsvError"
	ParseError ErrorKind = "ParseError"
)

var (
	ErrProcessLogNotFound = errors.New("ledger process log not found")
	ErrProcessNotFinished = errors.New("ledger process is not finished")
)

// AppError is a fatal input error. Its message is prefixed with the kind.
type AppError struct {
	Kind ErrorKind
	Err  error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewFileError(err error) error {
	return &AppError{Kind: FileError, Err: err}
}

func NewCsvError(err error) error {
	return &AppError{Kind: CsvError, Err: err}
}

func NewParseError(err error) error {
	return &AppError{Kind: ParseError, Err: err}
}

// IsKind reports whether err, or anything it wraps, is an AppError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
