package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/entity"
)

const (
	columnType   = "type"
	columnClient = "client"
	columnTx     = "tx"
	columnAmount = "amount"
)

// Reader streams transaction records out of a CSV ledger. Columns are
// located by header name and rows may leave out the trailing amount.
type Reader struct {
	csv    *csv.Reader
	closer io.Closer
	index  map[string]int
}

// Open opens the ledger file at path. The caller must Close the reader.
func Open(path string) (*Reader, error) {
	log.Infof("[CsvReader] Reading ledger file: %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, entity.NewFileError(fmt.Errorf("failed to open ledger file %s: %w", path, err))
	}

	r, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.closer = file
	return r, nil
}

// NewReader reads and validates the header row from src.
func NewReader(src io.Reader) (*Reader, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, entity.NewCsvError(errors.New("missing header row"))
	}
	if err != nil {
		return nil, entity.NewCsvError(fmt.Errorf("failed to read header: %w", err))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnType, columnClient, columnTx} {
		if _, ok := index[required]; !ok {
			return nil, entity.NewCsvError(fmt.Errorf("header is missing column %q", required))
		}
	}

	return &Reader{csv: cr, index: index}, nil
}

// Next returns the next record, or io.EOF when the input is drained.
func (r *Reader) Next() (entity.TransactionRecord, error) {
	row, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return entity.TransactionRecord{}, io.EOF
	}
	if err != nil {
		return entity.TransactionRecord{}, entity.NewCsvError(err)
	}
	line, _ := r.csv.FieldPos(0)

	raw := entity.RawTransaction{
		Type:   r.field(row, columnType),
		Client: r.field(row, columnClient),
		Tx:     r.field(row, columnTx),
		Amount: r.field(row, columnAmount),
	}

	rec, err := entity.ParseTransactionRecord(raw)
	if err != nil {
		return entity.TransactionRecord{}, atLine(line, err)
	}
	return rec, nil
}

// atLine keeps the error kind in front of the message.
func atLine(line int, err error) error {
	var appErr *entity.AppError
	if errors.As(err, &appErr) {
		return &entity.AppError{Kind: appErr.Kind, Err: fmt.Errorf("line %d: %w", line, appErr.Err)}
	}
	return fmt.Errorf("line %d: %w", line, err)
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func (r *Reader) field(row []string, column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
