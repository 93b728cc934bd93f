// Package ingest turns a delimited text stream into typed transaction
// records. It is deliberately forgiving: surrounding whitespace is trimmed,
// the amount column may be missing entirely, and a row that cannot be
// deserialized yields an error wrapping apperrors.ErrMalformedRecord so the
// caller can log it and keep going.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tvance/txengine/internal/apperrors"
	"github.com/tvance/txengine/internal/core/domain"
)

// Reader streams transaction records from CSV input with the column layout
// `type,client,tx,amount`.
type Reader struct {
	csv         *csv.Reader
	row         int
	sawFirstRow bool
}

// NewReader wraps r in a streaming transaction reader.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Rows without the optional amount column are legal input.
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Read returns the next record in input order, io.EOF at end of stream, or
// an error wrapping apperrors.ErrMalformedRecord for an undeserializable row.
func (r *Reader) Read() (*domain.Transaction, error) {
	for {
		fields, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		r.row++
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				return nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrMalformedRecord, r.row, err)
			}
			return nil, err
		}

		// Tolerate a header row, but only in first position.
		if !r.sawFirstRow {
			r.sawFirstRow = true
			if isHeader(fields) {
				continue
			}
		}

		tx, err := r.parseRecord(fields)
		if err != nil {
			return nil, err
		}
		return tx, nil
	}
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "type")
}

func (r *Reader) parseRecord(fields []string) (*domain.Transaction, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: row %d: expected at least 3 columns, got %d", apperrors.ErrMalformedRecord, r.row, len(fields))
	}

	kind, err := domain.ParseTransactionKind(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrMalformedRecord, r.row, err)
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: client id: %v", apperrors.ErrMalformedRecord, r.row, err)
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: tx id: %v", apperrors.ErrMalformedRecord, r.row, err)
	}

	var amount *decimal.Decimal
	if len(fields) > 3 {
		if raw := strings.TrimSpace(fields[3]); raw != "" {
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: amount: %v", apperrors.ErrMalformedRecord, r.row, err)
			}
			amount = &d
		}
	}

	return &domain.Transaction{
		Kind:     kind,
		ClientID: uint16(clientID),
		TxID:     uint32(txID),
		Amount:   amount,
	}, nil
}
