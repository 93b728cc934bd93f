package ingest_test

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvance/txengine/internal/apperrors"
	"github.com/tvance/txengine/internal/core/domain"
	"github.com/tvance/txengine/internal/ingest"
)

func readAll(t *testing.T, input string) ([]domain.Transaction, []error) {
	t.Helper()
	r := ingest.NewReader(strings.NewReader(input))

	var txs []domain.Transaction
	var errs []error
	for {
		tx, err := r.Read()
		if err == io.EOF {
			return txs, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		txs = append(txs, *tx)
	}
}

func TestRead_HeaderAndBasicRows(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,5.0\n" +
		"withdrawal,1,2,1.5\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 2)

	assert.Equal(t, domain.Deposit, txs[0].Kind)
	assert.Equal(t, uint16(1), txs[0].ClientID)
	assert.Equal(t, uint32(1), txs[0].TxID)
	require.NotNil(t, txs[0].Amount)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("5.0")))

	assert.Equal(t, domain.Withdrawal, txs[1].Kind)
}

func TestRead_WhitespaceTolerant(t *testing.T) {
	input := "type, client, tx, amount\n" +
		" deposit ,  1 ,  1 ,  5.0000 \n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.Deposit, txs[0].Kind)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("5")))
}

func TestRead_MissingAmountColumn(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,5.0\n" +
		"dispute,1,1\n" +
		"resolve,1,1,\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 3)
	assert.Nil(t, txs[1].Amount)
	assert.Nil(t, txs[2].Amount)
}

func TestRead_MalformedRowsAreSkippable(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"teleport,1,1,5.0\n" + // unknown kind
		"deposit,notanumber,2,5.0\n" + // bad client
		"deposit,1,xyz,5.0\n" + // bad tx
		"deposit,1,3,abc\n" + // bad amount
		"deposit,1\n" + // too few columns
		"deposit,1,4,2.0\n"

	txs, errs := readAll(t, input)
	require.Len(t, txs, 1)
	assert.Equal(t, uint32(4), txs[0].TxID)

	require.Len(t, errs, 5)
	for _, err := range errs {
		assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
	}
}

func TestRead_NoHeader(t *testing.T) {
	// A stream without a header row is still consumable.
	input := "deposit,1,1,5.0\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.Deposit, txs[0].Kind)
}

func TestRead_ClientIDOutOfRange(t *testing.T) {
	input := "deposit,70000,1,5.0\n"

	txs, errs := readAll(t, input)
	assert.Empty(t, txs)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], apperrors.ErrMalformedRecord)
}

func TestRead_EmptyStream(t *testing.T) {
	txs, errs := readAll(t, "")
	assert.Empty(t, txs)
	assert.Empty(t, errs)
}
