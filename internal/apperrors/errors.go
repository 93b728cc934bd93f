package apperrors

import "errors"

// Per-transaction rejection kinds. All are non-fatal: the processor logs the
// rejection, leaves the ledger untouched, and moves on to the next record.
var (
	// ErrMissingOrInvalidAmount indicates a deposit or withdrawal without a
	// strictly positive amount.
	ErrMissingOrInvalidAmount = errors.New("missing or non-positive amount")

	// ErrDuplicateTransaction indicates a deposit reusing a journaled TxID.
	ErrDuplicateTransaction = errors.New("transaction id already journaled")

	// ErrAccountLocked indicates a deposit or withdrawal against an account
	// locked by a prior chargeback.
	ErrAccountLocked = errors.New("account is locked")

	// ErrAccountNotFound indicates a record referencing a client with no
	// account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound indicates a dispute, resolve, or chargeback
	// referencing an unknown TxID.
	ErrTransactionNotFound = errors.New("referenced transaction not found")

	// ErrClientMismatch indicates a record whose client differs from the
	// referenced transaction's client.
	ErrClientMismatch = errors.New("transaction belongs to a different client")

	// ErrAlreadyDisputed indicates a dispute against a transaction that is
	// already under dispute or has been charged back.
	ErrAlreadyDisputed = errors.New("transaction is already under dispute")

	// ErrNotDisputed indicates a resolve or chargeback against a transaction
	// with no active dispute.
	ErrNotDisputed = errors.New("transaction is not under dispute")

	// ErrInsufficientFunds indicates a withdrawal exceeding available funds.
	ErrInsufficientFunds = errors.New("insufficient available funds")
)

// ErrMalformedRecord indicates an input row that could not be deserialized
// into a transaction record. Raised at the ingestion boundary, before the
// record reaches the processor.
var ErrMalformedRecord = errors.New("malformed input record")
