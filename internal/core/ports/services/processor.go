package services

import (
	"context"

	"github.com/tvance/txengine/internal/core/domain"
)

// TransactionSource yields typed transaction records in input order. Read
// returns io.EOF at end of stream, or an error wrapping
// apperrors.ErrMalformedRecord for a row that could not be deserialized.
type TransactionSource interface {
	Read() (*domain.Transaction, error)
}

// RunStats summarizes one pass over a transaction stream.
type RunStats struct {
	Applied   int
	Rejected  int
	Malformed int
}

// ProcessorReaderSvc defines read operations over the live ledger.
type ProcessorReaderSvc interface {
	// Snapshots returns one snapshot per account, ordered by client id.
	Snapshots(ctx context.Context) []domain.AccountSnapshot

	// GetSnapshot returns the snapshot for one client, or
	// apperrors.ErrAccountNotFound.
	GetSnapshot(ctx context.Context, clientID uint16) (*domain.AccountSnapshot, error)
}

// ProcessorWriterSvc defines the mutating operations of the transaction
// processor.
type ProcessorWriterSvc interface {
	// Process validates and applies one transaction record. On rejection it
	// returns the specific apperrors kind and leaves the ledger unchanged.
	Process(ctx context.Context, tx domain.Transaction) error

	// Run drains source, applying each record in order. Rejected and
	// malformed records are logged and skipped; only a source failure ends
	// the run early.
	Run(ctx context.Context, source TransactionSource) (RunStats, error)
}

// ProcessorSvcFacade combines all processor service interfaces.
type ProcessorSvcFacade interface {
	ProcessorReaderSvc
	ProcessorWriterSvc
}
