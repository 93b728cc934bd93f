package ports

import (
	"context"

	"github.com/tvance/txengine/internal/core/domain"
)

// LedgerRepository defines the storage operations for accounts and the
// transaction journal. Implementations are pure data containers: every
// business-rule check lives in the processor service, and the processor is
// the only writer. Lookup of a missing key yields an explicit error, never
// undefined behavior.
type LedgerRepository interface {
	// GetOrCreateAccount returns the account for clientID, creating a zeroed
	// one when none exists yet.
	GetOrCreateAccount(ctx context.Context, clientID uint16) *domain.Account

	// FindAccount returns the account for clientID, or
	// apperrors.ErrAccountNotFound.
	FindAccount(ctx context.Context, clientID uint16) (*domain.Account, error)

	// SaveJournalEntry records an accepted deposit for later dispute
	// reference. Returns apperrors.ErrDuplicateTransaction when the TxID is
	// already journaled.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// FindJournalEntry returns the journaled transaction for txID, or
	// apperrors.ErrTransactionNotFound.
	FindJournalEntry(ctx context.Context, txID uint32) (*domain.JournalEntry, error)

	// HasJournalEntry reports whether txID is already journaled.
	HasJournalEntry(ctx context.Context, txID uint32) bool

	// ListSnapshots returns one snapshot per account, ordered by client id
	// for reproducible emission.
	ListSnapshots(ctx context.Context) []domain.AccountSnapshot
}
