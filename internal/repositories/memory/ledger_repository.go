package memory

import (
	"context"
	"sort"

	"github.com/tvance/txengine/internal/apperrors"
	"github.com/tvance/txengine/internal/core/domain"
	"github.com/tvance/txengine/internal/core/ports"
)

// LedgerRepository is the in-memory ledger store: one map of accounts keyed
// by client id and one journal of accepted deposits keyed by transaction id.
// It is a plain data container with no locking of its own; the processor
// service serializes all access.
type LedgerRepository struct {
	accounts map[uint16]*domain.Account
	journal  map[uint32]*domain.JournalEntry
}

// NewLedgerRepository creates an empty ledger store.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		accounts: make(map[uint16]*domain.Account),
		journal:  make(map[uint32]*domain.JournalEntry),
	}
}

// Ensure LedgerRepository implements the LedgerRepository port
var _ ports.LedgerRepository = (*LedgerRepository)(nil)

func (r *LedgerRepository) GetOrCreateAccount(ctx context.Context, clientID uint16) *domain.Account {
	if account, ok := r.accounts[clientID]; ok {
		return account
	}
	account := &domain.Account{ClientID: clientID}
	r.accounts[clientID] = account
	return account
}

func (r *LedgerRepository) FindAccount(ctx context.Context, clientID uint16) (*domain.Account, error) {
	account, ok := r.accounts[clientID]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (r *LedgerRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	if _, ok := r.journal[entry.TxID]; ok {
		return apperrors.ErrDuplicateTransaction
	}
	r.journal[entry.TxID] = &entry
	return nil
}

func (r *LedgerRepository) FindJournalEntry(ctx context.Context, txID uint32) (*domain.JournalEntry, error) {
	entry, ok := r.journal[txID]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return entry, nil
}

func (r *LedgerRepository) HasJournalEntry(ctx context.Context, txID uint32) bool {
	_, ok := r.journal[txID]
	return ok
}

func (r *LedgerRepository) ListSnapshots(ctx context.Context) []domain.AccountSnapshot {
	snapshots := make([]domain.AccountSnapshot, 0, len(r.accounts))
	for _, account := range r.accounts {
		snapshots = append(snapshots, account.Snapshot())
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ClientID < snapshots[j].ClientID
	})
	return snapshots
}
