package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tvance/txengine/internal/apperrors"
	"github.com/tvance/txengine/internal/core/domain"
	"github.com/tvance/txengine/internal/core/ports"
	portssvc "github.com/tvance/txengine/internal/core/ports/services"
)

// processorService implements the ProcessorSvcFacade interface. It dispatches
// each record to the handler for its kind, validates every precondition
// before mutating, and rejects with a specific apperrors kind otherwise, so a
// rejected transaction leaves the ledger exactly as it found it.
//
// A single mutex serializes all ledger access: stream processing is strictly
// sequential, and the HTTP surface funnels through the same lock.
type processorService struct {
	BaseService
	ledger ports.LedgerRepository
	mu     sync.Mutex
}

// NewProcessorService creates a transaction processor over the given ledger
// store.
func NewProcessorService(ledger ports.LedgerRepository) portssvc.ProcessorSvcFacade {
	return &processorService{ledger: ledger}
}

// Ensure processorService implements the ProcessorSvcFacade interface
var _ portssvc.ProcessorSvcFacade = (*processorService)(nil)

func (s *processorService) Process(ctx context.Context, tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch tx.Kind {
	case domain.Deposit:
		return s.deposit(ctx, tx)
	case domain.Withdrawal:
		return s.withdrawal(ctx, tx)
	case domain.Dispute:
		return s.dispute(ctx, tx)
	case domain.Resolve:
		return s.resolve(ctx, tx)
	case domain.Chargeback:
		return s.chargeback(ctx, tx)
	}
	return fmt.Errorf("%w: unsupported kind %q", apperrors.ErrMalformedRecord, tx.Kind)
}

// deposit credits available funds, creating the account on first use, and
// journals the transaction for later dispute reference.
func (s *processorService) deposit(ctx context.Context, tx domain.Transaction) error {
	if tx.Amount == nil || !tx.Amount.IsPositive() {
		return apperrors.ErrMissingOrInvalidAmount
	}
	if s.ledger.HasJournalEntry(ctx, tx.TxID) {
		return apperrors.ErrDuplicateTransaction
	}
	if account, err := s.ledger.FindAccount(ctx, tx.ClientID); err == nil && account.Locked {
		return apperrors.ErrAccountLocked
	}

	account := s.ledger.GetOrCreateAccount(ctx, tx.ClientID)
	account.Available = account.Available.Add(*tx.Amount)
	return s.ledger.SaveJournalEntry(ctx, domain.JournalEntry{
		ClientID: tx.ClientID,
		TxID:     tx.TxID,
		Amount:   *tx.Amount,
	})
}

// withdrawal debits available funds. Withdrawals never create accounts and
// are not journaled: only deposits can be disputed.
func (s *processorService) withdrawal(ctx context.Context, tx domain.Transaction) error {
	if tx.Amount == nil || !tx.Amount.IsPositive() {
		return apperrors.ErrMissingOrInvalidAmount
	}
	account, err := s.ledger.FindAccount(ctx, tx.ClientID)
	if err != nil {
		return err
	}
	if account.Locked {
		return apperrors.ErrAccountLocked
	}
	if account.Available.LessThan(*tx.Amount) {
		return apperrors.ErrInsufficientFunds
	}

	account.Available = account.Available.Sub(*tx.Amount)
	return nil
}

// dispute moves the referenced deposit's amount from available to held.
// There is no lock check: disputes may legitimately follow the chargeback
// that locked the account.
func (s *processorService) dispute(ctx context.Context, tx domain.Transaction) error {
	entry, err := s.ledger.FindJournalEntry(ctx, tx.TxID)
	if err != nil {
		return err
	}
	if entry.ClientID != tx.ClientID {
		return apperrors.ErrClientMismatch
	}
	if entry.Disputed || entry.ChargedBack {
		return apperrors.ErrAlreadyDisputed
	}
	account, err := s.ledger.FindAccount(ctx, tx.ClientID)
	if err != nil {
		return err
	}

	account.Available = account.Available.Sub(entry.Amount)
	account.Held = account.Held.Add(entry.Amount)
	entry.Disputed = true
	return nil
}

// resolve reverses a dispute exactly, restoring pre-dispute balances.
func (s *processorService) resolve(ctx context.Context, tx domain.Transaction) error {
	entry, err := s.ledger.FindJournalEntry(ctx, tx.TxID)
	if err != nil {
		return err
	}
	if entry.ClientID != tx.ClientID {
		return apperrors.ErrClientMismatch
	}
	if !entry.Disputed {
		return apperrors.ErrNotDisputed
	}
	account, err := s.ledger.FindAccount(ctx, tx.ClientID)
	if err != nil {
		return err
	}

	account.Held = account.Held.Sub(entry.Amount)
	account.Available = account.Available.Add(entry.Amount)
	entry.Disputed = false
	return nil
}

// chargeback withdraws the held funds and locks the account permanently. The
// entry reaches its terminal state and can never be disputed again.
func (s *processorService) chargeback(ctx context.Context, tx domain.Transaction) error {
	entry, err := s.ledger.FindJournalEntry(ctx, tx.TxID)
	if err != nil {
		return err
	}
	if entry.ClientID != tx.ClientID {
		return apperrors.ErrClientMismatch
	}
	if !entry.Disputed {
		return apperrors.ErrNotDisputed
	}
	account, err := s.ledger.FindAccount(ctx, tx.ClientID)
	if err != nil {
		return err
	}

	account.Held = account.Held.Sub(entry.Amount)
	account.Locked = true
	entry.Disputed = false
	entry.ChargedBack = true
	return nil
}

func (s *processorService) Run(ctx context.Context, source portssvc.TransactionSource) (portssvc.RunStats, error) {
	var stats portssvc.RunStats
	for {
		tx, err := source.Read()
		if errors.Is(err, io.EOF) {
			s.LogInfo(ctx, "Stream drained",
				slog.Int("applied", stats.Applied),
				slog.Int("rejected", stats.Rejected),
				slog.Int("malformed", stats.Malformed))
			return stats, nil
		}
		if err != nil {
			if errors.Is(err, apperrors.ErrMalformedRecord) {
				stats.Malformed++
				s.LogWarn(ctx, err, "Skipping malformed record")
				continue
			}
			return stats, fmt.Errorf("reading transaction stream: %w", err)
		}

		if err := s.Process(ctx, *tx); err != nil {
			stats.Rejected++
			s.LogWarn(ctx, err, "Transaction rejected",
				slog.String("kind", string(tx.Kind)),
				slog.Uint64("client_id", uint64(tx.ClientID)),
				slog.Uint64("tx_id", uint64(tx.TxID)))
			continue
		}
		stats.Applied++
		s.LogDebug(ctx, "Transaction applied",
			slog.String("kind", string(tx.Kind)),
			slog.Uint64("client_id", uint64(tx.ClientID)),
			slog.Uint64("tx_id", uint64(tx.TxID)))
	}
}

func (s *processorService) Snapshots(ctx context.Context) []domain.AccountSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ListSnapshots(ctx)
}

func (s *processorService) GetSnapshot(ctx context.Context, clientID uint16) (*domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, err := s.ledger.FindAccount(ctx, clientID)
	if err != nil {
		return nil, err
	}
	snapshot := account.Snapshot()
	return &snapshot, nil
}
