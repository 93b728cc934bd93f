package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tvance/txengine/internal/apperrors"
	portssvc "github.com/tvance/txengine/internal/core/ports/services"
	"github.com/tvance/txengine/internal/dto"
	"github.com/tvance/txengine/internal/middleware"
)

// transactionHandler handles HTTP submission of transaction records.
type transactionHandler struct {
	processor portssvc.ProcessorSvcFacade
}

func newTransactionHandler(processor portssvc.ProcessorSvcFacade) *transactionHandler {
	return &transactionHandler{processor: processor}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, processor portssvc.ProcessorSvcFacade) {
	h := newTransactionHandler(processor)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.submitTransaction)
	}
}

func (h *transactionHandler) submitTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx := req.ToDomain()
	logger = logger.With(
		slog.String("kind", string(tx.Kind)),
		slog.Uint64("client_id", uint64(tx.ClientID)),
		slog.Uint64("tx_id", uint64(tx.TxID)),
	)

	if err := h.processor.Process(c.Request.Context(), tx); err != nil {
		logger.Warn("Transaction rejected", slog.String("error", err.Error()))
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.Info("Transaction applied")
	snapshot, err := h.processor.GetSnapshot(c.Request.Context(), tx.ClientID)
	if err != nil {
		// Every accepted transaction implies the account exists.
		logger.Error("Snapshot missing after applied transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, gin.H{"status": "applied"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(*snapshot))
}

// rejectionStatus maps each processor rejection kind onto an HTTP status.
func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateTransaction),
		errors.Is(err, apperrors.ErrAlreadyDisputed):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrAccountLocked):
		return http.StatusLocked
	case errors.Is(err, apperrors.ErrMissingOrInvalidAmount),
		errors.Is(err, apperrors.ErrMalformedRecord):
		return http.StatusBadRequest
	default:
		// ErrClientMismatch, ErrNotDisputed, ErrInsufficientFunds
		return http.StatusUnprocessableEntity
	}
}
