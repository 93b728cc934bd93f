package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tvance/txengine/internal/apperrors"
	portssvc "github.com/tvance/txengine/internal/core/ports/services"
	"github.com/tvance/txengine/internal/dto"
	"github.com/tvance/txengine/internal/middleware"
)

// accountHandler handles HTTP reads of account snapshots.
type accountHandler struct {
	processor portssvc.ProcessorReaderSvc
}

func newAccountHandler(processor portssvc.ProcessorReaderSvc) *accountHandler {
	return &accountHandler{processor: processor}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, processor portssvc.ProcessorReaderSvc) {
	h := newAccountHandler(processor)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:clientID", h.getAccount)
	}
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	snapshots := h.processor.Snapshots(c.Request.Context())
	responses := make([]dto.AccountResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, dto.ToAccountResponse(snapshot))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientID, err := strconv.ParseUint(c.Param("clientID"), 10, 16)
	if err != nil {
		logger.Warn("Invalid client id", slog.String("client_id", c.Param("clientID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}

	snapshot, err := h.processor.GetSnapshot(c.Request.Context(), uint16(clientID))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to get account snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(*snapshot))
}
