package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
	"github.com/cashbox-app/cashbox_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles administrative configuration requests.
type settingsHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ts portssvc.TransactionSvcFacade) *settingsHandler {
	return &settingsHandler{
		transactionService: ts,
	}
}

// registerSettingsRoutes registers administrative routes.
func registerSettingsRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newSettingsHandler(transactionService)

	settings := rg.Group("/settings")
	{
		settings.POST("/initial-balance", h.setInitialBalance)
	}
}

// setInitialBalance godoc
// @Summary Set an initial balance
// @Description Sets a box, client or provider balance to an absolute amount and records an INITIAL_BALANCE transaction
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   request body dto.SetInitialBalanceRequest true "Target ledger and amount"
// @Success 204 "Balance set"
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Target ledger not found"
// @Failure 500 {object} ErrorResponse "Failed to set initial balance"
// @Security BearerAuth
// @Router /settings/initial-balance [post]
func (h *settingsHandler) setInitialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetInitialBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetInitialBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.transactionService.SetInitialBalance(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error setting initial balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Target ledger not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to set initial balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set initial balance"})
		}
		return
	}

	logger.Info("Initial balance set", slog.String("ledger_id", req.LedgerID), slog.String("ledger_kind", string(req.Kind)))
	c.Status(http.StatusNoContent)
}
