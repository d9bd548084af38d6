package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
	"github.com/cashbox-app/cashbox_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests for one kind of party. The same handler
// backs both /clients and /providers; the kind is fixed at registration.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	partyType    domain.PartyType
}

// newPartyHandler creates a new partyHandler for the given kind.
func newPartyHandler(ps portssvc.PartySvcFacade, partyType domain.PartyType) *partyHandler {
	return &partyHandler{
		partyService: ps,
		partyType:    partyType,
	}
}

// registerPartyRoutes registers the routes of one party kind under the given path.
func registerPartyRoutes(rg *gin.RouterGroup, path string, partyType domain.PartyType, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService, partyType)

	parties := rg.Group(path)
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/active", h.listActiveParties)
		parties.GET("/:id", h.getParty)
		parties.DELETE("/:id", h.deactivateParty)
	}
}

// createParty godoc
// @Summary Create a client or provider
// @Description Registers a new counterparty with a zero balance
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create party"
// @Security BearerAuth
// @Router /clients [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), h.partyType, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create party"})
		}
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", party.PartyID), slog.String("party_type", string(h.partyType)))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List clients or providers
// @Description Retrieves all parties of this kind, active and inactive
// @Tags parties
// @Produce  json
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list parties"
// @Security BearerAuth
// @Router /clients [get]
func (h *partyHandler) listParties(c *gin.Context) {
	h.list(c, false)
}

// listActiveParties godoc
// @Summary List active clients or providers
// @Description Retrieves only the active parties of this kind
// @Tags parties
// @Produce  json
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list parties"
// @Security BearerAuth
// @Router /clients/active [get]
func (h *partyHandler) listActiveParties(c *gin.Context) {
	h.list(c, true)
}

func (h *partyHandler) list(c *gin.Context, activeOnly bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context(), h.partyType, activeOnly)
	if err != nil {
		logger.Error("Failed to list parties", slog.String("party_type", string(h.partyType)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list parties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// getParty godoc
// @Summary Get a client or provider by ID
// @Description Retrieves one party of this kind
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve party"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), h.partyType, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found", slog.String("party_id", partyID), slog.String("party_type", string(h.partyType)))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		} else {
			logger.Error("Failed to get party from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a client or provider
// @Description Soft-deletes a party; its balance and transaction history are preserved
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 204 "Party deactivated"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to deactivate party"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.partyService.DeactivateParty(c.Request.Context(), h.partyType, partyID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found for deactivation", slog.String("party_id", partyID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		} else {
			logger.Error("Failed to deactivate party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate party"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
