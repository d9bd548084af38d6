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

// boxHandler handles HTTP requests related to boxes.
type boxHandler struct {
	boxService portssvc.BoxSvcFacade
}

// newBoxHandler creates a new boxHandler.
func newBoxHandler(bs portssvc.BoxSvcFacade) *boxHandler {
	return &boxHandler{
		boxService: bs,
	}
}

// registerBoxRoutes registers routes related to boxes. Boxes are read-only
// over HTTP; their balances move through the transaction endpoints.
func registerBoxRoutes(rg *gin.RouterGroup, boxService portssvc.BoxSvcFacade) {
	h := newBoxHandler(boxService)

	boxes := rg.Group("/boxes")
	{
		boxes.GET("", h.listBoxes)
		boxes.GET("/:id", h.getBox)
	}
}

// listBoxes godoc
// @Summary List boxes
// @Description Retrieves all boxes with their current balances
// @Tags boxes
// @Produce  json
// @Success 200 {object} dto.ListBoxesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list boxes"
// @Security BearerAuth
// @Router /boxes [get]
func (h *boxHandler) listBoxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	boxes, err := h.boxService.ListBoxes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list boxes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list boxes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBoxesResponse(boxes))
}

// getBox godoc
// @Summary Get a box by ID
// @Description Retrieves one box with its current balance
// @Tags boxes
// @Produce  json
// @Param   id path string true "Box ID"
// @Success 200 {object} dto.BoxResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Box not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve box"
// @Security BearerAuth
// @Router /boxes/{id} [get]
func (h *boxHandler) getBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID := c.Param("id")

	box, err := h.boxService.GetBoxByID(c.Request.Context(), boxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Box not found", slog.String("box_id", boxID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Box not found"})
		} else {
			logger.Error("Failed to get box from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve box"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBoxResponse(box))
}
