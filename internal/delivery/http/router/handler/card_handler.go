package handler

import (
	"log/slog"
	"net/http"

	"taskboard/internal/domain/entity"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler holds dependencies for card-related handlers
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// CreateCardRequest represents the request body for creating a card
type CreateCardRequest struct {
	BoardID     int64  `json:"boardId" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCardRequest represents the request body for updating a card.
// Description and status always change together.
type UpdateCardRequest struct {
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=todo doing done"`
}

// ListCards handles retrieving all cards of a board
func (h *CardHandler) ListCards(c echo.Context) error {
	boardID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	cards, err := h.cardUC.ListCards(c.Request().Context(), boardID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cards)
}

// CreateCard handles card creation
func (h *CardHandler) CreateCard(c echo.Context) error {
	var req CreateCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.CreateCard(c.Request().Context(), req.BoardID, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, card)
}

// UpdateCard handles updating a card's description and status
func (h *CardHandler) UpdateCard(c echo.Context) error {
	cardID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.UpdateCard(c.Request().Context(), cardID, usecase.CardUpdate{
		Description: req.Description,
		Status:      entity.Status(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, card)
}

// DeleteCard handles card deletion
func (h *CardHandler) DeleteCard(c echo.Context) error {
	cardID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.cardUC.DeleteCard(c.Request().Context(), cardID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
