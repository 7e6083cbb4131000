package handler

import (
	"log/slog"
	"net/http"

	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BoardHandlerParams holds dependencies for BoardHandler, injected by Fx.
type BoardHandlerParams struct {
	fx.In

	BoardUC usecase.BoardUsecase
	Logger  *slog.Logger
}

// BoardHandler holds dependencies for board-related handlers
type BoardHandler struct {
	boardUC usecase.BoardUsecase
	logger  *slog.Logger
}

// NewBoardHandler is the constructor for BoardHandler
func NewBoardHandler(params BoardHandlerParams) *BoardHandler {
	return &BoardHandler{
		boardUC: params.BoardUC,
		logger:  params.Logger,
	}
}

// CreateBoardRequest represents the request body for creating a board
type CreateBoardRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListBoards handles retrieving all boards
func (h *BoardHandler) ListBoards(c echo.Context) error {
	boards, err := h.boardUC.ListBoards(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, boards)
}

// CreateBoard handles board creation
func (h *BoardHandler) CreateBoard(c echo.Context) error {
	var req CreateBoardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	board, err := h.boardUC.CreateBoard(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, board)
}

// BoardSummary handles retrieving the per-status card counts of a board
func (h *BoardHandler) BoardSummary(c echo.Context) error {
	boardID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	summary, err := h.boardUC.BoardSummary(c.Request().Context(), boardID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// DeleteBoard handles board deletion
func (h *BoardHandler) DeleteBoard(c echo.Context) error {
	boardID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.boardUC.DeleteBoard(c.Request().Context(), boardID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
