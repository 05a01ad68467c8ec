package handler

import (
	"log/slog"
	"net/http"

	"around/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,http_url"`
}

// cardIDParam validates the :cardId path segment as a 24-hex id before any
// lookup is attempted.
type cardIDParam struct {
	CardID string `param:"cardId" validate:"required,mongodb"`
}

// CardHandler holds dependencies for card-related handlers.
type CardHandler struct {
	uc     usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler, injected by Fx.
func NewCardHandler(uc usecase.CardUsecase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCards handles GET /cards.
func (h *CardHandler) ListCards(c echo.Context) error {
	cards, err := h.uc.ListCards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, cards)
}

// CreateCard handles POST /cards.
func (h *CardHandler) CreateCard(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req createCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.uc.CreateCard(c.Request().Context(), identity, &usecase.CreateCardInput{
		Name: req.Name,
		Link: req.Link,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, card)
}

// DeleteCard handles DELETE /cards/:cardId and returns the deleted card.
func (h *CardHandler) DeleteCard(c echo.Context) error {
	identity, cardID, err := cardRequestScope(c)
	if err != nil {
		return err
	}

	card, err := h.uc.DeleteCard(c.Request().Context(), identity, cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, card)
}

// LikeCard handles PUT /cards/:cardId/likes.
func (h *CardHandler) LikeCard(c echo.Context) error {
	identity, cardID, err := cardRequestScope(c)
	if err != nil {
		return err
	}

	card, err := h.uc.LikeCard(c.Request().Context(), identity, cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, card)
}

// UnlikeCard handles DELETE /cards/:cardId/likes.
func (h *CardHandler) UnlikeCard(c echo.Context) error {
	identity, cardID, err := cardRequestScope(c)
	if err != nil {
		return err
	}

	card, err := h.uc.UnlikeCard(c.Request().Context(), identity, cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, card)
}

// cardRequestScope resolves the authenticated identity and the validated
// card id shared by the per-card routes.
func cardRequestScope(c echo.Context) (primitive.ObjectID, primitive.ObjectID, error) {
	identity, err := requireIdentity(c)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	var params cardIDParam
	if err := bindAndValidate(c, &params); err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	cardID, err := primitive.ObjectIDFromHex(params.CardID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, errors.Wrap(err, "failed to parse validated card id")
	}

	return identity, cardID, nil
}
