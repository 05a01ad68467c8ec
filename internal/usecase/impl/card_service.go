package impl

import (
	"context"
	"log/slog"

	deliverycontext "around/internal/delivery/context"
	"around/internal/domain/entity"
	domainerrors "around/internal/domain/errors"
	"around/internal/domain/repository"
	"around/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	cardRepo repository.CardRepository
	logger   *slog.Logger
}

// CardServiceParams holds dependencies for cardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	CardRepo repository.CardRepository
	Logger   *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	return &cardService{
		cardRepo: params.CardRepo,
		logger:   params.Logger,
	}
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCards returns every card.
func (srv *cardService) ListCards(ctx context.Context) ([]*entity.Card, error) {
	cards, err := srv.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	return cards, nil
}

// CreateCard creates a card owned by the authenticated identity.
func (srv *cardService) CreateCard(ctx context.Context, identity primitive.ObjectID, input *usecase.CreateCardInput) (*entity.Card, error) {
	card := entity.NewCard(input.Name, input.Link, identity)

	if err := srv.cardRepo.Create(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to create card")
	}

	srv.log(ctx).Info("Card created",
		slog.String("cardID", card.ID.Hex()),
		slog.String("owner", identity.Hex()),
	)

	return card, nil
}

// DeleteCard removes a card after checking existence first, then ownership.
// The ordering matters: a non-owner probing a nonexistent id gets not-found,
// not forbidden.
func (srv *cardService) DeleteCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("delete card")
		}

		return nil, errors.Wrap(err, "failed to find card for deletion")
	}

	if card.Owner != identity {
		return nil, domainerrors.ErrCardForbidden.WrapMessage("delete card owned by another account")
	}

	deleted, err := srv.cardRepo.Delete(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			// Lost a race with another delete of the same card.
			return nil, domainerrors.ErrCardNotFound.WrapMessage("delete card")
		}

		return nil, errors.Wrap(err, "failed to delete card")
	}

	srv.log(ctx).Info("Card deleted", slog.String("cardID", cardID.Hex()))

	return deleted, nil
}

// LikeCard adds the identity to the card's liker set; liking twice is a no-op.
func (srv *cardService) LikeCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error) {
	card, err := srv.cardRepo.AddLike(ctx, cardID, identity)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("like card")
		}

		return nil, errors.Wrap(err, "failed to like card")
	}

	return card, nil
}

// UnlikeCard removes the identity from the card's liker set; removing an
// absent like is a no-op.
func (srv *cardService) UnlikeCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error) {
	card, err := srv.cardRepo.RemoveLike(ctx, cardID, identity)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("unlike card")
		}

		return nil, errors.Wrap(err, "failed to unlike card")
	}

	return card, nil
}
