package repository

import (
	"context"

	"around/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCardRepository is a testify mock for repository.CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindAll(ctx context.Context) ([]*entity.Card, error) {
	args := m.Called(ctx)
	if cards, ok := args.Get(0).([]*entity.Card); ok {
		return cards, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, id)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardRepository) Create(ctx context.Context, card *entity.Card) error {
	args := m.Called(ctx, card)

	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, id)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardRepository) AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, cardID, userID)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardRepository) RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, cardID, userID)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}
