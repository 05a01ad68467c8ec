// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"around/internal/domain/entity"
	"around/internal/usecase"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Signin(ctx context.Context, input *usecase.SigninInput) (string, error) {
	args := m.Called(ctx, input)

	return args.String(0), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetCurrentUser(ctx context.Context, identity primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, identity)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, identity primitive.ObjectID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, identity, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) UpdateAvatar(ctx context.Context, identity primitive.ObjectID, avatar string) (*entity.User, error) {
	args := m.Called(ctx, identity, avatar)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCardUsecase is a testify mock for usecase.CardUsecase.
type MockCardUsecase struct {
	mock.Mock
}

func (m *MockCardUsecase) ListCards(ctx context.Context) ([]*entity.Card, error) {
	args := m.Called(ctx)
	if cards, ok := args.Get(0).([]*entity.Card); ok {
		return cards, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardUsecase) CreateCard(ctx context.Context, identity primitive.ObjectID, input *usecase.CreateCardInput) (*entity.Card, error) {
	args := m.Called(ctx, identity, input)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardUsecase) DeleteCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, identity, cardID)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardUsecase) LikeCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, identity, cardID)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCardUsecase) UnlikeCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error) {
	args := m.Called(ctx, identity, cardID)
	if card, ok := args.Get(0).(*entity.Card); ok {
		return card, args.Error(1)
	}

	return nil, args.Error(1)
}
