package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fstr-tourism/pereval-api/internal/domain"
)

type mockPerevalRepository struct {
	mock.Mock
}

func (m *mockPerevalRepository) Create(ctx context.Context, p domain.NewPereval) (uint, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockPerevalRepository) FindByID(ctx context.Context, id uint) (domain.Pereval, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pereval), args.Error(1)
}

func (m *mockPerevalRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Pereval, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Pereval), args.Error(1)
}

func (m *mockPerevalRepository) Update(ctx context.Context, id uint, patch domain.PerevalPatch) (domain.Status, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *mockPerevalRepository) UpdateStatus(ctx context.Context, id uint, to domain.Status) (domain.Status, error) {
	args := m.Called(ctx, id, to)
	return args.Get(0).(domain.Status), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
