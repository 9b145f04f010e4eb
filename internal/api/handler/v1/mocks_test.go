package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fstr-tourism/pereval-api/internal/domain"
)

type mockPerevalService struct {
	mock.Mock
}

func (m *mockPerevalService) CreatePass(ctx context.Context, p domain.NewPereval) (uint, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockPerevalService) GetPassByID(ctx context.Context, id uint) (domain.Pereval, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pereval), args.Error(1)
}

func (m *mockPerevalService) GetPassesByEmail(ctx context.Context, email string) ([]domain.Pereval, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Pereval), args.Error(1)
}

func (m *mockPerevalService) UpdatePass(ctx context.Context, id uint, patch domain.PerevalPatch) domain.UpdateResult {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.UpdateResult)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (domain.Moderator, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.Moderator), args.Error(1)
}

type mockModerationService struct {
	mock.Mock
}

func (m *mockModerationService) SetStatus(ctx context.Context, id uint, to domain.Status) (domain.Status, error) {
	args := m.Called(ctx, id, to)
	return args.Get(0).(domain.Status), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}
