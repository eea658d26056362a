package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commentapi/internal/model"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context) ([]model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, fields model.Comment) (model.Comment, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentService) Get(ctx context.Context, id string) (model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, id string, fields model.Comment) (model.Comment, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, id string) (model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}
