package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commentapi/internal/model"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, fields model.Comment) (model.Comment, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id string) (model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateByID(ctx context.Context, id string, fields model.Comment) (model.Comment, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByID(ctx context.Context, id string) (model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) IsValidID(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}
