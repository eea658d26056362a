package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"commentapi/internal/model"
	"commentapi/internal/repository"
)

var (
	ErrInvalidID = errors.New("invalid comment id")
	ErrNotFound  = errors.New("comment not found")
)

// CommentService defines the use cases for handling comments.
type CommentService interface {
	// List returns all stored comments.
	List(ctx context.Context) ([]model.Comment, error)

	// Create stores a new comment from an arbitrary field mapping and returns
	// it with the assigned identifier.
	Create(ctx context.Context, fields model.Comment) (model.Comment, error)

	// Get returns a single comment by its identifier.
	Get(ctx context.Context, id string) (model.Comment, error)

	// Update merges the fields into an existing comment and returns the
	// post-update document.
	Update(ctx context.Context, id string, fields model.Comment) (model.Comment, error)

	// Delete removes a comment and returns the deleted document.
	Delete(ctx context.Context, id string) (model.Comment, error)
}

// commentService is a concrete implementation of CommentService.
type commentService struct {
	repo repository.CommentRepository
}

// NewCommentService constructs a new CommentService.
func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) List(ctx context.Context) ([]model.Comment, error) {
	return s.repo.FindAll(ctx)
}

func (s *commentService) Create(ctx context.Context, fields model.Comment) (model.Comment, error) {
	if fields == nil {
		fields = model.Comment{}
	}
	return s.repo.Create(ctx, fields)
}

// Get returns a comment by ID. The identifier format is checked before any
// store access so malformed ids never cost a round-trip.
func (s *commentService) Get(ctx context.Context, id string) (model.Comment, error) {
	if !s.repo.IsValidID(id) {
		return nil, ErrInvalidID
	}
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, id string, fields model.Comment) (model.Comment, error) {
	if !s.repo.IsValidID(id) {
		return nil, ErrInvalidID
	}
	comment, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id string) (model.Comment, error) {
	if !s.repo.IsValidID(id) {
		return nil, ErrInvalidID
	}
	comment, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}
