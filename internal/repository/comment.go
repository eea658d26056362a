package repository

import (
	"context"

	"commentapi/internal/model"
)

// CommentRepository defines data access for comments against a document store.
// No business logic here — strictly persistence operations. "Absent" results
// are reported through the store driver's not-found error, which the service
// layer translates.
type CommentRepository interface {
	// FindAll returns every stored comment.
	FindAll(ctx context.Context) ([]model.Comment, error)

	// Create inserts a new comment and returns it with the store-assigned
	// identifier. A caller-supplied "_id" field is ignored.
	Create(ctx context.Context, fields model.Comment) (model.Comment, error)

	// FindByID returns the comment with the given identifier.
	FindByID(ctx context.Context, id string) (model.Comment, error)

	// UpdateByID merges the given fields into the stored comment and returns
	// the document as it exists after the update.
	UpdateByID(ctx context.Context, id string, fields model.Comment) (model.Comment, error)

	// DeleteByID removes the comment and returns the deleted document.
	DeleteByID(ctx context.Context, id string) (model.Comment, error)

	// IsValidID reports whether id is a well-formed document identifier.
	// It never touches the store.
	IsValidID(id string) bool
}
