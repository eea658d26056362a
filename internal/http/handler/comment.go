package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"commentapi/internal/model"
	"commentapi/internal/service"
)

// ListComments returns all stored comments as a JSON array.
func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comments, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
		}
		return c.JSON(comments)
	}
}

// CreateComment stores an arbitrary field mapping as a new comment.
// Parse, validation, and store failures all map to 400 here: the request
// body is treated as the likely culprit.
func CreateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields := model.Comment{}
		if err := c.BodyParser(&fields); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Failed to create comment")
		}

		comment, err := svc.Create(c.UserContext(), fields)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Failed to create comment")
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}

// GetComment returns a single comment by its path identifier.
func GetComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comment, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "Invalid comment id")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "Comment not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "Failed to fetch comment")
			}
		}
		return c.JSON(comment)
	}
}

// UpdateComment merges the request body into an existing comment and returns
// the post-update document. Store failures map to 400, not 500 — update
// bodies are treated as client input problems.
func UpdateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		fields := model.Comment{}
		if err := c.BodyParser(&fields); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Failed to update comment")
		}

		comment, err := svc.Update(c.UserContext(), id, fields)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "Invalid comment id")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "Comment not found")
			default:
				return writeError(c, fiber.StatusBadRequest, "Failed to update comment")
			}
		}
		return c.JSON(comment)
	}
}

// DeleteComment removes a comment by its path identifier and returns a
// confirmation message.
func DeleteComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "Invalid comment id")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "Comment not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "Failed to delete comment")
			}
		}
		return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
	}
}
