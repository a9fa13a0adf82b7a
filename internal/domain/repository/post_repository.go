package repository

import (
	"context"

	"github.com/Subh211/weave-backend/internal/domain/entity"
)

// PostRepository persists per-author post collection documents.
type PostRepository interface {
	// GetCollection returns the author's post collection in storage order, or
	// ErrNotFound if the author has never posted.
	GetCollection(ctx context.Context, userID string) (*entity.PostCollection, error)

	// Save upserts the whole collection document.
	Save(ctx context.Context, c *entity.PostCollection) error
}
