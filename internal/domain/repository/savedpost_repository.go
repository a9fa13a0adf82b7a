package repository

import (
	"context"

	"github.com/Subh211/weave-backend/internal/domain/entity"
)

// SavedPostRepository persists per-user saved post documents.
type SavedPostRepository interface {
	Get(ctx context.Context, userID string) (*entity.SavedPosts, error)
	Save(ctx context.Context, s *entity.SavedPosts) error
}
