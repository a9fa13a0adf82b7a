package repository

import (
	"context"

	"github.com/Subh211/weave-backend/internal/domain/entity"
)

// FriendRepository persists per-user friend graph documents.
type FriendRepository interface {
	// GetGraph returns the friend graph for userID, or ErrNotFound if the
	// user has never followed or been followed.
	GetGraph(ctx context.Context, userID string) (*entity.FriendGraph, error)

	// Save upserts the whole graph document.
	Save(ctx context.Context, g *entity.FriendGraph) error
}
