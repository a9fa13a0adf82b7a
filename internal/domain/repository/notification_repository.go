package repository

import (
	"context"

	"github.com/Subh211/weave-backend/internal/domain/entity"
)

// NotificationRepository persists per-user notification documents.
type NotificationRepository interface {
	Get(ctx context.Context, userID string) (*entity.Notifications, error)
	Save(ctx context.Context, n *entity.Notifications) error
}
