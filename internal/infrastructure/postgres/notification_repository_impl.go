package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	"github.com/Subh211/weave-backend/internal/domain/repository"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Get(ctx context.Context, userID string) (*entity.Notifications, error) {
	n := &entity.Notifications{UserID: userID}
	if err := getDoc(ctx, r.pool, "notifications", userID, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NotificationRepository) Save(ctx context.Context, n *entity.Notifications) error {
	return saveDoc(ctx, r.pool, "notifications", n.UserID, n)
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
