package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	"github.com/Subh211/weave-backend/internal/domain/repository"
)

type SavedPostRepository struct {
	pool *pgxpool.Pool
}

func NewSavedPostRepository(pool *pgxpool.Pool) *SavedPostRepository {
	return &SavedPostRepository{pool: pool}
}

func (r *SavedPostRepository) Get(ctx context.Context, userID string) (*entity.SavedPosts, error) {
	s := &entity.SavedPosts{UserID: userID}
	if err := getDoc(ctx, r.pool, "saved_posts", userID, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SavedPostRepository) Save(ctx context.Context, s *entity.SavedPosts) error {
	return saveDoc(ctx, r.pool, "saved_posts", s.UserID, s)
}

var _ repository.SavedPostRepository = (*SavedPostRepository)(nil)
