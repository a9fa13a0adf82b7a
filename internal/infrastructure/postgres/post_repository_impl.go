package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	"github.com/Subh211/weave-backend/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) GetCollection(ctx context.Context, userID string) (*entity.PostCollection, error) {
	c := &entity.PostCollection{UserID: userID}
	if err := getDoc(ctx, r.pool, "post_collections", userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostRepository) Save(ctx context.Context, c *entity.PostCollection) error {
	return saveDoc(ctx, r.pool, "post_collections", c.UserID, c)
}

var _ repository.PostRepository = (*PostRepository)(nil)
