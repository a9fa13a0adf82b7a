package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	"github.com/Subh211/weave-backend/internal/domain/repository"
)

type FriendRepository struct {
	pool *pgxpool.Pool
}

func NewFriendRepository(pool *pgxpool.Pool) *FriendRepository {
	return &FriendRepository{pool: pool}
}

func (r *FriendRepository) GetGraph(ctx context.Context, userID string) (*entity.FriendGraph, error) {
	g := &entity.FriendGraph{UserID: userID}
	if err := getDoc(ctx, r.pool, "friend_graphs", userID, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *FriendRepository) Save(ctx context.Context, g *entity.FriendGraph) error {
	return saveDoc(ctx, r.pool, "friend_graphs", g.UserID, g)
}

var _ repository.FriendRepository = (*FriendRepository)(nil)
