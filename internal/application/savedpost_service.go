package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	repo "github.com/Subh211/weave-backend/internal/domain/repository"
)

// SavedPostService snapshots other users' posts into the requester's saved
// list. The snapshot is denormalized: it keeps the owner's identity and the
// post content as they were at save time.
type SavedPostService struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Saved  repo.SavedPostRepository
	Logger *logrus.Logger
}

func NewSavedPostService(users repo.UserRepository, posts repo.PostRepository, saved repo.SavedPostRepository, logger *logrus.Logger) *SavedPostService {
	return &SavedPostService{Users: users, Posts: posts, Saved: saved, Logger: logger}
}

// ErrAlreadySaved means the requester has already saved this post.
var ErrAlreadySaved = errors.New("post already saved")

// SavePost snapshots friendID's post into userID's saved list.
func (s *SavedPostService) SavePost(ctx context.Context, userID, friendID, postID string) (*entity.SavedPost, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	owner, err := s.Users.GetByID(ctx, friendID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	col, err := s.Posts.GetCollection(ctx, friendID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	post := col.FindPost(postID)
	if post == nil {
		return nil, ErrPostNotFound
	}

	saved, err := s.savedOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range saved.Posts {
		if saved.Posts[i].PostID == postID {
			return nil, ErrAlreadySaved
		}
	}
	snap := entity.SavedPost{
		PostID:         post.ID,
		PostOwnerID:    owner.ID,
		PostOwnerName:  owner.Name,
		PostOwnerImage: owner.Avatar,
		Caption:        post.Caption,
		Image:          post.Image,
		Likes:          post.Likes,
		Comments:       post.Comments,
		SavedAt:        time.Now().UTC(),
	}
	saved.Posts = append(saved.Posts, snap)
	if err := s.Saved.Save(ctx, saved); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListSaved returns the user's saved post snapshots.
func (s *SavedPostService) ListSaved(ctx context.Context, userID string) ([]entity.SavedPost, error) {
	saved, err := s.savedOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	return saved.Posts, nil
}

func (s *SavedPostService) savedOrEmpty(ctx context.Context, userID string) (*entity.SavedPosts, error) {
	saved, err := s.Saved.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &entity.SavedPosts{UserID: userID}, nil
		}
		return nil, err
	}
	return saved, nil
}
