package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	repo "github.com/Subh211/weave-backend/internal/domain/repository"
	"github.com/Subh211/weave-backend/pkg/helpers"
)

var ErrPostNotFound = errors.New("post not found")

// PostService owns the per-author post collection: creating posts, likes,
// and comments. Collections are created lazily on the first post.
type PostService struct {
	Users     repo.UserRepository
	Posts     repo.PostRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPostService(users repo.UserRepository, posts repo.PostRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PostService {
	return &PostService{Users: users, Posts: posts, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type CreatePostInput struct {
	Caption string

	// Optional image upload
	Image       io.Reader
	Filename    string
	ContentType string
}

// CreatePost appends a post to the author's collection.
func (s *PostService) CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*entity.Post, error) {
	if _, err := s.Users.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := entity.Post{
		ID:        uuid.NewString(),
		Caption:   in.Caption,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	if in.Image != nil {
		img, err := s.uploadImage(ctx, authorID, in.Image, in.Filename, in.ContentType)
		if err != nil {
			return nil, err
		}
		post.Image = img
	}

	col, err := s.collectionOrEmpty(ctx, authorID)
	if err != nil {
		return nil, err
	}
	col.Posts = append(col.Posts, post)
	if err := s.Posts.Save(ctx, col); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts returns every post of the user in storage order. A user who has
// never posted gets an empty list.
func (s *PostService) GetPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	col, err := s.Posts.GetCollection(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []entity.Post{}, nil
		}
		return nil, err
	}
	return col.Posts, nil
}

// GetOnePost returns a single post of the user.
func (s *PostService) GetOnePost(ctx context.Context, userID, postID string) (*entity.Post, error) {
	col, err := s.Posts.GetCollection(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	p := col.FindPost(postID)
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// ToggleLike appends a like entry for likerID, or removes the existing one.
// Returns true if the post is liked after the call.
func (s *PostService) ToggleLike(ctx context.Context, authorID, postID, likerID, likerName string) (bool, error) {
	col, err := s.Posts.GetCollection(ctx, authorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrPostNotFound
		}
		return false, err
	}
	p := col.FindPost(postID)
	if p == nil {
		return false, ErrPostNotFound
	}

	liked := false
	if p.LikedBy(likerID) {
		kept := p.Likes[:0]
		for _, l := range p.Likes {
			if l.UserID != likerID {
				kept = append(kept, l)
			}
		}
		p.Likes = kept
	} else {
		p.Likes = append(p.Likes, entity.Like{UserID: likerID, UserName: likerName, IsLiked: true})
		liked = true
	}

	if err := s.Posts.Save(ctx, col); err != nil {
		return false, err
	}
	return liked, nil
}

// AddComment appends a comment to the post. Empty commenter fields are kept
// as empty strings rather than dropped.
func (s *PostService) AddComment(ctx context.Context, authorID, postID, commenterID, commenterName, text string) (*entity.Comment, error) {
	col, err := s.Posts.GetCollection(ctx, authorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	p := col.FindPost(postID)
	if p == nil {
		return nil, ErrPostNotFound
	}

	comment := entity.Comment{Comment: text, UserID: commenterID, UserName: commenterName}
	p.Comments = append(p.Comments, comment)
	if err := s.Posts.Save(ctx, col); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *PostService) collectionOrEmpty(ctx context.Context, userID string) (*entity.PostCollection, error) {
	col, err := s.Posts.GetCollection(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &entity.PostCollection{UserID: userID}, nil
		}
		return nil, err
	}
	return col, nil
}

func (s *PostService) uploadImage(ctx context.Context, authorID string, r io.Reader, filename, contentType string) (entity.Image, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return entity.Image{}, errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("posts", authorID, id+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return entity.Image{}, err
	}
	return entity.Image{PublicID: objectPath, SecureURL: url}, nil
}
