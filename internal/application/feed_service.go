package application

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	repo "github.com/Subh211/weave-backend/internal/domain/repository"
)

// ErrMissingRequester is returned when BuildFeed is called without a
// requester id. It is a caller error and is raised before any storage lookup.
var ErrMissingRequester = errors.New("missing requester id")

const (
	defaultFeedTimeout      = 10 * time.Second
	defaultFetchConcurrency = 8
)

// FeedService builds a user's feed in four stages: resolve the following
// set, collect candidate posts from the followed pool and the rest-of-world
// pool, shuffle each pool, then concatenate followed-first and drop posts the
// requester has already liked. It only reads; nothing it touches is mutated.
type FeedService struct {
	Users   repo.UserRepository
	Friends repo.FriendRepository
	Posts   repo.PostRepository
	Logger  *logrus.Logger

	// Timeout bounds one whole feed request. The rest-of-world pool scans
	// every registered user, so an unbounded request could run arbitrarily
	// long on a large user base.
	Timeout time.Duration

	// FetchConcurrency caps concurrent per-author lookups during post
	// collection.
	FetchConcurrency int
}

func NewFeedService(users repo.UserRepository, friends repo.FriendRepository, posts repo.PostRepository, logger *logrus.Logger, timeout time.Duration, fetchConcurrency int) *FeedService {
	return &FeedService{
		Users:            users,
		Friends:          friends,
		Posts:            posts,
		Logger:           logger,
		Timeout:          timeout,
		FetchConcurrency: fetchConcurrency,
	}
}

// BuildFeed assembles the feed for requesterID. An empty result is a valid
// success (nobody posted anything the requester hasn't liked yet). Any
// storage failure aborts the whole request; no partial feed is returned.
func (s *FeedService) BuildFeed(ctx context.Context, requesterID string) ([]entity.FeedItem, error) {
	if strings.TrimSpace(requesterID) == "" {
		return nil, ErrMissingRequester
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultFeedTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	following, err := s.followingSet(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	allIDs, err := s.Users.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	// Partition the user universe into followed and everyone else. The
	// requester is intentionally not excluded from the rest-of-world pool;
	// their own posts may show up in their feed and their own likes will
	// filter those out.
	followed := make([]string, 0, len(following))
	rest := make([]string, 0, len(allIDs))
	for _, id := range allIDs {
		if _, ok := following[id]; ok {
			followed = append(followed, id)
		} else {
			rest = append(rest, id)
		}
	}

	followedItems, err := s.collectPosts(ctx, followed)
	if err != nil {
		return nil, err
	}
	restItems, err := s.collectPosts(ctx, rest)
	if err != nil {
		return nil, err
	}

	shuffle(followedItems)
	shuffle(restItems)

	// Followed-pool posts always precede rest-of-world posts.
	combined := make([]entity.FeedItem, 0, len(followedItems)+len(restItems))
	combined = append(combined, followedItems...)
	combined = append(combined, restItems...)

	feed := combined[:0]
	for _, item := range combined {
		if !item.LikedBy(requesterID) {
			feed = append(feed, item)
		}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":  requesterID,
			"followed": len(followedItems),
			"rest":     len(restItems),
			"served":   len(feed),
		}).Debug("feed assembled")
	}
	return feed, nil
}

// followingSet resolves the deduplicated set of ids the requester follows.
// A user without a friend graph simply follows nobody.
func (s *FeedService) followingSet(ctx context.Context, requesterID string) (map[string]struct{}, error) {
	g, err := s.Friends.GetGraph(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return map[string]struct{}{}, nil
		}
		return nil, err
	}
	return g.FollowingIDs(), nil
}

// collectPosts gathers every post authored by the given ids, enriched with
// denormalized author identity. Author lookups run concurrently; each
// author's own posts keep their storage order. Any lookup failure aborts the
// whole collection.
func (s *FeedService) collectPosts(ctx context.Context, authorIDs []string) ([]entity.FeedItem, error) {
	perAuthor := make([][]entity.FeedItem, len(authorIDs))

	g, gctx := errgroup.WithContext(ctx)
	limit := s.FetchConcurrency
	if limit <= 0 {
		limit = defaultFetchConcurrency
	}
	g.SetLimit(limit)

	for i, id := range authorIDs {
		g.Go(func() error {
			items, err := s.collectAuthor(gctx, id)
			if err != nil {
				return err
			}
			perAuthor[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []entity.FeedItem
	for _, items := range perAuthor {
		out = append(out, items...)
	}
	return out, nil
}

// collectAuthor emits one FeedItem per post of a single author. A missing
// profile leaves the author fields empty, and a missing post collection
// contributes zero items; neither is an error.
func (s *FeedService) collectAuthor(ctx context.Context, authorID string) ([]entity.FeedItem, error) {
	var authorName string
	var authorAvatar entity.Image

	u, err := s.Users.GetByID(ctx, authorID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if u != nil {
		authorName = u.Name
		authorAvatar = u.Avatar
	}

	col, err := s.Posts.GetCollection(ctx, authorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	items := make([]entity.FeedItem, 0, len(col.Posts))
	for _, p := range col.Posts {
		likes := p.Likes
		if likes == nil {
			likes = []entity.Like{}
		}
		items = append(items, entity.FeedItem{
			PostID:               p.ID,
			FriendID:             authorID,
			AuthorName:           authorName,
			AuthorAvatarPublicID: authorAvatar.PublicID,
			AuthorAvatarURL:      authorAvatar.SecureURL,
			Caption:              p.Caption,
			PostImagePublicID:    p.Image.PublicID,
			PostImageURL:         p.Image.SecureURL,
			Likes:                likes,
			Comments:             normalizeComments(p.Comments),
		})
	}
	return items, nil
}

// normalizeComments guarantees the comments list and every field in it are
// present in the output, defaulting to empty rather than null.
func normalizeComments(comments []entity.Comment) []entity.Comment {
	out := make([]entity.Comment, len(comments))
	copy(out, comments)
	return out
}

// shuffle applies an unbiased in-place Fisher-Yates permutation.
func shuffle(items []entity.FeedItem) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
