package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	repo "github.com/Subh211/weave-backend/internal/domain/repository"
	"github.com/Subh211/weave-backend/pkg/helpers"
	"github.com/Subh211/weave-backend/pkg/mailer"
	mailtpl "github.com/Subh211/weave-backend/pkg/mailer/templates"
)

var (
	ErrAlreadyFollowing = errors.New("already following")
	ErrSelfFollow       = errors.New("cannot follow yourself")
)

// FriendService mutates the friend graph: following appends a denormalized
// snapshot edge to the follower's following list and a mirror edge to the
// target's followers list. Graph documents are created lazily.
type FriendService struct {
	Users         repo.UserRepository
	Friends       repo.FriendRepository
	Notifications repo.NotificationRepository
	Mail          *helpers.RabbitPublisher
	Logger        *logrus.Logger
	AppName       string
}

func NewFriendService(users repo.UserRepository, friends repo.FriendRepository, notifications repo.NotificationRepository, mail *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *FriendService {
	return &FriendService{
		Users:         users,
		Friends:       friends,
		Notifications: notifications,
		Mail:          mail,
		Logger:        logger,
		AppName:       appName,
	}
}

// Follow adds friendID to userID's following list and mirrors the edge on
// the target's followers list, then records a notification for the target.
func (s *FriendService) Follow(ctx context.Context, userID, friendID string) (*entity.FriendGraph, error) {
	if userID == friendID {
		return nil, ErrSelfFollow
	}

	actor, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	target, err := s.Users.GetByID(ctx, friendID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	graph, err := s.graphOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	if graph.Follows(friendID) {
		return nil, ErrAlreadyFollowing
	}

	now := time.Now().UnixMilli()
	graph.Following = append(graph.Following, entity.FriendEdge{
		FriendID:    target.ID,
		FriendName:  target.Name,
		FriendImage: target.Avatar,
		Date:        now,
	})
	if err := s.Friends.Save(ctx, graph); err != nil {
		return nil, err
	}

	// Mirror edge on the target's graph.
	targetGraph, err := s.graphOrEmpty(ctx, friendID)
	if err != nil {
		return nil, err
	}
	targetGraph.Followers = append(targetGraph.Followers, entity.FriendEdge{
		FriendID:    actor.ID,
		FriendName:  actor.Name,
		FriendImage: actor.Avatar,
		Date:        now,
	})
	if err := s.Friends.Save(ctx, targetGraph); err != nil {
		return nil, err
	}

	s.notifyFollowed(ctx, actor, target)
	return graph, nil
}

// Unfollow removes the edge in both directions. Removing an edge that does
// not exist is a no-op.
func (s *FriendService) Unfollow(ctx context.Context, userID, friendID string) error {
	graph, err := s.graphOrEmpty(ctx, userID)
	if err != nil {
		return err
	}
	graph.Following = removeEdge(graph.Following, friendID)
	if err := s.Friends.Save(ctx, graph); err != nil {
		return err
	}

	targetGraph, err := s.graphOrEmpty(ctx, friendID)
	if err != nil {
		return err
	}
	targetGraph.Followers = removeEdge(targetGraph.Followers, userID)
	return s.Friends.Save(ctx, targetGraph)
}

// Graph returns the user's friend graph; a user with no connections gets an
// empty graph, not an error.
func (s *FriendService) Graph(ctx context.Context, userID string) (*entity.FriendGraph, error) {
	return s.graphOrEmpty(ctx, userID)
}

// ListNotifications returns the user's notification entries, newest last.
func (s *FriendService) ListNotifications(ctx context.Context, userID string) ([]entity.Notification, error) {
	n, err := s.Notifications.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []entity.Notification{}, nil
		}
		return nil, err
	}
	return n.Entries, nil
}

func (s *FriendService) graphOrEmpty(ctx context.Context, userID string) (*entity.FriendGraph, error) {
	g, err := s.Friends.GetGraph(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &entity.FriendGraph{UserID: userID}, nil
		}
		return nil, err
	}
	return g, nil
}

// notifyFollowed persists a notification for the target and enqueues an
// email. Both are best-effort; a failed notification never fails the follow.
func (s *FriendService) notifyFollowed(ctx context.Context, actor, target *entity.User) {
	n, err := s.Notifications.Get(ctx, target.ID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("user_id", target.ID).Warn("load notifications failed")
			}
			return
		}
		n = &entity.Notifications{UserID: target.ID}
	}
	n.Entries = append(n.Entries, entity.Notification{
		Message:   actor.Name + " started following you",
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.Notifications.Save(ctx, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", target.ID).Warn("save notification failed")
	}

	if s.Mail != nil {
		job := mailer.EmailJob{
			To:       target.Email,
			Template: mailtpl.NewFollower,
			Data:     map[string]any{"Name": target.Name, "ActorName": actor.Name, "AppName": s.AppName},
		}
		if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", target.ID).Warn("enqueue follower email failed")
		}
	}
}

func removeEdge(edges []entity.FriendEdge, friendID string) []entity.FriendEdge {
	out := edges[:0]
	for _, e := range edges {
		if e.FriendID != friendID {
			out = append(out, e)
		}
	}
	return out
}
