package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Subh211/weave-backend/internal/domain/entity"
)

func newFriendFixture() (*FriendService, *fakeUserRepo, *fakeFriendRepo, *fakeNotificationRepo) {
	users := newFakeUserRepo()
	friends := newFakeFriendRepo()
	notifications := newFakeNotificationRepo()
	svc := NewFriendService(users, friends, notifications, nil, nil, "weave")
	return svc, users, friends, notifications
}

func TestFollowCreatesBothEdges(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice", Email: "alice@weave.dev"})
	bob := users.add(entity.User{
		Name:   "Bob",
		Email:  "bob@weave.dev",
		Avatar: entity.Image{PublicID: "avatars/bob.png", SecureURL: "https://cdn/bob.png"},
	})

	graph, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, graph.Following, 1)

	edge := graph.Following[0]
	assert.Equal(t, bob.ID, edge.FriendID)
	assert.Equal(t, "Bob", edge.FriendName)
	assert.Equal(t, "avatars/bob.png", edge.FriendImage.PublicID)
	assert.NotZero(t, edge.Date)

	// Mirror edge on the target.
	bobGraph, err := svc.Graph(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, bobGraph.Followers, 1)
	assert.Equal(t, alice.ID, bobGraph.Followers[0].FriendID)
	assert.Equal(t, "Alice", bobGraph.Followers[0].FriendName)
	assert.Empty(t, bobGraph.Following)
}

func TestFollowRejectsSelf(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice"})

	_, err := svc.Follow(context.Background(), alice.ID, alice.ID)
	require.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowRejectsDuplicate(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice"})
	bob := users.add(entity.User{Name: "Bob"})

	_, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.Follow(context.Background(), alice.ID, bob.ID)
	require.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestFollowUnknownUsers(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice"})

	_, err := svc.Follow(context.Background(), alice.ID, "nope")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Follow(context.Background(), "nope", alice.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowRecordsNotification(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice"})
	bob := users.add(entity.User{Name: "Bob"})

	_, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	entries, err := svc.ListNotifications(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, alice.ID, entries[0].ActorID)
	assert.Equal(t, "Alice started following you", entries[0].Message)
}

func TestUnfollowRemovesBothEdges(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice"})
	bob := users.add(entity.User{Name: "Bob"})

	_, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unfollow(context.Background(), alice.ID, bob.ID))

	aliceGraph, err := svc.Graph(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceGraph.Following)

	bobGraph, err := svc.Graph(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobGraph.Followers)
}

func TestUnfollowWithoutEdgeIsNoop(t *testing.T) {
	svc, users, _, _ := newFriendFixture()
	alice := users.add(entity.User{Name: "Alice"})
	bob := users.add(entity.User{Name: "Bob"})

	require.NoError(t, svc.Unfollow(context.Background(), alice.ID, bob.ID))
}

func TestGraphForNewUserIsEmpty(t *testing.T) {
	svc, _, _, _ := newFriendFixture()

	g, err := svc.Graph(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", g.UserID)
	assert.Empty(t, g.Following)
	assert.Empty(t, g.Followers)
}

func TestListNotificationsForNewUserIsEmpty(t *testing.T) {
	svc, _, _, _ := newFriendFixture()

	entries, err := svc.ListNotifications(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
