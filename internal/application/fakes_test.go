package application

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Subh211/weave-backend/internal/domain/entity"
	"github.com/Subh211/weave-backend/internal/domain/repository"
)

// In-memory repository fakes backed by maps. Each fake allows injecting
// errors to exercise failure paths.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]entity.User
	listErr error
	getErr  map[string]error // per-id injected GetByID failures
	calls   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}, getErr: map[string]error{}}
}

func (f *fakeUserRepo) add(u entity.User) entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.getErr[id]; err != nil {
		return nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) ListIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]string, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeFriendRepo struct {
	mu      sync.Mutex
	graphs  map[string]entity.FriendGraph
	getErr  error
	saveErr error
	calls   int
}

func newFakeFriendRepo() *fakeFriendRepo {
	return &fakeFriendRepo{graphs: map[string]entity.FriendGraph{}}
}

func (f *fakeFriendRepo) GetGraph(_ context.Context, userID string) (*entity.FriendGraph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	g, ok := f.graphs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	g.UserID = userID
	return &g, nil
}

func (f *fakeFriendRepo) Save(_ context.Context, g *entity.FriendGraph) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.graphs[g.UserID] = *g
	return nil
}

type fakePostRepo struct {
	mu      sync.Mutex
	cols    map[string]entity.PostCollection
	getErr  map[string]error // per-author injected failures
	saveErr error
	calls   int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{cols: map[string]entity.PostCollection{}, getErr: map[string]error{}}
}

func (f *fakePostRepo) setPosts(userID string, posts ...entity.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cols[userID] = entity.PostCollection{UserID: userID, Posts: posts}
}

func (f *fakePostRepo) GetCollection(_ context.Context, userID string) (*entity.PostCollection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.getErr[userID]; err != nil {
		return nil, err
	}
	c, ok := f.cols[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.UserID = userID
	return &c, nil
}

func (f *fakePostRepo) Save(_ context.Context, c *entity.PostCollection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cols[c.UserID] = *c
	return nil
}

type fakeSavedRepo struct {
	mu    sync.Mutex
	docs  map[string]entity.SavedPosts
	calls int
}

func newFakeSavedRepo() *fakeSavedRepo {
	return &fakeSavedRepo{docs: map[string]entity.SavedPosts{}}
}

func (f *fakeSavedRepo) Get(_ context.Context, userID string) (*entity.SavedPosts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	s, ok := f.docs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.UserID = userID
	return &s, nil
}

func (f *fakeSavedRepo) Save(_ context.Context, s *entity.SavedPosts) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.docs[s.UserID] = *s
	return nil
}

type fakeNotificationRepo struct {
	mu   sync.Mutex
	docs map[string]entity.Notifications
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{docs: map[string]entity.Notifications{}}
}

func (f *fakeNotificationRepo) Get(_ context.Context, userID string) (*entity.Notifications, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.docs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	n.UserID = userID
	return &n, nil
}

func (f *fakeNotificationRepo) Save(_ context.Context, n *entity.Notifications) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[n.UserID] = *n
	return nil
}

var (
	_ repository.UserRepository         = (*fakeUserRepo)(nil)
	_ repository.FriendRepository       = (*fakeFriendRepo)(nil)
	_ repository.PostRepository         = (*fakePostRepo)(nil)
	_ repository.SavedPostRepository    = (*fakeSavedRepo)(nil)
	_ repository.NotificationRepository = (*fakeNotificationRepo)(nil)
)
