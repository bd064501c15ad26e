package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopfront/shopfront/internal/client/models"
)

// fakeRepo is an in-memory state.Repository with injectable failures.
type fakeRepo struct {
	data map[string][]byte

	getErr    error
	setErr    error
	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (f *fakeRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRepo) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

func TestRestore_BothEntriesPresent(t *testing.T) {
	repo := newFakeRepo()
	repo.data[KeySessionToken] = []byte("tok-1")
	repo.data[KeyCurrentUser] = []byte(`{"username":"alice"}`)

	s := NewStore(repo)
	require.NoError(t, s.Restore(context.Background()))

	require.True(t, s.IsAuthenticated())
	require.Equal(t, "tok-1", s.Token())
	user, ok := s.User()
	require.True(t, ok)
	require.Equal(t, "alice", user.Username)
}

func TestRestore_PartialStateStaysLoggedOut(t *testing.T) {
	cases := map[string]map[string][]byte{
		"token only": {KeySessionToken: []byte("tok-1")},
		"user only":  {KeyCurrentUser: []byte(`{"username":"alice"}`)},
		"empty":      {},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.data = data

			s := NewStore(repo)
			require.NoError(t, s.Restore(context.Background()))

			require.False(t, s.IsAuthenticated())
			require.Empty(t, s.Token())
			_, ok := s.User()
			require.False(t, ok)
		})
	}
}

func TestRestore_CorruptedUserStaysLoggedOut(t *testing.T) {
	repo := newFakeRepo()
	repo.data[KeySessionToken] = []byte("tok-1")
	repo.data[KeyCurrentUser] = []byte(`{not json`)

	s := NewStore(repo)
	require.NoError(t, s.Restore(context.Background()))
	require.False(t, s.IsAuthenticated())
}

func TestRestore_RepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("disk gone")

	s := NewStore(repo)
	require.Error(t, s.Restore(context.Background()))
	require.False(t, s.IsAuthenticated())
}

func TestEstablishThenRestore_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	s := NewStore(repo)
	user := models.User{Username: "bob", Email: "b@example.com"}
	require.NoError(t, s.Establish(ctx, "tok-9", user))

	// Simulate a reload: a fresh store over the same repository.
	s2 := NewStore(repo)
	require.NoError(t, s2.Restore(ctx))

	require.True(t, s2.IsAuthenticated())
	require.Equal(t, "tok-9", s2.Token())
	restored, ok := s2.User()
	require.True(t, ok)
	require.Equal(t, user, restored)
}

func TestClear_AlwaysUnauthenticated(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	s := NewStore(repo)
	require.NoError(t, s.Establish(ctx, "tok-1", models.User{Username: "alice"}))

	require.NoError(t, s.Clear(ctx))
	require.False(t, s.IsAuthenticated())
	require.Empty(t, repo.data)
}

func TestClear_StorageFailureStillClearsMemory(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	s := NewStore(repo)
	require.NoError(t, s.Establish(ctx, "tok-1", models.User{Username: "alice"}))

	repo.deleteErr = errors.New("io error")
	err := s.Clear(ctx)
	require.Error(t, err)
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())
}
