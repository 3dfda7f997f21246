package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestStore_IssueAndGet(t *testing.T) {
	s := createStore(t)
	defer s.Close()

	credential := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}

	key, err := s.Issue(credential)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
}

func TestStore_GetUnknownKey(t *testing.T) {
	s := createStore(t)
	defer s.Close()

	_, err := s.Get("unknown")
	assert.Equal(t, ErrNotFound, err)
}

func TestStore_Refresh(t *testing.T) {
	s := createStore(t)
	defer s.Close()

	key, err := s.Issue(&oauth2.Token{AccessToken: "old"})
	require.NoError(t, err)

	err = s.Refresh(key, &oauth2.Token{AccessToken: "new"})
	require.NoError(t, err)

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
}

func TestStore_Invalidate(t *testing.T) {
	s := createStore(t)
	defer s.Close()

	key, err := s.Issue(&oauth2.Token{AccessToken: "access"})
	require.NoError(t, err)

	require.NoError(t, s.Invalidate(key))

	_, err = s.Get(key)
	assert.Equal(t, ErrNotFound, err)
}

func TestRandToken(t *testing.T) {
	first, err := randToken()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := randToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// docker run -it --rm -p 6379:6379 redis
func createStore(t *testing.T) *Store {
	if testing.Short() {
		t.Skip("run redis tests manually")
	}

	s, err := NewStore("redis://localhost")
	require.NoError(t, err)

	keys, err := s.client.Keys(keyPrefix + "*").Result()
	require.NoError(t, err)

	if len(keys) > 0 {
		require.NoError(t, s.client.Del(keys...).Err())
	}

	return s
}
