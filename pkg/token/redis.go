package token

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
	"golang.org/x/oauth2"
)

// ErrNotFound indicates the session token is unknown or expired.
var ErrNotFound = errors.New("session token not found")

const (
	keyPrefix  = "session/"
	defaultTTL = 30 * 24 * time.Hour
)

// Store keeps opaque session token to Patreon credential mappings in Redis.
// Clients only ever see the opaque token, the credential never leaves the
// backend.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		return nil, err
	}

	return &Store{client: client, ttl: defaultTTL}, nil
}

// Issue stores the credential under a freshly generated opaque token.
func (s *Store) Issue(credential *oauth2.Token) (string, error) {
	key, err := randToken()
	if err != nil {
		return "", err
	}

	if err := s.save(key, credential); err != nil {
		return "", err
	}

	return key, nil
}

// Refresh replaces the credential stored under an existing session token,
// keeping the token itself stable across credential refreshes.
func (s *Store) Refresh(key string, credential *oauth2.Token) error {
	return s.save(key, credential)
}

func (s *Store) Get(key string) (*oauth2.Token, error) {
	data, err := s.client.Get(keyPrefix + key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	credential := &oauth2.Token{}
	if err := msgpack.Unmarshal(data, credential); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize credential")
	}

	return credential, nil
}

func (s *Store) Invalidate(key string) error {
	return s.client.Del(keyPrefix + key).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) save(key string, credential *oauth2.Token) error {
	data, err := msgpack.Marshal(credential)
	if err != nil {
		return errors.Wrap(err, "failed to serialize credential")
	}

	return s.client.Set(keyPrefix+key, data, s.ttl).Err()
}

// A failed entropy read must never degrade into a predictable token.
func randToken() (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
