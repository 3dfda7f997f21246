package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	tokenSessionKey = "token"
	stateKey        = "state"
)

// Token returns the opaque session token from the cookie session, or an
// empty string for anonymous callers.
func Token(c *gin.Context) string {
	s := sessions.Default(c)

	key, _ := s.Get(tokenSessionKey).(string)
	return key
}

// SetToken binds a freshly issued session token to the cookie session.
func SetToken(c *gin.Context, key string) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(tokenSessionKey, key)
	return s.Save()
}

func Clear(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	s.Save()
}

// SetState stores a random OAuth state value in the session.
func SetState(c *gin.Context) (string, error) {
	state, err := randToken()
	if err != nil {
		return "", err
	}

	s := sessions.Default(c)
	s.Set(stateKey, state)
	return state, s.Save()
}

func State(c *gin.Context) interface{} {
	s := sessions.Default(c)
	return s.Get(stateKey)
}

// A failed entropy read must never degrade into a predictable state value.
func randToken() (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}
