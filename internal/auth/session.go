// Package auth implements cookie-based session authentication backed by
// redis. Login mints a random token, stores a snapshot of the user under
// it and hands the token to the browser in an HttpOnly cookie; every
// protected request resolves the cookie back to the snapshot.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the session cookie issued on login.
	CookieName = "prisma_session"

	keyPrefix = "sessions:"
)

var ErrSessionNotFound = errors.New("sessão não encontrada ou expirada")

// Session is the server-side snapshot kept per logged-in user.
type Session struct {
	Token       string    `json:"token"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	NivelAcesso int       `json:"nivel_acesso"`
	Expiry      time.Time `json:"expiry"`
}

// SessionStore abstracts the session backend so services and middleware
// can be unit-tested against an in-memory implementation.
type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore keeps sessions in redis with the TTL as expiry.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// NewSession mints a session for a user with a fresh random token.
func NewSession(userID uuid.UUID, username string, nivel int, ttl time.Duration) *Session {
	return &Session{
		Token:       uuid.NewString(),
		UserID:      userID,
		Username:    username,
		NivelAcesso: nivel,
		Expiry:      time.Now().Add(ttl),
	}
}

func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+sess.Token, b, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	b, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, ErrSessionNotFound
	}
	if sess.Expiry.Before(time.Now()) {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// SetCookie writes the session cookie on the response.
func SetCookie(c *gin.Context, sess *Session) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.Expiry,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ReadToken extracts the session token from the request cookie.
func ReadToken(c *gin.Context) (string, bool) {
	cookie, err := c.Request.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
