package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"butce/internal/config"
	apperrors "butce/internal/errors"
	"butce/internal/flash"
	"butce/internal/uuid"
)

const (
	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "session"
	sessionIssuer = "butce"
	loginPath     = "/login"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// Session is the authenticated state of a request. It only identifies the user.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
}

// AuthedHandler is a handler that runs only for requests with a valid session.
type AuthedHandler func(c *gin.Context, s *Session)

// SessionManager issues and verifies session cookies.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewSessionManager creates a SessionManager from the session settings in cfg.
func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		secret: []byte(cfg.SessionSecret),
		ttl:    cfg.SessionTTL,
		secure: cfg.SessionSecure,
		now:    time.Now,
	}
}

// Issue signs a new session for userID and sets it as a cookie.
func (m *SessionManager) Issue(c *gin.Context, userID uint) (*Session, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return s, nil
}

// Clear removes the session cookie.
func (m *SessionManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", m.secure, true)
}

// Parse verifies a session token and returns the session it carries.
func (m *SessionManager) Parse(token string) (*Session, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, ErrInvalidSession
	}

	return &Session{
		ID:        claims.ID,
		UserID:    uint(userID),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Current returns the session of the request, if any.
func (m *SessionManager) Current(c *gin.Context) (*Session, bool) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return nil, false
	}
	s, err := m.Parse(token)
	if err != nil {
		return nil, false
	}
	return s, true
}

// RequireLogin wraps h so it only runs with a valid session. Other requests
// are redirected to the login page.
func (m *SessionManager) RequireLogin(h AuthedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Current(c)
		if !ok {
			flash.Write(c, flash.To(loginPath, flash.Info(apperrors.ErrUnauthorized.Message)))
			c.Abort()
			return
		}
		h(c, s)
	}
}
