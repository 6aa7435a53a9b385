package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"butce/internal/config"
	apperrors "butce/internal/errors"
	"butce/internal/flash"
	"butce/internal/logger"
	"butce/internal/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func newTestManager(secret string) *SessionManager {
	return NewSessionManager(&config.Config{
		SessionSecret: secret,
		SessionTTL:    time.Hour,
	})
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func issueCookie(t *testing.T, m *SessionManager, userID uint) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", http.NoBody)

	if _, err := m.Issue(c, userID); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionIssueAndParse(t *testing.T) {
	m := newTestManager("secret")
	ck := issueCookie(t, m, 42)

	if !ck.HttpOnly {
		t.Error("expected HttpOnly session cookie")
	}

	s, err := m.Parse(ck.Value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != 42 {
		t.Errorf("expected user 42, got %d", s.UserID)
	}
	if !uuid.IsValid(s.ID) {
		t.Errorf("expected uuid session id, got %q", s.ID)
	}
}

func TestSessionParseRejects(t *testing.T) {
	m := newTestManager("secret")
	valid := issueCookie(t, m, 1).Value

	expired := newTestManager("secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken := issueCookie(t, expired, 1).Value

	tests := []struct {
		name  string
		token string
		mgr   *SessionManager
	}{
		{name: "wrong_secret", token: valid, mgr: newTestManager("other")},
		{name: "expired", token: expiredToken, mgr: m},
		{name: "garbage", token: "not.a.jwt", mgr: m},
		{name: "empty", token: "", mgr: m},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.mgr.Parse(tt.token); !errors.Is(err, ErrInvalidSession) {
				t.Errorf("expected ErrInvalidSession, got %v", err)
			}
		})
	}
}

func TestRequireLogin(t *testing.T) {
	m := newTestManager("secret")

	var gotUser uint
	r := gin.New()
	r.GET("/", m.RequireLogin(func(c *gin.Context, s *Session) {
		gotUser = s.UserID
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}))

	t.Run("without_session_redirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %q", loc)
		}

		var pending []flash.Message
		next := gin.New()
		next.GET("/login", func(c *gin.Context) { pending = flash.Pop(c) })
		req := httptest.NewRequest(http.MethodGet, "/login", http.NoBody)
		for _, ck := range rec.Result().Cookies() {
			req.AddCookie(ck)
		}
		next.ServeHTTP(httptest.NewRecorder(), req)

		if len(pending) != 1 || pending[0].Severity != flash.SeverityInfo || pending[0].Text != apperrors.ErrUnauthorized.Message {
			t.Errorf("expected one login info message, got %+v", pending)
		}
	})

	t.Run("with_session_runs_handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(issueCookie(t, m, 7))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotUser != 7 {
			t.Errorf("expected user 7, got %d", gotUser)
		}
	})
}

func TestClearExpiresCookie(t *testing.T) {
	m := newTestManager("secret")
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/logout", http.NoBody)

	m.Clear(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].MaxAge >= 0 {
		t.Errorf("expected expired session cookie, got %v", cookies)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "app_error", err: apperrors.ErrAccountNotFound, wantCode: http.StatusNotFound, wantErr: "ACCOUNT_NOT_FOUND"},
		{name: "wrapped_app_error", err: apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down")), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
		{name: "plain_error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestLogging(), ErrorHandler())
			r.GET("/fail", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", http.NoBody))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			body := parseBody(t, rec)
			errObj, _ := body["error"].(map[string]interface{})
			if errObj["code"] != tt.wantErr {
				t.Errorf("expected code %s, got %v", tt.wantErr, errObj["code"])
			}
			if strings.Contains(rec.Body.String(), "db down") {
				t.Error("internal error details leaked")
			}
		})
	}
}

func TestRequestLoggingSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

		id := rec.Header().Get("X-Request-ID")
		if !uuid.IsValid(id) {
			t.Fatalf("expected uuid request id, got %q", id)
		}
		if rec.Body.String() != id {
			t.Errorf("expected handler to see %s, got %s", id, rec.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		incoming := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		req.Header.Set("X-Request-ID", incoming)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != incoming {
			t.Errorf("expected %s, got %s", incoming, got)
		}
	})
}
