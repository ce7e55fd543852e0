package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.SessionName {
			return c
		}
	}
	t.Fatalf("cookie %s not set", constants.SessionName)
	return nil
}

func TestCookieSessionRoundTrip(t *testing.T) {
	manager := NewCookieSessionManager("0123456789abcdef0123456789abcdef", time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, manager.SetUserID(rec, req, 42))

	cookie := sessionCookie(t, rec)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.False(t, cookie.Secure)
	require.Equal(t, 3600, cookie.MaxAge)

	next := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	next.AddCookie(cookie)
	userID, ok := manager.GetUserID(next)
	require.True(t, ok)
	require.Equal(t, 42, userID)
}

func TestCookieSessionMissingOrForged(t *testing.T) {
	manager := NewCookieSessionManager("0123456789abcdef0123456789abcdef", time.Hour, true)

	_, ok := manager.GetUserID(httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, ok)

	// 用不同 key 簽出來的 cookie
	other := NewCookieSessionManager("fedcba9876543210fedcba9876543210", time.Hour, true)
	rec := httptest.NewRecorder()
	require.NoError(t, other.SetUserID(rec, httptest.NewRequest(http.MethodPost, "/", nil), 7))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, rec))
	_, ok = manager.GetUserID(req)
	require.False(t, ok)
}

func TestCookieSessionClear(t *testing.T) {
	manager := NewCookieSessionManager("0123456789abcdef0123456789abcdef", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, manager.SetUserID(rec, httptest.NewRequest(http.MethodPost, "/", nil), 42))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/logout", nil)
	req.AddCookie(sessionCookie(t, rec))
	out := httptest.NewRecorder()
	require.NoError(t, manager.Clear(out, req))

	cleared := sessionCookie(t, out)
	require.True(t, cleared.MaxAge < 0)
}
