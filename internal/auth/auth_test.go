package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	return NewStore(
		securecookie.GenerateRandomKey(32),
		securecookie.GenerateRandomKey(32),
		"operator", hash,
	)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.Authenticate("operator", "s3cret"))
	assert.False(t, s.Authenticate("operator", "wrong"))
	assert.False(t, s.Authenticate("intruder", "s3cret"))
	assert.False(t, s.Authenticate("", ""))
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, s.SetSession(rec, req, "operator"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	authed := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		authed.AddCookie(c)
	}
	sess, ok := s.GetSession(authed)
	require.True(t, ok)
	assert.Equal(t, "operator", sess.User)
}

func TestGetSessionRejectsTamperedCookie(t *testing.T) {
	s := newTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "tablebook_session", Value: "forged"})
	_, ok := s.GetSession(req)
	assert.False(t, ok)
}

func TestRequireAuth(t *testing.T) {
	s := newTestStore(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	s.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginRec := httptest.NewRecorder()
	require.NoError(t, s.SetSession(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil), "operator"))

	authed := httptest.NewRequest(http.MethodPost, "/", nil)
	for _, c := range loginRec.Result().Cookies() {
		authed.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	s.RequireAuth(next).ServeHTTP(rec, authed)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
