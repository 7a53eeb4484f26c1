package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajah/portfolio-site/internal/analytics"
)

var testNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, basePath string) (*gin.Engine, *analytics.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := analytics.Open(context.Background(), filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h, err := New(Options{
		Username:      "admin",
		Password:      "hunter2",
		BasePath:      basePath,
		RetentionDays: 365,
		Store:         store,
		Hasher:        analytics.NewHasher("test"),
		Now:           func() time.Time { return testNow },
	})
	require.NoError(t, err)

	r := gin.New()
	h.Register(r.Group(basePath))
	return r, store
}

func login(t *testing.T, r *gin.Engine, basePath, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, basePath+"/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestNewRequiresPassword(t *testing.T) {
	_, err := New(Options{Username: "admin"})
	assert.ErrorContains(t, err, "password is not configured")
}

func TestProtectedRoutesRedirectWithoutToken(t *testing.T) {
	r, _ := setup(t, "")
	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/visitors", "/admin/export/stats"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setup(t, "")
	w := login(t, r, "", "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginAndDashboard(t *testing.T) {
	r, store := setup(t, "/portfolio-site")
	require.NoError(t, store.Record(context.Background(), analytics.Visit{
		HashedIP: "0123456789abcdef", Path: "/", Timestamp: testNow.Add(-time.Hour),
	}))

	w := login(t, r, "/portfolio-site", "admin", "hunter2")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/portfolio-site/admin/dashboard", w.Header().Get("Location"))
	cookie := sessionCookie(t, w)
	assert.Equal(t, "/portfolio-site/admin", cookie.Path)
	assert.True(t, cookie.HttpOnly)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	dash := get("/portfolio-site/admin/dashboard")
	require.Equal(t, http.StatusOK, dash.Code)
	assert.Contains(t, dash.Body.String(), "0123456789abcdef")

	api := get("/portfolio-site/admin/api/stats")
	require.Equal(t, http.StatusOK, api.Code)
	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(api.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)

	export := get("/portfolio-site/admin/export/stats")
	require.Equal(t, http.StatusOK, export.Code)
	assert.Contains(t, export.Header().Get("Content-Disposition"), "admin-stats.json")

	visitors := get("/portfolio-site/admin/visitors")
	require.Equal(t, http.StatusOK, visitors.Code)
	assert.Contains(t, visitors.Body.String(), "0123456789abcdef")
}

func TestCleanup(t *testing.T) {
	r, store := setup(t, "")
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, analytics.Visit{HashedIP: "old", Path: "/", Timestamp: testNow.AddDate(-2, 0, 0)}))
	require.NoError(t, store.Record(ctx, analytics.Visit{HashedIP: "new", Path: "/", Timestamp: testNow}))

	cookie := sessionCookie(t, login(t, r, "", "admin", "hunter2"))
	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Removed int64 `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Removed)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := setup(t, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/logout", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	assert.Less(t, sessionCookie(t, w).MaxAge, 0)
}

func TestPrivacy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/privacy", Privacy(true, 365, "/"))
	r.GET("/privacy-off", Privacy(false, 0, "/"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/privacy", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salted hash")
	assert.Contains(t, w.Body.String(), "365 days")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/privacy-off", nil))
	assert.Contains(t, w.Body.String(), "does not record visits")
}
