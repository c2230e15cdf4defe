package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"PortfolioDesk/internal/config"
	"PortfolioDesk/internal/handlers"
	"PortfolioDesk/internal/repo"
	"PortfolioDesk/internal/service"
)

// fakeStore — двойник ObjectStore: складывает объекты в память.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("store unavailable")
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type testEnv struct {
	server *httptest.Server
	store  *fakeStore
	db     *gorm.DB
	cookie *http.Cookie
}

// newTestEnv поднимает роутер на in-memory SQLite и регистрирует админа,
// возвращая его auth cookie.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.AutoMigrate(db))

	cfg := &config.Config{AuthSecret: "test-secret", AssetMaxSizeMB: 1}
	store := newFakeStore()
	userService := service.NewUserService(repo.NewUserRepository(db))
	summaryService := service.NewSummaryService(db)

	h := handlers.NewHandler(db, userService, summaryService, store, zap.NewNop().Sugar(), cfg)
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, store: store, db: db}

	// регистрируем админа и забираем cookie
	resp := env.postJSON(t, "/api/user/register", map[string]string{"login": "admin", "password": "secret"}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			env.cookie = c
		}
	}
	require.NotNil(t, env.cookie, "register must set auth cookie")

	return env
}

func (e *testEnv) postJSON(t *testing.T, path string, payload any, cookie *http.Cookie) *http.Response {
	t.Helper()
	return e.doJSON(t, http.MethodPost, path, payload, cookie)
}

func (e *testEnv) doJSON(t *testing.T, method, path string, payload any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, e.server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
