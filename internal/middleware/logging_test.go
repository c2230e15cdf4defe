package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Дымовой тест: мидлварь логирования не паникует и прозрачно проксирует ответ
func TestWithLogging_Passthrough(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	h := WithLogging(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog_posts/xyz", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status passthrough failed: got %d", rr.Code)
	}
	if rr.Body.String() != "missing" {
		t.Fatalf("body passthrough failed: %q", rr.Body.String())
	}
}

// Тест: в лог уходят метод, статус и размер ответа
func TestWithLogging_RecordsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	defer SetLogger(zap.NewNop().Sugar())

	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/brands/1", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodDelete {
		t.Fatalf("method field wrong: %v", fields["method"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("status field wrong: %v", fields["status"])
	}
	if fields["size"] != int64(2) {
		t.Fatalf("size field wrong: %v", fields["size"])
	}
}
