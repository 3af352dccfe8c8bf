package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// memoryWriter collects log entries in memory.
type memoryWriter struct {
	mu      sync.Mutex
	entries []*model.LogEntry
	err     error
}

func (m *memoryWriter) CreateLog(_ context.Context, entry *model.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryWriter) snapshot() []*model.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.LogEntry(nil), m.entries...)
}
