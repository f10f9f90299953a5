// Helpers shared by the package tests: a pre-seeded console with fast
// notification expiry, and a stub completion endpoint for insight tests.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/console"
	"github.com/Nicolas-29/nexus-admin/internal/insight"
	"github.com/Nicolas-29/nexus-admin/internal/seed"
)

// ShortTTL keeps toast-expiry tests fast.
const ShortTTL = 50 * time.Millisecond

// SetupConsole builds a seeded console against the given insight
// endpoint (empty baseURL is fine for tests that never trigger it).
func SetupConsole(t *testing.T, baseURL string) *console.Console {
	t.Helper()

	c := console.New(console.Options{
		NotificationTTL: ShortTTL,
		Insight: insight.Config{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Model:   "test-model",
			Timeout: 2 * time.Second,
		},
	})
	seed.Apply(c.Store())
	t.Cleanup(c.Close)
	return c
}

// BlockingServer is a stub completion endpoint that holds every request
// until Release is called, for exercising the single-flight guard.
type BlockingServer struct {
	*httptest.Server

	mu      sync.Mutex
	calls   int
	release chan struct{}
	once    sync.Once
}

// Calls returns how many requests have reached the server.
func (b *BlockingServer) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// Release lets all held requests answer.
func (b *BlockingServer) Release() {
	b.once.Do(func() { close(b.release) })
}

// BlockingCompletionServer starts a stub endpoint whose responses wait
// for Release.
func BlockingCompletionServer(t *testing.T, text string) *BlockingServer {
	t.Helper()

	b := &BlockingServer{release: make(chan struct{})}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls++
		b.mu.Unlock()
		<-b.release
		writeCompletion(w, text)
	}))
	t.Cleanup(func() {
		b.Release()
		b.Server.Close()
	})
	return b
}

func writeCompletion(w http.ResponseWriter, text string) {
	resp := map[string]any{
		"id":     "cmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": text,
				},
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// CompletionServer starts a stub chat-completion endpoint. Each request
// increments *calls (when non-nil) and answers with the given text, or
// HTTP 500 when fail is set.
func CompletionServer(t *testing.T, text string, fail bool, calls *int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			*calls++
		}
		if fail {
			http.Error(w, "upstream unavailable", http.StatusInternalServerError)
			return
		}
		writeCompletion(w, text)
	}))
	t.Cleanup(srv.Close)
	return srv
}
