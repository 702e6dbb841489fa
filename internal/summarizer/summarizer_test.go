package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clauselens/internal/config"
)

// fakeCompletionServer mimics an OpenAI-compatible chat completion
// endpoint, replying with a fixed summary.
func fakeCompletionServer(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &config.Config{
		SummarizerBaseURL: baseURL,
		SummarizerAPIKey:  "test-key",
		SummarizerModel:   "test-model",
		SummarizerEnabled: true,
	}
	client := New(cfg)
	if client == nil {
		t.Fatal("New() returned nil for enabled config")
	}
	return client
}

func TestNewDisabled(t *testing.T) {
	cfg := &config.Config{SummarizerEnabled: false}
	if client := New(cfg); client != nil {
		t.Error("New() should return nil when the summarizer is disabled")
	}
}

func TestSummarize(t *testing.T) {
	server := fakeCompletionServer(t, "You waive your right to sue.", http.StatusOK)
	defer server.Close()

	client := testClient(t, server.URL+"/v1")
	got, err := client.Summarize(context.Background(),
		"All disputes arising under this agreement shall be resolved exclusively through binding arbitration.")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "You waive your right to sue." {
		t.Errorf("Summarize() = %q, want model reply", got)
	}
}

func TestSummarizeShortTextSkipsModel(t *testing.T) {
	server := fakeCompletionServer(t, "should never be used", http.StatusOK)
	defer server.Close()

	client := testClient(t, server.URL+"/v1")
	got, err := client.Summarize(context.Background(), "Short clause.")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "Short clause." {
		t.Errorf("Summarize() = %q, want input returned unchanged", got)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	server := fakeCompletionServer(t, "unused", http.StatusOK)
	defer server.Close()

	client := testClient(t, server.URL+"/v1")
	got, err := client.Summarize(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "" {
		t.Errorf("Summarize() = %q, want empty", got)
	}
}

func TestSummarizeServerError(t *testing.T) {
	server := fakeCompletionServer(t, "", http.StatusInternalServerError)
	defer server.Close()

	client := testClient(t, server.URL+"/v1")
	_, err := client.Summarize(context.Background(),
		"All disputes arising under this agreement shall be resolved exclusively through binding arbitration.")
	if err == nil {
		t.Fatal("Summarize() error = nil, want failure surfaced to caller")
	}
}

func TestSummarizeLongInputChunks(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "chunk summary"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := testClient(t, server.URL+"/v1")

	paragraph := strings.Repeat("This clause describes obligations in detail. ", 30)
	long := paragraph + "\n\n" + paragraph + "\n\n" + paragraph

	got, err := client.Summarize(context.Background(), long)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if calls < 2 {
		t.Errorf("long input made %d model calls, want chunked into several", calls)
	}
	if want := strings.Repeat("chunk summary ", calls-1) + "chunk summary"; got != want {
		t.Errorf("Summarize() = %q, want concatenated chunk summaries", got)
	}
}
