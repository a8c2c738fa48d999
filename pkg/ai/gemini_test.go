package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/minutemind/minutemind/pkg/config"
)

func newTestClient(url string) *GeminiClient {
	return NewGeminiClient(&config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "gemini-test",
		Timeout: 5 * time.Second,
	})
}

func TestGenerateContentReturnsFirstCandidate(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "hello world"}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.GenerateContent(context.Background(), "say hello", &GenerationConfig{Temperature: 0.2})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("unexpected text: %q", got)
	}
	if !strings.Contains(gotPath, "gemini-test:generateContent") {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if _, ok := gotBody["generationConfig"]; !ok {
		t.Fatal("generation config must be sent when provided")
	}
}

func TestGenerateContentErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.GenerateContent(context.Background(), "anything", nil); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.GenerateContent(context.Background(), "anything", nil); err == nil {
		t.Fatal("expected error on empty candidates")
	}
}

func TestGenerateContentHonorsContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := newTestClient(server.URL)
	if _, err := client.GenerateContent(ctx, "anything", nil); err == nil {
		t.Fatal("expected context deadline error")
	}
}
