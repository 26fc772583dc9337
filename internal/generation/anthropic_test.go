package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newAnthropicTestClient(url string) *AnthropicClient {
	cfg := DefaultAnthropicConfig("test-key")
	cfg.BaseURL = url
	cfg.Timeout = 5 * time.Second
	return NewAnthropicClientWithConfig(cfg)
}

func TestAnthropicCompleteWithSystem(t *testing.T) {
	var gotSystem, gotPrompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		gotSystem = req.System
		if len(req.Messages) == 1 {
			gotPrompt = req.Messages[0].Content
		}

		resp := map[string]interface{}{
			"content": []map[string]string{
				{"type": "text", "text": "Section draft "},
				{"type": "text", "text": "continued."},
			},
			"stop_reason": "end_turn",
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := newAnthropicTestClient(srv.URL)
	out, err := c.CompleteWithSystem(context.Background(), "you are a PRD expert", "write section 1")
	if err != nil {
		t.Fatalf("CompleteWithSystem failed: %v", err)
	}
	if out != "Section draft continued." {
		t.Errorf("unexpected completion: %q", out)
	}
	if gotSystem != "you are a PRD expert" {
		t.Errorf("system prompt not forwarded: %q", gotSystem)
	}
	if gotPrompt != "write section 1" {
		t.Errorf("user prompt not forwarded: %q", gotPrompt)
	}
}

func TestAnthropicAPIErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"prompt too long"}}`))
	}))
	defer srv.Close()

	c := newAnthropicTestClient(srv.URL)
	_, err := c.CompleteWithSystem(context.Background(), "", "hi")
	if err == nil {
		t.Fatal("expected error")
	}

	var genErr *Error
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *generation.Error, got %T", err)
	}
	if genErr.Provider != "anthropic" {
		t.Errorf("provider = %q", genErr.Provider)
	}
	if genErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d", genErr.Status)
	}
}

func TestAnthropicRetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	}))
	defer srv.Close()

	c := newAnthropicTestClient(srv.URL)
	out, err := c.CompleteWithSystem(context.Background(), "", "hi")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if out != "ok" {
		t.Errorf("completion = %q", out)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestAnthropicMissingKey(t *testing.T) {
	cfg := DefaultAnthropicConfig("")
	c := NewAnthropicClientWithConfig(cfg)

	_, err := c.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error with missing key")
	}
	var genErr *Error
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *generation.Error, got %T", err)
	}
}
