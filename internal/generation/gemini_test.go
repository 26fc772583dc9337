package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newGeminiTestClient(url string) *GeminiClient {
	cfg := DefaultGeminiConfig("test-key")
	cfg.BaseURL = url
	cfg.Timeout = 5 * time.Second
	return NewGeminiClientWithConfig(cfg)
}

func TestGeminiCompleteWithSystem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not in query")
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "sys" {
			t.Errorf("system instruction not forwarded: %+v", req.SystemInstruction)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": "review feedback"}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer srv.Close()

	c := newGeminiTestClient(srv.URL)
	out, err := c.CompleteWithSystem(context.Background(), "sys", "review this")
	if err != nil {
		t.Fatalf("CompleteWithSystem failed: %v", err)
	}
	if out != "review feedback" {
		t.Errorf("completion = %q", out)
	}
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	c := newGeminiTestClient(srv.URL)
	_, err := c.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
	var genErr *Error
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *generation.Error, got %T", err)
	}
	if genErr.Provider != "gemini" {
		t.Errorf("provider = %q", genErr.Provider)
	}
}
