package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSummarize(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("unexpected request shape: %+v", req)
		}

		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: "### Report\n"}, {Text: "Done."}}}})
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL
	c.Model = "test-model"

	out, err := c.Summarize(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out != "### Report\nDone." {
		t.Fatalf("unexpected output: %q", out)
	}
	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected api key header: %q", gotKey)
	}
}

func TestClientSummarizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	_, err := c.Summarize(context.Background(), "analyze this")
	if err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected body in error, got %v", err)
	}
}

func TestClientSummarizeMissingKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Summarize(context.Background(), "analyze this"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
