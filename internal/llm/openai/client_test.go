package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movierec-backend/internal/llm"
)

func pickInput() llm.PickInput {
	return llm.PickInput{
		APIKey:    "test-key",
		Situation: "시험 끝난 날",
		MoodLabel: "코미디",
		Candidates: []llm.Candidate{
			{ID: 1, Title: "First", Rating: 7.2, VoteCount: 900},
			{ID: 2, Title: "Second", Rating: 8.1, VoteCount: 1200},
		},
	}
}

func TestPickFinalistReturnsRawContent(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": [{"message": {"role": "assistant", "content": "{\"id\": 2, \"title\": \"Second\", \"reason\": \"딱이에요\"}"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "gpt-4o-mini", 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	raw, err := client.PickFinalist(context.Background(), pickInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reply struct {
		ID     int    `json:"id"`
		Title  string `json:"title"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		t.Fatalf("raw payload not json: %v (%s)", err, raw)
	}
	if reply.ID != 2 || reply.Title != "Second" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("model %q", gotReq.Model)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format %q, want json_object", gotReq.ResponseFormat.Type)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0 {
		t.Fatalf("temperature %v, want 0", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("got %d messages, want system + user", len(gotReq.Messages))
	}
	if !strings.Contains(gotReq.Messages[1].Content, "Second") {
		t.Fatalf("user message is missing the candidates:\n%s", gotReq.Messages[1].Content)
	}
}

func TestPickFinalistAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "gpt-4o-mini", 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.PickFinalist(context.Background(), pickInput()); err == nil {
		t.Fatal("expected error for API error payload")
	} else if !strings.Contains(err.Error(), "Incorrect API key") {
		t.Fatalf("error %v should surface the upstream message", err)
	}
}

func TestPickFinalistEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "gpt-4o-mini", 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.PickFinalist(context.Background(), pickInput()); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestPickFinalistRequiresAPIKey(t *testing.T) {
	client, err := NewClient("http://unused", "gpt-4o-mini", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	input := pickInput()
	input.APIKey = ""
	if _, err := client.PickFinalist(context.Background(), input); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient("", "  ", time.Second); err == nil {
		t.Fatal("expected error for blank model")
	}
}
