package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mealplanner/internal/adapter/openai"
)

func TestGeneratePlan_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Model != "gpt-4.1-mini" {
			t.Errorf("model = %q", body.Model)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
			t.Errorf("unexpected messages: %+v", body.Messages)
		}
		if !strings.Contains(body.Messages[0].Content, "meal-planning assistant") {
			t.Errorf("system message = %q", body.Messages[0].Content)
		}
		if body.Messages[1].Content != "the prompt" {
			t.Errorf("user message = %q", body.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Day 1\n- Breakfast: oats"}}]}`))
	}))
	defer srv.Close()

	c := openai.New("test-key", "", srv.URL)
	got, err := c.GeneratePlan(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Day 1\n- Breakfast: oats" {
		t.Errorf("plan text = %q", got)
	}
}

func TestGeneratePlan_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	c := openai.New("test-key", "", srv.URL)
	_, err := c.GeneratePlan(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "exceeded your current quota") {
		t.Errorf("error %q missing status or API detail", err)
	}
}

func TestGeneratePlan_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := openai.New("test-key", "", srv.URL)
	_, err := c.GeneratePlan(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("err = %v; want no-choices error", err)
	}
}

func TestGeneratePlan_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := openai.New("test-key", "", srv.URL)
	_, err := c.GeneratePlan(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "decode chat response") {
		t.Errorf("err = %v; want decode error", err)
	}
}

func TestGeneratePlan_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := openai.New("test-key", "", srv.URL)
	_, err := c.GeneratePlan(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "call chat completions") {
		t.Errorf("err = %v; want transport error", err)
	}
}
