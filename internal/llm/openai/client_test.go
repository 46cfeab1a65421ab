package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"delivery-backend/internal/llm"
)

func TestExtractDeliverySendsChatPayload(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"delivery\":\"yes\"}"}}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	raw, err := client.ExtractDelivery(context.Background(), llm.ExtractInput{EmailText: "order shipped", MaxTokens: 256})
	if err != nil {
		t.Fatalf("ExtractDelivery: %v", err)
	}
	if string(raw) != `{"delivery":"yes"}` {
		t.Fatalf("unexpected content %q", raw)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q, want Bearer test-key", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Fatalf("model = %v, want test-model", gotBody["model"])
	}
	if gotBody["max_tokens"] != float64(256) {
		t.Fatalf("max_tokens = %v, want 256", gotBody["max_tokens"])
	}
	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", gotBody["messages"])
	}
	user := messages[1].(map[string]any)
	if !strings.Contains(user["content"].(string), "order shipped") {
		t.Fatalf("user message missing email text: %v", user["content"])
	}
}

func TestExtractDeliveryNonSuccessStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ExtractDelivery(context.Background(), llm.ExtractInput{EmailText: "x"})
	if err == nil {
		t.Fatalf("expected error for non-success status")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestExtractDeliveryEnvelopeErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ExtractDelivery(context.Background(), llm.ExtractInput{EmailText: "x"})
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("expected envelope error surfaced, got %v", err)
	}
}

func TestExtractDeliveryEmptyChoicesFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ExtractDelivery(context.Background(), llm.ExtractInput{EmailText: "x"})
	if err == nil || !strings.Contains(err.Error(), "missing choices") {
		t.Fatalf("expected missing choices error, got %v", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient("", "", "model"); err == nil {
		t.Fatalf("expected error for missing key")
	}
	if _, err := NewClient("", "key", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
