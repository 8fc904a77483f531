package scryfall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Options{})

	if client.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, defaultBaseURL)
	}
	if client.httpClient.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, defaultTimeout)
	}
	if client.maxTries != defaultMaxTries {
		t.Errorf("maxTries = %d, want %d", client.maxTries, defaultMaxTries)
	}
	if client.rateLimiter == nil {
		t.Error("rateLimiter is nil")
	}
}

func TestClient_RateLimiting(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"test","name":"Test Card"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		var card Card
		if err := client.doRequest(ctx, server.URL, &card); err != nil {
			t.Fatalf("request %d failed: %v", i+1, err)
		}
	}
	elapsed := time.Since(start)

	if requestCount != 5 {
		t.Errorf("expected 5 requests, got %d", requestCount)
	}

	// 4 enforced delays of 100ms between 5 requests.
	minDuration := 400 * time.Millisecond
	if elapsed < minDuration {
		t.Errorf("rate limiting not working: 5 requests in %v (expected >= %v)", elapsed, minDuration)
	}
}

func TestClient_NamedCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/named" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("fuzzy"); got != "lightning bolt" {
			t.Errorf("fuzzy param = %q, want %q", got, "lightning bolt")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "test-id",
			"name": "Lightning Bolt",
			"mana_cost": "{R}",
			"cmc": 1.0,
			"type_line": "Instant",
			"prints_search_uri": "https://api.scryfall.com/cards/search?q=bolt"
		}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	card, err := client.NamedCard(context.Background(), "lightning bolt")
	if err != nil {
		t.Fatalf("NamedCard() error = %v", err)
	}

	if card.Name != "Lightning Bolt" {
		t.Errorf("name = %q, want %q", card.Name, "Lightning Bolt")
	}
	if card.CMC == nil || *card.CMC != 1.0 {
		t.Errorf("cmc = %v, want 1.0", card.CMC)
	}
	if card.PrintsSearchURI == "" {
		t.Error("prints_search_uri not parsed")
	}
}

func TestClient_Autocomplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"object":"catalog","data":["Thought Scour","Thoughtseize"]}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	catalog, err := client.Autocomplete(context.Background(), "thou")
	if err != nil {
		t.Fatalf("Autocomplete() error = %v", err)
	}

	if len(catalog.Data) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(catalog.Data))
	}
	if catalog.Data[0] != "Thought Scour" {
		t.Errorf("first suggestion = %q", catalog.Data[0])
	}
}

func TestClient_Autocomplete_ShortQuery(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	catalog, err := client.Autocomplete(context.Background(), " t ")
	if err != nil {
		t.Fatalf("Autocomplete() error = %v", err)
	}

	if len(catalog.Data) != 0 {
		t.Errorf("expected empty catalog, got %v", catalog.Data)
	}
	if requestCount != 0 {
		t.Errorf("short query hit the network: %d requests", requestCount)
	}
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"object":"error","code":"not_found","status":404,"details":"No card found"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	var card Card
	err := client.doRequest(context.Background(), server.URL, &card)
	if err == nil {
		t.Fatal("expected error for 404, got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"test","name":"Test Card"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, MaxTries: 2})

	var card Card
	if err := client.doRequest(context.Background(), server.URL, &card); err != nil {
		t.Fatalf("doRequest failed after retry: %v", err)
	}

	if requestCount != 2 {
		t.Errorf("expected 2 requests (1 failure + 1 retry), got %d", requestCount)
	}
	if card.Name != "Test Card" {
		t.Errorf("card name = %q", card.Name)
	}
}

func TestClient_MaxTriesExceeded(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, MaxTries: 2})

	var card Card
	err := client.doRequest(context.Background(), server.URL, &card)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}

	if requestCount != 2 {
		t.Errorf("expected 2 attempts, got %d", requestCount)
	}
}

func TestClient_Headers(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, UserAgent: "rf-test/0.1"})

	var card Card
	if err := client.doRequest(context.Background(), server.URL, &card); err != nil {
		t.Fatalf("doRequest failed: %v", err)
	}

	if gotUserAgent != "rf-test/0.1" {
		t.Errorf("User-Agent = %q", gotUserAgent)
	}
	if !strings.HasPrefix(gotAccept, "application/json") {
		t.Errorf("Accept = %q, want JSON preference", gotAccept)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var card Card
	if err := client.doRequest(ctx, server.URL, &card); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&NotFoundError{URL: "x"}) {
		t.Error("IsNotFound(&NotFoundError{}) = false")
	}
	if IsNotFound(&APIError{Status: 500}) {
		t.Error("IsNotFound(&APIError{}) = true")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) = true")
	}
}
