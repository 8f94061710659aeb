package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leofalp/council/providers/ai"
)

type testPayload struct {
	Value string `json:"value"`
}

type testResponse struct {
	Echo string `json:"echo"`
}

// TestDoPostSync_Basic verifies the happy path: the request is a JSON POST
// with a Bearer token and the response body is decoded into the target type.
func TestDoPostSync_Basic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected Bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}

		var payload testPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(testResponse{Echo: payload.Value}); err != nil {
			t.Fatalf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	httpResponse, resp, err := DoPostSync[testResponse](context.Background(), server.Client(), "testprovider", server.URL, "test-key", testPayload{Value: "hello"})
	if err != nil {
		t.Fatalf("DoPostSync returned error: %v", err)
	}
	if httpResponse.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", httpResponse.StatusCode)
	}
	if resp == nil || resp.Echo != "hello" {
		t.Errorf("expected echo %q, got %+v", "hello", resp)
	}
}

// TestDoPostSync_CustomHeaderOverridesDefault verifies that a HeaderOption
// with the same key as a default header replaces the default value.
func TestDoPostSync_CustomHeaderOverridesDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "custom-scheme abc" {
			t.Errorf("expected overridden Authorization header, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("x-extra") != "on" {
			t.Errorf("expected x-extra header, got %q", r.Header.Get("x-extra"))
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, _, err := DoPostSync[testResponse](context.Background(), server.Client(), "testprovider", server.URL, "test-key", testPayload{},
		HeaderOption{Key: "Authorization", Value: "custom-scheme abc"},
		HeaderOption{Key: "x-extra", Value: "on"},
	)
	if err != nil {
		t.Fatalf("DoPostSync returned error: %v", err)
	}
}

// TestDoPostSync_Non2xx verifies that an error status produces an
// ai.UpstreamError carrying the provider tag and the vendor message.
func TestDoPostSync_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	_, _, err := DoPostSync[testResponse](context.Background(), server.Client(), "testprovider", server.URL, "test-key", testPayload{})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}

	var upstream *ai.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *ai.UpstreamError, got %T: %v", err, err)
	}
	if upstream.Provider != "testprovider" {
		t.Errorf("expected provider %q, got %q", "testprovider", upstream.Provider)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", upstream.StatusCode)
	}
	if upstream.Message != "rate limit exceeded" {
		t.Errorf("expected vendor message to be retained, got %q", upstream.Message)
	}
}

// TestDoPostSync_Non2xxUnparseableBody verifies the raw-body fallback when
// no message can be salvaged from the error body.
func TestDoPostSync_Non2xxUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	_, _, err := DoPostSync[testResponse](context.Background(), server.Client(), "testprovider", server.URL, "", testPayload{})

	var upstream *ai.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *ai.UpstreamError, got %T: %v", err, err)
	}
	if !strings.Contains(upstream.Message, "upstream exploded") {
		t.Errorf("expected raw body in message, got %q", upstream.Message)
	}
}

// TestDoPostSync_MalformedBody verifies that a 2xx response with an invalid
// JSON body returns a decoding error that includes a response preview.
func TestDoPostSync_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	_, _, err := DoPostSync[testResponse](context.Background(), server.Client(), "testprovider", server.URL, "", testPayload{})
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if !strings.Contains(err.Error(), "not json at all") {
		t.Errorf("expected response preview in error, got %q", err.Error())
	}
}

// TestDoPostSync_ContextTimeout verifies that the context deadline bounds the
// whole request and surfaces as an error.
func TestDoPostSync_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := DoPostSync[testResponse](ctx, server.Client(), "testprovider", server.URL, "", testPayload{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded in chain, got %v", err)
	}
}

// TestDoPostSync_NilClient verifies that a nil client falls back to
// http.DefaultClient instead of panicking.
func TestDoPostSync_NilClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"echo":"ok"}`))
	}))
	defer server.Close()

	_, resp, err := DoPostSync[testResponse](context.Background(), nil, "testprovider", server.URL, "", testPayload{})
	if err != nil {
		t.Fatalf("DoPostSync returned error: %v", err)
	}
	if resp.Echo != "ok" {
		t.Errorf("expected echo %q, got %q", "ok", resp.Echo)
	}
}
