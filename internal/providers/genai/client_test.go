package genai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(rt roundTripFunc) *Client {
	return NewClient(Options{
		APIKey:     "test-key",
		Model:      "gemini-3-flash-preview",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestGenerateContentReturnsText(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		if !strings.Contains(r.URL.Path, "gemini-3-flash-preview:generateContent") {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Fatalf("missing api key in query: %q", r.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Structure is bullish."}]}}]}`), nil
	})
	text, err := client.GenerateContent(context.Background(), ContentRequest{Prompt: "Analyze EURUSD"})
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if text != "Structure is bullish." {
		t.Fatalf("text = %q, want %q", text, "Structure is bullish.")
	}
}

func TestGenerateContentEncodesInlineImage(t *testing.T) {
	var captured geminiGenerateContentRequest
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"candidates":[]}`), nil
	})
	_, err := client.GenerateContent(context.Background(), ContentRequest{
		Prompt: "Analyze this chart structure.",
		Image:  &InlineImage{Data: "AAAA", MIMEType: "image/jpeg"},
	})
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if len(captured.Contents) != 1 || len(captured.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected payload shape: %+v", captured)
	}
	img := captured.Contents[0].Parts[1].InlineData
	if img == nil || img.Data != "AAAA" || img.MimeType != "image/jpeg" {
		t.Fatalf("inline data = %+v, want AAAA/image/jpeg", img)
	}
}

func TestGenerateContentNoText(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`), nil
	})
	text, err := client.GenerateContent(context.Background(), ContentRequest{Prompt: "hi"})
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty", text)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"error":{"code":403,"message":"API key invalid"}}`), nil
	})
	_, err := client.GenerateContent(context.Background(), ContentRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for HTTP 403")
	}
	if !strings.Contains(err.Error(), "API key invalid") {
		t.Fatalf("error = %v, want api message included", err)
	}
}

func TestGenerateContentTransportError(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	if _, err := client.GenerateContent(context.Background(), ContentRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Options{})
	if client.Model() != defaultModel {
		t.Fatalf("model = %q, want %q", client.Model(), defaultModel)
	}
	if client.baseURL != defaultBaseURL {
		t.Fatalf("baseURL = %q, want %q", client.baseURL, defaultBaseURL)
	}
}
