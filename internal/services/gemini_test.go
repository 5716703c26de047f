package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"alfredoptarigan/resume-ats/internal/config"
)

type generateContentRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newTestGemini(t *testing.T, handler http.HandlerFunc) GeminiService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := newGeminiService(
		config.GeminiConfig{APIKey: "test-key", Model: "gemini-test"},
		genai.HTTPOptions{BaseURL: srv.URL},
	)
	require.NoError(t, err)
	return svc
}

func TestNewGeminiServiceRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiService(config.GeminiConfig{Model: "gemini-test"})
	assert.Error(t, err)
}

func TestGenerateContent(t *testing.T) {
	t.Run("single request with all inputs", func(t *testing.T) {
		var got generateContentRequest
		var path string

		svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ATS score: 82/100"}]}}]}`))
		})

		text, err := svc.GenerateContent(context.Background(), "resume text", "the prompt")
		require.NoError(t, err)

		assert.Equal(t, "ATS score: 82/100", text)
		assert.True(t, strings.HasSuffix(path, "gemini-test:generateContent"), path)
		require.Len(t, got.Contents, 1)
		assert.Equal(t, "user", got.Contents[0].Role)
		require.Len(t, got.Contents[0].Parts, 2)
		assert.Equal(t, "resume text", got.Contents[0].Parts[0].Text)
		assert.Equal(t, "the prompt", got.Contents[0].Parts[1].Text)
	})

	t.Run("api error", func(t *testing.T) {
		svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		})

		_, err := svc.GenerateContent(context.Background(), "resume text", "the prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key not valid")
	})

	t.Run("empty completion", func(t *testing.T) {
		svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := svc.GenerateContent(context.Background(), "resume text", "the prompt")
		assert.EqualError(t, err, "no text content in response")
	})
}
