package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
)

func TestNew_Defaults(t *testing.T) {
	g := New(Config{})

	assert.Equal(t, DefaultBaseURL, g.baseURL)
	assert.Equal(t, DefaultModel, g.ModelName())
	assert.Equal(t, DefaultTimeout, g.client.Timeout)
}

func TestGenerateText(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"1. Tell me about yourself"},"done":true}`))
	}))
	defer srv.Close()

	g := New(Config{BaseURL: srv.URL, Model: "mistral"})
	out, err := g.GenerateText(context.Background(), driven.TextRequest{
		Prompt:            "Interview questions",
		SystemInstruction: "Be brief",
		Temperature:       0.2,
	})

	require.NoError(t, err)
	assert.Equal(t, "1. Tell me about yourself", out)
	assert.Equal(t, "mistral", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	require.NotNil(t, got.Options)
	assert.InDelta(t, 0.2, got.Options.Temperature, 0.0001)
}

func TestGenerateText_NoOptions(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"content":"ok"},"done":true}`))
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).GenerateText(context.Background(), driven.TextRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Nil(t, got.Options)
	require.Len(t, got.Messages, 1)
}

func TestGenerateText_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).GenerateText(context.Background(), driven.TextRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestGenerateImage_Unsupported(t *testing.T) {
	_, err := New(Config{}).GenerateImage(context.Background(), driven.ImageRequest{Prompt: "x"})
	assert.ErrorIs(t, err, domain.ErrImageUnsupported)
}

func TestModelsAndPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest"},{"name":"mistral:7b"}]}`))
	}))
	defer srv.Close()

	g := New(Config{BaseURL: srv.URL})

	require.NoError(t, g.Ping(context.Background()))
	models, err := g.Models(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"llama3.2:latest", "mistral:7b"}, models)
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(Config{BaseURL: url}).Ping(context.Background())
	assert.Error(t, err)
}
