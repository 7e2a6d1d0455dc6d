package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/resepmakanan/v1/internal/infrastructure/config"
	apperrors "github.com/resepmakanan/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			APIKey:         "test-key",
			BaseURL:        baseURL,
			Model:          "gemini-3-flash-preview",
			Temperature:    0.7,
			TopP:           0.95,
			Timeout:        5 * time.Second,
			RequestsPerMin: 600,
			Burst:          10,
		},
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "1. Nasi goreng telur\n"}, {Text: "2. Omelet bawang"}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())

	text, err := client.GenerateText(context.Background(), "Saran resep untuk bahan: telur, bawang.")
	require.NoError(t, err)
	assert.Equal(t, "1. Nasi goreng telur\n2. Omelet bawang", text)

	assert.Equal(t, "/models/gemini-3-flash-preview:generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "Saran resep untuk bahan: telur, bawang.", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 0.95, gotBody.GenerationConfig.TopP)
}

func TestGenerateTextQuotaStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http 429", http.StatusTooManyRequests, `{}`},
		{"resource exhausted", http.StatusForbidden, `{"error":{"code":403,"status":"RESOURCE_EXHAUSTED","message":"limit"}}`},
		{"quota in message", http.StatusBadRequest, `{"error":{"code":400,"status":"FAILED_PRECONDITION","message":"Quota exceeded for today"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL), zap.NewNop())

			_, err := client.GenerateText(context.Background(), "bahan")
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeQuotaExceeded))
		})
	}
}

func TestGenerateTextServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"status":"INTERNAL","message":"boom"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())

	_, err := client.GenerateText(context.Background(), "bahan")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeExternalServiceError))
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())

	_, err := client.GenerateText(context.Background(), "bahan")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeExternalServiceError))
}

func TestGenerateTextLocalRateLimit(t *testing.T) {
	cfg := testConfig("http://unused.invalid")
	cfg.AI.RequestsPerMin = 1
	cfg.AI.Burst = 1

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "ok"}}}},
			},
		})
	}))
	defer server.Close()
	cfg.AI.BaseURL = server.URL

	client := NewClient(cfg, zap.NewNop())

	_, err := client.GenerateText(context.Background(), "bahan")
	require.NoError(t, err)

	// burst spent; the second call trips the local limiter
	_, err = client.GenerateText(context.Background(), "bahan")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeQuotaExceeded))
}
