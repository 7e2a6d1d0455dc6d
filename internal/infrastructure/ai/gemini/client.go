// Package gemini provides the outbound client for the hosted
// text-generation endpoint used by the chat widget.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/resepmakanan/v1/internal/infrastructure/config"
	"github.com/resepmakanan/v1/internal/ports/outbound"
	apperrors "github.com/resepmakanan/v1/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client calls the Gemini generateContent API. Each call is a single
// independent request; no conversation history is attached.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	topP        float64
	client      *http.Client
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new Gemini client from configuration. The local
// rate limiter guards the free-tier quota; exceeding it is reported
// the same way as a remote quota error.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	perMin := cfg.AI.RequestsPerMin
	if perMin <= 0 {
		perMin = 15
	}
	burst := cfg.AI.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		apiKey:      cfg.AI.APIKey,
		baseURL:     strings.TrimRight(cfg.AI.BaseURL, "/"),
		model:       cfg.AI.Model,
		temperature: cfg.AI.Temperature,
		topP:        cfg.AI.TopP,
		client:      &http.Client{Timeout: cfg.AI.Timeout},
		limiter:     rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst),
		logger:      logger,
	}
}

// Gemini API structures
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GenerateText sends a single prompt and returns the plain-text reply.
// Quota and rate-limit failures come back as CodeQuotaExceeded so the
// caller can pick the matching fallback; everything else is an
// external service error.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if !c.limiter.Allow() {
		c.logger.Warn("local rate limit reached for text generation")
		return "", apperrors.NewQuotaExceededError("gemini")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature: c.temperature,
			TopP:        c.topP,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode generation request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to build generation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("text generation request failed", zap.Error(err))
		return "", apperrors.NewExternalServiceError("gemini", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewExternalServiceError("gemini", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("failed to decode generation response",
			zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", apperrors.NewExternalServiceError("gemini", err)
	}

	if resp.StatusCode != http.StatusOK {
		if isQuotaError(resp.StatusCode, parsed.Error) {
			c.logger.Warn("text generation quota exhausted",
				zap.Int("status", resp.StatusCode))
			return "", apperrors.NewQuotaExceededError("gemini")
		}
		c.logger.Error("text generation returned error status",
			zap.Int("status", resp.StatusCode))
		return "", apperrors.NewExternalServiceError("gemini",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewExternalServiceError("gemini",
			fmt.Errorf("response contained no candidates"))
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func isQuotaError(status int, apiErr *apiError) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	if apiErr == nil {
		return false
	}
	return apiErr.Status == "RESOURCE_EXHAUSTED" ||
		strings.Contains(strings.ToLower(apiErr.Message), "quota")
}

var _ outbound.TextGenerator = (*Client)(nil)
