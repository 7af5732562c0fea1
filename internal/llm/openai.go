package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	config     *Config
	apiKey     string
	httpClient *http.Client
}

// NewOpenAIClient creates a client for an OpenAI-compatible endpoint.
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &OpenAIClient{
		config: config,
		apiKey: apiKey,
		// Per-attempt timeouts come from request contexts, not here.
		httpClient: &http.Client{},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Sentinel failures produced inside the retry operation so the final
// error can be classified into a precise message.
var (
	errMalformedJSON = errors.New("malformed response body")
	errInvalidFormat = errors.New("invalid response format")
)

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("AI endpoint returned status %d: %s", e.code, e.body)
}

// CustomizeContent issues one chat-completion call. Retryable statuses
// (429 and the transient 5xx family) are retried with exponential backoff
// up to the configured attempt bound; every failure mode collapses into a
// Response, never an error.
func (c *OpenAIClient) CustomizeContent(ctx context.Context, systemPrompt, contextText string, params ModelParams) Response {
	payload, err := json.Marshal(chatRequest{
		Model: params.Model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: contextText},
		},
		MaxTokens:   params.MaxTokens(),
		Temperature: params.Temperature(),
	})
	if err != nil {
		return Response{ErrorMessage: fmt.Sprintf("failed to encode request: %v", err)}
	}

	timeout := params.TimeoutSeconds(c.config.Timeout)
	var result Response
	var lastStatus int

	op := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost,
			c.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		slog.Debug("sending AI request", "url", req.URL.String(), "model", params.Model())
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		lastStatus = resp.StatusCode

		if retryableStatus(resp.StatusCode) {
			slog.Warn("AI endpoint transient failure", "status", resp.StatusCode)
			return &statusError{code: resp.StatusCode, body: string(body)}
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(&statusError{code: resp.StatusCode, body: string(body)})
		}

		var out chatResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return backoff.Permanent(errMalformedJSON)
		}
		if len(out.Choices) == 0 {
			return backoff.Permanent(errInvalidFormat)
		}

		result = Response{
			Success: true,
			Content: strings.TrimSpace(out.Choices[0].Message.Content),
		}
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(c.config.MaxRetries)), ctx)

	if err := backoff.Retry(op, policy); err != nil {
		return c.failureResponse(err, timeout, lastStatus)
	}

	slog.Info("successfully received AI customization response")
	return result
}

// retryableStatus reports whether a status code warrants another attempt.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// failureResponse classifies a final transport error into the message
// vocabulary callers log and match on: timeout, connection failure,
// malformed body, invalid shape, or a terminal HTTP status.
func (c *OpenAIClient) failureResponse(err error, timeoutSecs, lastStatus int) Response {
	var statusErr *statusError
	var netErr net.Error
	var urlErr *url.Error

	switch {
	case errors.Is(err, errMalformedJSON):
		return Response{ErrorMessage: "Failed to parse AI response as JSON", StatusCode: lastStatus}
	case errors.Is(err, errInvalidFormat):
		return Response{ErrorMessage: "Invalid response format from AI endpoint", StatusCode: lastStatus}
	case errors.As(err, &statusErr):
		return Response{ErrorMessage: statusErr.Error(), StatusCode: statusErr.code}
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return Response{ErrorMessage: fmt.Sprintf("Request timeout after %d seconds", timeoutSecs)}
	case errors.As(err, &urlErr):
		return Response{ErrorMessage: "Failed to connect to AI endpoint"}
	default:
		return Response{ErrorMessage: fmt.Sprintf("Request failed: %v", err)}
	}
}

// IsAvailable issues a minimal single-token request with a short timeout
// and reports reachability only.
func (c *OpenAIClient) IsAvailable(ctx context.Context) bool {
	payload, err := json.Marshal(chatRequest{
		Model:     defaultModel,
		Messages:  []chatMessage{{Role: "user", Content: "test"}},
		MaxTokens: 1,
	})
	if err != nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodPost,
		c.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	return resp.StatusCode == http.StatusOK
}

// Close implements Client. The shared HTTP client needs no teardown.
func (c *OpenAIClient) Close() error {
	return nil
}
