package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/finsight/internal/usecase"
)

const dateFormat = "2006-01-02"

// Config holds classification lookup settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// HTTPClassifier consumes the external classification lookup over HTTP. The
// service is already authenticated: the access credential is passed through
// as a bearer token. Requests are single-attempt with a bounded timeout; the
// upstream is rate limited, so retries belong to nobody.
type HTTPClassifier struct {
	baseURL string
	token   string
	client  *http.Client
	logger  zerolog.Logger
}

// New creates a new HTTPClassifier.
func New(cfg Config, logger zerolog.Logger) *HTTPClassifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClassifier{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type classifyRequest struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	Descriptions []string `json:"descriptions"`
}

type classifyResponse struct {
	Results []classifyResult `json:"results"`
}

type classifyResult struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Classify sends one batched classification request for the given date range
// and returns the description-to-category mapping.
func (c *HTTPClassifier) Classify(ctx context.Context, req usecase.ClassifyRequest) (map[string]string, error) {
	body, err := json.Marshal(classifyRequest{
		From:         req.From.Format(dateFormat),
		To:           req.To.Format(dateFormat),
		Descriptions: req.Descriptions,
	})
	if err != nil {
		return nil, fmt.Errorf("encode classify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("classification lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classification lookup: unexpected status %d", resp.StatusCode)
	}

	var decoded classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}

	known := make(map[string]string, len(decoded.Results))
	for _, r := range decoded.Results {
		known[r.Description] = r.Category
	}

	c.logger.Debug().
		Int("descriptions", len(req.Descriptions)).
		Int("classified", len(known)).
		Dur("duration", time.Since(start)).
		Msg("classification lookup completed")

	return known, nil
}
