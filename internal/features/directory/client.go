package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	userSearchPath   = "/rest/api/3/user/search"
	maxResponseBytes = 1 << 20
	maxErrorBody     = 512
)

// Directory searches users by free text.
type Directory interface {
	SearchUsers(ctx context.Context, query string) ([]UserRecord, error)
}

// StatusError is returned when the directory answers with a non-success status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("directory responded with status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return apperrors.ErrLookupFailed
}

type ClientConfig struct {
	BaseURL  string
	Email    string
	APIToken string

	// RatePerSecond caps outbound requests; zero or less means unlimited.
	RatePerSecond float64
	Burst         int

	HTTPClient *http.Client
}

// Client calls the Jira user search endpoint.
type Client struct {
	baseURL  string
	email    string
	apiToken string
	http     *http.Client
	limiter  *rate.Limiter
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		email:    cfg.Email,
		apiToken: cfg.APIToken,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, burst),
	}
}

// SearchUsers runs one user search. An empty slice with a nil error means the
// directory answered but found nobody. Failures wrap apperrors.ErrLookupFailed.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]UserRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", apperrors.ErrLookupFailed, err)
	}

	endpoint := c.baseURL + userSearchPath + "?" + url.Values{"query": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "mentionlookup/1.0")
	if c.email != "" || c.apiToken != "" {
		req.SetBasicAuth(c.email, c.apiToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var users []jiraUser
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", apperrors.ErrLookupFailed, err)
	}

	records := make([]UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, u.toRecord())
	}
	return records, nil
}
