package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homeworkbot/internal/domain"
)

// Client fetches homework status updates from the Practicum API.
type Client struct {
	httpc    *http.Client
	endpoint string
	token    string
}

// NewClient creates an API client. The timeout bounds the whole request; the
// API has no streaming responses, so a small fixed value is enough.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		httpc:    &http.Client{Timeout: timeout},
		endpoint: endpoint,
		token:    token,
	}
}

// Fetch requests all homework updates since the given Unix timestamp.
// It never retries; the poll loop's sleep is the only backoff.
func (c *Client) Fetch(ctx context.Context, since int64) (*domain.StatusReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(since, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIStatusError{Code: resp.StatusCode, FromDate: since}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return parseReport(body)
}
