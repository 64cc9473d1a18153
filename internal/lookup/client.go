package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shhac/discbag/internal/domain"
	apperrors "github.com/shhac/discbag/internal/errors"
)

const (
	// maxErrorBody bounds how much of a failed response is read for its message.
	maxErrorBody = 4096
	bagPath      = "bag"
)

// UserAgent is sent with every lookup request.
var UserAgent = "discbag/dev"

// Client fetches bags from the Bag Lookup Service over HTTP.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	mode    DecodeMode
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each lookup. Zero leaves the transport default in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithDecodeMode selects which response shape is accepted.
func WithDecodeMode(mode DecodeMode) Option {
	return func(c *Client) {
		c.mode = mode
	}
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidBaseURL, baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = strings.TrimRight(u.RawPath, "/")

	c := &Client{
		baseURL: u,
		http:    http.DefaultClient,
		mode:    DecodeAuto,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BagURL returns the address looked up for identifier. An empty identifier
// addresses the default bag.
func (c *Client) BagURL(identifier string) string {
	u := *c.baseURL
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		u.Path += "/" + bagPath
		u.RawPath = ""
		return u.String()
	}
	escapedBase := c.baseURL.EscapedPath()
	u.Path += "/" + bagPath + "/" + identifier
	u.RawPath = escapedBase + "/" + bagPath + "/" + url.PathEscape(identifier)
	return u.String()
}

// FetchBag looks up the bag for identifier. Every failure is returned as a
// *errors.LookupError.
func (c *Client) FetchBag(ctx context.Context, identifier string) (domain.Bag, error) {
	target := c.BagURL(identifier)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &apperrors.LookupError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	c.logger.Debug("bag lookup start", slog.String("url", target))
	start := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("bag lookup request failed",
			slog.String("url", target),
			slog.Any("error", err),
		)
		return nil, &apperrors.LookupError{URL: target, Err: err}
	}
	defer res.Body.Close()

	c.logger.Debug("bag lookup response",
		slog.String("url", target),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		message := errorMessage(body)
		c.logger.Warn("bag lookup unexpected status",
			slog.String("url", target),
			slog.Int("status", res.StatusCode),
			slog.String("message", message),
		)
		return nil, &apperrors.LookupError{URL: target, StatusCode: res.StatusCode, Message: message}
	}

	bag, err := DecodeBag(res.Body, c.mode)
	if err != nil {
		c.logger.Error("bag lookup decode failed",
			slog.String("url", target),
			slog.Any("error", err),
		)
		return nil, &apperrors.LookupError{URL: target, Err: err}
	}

	c.logger.Info("bag lookup complete",
		slog.String("url", target),
		slog.Int("discs", bag.Count()),
	)
	return bag, nil
}

// errorMessage extracts a human-readable message from an error body. It
// accepts a JSON string, a JSON object with an "error" or "message" field,
// or plain text.
func errorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
			return strings.TrimSpace(s)
		}
	case '{':
		var payload struct {
			Error   json.RawMessage `json:"error"`
			Message string          `json:"message"`
		}
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			var s string
			if len(payload.Error) > 0 && json.Unmarshal(payload.Error, &s) == nil && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
			if strings.TrimSpace(payload.Message) != "" {
				return strings.TrimSpace(payload.Message)
			}
			return ""
		}
	}
	return trimmed
}
