// Package steam is a small client for the parts of the Steam Web API that
// describe a player: their profile summary, what they played recently and
// what they have played the most.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marcus-crane/steammini/utils"
)

const (
	APIBaseURL   = "https://api.steampowered.com/"
	StoreBaseURL = "https://store.steampowered.com/api/"

	EndpointGetUser        = "ISteamUser/GetPlayerSummaries/v0002/"
	EndpointRecentlyPlayed = "IPlayerService/GetRecentlyPlayedGames/v0001/"
	EndpointOwnedGames     = "IPlayerService/GetOwnedGames/v0001/"
	EndpointAppDetails     = "appdetails"

	defaultTimeout = 10 * time.Second
)

var statusMessages = map[int]string{
	http.StatusForbidden:           "Invalid API Key",
	http.StatusNotFound:            "Invalid Steam ID",
	http.StatusInternalServerError: "Internal Server Error",
}

// Client talks to the Steam Web API on behalf of a single API key. It is
// safe for concurrent use and holds no state besides its configuration.
type Client struct {
	apiKey         string
	apiBaseURL     string
	storeBaseURL   string
	httpClient     *http.Client
	logger         *slog.Logger
	statusMessages map[int]string
}

type Option func(*Client)

func WithAPIBaseURL(baseURL string) Option {
	return func(c *Client) { c.apiBaseURL = baseURL }
}

func WithStoreBaseURL(baseURL string) Option {
	return func(c *Client) { c.storeBaseURL = baseURL }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger replaces slog.Default. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient returns a client for apiKey. An empty key is rejected up front
// so that misconfiguration never reaches the network.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, validationError(ERR_MISSING_API_KEY)
	}
	c := &Client{
		apiKey:         apiKey,
		apiBaseURL:     APIBaseURL,
		storeBaseURL:   StoreBaseURL,
		httpClient:     utils.NewHTTPClient(defaultTimeout),
		logger:         slog.Default(),
		statusMessages: maps.Clone(statusMessages),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type requestConfig struct {
	baseURL string
}

type RequestOption func(*requestConfig)

// WithBase sends a single request to baseURL instead of the API base URL.
func WithBase(baseURL string) RequestOption {
	return func(rc *requestConfig) { rc.baseURL = baseURL }
}

// Payload is a classified, fully read response. JSON is set when Steam
// declared a JSON content type, otherwise the body is kept as Text.
type Payload struct {
	StatusCode  int
	ContentType string
	JSON        json.RawMessage
	Text        string
}

func (p *Payload) IsJSON() bool {
	return p.JSON != nil
}

func (p *Payload) Decode(dst any) error {
	if !p.IsJSON() {
		return decodeError(ERR_UNEXPECTED_TEXT, nil)
	}
	if err := json.Unmarshal(p.JSON, dst); err != nil {
		return decodeError(ERR_MALFORMED_RESPONSE, err)
	}
	return nil
}

func joinURL(base, endpoint string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}

// buildURL encodes params alongside the client's key. A key supplied by the
// caller is dropped so it never appears twice.
func (c *Client) buildURL(base, endpoint string, params url.Values) string {
	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}
	query.Set("key", c.apiKey)
	query.Set("format", "json")
	return joinURL(base, endpoint) + "?" + query.Encode()
}

// Request performs exactly one GET against endpoint and classifies the result.
func (c *Client) Request(ctx context.Context, endpoint string, params url.Values, opts ...RequestOption) (*Payload, error) {
	rc := requestConfig{baseURL: c.apiBaseURL}
	for _, opt := range opts {
		opt(&rc)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(rc.baseURL, endpoint, params), nil)
	if err != nil {
		return nil, transportError(0, ERR_REQUEST_FAILED, stripURL(err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		err = stripURL(err)
		c.logger.Debug("Failed to contact Steam",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		return nil, transportError(0, ERR_REQUEST_FAILED, err)
	}
	defer res.Body.Close()

	c.logger.Debug("Steam request completed",
		slog.String("endpoint", endpoint),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if message, ok := c.statusMessages[res.StatusCode]; ok {
		return nil, transportError(res.StatusCode, message, nil)
	}
	if res.StatusCode != http.StatusOK {
		return nil, transportError(res.StatusCode, ERR_REQUEST_FAILED, nil)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, transportError(res.StatusCode, ERR_REQUEST_FAILED, err)
	}

	payload := &Payload{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
	}
	if !strings.Contains(payload.ContentType, "application/json") {
		payload.Text = string(body)
		return payload, nil
	}
	if !json.Valid(body) {
		return nil, decodeError(ERR_MALFORMED_RESPONSE, nil)
	}
	payload.JSON = json.RawMessage(body)
	return payload, nil
}

// stripURL drops the request URL from err since it carries the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
