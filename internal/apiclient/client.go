package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/nutrition"
	"github.com/2beens/fitcoach/pkg"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const userAgent = "FitCoach/cli"

var ErrUnauthorized = errors.New("unauthorized")

// StatusError is a non 2xx response of the fitcoach API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fitcoach api: %d: %s", e.StatusCode, e.Message)
}

// Client calls the fitcoach HTTP API as a coach.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Login exchanges coach credentials for a session token, used by later calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/a/login", bytes.NewReader(body), &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response without token")
	}
	c.token = resp.Token
	return resp.Token, nil
}

func (c *Client) FetchDayView(ctx context.Context, clientID string, date time.Time) (*nutrition.DayView, error) {
	path := fmt.Sprintf("/clients/%s/day/%s", url.PathEscape(clientID), date.Format(pkg.DateLayout))
	var view nutrition.DayView
	if err := c.do(ctx, http.MethodGet, path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", pkg.ContentType.JSON)
	}
	if c.token != "" {
		req.Header.Set(middleware.AuthTokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respBytes)),
		}
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
