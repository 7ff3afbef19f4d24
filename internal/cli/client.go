package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
)

// Client is an HTTP client for the API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Backend = (*Client)(nil)

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			// Simulations run inside the request
			Timeout: 2 * time.Minute,
		},
	}
}

// APIError represents an error response from the API
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Do performs an HTTP request
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			errResp.Error.Status = resp.StatusCode
			return &errResp.Error
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Health checks the server
func (c *Client) Health(ctx context.Context) (response.Health, error) {
	var h response.Health
	return h, c.Get(ctx, "/api/v1/health", &h)
}

// Dictionary describes the server's word list
func (c *Client) Dictionary(ctx context.Context) (response.Dictionary, error) {
	var d response.Dictionary
	return d, c.Get(ctx, "/api/v1/dictionary", &d)
}

// Solve finds the best word for a rack
func (c *Client) Solve(ctx context.Context, rack string) (response.Solve, error) {
	var s response.Solve
	return s, c.Post(ctx, "/api/v1/solve", request.SolveRequest{Rack: rack}, &s)
}

// Score counts the points of a word
func (c *Client) Score(ctx context.Context, word string) (response.Score, error) {
	var s response.Score
	return s, c.Post(ctx, "/api/v1/score", request.ScoreRequest{Word: word}, &s)
}

// PlayGame plays one game on the server
func (c *Client) PlayGame(ctx context.Context, req request.CreateGameRequest) (response.Game, error) {
	var g response.Game
	return g, c.Post(ctx, "/api/v1/games", req, &g)
}

// Simulate plays a batch of games on the server
func (c *Client) Simulate(ctx context.Context, req request.SimulateRequest) (response.Simulation, error) {
	var s response.Simulation
	return s, c.Post(ctx, "/api/v1/simulations", req, &s)
}

// GetGame fetches a stored game
func (c *Client) GetGame(ctx context.Context, id string) (response.Game, error) {
	var g response.Game
	return g, c.Get(ctx, "/api/v1/games/"+url.PathEscape(id), &g)
}

// ListGames lists the most recent games
func (c *Client) ListGames(ctx context.Context, limit int) (response.GameList, error) {
	var l response.GameList
	return l, c.Get(ctx, "/api/v1/games?limit="+strconv.Itoa(limit), &l)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// DeleteGame removes a stored game on the server
func (c *Client) DeleteGame(ctx context.Context, id string) (response.DeletedGame, error) {
	if err := c.Delete(ctx, "/api/v1/games/"+url.PathEscape(id)); err != nil {
		return response.DeletedGame{}, err
	}
	return response.DeletedGame{ID: id}, nil
}

// Close is a no-op; the HTTP client holds no resources
func (c *Client) Close() error {
	return nil
}
