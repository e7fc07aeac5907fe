// Package portalclient is a Go client for the portal API. It carries the
// behavior the browser frontend implements locally: form validation that
// runs before any request, and the session id that threads grid selections
// through the shell.
package portalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chirosmith/portal-api/pkg/logger"
)

const sessionHeader = "X-Session-ID"

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	sessionID  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.NewLogger(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the session established by the last selection call, if any.
func (c *Client) SessionID() string {
	return c.sessionID
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DayColumn and TimeSlot mirror the grid wire model.
type DayColumn struct {
	ISODate string `json:"iso_date"`
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
}

type TimeSlot struct {
	Minutes          int    `json:"minutes"`
	Label            string `json:"label"`
	HourBoundary     bool   `json:"hour_boundary"`
	HalfHourBoundary bool   `json:"half_hour_boundary"`
}

type Grid struct {
	Anchor time.Time   `json:"anchor"`
	Days   []DayColumn `json:"days"`
	Slots  []TimeSlot  `json:"slots"`
}

type SelectedSlot struct {
	DayLabel  string `json:"day_label"`
	TimeLabel string `json:"time_label"`
}

type Panel struct {
	Route    string `json:"route"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Redirect string `json:"redirect,omitempty"`
}

// Signup validates the form locally and, only if it passes, posts the wire
// fields to the signup endpoint. The password pair never leaves the client.
// It returns the new account id.
func (c *Client) Signup(ctx context.Context, form SignupForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	payload := map[string]string{
		"str_email":         form.Email,
		"str_first_name":    form.FirstName,
		"str_last_name":     form.LastName,
		"str_phone":         form.Phone,
		"dtm_date_of_birth": form.DateOfBirth,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode signup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/account/signup", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build signup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("signup request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read signup response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
			return "", fmt.Errorf("signup rejected: %s", failure.Error)
		}
		return "", fmt.Errorf("signup rejected: status %d", resp.StatusCode)
	}

	var created struct {
		Message   string `json:"message"`
		AccountID string `json:"accountId"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return "", fmt.Errorf("failed to decode signup response: %w", err)
	}

	c.log.Debug("account created", "accountId", created.AccountID)
	return created.AccountID, nil
}

// Grid fetches the weekly grid for an anchor date ("2024-01-01"); an empty
// anchor means today.
func (c *Client) Grid(ctx context.Context, anchor string) (*Grid, error) {
	url := c.baseURL + "/api/v1/schedule/grid"
	if anchor != "" {
		url += "?anchor=" + anchor
	}

	var grid Grid
	if err := c.getJSON(ctx, url, &grid); err != nil {
		return nil, err
	}
	return &grid, nil
}

// SelectSlot records a cell click for this client's session.
func (c *Client) SelectSlot(ctx context.Context, anchor string, dayIndex, slotIndex int) (*SelectedSlot, error) {
	payload := map[string]interface{}{
		"anchor":     anchor,
		"day_index":  dayIndex,
		"slot_index": slotIndex,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selection: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/v1/schedule/selection", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build selection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("selection request failed: %w", err)
	}
	defer resp.Body.Close()

	if sid := resp.Header.Get(sessionHeader); sid != "" {
		c.sessionID = sid
	}

	var slot SelectedSlot
	if err := decodeEnvelope(resp, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// Panel fetches the summary panel for a navigation path, selection-aware via
// this client's session.
func (c *Client) Panel(ctx context.Context, path string) (*Panel, error) {
	var panel Panel
	if err := c.getJSON(ctx, c.baseURL+"/api/v1/shell/panel?path="+path, &panel); err != nil {
		return nil, err
	}
	return &panel, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp, out)
}

func decodeEnvelope(resp *http.Response, out interface{}) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 || env.Status == "error" {
		if env.Message != "" {
			return fmt.Errorf("request rejected: %s", env.Message)
		}
		return fmt.Errorf("request rejected: status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
