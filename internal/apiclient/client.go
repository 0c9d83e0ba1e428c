// Package apiclient issues HTTP requests against the user-management API and
// parses its JSON responses. The web UI consumes the API exclusively through
// this package.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/diluwara/Developer-Exam/internal/models"
)

// APIError carries the status code and the server-supplied error message of
// a non-success response. Message falls back to a generic text when the
// server provided none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the user-management API at BaseURL.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the API at baseURL, e.g. "http://localhost:3001".
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// FetchUsers retrieves the full user list, each user with its posts.
func (c *Client) FetchUsers() ([]models.User, error) {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/api/users")
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp, "Failed to fetch users")
	}

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// CreateUser creates a user. Name and email are trimmed before sending; a
// blank department is sent as null.
func (c *Client) CreateUser(name, email, department string) (*models.User, error) {
	payload := map[string]interface{}{
		"name":  strings.TrimSpace(name),
		"email": strings.TrimSpace(email),
	}
	if d := strings.TrimSpace(department); d != "" {
		payload["department"] = d
	} else {
		payload["department"] = nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	resp, err := c.HTTPClient.Post(c.BaseURL+"/api/users", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.errorFromResponse(resp, "Failed to create user")
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// errorFromResponse builds an APIError from a non-success response, using
// the server's {"error": message} payload when it parses.
func (c *Client) errorFromResponse(resp *http.Response, fallback string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}

	return apiErr
}
