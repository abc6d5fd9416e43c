package api

import (
	"context"
	"fmt"
	"net/http"
)

// RegisterRequest is the body for both register endpoints. Company is
// required for recruiters.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. role must be candidate or recruiter.
func (c *Client) Register(ctx context.Context, role string, req RegisterRequest) (*TokenResponse, error) {
	var path string
	switch role {
	case "candidate":
		path = "/auth/register/candidate"
	case "recruiter":
		path = "/auth/register/recruiter"
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the authenticated user's profile
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
