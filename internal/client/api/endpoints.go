package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/poken-app/poken/internal/profile"
)

// AuthResponse is the body returned by the login and signup endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, userID, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", userID, password, LoginStatusMessage)
}

// Signup creates an account and returns its first bearer token.
func (c *Client) Signup(ctx context.Context, userID, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/signup", userID, password, SignupStatusMessage)
}

func (c *Client) authenticate(ctx context.Context, path, userID, password, statusMessage string) (*AuthResponse, error) {
	raw, err := c.Request(ctx, path, RequestOptions{
		Method:        http.MethodPost,
		Body:          credentials{UserID: userID, Password: password},
		StatusMessage: statusMessage,
	})
	if err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unexpected auth response: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("auth response is missing access_token")
	}
	return &resp, nil
}

// FetchProfile retrieves the remote profile of the authenticated user.
func (c *Client) FetchProfile(ctx context.Context) (profile.Profile, error) {
	raw, err := c.Request(ctx, "/profile", RequestOptions{
		StatusMessage: FetchProfileStatus,
	})
	if err != nil {
		return profile.Profile{}, err
	}

	p, err := profile.Unmarshal(raw)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("unexpected profile response: %w", err)
	}
	return p, nil
}

// UpdateProfile writes the profile through to the server and returns the
// server-authoritative result.
func (c *Client) UpdateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	raw, err := c.Request(ctx, "/profile", RequestOptions{
		Method:        http.MethodPut,
		Body:          p,
		StatusMessage: UpdateProfileStatus,
	})
	if err != nil {
		return profile.Profile{}, err
	}

	saved, err := profile.Unmarshal(raw)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("unexpected profile response: %w", err)
	}
	return saved, nil
}
