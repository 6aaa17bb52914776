package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "deskview/pkg/errors"
	"deskview/pkg/model"
)

type AuthClient struct {
	httpClient *HttpClient
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The backend speaks the
// OAuth2 password grant, so the body is form-encoded rather than JSON.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := c.httpClient.POSTForm(ctx, "/api/v1/auth/token", form.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Incorrect email or password."))
	}

	var token Token
	if err := resp.DecodeJSON(&token); err != nil {
		return nil, fmt.Errorf("could not decode token: %w", err)
	}
	return &token, nil
}

// Me resolves the acting user behind a bearer token.
func (c *AuthClient) Me(ctx context.Context, token string) (*model.User, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/auth/me", bearer(token))
	if err != nil {
		return nil, fmt.Errorf("current-user lookup failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Not authenticated."))
	}

	var user model.User
	if err := resp.DecodeJSON(&user); err != nil {
		return nil, fmt.Errorf("could not decode user: %w", err)
	}
	return &user, nil
}
