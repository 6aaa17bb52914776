package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "deskview/pkg/errors"
	"deskview/pkg/model"
)

type UserClient struct {
	httpClient *HttpClient
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *UserClient) Search(ctx context.Context, token, query string) ([]model.User, error) {
	q := url.Values{}
	q.Set("q", query)

	resp, err := c.httpClient.GET(ctx, "/api/v1/users/search?"+q.Encode(), bearer(token))
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to search users."))
	}

	var users []model.User
	if err := resp.DecodeJSON(&users); err != nil {
		return nil, fmt.Errorf("could not decode user list: %w", err)
	}
	return users, nil
}
