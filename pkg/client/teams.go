package client

import (
	"context"
	"fmt"
	"time"

	apperrors "deskview/pkg/errors"
	"deskview/pkg/model"
)

type TeamClient struct {
	httpClient *HttpClient
}

func NewTeamClient(baseURL string, timeout time.Duration) *TeamClient {
	return &TeamClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// Mine fetches the caller's teams. No date or slot filter applies.
func (c *TeamClient) Mine(ctx context.Context, token string) ([]model.Team, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/teams/my", bearer(token))
	if err != nil {
		return nil, fmt.Errorf("team list failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to fetch teams."))
	}

	var teams []model.Team
	if err := resp.DecodeJSON(&teams); err != nil {
		return nil, fmt.Errorf("could not decode team list: %w", err)
	}
	return teams, nil
}

func (c *TeamClient) Create(ctx context.Context, token string, req *model.TeamCreateRequest) (*model.Team, error) {
	resp, err := c.httpClient.POST(ctx, "/api/v1/teams/", req, bearer(token))
	if err != nil {
		return nil, fmt.Errorf("team create failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to create team."))
	}

	var team model.Team
	if err := resp.DecodeJSON(&team); err != nil {
		return nil, fmt.Errorf("could not decode team: %w", err)
	}
	return &team, nil
}
