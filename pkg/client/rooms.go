package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "deskview/pkg/errors"
	"deskview/pkg/model"
)

type RoomClient struct {
	httpClient *HttpClient
}

func NewRoomClient(baseURL string, timeout time.Duration) *RoomClient {
	return &RoomClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// AvailabilityQuery identifies one slot on one date for one room type,
// matching the backend's /rooms/available/ query parameters.
type AvailabilityQuery struct {
	SlotDate  string
	SlotStart string
	SlotEnd   string
	RoomType  model.RoomType
}

func (c *RoomClient) Available(ctx context.Context, token string, query AvailabilityQuery) ([]model.Room, error) {
	q := url.Values{}
	q.Set("slot_date", query.SlotDate)
	q.Set("slot_start", query.SlotStart)
	q.Set("slot_end", query.SlotEnd)
	q.Set("room_type", string(query.RoomType))

	resp, err := c.httpClient.GET(ctx, "/api/v1/rooms/available/?"+q.Encode(), bearer(token))
	if err != nil {
		return nil, fmt.Errorf("availability query failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to fetch available rooms."))
	}

	var rooms []model.Room
	if err := resp.DecodeJSON(&rooms); err != nil {
		return nil, fmt.Errorf("could not decode room list: %w", err)
	}
	return rooms, nil
}

func (c *RoomClient) Status(ctx context.Context, token string) ([]model.Room, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/rooms/status/", bearer(token))
	if err != nil {
		return nil, fmt.Errorf("room status query failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to fetch room status."))
	}

	var rooms []model.Room
	if err := resp.DecodeJSON(&rooms); err != nil {
		return nil, fmt.Errorf("could not decode room status list: %w", err)
	}
	return rooms, nil
}
