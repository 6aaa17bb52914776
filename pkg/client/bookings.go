package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "deskview/pkg/errors"
	"deskview/pkg/model"

	"github.com/google/uuid"
)

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string, timeout time.Duration) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// Create POSTs a new booking. Each attempt carries a fresh Idempotency-Key;
// the caller never retries, so a duplicate key only ever means a duplicate
// browser submit.
func (c *BookingClient) Create(ctx context.Context, token string, req *model.BookingRequest) (*model.Booking, error) {
	headers := bearer(token)
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Idempotency-Key"] = uuid.NewString()

	resp, err := c.httpClient.POST(ctx, "/api/v1/bookings/", req, headers)
	if err != nil {
		return nil, fmt.Errorf("booking create failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Booking failed."))
	}

	var booking model.Booking
	if err := resp.DecodeJSON(&booking); err != nil {
		return nil, fmt.Errorf("could not decode booking: %w", err)
	}
	return &booking, nil
}

func (c *BookingClient) List(ctx context.Context, token string, limit int) ([]model.Booking, error) {
	path := "/api/v1/bookings/"
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", fmt.Sprintf("%d", limit))
		path += "?" + q.Encode()
	}

	resp, err := c.httpClient.GET(ctx, path, bearer(token))
	if err != nil {
		return nil, fmt.Errorf("booking list failed: %w", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to fetch bookings."))
	}

	var bookings []model.Booking
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, fmt.Errorf("could not decode booking list: %w", err)
	}
	return bookings, nil
}

func (c *BookingClient) Cancel(ctx context.Context, token string, id int) error {
	resp, err := c.httpClient.DELETE(ctx, fmt.Sprintf("/api/v1/bookings/%d", id), bearer(token))
	if err != nil {
		return fmt.Errorf("booking cancel failed: %w", err)
	}
	if !resp.OK() {
		return apperrors.Upstream(resp.StatusCode, ErrorDetail(resp, "Failed to cancel booking."))
	}
	return nil
}
