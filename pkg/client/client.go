package client

import "time"

// Client aggregates the typed clients for the booking backend. Each view
// operation reaches the backend through exactly one of these.
type Client struct {
	Rooms    *RoomClient
	Teams    *TeamClient
	Users    *UserClient
	Bookings *BookingClient
	Auth     *AuthClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetRoomClient(baseURL string, timeout time.Duration) {
	c.Rooms = NewRoomClient(baseURL, timeout)
}

func (c *Client) SetTeamClient(baseURL string, timeout time.Duration) {
	c.Teams = NewTeamClient(baseURL, timeout)
}

func (c *Client) SetUserClient(baseURL string, timeout time.Duration) {
	c.Users = NewUserClient(baseURL, timeout)
}

func (c *Client) SetBookingClient(baseURL string, timeout time.Duration) {
	c.Bookings = NewBookingClient(baseURL, timeout)
}

func (c *Client) SetAuthClient(baseURL string, timeout time.Duration) {
	c.Auth = NewAuthClient(baseURL, timeout)
}

// SetAll points every typed client at the same backend.
func (c *Client) SetAll(baseURL string, timeout time.Duration) {
	c.SetRoomClient(baseURL, timeout)
	c.SetTeamClient(baseURL, timeout)
	c.SetUserClient(baseURL, timeout)
	c.SetBookingClient(baseURL, timeout)
	c.SetAuthClient(baseURL, timeout)
}
