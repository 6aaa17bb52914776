package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"deskview/internal/events"
	"deskview/internal/webapp"
	"deskview/pkg/client"
	"deskview/pkg/logger"
	"deskview/pkg/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const Secret = "integration-secret"

// TestEnv wires the full middleware stack around the web app, backed
// by an in-memory booking backend, the way the real binary composes it.
type TestEnv struct {
	Backend *Backend
	limiter *middleware.CallerRateLimiter
}

func NewTestEnv() *TestEnv {
	return &TestEnv{Backend: NewBackend()}
}

// Setup starts the fake backend and the application server and returns
// a client for the latter.
func (e *TestEnv) Setup(t *testing.T) *Client {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})

	backendSrv := httptest.NewServer(e.Backend)
	t.Cleanup(backendSrv.Close)

	c := client.NewClient()
	c.SetAll(backendSrv.URL, 2*time.Second)

	handler := webapp.NewHandler(c, events.NewPublisher(nil, log), 50, log)
	router := httprouter.New()
	handler.RegisterRoutes(router)

	e.limiter = middleware.NewCallerRateLimiter(1000, time.Minute, middleware.DefaultCallerExtractor, log)
	t.Cleanup(e.limiter.Stop)

	var h http.Handler = router
	h = middleware.RequestTimeout(10 * time.Second)(h)
	h = middleware.CallerRateLimit(e.limiter)(h)
	h = middleware.Identify(Secret, log)(h)
	h = middleware.ContentTypeValidation(log)(h)
	h = middleware.MaxRequestSize(1 << 20)(h)
	h = middleware.RequestLogging(log)(h)
	h = middleware.Recovery(log)(h)

	appSrv := httptest.NewServer(h)
	t.Cleanup(appSrv.Close)

	return &Client{BaseURL: appSrv.URL}
}

// SignToken issues a bearer token the identity middleware will accept.
func SignToken(t *testing.T, userID int) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(Secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// bookingRecord is the backend's notion of a stored booking.
type bookingRecord struct {
	ID         int    `json:"id"`
	RoomID     int    `json:"room_id"`
	RoomType   string `json:"room_type"`
	SlotDate   string `json:"slot_date"`
	SlotStart  string `json:"slot_start"`
	SlotEnd    string `json:"slot_end"`
	SeatNumber int    `json:"seat_number,omitempty"`
	TeamID     int    `json:"team_id,omitempty"`
	IsActive   bool   `json:"is_active"`
}

type roomRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	RoomType    string `json:"room_type"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"is_available"`
}

// Backend is a minimal in-memory booking backend: rooms are seeded,
// bookings are created, listed and cancelled, and availability excludes
// rooms with an active booking in the requested slot.
type Backend struct {
	mu       sync.Mutex
	mux      *http.ServeMux
	rooms    []roomRecord
	bookings []bookingRecord
	nextID   int
}

func NewBackend() *Backend {
	b := &Backend{nextID: 1}
	b.mux = http.NewServeMux()
	b.routes()
	return b
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mux.ServeHTTP(w, r)
}

// SeedRoom adds a room to the backend's inventory.
func (b *Backend) SeedRoom(id int, name, roomType string, capacity int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, roomRecord{
		ID: id, Name: name, RoomType: roomType, Capacity: capacity, IsAvailable: true,
	})
}

// ActiveBookings counts bookings that have not been cancelled.
func (b *Backend) ActiveBookings() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, rec := range b.bookings {
		if rec.IsActive {
			n++
		}
	}
	return n
}
