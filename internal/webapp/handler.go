package webapp

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"deskview/internal/blueprint"
	"deskview/internal/bookingform"
	"deskview/internal/events"
	"deskview/pkg/client"
	apperrors "deskview/pkg/errors"
	httputil "deskview/pkg/http"
	"deskview/pkg/logger"
	"deskview/pkg/middleware"
	"deskview/pkg/model"
	"deskview/pkg/sanitizer"

	"github.com/julienschmidt/httprouter"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the booking page and the view API behind it. All
// domain state lives in the backend; the handler only orchestrates
// client calls and per-session form state.
type Handler struct {
	client    *client.Client
	sessions  *sessionStore
	publisher *events.Publisher
	listLimit int
	log       *logger.Logger
}

func NewHandler(c *client.Client, publisher *events.Publisher, listLimit int, log *logger.Logger) *Handler {
	return &Handler{
		client: c,
		sessions: newSessionStore(func() *bookingform.Controller {
			return bookingform.NewController(c.Rooms, c.Teams, c.Bookings, log)
		}),
		publisher: publisher,
		listLimit: listLimit,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", h.Page)
	router.HandlerFunc(http.MethodGet, "/health", h.Health)

	router.HandlerFunc(http.MethodPost, "/view/login", h.Login)
	router.HandlerFunc(http.MethodPost, "/view/logout", h.Logout)

	router.HandlerFunc(http.MethodGet, "/view/slots", h.ListSlots)
	router.HandlerFunc(http.MethodGet, "/view/options", h.Options)
	router.HandlerFunc(http.MethodGet, "/view/bookings", h.ListBookings)
	router.HandlerFunc(http.MethodPost, "/view/bookings", h.SubmitBooking)
	router.DELETE("/view/bookings/:id", h.CancelBooking)
	router.HandlerFunc(http.MethodGet, "/view/teams", h.ListTeams)
	router.HandlerFunc(http.MethodPost, "/view/teams", h.CreateTeam)
	router.HandlerFunc(http.MethodGet, "/view/users/search", h.SearchUsers)
	router.HandlerFunc(http.MethodGet, "/view/blueprint", h.Blueprint)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		h.log.Fatal("Failed to mount static assets", "error", err)
	}
	router.ServeFiles("/static/*filepath", http.FS(static))
}

func (h *Handler) sessionKey(r *http.Request) string {
	if token := middleware.TokenFromContext(r.Context()); token != "" {
		return token
	}
	return r.RemoteAddr
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	userID := 0
	if token := middleware.TokenFromContext(r.Context()); token != "" {
		user, err := h.client.Auth.Me(r.Context(), token)
		if err != nil {
			h.log.Warn("Could not resolve current user", "error", err)
		} else {
			userID = user.ID
		}
	}

	page, err := renderBookingPage(PageData{
		CurrentUserID: userID,
		Today:         bookingform.Today(),
		Slots:         bookingform.Slots(),
	})
	if err != nil {
		h.log.Error("Failed to render booking page", "error", err)
		httputil.WriteError(w, apperrors.Internal("Failed to render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a backend token and stores it in the
// session cookie the identity middleware reads.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.WriteError(w, apperrors.InvalidInput("email and password are required"))
		return
	}

	token, err := h.client.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token.AccessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteSuccess(w, token)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	httputil.WriteNoContent(w)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, bookingform.Slots())
}

// Options applies the primary selections carried in the query and
// returns the secondary-selector state for them. A response overtaken
// by a newer refresh is dropped with 204.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	c := h.sessions.get(h.sessionKey(r))
	q := r.URL.Query()

	for _, field := range []bookingform.Field{bookingform.FieldRoomType, bookingform.FieldDate, bookingform.FieldSlot} {
		if _, err := c.Apply(field, q.Get(string(field))); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput(err.Error()))
			return
		}
	}

	opts, err := c.RefreshOptions(r.Context(), middleware.TokenFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, bookingform.ErrStaleRefresh) {
			httputil.WriteNoContent(w)
			return
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, opts)
}

type submitBookingRequest struct {
	RoomType   string `json:"room_type"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	RoomID     string `json:"room_id"`
	TeamID     string `json:"team_id"`
	SeatNumber string `json:"seat_number"`
}

func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req submitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	c := h.sessions.get(h.sessionKey(r))
	fields := []struct {
		field bookingform.Field
		value string
	}{
		{bookingform.FieldRoomType, req.RoomType},
		{bookingform.FieldDate, req.Date},
		{bookingform.FieldSlot, req.Slot},
		{bookingform.FieldRoomID, req.RoomID},
		{bookingform.FieldTeamID, req.TeamID},
		{bookingform.FieldSeatNumber, req.SeatNumber},
	}
	for _, f := range fields {
		if _, err := c.Apply(f.field, f.value); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput(err.Error()))
			return
		}
	}

	token := middleware.TokenFromContext(r.Context())
	outcome, err := c.Submit(r.Context(), token)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if !outcome.OK {
		httputil.WriteSuccess(w, outcome)
		return
	}

	snap := c.Snapshot()
	if booked, buildErr := snap.BuildRequest(); buildErr == nil {
		h.publisher.BookingCreated(&model.Booking{
			ID:         outcome.BookingID,
			RoomID:     booked.RoomID,
			RoomType:   booked.RoomType,
			SlotDate:   booked.SlotDate,
			SlotStart:  booked.SlotStart,
			SlotEnd:    booked.SlotEnd,
			SeatNumber: booked.SeatNumber,
			TeamID:     booked.TeamID,
			IsActive:   true,
		}, middleware.UserIDFromContext(r.Context()))
	}

	httputil.WriteCreated(w, outcome)
}

// bookingLine is one entry of the caller's booking list: the rendered
// display text plus the id needed to cancel it.
type bookingLine struct {
	ID      int    `json:"id"`
	Display string `json:"display"`
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	bookings, err := h.client.Bookings.List(r.Context(), token, h.listLimit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	lines := make([]bookingLine, 0, len(bookings))
	for _, b := range bookings {
		lines = append(lines, bookingLine{ID: b.ID, Display: displayLine(b)})
	}
	httputil.WriteSuccess(w, lines)
}

func displayLine(b model.Booking) string {
	line := fmt.Sprintf("Room: %d", b.RoomID)
	if b.RoomType == model.RoomTypeShared {
		line += fmt.Sprintf(" | Seat: %d", b.SeatNumber)
	}
	line += fmt.Sprintf(" | Date: %s | %s-%s | Booking ID: %d", b.SlotDate, b.SlotStart, b.SlotEnd, b.ID)
	return line
}

type cancelResponse struct {
	Cancelled int                           `json:"cancelled"`
	Options   *bookingform.SecondaryOptions `json:"options,omitempty"`
}

// CancelBooking deletes the booking, then re-checks availability so
// the freed room or seat reappears in the selector.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid booking id: %s", ps.ByName("id"))))
		return
	}

	token := middleware.TokenFromContext(r.Context())
	c := h.sessions.get(h.sessionKey(r))

	if err := c.CancelBooking(r.Context(), token, id); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.publisher.BookingCancelled(id, middleware.UserIDFromContext(r.Context()))

	resp := cancelResponse{Cancelled: id}
	opts, err := c.RefreshOptions(r.Context(), token)
	if err == nil {
		resp.Options = opts
	} else if !errors.Is(err, bookingform.ErrStaleRefresh) {
		h.log.Warn("Availability re-check after cancel failed", "booking_id", id, "error", err)
	}

	httputil.WriteSuccess(w, resp)
}

type teamLine struct {
	ID      int    `json:"id"`
	Display string `json:"display"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	teams, err := h.client.Teams.Mine(r.Context(), token)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	lines := make([]teamLine, 0, len(teams))
	for _, t := range teams {
		lines = append(lines, teamLine{ID: t.ID, Display: fmt.Sprintf("%s (ID: %d)", t.Name, t.ID)})
	}
	httputil.WriteSuccess(w, lines)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req model.TeamCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	req.Name = sanitizer.NormalizeTeamName(req.Name)
	if req.Name == "" {
		httputil.WriteError(w, apperrors.InvalidInput("team name is required"))
		return
	}
	if len(req.MemberIDs) == 0 {
		httputil.WriteError(w, apperrors.InvalidInput("Select at least one user."))
		return
	}

	token := middleware.TokenFromContext(r.Context())
	team, err := h.client.Teams.Create(r.Context(), token, &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, team)
}

// userOption is one search hit: the display text plus the real user id
// the team-creation flow needs.
type userOption struct {
	ID      int    `json:"id"`
	Display string `json:"display"`
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := sanitizer.NormalizeSearchQuery(r.URL.Query().Get("q"))
	if query == "" {
		httputil.WriteSuccess(w, []userOption{})
		return
	}

	token := middleware.TokenFromContext(r.Context())
	users, err := h.client.Users.Search(r.Context(), token, query)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	options := make([]userOption, 0, len(users))
	for _, u := range users {
		options = append(options, userOption{ID: u.ID, Display: fmt.Sprintf("%s (%s)", u.Name, u.Email)})
	}
	httputil.WriteSuccess(w, options)
}

// Blueprint renders the office schematic for today. It needs a
// resolved user and is otherwise not served at all.
func (h *Handler) Blueprint(w http.ResponseWriter, r *http.Request) {
	if middleware.UserIDFromContext(r.Context()) == 0 {
		httputil.WriteError(w, apperrors.NotFound("office blueprint"))
		return
	}

	token := middleware.TokenFromContext(r.Context())

	rooms, err := h.client.Rooms.Status(r.Context(), token)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	bookings, err := h.client.Bookings.List(r.Context(), token, 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	svg := blueprint.Render(rooms, bookings, bookingform.Today())
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg))
}
