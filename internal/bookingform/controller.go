package bookingform

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"deskview/pkg/client"
	apperrors "deskview/pkg/errors"
	"deskview/pkg/logger"
	"deskview/pkg/model"
)

// Messages surfaced to the user, verbatim.
const (
	NoticeNoPrivateRooms = "No private rooms available for the selected slot."
	NoticeNoTeams        = "No teams available for conference room booking."
	NoticeNoSharedDesks  = "No shared desks available for the selected slot."
	MsgBookingFailed     = "Booking failed."
)

// ErrStaleRefresh marks an options refresh whose response arrived after a
// newer refresh had already started. Stale results are never applied.
var ErrStaleRefresh = errors.New("stale options refresh discarded")

type RoomFinder interface {
	Available(ctx context.Context, token string, query client.AvailabilityQuery) ([]model.Room, error)
}

type TeamFinder interface {
	Mine(ctx context.Context, token string) ([]model.Team, error)
}

type BookingWriter interface {
	Create(ctx context.Context, token string, req *model.BookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, token string, id int) error
}

// Option is one entry of the secondary selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SecondaryOptions describes the state of the room-type-dependent selector:
// which kind of options it holds, whether a seat-number input applies, and
// whether booking is blocked because nothing is available.
type SecondaryOptions struct {
	Kind      string   `json:"kind,omitempty"` // "room" or "team"
	Options   []Option `json:"options"`
	SeatInput bool     `json:"seat_input,omitempty"`
	Notice    string   `json:"notice,omitempty"`
	Blocked   bool     `json:"blocked,omitempty"`
}

// SubmitOutcome is the user-facing result of one booking attempt.
type SubmitOutcome struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	BookingID int    `json:"booking_id,omitempty"`
}

// Controller owns one booking form and translates field changes and
// submissions into backend calls. Refreshes carry a monotonic generation:
// a slow response from an older generation is discarded rather than
// overwriting the options a newer refresh produced.
type Controller struct {
	mu        sync.Mutex
	form      *Form
	rooms     RoomFinder
	teams     TeamFinder
	bookings  BookingWriter
	validator *RequestValidator
	log       *logger.Logger
	gen       atomic.Uint64
}

func NewController(rooms RoomFinder, teams TeamFinder, bookings BookingWriter, log *logger.Logger) *Controller {
	return &Controller{
		form:      NewForm(),
		rooms:     rooms,
		teams:     teams,
		bookings:  bookings,
		validator: NewRequestValidator(log),
		log:       log,
	}
}

// Apply records one field change and reports whether the secondary
// selector must be refreshed.
func (c *Controller) Apply(field Field, value string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Apply(field, value)
}

// Ready reports submit-readiness for the current form. Synchronous.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Ready()
}

// Snapshot returns a copy of the current form state.
func (c *Controller) Snapshot() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.form
}

// RefreshOptions recomputes the secondary selector for the current room
// type, date and slot. An empty room type clears the selector without a
// fetch. At most one availability query is issued per call.
func (c *Controller) RefreshOptions(ctx context.Context, token string) (*SecondaryOptions, error) {
	gen := c.gen.Add(1)

	c.mu.Lock()
	form := *c.form
	c.mu.Unlock()

	if form.RoomType == "" {
		return &SecondaryOptions{}, nil
	}

	opts, err := c.fetchOptions(ctx, token, form)
	if err != nil {
		return nil, err
	}

	if c.gen.Load() != gen {
		c.log.Debug("Discarding stale options refresh", "generation", gen)
		return nil, ErrStaleRefresh
	}

	return opts, nil
}

func (c *Controller) fetchOptions(ctx context.Context, token string, form Form) (*SecondaryOptions, error) {
	if !form.RoomType.NeedsAvailabilityQuery() {
		teams, err := c.teams.Mine(ctx, token)
		if err != nil {
			return nil, err
		}
		if len(teams) == 0 {
			return &SecondaryOptions{Kind: "team", Options: []Option{}, Notice: NoticeNoTeams, Blocked: true}, nil
		}

		opts := &SecondaryOptions{Kind: "team", Options: make([]Option, 0, len(teams))}
		for _, team := range teams {
			opts.Options = append(opts.Options, Option{Value: strconv.Itoa(team.ID), Label: team.Name})
		}
		return opts, nil
	}

	// private and shared both query room availability for the slot
	if form.Date == "" || form.SlotValue == "" {
		return &SecondaryOptions{Kind: "room", Options: []Option{}}, nil
	}

	start, end, err := SplitSlot(form.SlotValue)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	rooms, err := c.rooms.Available(ctx, token, client.AvailabilityQuery{
		SlotDate:  form.Date,
		SlotStart: start,
		SlotEnd:   end,
		RoomType:  form.RoomType,
	})
	if err != nil {
		return nil, err
	}

	seatInput := form.RoomType == model.RoomTypeShared
	if len(rooms) == 0 {
		notice := NoticeNoPrivateRooms
		if form.RoomType == model.RoomTypeShared {
			notice = NoticeNoSharedDesks
		}
		return &SecondaryOptions{Kind: "room", Options: []Option{}, SeatInput: seatInput, Notice: notice, Blocked: true}, nil
	}

	opts := &SecondaryOptions{Kind: "room", Options: make([]Option, 0, len(rooms)), SeatInput: seatInput}
	for _, room := range rooms {
		opts.Options = append(opts.Options, Option{Value: strconv.Itoa(room.ID), Label: room.Name})
	}
	return opts, nil
}

// Submit assembles and POSTs the booking exactly once. Backend rejections
// become a failed outcome carrying the backend's detail; only an
// incomplete or invalid form is reported as an error.
func (c *Controller) Submit(ctx context.Context, token string) (*SubmitOutcome, error) {
	c.mu.Lock()
	req, err := c.form.BuildRequest()
	c.mu.Unlock()
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	if err := c.validator.Validate(req); err != nil {
		var validationErrs ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.Validation(err.Error(), map[string]any{"errors": validationErrs})
		}
		return nil, err
	}

	booking, err := c.bookings.Create(ctx, token, req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.CodeUpstream {
			return &SubmitOutcome{OK: false, Message: appErr.Message}, nil
		}
		c.log.Error("Booking submission failed", "error", err)
		return &SubmitOutcome{OK: false, Message: MsgBookingFailed}, nil
	}

	return &SubmitOutcome{
		OK:        true,
		Message:   fmt.Sprintf("Booking successful! Booking ID: %d", booking.ID),
		BookingID: booking.ID,
	}, nil
}

// CancelBooking deletes one booking. Callers refresh both the booking
// list and the secondary options afterwards, since cancelling may free a
// room or seat.
func (c *Controller) CancelBooking(ctx context.Context, token string, id int) error {
	return c.bookings.Cancel(ctx, token, id)
}
