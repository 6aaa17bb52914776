package bookingform

import (
	"fmt"
	"strconv"

	"deskview/pkg/model"
)

// Field names the form inputs a user can change.
type Field string

const (
	FieldRoomType   Field = "room_type"
	FieldDate       Field = "date"
	FieldSlot       Field = "slot"
	FieldRoomID     Field = "room_id"
	FieldTeamID     Field = "team_id"
	FieldSeatNumber Field = "seat_number"
)

// Form is the booking form's state. Secondary values (room, team, seat)
// are kept as raw input strings until the request is assembled.
type Form struct {
	RoomType   model.RoomType
	Date       string
	SlotValue  string
	RoomID     string
	TeamID     string
	SeatNumber string
}

func NewForm() *Form {
	return &Form{Date: Today()}
}

// transition applies one field change and reports whether the secondary
// selector must be refreshed afterwards.
type transition func(f *Form, value string)

var transitions = map[Field]struct {
	apply          transition
	triggersRefresh bool
}{
	FieldRoomType: {
		apply: func(f *Form, value string) {
			f.RoomType = model.RoomType(value)
			f.clearSecondary()
		},
		triggersRefresh: true,
	},
	FieldDate: {
		apply: func(f *Form, value string) {
			f.Date = value
			f.clearSecondary()
		},
		triggersRefresh: true,
	},
	FieldSlot: {
		apply: func(f *Form, value string) {
			f.SlotValue = value
			f.clearSecondary()
		},
		triggersRefresh: true,
	},
	FieldRoomID: {
		apply: func(f *Form, value string) { f.RoomID = value },
	},
	FieldTeamID: {
		apply: func(f *Form, value string) { f.TeamID = value },
	},
	FieldSeatNumber: {
		apply: func(f *Form, value string) { f.SeatNumber = value },
	},
}

func (f *Form) clearSecondary() {
	f.RoomID = ""
	f.TeamID = ""
	f.SeatNumber = ""
}

// Apply runs the transition for one field and reports whether the change
// invalidates the current secondary-selector options.
func (f *Form) Apply(field Field, value string) (refresh bool, err error) {
	t, ok := transitions[field]
	if !ok {
		return false, fmt.Errorf("unknown form field: %q", field)
	}
	if field == FieldRoomType && value != "" && !model.RoomType(value).Valid() {
		return false, fmt.Errorf("unknown room type: %q", value)
	}
	t.apply(f, value)
	return t.triggersRefresh, nil
}

// Ready reports whether every field required by the selected room type is
// non-empty. Purely local: no network dependency, always synchronous.
func (f *Form) Ready() bool {
	if f.RoomType == "" || f.Date == "" || f.SlotValue == "" {
		return false
	}
	switch f.RoomType {
	case model.RoomTypeConference:
		return f.TeamID != ""
	case model.RoomTypePrivate, model.RoomTypeShared:
		return f.RoomID != ""
	}
	return false
}

// BuildRequest assembles the booking payload from the current state. The
// slot value is split into its start and end times on the way out.
func (f *Form) BuildRequest() (*model.BookingRequest, error) {
	if !f.Ready() {
		return nil, fmt.Errorf("booking form is incomplete")
	}

	start, end, err := SplitSlot(f.SlotValue)
	if err != nil {
		return nil, err
	}

	req := &model.BookingRequest{
		RoomType:  f.RoomType,
		SlotDate:  f.Date,
		SlotStart: start,
		SlotEnd:   end,
	}

	switch f.RoomType {
	case model.RoomTypeConference:
		teamID, err := strconv.Atoi(f.TeamID)
		if err != nil {
			return nil, fmt.Errorf("invalid team id %q: %w", f.TeamID, err)
		}
		req.TeamID = teamID
	case model.RoomTypePrivate, model.RoomTypeShared:
		roomID, err := strconv.Atoi(f.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room id %q: %w", f.RoomID, err)
		}
		req.RoomID = roomID
	}

	if f.RoomType == model.RoomTypeShared && f.SeatNumber != "" {
		seat, err := strconv.Atoi(f.SeatNumber)
		if err != nil {
			return nil, fmt.Errorf("invalid seat number %q: %w", f.SeatNumber, err)
		}
		req.SeatNumber = seat
	}

	return req, nil
}
