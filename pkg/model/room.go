package model

type RoomType string

const (
	RoomTypePrivate    RoomType = "private"
	RoomTypeConference RoomType = "conference"
	RoomTypeShared     RoomType = "shared"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypePrivate, RoomTypeConference, RoomTypeShared:
		return true
	}
	return false
}

// NeedsAvailabilityQuery reports whether the secondary selector for this
// room type is populated from the room-availability endpoint. Conference
// bookings select a team instead.
func (t RoomType) NeedsAvailabilityQuery() bool {
	return t == RoomTypePrivate || t == RoomTypeShared
}

// Room is a view model mirrored from the booking backend. It is fetched per
// query and never mutated locally.
type Room struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	RoomType    RoomType `json:"room_type"`
	Capacity    int      `json:"capacity"`
	IsAvailable bool     `json:"is_available"`
}
