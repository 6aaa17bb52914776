package blueprint

import (
	"deskview/pkg/model"
)

// occupancy indexes active bookings for a single date by room and seat.
type occupancy struct {
	rooms map[int]int          // room id -> active booking count
	seats map[int]map[int]bool // room id -> seat number -> booked
}

func buildOccupancy(bookings []model.Booking, date string) *occupancy {
	occ := &occupancy{
		rooms: map[int]int{},
		seats: map[int]map[int]bool{},
	}
	for _, b := range bookings {
		if !b.IsActive || b.SlotDate != date {
			continue
		}
		occ.rooms[b.RoomID]++
		if b.SeatNumber > 0 {
			if occ.seats[b.RoomID] == nil {
				occ.seats[b.RoomID] = map[int]bool{}
			}
			occ.seats[b.RoomID][b.SeatNumber] = true
		}
	}
	return occ
}

// roomBooked reports whether a room counts as occupied on the render
// date: private and conference rooms are all-or-nothing, shared desks
// only once every seat is taken.
func (o *occupancy) roomBooked(room *model.Room) bool {
	if room == nil {
		return false
	}
	switch room.RoomType {
	case model.RoomTypeShared:
		return len(o.seats[room.ID]) >= sharedDeskSeatCount
	default:
		return o.rooms[room.ID] > 0 || !room.IsAvailable
	}
}

func (o *occupancy) seatBooked(roomID, seat int) bool {
	return o.seats[roomID][seat]
}
