package blueprint

import (
	"deskview/pkg/model"
)

// The office schematic is fixed: 8 private rooms along the top, 4
// conference rooms with 15 seats each in the middle band, 3 shared desks
// with 4 seats each along the bottom. Rooms from the status feed fill
// the schematic slots of their type in order.
const (
	privateRoomCount    = 8
	conferenceRoomCount = 4
	conferenceSeatCount = 15
	sharedDeskCount     = 3
	sharedDeskSeatCount = 4

	// Click-to-book always targets this slot on the render date.
	bookSlotStart = "09:00"
	bookSlotEnd   = "10:00"
)

const (
	canvasWidth  = 1000
	canvasHeight = 530
)

// cell is one positioned room shape on the canvas.
type cell struct {
	X, Y          int
	Width, Height int
	SeatCols      int
	SeatRows      int
	Room          *model.Room
}

// layoutCells positions the schematic slots and pairs each with the
// next status room of the matching type. Slots without a status room
// stay unbound and render as unknown.
func layoutCells(rooms []model.Room) (private, conference, shared []cell) {
	byType := map[model.RoomType][]model.Room{}
	for _, room := range rooms {
		byType[room.RoomType] = append(byType[room.RoomType], room)
	}

	take := func(t model.RoomType, i int) *model.Room {
		pool := byType[t]
		if i >= len(pool) {
			return nil
		}
		return &pool[i]
	}

	for i := 0; i < privateRoomCount; i++ {
		private = append(private, cell{
			X: 20 + i*120, Y: 20, Width: 110, Height: 80,
			Room: take(model.RoomTypePrivate, i),
		})
	}
	for i := 0; i < conferenceRoomCount; i++ {
		conference = append(conference, cell{
			X: 20 + i*245, Y: 130, Width: 230, Height: 180,
			SeatCols: 5, SeatRows: 3,
			Room: take(model.RoomTypeConference, i),
		})
	}
	for i := 0; i < sharedDeskCount; i++ {
		shared = append(shared, cell{
			X: 20 + i*210, Y: 340, Width: 190, Height: 150,
			SeatCols: 2, SeatRows: 2,
			Room: take(model.RoomTypeShared, i),
		})
	}
	return private, conference, shared
}
