package blueprint

import (
	"fmt"
	"html"
	"strings"

	"deskview/pkg/model"
)

const (
	colorAvailable = "#2e8b57"
	colorBooked    = "#c0392b"
	colorUnknown   = "#95a5a6"
)

// Render draws the full office schematic for one date as an SVG
// document. It is a pure function of the room-status list and the
// day's bookings; every call is a complete redraw.
func Render(rooms []model.Room, bookings []model.Booking, date string) string {
	occ := buildOccupancy(bookings, date)
	private, conference, shared := layoutCells(rooms)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		canvasWidth, canvasHeight, canvasWidth, canvasHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="#f4f4f4"/>`)

	for _, c := range private {
		renderRoom(&b, c, occ, date)
	}
	for _, c := range conference {
		renderRoomWithSeats(&b, c, occ, date)
	}
	for _, c := range shared {
		renderRoomWithSeats(&b, c, occ, date)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func renderRoom(b *strings.Builder, c cell, occ *occupancy, date string) {
	writeRoomRect(b, c, occ, date)
	writeRoomLabel(b, c)
}

func renderRoomWithSeats(b *strings.Builder, c cell, occ *occupancy, date string) {
	writeRoomRect(b, c, occ, date)
	writeRoomLabel(b, c)

	if c.Room == nil {
		return
	}
	roomBooked := occ.roomBooked(c.Room)

	seatGapX := c.Width / (c.SeatCols + 1)
	seatGapY := (c.Height - 24) / (c.SeatRows + 1)
	seat := 0
	for row := 0; row < c.SeatRows; row++ {
		for col := 0; col < c.SeatCols; col++ {
			seat++
			cx := c.X + (col+1)*seatGapX
			cy := c.Y + 24 + (row+1)*seatGapY

			color := colorAvailable
			// conference seats follow the room; shared seats are individual
			if roomBooked || (c.Room.RoomType == model.RoomTypeShared && occ.seatBooked(c.Room.ID, seat)) {
				color = colorBooked
			}
			fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="9" fill="%s"><title>%s seat %d</title></circle>`,
				cx, cy, color, html.EscapeString(c.Room.Name), seat)
		}
	}
}

func writeRoomRect(b *strings.Builder, c cell, occ *occupancy, date string) {
	if c.Room == nil {
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#333"><title>Unassigned</title></rect>`,
			c.X, c.Y, c.Width, c.Height, colorUnknown)
		return
	}

	name := html.EscapeString(c.Room.Name)
	if occ.roomBooked(c.Room) {
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#333"><title>%s (%s) - Booked</title></rect>`,
			c.X, c.Y, c.Width, c.Height, colorBooked, name, c.Room.RoomType)
		return
	}

	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#333" class="bookable" `+
		`data-room-id="%d" data-room-type="%s" data-slot-date="%s" data-slot-start="%s" data-slot-end="%s">`+
		`<title>%s (%s) - Available</title></rect>`,
		c.X, c.Y, c.Width, c.Height, colorAvailable,
		c.Room.ID, c.Room.RoomType, date, bookSlotStart, bookSlotEnd,
		name, c.Room.RoomType)
}

func writeRoomLabel(b *strings.Builder, c cell) {
	label := "-"
	if c.Room != nil {
		label = html.EscapeString(c.Room.Name)
	}
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="13" fill="#fff">%s</text>`,
		c.X+8, c.Y+18, label)
}
