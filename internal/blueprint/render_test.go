package blueprint

import (
	"fmt"
	"strings"
	"testing"

	"deskview/pkg/model"
)

func fullStatus() []model.Room {
	var rooms []model.Room
	id := 0
	for i := 1; i <= privateRoomCount; i++ {
		id++
		rooms = append(rooms, model.Room{ID: id, Name: fmt.Sprintf("Private %d", i), RoomType: model.RoomTypePrivate, Capacity: 1, IsAvailable: true})
	}
	for i := 1; i <= conferenceRoomCount; i++ {
		id++
		rooms = append(rooms, model.Room{ID: id, Name: fmt.Sprintf("Conference %d", i), RoomType: model.RoomTypeConference, Capacity: conferenceSeatCount, IsAvailable: true})
	}
	for i := 1; i <= sharedDeskCount; i++ {
		id++
		rooms = append(rooms, model.Room{ID: id, Name: fmt.Sprintf("Desk %d", i), RoomType: model.RoomTypeShared, Capacity: sharedDeskSeatCount, IsAvailable: true})
	}
	return rooms
}

func TestRender_FullOfficeShapeCounts(t *testing.T) {
	svg := Render(fullStatus(), nil, "2026-09-01")

	// 15 room rects plus the background rect
	if got := strings.Count(svg, "<rect"); got != 16 {
		t.Errorf("expected 16 rects, got %d", got)
	}
	wantSeats := conferenceRoomCount*conferenceSeatCount + sharedDeskCount*sharedDeskSeatCount
	if got := strings.Count(svg, "<circle"); got != wantSeats {
		t.Errorf("expected %d seat circles, got %d", wantSeats, got)
	}
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected a complete svg document")
	}
}

func TestRender_AvailableRoomsCarryBookingMetadata(t *testing.T) {
	svg := Render(fullStatus(), nil, "2026-09-01")

	if got := strings.Count(svg, `class="bookable"`); got != 15 {
		t.Errorf("expected 15 bookable rooms, got %d", got)
	}
	if !strings.Contains(svg, `data-slot-date="2026-09-01"`) {
		t.Error("expected render date in booking metadata")
	}
	if !strings.Contains(svg, `data-slot-start="09:00"`) || !strings.Contains(svg, `data-slot-end="10:00"`) {
		t.Error("expected fixed morning slot in booking metadata")
	}
	if !strings.Contains(svg, `<title>Private 1 (private) - Available</title>`) {
		t.Error("expected availability tooltip for Private 1")
	}
}

func TestRender_BookedRoomTurnsRedWithoutMetadata(t *testing.T) {
	rooms := fullStatus()
	bookings := []model.Booking{
		{ID: 1, RoomID: rooms[0].ID, RoomType: model.RoomTypePrivate, SlotDate: "2026-09-01", SlotStart: "09:00", SlotEnd: "10:00", IsActive: true},
	}

	svg := Render(rooms, bookings, "2026-09-01")

	if !strings.Contains(svg, `<title>Private 1 (private) - Booked</title>`) {
		t.Error("expected booked tooltip for Private 1")
	}
	if got := strings.Count(svg, `class="bookable"`); got != 14 {
		t.Errorf("expected 14 bookable rooms, got %d", got)
	}
}

func TestRender_BookingsOnOtherDatesIgnored(t *testing.T) {
	rooms := fullStatus()
	bookings := []model.Booking{
		{ID: 1, RoomID: rooms[0].ID, SlotDate: "2026-08-31", IsActive: true},
		{ID: 2, RoomID: rooms[1].ID, SlotDate: "2026-09-01", IsActive: false},
	}

	svg := Render(rooms, bookings, "2026-09-01")

	if got := strings.Count(svg, `class="bookable"`); got != 15 {
		t.Errorf("expected cancelled and other-day bookings ignored, got %d bookable", got)
	}
}

func TestRender_SharedDeskSeatsColoredIndividually(t *testing.T) {
	rooms := fullStatus()
	desk := rooms[privateRoomCount+conferenceRoomCount] // Desk 1
	bookings := []model.Booking{
		{ID: 1, RoomID: desk.ID, RoomType: model.RoomTypeShared, SlotDate: "2026-09-01", SeatNumber: 2, IsActive: true},
	}

	svg := Render(rooms, bookings, "2026-09-01")

	// one seat of three shared desks booked: desk itself stays bookable
	if !strings.Contains(svg, `<title>Desk 1 (shared) - Available</title>`) {
		t.Error("expected partially occupied desk to stay available")
	}
	if got := strings.Count(svg, colorBooked); got != 1 {
		t.Errorf("expected exactly one booked shape, got %d", got)
	}
}

func TestRender_FullyBookedSharedDesk(t *testing.T) {
	rooms := fullStatus()
	desk := rooms[privateRoomCount+conferenceRoomCount]
	var bookings []model.Booking
	for seat := 1; seat <= sharedDeskSeatCount; seat++ {
		bookings = append(bookings, model.Booking{
			ID: seat, RoomID: desk.ID, RoomType: model.RoomTypeShared,
			SlotDate: "2026-09-01", SeatNumber: seat, IsActive: true,
		})
	}

	svg := Render(rooms, bookings, "2026-09-01")

	if !strings.Contains(svg, `<title>Desk 1 (shared) - Booked</title>`) {
		t.Error("expected fully occupied desk to render booked")
	}
}

func TestRender_MissingStatusRendersUnassignedSlots(t *testing.T) {
	svg := Render(nil, nil, "2026-09-01")

	if got := strings.Count(svg, "<title>Unassigned</title>"); got != 15 {
		t.Errorf("expected 15 unassigned slots, got %d", got)
	}
	if strings.Count(svg, `class="bookable"`) != 0 {
		t.Error("expected no bookable rooms without status data")
	}
}

func TestRender_RoomNamesEscaped(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Name: `War <Room> & "Peace"`, RoomType: model.RoomTypePrivate, IsAvailable: true},
	}

	svg := Render(rooms, nil, "2026-09-01")

	if strings.Contains(svg, "<Room>") {
		t.Error("expected room name markup escaped")
	}
	if !strings.Contains(svg, "War &lt;Room&gt; &amp; &#34;Peace&#34;") {
		t.Error("expected escaped room name in output")
	}
}
