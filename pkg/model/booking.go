package model

// Booking mirrors a backend booking record. The only entity whose
// create/destroy lifecycle is initiated by this layer.
type Booking struct {
	ID         int      `json:"id"`
	RoomID     int      `json:"room_id"`
	RoomType   RoomType `json:"room_type"`
	SlotDate   string   `json:"slot_date"`
	SlotStart  string   `json:"slot_start"`
	SlotEnd    string   `json:"slot_end"`
	SeatNumber int      `json:"seat_number,omitempty"`
	TeamID     int      `json:"team_id,omitempty"`
	UserID     int      `json:"user_id,omitempty"`
	IsActive   bool     `json:"is_active"`
}

// BookingRequest is the payload POSTed to the booking-creation endpoint.
// RoomID is required for private and shared bookings, TeamID for
// conference bookings; SeatNumber applies to shared desks only.
type BookingRequest struct {
	RoomType   RoomType `json:"room_type" validate:"required,oneof=private conference shared"`
	SlotDate   string   `json:"slot_date" validate:"required,datetime=2006-01-02"`
	SlotStart  string   `json:"slot_start" validate:"required,datetime=15:04,slot_within_day"`
	SlotEnd    string   `json:"slot_end" validate:"required,datetime=15:04,slot_within_day"`
	RoomID     int      `json:"room_id,omitempty" validate:"required_if=RoomType private,required_if=RoomType shared"`
	TeamID     int      `json:"team_id,omitempty" validate:"required_if=RoomType conference"`
	SeatNumber int      `json:"seat_number,omitempty" validate:"omitempty,min=1"`
}
