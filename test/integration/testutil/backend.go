package testutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

func (b *Backend) routes() {
	b.mux.HandleFunc("/api/v1/rooms/available/", b.handleAvailable)
	b.mux.HandleFunc("/api/v1/rooms/status/", b.handleStatus)
	b.mux.HandleFunc("/api/v1/bookings/", b.handleBookings)
	b.mux.HandleFunc("/api/v1/teams/my", b.handleMyTeams)
	b.mux.HandleFunc("/api/v1/auth/me", b.handleMe)
}

func (b *Backend) handleAvailable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	roomType := q.Get("room_type")
	slotDate := q.Get("slot_date")
	slotStart := q.Get("slot_start")

	b.mu.Lock()
	defer b.mu.Unlock()

	available := []roomRecord{}
	for _, room := range b.rooms {
		if room.RoomType != roomType {
			continue
		}
		if b.hasActiveBooking(room.ID, slotDate, slotStart) {
			continue
		}
		available = append(available, room)
	}
	writeJSON(w, http.StatusOK, available)
}

func (b *Backend) handleStatus(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.rooms)
}

func (b *Backend) handleBookings(w http.ResponseWriter, r *http.Request) {
	// DELETE carries the booking id as the last path segment
	if r.Method == http.MethodDelete {
		b.handleCancel(w, r)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		active := []bookingRecord{}
		for _, rec := range b.bookings {
			if rec.IsActive {
				active = append(active, rec)
			}
		}
		writeJSON(w, http.StatusOK, active)

	case http.MethodPost:
		var req bookingRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid payload"})
			return
		}
		if b.hasActiveBooking(req.RoomID, req.SlotDate, req.SlotStart) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Room already booked"})
			return
		}
		req.ID = b.nextID
		b.nextID++
		req.IsActive = true
		b.bookings = append(b.bookings, req)
		writeJSON(w, http.StatusCreated, req)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *Backend) handleCancel(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/bookings/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid booking id"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.bookings {
		if b.bookings[i].ID == id && b.bookings[i].IsActive {
			b.bookings[i].IsActive = false
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Booking not found"})
}

func (b *Backend) handleMyTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]any{
		{"id": 1, "name": "Platform", "member_ids": []int{7, 8}},
	})
}

func (b *Backend) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"id": 7, "name": "Dana", "email": "dana@example.com",
	})
}

func (b *Backend) hasActiveBooking(roomID int, slotDate, slotStart string) bool {
	for _, rec := range b.bookings {
		if rec.IsActive && rec.RoomID == roomID && rec.SlotDate == slotDate && rec.SlotStart == slotStart {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
