package bookingform

import (
	"testing"

	"deskview/pkg/model"
)

func TestForm_Apply_RefreshTriggers(t *testing.T) {
	tests := []struct {
		name        string
		field       Field
		value       string
		wantRefresh bool
		wantErr     bool
	}{
		{name: "room type change triggers refresh", field: FieldRoomType, value: "private", wantRefresh: true},
		{name: "date change triggers refresh", field: FieldDate, value: "2026-09-01", wantRefresh: true},
		{name: "slot change triggers refresh", field: FieldSlot, value: "09:00-10:00", wantRefresh: true},
		{name: "room selection does not trigger refresh", field: FieldRoomID, value: "3"},
		{name: "team selection does not trigger refresh", field: FieldTeamID, value: "2"},
		{name: "seat entry does not trigger refresh", field: FieldSeatNumber, value: "1"},
		{name: "unknown field rejected", field: Field("color"), value: "red", wantErr: true},
		{name: "unknown room type rejected", field: FieldRoomType, value: "lounge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			refresh, err := f.Apply(tt.field, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if refresh != tt.wantRefresh {
				t.Errorf("expected refresh=%v, got %v", tt.wantRefresh, refresh)
			}
		})
	}
}

func TestForm_Apply_ClearsSecondarySelections(t *testing.T) {
	f := NewForm()
	mustApply(t, f, FieldRoomType, "shared")
	mustApply(t, f, FieldSlot, "10:00-11:00")
	mustApply(t, f, FieldRoomID, "7")
	mustApply(t, f, FieldSeatNumber, "2")

	mustApply(t, f, FieldDate, "2026-09-02")

	if f.RoomID != "" || f.TeamID != "" || f.SeatNumber != "" {
		t.Errorf("expected secondary selections cleared, got room=%q team=%q seat=%q",
			f.RoomID, f.TeamID, f.SeatNumber)
	}
	if f.Date != "2026-09-02" {
		t.Errorf("expected date preserved, got %q", f.Date)
	}
}

func TestForm_Ready(t *testing.T) {
	tests := []struct {
		name  string
		setup map[Field]string
		want  bool
	}{
		{
			name:  "fresh form not ready",
			setup: map[Field]string{},
			want:  false,
		},
		{
			name: "private ready with room",
			setup: map[Field]string{
				FieldRoomType: "private",
				FieldSlot:     "09:00-10:00",
				FieldRoomID:   "1",
			},
			want: true,
		},
		{
			name: "private not ready without room",
			setup: map[Field]string{
				FieldRoomType: "private",
				FieldSlot:     "09:00-10:00",
			},
			want: false,
		},
		{
			name: "conference ready with team",
			setup: map[Field]string{
				FieldRoomType: "conference",
				FieldSlot:     "11:00-12:00",
				FieldTeamID:   "4",
			},
			want: true,
		},
		{
			name: "conference not ready with room instead of team",
			setup: map[Field]string{
				FieldRoomType: "conference",
				FieldSlot:     "11:00-12:00",
				FieldRoomID:   "4",
			},
			want: false,
		},
		{
			name: "shared ready with room and no seat",
			setup: map[Field]string{
				FieldRoomType: "shared",
				FieldSlot:     "14:00-15:00",
				FieldRoomID:   "9",
			},
			want: true,
		},
		{
			name: "not ready without slot",
			setup: map[Field]string{
				FieldRoomType: "private",
				FieldRoomID:   "1",
			},
			want: false,
		},
		{
			name: "not ready with cleared date",
			setup: map[Field]string{
				FieldRoomType: "private",
				FieldSlot:     "09:00-10:00",
				FieldDate:     "",
				FieldRoomID:   "1",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			// room type first so later selections are not cleared
			if v, ok := tt.setup[FieldRoomType]; ok {
				mustApply(t, f, FieldRoomType, v)
			}
			if v, ok := tt.setup[FieldDate]; ok {
				mustApply(t, f, FieldDate, v)
			}
			if v, ok := tt.setup[FieldSlot]; ok {
				mustApply(t, f, FieldSlot, v)
			}
			for _, field := range []Field{FieldRoomID, FieldTeamID, FieldSeatNumber} {
				if v, ok := tt.setup[field]; ok {
					mustApply(t, f, field, v)
				}
			}

			if got := f.Ready(); got != tt.want {
				t.Errorf("expected ready=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestForm_BuildRequest(t *testing.T) {
	t.Run("shared desk with seat", func(t *testing.T) {
		f := NewForm()
		mustApply(t, f, FieldRoomType, "shared")
		mustApply(t, f, FieldDate, "2026-09-01")
		mustApply(t, f, FieldSlot, "09:00-10:00")
		mustApply(t, f, FieldRoomID, "12")
		mustApply(t, f, FieldSeatNumber, "3")

		req, err := f.BuildRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := &model.BookingRequest{
			RoomType:   model.RoomTypeShared,
			SlotDate:   "2026-09-01",
			SlotStart:  "09:00",
			SlotEnd:    "10:00",
			RoomID:     12,
			SeatNumber: 3,
		}
		if *req != *want {
			t.Errorf("expected %+v, got %+v", want, req)
		}
	})

	t.Run("conference carries team not room", func(t *testing.T) {
		f := NewForm()
		mustApply(t, f, FieldRoomType, "conference")
		mustApply(t, f, FieldDate, "2026-09-01")
		mustApply(t, f, FieldSlot, "13:00-14:00")
		mustApply(t, f, FieldTeamID, "5")

		req, err := f.BuildRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.TeamID != 5 || req.RoomID != 0 {
			t.Errorf("expected team_id=5 room_id=0, got team_id=%d room_id=%d", req.TeamID, req.RoomID)
		}
		if req.SlotStart != "13:00" || req.SlotEnd != "14:00" {
			t.Errorf("expected split slot 13:00/14:00, got %s/%s", req.SlotStart, req.SlotEnd)
		}
	})

	t.Run("incomplete form rejected", func(t *testing.T) {
		f := NewForm()
		mustApply(t, f, FieldRoomType, "private")

		if _, err := f.BuildRequest(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("non-numeric room id rejected", func(t *testing.T) {
		f := NewForm()
		mustApply(t, f, FieldRoomType, "private")
		mustApply(t, f, FieldSlot, "09:00-10:00")
		mustApply(t, f, FieldRoomID, "abc")

		if _, err := f.BuildRequest(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func mustApply(t *testing.T, f *Form, field Field, value string) {
	t.Helper()
	if _, err := f.Apply(field, value); err != nil {
		t.Fatalf("apply %s=%q: %v", field, value, err)
	}
}
