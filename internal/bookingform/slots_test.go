package bookingform

import (
	"testing"
)

func TestSlots(t *testing.T) {
	slots := Slots()

	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}

	expected := []Slot{
		{Value: "09:00-10:00", Label: "9:00 AM - 10:00 AM"},
		{Value: "10:00-11:00", Label: "10:00 AM - 11:00 AM"},
		{Value: "11:00-12:00", Label: "11:00 AM - 12:00 PM"},
		{Value: "12:00-13:00", Label: "12:00 PM - 1:00 PM"},
		{Value: "13:00-14:00", Label: "1:00 PM - 2:00 PM"},
		{Value: "14:00-15:00", Label: "2:00 PM - 3:00 PM"},
		{Value: "15:00-16:00", Label: "3:00 PM - 4:00 PM"},
		{Value: "16:00-17:00", Label: "4:00 PM - 5:00 PM"},
		{Value: "17:00-18:00", Label: "5:00 PM - 6:00 PM"},
	}

	for i, want := range expected {
		if slots[i] != want {
			t.Errorf("slot %d: expected %+v, got %+v", i, want, slots[i])
		}
	}
}

func TestSplitSlot(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "valid morning slot",
			value:     "09:00-10:00",
			wantStart: "09:00",
			wantEnd:   "10:00",
		},
		{
			name:      "valid afternoon slot",
			value:     "13:00-14:00",
			wantStart: "13:00",
			wantEnd:   "14:00",
		},
		{
			name:    "missing separator",
			value:   "09:00",
			wantErr: true,
		},
		{
			name:    "empty value",
			value:   "",
			wantErr: true,
		},
		{
			name:    "non-time start",
			value:   "morning-10:00",
			wantErr: true,
		},
		{
			name:    "non-time end",
			value:   "09:00-noon",
			wantErr: true,
		},
		{
			name:    "inverted interval",
			value:   "10:00-09:00",
			wantErr: true,
		},
		{
			name:    "zero-length interval",
			value:   "09:00-09:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := SplitSlot(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantStart, tt.wantEnd, start, end)
			}
		})
	}
}
