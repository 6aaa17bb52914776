package integration

import (
	"net/http"
	"strings"
	"testing"

	"deskview/test/integration/testutil"
)

func TestBookingFlow_PrivateRoom(t *testing.T) {
	env := testutil.NewTestEnv()
	env.Backend.SeedRoom(1, "Private 1", "private", 1)
	env.Backend.SeedRoom(2, "Private 2", "private", 1)

	client := env.Setup(t)
	client.Token = testutil.SignToken(t, 7)

	// page carries the resolved user id
	page := client.GET(t, "/")
	testutil.AssertStatusCode(t, page, http.StatusOK)
	if !strings.Contains(string(page.Body), "window.CURRENT_USER_ID = 7;") {
		t.Error("expected page to carry the resolved user id")
	}

	// both rooms offered for the slot
	opts := client.GET(t, "/view/options?room_type=private&date=2026-09-01&slot=09:00-10:00")
	testutil.AssertStatusCode(t, opts, http.StatusOK)
	var options struct {
		Kind    string `json:"kind"`
		Options []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"options"`
	}
	opts.DecodeData(t, &options)
	if options.Kind != "room" || len(options.Options) != 2 {
		t.Fatalf("expected two room options, got %+v", options)
	}

	// book room 1
	created := client.POST(t, "/view/bookings", map[string]string{
		"room_type": "private",
		"date":      "2026-09-01",
		"slot":      "09:00-10:00",
		"room_id":   "1",
	})
	testutil.AssertStatusCode(t, created, http.StatusCreated)
	var outcome struct {
		OK        bool   `json:"ok"`
		Message   string `json:"message"`
		BookingID int    `json:"booking_id"`
	}
	created.DecodeData(t, &outcome)
	if !outcome.OK || outcome.Message != "Booking successful! Booking ID: 1" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}

	// the booked room disappears from availability
	opts = client.GET(t, "/view/options?room_type=private&date=2026-09-01&slot=09:00-10:00")
	opts.DecodeData(t, &options)
	if len(options.Options) != 1 || options.Options[0].Value != "2" {
		t.Fatalf("expected only room 2 offered, got %+v", options)
	}

	// the backend rejects a second booking of the same room verbatim
	rejected := client.POST(t, "/view/bookings", map[string]string{
		"room_type": "private",
		"date":      "2026-09-01",
		"slot":      "09:00-10:00",
		"room_id":   "1",
	})
	testutil.AssertStatusCode(t, rejected, http.StatusOK)
	rejected.DecodeData(t, &outcome)
	if outcome.OK || outcome.Message != "Room already booked" {
		t.Fatalf("expected verbatim rejection, got %+v", outcome)
	}

	// booking list shows one display line
	list := client.GET(t, "/view/bookings")
	var lines []struct {
		ID      int    `json:"id"`
		Display string `json:"display"`
	}
	list.DecodeData(t, &lines)
	if len(lines) != 1 || lines[0].Display != "Room: 1 | Date: 2026-09-01 | 09:00-10:00 | Booking ID: 1" {
		t.Fatalf("unexpected booking list: %+v", lines)
	}

	// cancelling frees the room again
	cancelled := client.DELETE(t, "/view/bookings/1")
	testutil.AssertStatusCode(t, cancelled, http.StatusOK)
	var cancelResult struct {
		Cancelled int `json:"cancelled"`
		Options   *struct {
			Options []struct {
				Value string `json:"value"`
			} `json:"options"`
		} `json:"options"`
	}
	cancelled.DecodeData(t, &cancelResult)
	if cancelResult.Cancelled != 1 {
		t.Errorf("expected booking 1 cancelled, got %d", cancelResult.Cancelled)
	}
	if cancelResult.Options == nil || len(cancelResult.Options.Options) != 2 {
		t.Errorf("expected availability re-check to offer both rooms, got %+v", cancelResult.Options)
	}
	if env.Backend.ActiveBookings() != 0 {
		t.Errorf("expected no active bookings, got %d", env.Backend.ActiveBookings())
	}
}

func TestBookingFlow_ConferenceWithTeam(t *testing.T) {
	env := testutil.NewTestEnv()
	env.Backend.SeedRoom(10, "Conference A", "conference", 15)

	client := env.Setup(t)
	client.Token = testutil.SignToken(t, 7)

	opts := client.GET(t, "/view/options?room_type=conference&date=2026-09-01&slot=11:00-12:00")
	var options struct {
		Kind    string `json:"kind"`
		Options []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"options"`
	}
	opts.DecodeData(t, &options)
	if options.Kind != "team" || len(options.Options) != 1 || options.Options[0].Label != "Platform" {
		t.Fatalf("expected the caller's team offered, got %+v", options)
	}

	created := client.POST(t, "/view/bookings", map[string]string{
		"room_type": "conference",
		"date":      "2026-09-01",
		"slot":      "11:00-12:00",
		"team_id":   options.Options[0].Value,
	})
	testutil.AssertStatusCode(t, created, http.StatusCreated)
}

func TestBookingFlow_BlueprintGatedOnIdentity(t *testing.T) {
	env := testutil.NewTestEnv()
	env.Backend.SeedRoom(1, "Private 1", "private", 1)

	client := env.Setup(t)

	anonymous := client.GET(t, "/view/blueprint")
	testutil.AssertStatusCode(t, anonymous, http.StatusNotFound)

	client.Token = testutil.SignToken(t, 7)
	identified := client.GET(t, "/view/blueprint")
	testutil.AssertStatusCode(t, identified, http.StatusOK)
	if !strings.Contains(string(identified.Body), "<svg") {
		t.Error("expected an svg document")
	}
}

func TestBookingFlow_ContentTypeEnforced(t *testing.T) {
	env := testutil.NewTestEnv()
	client := env.Setup(t)
	client.Token = testutil.SignToken(t, 7)

	req, err := http.NewRequest(http.MethodPost, client.BaseURL+"/view/bookings", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+client.Token)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", resp.StatusCode)
	}
}
