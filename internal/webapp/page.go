package webapp

import (
	"bytes"
	"html/template"

	"deskview/internal/bookingform"
)

// PageData feeds the booking page template. CurrentUserID is injected
// as a page global before any script runs; a zero value disables the
// blueprint view.
type PageData struct {
	CurrentUserID int
	Today         string
	Slots         []bookingform.Slot
}

var bookingPageTmpl = template.Must(template.New("booking").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Office Booking</title>
    <style>
      body { font-family: system-ui, sans-serif; margin: 0; background: #f4f6f8; color: #1f2933; }
      .wrap { max-width: 760px; margin: 24px auto; padding: 0 16px; }
      .card { background: #fff; border: 1px solid #d9dee3; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
      label { display: block; margin: 10px 0 4px; font-weight: 600; }
      select, input { width: 100%; padding: 6px 8px; border: 1px solid #c4ccd4; border-radius: 4px; }
      button { margin-top: 12px; padding: 8px 14px; border: 0; border-radius: 4px; background: #2e8b57; color: #fff; cursor: pointer; }
      button:disabled { background: #9aa5b1; cursor: not-allowed; }
      .notice { color: #c0392b; margin-top: 8px; }
      .msg { margin-top: 12px; }
      .drop { cursor: pointer; font-weight: 600; }
      .list { display: none; margin-top: 8px; }
      .list.show { display: block; }
    </style>
  </head>
  <body>
    <script>window.CURRENT_USER_ID = {{.CurrentUserID}};</script>
    <div class="wrap">
      <div class="card">
        <h1>Book a room</h1>
        <form id="bookingForm">
          <label for="roomType">Room type</label>
          <select id="roomType" name="room_type">
            <option value="">Select...</option>
            <option value="private">Private room</option>
            <option value="conference">Conference room</option>
            <option value="shared">Shared desk</option>
          </select>

          <label for="date">Date</label>
          <input type="date" id="date" name="date" value="{{.Today}}" />

          <label for="slot">Time slot</label>
          <select id="slot" name="slot">
            <option value="">Select...</option>
            {{- range .Slots}}
            <option value="{{.Value}}">{{.Label}}</option>
            {{- end}}
          </select>

          <div id="secondary"></div>
          <div id="notice" class="notice"></div>

          <button type="submit" id="bookBtn" disabled>Book</button>
        </form>
        <div id="bookingMsg" class="msg"></div>
      </div>

      <div class="card">
        <div id="myBookingsDropdown" class="drop">My Bookings</div>
        <div id="myBookingsList" class="list"></div>
      </div>

      <div class="card">
        <div id="myTeamsDropdown" class="drop">My Teams</div>
        <div id="myTeamsList" class="list"></div>
      </div>

      <div class="card">
        <div id="createTeamDropdown" class="drop">Create Team</div>
        <div id="createTeamList" class="list">
          <input type="text" id="teamSearchInput" placeholder="Search users..." />
          <div id="teamSearchResults"></div>
          <button type="button" id="createTeamBtn">Create</button>
        </div>
      </div>

      <div class="card">
        <div id="blueprintDropdown" class="drop">Office Blueprint</div>
        <div id="blueprintView" class="list"></div>
      </div>
    </div>
    <script src="/static/app.js"></script>
  </body>
</html>
`))

func renderBookingPage(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := bookingPageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
