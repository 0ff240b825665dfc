package models

import "time"

// Location is where a challenge was posted in the chat front-end.
type Location struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// Challenge is an open PvP invitation. It lives only in memory and is
// consumed exactly once, by acceptance or by expiry.
type Challenge struct {
	ID                  string    `json:"id"`
	ChallengerID        string    `json:"challenger_id"`
	ChallengerName      string    `json:"challenger_name"`
	ChallengerVehicleID int       `json:"challenger_vehicle_id"` // snapshot at creation
	Location            Location  `json:"location"`
	CreatedAt           time.Time `json:"created_at"`
}

// ExpiresAt returns the moment the challenge stops being acceptable.
func (c Challenge) ExpiresAt(ttl time.Duration) time.Time {
	return c.CreatedAt.Add(ttl)
}
