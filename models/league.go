package models

import "time"

// League is one competition instance of a sport. Its name is unique per
// sport, not globally (the same division letter exists under several sports).
type League struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	SportID   int       `json:"sport_id"`

	Sport *Sport `json:"sport,omitempty"`
}
