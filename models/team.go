package models

import "time"

type Team struct {
	ID          int       `json:"id"`
	TeamName    string    `json:"team_name"`
	DateCreated time.Time `json:"date_created"`
	Points      int       `json:"points"`
	Win         int       `json:"win"`
	Loss        int       `json:"loss"`
	Draw        int       `json:"draw"`
	LeagueID    *int      `json:"league_id,omitempty"`

	LogoKey *string `json:"-"`
	LogoURL *string `json:"logo_url,omitempty"`
}
