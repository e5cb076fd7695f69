package models

// Sport is a game type users compete in. Leagues hang off a sport and are
// removed together with it.
type Sport struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	MaxPlayers int    `json:"max_players"`
}
