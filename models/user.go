package models

import "time"

// UnassignedTeamID is the reserved team every new user starts on.
// Users on this team are free agents until a captain or admin picks them up.
const UnassignedTeamID = 1

const DefaultBio = "Introduce yourself here. E.g. How long you've been playing."

type User struct {
	ID           int        `json:"id"`
	Admin        bool       `json:"admin"`
	Captain      bool       `json:"captain"`
	FirstName    string     `json:"first"`
	LastName     string     `json:"last"`
	DOB          *time.Time `json:"dob,omitempty"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Bio          string     `json:"bio"`
	Available    bool       `json:"available"`
	Phone        *int64     `json:"phone,omitempty"`
	TeamID       int        `json:"team_id"`
	DateCreated  time.Time  `json:"date_created"`

	AvatarKey *string `json:"-"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// PublicView is the reduced user representation returned by login and
// list endpoints. The password hash never leaves the model layer anyway
// (json:"-"), this view additionally drops contact details.
type PublicView struct {
	ID        int    `json:"id"`
	Captain   bool   `json:"captain"`
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Bio       string `json:"bio"`
	Available bool   `json:"available"`
	TeamID    int    `json:"team_id"`
}

func (u *User) Public() PublicView {
	return PublicView{
		ID:        u.ID,
		Captain:   u.Captain,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Available: u.Available,
		TeamID:    u.TeamID,
	}
}
