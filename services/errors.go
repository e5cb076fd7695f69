package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
// The conflict and credential messages are part of the API contract,
// clients match on them.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnauthorized       = errors.New("You are not authorised to access this resource")

	ErrUserEmailConflict  = errors.New("Email address already exists")
	ErrTeamNameConflict   = errors.New("Team name already exists")
	ErrSportNameConflict  = errors.New("Sport name already exists")
	ErrLeagueNameConflict = errors.New("League name already exists for this sport")

	ErrUserNotFound   = errors.New("user not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrSportNotFound  = errors.New("sport not found")
	ErrLeagueNotFound = errors.New("league not found")

	ErrTeamReserved = errors.New("The unassigned team cannot be deleted")

	ErrLeagueSportRequired  = errors.New("league sport reference is required")
	ErrLeagueSportInvalid   = errors.New("league sport reference does not exist")
	ErrLeagueInvalidDates   = errors.New("league end date must not be before start date")
	ErrTeamLeagueInvalid    = errors.New("team league reference does not exist")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
)
