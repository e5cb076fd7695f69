package services

import (
	"context"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
)

// Guard implements the authorization predicates. The caller identity is the
// email carried by a verified token; every predicate re-resolves the user row
// from the store, so role changes take effect on the next request without any
// session state. A caller that cannot be resolved is denied, never surfaced
// as a distinct error.
type Guard struct {
	users repositories.UserRepository
}

func NewGuard(users repositories.UserRepository) *Guard {
	return &Guard{users: users}
}

func (g *Guard) resolve(ctx context.Context, email string) *models.User {
	user, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}
	return user
}

// RequireAdmin allows only users with the admin flag set.
func (g *Guard) RequireAdmin(ctx context.Context, email string) error {
	user := g.resolve(ctx, email)
	if user == nil || !user.Admin {
		return ErrUnauthorized
	}
	return nil
}

// RequireCaptainOrAdmin allows team captains and admins.
func (g *Guard) RequireCaptainOrAdmin(ctx context.Context, email string) error {
	user := g.resolve(ctx, email)
	if user == nil || !(user.Admin || user.Captain) {
		return ErrUnauthorized
	}
	return nil
}

// RequireTeamCaptain allows the captain of the given team, or an admin.
// Admins are not pinned to the team they manage.
func (g *Guard) RequireTeamCaptain(ctx context.Context, email string, teamID int) error {
	user := g.resolve(ctx, email)
	if user == nil {
		return ErrUnauthorized
	}
	if user.Admin {
		return nil
	}
	if !user.Captain || user.TeamID != teamID {
		return ErrUnauthorized
	}
	return nil
}

// RequireSelf allows only the user whose row matches the requested id and
// returns that row for the caller to reuse.
func (g *Guard) RequireSelf(ctx context.Context, email string, userID int) (*models.User, error) {
	user := g.resolve(ctx, email)
	if user == nil || user.ID != userID {
		return nil, ErrUnauthorized
	}
	return user, nil
}
