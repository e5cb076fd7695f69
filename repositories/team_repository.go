package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/teamup-app/league-backend/models"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameConflict  = errors.New("team name conflict")
	ErrTeamLeagueInvalid = errors.New("team league reference invalid")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	ListByLeagueID(ctx context.Context, leagueID int) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, team_name, points, win, loss, draw, league_id, logo_key, date_created`

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (team_name, points, win, loss, draw, league_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_created`

	err := r.db.QueryRowContext(ctx, query,
		team.TeamName,
		team.Points,
		team.Win,
		team.Loss,
		team.Draw,
		team.LeagueID,
	).Scan(&team.ID, &team.DateCreated)

	if err != nil {
		return translateTeamError(err)
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.TeamName,
		&team.Points,
		&team.Win,
		&team.Loss,
		&team.Draw,
		&team.LeagueID,
		&team.LogoKey,
		&team.DateCreated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// GetAll returns every team, sorted by name. The fixed sort is part of the
// API contract for the team list.
func (r *postgresTeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY team_name ASC`
	return r.listTeams(ctx, query)
}

// ListByLeagueID returns a league's teams ordered for the standings table.
func (r *postgresTeamRepository) ListByLeagueID(ctx context.Context, leagueID int) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE league_id = $1 ORDER BY points DESC, win DESC, team_name ASC`
	return r.listTeams(ctx, query, leagueID)
}

func (r *postgresTeamRepository) listTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := rows.Scan(
			&team.ID,
			&team.TeamName,
			&team.Points,
			&team.Win,
			&team.Loss,
			&team.Draw,
			&team.LeagueID,
			&team.LogoKey,
			&team.DateCreated,
		); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams SET
			team_name = $1,
			points = $2,
			win = $3,
			loss = $4,
			draw = $5,
			league_id = $6,
			logo_key = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		team.TeamName,
		team.Points,
		team.Win,
		team.Loss,
		team.Draw,
		team.LeagueID,
		team.LogoKey,
		team.ID,
	)
	if err != nil {
		return translateTeamError(err)
	}

	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	// Members fall back to the unassigned team via ON DELETE SET DEFAULT.
	query := `DELETE FROM teams WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func translateTeamError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "teams_team_name_key" {
				return ErrTeamNameConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "teams_league_id_fkey" {
				return ErrTeamLeagueInvalid
			}
		}
	}
	return err
}
