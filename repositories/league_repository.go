package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/teamup-app/league-backend/models"
)

var (
	ErrLeagueNotFound     = errors.New("league not found")
	ErrLeagueNameConflict = errors.New("league name conflict for sport")
	ErrLeagueSportInvalid = errors.New("league sport reference invalid")
)

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByID(ctx context.Context, id int) (*models.League, error)
	GetAll(ctx context.Context) ([]models.League, error)
	Update(ctx context.Context, league *models.League) error
	Delete(ctx context.Context, id int) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

func (r *postgresLeagueRepository) Create(ctx context.Context, league *models.League) error {
	query := `
		INSERT INTO leagues (name, start_date, end_date, sport_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		league.Name,
		league.StartDate,
		league.EndDate,
		league.SportID,
	).Scan(&league.ID)

	if err != nil {
		return translateLeagueError(err)
	}
	return nil
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	query := `
		SELECT l.id, l.name, l.start_date, l.end_date, l.sport_id,
		       s.id, s.name, s.max_players
		FROM leagues l
		JOIN sports s ON l.sport_id = s.id
		WHERE l.id = $1`

	league := &models.League{}
	sport := &models.Sport{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&league.ID,
		&league.Name,
		&league.StartDate,
		&league.EndDate,
		&league.SportID,
		&sport.ID,
		&sport.Name,
		&sport.MaxPlayers,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	league.Sport = sport
	return league, nil
}

func (r *postgresLeagueRepository) GetAll(ctx context.Context) ([]models.League, error) {
	query := `SELECT id, name, start_date, end_date, sport_id FROM leagues ORDER BY sport_id ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leagues := make([]models.League, 0)
	for rows.Next() {
		var league models.League
		if scanErr := rows.Scan(
			&league.ID,
			&league.Name,
			&league.StartDate,
			&league.EndDate,
			&league.SportID,
		); scanErr != nil {
			return nil, scanErr
		}
		leagues = append(leagues, league)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *postgresLeagueRepository) Update(ctx context.Context, league *models.League) error {
	query := `
		UPDATE leagues SET
			name = $1,
			start_date = $2,
			end_date = $3,
			sport_id = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		league.Name,
		league.StartDate,
		league.EndDate,
		league.SportID,
		league.ID,
	)
	if err != nil {
		return translateLeagueError(err)
	}

	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) Delete(ctx context.Context, id int) error {
	// Teams keep existing with league_id nulled (ON DELETE SET NULL);
	// the owning sport is untouched.
	query := `DELETE FROM leagues WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func translateLeagueError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "leagues_name_sport_id_key" {
				return ErrLeagueNameConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "leagues_sport_id_fkey" {
				return ErrLeagueSportInvalid
			}
		}
	}
	return err
}
