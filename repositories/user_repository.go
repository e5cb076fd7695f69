package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/teamup-app/league-backend/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
	ErrUserTeamInvalid   = errors.New("user team reference invalid")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
	ListCaptains(ctx context.Context) ([]models.User, error)
	ListFreeAgents(ctx context.Context) ([]models.User, error)
	ListByTeamID(ctx context.Context, teamID int) ([]models.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userColumns = `id, admin, captain, first_name, last_name, dob, email, password_hash, bio, available, phone, team_id, avatar_key, date_created`

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (admin, captain, first_name, last_name, dob, email, password_hash, bio, available, phone, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, date_created`

	err := r.db.QueryRowContext(ctx, query,
		user.Admin,
		user.Captain,
		user.FirstName,
		user.LastName,
		user.DOB,
		user.Email,
		user.PasswordHash,
		user.Bio,
		user.Available,
		user.Phone,
		user.TeamID,
	).Scan(&user.ID, &user.DateCreated)

	if err != nil {
		return translateUserError(err)
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(ctx, query, email)
}

func (r *postgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			admin = $1,
			captain = $2,
			first_name = $3,
			last_name = $4,
			dob = $5,
			email = $6,
			password_hash = $7,
			bio = $8,
			available = $9,
			phone = $10,
			team_id = $11,
			avatar_key = $12
		WHERE id = $13`

	result, err := r.db.ExecContext(ctx, query,
		user.Admin,
		user.Captain,
		user.FirstName,
		user.LastName,
		user.DOB,
		user.Email,
		user.PasswordHash,
		user.Bio,
		user.Available,
		user.Phone,
		user.TeamID,
		user.AvatarKey,
		user.ID,
	)
	if err != nil {
		return translateUserError(err)
	}

	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) ListCaptains(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE captain ORDER BY last_name ASC`
	return r.listUsers(ctx, query)
}

// ListFreeAgents returns non-captain users still on the reserved unassigned team.
func (r *postgresUserRepository) ListFreeAgents(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE NOT captain AND team_id = $1 ORDER BY last_name ASC`
	return r.listUsers(ctx, query, models.UnassignedTeamID)
}

func (r *postgresUserRepository) ListByTeamID(ctx context.Context, teamID int) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE team_id = $1 ORDER BY last_name ASC`
	return r.listUsers(ctx, query, teamID)
}

func (r *postgresUserRepository) listUsers(ctx context.Context, query string, args ...interface{}) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(
			&user.ID,
			&user.Admin,
			&user.Captain,
			&user.FirstName,
			&user.LastName,
			&user.DOB,
			&user.Email,
			&user.PasswordHash,
			&user.Bio,
			&user.Available,
			&user.Phone,
			&user.TeamID,
			&user.AvatarKey,
			&user.DateCreated,
		); scanErr != nil {
			return nil, scanErr
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Admin,
		&user.Captain,
		&user.FirstName,
		&user.LastName,
		&user.DOB,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.Available,
		&user.Phone,
		&user.TeamID,
		&user.AvatarKey,
		&user.DateCreated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func translateUserError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "users_email_key" {
				return ErrUserEmailConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "users_team_id_fkey" {
				return ErrUserTeamInvalid
			}
		}
	}
	return err
}
