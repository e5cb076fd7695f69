package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, input LoginInput) (*models.User, error)
}

type RegisterInput struct {
	FirstName string  `json:"first"`
	LastName  string  `json:"last"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Captain   bool    `json:"captain"`
	DOB       *string `json:"dob"`
	Bio       *string `json:"bio"`
	Available *bool   `json:"available"`
	Phone     *int64  `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Register validates the input, hashes the password and creates the user on
// the unassigned team. A duplicate email is reported as a conflict; the
// insert itself is the arbiter, so concurrent registrations race safely.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var errs ValidationError
	checkName(&errs, "first", input.FirstName)
	checkName(&errs, "last", input.LastName)
	checkEmail(&errs, input.Email)
	checkPassword(&errs, input.Password)
	dob := parseDate(&errs, "dob", input.DOB)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Captain:      input.Captain,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DOB:          dob,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Bio:          models.DefaultBio,
		Available:    true,
		Phone:        input.Phone,
		TeamID:       models.UnassignedTeamID,
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Available != nil {
		user.Available = *input.Available
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, ErrUserEmailConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns the user row. Unknown email and
// wrong password produce the identical error so account existence never leaks.
func (s *authService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	return user, nil
}
