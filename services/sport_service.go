package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
)

type SportService interface {
	Create(ctx context.Context, callerEmail string, input CreateSportInput) (*models.Sport, error)
	GetAll(ctx context.Context) ([]models.Sport, error)
	GetByID(ctx context.Context, id int) (*models.Sport, error)
	Update(ctx context.Context, callerEmail string, id int, input UpdateSportInput) (*models.Sport, error)
	Delete(ctx context.Context, callerEmail string, id int) error
}

type CreateSportInput struct {
	Name       string `json:"name"`
	MaxPlayers int    `json:"max_players"`
}

type UpdateSportInput struct {
	Name       *string `json:"name"`
	MaxPlayers *int    `json:"max_players"`
}

type sportService struct {
	sportRepo repositories.SportRepository
	guard     *Guard
}

func NewSportService(sportRepo repositories.SportRepository, guard *Guard) SportService {
	return &sportService{
		sportRepo: sportRepo,
		guard:     guard,
	}
}

func (s *sportService) Create(ctx context.Context, callerEmail string, input CreateSportInput) (*models.Sport, error) {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}

	var errs ValidationError
	checkName(&errs, "name", input.Name)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	sport := &models.Sport{
		Name:       input.Name,
		MaxPlayers: input.MaxPlayers,
	}

	if err := s.sportRepo.Create(ctx, sport); err != nil {
		if errors.Is(err, repositories.ErrSportNameConflict) {
			return nil, ErrSportNameConflict
		}
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}

	return sport, nil
}

func (s *sportService) GetAll(ctx context.Context) ([]models.Sport, error) {
	sports, err := s.sportRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	return sports, nil
}

func (s *sportService) GetByID(ctx context.Context, id int) (*models.Sport, error) {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}
	return sport, nil
}

func (s *sportService) Update(ctx context.Context, callerEmail string, id int, input UpdateSportInput) (*models.Sport, error) {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}

	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}

	if input.Name != nil {
		sport.Name = *input.Name
	}
	if input.MaxPlayers != nil {
		sport.MaxPlayers = *input.MaxPlayers
	}

	var errs ValidationError
	checkName(&errs, "name", sport.Name)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	if err := s.sportRepo.Update(ctx, sport); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return nil, ErrSportNotFound
		case errors.Is(err, repositories.ErrSportNameConflict):
			return nil, ErrSportNameConflict
		default:
			return nil, fmt.Errorf("failed to update sport %d: %w", id, err)
		}
	}

	return sport, nil
}

// Delete cascades to the sport's leagues at the store level.
func (s *sportService) Delete(ctx context.Context, callerEmail string, id int) error {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return err
	}
	if err := s.sportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return ErrSportNotFound
		}
		return fmt.Errorf("failed to delete sport %d: %w", id, err)
	}
	return nil
}
