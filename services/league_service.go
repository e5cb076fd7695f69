package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
	"golang.org/x/sync/errgroup"
)

type LeagueService interface {
	Create(ctx context.Context, callerEmail string, input CreateLeagueInput) (*models.League, error)
	GetAll(ctx context.Context) ([]models.League, error)
	GetByID(ctx context.Context, id int) (*models.League, error)
	Standings(ctx context.Context, id int) (*LeagueStandings, error)
	Update(ctx context.Context, callerEmail string, id int, input UpdateLeagueInput) (*models.League, error)
	Delete(ctx context.Context, callerEmail string, id int) error
}

type CreateLeagueInput struct {
	Name      string  `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	SportID   *int    `json:"sport_id"`
}

type UpdateLeagueInput struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	SportID   *int    `json:"sport_id"`
}

type LeagueStandings struct {
	League *models.League `json:"league"`
	Teams  []models.Team  `json:"teams"`
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	guard      *Guard
}

func NewLeagueService(leagueRepo repositories.LeagueRepository, teamRepo repositories.TeamRepository, guard *Guard) LeagueService {
	return &leagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		guard:      guard,
	}
}

func (s *leagueService) Create(ctx context.Context, callerEmail string, input CreateLeagueInput) (*models.League, error) {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}

	var errs ValidationError
	checkName(&errs, "name", input.Name)
	start := parseDate(&errs, "start_date", input.StartDate)
	end := parseDate(&errs, "end_date", input.EndDate)
	if input.StartDate == nil {
		errs.add("start_date", "must not be empty")
	}
	if input.EndDate == nil {
		errs.add("end_date", "must not be empty")
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	if input.SportID == nil {
		return nil, ErrLeagueSportRequired
	}
	if end.Before(*start) {
		return nil, ErrLeagueInvalidDates
	}

	league := &models.League{
		Name:      input.Name,
		StartDate: *start,
		EndDate:   *end,
		SportID:   *input.SportID,
	}

	if err := s.leagueRepo.Create(ctx, league); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLeagueNameConflict):
			return nil, ErrLeagueNameConflict
		case errors.Is(err, repositories.ErrLeagueSportInvalid):
			return nil, ErrLeagueSportInvalid
		default:
			return nil, fmt.Errorf("failed to create league: %w", err)
		}
	}

	return league, nil
}

func (s *leagueService) GetAll(ctx context.Context) ([]models.League, error) {
	leagues, err := s.leagueRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

func (s *leagueService) GetByID(ctx context.Context, id int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %d: %w", id, err)
	}
	return league, nil
}

// Standings fetches the league and its ranked teams concurrently.
func (s *leagueService) Standings(ctx context.Context, id int) (*LeagueStandings, error) {
	var (
		league *models.League
		teams  []models.Team
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = s.leagueRepo.GetByID(gCtx, id)
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return ErrLeagueNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByLeagueID(gCtx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to load standings for league %d: %w", id, err)
	}

	return &LeagueStandings{League: league, Teams: teams}, nil
}

func (s *leagueService) Update(ctx context.Context, callerEmail string, id int, input UpdateLeagueInput) (*models.League, error) {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}

	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %d: %w", id, err)
	}

	if input.Name != nil {
		league.Name = *input.Name
	}
	if input.SportID != nil {
		league.SportID = *input.SportID
	}

	var errs ValidationError
	checkName(&errs, "name", league.Name)
	if start := parseDate(&errs, "start_date", input.StartDate); start != nil {
		league.StartDate = *start
	}
	if end := parseDate(&errs, "end_date", input.EndDate); end != nil {
		league.EndDate = *end
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	if league.EndDate.Before(league.StartDate) {
		return nil, ErrLeagueInvalidDates
	}

	league.Sport = nil
	if err := s.leagueRepo.Update(ctx, league); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLeagueNotFound):
			return nil, ErrLeagueNotFound
		case errors.Is(err, repositories.ErrLeagueNameConflict):
			return nil, ErrLeagueNameConflict
		case errors.Is(err, repositories.ErrLeagueSportInvalid):
			return nil, ErrLeagueSportInvalid
		default:
			return nil, fmt.Errorf("failed to update league %d: %w", id, err)
		}
	}

	return league, nil
}

// Delete removes the league only. The owning sport stays; the league's teams
// are detached, not deleted.
func (s *leagueService) Delete(ctx context.Context, callerEmail string, id int) error {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return err
	}
	if err := s.leagueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return ErrLeagueNotFound
		}
		return fmt.Errorf("failed to delete league %d: %w", id, err)
	}
	return nil
}
