package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
	"github.com/teamup-app/league-backend/storage"
)

// LeagueFeed receives standings updates for connected spectators. The live
// websocket hub implements it; tests plug in a recorder.
type LeagueFeed interface {
	PublishStandings(leagueID int, teams []models.Team)
}

type TeamService interface {
	Create(ctx context.Context, callerEmail string, input CreateTeamInput) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	Members(ctx context.Context, id int) ([]models.User, error)
	Update(ctx context.Context, callerEmail string, id int, input UpdateTeamInput) (*models.Team, error)
	Delete(ctx context.Context, callerEmail string, id int) error
	UploadLogo(ctx context.Context, callerEmail string, id int, contentType string, body io.Reader) (*models.Team, error)
}

type CreateTeamInput struct {
	TeamName string `json:"team_name"`
	LeagueID *int   `json:"league_id"`
}

// UpdateTeamInput is a partial update, nil fields keep the stored value.
type UpdateTeamInput struct {
	TeamName *string `json:"team_name"`
	Points   *int    `json:"points"`
	Win      *int    `json:"win"`
	Loss     *int    `json:"loss"`
	Draw     *int    `json:"draw"`
	LeagueID *int    `json:"league_id"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
	guard    *Guard
	uploader storage.FileUploader
	feed     LeagueFeed
}

func NewTeamService(teamRepo repositories.TeamRepository, userRepo repositories.UserRepository, guard *Guard, uploader storage.FileUploader, feed LeagueFeed) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		guard:    guard,
		uploader: uploader,
		feed:     feed,
	}
}

func (s *teamService) Create(ctx context.Context, callerEmail string, input CreateTeamInput) (*models.Team, error) {
	if err := s.guard.RequireCaptainOrAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}

	var errs ValidationError
	checkTeamName(&errs, input.TeamName)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	team := &models.Team{
		TeamName: input.TeamName,
		LeagueID: input.LeagueID,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrTeamLeagueInvalid):
			return nil, ErrTeamLeagueInvalid
		default:
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
	}

	return team, nil
}

func (s *teamService) GetAll(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for i := range teams {
		s.fillLogoURL(&teams[i])
	}
	return teams, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	s.fillLogoURL(team)
	return team, nil
}

func (s *teamService) Members(ctx context.Context, id int) ([]models.User, error) {
	if _, err := s.teamRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	members, err := s.userRepo.ListByTeamID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of team %d: %w", id, err)
	}
	return members, nil
}

// Update merges the partial input over the stored row, re-validates and
// commits. A stats change is pushed to the team's league feed.
func (s *teamService) Update(ctx context.Context, callerEmail string, id int, input UpdateTeamInput) (*models.Team, error) {
	if err := s.guard.RequireTeamCaptain(ctx, callerEmail, id); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	statsChanged := input.Points != nil || input.Win != nil || input.Loss != nil || input.Draw != nil

	if input.TeamName != nil {
		team.TeamName = *input.TeamName
	}
	if input.Points != nil {
		team.Points = *input.Points
	}
	if input.Win != nil {
		team.Win = *input.Win
	}
	if input.Loss != nil {
		team.Loss = *input.Loss
	}
	if input.Draw != nil {
		team.Draw = *input.Draw
	}
	if input.LeagueID != nil {
		team.LeagueID = input.LeagueID
	}

	var errs ValidationError
	checkTeamName(&errs, team.TeamName)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrTeamLeagueInvalid):
			return nil, ErrTeamLeagueInvalid
		default:
			return nil, fmt.Errorf("failed to update team %d: %w", id, err)
		}
	}

	if statsChanged && team.LeagueID != nil && s.feed != nil {
		if standings, listErr := s.teamRepo.ListByLeagueID(ctx, *team.LeagueID); listErr == nil {
			s.feed.PublishStandings(*team.LeagueID, standings)
		}
	}

	s.fillLogoURL(team)
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, callerEmail string, id int) error {
	if err := s.guard.RequireAdmin(ctx, callerEmail); err != nil {
		return err
	}
	// Deleted teams re-point their members at the unassigned roster, so
	// that roster itself must stay.
	if id == models.UnassignedTeamID {
		return ErrTeamReserved
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return nil
}

func (s *teamService) UploadLogo(ctx context.Context, callerEmail string, id int, contentType string, body io.Reader) (*models.Team, error) {
	if err := s.guard.RequireTeamCaptain(ctx, callerEmail, id); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	ext, ok := imageExtension(contentType)
	if !ok {
		return nil, ErrUnsupportedImageType
	}

	key := fmt.Sprintf("logos/team_%d%s", id, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}

	oldKey := team.LogoKey
	team.LogoKey = &result.Key
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to record logo key: %w", err)
	}
	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	s.fillLogoURL(team)
	return team, nil
}

func (s *teamService) fillLogoURL(team *models.Team) {
	if team.LogoKey == nil || s.uploader == nil {
		return
	}
	url := s.uploader.GetPublicURL(*team.LogoKey)
	if url != "" {
		team.LogoURL = &url
	}
}
