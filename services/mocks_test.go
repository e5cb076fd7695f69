package services

import (
	"context"
	"sort"
	"time"

	"github.com/teamup-app/league-backend/models"
	"github.com/teamup-app/league-backend/repositories"
)

// In-memory repositories backing the service tests. They mimic the store's
// behavior the services rely on: unique-constraint conflicts, not-found on
// zero affected rows, value-copy semantics.

type mockUserRepo struct {
	seq   int
	users map[int]models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]models.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	m.seq++
	user.ID = m.seq
	user.DateCreated = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := u
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	for id, u := range m.users {
		if id != user.ID && u.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListCaptains(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0)
	for _, u := range m.users {
		if u.Captain {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) ListFreeAgents(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0)
	for _, u := range m.users {
		if !u.Captain && u.TeamID == models.UnassignedTeamID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) ListByTeamID(ctx context.Context, teamID int) ([]models.User, error) {
	out := make([]models.User, 0)
	for _, u := range m.users {
		if u.TeamID == teamID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) seed(user models.User) models.User {
	m.seq++
	user.ID = m.seq
	if user.DateCreated.IsZero() {
		user.DateCreated = time.Now()
	}
	m.users[user.ID] = user
	return user
}

type mockTeamRepo struct {
	seq   int
	teams map[int]models.Team
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[int]models.Team)}
}

func (m *mockTeamRepo) Create(ctx context.Context, team *models.Team) error {
	for _, t := range m.teams {
		if t.TeamName == team.TeamName {
			return repositories.ErrTeamNameConflict
		}
	}
	m.seq++
	team.ID = m.seq
	team.DateCreated = time.Now()
	m.teams[team.ID] = *team
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := t
	return &copied, nil
}

func (m *mockTeamRepo) GetAll(ctx context.Context) ([]models.Team, error) {
	out := make([]models.Team, 0, len(m.teams))
	for _, t := range m.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamName < out[j].TeamName })
	return out, nil
}

func (m *mockTeamRepo) ListByLeagueID(ctx context.Context, leagueID int) ([]models.Team, error) {
	out := make([]models.Team, 0)
	for _, t := range m.teams {
		if t.LeagueID != nil && *t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out, nil
}

func (m *mockTeamRepo) Update(ctx context.Context, team *models.Team) error {
	if _, ok := m.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	for id, t := range m.teams {
		if id != team.ID && t.TeamName == team.TeamName {
			return repositories.ErrTeamNameConflict
		}
	}
	m.teams[team.ID] = *team
	return nil
}

func (m *mockTeamRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(m.teams, id)
	return nil
}

func (m *mockTeamRepo) seed(team models.Team) models.Team {
	m.seq++
	team.ID = m.seq
	if team.DateCreated.IsZero() {
		team.DateCreated = time.Now()
	}
	m.teams[team.ID] = team
	return team
}

type mockLeagueRepo struct {
	seq     int
	leagues map[int]models.League
}

func newMockLeagueRepo() *mockLeagueRepo {
	return &mockLeagueRepo{leagues: make(map[int]models.League)}
}

func (m *mockLeagueRepo) Create(ctx context.Context, league *models.League) error {
	for _, l := range m.leagues {
		if l.Name == league.Name && l.SportID == league.SportID {
			return repositories.ErrLeagueNameConflict
		}
	}
	m.seq++
	league.ID = m.seq
	m.leagues[league.ID] = *league
	return nil
}

func (m *mockLeagueRepo) GetByID(ctx context.Context, id int) (*models.League, error) {
	l, ok := m.leagues[id]
	if !ok {
		return nil, repositories.ErrLeagueNotFound
	}
	copied := l
	return &copied, nil
}

func (m *mockLeagueRepo) GetAll(ctx context.Context) ([]models.League, error) {
	out := make([]models.League, 0, len(m.leagues))
	for _, l := range m.leagues {
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLeagueRepo) Update(ctx context.Context, league *models.League) error {
	if _, ok := m.leagues[league.ID]; !ok {
		return repositories.ErrLeagueNotFound
	}
	m.leagues[league.ID] = *league
	return nil
}

func (m *mockLeagueRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.leagues[id]; !ok {
		return repositories.ErrLeagueNotFound
	}
	delete(m.leagues, id)
	return nil
}

func (m *mockLeagueRepo) seed(league models.League) models.League {
	m.seq++
	league.ID = m.seq
	m.leagues[league.ID] = league
	return league
}

type mockSportRepo struct {
	seq    int
	sports map[int]models.Sport

	// When set, deleting a sport removes its leagues, mirroring the
	// store's ON DELETE CASCADE.
	leagues *mockLeagueRepo
}

func newMockSportRepo() *mockSportRepo {
	return &mockSportRepo{sports: make(map[int]models.Sport)}
}

func (m *mockSportRepo) Create(ctx context.Context, sport *models.Sport) error {
	for _, s := range m.sports {
		if s.Name == sport.Name {
			return repositories.ErrSportNameConflict
		}
	}
	m.seq++
	sport.ID = m.seq
	m.sports[sport.ID] = *sport
	return nil
}

func (m *mockSportRepo) GetByID(ctx context.Context, id int) (*models.Sport, error) {
	s, ok := m.sports[id]
	if !ok {
		return nil, repositories.ErrSportNotFound
	}
	copied := s
	return &copied, nil
}

func (m *mockSportRepo) GetAll(ctx context.Context) ([]models.Sport, error) {
	out := make([]models.Sport, 0, len(m.sports))
	for _, s := range m.sports {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSportRepo) Update(ctx context.Context, sport *models.Sport) error {
	if _, ok := m.sports[sport.ID]; !ok {
		return repositories.ErrSportNotFound
	}
	for id, s := range m.sports {
		if id != sport.ID && s.Name == sport.Name {
			return repositories.ErrSportNameConflict
		}
	}
	m.sports[sport.ID] = *sport
	return nil
}

func (m *mockSportRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.sports[id]; !ok {
		return repositories.ErrSportNotFound
	}
	delete(m.sports, id)
	if m.leagues != nil {
		for leagueID, l := range m.leagues.leagues {
			if l.SportID == id {
				delete(m.leagues.leagues, leagueID)
			}
		}
	}
	return nil
}

func (m *mockSportRepo) seed(sport models.Sport) models.Sport {
	m.seq++
	sport.ID = m.seq
	m.sports[sport.ID] = sport
	return sport
}
