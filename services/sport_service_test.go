package services

import (
	"context"
	"errors"
	"testing"

	"github.com/teamup-app/league-backend/models"
)

func newSportFixture() (*mockSportRepo, *mockUserRepo, SportService) {
	sportRepo := newMockSportRepo()
	userRepo := newMockUserRepo()
	svc := NewSportService(sportRepo, NewGuard(userRepo))
	return sportRepo, userRepo, svc
}

func TestSportAdminGates(t *testing.T) {
	sportRepo, userRepo, svc := newSportFixture()
	userRepo.seed(models.User{Email: "admin@x.com", Admin: true})
	userRepo.seed(models.User{Email: "cap@x.com", Captain: true})
	sport := sportRepo.seed(models.Sport{Name: "Netball", MaxPlayers: 7})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "cap@x.com", CreateSportInput{Name: "Futsal", MaxPlayers: 5}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("captain created sport: %v", err)
	}
	if _, err := svc.Update(ctx, "cap@x.com", sport.ID, UpdateSportInput{MaxPlayers: intPtr(8)}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("captain updated sport: %v", err)
	}
	if err := svc.Delete(ctx, "cap@x.com", sport.ID); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("captain deleted sport: %v", err)
	}

	created, err := svc.Create(ctx, "admin@x.com", CreateSportInput{Name: "Futsal", MaxPlayers: 5})
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if created.MaxPlayers != 5 {
		t.Errorf("max players = %d", created.MaxPlayers)
	}
}

func TestSportNameConflict(t *testing.T) {
	sportRepo, userRepo, svc := newSportFixture()
	userRepo.seed(models.User{Email: "admin@x.com", Admin: true})
	sportRepo.seed(models.Sport{Name: "Netball", MaxPlayers: 7})

	_, err := svc.Create(context.Background(), "admin@x.com", CreateSportInput{Name: "Netball", MaxPlayers: 7})
	if !errors.Is(err, ErrSportNameConflict) {
		t.Fatalf("duplicate sport error = %v", err)
	}
}

func TestSportUpdatePartial(t *testing.T) {
	sportRepo, userRepo, svc := newSportFixture()
	userRepo.seed(models.User{Email: "admin@x.com", Admin: true})
	sport := sportRepo.seed(models.Sport{Name: "Netball", MaxPlayers: 7})

	updated, err := svc.Update(context.Background(), "admin@x.com", sport.ID, UpdateSportInput{MaxPlayers: intPtr(9)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Netball" || updated.MaxPlayers != 9 {
		t.Errorf("merged sport = %+v", updated)
	}
}

func TestDeleteSportCascadesToLeagues(t *testing.T) {
	sportRepo := newMockSportRepo()
	leagueRepo := newMockLeagueRepo()
	teamRepo := newMockTeamRepo()
	userRepo := newMockUserRepo()
	sportRepo.leagues = leagueRepo
	guard := NewGuard(userRepo)
	sportSvc := NewSportService(sportRepo, guard)
	leagueSvc := NewLeagueService(leagueRepo, teamRepo, guard)

	userRepo.seed(models.User{Email: "admin@x.com", Admin: true})
	sport := sportRepo.seed(models.Sport{Name: "Netball", MaxPlayers: 7})
	other := sportRepo.seed(models.Sport{Name: "Futsal", MaxPlayers: 5})
	owned := leagueRepo.seed(models.League{Name: "Division A", SportID: sport.ID})
	kept := leagueRepo.seed(models.League{Name: "Division A", SportID: other.ID})
	ctx := context.Background()

	if err := sportSvc.Delete(ctx, "admin@x.com", sport.ID); err != nil {
		t.Fatalf("delete sport failed: %v", err)
	}
	if _, err := leagueSvc.GetByID(ctx, owned.ID); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("owned league survived sport deletion: %v", err)
	}
	if _, err := leagueSvc.GetByID(ctx, kept.ID); err != nil {
		t.Errorf("unrelated league removed: %v", err)
	}

	// The converse: deleting a league leaves its sport in place.
	if err := leagueSvc.Delete(ctx, "admin@x.com", kept.ID); err != nil {
		t.Fatalf("delete league failed: %v", err)
	}
	if _, err := sportSvc.GetByID(ctx, other.ID); err != nil {
		t.Errorf("sport removed with its league: %v", err)
	}
}

func TestSportGetByIDNotFound(t *testing.T) {
	_, _, svc := newSportFixture()
	if _, err := svc.GetByID(context.Background(), 42); !errors.Is(err, ErrSportNotFound) {
		t.Errorf("missing sport error = %v", err)
	}
}
