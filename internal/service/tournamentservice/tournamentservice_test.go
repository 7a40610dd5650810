package tournamentservice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/ultimateteam/internal/domain"
	tournamentrepo "github.com/mpalomar/ultimateteam/internal/repo/tournament-repo"
	"github.com/mpalomar/ultimateteam/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)
	return New(tournamentrepo.New(st))
}

func date(value string) time.Time {
	d, err := time.Parse(store.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAddTournament(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	tournament, err := s.AddTournament(ctx, "Spring Open", "Valencia", date("2025-06-15"), domain.SurfaceGrass, date("2025-06-01"))
	require.NoError(t, err)
	assert.Positive(t, tournament.ID)
	assert.Equal(t, "Spring Open", tournament.Name)
	assert.False(t, tournament.Created.IsZero())

	// Names are not unique; a second tournament with the same name is fine.
	second, err := s.AddTournament(ctx, "Spring Open", "Alicante", date("2025-07-15"), domain.SurfaceBeach, date("2025-07-01"))
	require.NoError(t, err)
	assert.NotEqual(t, tournament.ID, second.ID)
}

func TestAddTournamentInvalidSurface(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.AddTournament(ctx, "Clay Cup", "Madrid", date("2025-06-15"), domain.Surface("clay"), date("2025-06-01"))
	assert.ErrorIs(t, err, ErrInvalidSurface)
}

func TestListTournaments(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	tournaments, err := s.ListTournaments(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, tournaments)

	_, err = s.AddTournament(ctx, "Spring Open", "Valencia", date("2025-06-15"), domain.SurfaceGrass, date("2025-06-01"))
	require.NoError(t, err)

	tournaments, err = s.ListTournaments(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, tournaments, 1)
}

func TestUpdateTournament(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	tournament, err := s.AddTournament(ctx, "Spring Open", "Valencia", date("2025-06-15"), domain.SurfaceGrass, date("2025-06-01"))
	require.NoError(t, err)

	location := "Alicante"
	updated, err := s.UpdateTournament(ctx, tournament.ID, domain.TournamentUpdate{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Alicante", updated.Location)
	assert.Equal(t, "Spring Open", updated.Name)

	// Empty updates return current state without writing.
	same, err := s.UpdateTournament(ctx, tournament.ID, domain.TournamentUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Alicante", same.Location)
}

func TestUpdateTournamentErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	location := "Alicante"
	_, err := s.UpdateTournament(ctx, 999, domain.TournamentUpdate{Location: &location})
	assert.ErrorIs(t, err, ErrTournamentNotFound)

	tournament, err := s.AddTournament(ctx, "Spring Open", "Valencia", date("2025-06-15"), domain.SurfaceGrass, date("2025-06-01"))
	require.NoError(t, err)

	bad := domain.Surface("clay")
	_, err = s.UpdateTournament(ctx, tournament.ID, domain.TournamentUpdate{Surface: &bad})
	assert.ErrorIs(t, err, ErrInvalidSurface)
}

func TestRemoveTournament(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	tournament, err := s.AddTournament(ctx, "Spring Open", "Valencia", date("2025-06-15"), domain.SurfaceGrass, date("2025-06-01"))
	require.NoError(t, err)

	require.NoError(t, s.RemoveTournament(ctx, tournament.ID))
	assert.ErrorIs(t, s.RemoveTournament(ctx, tournament.ID), ErrTournamentNotFound)
}
