package registrationservice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/ultimateteam/internal/domain"
	playerrepo "github.com/mpalomar/ultimateteam/internal/repo/player-repo"
	registrationrepo "github.com/mpalomar/ultimateteam/internal/repo/registration-repo"
	tournamentrepo "github.com/mpalomar/ultimateteam/internal/repo/tournament-repo"
	"github.com/mpalomar/ultimateteam/internal/store"
)

type fixture struct {
	service     *Service
	players     *playerrepo.Repository
	tournaments *tournamentrepo.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)

	players := playerrepo.New(st)
	tournaments := tournamentrepo.New(st)
	return &fixture{
		service:     New(registrationrepo.New(st), tournaments, players),
		players:     players,
		tournaments: tournaments,
	}
}

func (f *fixture) seedPlayer(t *testing.T, name string) {
	t.Helper()
	err := f.players.Insert(context.Background(), &domain.Player{
		Name:    name,
		Phone:   "555-0100",
		Created: time.Now().UTC(),
	})
	require.NoError(t, err)
}

// seedTournament creates a tournament whose deadline is the given number of
// days from now (negative for already-passed deadlines).
func (f *fixture) seedTournament(t *testing.T, name string, deadlineDays int) int64 {
	t.Helper()
	now := time.Now()
	id, err := f.tournaments.Insert(context.Background(), &domain.Tournament{
		Name:                 name,
		Location:             "Valencia",
		Date:                 now.AddDate(0, 0, deadlineDays+14),
		Surface:              domain.SurfaceGrass,
		RegistrationDeadline: now.AddDate(0, 0, deadlineDays),
		Created:              now,
	})
	require.NoError(t, err)
	return id
}

func TestRegisterPlayer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 7)

	reg, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)
	assert.Equal(t, id, reg.TournamentID)
	assert.Equal(t, "Juan Garcia", reg.PlayerName)
	assert.False(t, reg.RegisteredAt.IsZero())
	assert.False(t, reg.HasPaid)
}

func TestRegisterPlayerValidationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	open := f.seedTournament(t, "Spring Open", 7)
	closed := f.seedTournament(t, "Winter Open", -1)

	tests := []struct {
		name         string
		tournamentID int64
		playerName   string
		wantErr      error
	}{
		{
			name:         "unknown tournament",
			tournamentID: 999,
			playerName:   "Juan Garcia",
			wantErr:      ErrTournamentNotFound,
		},
		{
			// Deadline is checked before player existence.
			name:         "deadline passed with unknown player",
			tournamentID: closed,
			playerName:   "Nobody",
			wantErr:      ErrDeadlinePassed,
		},
		{
			name:         "unknown player",
			tournamentID: open,
			playerName:   "Nobody",
			wantErr:      ErrPlayerNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.RegisterPlayer(ctx, tt.tournamentID, tt.playerName)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterPlayerDeadlineOnSameDayAllowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 0)

	_, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)
}

func TestRegisterPlayerTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 7)

	_, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)

	_, err = f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestUnregisterPlayer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 7)

	_, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)

	require.NoError(t, f.service.UnregisterPlayer(ctx, id, "Juan Garcia"))
	assert.ErrorIs(t, f.service.UnregisterPlayer(ctx, id, "Juan Garcia"), ErrNotRegistered)
}

func TestListTournamentPlayers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Berta Ruiz")
	f.seedPlayer(t, "Ana Soto")
	id := f.seedTournament(t, "Spring Open", 7)

	tournament, registrations, err := f.service.ListTournamentPlayers(ctx, id, 10)
	require.NoError(t, err)
	assert.Equal(t, "Spring Open", tournament.Name)
	assert.Empty(t, registrations)

	_, err = f.service.RegisterPlayer(ctx, id, "Berta Ruiz")
	require.NoError(t, err)
	_, err = f.service.RegisterPlayer(ctx, id, "Ana Soto")
	require.NoError(t, err)

	_, registrations, err = f.service.ListTournamentPlayers(ctx, id, 10)
	require.NoError(t, err)
	require.Len(t, registrations, 2)
	assert.Equal(t, "Ana Soto", registrations[0].Player.Name)
	assert.Equal(t, "Berta Ruiz", registrations[1].Player.Name)

	_, _, err = f.service.ListTournamentPlayers(ctx, 999, 10)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestListPlayerTournaments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	first := f.seedTournament(t, "Spring Open", 7)
	second := f.seedTournament(t, "Summer Open", 14)

	_, err := f.service.RegisterPlayer(ctx, first, "Juan Garcia")
	require.NoError(t, err)
	_, err = f.service.RegisterPlayer(ctx, second, "Juan Garcia")
	require.NoError(t, err)

	player, tournaments, err := f.service.ListPlayerTournaments(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	assert.Equal(t, "Juan Garcia", player.Name)
	assert.Len(t, tournaments, 2)

	_, _, err = f.service.ListPlayerTournaments(ctx, "Nobody", 10)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestMarkPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 7)

	_, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	reg, err := f.service.MarkPayment(ctx, id, "Juan Garcia", &day)
	require.NoError(t, err)
	assert.True(t, reg.HasPaid)
	require.NotNil(t, reg.PaymentDate)
	assert.True(t, day.Equal(*reg.PaymentDate))

	_, err = f.service.MarkPayment(ctx, id, "Nobody", nil)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestMarkPaymentDefaultsToNow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 7)

	_, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)

	before := time.Now().Add(-time.Minute)
	reg, err := f.service.MarkPayment(ctx, id, "Juan Garcia", nil)
	require.NoError(t, err)
	require.NotNil(t, reg.PaymentDate)
	assert.True(t, reg.PaymentDate.After(before))
}

func TestClearPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPlayer(t, "Juan Garcia")
	id := f.seedTournament(t, "Spring Open", 7)

	registered, err := f.service.RegisterPlayer(ctx, id, "Juan Garcia")
	require.NoError(t, err)

	// Clearing an unpaid registration is a no-op.
	reg, err := f.service.ClearPayment(ctx, id, "Juan Garcia")
	require.NoError(t, err)
	assert.False(t, reg.HasPaid)

	_, err = f.service.MarkPayment(ctx, id, "Juan Garcia", nil)
	require.NoError(t, err)

	reg, err = f.service.ClearPayment(ctx, id, "Juan Garcia")
	require.NoError(t, err)
	assert.False(t, reg.HasPaid)
	assert.Nil(t, reg.PaymentDate)
	assert.True(t, registered.RegisteredAt.Equal(reg.RegisteredAt))

	_, err = f.service.ClearPayment(ctx, id, "Nobody")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestDeadlinePassed(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     bool
	}{
		{name: "yesterday", deadline: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), want: true},
		{name: "same day", deadline: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), want: false},
		{name: "tomorrow", deadline: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deadlinePassed(tt.deadline, now))
		})
	}
}
