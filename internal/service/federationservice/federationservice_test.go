package federationservice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/ultimateteam/internal/domain"
	federationrepo "github.com/mpalomar/ultimateteam/internal/repo/federation-repo"
	playerrepo "github.com/mpalomar/ultimateteam/internal/repo/player-repo"
	"github.com/mpalomar/ultimateteam/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)

	players := playerrepo.New(st)
	err = players.Insert(context.Background(), &domain.Player{
		Name:    "Juan Garcia",
		Phone:   "555-0100",
		Created: time.Now().UTC(),
	})
	require.NoError(t, err)

	return New(federationrepo.New(st), players)
}

func TestAddPayment(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	notes := "annual fee"
	payment, err := s.AddPayment(ctx, "Juan Garcia", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 75, &notes)
	require.NoError(t, err)
	assert.Positive(t, payment.ID)
	assert.Equal(t, 75.0, payment.Amount)
	require.NotNil(t, payment.Notes)
	assert.Equal(t, notes, *payment.Notes)

	_, err = s.AddPayment(ctx, "Nobody", time.Now(), 75, nil)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestRemoveLastPayment(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.AddPayment(ctx, "Juan Garcia", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 50, nil)
	require.NoError(t, err)
	_, err = s.AddPayment(ctx, "Juan Garcia", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 75, nil)
	require.NoError(t, err)

	// Payments come off most recent first: 75, then 50, then nothing.
	removed, err := s.RemoveLastPayment(ctx, "Juan Garcia")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, 75.0, removed.Amount)

	removed, err = s.RemoveLastPayment(ctx, "Juan Garcia")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, 50.0, removed.Amount)

	removed, err = s.RemoveLastPayment(ctx, "Juan Garcia")
	require.NoError(t, err)
	assert.Nil(t, removed)

	_, err = s.RemoveLastPayment(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestListPayments(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	player, payments, err := s.ListPayments(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	assert.Equal(t, "Juan Garcia", player.Name)
	assert.Empty(t, payments)

	_, err = s.AddPayment(ctx, "Juan Garcia", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 50, nil)
	require.NoError(t, err)
	_, err = s.AddPayment(ctx, "Juan Garcia", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 75, nil)
	require.NoError(t, err)

	_, payments, err = s.ListPayments(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 75.0, payments[0].Amount)
	assert.Equal(t, 50.0, payments[1].Amount)

	_, _, err = s.ListPayments(ctx, "Nobody", 10)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
