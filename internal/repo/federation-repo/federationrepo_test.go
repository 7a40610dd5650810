package federationrepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/store"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "team.db"))
	require.NoError(t, err)
	return New(st)
}

func insertPayment(t *testing.T, r *Repository, playerName string, day time.Time, amount float64) int64 {
	t.Helper()
	id, err := r.Insert(context.Background(), &domain.FederationPayment{
		PlayerName:  playerName,
		PaymentDate: day,
		Amount:      amount,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return id
}

func TestRepositoryInsertAndListByPlayer(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	insertPayment(t, r, "Juan Garcia", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 50)
	insertPayment(t, r, "Juan Garcia", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 75)
	insertPayment(t, r, "Ana Soto", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 60)

	payments, err := r.ListByPlayer(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	// Most recent payment date first.
	assert.Equal(t, 75.0, payments[0].Amount)
	assert.Equal(t, 50.0, payments[1].Amount)

	payments, err = r.ListByPlayer(ctx, "Nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestRepositoryFindLatest(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	missing, err := r.FindLatest(ctx, "Juan Garcia")
	require.NoError(t, err)
	assert.Nil(t, missing)

	insertPayment(t, r, "Juan Garcia", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 75)
	insertPayment(t, r, "Juan Garcia", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 50)

	latest, err := r.FindLatest(ctx, "Juan Garcia")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 75.0, latest.Amount)
}

func TestRepositoryFindLatestBreaksTiesByCreation(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	base := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

	_, err := r.Insert(ctx, &domain.FederationPayment{
		PlayerName: "Juan Garcia", PaymentDate: day, Amount: 50, CreatedAt: base,
	})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &domain.FederationPayment{
		PlayerName: "Juan Garcia", PaymentDate: day, Amount: 75, CreatedAt: base.Add(time.Hour),
	})
	require.NoError(t, err)

	latest, err := r.FindLatest(ctx, "Juan Garcia")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 75.0, latest.Amount)
}

func TestRepositoryFindLatestBreaksSubSecondTies(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	// Back-to-back inserts land within the same second; datetime() cannot
	// tell them apart, so the newer row must still win.
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	base := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

	_, err := r.Insert(ctx, &domain.FederationPayment{
		PlayerName: "Juan Garcia", PaymentDate: day, Amount: 50, CreatedAt: base,
	})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &domain.FederationPayment{
		PlayerName: "Juan Garcia", PaymentDate: day, Amount: 75, CreatedAt: base.Add(250 * time.Millisecond),
	})
	require.NoError(t, err)

	latest, err := r.FindLatest(ctx, "Juan Garcia")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 75.0, latest.Amount)

	payments, err := r.ListByPlayer(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 75.0, payments[0].Amount)
	assert.Equal(t, 50.0, payments[1].Amount)
}

func TestRepositoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	id := insertPayment(t, r, "Juan Garcia", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 75)
	require.NoError(t, r.DeleteByID(ctx, id))

	payments, err := r.ListByPlayer(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestRepositoryNotesRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	notes := "annual fee"
	_, err := r.Insert(ctx, &domain.FederationPayment{
		PlayerName:  "Juan Garcia",
		PaymentDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:      75,
		Notes:       &notes,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)

	payments, err := r.ListByPlayer(ctx, "Juan Garcia", 10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.NotNil(t, payments[0].Notes)
	assert.Equal(t, notes, *payments[0].Notes)
}
