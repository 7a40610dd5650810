package registrationrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mpalomar/ultimateteam/internal/domain"
	tournamentrepo "github.com/mpalomar/ultimateteam/internal/repo/tournament-repo"
	"github.com/mpalomar/ultimateteam/internal/store"
	"go.uber.org/zap"
)

type Repository struct {
	store *store.Store
}

func New(st *store.Store) *Repository {
	return &Repository{
		store: st,
	}
}

func (r *Repository) Find(ctx context.Context, tournamentID int64, playerName string) (*domain.TournamentPlayer, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT tournament_id, player_name, registered_at, has_paid, payment_date
		FROM tournament_players
		WHERE tournament_id = ? AND player_name = ?
	`
	row := db.QueryRowContext(ctx, query, tournamentID, playerName)

	var (
		tp           domain.TournamentPlayer
		registeredAt store.Time
		paymentDate  store.NullTime
	)
	err = row.Scan(&tp.TournamentID, &tp.PlayerName, &registeredAt, &tp.HasPaid, &paymentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find registration", zap.Error(err))
		return nil, err
	}
	tp.RegisteredAt = registeredAt.Time
	tp.PaymentDate = paymentDate.Ptr()
	return &tp, nil
}

func (r *Repository) Insert(ctx context.Context, tp *domain.TournamentPlayer) error {
	db, err := r.store.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO tournament_players (tournament_id, player_name, registered_at, has_paid, payment_date)
		VALUES (?, ?, ?, 0, NULL)
	`
	_, err = db.ExecContext(ctx, query, tp.TournamentID, tp.PlayerName, tp.RegisteredAt)
	if err != nil {
		if !store.IsDuplicate(err) {
			zap.L().Error("can't save registration", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, tournamentID int64, playerName string) (bool, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return false, err
	}
	defer db.Close()

	query := `
		DELETE FROM tournament_players
		WHERE tournament_id = ? AND player_name = ?
	`
	res, err := db.ExecContext(ctx, query, tournamentID, playerName)
	if err != nil {
		zap.L().Error("can't delete registration", zap.Error(err))
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetPayment updates both payment fields together: the pair is either
// (true, date) or (false, NULL).
func (r *Repository) SetPayment(ctx context.Context, tournamentID int64, playerName string, paymentDate *time.Time) error {
	db, err := r.store.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		UPDATE tournament_players
		SET has_paid = ?, payment_date = ?
		WHERE tournament_id = ? AND player_name = ?
	`
	hasPaid := 0
	if paymentDate != nil {
		hasPaid = 1
	}
	_, err = db.ExecContext(ctx, query, hasPaid, paymentDate, tournamentID, playerName)
	if err != nil {
		zap.L().Error("can't update registration payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByTournament(ctx context.Context, tournamentID int64, limit int) ([]domain.Registration, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT p.name, p.created, p.phone, p.email, tp.has_paid, tp.payment_date
		FROM players p
		JOIN tournament_players tp ON p.name = tp.player_name
		WHERE tp.tournament_id = ?
		ORDER BY p.name
		LIMIT ?
	`
	rows, err := db.QueryContext(ctx, query, tournamentID, limit)
	if err != nil {
		zap.L().Error("can't list tournament players", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var registrations []domain.Registration
	for rows.Next() {
		var (
			reg         domain.Registration
			created     store.Time
			email       sql.NullString
			paymentDate store.NullTime
		)
		err := rows.Scan(&reg.Player.Name, &created, &reg.Player.Phone, &email, &reg.HasPaid, &paymentDate)
		if err != nil {
			zap.L().Error("can't scan registration row", zap.Error(err))
			return nil, err
		}
		reg.Player.Created = created.Time
		if email.Valid {
			reg.Player.Email = &email.String
		}
		reg.PaymentDate = paymentDate.Ptr()
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

func (r *Repository) ListByPlayer(ctx context.Context, playerName string, limit int) ([]domain.Tournament, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT t.id, t.name, t.location, t.date, t.surface, t.registration_deadline, t.created
		FROM tournaments t
		JOIN tournament_players tp ON t.id = tp.tournament_id
		WHERE tp.player_name = ?
		ORDER BY t.date
		LIMIT ?
	`
	rows, err := db.QueryContext(ctx, query, playerName, limit)
	if err != nil {
		zap.L().Error("can't list player tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		tournament, err := tournamentrepo.ScanTournament(rows)
		if err != nil {
			zap.L().Error("can't scan tournament row", zap.Error(err))
			return nil, err
		}
		tournaments = append(tournaments, *tournament)
	}
	return tournaments, rows.Err()
}

// ListPaid returns every paid registration of a tournament with the player
// attached, in player-name order.
func (r *Repository) ListPaid(ctx context.Context, tournamentID int64) ([]domain.PaidPlayer, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT p.name, p.created, p.phone, p.email, tp.payment_date
		FROM players p
		JOIN tournament_players tp ON p.name = tp.player_name
		WHERE tp.tournament_id = ? AND tp.has_paid = 1
		ORDER BY p.name
	`
	rows, err := db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		zap.L().Error("can't list paid players", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var paid []domain.PaidPlayer
	for rows.Next() {
		var (
			pp          domain.PaidPlayer
			created     store.Time
			email       sql.NullString
			paymentDate store.Time
		)
		err := rows.Scan(&pp.Player.Name, &created, &pp.Player.Phone, &email, &paymentDate)
		if err != nil {
			zap.L().Error("can't scan paid player row", zap.Error(err))
			return nil, err
		}
		pp.Player.Created = created.Time
		if email.Valid {
			pp.Player.Email = &email.String
		}
		pp.PaymentDate = paymentDate.Time
		paid = append(paid, pp)
	}
	return paid, rows.Err()
}
