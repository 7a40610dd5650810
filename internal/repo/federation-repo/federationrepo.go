package federationrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mpalomar/ultimateteam/internal/domain"
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

func (r *Repository) Insert(ctx context.Context, payment *domain.FederationPayment) (int64, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	query := `
		INSERT INTO federation_payments (player_name, payment_date, amount, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := db.ExecContext(ctx, query,
		payment.PlayerName,
		payment.PaymentDate,
		payment.Amount,
		payment.Notes,
		payment.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save federation payment", zap.Error(err))
		return 0, err
	}
	return res.LastInsertId()
}

// FindLatest returns the payment with the maximal (payment_date, created_at)
// for a player, or nil when the player has none. datetime() compares at
// second precision, so insertion order breaks remaining ties.
func (r *Repository) FindLatest(ctx context.Context, playerName string) (*domain.FederationPayment, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT id, player_name, payment_date, amount, notes, created_at
		FROM federation_payments
		WHERE player_name = ?
		ORDER BY datetime(payment_date) DESC, datetime(created_at) DESC, id DESC
		LIMIT 1
	`
	payment, err := scanPayment(db.QueryRowContext(ctx, query, playerName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find latest federation payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	db, err := r.store.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `DELETE FROM federation_payments WHERE id = ?`, id); err != nil {
		zap.L().Error("can't delete federation payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByPlayer(ctx context.Context, playerName string, limit int) ([]domain.FederationPayment, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT id, player_name, payment_date, amount, notes, created_at
		FROM federation_payments
		WHERE player_name = ?
		ORDER BY datetime(payment_date) DESC, datetime(created_at) DESC, id DESC
		LIMIT ?
	`
	rows, err := db.QueryContext(ctx, query, playerName, limit)
	if err != nil {
		zap.L().Error("can't list federation payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.FederationPayment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan federation payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPayment(row scanner) (*domain.FederationPayment, error) {
	var (
		payment     domain.FederationPayment
		paymentDate store.Time
		createdAt   store.Time
		notes       sql.NullString
	)
	err := row.Scan(&payment.ID, &payment.PlayerName, &paymentDate, &payment.Amount, &notes, &createdAt)
	if err != nil {
		return nil, err
	}
	payment.PaymentDate = paymentDate.Time
	payment.CreatedAt = createdAt.Time
	if notes.Valid {
		payment.Notes = &notes.String
	}
	return &payment, nil
}
