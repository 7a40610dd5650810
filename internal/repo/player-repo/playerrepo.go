package playerrepo

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

func (r *Repository) Insert(ctx context.Context, player *domain.Player) error {
	db, err := r.store.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO players (name, created, phone, email)
		VALUES (?, ?, ?, ?)
	`
	_, err = db.ExecContext(ctx, query, player.Name, player.Created, player.Phone, player.Email)
	if err != nil {
		if !store.IsDuplicate(err) {
			zap.L().Error("can't save player", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Player, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT name, created, phone, email
		FROM players
		WHERE name = ?
	`
	row := db.QueryRowContext(ctx, query, name)

	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.Player, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT name, created, phone, email
		FROM players
		LIMIT ?
	`
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list players", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			zap.L().Error("can't scan player row", zap.Error(err))
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func (r *Repository) Update(ctx context.Context, name, phone string, email *string) error {
	db, err := r.store.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		UPDATE players
		SET phone = ?, email = ?
		WHERE name = ?
	`
	_, err = db.ExecContext(ctx, query, phone, email, name)
	if err != nil {
		zap.L().Error("can't update player", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, name string) (bool, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return false, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `DELETE FROM players WHERE name = ?`, name)
	if err != nil {
		zap.L().Error("can't delete player", zap.Error(err))
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*domain.Player, error) {
	var (
		player  domain.Player
		created store.Time
		email   sql.NullString
	)
	if err := row.Scan(&player.Name, &created, &player.Phone, &email); err != nil {
		return nil, err
	}
	player.Created = created.Time
	if email.Valid {
		player.Email = &email.String
	}
	return &player, nil
}
