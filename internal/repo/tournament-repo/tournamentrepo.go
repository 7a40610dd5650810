package tournamentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *Repository) Insert(ctx context.Context, t *domain.Tournament) (int64, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	query := `
		INSERT INTO tournaments (name, location, date, surface, registration_deadline, created)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := db.ExecContext(ctx, query,
		t.Name,
		t.Location,
		t.Date.Format(store.DateLayout),
		string(t.Surface),
		t.RegistrationDeadline.Format(store.DateLayout),
		t.Created,
	)
	if err != nil {
		if !store.IsDuplicate(err) {
			zap.L().Error("can't save tournament", zap.Error(err))
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Tournament, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT id, name, location, date, surface, registration_deadline, created
		FROM tournaments
		WHERE id = ?
	`
	tournament, err := ScanTournament(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find tournament", zap.Error(err))
		return nil, err
	}
	return tournament, nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.Tournament, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT id, name, location, date, surface, registration_deadline, created
		FROM tournaments
		ORDER BY date
		LIMIT ?
	`
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		tournament, err := ScanTournament(rows)
		if err != nil {
			zap.L().Error("can't scan tournament row", zap.Error(err))
			return nil, err
		}
		tournaments = append(tournaments, *tournament)
	}
	return tournaments, rows.Err()
}

func (r *Repository) Update(ctx context.Context, id int64, upd domain.TournamentUpdate) error {
	if upd.Empty() {
		return nil
	}
	db, err := r.store.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		set = append(set, column+" = ?")
		args = append(args, value)
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Date != nil {
		add("date", upd.Date.Format(store.DateLayout))
	}
	if upd.Surface != nil {
		add("surface", string(*upd.Surface))
	}
	if upd.RegistrationDeadline != nil {
		add("registration_deadline", upd.RegistrationDeadline.Format(store.DateLayout))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE tournaments SET %s WHERE id = ?", strings.Join(set, ", "))
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		zap.L().Error("can't update tournament", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return false, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = ?`, id)
	if err != nil {
		zap.L().Error("can't delete tournament", zap.Error(err))
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

// ScanTournament maps one tournaments row; shared with the registration repo
// which joins against the same columns.
func ScanTournament(row scanner) (*domain.Tournament, error) {
	var (
		t        domain.Tournament
		surface  string
		date     store.Time
		deadline store.Time
		created  store.Time
	)
	err := row.Scan(&t.ID, &t.Name, &t.Location, &date, &surface, &deadline, &created)
	if err != nil {
		return nil, err
	}
	t.Date = date.Time
	t.Surface = domain.Surface(surface)
	t.RegistrationDeadline = deadline.Time
	t.Created = created.Time
	return &t, nil
}
