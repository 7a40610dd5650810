package tournamentservice

import (
	"context"
	"errors"
	"time"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/store"
	"go.uber.org/zap"
)

type Repo interface {
	Insert(ctx context.Context, tournament *domain.Tournament) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Tournament, error)
	List(ctx context.Context, limit int) ([]domain.Tournament, error)
	Update(ctx context.Context, id int64, upd domain.TournamentUpdate) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrTournamentExists   = errors.New("tournament already exists")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrInvalidSurface     = errors.New("surface must be grass or beach")
)

func (s *Service) AddTournament(ctx context.Context, name, location string, date time.Time, surface domain.Surface, deadline time.Time) (*domain.Tournament, error) {
	if !surface.Valid() {
		return nil, ErrInvalidSurface
	}
	tournament := &domain.Tournament{
		Name:                 name,
		Location:             location,
		Date:                 date,
		Surface:              surface,
		RegistrationDeadline: deadline,
		Created:              time.Now(),
	}
	id, err := s.repo.Insert(ctx, tournament)
	if err != nil {
		// Names are not unique by schema; only a storage constraint
		// surfaces as a duplicate here.
		if store.IsDuplicate(err) {
			zap.L().Info("tournament already exists", zap.String("name", name))
			return nil, ErrTournamentExists
		}
		return nil, err
	}
	tournament.ID = id
	return tournament, nil
}

func (s *Service) ListTournaments(ctx context.Context, limit int) ([]domain.Tournament, error) {
	return s.repo.List(ctx, limit)
}

// UpdateTournament overwrites only the supplied fields. An empty update is a
// no-op that returns the current state.
func (s *Service) UpdateTournament(ctx context.Context, id int64, upd domain.TournamentUpdate) (*domain.Tournament, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTournamentNotFound
	}
	if upd.Surface != nil && !upd.Surface.Valid() {
		return nil, ErrInvalidSurface
	}
	if upd.Empty() {
		return current, nil
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		current.Name = *upd.Name
	}
	if upd.Location != nil {
		current.Location = *upd.Location
	}
	if upd.Date != nil {
		current.Date = *upd.Date
	}
	if upd.Surface != nil {
		current.Surface = *upd.Surface
	}
	if upd.RegistrationDeadline != nil {
		current.RegistrationDeadline = *upd.RegistrationDeadline
	}
	return current, nil
}

func (s *Service) RemoveTournament(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrTournamentNotFound
	}
	return nil
}
