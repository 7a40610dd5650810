package registrationservice

import (
	"context"
	"errors"
	"time"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/store"
	"go.uber.org/zap"
)

type Repo interface {
	Find(ctx context.Context, tournamentID int64, playerName string) (*domain.TournamentPlayer, error)
	Insert(ctx context.Context, tp *domain.TournamentPlayer) error
	Delete(ctx context.Context, tournamentID int64, playerName string) (bool, error)
	SetPayment(ctx context.Context, tournamentID int64, playerName string, paymentDate *time.Time) error
	ListByTournament(ctx context.Context, tournamentID int64, limit int) ([]domain.Registration, error)
	ListByPlayer(ctx context.Context, playerName string, limit int) ([]domain.Tournament, error)
	ListPaid(ctx context.Context, tournamentID int64) ([]domain.PaidPlayer, error)
}

type TournamentRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Tournament, error)
}

type PlayerRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Player, error)
}

type Service struct {
	repo           Repo
	tournamentRepo TournamentRepo
	playerRepo     PlayerRepo
}

func New(repo Repo, tournamentRepo TournamentRepo, playerRepo PlayerRepo) *Service {
	return &Service{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
	}
}

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrDeadlinePassed     = errors.New("registration deadline has passed")
	ErrAlreadyRegistered  = errors.New("player is already registered for this tournament")
	ErrNotRegistered      = errors.New("player is not registered for this tournament")
)

// RegisterPlayer validates in order: tournament exists, deadline not passed,
// player exists, not already registered. The duplicate check races against
// concurrent registrations, but the composite primary key turns the losing
// insert into the same already-registered error.
func (s *Service) RegisterPlayer(ctx context.Context, tournamentID int64, playerName string) (*domain.TournamentPlayer, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		return nil, ErrTournamentNotFound
	}

	if deadlinePassed(tournament.RegistrationDeadline, time.Now()) {
		zap.L().Info("registration deadline passed",
			zap.Int64("tournament_id", tournamentID),
			zap.Time("deadline", tournament.RegistrationDeadline))
		return nil, ErrDeadlinePassed
	}

	player, err := s.playerRepo.FindByName(ctx, playerName)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	existing, err := s.repo.Find(ctx, tournamentID, playerName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	tp := &domain.TournamentPlayer{
		TournamentID: tournamentID,
		PlayerName:   playerName,
		RegisteredAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, tp); err != nil {
		if store.IsDuplicate(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return tp, nil
}

func (s *Service) UnregisterPlayer(ctx context.Context, tournamentID int64, playerName string) error {
	found, err := s.repo.Delete(ctx, tournamentID, playerName)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotRegistered
	}
	return nil
}

func (s *Service) ListTournamentPlayers(ctx context.Context, tournamentID int64, limit int) (*domain.Tournament, []domain.Registration, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}
	if tournament == nil {
		return nil, nil, ErrTournamentNotFound
	}
	registrations, err := s.repo.ListByTournament(ctx, tournamentID, limit)
	if err != nil {
		return nil, nil, err
	}
	return tournament, registrations, nil
}

func (s *Service) ListPlayerTournaments(ctx context.Context, playerName string, limit int) (*domain.Player, []domain.Tournament, error) {
	player, err := s.playerRepo.FindByName(ctx, playerName)
	if err != nil {
		return nil, nil, err
	}
	if player == nil {
		return nil, nil, ErrPlayerNotFound
	}
	tournaments, err := s.repo.ListByPlayer(ctx, playerName, limit)
	if err != nil {
		return nil, nil, err
	}
	return player, tournaments, nil
}

// MarkPayment sets has_paid and payment_date together; the date defaults to
// now when not supplied.
func (s *Service) MarkPayment(ctx context.Context, tournamentID int64, playerName string, paymentDate *time.Time) (*domain.TournamentPlayer, error) {
	registration, err := s.repo.Find(ctx, tournamentID, playerName)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotRegistered
	}

	date := time.Now()
	if paymentDate != nil {
		date = *paymentDate
	}
	if err := s.repo.SetPayment(ctx, tournamentID, playerName, &date); err != nil {
		return nil, err
	}
	registration.HasPaid = true
	registration.PaymentDate = &date
	return registration, nil
}

// ClearPayment resets both payment fields. Already-unpaid registrations are
// returned as-is without a write.
func (s *Service) ClearPayment(ctx context.Context, tournamentID int64, playerName string) (*domain.TournamentPlayer, error) {
	registration, err := s.repo.Find(ctx, tournamentID, playerName)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotRegistered
	}
	if !registration.HasPaid {
		return registration, nil
	}

	if err := s.repo.SetPayment(ctx, tournamentID, playerName, nil); err != nil {
		return nil, err
	}
	registration.HasPaid = false
	registration.PaymentDate = nil
	return registration, nil
}

func deadlinePassed(deadline, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
