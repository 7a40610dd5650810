package federationservice

import (
	"context"
	"errors"
	"time"

	"github.com/mpalomar/ultimateteam/internal/domain"
)

type Repo interface {
	Insert(ctx context.Context, payment *domain.FederationPayment) (int64, error)
	FindLatest(ctx context.Context, playerName string) (*domain.FederationPayment, error)
	DeleteByID(ctx context.Context, id int64) error
	ListByPlayer(ctx context.Context, playerName string, limit int) ([]domain.FederationPayment, error)
}

type PlayerRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Player, error)
}

type Service struct {
	repo       Repo
	playerRepo PlayerRepo
}

func New(repo Repo, playerRepo PlayerRepo) *Service {
	return &Service{
		repo:       repo,
		playerRepo: playerRepo,
	}
}

var ErrPlayerNotFound = errors.New("player not found")

func (s *Service) AddPayment(ctx context.Context, playerName string, paymentDate time.Time, amount float64, notes *string) (*domain.FederationPayment, error) {
	player, err := s.playerRepo.FindByName(ctx, playerName)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	payment := &domain.FederationPayment{
		PlayerName:  playerName,
		PaymentDate: paymentDate,
		Amount:      amount,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}
	id, err := s.repo.Insert(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id
	return payment, nil
}

// RemoveLastPayment deletes and returns the player's most recent payment by
// (payment_date, created_at). A player with no payments yields nil, nil.
func (s *Service) RemoveLastPayment(ctx context.Context, playerName string) (*domain.FederationPayment, error) {
	player, err := s.playerRepo.FindByName(ctx, playerName)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	latest, err := s.repo.FindLatest(ctx, playerName)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}
	if err := s.repo.DeleteByID(ctx, latest.ID); err != nil {
		return nil, err
	}
	return latest, nil
}

func (s *Service) ListPayments(ctx context.Context, playerName string, limit int) (*domain.Player, []domain.FederationPayment, error) {
	player, err := s.playerRepo.FindByName(ctx, playerName)
	if err != nil {
		return nil, nil, err
	}
	if player == nil {
		return nil, nil, ErrPlayerNotFound
	}
	payments, err := s.repo.ListByPlayer(ctx, playerName, limit)
	if err != nil {
		return nil, nil, err
	}
	return player, payments, nil
}
