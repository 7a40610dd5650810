package playerservice

import (
	"context"
	"errors"
	"time"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/store"
	"go.uber.org/zap"
)

type Repo interface {
	Insert(ctx context.Context, player *domain.Player) error
	FindByName(ctx context.Context, name string) (*domain.Player, error)
	List(ctx context.Context, limit int) ([]domain.Player, error)
	Update(ctx context.Context, name, phone string, email *string) error
	Delete(ctx context.Context, name string) (bool, error)
}

// Backuper snapshots the whole database to a local file.
type Backuper interface {
	Backup(ctx context.Context, destPath string) error
}

type Service struct {
	repo     Repo
	backuper Backuper
}

func New(repo Repo, backuper Backuper) *Service {
	return &Service{
		repo:     repo,
		backuper: backuper,
	}
}

var (
	ErrPlayerExists   = errors.New("player already exists")
	ErrPlayerNotFound = errors.New("player not found")
)

func (s *Service) AddPlayer(ctx context.Context, name, phone string, email *string) (*domain.Player, error) {
	player := &domain.Player{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Created: time.Now(),
	}
	if err := s.repo.Insert(ctx, player); err != nil {
		if store.IsDuplicate(err) {
			zap.L().Info("player already exists", zap.String("name", name))
			return nil, ErrPlayerExists
		}
		return nil, err
	}
	return player, nil
}

func (s *Service) ListPlayers(ctx context.Context, limit int) ([]domain.Player, error) {
	return s.repo.List(ctx, limit)
}

func (s *Service) RemovePlayer(ctx context.Context, name string) error {
	found, err := s.repo.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !found {
		return ErrPlayerNotFound
	}
	return nil
}

func (s *Service) Backup(ctx context.Context, destPath string) error {
	return s.backuper.Backup(ctx, destPath)
}
