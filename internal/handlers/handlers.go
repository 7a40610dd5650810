package handlers

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/service"
)

type PlayerService interface {
	AddPlayer(ctx context.Context, name, phone string, email *string) (*domain.Player, error)
	ListPlayers(ctx context.Context, limit int) ([]domain.Player, error)
	RemovePlayer(ctx context.Context, name string) error
	Backup(ctx context.Context, destPath string) error
	ImportPlayers(ctx context.Context, csvPath string) ([]domain.Player, []string, error)
}

type TournamentService interface {
	AddTournament(ctx context.Context, name, location string, date time.Time, surface domain.Surface, deadline time.Time) (*domain.Tournament, error)
	ListTournaments(ctx context.Context, limit int) ([]domain.Tournament, error)
	UpdateTournament(ctx context.Context, id int64, upd domain.TournamentUpdate) (*domain.Tournament, error)
	RemoveTournament(ctx context.Context, id int64) error
}

type RegistrationService interface {
	RegisterPlayer(ctx context.Context, tournamentID int64, playerName string) (*domain.TournamentPlayer, error)
	UnregisterPlayer(ctx context.Context, tournamentID int64, playerName string) error
	ListTournamentPlayers(ctx context.Context, tournamentID int64, limit int) (*domain.Tournament, []domain.Registration, error)
	ListPlayerTournaments(ctx context.Context, playerName string, limit int) (*domain.Player, []domain.Tournament, error)
	MarkPayment(ctx context.Context, tournamentID int64, playerName string, paymentDate *time.Time) (*domain.TournamentPlayer, error)
	ClearPayment(ctx context.Context, tournamentID int64, playerName string) (*domain.TournamentPlayer, error)
	SearchPaidPlayers(ctx context.Context, tournamentID int64, nameQuery string, matchThreshold float64, limit int) (*domain.Tournament, []domain.PaidPlayer, error)
}

type FederationService interface {
	AddPayment(ctx context.Context, playerName string, paymentDate time.Time, amount float64, notes *string) (*domain.FederationPayment, error)
	RemoveLastPayment(ctx context.Context, playerName string) (*domain.FederationPayment, error)
	ListPayments(ctx context.Context, playerName string, limit int) (*domain.Player, []domain.FederationPayment, error)
}

// Handlers exposes every entity operation as a named, discoverable tool.
type Handlers struct {
	playerService       PlayerService
	tournamentService   TournamentService
	registrationService RegistrationService
	federationService   FederationService

	tools   []Tool
	toolIdx map[string]*Tool
}

func New(s *service.Services) *Handlers {
	return NewWith(s.PlayerService, s.TournamentService, s.RegistrationService, s.FederationService)
}

// NewWith wires explicit service implementations; tests use it with stubs.
func NewWith(players PlayerService, tournaments TournamentService, registrations RegistrationService, federation FederationService) *Handlers {
	h := &Handlers{
		playerService:       players,
		tournamentService:   tournaments,
		registrationService: registrations,
		federationService:   federation,
	}
	h.tools = h.buildTools()
	h.toolIdx = make(map[string]*Tool, len(h.tools))
	for i := range h.tools {
		h.toolIdx[h.tools[i].Name] = &h.tools[i]
	}
	return h
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/tools", h.ListTools)
	r.Post("/tools/{name}", h.InvokeTool)

	return r
}

func (h *Handlers) buildTools() []Tool {
	var tools []Tool
	tools = append(tools, h.playerTools()...)
	tools = append(tools, h.tournamentTools()...)
	tools = append(tools, h.registrationTools()...)
	tools = append(tools, h.federationTools()...)
	return tools
}
