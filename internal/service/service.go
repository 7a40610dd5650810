package service

import (
	"github.com/mpalomar/ultimateteam/internal/repo"
	"github.com/mpalomar/ultimateteam/internal/service/federationservice"
	"github.com/mpalomar/ultimateteam/internal/service/playerservice"
	"github.com/mpalomar/ultimateteam/internal/service/registrationservice"
	"github.com/mpalomar/ultimateteam/internal/service/tournamentservice"
	"github.com/mpalomar/ultimateteam/internal/store"
)

type Services struct {
	PlayerService       *playerservice.Service
	TournamentService   *tournamentservice.Service
	RegistrationService *registrationservice.Service
	FederationService   *federationservice.Service
}

func New(repos *repo.Repositories, st *store.Store) *Services {
	return &Services{
		PlayerService:       playerservice.New(repos.PlayerRepo, st),
		TournamentService:   tournamentservice.New(repos.TournamentRepo),
		RegistrationService: registrationservice.New(repos.RegistrationRepo, repos.TournamentRepo, repos.PlayerRepo),
		FederationService:   federationservice.New(repos.FederationRepo, repos.PlayerRepo),
	}
}
