package repo

import (
	federationrepo "github.com/mpalomar/ultimateteam/internal/repo/federation-repo"
	playerrepo "github.com/mpalomar/ultimateteam/internal/repo/player-repo"
	registrationrepo "github.com/mpalomar/ultimateteam/internal/repo/registration-repo"
	tournamentrepo "github.com/mpalomar/ultimateteam/internal/repo/tournament-repo"
	"github.com/mpalomar/ultimateteam/internal/store"
)

type Repositories struct {
	PlayerRepo       *playerrepo.Repository
	TournamentRepo   *tournamentrepo.Repository
	RegistrationRepo *registrationrepo.Repository
	FederationRepo   *federationrepo.Repository
}

func New(st *store.Store) *Repositories {
	return &Repositories{
		PlayerRepo:       playerrepo.New(st),
		TournamentRepo:   tournamentrepo.New(st),
		RegistrationRepo: registrationrepo.New(st),
		FederationRepo:   federationrepo.New(st),
	}
}
