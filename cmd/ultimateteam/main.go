package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mpalomar/ultimateteam/internal/config"
	"github.com/mpalomar/ultimateteam/internal/repo"
	"github.com/mpalomar/ultimateteam/internal/service"
	"github.com/mpalomar/ultimateteam/internal/store"
	"github.com/mpalomar/ultimateteam/pkg/logger"
)

func main() {
	cfg := config.New()

	cliApp := &cli.App{
		Name:  "ultimateteam",
		Usage: "ultimate frisbee team management",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db-uri",
				Usage: "database URI (file:// or libsql://)",
				Value: cfg.DatabaseURI,
			},
		},
		Before: func(c *cli.Context) error {
			return logger.InitLogger(cfg)
		},
		Commands: []*cli.Command{
			newAddPlayerCommand(),
			newListPlayersCommand(),
			newRemovePlayerCommand(),
			newBackupCommand(),
			newImportPlayersCommand(),
			newAddTournamentCommand(),
			newListTournamentsCommand(),
			newUpdateTournamentCommand(),
			newRemoveTournamentCommand(),
			newRegisterPlayerCommand(),
			newUnregisterPlayerCommand(),
			newListTournamentPlayersCommand(),
			newListPlayerTournamentsCommand(),
			newMarkPaymentCommand(),
			newClearPaymentCommand(),
			newAddFederationPaymentCommand(),
			newRemoveLastFederationPaymentCommand(),
			newListFederationPaymentsCommand(),
			newSearchPaidPlayersCommand(),
			newServeCommand(cfg),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildServices wires the service layer against the URI from the global
// --db-uri flag (which defaults to the configured one).
func buildServices(c *cli.Context) (*service.Services, error) {
	st, err := store.New(c.String("db-uri"))
	if err != nil {
		return nil, err
	}
	return service.New(repo.New(st), st), nil
}

func fail(err error) error {
	return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
}
