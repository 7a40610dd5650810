package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mpalomar/ultimateteam/internal/service/registrationservice"
	"github.com/mpalomar/ultimateteam/internal/store"
)

func newRegisterPlayerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register-player",
		Usage: "register a player for a tournament",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tournament-id", Aliases: []string{"t"}, Usage: "tournament ID", Required: true},
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			reg, err := services.RegistrationService.RegisterPlayer(c.Context, c.Int64("tournament-id"), c.String("player-name"))
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Registered player '%s' for tournament %d\n", reg.PlayerName, reg.TournamentID)
			return nil
		},
	}
}

func newUnregisterPlayerCommand() *cli.Command {
	return &cli.Command{
		Name:  "unregister-player",
		Usage: "remove a player's registration from a tournament",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tournament-id", Aliases: []string{"t"}, Usage: "tournament ID", Required: true},
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			tournamentID := c.Int64("tournament-id")
			playerName := c.String("player-name")
			if err := services.RegistrationService.UnregisterPlayer(c.Context, tournamentID, playerName); err != nil {
				return fail(err)
			}
			fmt.Printf("Unregistered player '%s' from tournament %d\n", playerName, tournamentID)
			return nil
		},
	}
}

func newListTournamentPlayersCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-tournament-players",
		Usage: "list players registered for a tournament",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tournament-id", Aliases: []string{"t"}, Usage: "tournament ID", Required: true},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of registrations to list", Value: 1000},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			tournament, registrations, err := services.RegistrationService.ListTournamentPlayers(c.Context, c.Int64("tournament-id"), c.Int("limit"))
			if err != nil {
				return fail(err)
			}
			if len(registrations) == 0 {
				fmt.Printf("No players registered for tournament '%s'\n", tournament.Name)
				return nil
			}
			fmt.Printf("Players registered for '%s':\n", tournament.Name)
			for _, reg := range registrations {
				line := fmt.Sprintf("- %s", formatPlayer(reg.Player))
				if reg.HasPaid {
					line += " [PAID"
					if reg.PaymentDate != nil {
						line += " " + reg.PaymentDate.Format(store.DateLayout)
					}
					line += "]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newListPlayerTournamentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-player-tournaments",
		Usage: "list tournaments a player is registered for",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of tournaments to list", Value: 1000},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			player, tournaments, err := services.RegistrationService.ListPlayerTournaments(c.Context, c.String("player-name"), c.Int("limit"))
			if err != nil {
				return fail(err)
			}
			if len(tournaments) == 0 {
				fmt.Printf("Player '%s' is not registered for any tournaments\n", player.Name)
				return nil
			}
			fmt.Printf("Tournaments for '%s':\n", player.Name)
			for _, tournament := range tournaments {
				printTournament(tournament)
			}
			return nil
		},
	}
}

func newMarkPaymentCommand() *cli.Command {
	return &cli.Command{
		Name:  "mark-payment",
		Usage: "mark a player's tournament payment as made",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tournament-id", Aliases: []string{"t"}, Usage: "tournament ID", Required: true},
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
			&cli.StringFlag{Name: "payment-date", Aliases: []string{"d"}, Usage: "payment date (YYYY-MM-DD), defaults to today"},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			var paymentDate *time.Time
			if c.IsSet("payment-date") {
				date, err := parseDateFlag(c, "payment-date")
				if err != nil {
					return fail(err)
				}
				paymentDate = &date
			}
			reg, err := services.RegistrationService.MarkPayment(c.Context, c.Int64("tournament-id"), c.String("player-name"), paymentDate)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Marked payment for '%s' in tournament %d (date: %s)\n",
				reg.PlayerName, reg.TournamentID, reg.PaymentDate.Format(store.DateLayout))
			return nil
		},
	}
}

func newClearPaymentCommand() *cli.Command {
	return &cli.Command{
		Name:  "clear-payment",
		Usage: "clear a player's tournament payment",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tournament-id", Aliases: []string{"t"}, Usage: "tournament ID", Required: true},
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			reg, err := services.RegistrationService.ClearPayment(c.Context, c.Int64("tournament-id"), c.String("player-name"))
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Cleared payment for '%s' in tournament %d\n", reg.PlayerName, reg.TournamentID)
			return nil
		},
	}
}

func newSearchPaidPlayersCommand() *cli.Command {
	return &cli.Command{
		Name:  "search-paid-players",
		Usage: "search players who have paid for a tournament, with fuzzy name matching",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "tournament-id", Aliases: []string{"t"}, Usage: "tournament ID", Required: true},
			&cli.StringFlag{Name: "name-query", Aliases: []string{"q"}, Usage: "name to match against paid players"},
			&cli.Float64Flag{Name: "match-threshold", Aliases: []string{"m"}, Usage: "minimum match score between 0 and 1", Value: registrationservice.DefaultMatchThreshold},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of matches to list", Value: 1000},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			tournament, matches, err := services.RegistrationService.SearchPaidPlayers(
				c.Context,
				c.Int64("tournament-id"),
				c.String("name-query"),
				c.Float64("match-threshold"),
				c.Int("limit"),
			)
			if err != nil {
				return fail(err)
			}
			if len(matches) == 0 {
				fmt.Printf("No paid players found for '%s'\n", tournament.Name)
				return nil
			}
			fmt.Printf("Paid players for '%s':\n", tournament.Name)
			for _, match := range matches {
				line := fmt.Sprintf("- %s (paid %s)", formatPlayer(match.Player), match.PaymentDate.Format(store.DateLayout))
				if c.IsSet("name-query") && c.String("name-query") != "" {
					line += fmt.Sprintf(" [score: %.2f]", match.MatchScore)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
