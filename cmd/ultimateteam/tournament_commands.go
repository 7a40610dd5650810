package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/store"
)

func parseDateFlag(c *cli.Context, name string) (time.Time, error) {
	date, err := time.Parse(store.DateLayout, c.String(name))
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be a date in YYYY-MM-DD format", name)
	}
	return date, nil
}

func newAddTournamentCommand() *cli.Command {
	return &cli.Command{
		Name:  "add-tournament",
		Usage: "add a new tournament",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "tournament name", Required: true},
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "tournament location", Required: true},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "tournament date (YYYY-MM-DD)", Required: true},
			&cli.StringFlag{Name: "surface", Aliases: []string{"s"}, Usage: "playing surface (grass or beach)", Required: true},
			&cli.StringFlag{Name: "registration-deadline", Aliases: []string{"r"}, Usage: "registration deadline (YYYY-MM-DD)", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			date, err := parseDateFlag(c, "date")
			if err != nil {
				return fail(err)
			}
			deadline, err := parseDateFlag(c, "registration-deadline")
			if err != nil {
				return fail(err)
			}
			tournament, err := services.TournamentService.AddTournament(
				c.Context,
				c.String("name"),
				c.String("location"),
				date,
				domain.Surface(c.String("surface")),
				deadline,
			)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Added tournament: %s (ID: %d)\n", tournament.Name, tournament.ID)
			return nil
		},
	}
}

func newListTournamentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-tournaments",
		Usage: "list tournaments",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of tournaments to list", Value: 1000},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			tournaments, err := services.TournamentService.ListTournaments(c.Context, c.Int("limit"))
			if err != nil {
				return fail(err)
			}
			if len(tournaments) == 0 {
				fmt.Println("No tournaments found")
				return nil
			}
			fmt.Println("Tournaments:")
			for _, tournament := range tournaments {
				printTournament(tournament)
			}
			return nil
		},
	}
}

func printTournament(t domain.Tournament) {
	fmt.Printf("- ID: %d, Name: %s\n", t.ID, t.Name)
	fmt.Printf("  Location: %s\n", t.Location)
	fmt.Printf("  Date: %s\n", t.Date.Format(store.DateLayout))
	fmt.Printf("  Surface: %s\n", t.Surface)
	fmt.Printf("  Registration Deadline: %s\n", t.RegistrationDeadline.Format(store.DateLayout))
	fmt.Println()
}

func newUpdateTournamentCommand() *cli.Command {
	return &cli.Command{
		Name:  "update-tournament",
		Usage: "update an existing tournament",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Aliases: []string{"i"}, Usage: "tournament ID", Required: true},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "tournament name"},
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "tournament location"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "tournament date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "surface", Aliases: []string{"s"}, Usage: "playing surface (grass or beach)"},
			&cli.StringFlag{Name: "registration-deadline", Aliases: []string{"r"}, Usage: "registration deadline (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			upd := domain.TournamentUpdate{}
			if c.IsSet("name") {
				value := c.String("name")
				upd.Name = &value
			}
			if c.IsSet("location") {
				value := c.String("location")
				upd.Location = &value
			}
			if c.IsSet("date") {
				date, err := parseDateFlag(c, "date")
				if err != nil {
					return fail(err)
				}
				upd.Date = &date
			}
			if c.IsSet("surface") {
				surface := domain.Surface(c.String("surface"))
				upd.Surface = &surface
			}
			if c.IsSet("registration-deadline") {
				deadline, err := parseDateFlag(c, "registration-deadline")
				if err != nil {
					return fail(err)
				}
				upd.RegistrationDeadline = &deadline
			}
			if upd.Empty() {
				return cli.Exit("Error: at least one field must be specified to update", 1)
			}
			tournament, err := services.TournamentService.UpdateTournament(c.Context, c.Int64("id"), upd)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Updated tournament: %s (ID: %d)\n", tournament.Name, tournament.ID)
			return nil
		},
	}
}

func newRemoveTournamentCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove-tournament",
		Usage: "remove a tournament",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Aliases: []string{"i"}, Usage: "ID of the tournament to remove", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			id := c.Int64("id")
			if err := services.TournamentService.RemoveTournament(c.Context, id); err != nil {
				return fail(err)
			}
			fmt.Printf("Tournament %d removed successfully\n", id)
			return nil
		},
	}
}
