package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mpalomar/ultimateteam/internal/domain"
)

func newAddPlayerCommand() *cli.Command {
	return &cli.Command{
		Name:      "add-player",
		Usage:     "add a new player",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "phone", Aliases: []string{"p"}, Usage: "player's phone number", Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "player's email address"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("Error: exactly one NAME argument is required", 1)
			}
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			var email *string
			if value := c.String("email"); value != "" {
				email = &value
			}
			player, err := services.PlayerService.AddPlayer(c.Context, c.Args().First(), c.String("phone"), email)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Added player: %s\n", player.Name)
			return nil
		},
	}
}

func newListPlayersCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-players",
		Usage: "list players",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of players to list", Value: 1000},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			players, err := services.PlayerService.ListPlayers(c.Context, c.Int("limit"))
			if err != nil {
				return fail(err)
			}
			if len(players) == 0 {
				fmt.Println("No players found")
				return nil
			}
			fmt.Println("Players:")
			for _, player := range players {
				fmt.Printf("- %s\n", formatPlayer(player))
			}
			return nil
		},
	}
}

func newRemovePlayerCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove-player",
		Usage: "remove a player",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "name of the player to remove", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			name := c.String("name")
			if err := services.PlayerService.RemovePlayer(c.Context, name); err != nil {
				return fail(err)
			}
			fmt.Printf("Player '%s' removed successfully\n", name)
			return nil
		},
	}
}

func newBackupCommand() *cli.Command {
	return &cli.Command{
		Name:      "backup",
		Usage:     "backup the database to a file",
		ArgsUsage: "BACKUP_PATH",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("Error: exactly one BACKUP_PATH argument is required", 1)
			}
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			path := c.Args().First()
			if err := services.PlayerService.Backup(c.Context, path); err != nil {
				return fail(err)
			}
			fmt.Printf("Successfully backed up database to %s\n", path)
			return nil
		},
	}
}

func newImportPlayersCommand() *cli.Command {
	return &cli.Command{
		Name:      "import-players",
		Usage:     "import players from a CSV file, updating existing players",
		ArgsUsage: "CSV_FILE",
		Description: "CSV_FILE must have headers. Recognized columns: name/nombre (required),\n" +
			"phone/telefono (required), email (optional).",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("Error: exactly one CSV_FILE argument is required", 1)
			}
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			imported, importErrors, err := services.PlayerService.ImportPlayers(c.Context, c.Args().First())
			if err != nil {
				return fail(err)
			}
			if len(imported) > 0 {
				fmt.Printf("Successfully imported/updated %d players:\n", len(imported))
				for _, player := range imported {
					fmt.Printf("- %s\n", formatPlayer(player))
				}
			}
			if len(importErrors) > 0 {
				fmt.Printf("\nEncountered %d errors:\n", len(importErrors))
				for _, message := range importErrors {
					fmt.Printf("- %s\n", message)
				}
			}
			fmt.Printf("\nImport complete: %d successes, %d failures.\n", len(imported), len(importErrors))
			return nil
		},
	}
}

func formatPlayer(player domain.Player) string {
	if player.Email != nil {
		return fmt.Sprintf("%s (Phone: %s, Email: %s)", player.Name, player.Phone, *player.Email)
	}
	return fmt.Sprintf("%s (Phone: %s)", player.Name, player.Phone)
}
