package handlers

import (
	"context"
	"fmt"
)

const defaultListLimit = 1000

func (h *Handlers) playerTools() []Tool {
	return []Tool{
		{
			Name:        "add-player",
			Description: "Add a new player to the database.",
			Params: []Param{
				{Name: "name", Type: "string", Required: true, Description: "Player's name"},
				{Name: "phone", Type: "string", Required: true, Description: "Player's phone number"},
				{Name: "email", Type: "string", Required: false, Description: "Player's email address"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				name, err := args.String("name")
				if err != nil {
					return nil, err
				}
				phone, err := args.String("phone")
				if err != nil {
					return nil, err
				}
				email, err := args.OptionalString("email")
				if err != nil {
					return nil, err
				}
				player, err := h.playerService.AddPlayer(ctx, name, phone, email)
				if err != nil {
					return nil, err
				}
				return player, nil
			},
		},
		{
			Name:        "list-players",
			Description: "List players in the database.",
			Params: []Param{
				{Name: "limit", Type: "integer", Required: false, Description: "Maximum number of players to list"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				limit, err := args.IntOr("limit", defaultListLimit)
				if err != nil {
					return nil, err
				}
				players, err := h.playerService.ListPlayers(ctx, int(limit))
				if err != nil {
					return nil, err
				}
				return players, nil
			},
		},
		{
			Name:        "remove-player",
			Description: "Remove a player from the database.",
			Params: []Param{
				{Name: "name", Type: "string", Required: true, Description: "Name of the player to remove"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				name, err := args.String("name")
				if err != nil {
					return nil, err
				}
				if err := h.playerService.RemovePlayer(ctx, name); err != nil {
					return nil, err
				}
				return fmt.Sprintf("Player '%s' removed successfully", name), nil
			},
		},
		{
			Name:        "backup",
			Description: "Backup the database to a file.",
			Params: []Param{
				{Name: "backup_path", Type: "string", Required: true, Description: "Path to save the backup file"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				path, err := args.String("backup_path")
				if err != nil {
					return nil, err
				}
				if err := h.playerService.Backup(ctx, path); err != nil {
					return nil, err
				}
				return fmt.Sprintf("Successfully backed up database to %s", path), nil
			},
		},
		{
			Name:        "import-players",
			Description: "Import players from a CSV file, updating existing players. Recognized headers: name/nombre, phone/telefono, email.",
			Params: []Param{
				{Name: "csv_path", Type: "string", Required: true, Description: "Path to CSV file with player data"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				path, err := args.String("csv_path")
				if err != nil {
					return nil, err
				}
				imported, importErrors, err := h.playerService.ImportPlayers(ctx, path)
				if err != nil {
					return nil, err
				}
				if importErrors == nil {
					importErrors = []string{}
				}
				return map[string]any{
					"imported": imported,
					"errors":   importErrors,
				}, nil
			},
		},
	}
}
