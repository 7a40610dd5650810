package handlers

import (
	"context"
	"fmt"

	"github.com/mpalomar/ultimateteam/internal/service/registrationservice"
)

func (h *Handlers) registrationTools() []Tool {
	return []Tool{
		{
			Name:        "register-player",
			Description: "Register a player for a tournament.",
			Params: []Param{
				{Name: "tournament_id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				tournamentID, err := args.Int("tournament_id")
				if err != nil {
					return nil, err
				}
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				registration, err := h.registrationService.RegisterPlayer(ctx, tournamentID, playerName)
				if err != nil {
					return nil, err
				}
				return registration, nil
			},
		},
		{
			Name:        "unregister-player",
			Description: "Unregister a player from a tournament.",
			Params: []Param{
				{Name: "tournament_id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				tournamentID, err := args.Int("tournament_id")
				if err != nil {
					return nil, err
				}
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				if err := h.registrationService.UnregisterPlayer(ctx, tournamentID, playerName); err != nil {
					return nil, err
				}
				return fmt.Sprintf("Player '%s' unregistered from tournament %d", playerName, tournamentID), nil
			},
		},
		{
			Name:        "list-tournament-players",
			Description: "List all players registered for a tournament.",
			Params: []Param{
				{Name: "tournament_id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "limit", Type: "integer", Required: false, Description: "Maximum number of players to list"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				tournamentID, err := args.Int("tournament_id")
				if err != nil {
					return nil, err
				}
				limit, err := args.IntOr("limit", defaultListLimit)
				if err != nil {
					return nil, err
				}
				tournament, registrations, err := h.registrationService.ListTournamentPlayers(ctx, tournamentID, int(limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"tournament": tournament,
					"players":    registrations,
				}, nil
			},
		},
		{
			Name:        "list-player-tournaments",
			Description: "List all tournaments a player is registered for.",
			Params: []Param{
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
				{Name: "limit", Type: "integer", Required: false, Description: "Maximum number of tournaments to list"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				limit, err := args.IntOr("limit", defaultListLimit)
				if err != nil {
					return nil, err
				}
				player, tournaments, err := h.registrationService.ListPlayerTournaments(ctx, playerName, int(limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"player":      player,
					"tournaments": tournaments,
				}, nil
			},
		},
		{
			Name:        "mark-payment",
			Description: "Mark a player's tournament registration as paid.",
			Params: []Param{
				{Name: "tournament_id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
				{Name: "payment_date", Type: "string", Required: false, Description: "Payment date (YYYY-MM-DD), defaults to today"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				tournamentID, err := args.Int("tournament_id")
				if err != nil {
					return nil, err
				}
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				paymentDate, err := args.OptionalDate("payment_date")
				if err != nil {
					return nil, err
				}
				registration, err := h.registrationService.MarkPayment(ctx, tournamentID, playerName, paymentDate)
				if err != nil {
					return nil, err
				}
				return registration, nil
			},
		},
		{
			Name:        "clear-payment",
			Description: "Clear a player's tournament payment status.",
			Params: []Param{
				{Name: "tournament_id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				tournamentID, err := args.Int("tournament_id")
				if err != nil {
					return nil, err
				}
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				registration, err := h.registrationService.ClearPayment(ctx, tournamentID, playerName)
				if err != nil {
					return nil, err
				}
				return registration, nil
			},
		},
		{
			Name:        "search-paid-players",
			Description: "Search players who have paid for a tournament, with fuzzy name matching.",
			Params: []Param{
				{Name: "tournament_id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "name_query", Type: "string", Required: false, Description: "Name or name fragment to match"},
				{Name: "match_threshold", Type: "number", Required: false, Description: "Minimum match score between 0 and 1"},
				{Name: "limit", Type: "integer", Required: false, Description: "Maximum number of players to return"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				tournamentID, err := args.Int("tournament_id")
				if err != nil {
					return nil, err
				}
				query, err := args.StringOr("name_query", "")
				if err != nil {
					return nil, err
				}
				threshold, err := args.FloatOr("match_threshold", registrationservice.DefaultMatchThreshold)
				if err != nil {
					return nil, err
				}
				limit, err := args.IntOr("limit", defaultListLimit)
				if err != nil {
					return nil, err
				}
				tournament, players, err := h.registrationService.SearchPaidPlayers(ctx, tournamentID, query, threshold, int(limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"tournament": tournament,
					"players":    players,
				}, nil
			},
		},
	}
}
