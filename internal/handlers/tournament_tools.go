package handlers

import (
	"context"
	"fmt"

	"github.com/mpalomar/ultimateteam/internal/domain"
)

func (h *Handlers) tournamentTools() []Tool {
	return []Tool{
		{
			Name:        "add-tournament",
			Description: "Add a new tournament to the database.",
			Params: []Param{
				{Name: "name", Type: "string", Required: true, Description: "Tournament name"},
				{Name: "location", Type: "string", Required: true, Description: "Tournament location"},
				{Name: "date", Type: "string", Required: true, Description: "Tournament date (YYYY-MM-DD)"},
				{Name: "surface", Type: "string", Required: true, Description: "Playing surface (grass or beach)"},
				{Name: "registration_deadline", Type: "string", Required: true, Description: "Registration deadline (YYYY-MM-DD)"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				name, err := args.String("name")
				if err != nil {
					return nil, err
				}
				location, err := args.String("location")
				if err != nil {
					return nil, err
				}
				date, err := args.Date("date")
				if err != nil {
					return nil, err
				}
				surface, err := args.String("surface")
				if err != nil {
					return nil, err
				}
				deadline, err := args.Date("registration_deadline")
				if err != nil {
					return nil, err
				}
				tournament, err := h.tournamentService.AddTournament(ctx, name, location, date, domain.Surface(surface), deadline)
				if err != nil {
					return nil, err
				}
				return tournament, nil
			},
		},
		{
			Name:        "list-tournaments",
			Description: "List tournaments in the database.",
			Params: []Param{
				{Name: "limit", Type: "integer", Required: false, Description: "Maximum number of tournaments to list"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				limit, err := args.IntOr("limit", defaultListLimit)
				if err != nil {
					return nil, err
				}
				tournaments, err := h.tournamentService.ListTournaments(ctx, int(limit))
				if err != nil {
					return nil, err
				}
				return tournaments, nil
			},
		},
		{
			Name:        "update-tournament",
			Description: "Update an existing tournament; only supplied fields change.",
			Params: []Param{
				{Name: "id", Type: "integer", Required: true, Description: "Tournament ID"},
				{Name: "name", Type: "string", Required: false, Description: "Tournament name"},
				{Name: "location", Type: "string", Required: false, Description: "Tournament location"},
				{Name: "date", Type: "string", Required: false, Description: "Tournament date (YYYY-MM-DD)"},
				{Name: "surface", Type: "string", Required: false, Description: "Playing surface (grass or beach)"},
				{Name: "registration_deadline", Type: "string", Required: false, Description: "Registration deadline (YYYY-MM-DD)"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				id, err := args.Int("id")
				if err != nil {
					return nil, err
				}
				upd := domain.TournamentUpdate{}
				if upd.Name, err = args.OptionalString("name"); err != nil {
					return nil, err
				}
				if upd.Location, err = args.OptionalString("location"); err != nil {
					return nil, err
				}
				if upd.Date, err = args.OptionalDate("date"); err != nil {
					return nil, err
				}
				surface, err := args.OptionalString("surface")
				if err != nil {
					return nil, err
				}
				if surface != nil {
					s := domain.Surface(*surface)
					upd.Surface = &s
				}
				if upd.RegistrationDeadline, err = args.OptionalDate("registration_deadline"); err != nil {
					return nil, err
				}
				tournament, err := h.tournamentService.UpdateTournament(ctx, id, upd)
				if err != nil {
					return nil, err
				}
				return tournament, nil
			},
		},
		{
			Name:        "remove-tournament",
			Description: "Remove a tournament from the database.",
			Params: []Param{
				{Name: "id", Type: "integer", Required: true, Description: "ID of the tournament to remove"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				id, err := args.Int("id")
				if err != nil {
					return nil, err
				}
				if err := h.tournamentService.RemoveTournament(ctx, id); err != nil {
					return nil, err
				}
				return fmt.Sprintf("Tournament %d removed successfully", id), nil
			},
		},
	}
}
