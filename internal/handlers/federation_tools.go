package handlers

import (
	"context"
)

func (h *Handlers) federationTools() []Tool {
	return []Tool{
		{
			Name:        "add-federation-payment",
			Description: "Record a federation payment for a player.",
			Params: []Param{
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
				{Name: "payment_date", Type: "string", Required: true, Description: "Payment date (YYYY-MM-DD)"},
				{Name: "amount", Type: "number", Required: true, Description: "Payment amount"},
				{Name: "notes", Type: "string", Required: false, Description: "Optional notes"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				paymentDate, err := args.Date("payment_date")
				if err != nil {
					return nil, err
				}
				amount, err := args.Float("amount")
				if err != nil {
					return nil, err
				}
				notes, err := args.OptionalString("notes")
				if err != nil {
					return nil, err
				}
				payment, err := h.federationService.AddPayment(ctx, playerName, paymentDate, amount, notes)
				if err != nil {
					return nil, err
				}
				return payment, nil
			},
		},
		{
			Name:        "remove-last-federation-payment",
			Description: "Remove a player's most recent federation payment.",
			Params: []Param{
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
			},
			handler: func(ctx context.Context, args Args) (any, error) {
				playerName, err := args.String("player_name")
				if err != nil {
					return nil, err
				}
				payment, err := h.federationService.RemoveLastPayment(ctx, playerName)
				if err != nil {
					return nil, err
				}
				if payment == nil {
					return map[string]any{"removed": nil}, nil
				}
				return map[string]any{"removed": payment}, nil
			},
		},
		{
			Name:        "list-federation-payments",
			Description: "List a player's federation payments, most recent first.",
			Params: []Param{
				{Name: "player_name", Type: "string", Required: true, Description: "Player's name"},
				{Name: "limit", Type: "integer", Required: false, Description: "Maximum number of payments to list"},
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
				player, payments, err := h.federationService.ListPayments(ctx, playerName, int(limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"player":   player,
					"payments": payments,
				}, nil
			},
		},
	}
}
