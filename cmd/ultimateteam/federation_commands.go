package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mpalomar/ultimateteam/internal/domain"
	"github.com/mpalomar/ultimateteam/internal/store"
)

func newAddFederationPaymentCommand() *cli.Command {
	return &cli.Command{
		Name:  "add-federation-payment",
		Usage: "record a federation payment for a player",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
			&cli.Float64Flag{Name: "amount", Aliases: []string{"a"}, Usage: "payment amount", Required: true},
			&cli.StringFlag{Name: "payment-date", Aliases: []string{"d"}, Usage: "payment date (YYYY-MM-DD), defaults to today"},
			&cli.StringFlag{Name: "notes", Usage: "free-form notes for the payment"},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			paymentDate := time.Now().UTC()
			if c.IsSet("payment-date") {
				paymentDate, err = parseDateFlag(c, "payment-date")
				if err != nil {
					return fail(err)
				}
			}
			var notes *string
			if c.IsSet("notes") {
				value := c.String("notes")
				notes = &value
			}
			payment, err := services.FederationService.AddPayment(c.Context, c.String("player-name"), paymentDate, c.Float64("amount"), notes)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Added federation payment of %.2f for '%s' (date: %s)\n",
				payment.Amount, payment.PlayerName, payment.PaymentDate.Format(store.DateLayout))
			return nil
		},
	}
}

func newRemoveLastFederationPaymentCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove-last-federation-payment",
		Usage: "remove a player's most recent federation payment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			playerName := c.String("player-name")
			payment, err := services.FederationService.RemoveLastPayment(c.Context, playerName)
			if err != nil {
				return fail(err)
			}
			if payment == nil {
				fmt.Printf("No federation payments found for '%s'\n", playerName)
				return nil
			}
			fmt.Printf("Removed federation payment of %.2f for '%s' (date: %s)\n",
				payment.Amount, payment.PlayerName, payment.PaymentDate.Format(store.DateLayout))
			return nil
		},
	}
}

func newListFederationPaymentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-federation-payments",
		Usage: "list a player's federation payments",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player-name", Aliases: []string{"p"}, Usage: "player name", Required: true},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of payments to list", Value: 1000},
		},
		Action: func(c *cli.Context) error {
			services, err := buildServices(c)
			if err != nil {
				return fail(err)
			}
			player, payments, err := services.FederationService.ListPayments(c.Context, c.String("player-name"), c.Int("limit"))
			if err != nil {
				return fail(err)
			}
			if len(payments) == 0 {
				fmt.Printf("No federation payments found for '%s'\n", player.Name)
				return nil
			}
			fmt.Printf("Federation payments for '%s':\n", player.Name)
			var total float64
			for _, payment := range payments {
				printFederationPayment(payment)
				total += payment.Amount
			}
			fmt.Printf("Total: %.2f\n", total)
			return nil
		},
	}
}

func printFederationPayment(p domain.FederationPayment) {
	line := fmt.Sprintf("- %.2f on %s", p.Amount, p.PaymentDate.Format(store.DateLayout))
	if p.Notes != nil {
		line += fmt.Sprintf(" (%s)", *p.Notes)
	}
	fmt.Println(line)
}
