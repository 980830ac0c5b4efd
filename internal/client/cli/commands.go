package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts
// to create a new account on the server.
//
// On success it prints "Success! You can now login." and returns nil.
// Any I/O or API error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.api.Register(ctx, name, email, string(password)); err != nil {
		return err
	}

	printlnFn("Success! You can now login.")
	return nil
}

// Login prompts the user for credentials and authenticates against the
// server. On success the access token is stored on the API client and the
// account name is shown in the REPL prompt.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.api.Login(ctx, email, string(password)); err != nil {
		return err
	}

	profile, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}

	a.userName = profile.Name
	printlnFn("Login successful")
	return nil
}

// Logout discards the access token and returns the REPL to guest mode.
func (a *App) Logout(_ context.Context) error {
	a.api.ClearAccessToken()
	a.userName = ""
	printlnFn("Logged out")
	return nil
}

func (a *App) getAmount() (decimal.Decimal, error) {
	raw, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return decimal.Decimal{}, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

// Deposit prompts for an amount and a description and records a deposit.
func (a *App) Deposit(ctx context.Context) error {
	amount, err := a.getAmount()
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	st, err := a.api.Deposit(ctx, amount, description)
	if err != nil {
		return err
	}

	printStatement(st)
	return nil
}

// Withdraw prompts for an amount and a description and records a withdrawal.
func (a *App) Withdraw(ctx context.Context) error {
	amount, err := a.getAmount()
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	st, err := a.api.Withdraw(ctx, amount, description)
	if err != nil {
		return err
	}

	printStatement(st)
	return nil
}

// Balance fetches and prints the full statement history and the current balance.
func (a *App) Balance(ctx context.Context) error {
	b, err := a.api.Balance(ctx)
	if err != nil {
		return err
	}

	for i := range b.Statements {
		printStatement(&b.Statements[i])
	}
	printlnFn("balance: " + b.Balance.String())
	return nil
}

// Statement prompts for a statement id and prints the matching operation.
func (a *App) Statement(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter statement id", os.Stdout)
	if err != nil {
		return err
	}

	st, err := a.api.Statement(ctx, id)
	if err != nil {
		return err
	}

	printStatement(st)
	return nil
}

// Profile fetches and prints the authenticated user's account details.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("id: %s\nname: %s\nemail: %s\ncreated: %s",
		p.ID, p.Name, p.Email, p.CreatedAt.Format("2006-01-02 15:04:05")))
	return nil
}

func printStatement(st *api.Statement) {
	printlnFn(fmt.Sprintf("%s  %-8s %12s  %s",
		st.CreatedAt.Format("2006-01-02 15:04:05"), st.OperationType, st.Amount.String(), st.Description))
}
