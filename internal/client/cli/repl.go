package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Balance(ctx context.Context) error
	Statement(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

func printHelp(loggedIn bool) {
	if !loggedIn {
		printlnFn("commands: help, register, login, exit")
		return
	}
	printlnFn("commands: help, deposit, withdraw, balance, statement, profile, logout, exit")
}

// runREPL starts a simple read–eval–print loop for the finledger CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that require an authenticated session are rejected with a hint
// until the user has logged in. Any errors returned by command handlers are
// printed and the loop continues; a failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {

	for {
		fmt.Printf("%s> ", statusFn())

		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd := strings.Fields(line)[0]

		var err error

		switch cmd {
		case "exit", "quit":
			return
		case "help":
			printHelp(a.isLoggedIn())
			continue
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "deposit", "withdraw", "balance", "statement", "profile", "logout":
			if !a.isLoggedIn() {
				printlnFn("please login first")
				continue
			}
			switch cmd {
			case "deposit":
				err = a.Deposit(ctx)
			case "withdraw":
				err = a.Withdraw(ctx)
			case "balance":
				err = a.Balance(ctx)
			case "statement":
				err = a.Statement(ctx)
			case "profile":
				err = a.Profile(ctx)
			case "logout":
				err = a.Logout(ctx)
			}
		default:
			printlnFn("unknown command: " + cmd)
			continue
		}

		if err != nil {
			printlnFn("error: " + err.Error())
		}
	}
}
