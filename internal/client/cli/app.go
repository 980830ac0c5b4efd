// Package cli implements the interactive command-line client for finledger.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/finledger/internal/client/api"
	"github.com/dmitrijs2005/finledger/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	reader   *bufio.Reader
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "guest"
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
