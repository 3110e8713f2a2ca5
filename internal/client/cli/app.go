// Package cli implements the interactive LinkKeeper command-line client:
// a small REPL over the backend HTTP API for managing favorites and tabs.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/linkkeeper/internal/client/api"
	"github.com/dmitrijs2005/linkkeeper/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := api.NewClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
