package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/lunamark/spotr"
	"github.com/lunamark/spotr/internal/config"
	"github.com/lunamark/spotr/internal/store"
)

// tokenAccount is the key the CLI stores its single refresh token under.
const tokenAccount = "default"

// Runner carries the dependencies shared by all CLI actions.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// loadConfig reads the config file named by the command's --config flag,
// falling back to the embedded defaults when the file does not exist.
func (r *Runner) loadConfig(cmd *cli.Command) *config.Config {
	path := cmd.String("config")
	if _, err := os.Stat(path); err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		r.logger.Warnf("falling back to default config: %v", err)
		return config.Default()
	}
	return cfg
}

// credentials resolves client credentials: environment variables win, then
// the config file.
func (r *Runner) credentials(cfg *config.Config) (spotr.Credentials, error) {
	if creds, err := spotr.CredentialsFromEnv(); err == nil {
		return creds, nil
	}
	return spotr.NewCredentials(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
}

// client builds a spotr client. When userAuth is set, a stored refresh token
// is required and seeds the authorization-code flow.
func (r *Runner) client(cmd *cli.Command, userAuth bool) (*spotr.Client, *config.Config, error) {
	cfg := r.loadConfig(cmd)

	creds, err := r.credentials(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []spotr.Option{
		spotr.WithLogger(r.logger),
		spotr.WithRedirectURI(cfg.Spotify.RedirectURI),
	}

	if userAuth {
		ts, err := store.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		defer ts.Close()

		refresh, err := ts.Load(tokenAccount)
		if err != nil {
			return nil, nil, fmt.Errorf("not logged in, run `spotr login` first: %w", err)
		}
		opts = append(opts, spotr.WithRefreshToken(refresh))
	}

	return spotr.New(creds, opts...), cfg, nil
}
