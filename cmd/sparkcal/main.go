package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli/posts"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/cli/system"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/config"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	apperrors "github.com/PauloHenriqueJr/storyspark-sub002/internal/errors"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/keyring"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/logger"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Post   struct {
		Add    posts.AddCmd    `cmd:"" help:"Schedule a new post."`
		List   posts.ListCmd   `cmd:"" help:"List scheduled posts."`
		Delete posts.DeleteCmd `cmd:"" help:"Delete a post."`
		Import posts.ImportCmd `cmd:"" help:"Import posts from an ICS file."`
		Export posts.ExportCmd `cmd:"" help:"Export posts to ICS."`
	} `cmd:"" help:"Manage posts."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a database connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal scheduling calendar for social media posts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	connStr := resolveDatabase(cfg)
	store, err := newStore(connStr)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	// Commands other than init and keyring management expect an existing
	// database.
	cmdPath := ctx.Command()
	if !strings.HasPrefix(cmdPath, "init") && !strings.HasPrefix(cmdPath, "keyring") {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

// resolveDatabase settles the connection target: environment variable first,
// then OS keyring, then the config file.
func resolveDatabase(cfg config.Config) string {
	if env := os.Getenv("SPARKCAL_DB_CONNECTION"); env != "" {
		return env
	}
	if connStr, err := keyring.GetConnectionString(); err == nil {
		return connStr
	}
	return cfg.Database
}

func newStore(connStr string) (storage.Provider, error) {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		return storage.NewPostgresStore(connStr), nil
	}
	path, err := config.ExpandPath(connStr)
	if err != nil {
		return nil, err
	}
	return storage.NewSQLiteStore(path), nil
}
