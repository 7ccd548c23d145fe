package main

import (
	"log/slog"
	"os"

	"github.com/8thgencore/kvrepl/internal/app"
	"github.com/8thgencore/kvrepl/internal/config"
	"github.com/8thgencore/kvrepl/pkg/logger"
	"github.com/8thgencore/kvrepl/pkg/logger/sl"
	"github.com/alecthomas/kong"
)

var version = "dev"

// CLI is the command line interface of kvrepl
type CLI struct {
	Config  string           `help:"Path to a YAML config file." type:"path" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("kvrepl"),
		kong.Description("Interactive in-memory key-value store."),
		kong.Vars{"version": version},
	)

	// Load configuration
	cfg, err := config.NewConfig(cli.Config)
	if err != nil {
		slog.Error("Failed to load config", sl.Err(err))
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Env, cfg.Logging)

	// Create and run application
	application := app.New(cfg, log, os.Stdin, os.Stdout)
	if err := application.Run(); err != nil {
		log.Error("Application error", sl.Err(err))
		os.Exit(1)
	}
}
