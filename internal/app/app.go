package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/8thgencore/kvrepl/internal/compute"
	"github.com/8thgencore/kvrepl/internal/config"
	"github.com/8thgencore/kvrepl/internal/session"
	"github.com/8thgencore/kvrepl/internal/storage"
	"github.com/8thgencore/kvrepl/pkg/logger/sl"
	"github.com/google/uuid"
)

// App represents the main application
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	session *session.Session
}

// New creates a new instance of the application.
// The session reads commands from in and writes responses to out.
func New(cfg *config.Config, log *slog.Logger, in io.Reader, out io.Writer) *App {
	// Tag every record of this session
	log = log.With(sl.SessionID(uuid.NewString()))

	// Initialize storage engine
	engine := storage.NewEngine()

	// Initialize command handler
	handler := compute.NewHandler(log, engine)

	// Initialize session
	sess := session.New(log, &cfg.Session, handler, in, out)

	return &App{
		cfg:     cfg,
		log:     log,
		session: sess,
	}
}

// Run starts the application and blocks until the session ends
func (a *App) Run() error {
	a.log.Info("Starting application", "env", a.cfg.Env)

	if err := a.session.Run(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}
