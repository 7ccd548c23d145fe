package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/8thgencore/kvrepl/internal/compute"
	"github.com/8thgencore/kvrepl/internal/config"
	"github.com/8thgencore/kvrepl/pkg/logger/sl"
)

// State is the lifecycle state of a session
type State int

const (
	// Running accepts commands
	Running State = iota
	// Stopped is terminal, reached only through EXIT
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const initialBufferSize = 4096

// Session is the interactive read-eval-print loop over a handler
type Session struct {
	log     *slog.Logger
	config  *config.SessionConfig
	handler *compute.Handler
	scanner *bufio.Scanner
	out     io.Writer
	state   State
}

// New creates a new session reading commands from in and writing responses to out
func New(log *slog.Logger, cfg *config.SessionConfig, handler *compute.Handler, in io.Reader, out io.Writer) *Session {
	maxLine := bufio.MaxScanTokenSize
	switch {
	case cfg.MaxLineSizeBytes > uint64(math.MaxInt):
		maxLine = math.MaxInt
	case cfg.MaxLineSizeBytes > 0:
		maxLine = int(cfg.MaxLineSizeBytes)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, min(initialBufferSize, maxLine)), maxLine)

	return &Session{
		log:     log,
		config:  cfg,
		handler: handler,
		scanner: scanner,
		out:     out,
		state:   Running,
	}
}

// State returns the current session state
func (s *Session) State() State {
	return s.state
}

// Run reads and executes commands until EXIT or end of input.
// Only a failure to read input is returned as an error.
func (s *Session) Run() error {
	s.log.Info("Session started")

	if !s.config.Quiet {
		fmt.Fprintln(s.out, compute.WelcomeMessage)
		fmt.Fprintln(s.out, compute.HelpMessage)
	}

	for s.state == Running {
		fmt.Fprint(s.out, s.config.Prompt+" ")

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				s.log.Error("Failed to read input", sl.Err(err))
				return fmt.Errorf("failed to read input: %w", err)
			}

			// end of input
			fmt.Fprintln(s.out)
			s.log.Info("Input closed, ending session")
			return nil
		}

		s.process(s.scanner.Text())
	}

	s.log.Info("Session stopped")

	return nil
}

// process executes a single line and prints the result
func (s *Session) process(line string) {
	cmd, err := compute.ParseCommand(line)
	if errors.Is(err, compute.ErrEmptyCommand) {
		return
	}
	if err != nil {
		s.reportError(err)
		return
	}

	response, err := s.handler.Execute(cmd)
	if err != nil {
		s.reportError(err)
		return
	}

	fmt.Fprintln(s.out, response)

	if cmd.Type == compute.CommandExit {
		s.state = Stopped
	}
}

func (s *Session) reportError(err error) {
	s.log.Debug("Command failed", sl.Err(err))
	fmt.Fprintf(s.out, "ERROR: %s\n", err)
}
