package compute

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/8thgencore/kvrepl/internal/storage"
)

// Handler is a struct that handles commands
type Handler struct {
	log    *slog.Logger
	engine storage.Storage
}

// NewHandler creates a new Handler
func NewHandler(log *slog.Logger, engine storage.Storage) *Handler {
	return &Handler{log: log, engine: engine}
}

// Handle parses and executes a single input line
func (h *Handler) Handle(input string) (string, error) {
	cmd, err := ParseCommand(input)
	if err != nil {
		return "", err
	}

	return h.Execute(cmd)
}

// Execute runs a parsed command against the engine and formats the response
func (h *Handler) Execute(cmd Command) (string, error) {
	h.log.Debug("Handling command", "type", cmd.Type, "args", len(cmd.Args))

	switch cmd.Type {
	case CommandSet:
		key, value := cmd.Args[0], cmd.Args[1]
		h.engine.Set(key, value)
		return fmt.Sprintf("Set: %s = %s", key, value), nil

	case CommandGet:
		key := cmd.Args[0]
		value, ok := h.engine.Get(key)
		if !ok {
			return "", notFound(key)
		}
		return fmt.Sprintf("%s: %s", key, value), nil

	case CommandRemove:
		key := cmd.Args[0]
		if _, ok := h.engine.Get(key); !ok {
			return "", notFound(key)
		}
		h.engine.Remove(key)
		return "Removed key: " + key, nil

	case CommandKeys:
		keys := h.engine.Keys()
		if len(keys) == 0 {
			return ResponseNoKeys, nil
		}
		return "Keys: " + quoteList(keys), nil

	case CommandValues:
		values := h.engine.Values()
		if len(values) == 0 {
			return ResponseNoValues, nil
		}
		return "Values: " + quoteList(values), nil

	case CommandList:
		if h.engine.IsEmpty() {
			return ResponseEmpty, nil
		}
		var b strings.Builder
		b.WriteString("Store contents:")
		for _, e := range h.engine.Iterate() {
			fmt.Fprintf(&b, "\n  %s => %s", e.Key, e.Value)
		}
		return b.String(), nil

	case CommandLen:
		return "Number of elements: " + strconv.Itoa(h.engine.Len()), nil

	case CommandClear:
		h.engine.Clear()
		return ResponseCleared, nil

	case CommandHelp:
		return HelpMessage, nil

	case CommandExit:
		return ResponseGoodbye, nil
	}

	return "", fmt.Errorf("%w: '%s'", ErrUnknownCommand, cmd.Type)
}

func notFound(key string) error {
	return fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
}

// quoteList renders items as ["a", "b"]
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
