package compute

import (
	"fmt"
	"strings"
)

// Command is a single parsed input line
type Command struct {
	Type CommandType
	Args []string
}

// ParseCommand parses an input line into a Command.
// The command name is matched case-insensitively, arguments are kept as is.
// For SET the second argument is every token after the key joined by a single space.
func ParseCommand(input string) (Command, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Command{}, ErrEmptyCommand
	}

	cmdType := CommandType(strings.ToUpper(parts[0]))
	spec, ok := commands[cmdType]
	if !ok {
		return Command{}, fmt.Errorf("%w: '%s'. Type HELP to see available commands", ErrUnknownCommand, parts[0])
	}

	if len(parts) < spec.minTokens {
		return Command{}, fmt.Errorf("%w, usage: %s", ErrInvalidFormat, spec.usage)
	}

	cmd := Command{Type: cmdType}
	switch cmdType {
	case CommandSet:
		cmd.Args = []string{parts[1], strings.Join(parts[2:], " ")}
	case CommandGet, CommandRemove:
		cmd.Args = []string{parts[1]}
	}

	return cmd, nil
}
