package compute

import "errors"

// ErrEmptyCommand is returned for a blank input line
var ErrEmptyCommand = errors.New("empty command")

// ErrKeyNotFound is an error that occurs when the key is not found
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidFormat is an error that occurs when a command has too few arguments
var ErrInvalidFormat = errors.New("invalid command format")

// ErrUnknownCommand is an error that occurs when the command is unknown
var ErrUnknownCommand = errors.New("unrecognized command")
