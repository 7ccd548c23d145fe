// Package sl holds slog attribute helpers
package sl

import "log/slog"

// Err returns a slog.Attr with the error message
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// SessionID returns a slog.Attr tagging records with a session id
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}
