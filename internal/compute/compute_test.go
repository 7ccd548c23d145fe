package compute

import (
	"log/slog"
	"os"
	"testing"

	"github.com/8thgencore/kvrepl/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(_ *testing.T) (*Handler, *storage.Engine) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := storage.NewEngine()
	handler := NewHandler(logger, engine)

	return handler, engine
}

func TestHandler(t *testing.T) {
	t.Run("SET command", func(t *testing.T) {
		handler, engine := setupTest(t)

		result, err := handler.Handle("SET name Alice")
		require.NoError(t, err)
		assert.Equal(t, "Set: name = Alice", result)

		value, exists := engine.Get("name")
		assert.True(t, exists)
		assert.Equal(t, "Alice", value)
	})

	t.Run("SET joins value tokens", func(t *testing.T) {
		handler, engine := setupTest(t)

		result, err := handler.Handle("SET full name John Smith")
		require.NoError(t, err)
		assert.Equal(t, "Set: full = name John Smith", result)

		value, _ := engine.Get("full")
		assert.Equal(t, "name John Smith", value)

		result, err = handler.Handle("GET full")
		require.NoError(t, err)
		assert.Equal(t, "full: name John Smith", result)
	})

	t.Run("GET command", func(t *testing.T) {
		handler, engine := setupTest(t)
		engine.Set("key1", "value1")

		result, err := handler.Handle("GET key1")
		require.NoError(t, err)
		assert.Equal(t, "key1: value1", result)
	})

	t.Run("GET nonexistent key", func(t *testing.T) {
		handler, _ := setupTest(t)

		result, err := handler.Handle("GET missing")
		require.ErrorIs(t, err, ErrKeyNotFound)
		assert.Equal(t, "key not found: 'missing'", err.Error())
		assert.Empty(t, result)
	})

	t.Run("Arguments are case-sensitive", func(t *testing.T) {
		handler, engine := setupTest(t)
		engine.Set("Key", "value")

		_, err := handler.Handle("get key")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("REMOVE command", func(t *testing.T) {
		handler, engine := setupTest(t)
		engine.Set("key1", "value1")

		result, err := handler.Handle("REMOVE key1")
		require.NoError(t, err)
		assert.Equal(t, "Removed key: key1", result)

		_, exists := engine.Get("key1")
		assert.False(t, exists)
	})

	t.Run("REMOVE absent key", func(t *testing.T) {
		handler, engine := setupTest(t)

		_, err := handler.Handle("REMOVE absent")
		require.ErrorIs(t, err, ErrKeyNotFound)
		assert.Contains(t, err.Error(), "absent")

		result, err := handler.Handle("LEN")
		require.NoError(t, err)
		assert.Equal(t, "Number of elements: 0", result)
		assert.True(t, engine.IsEmpty())
	})

	t.Run("KEYS and VALUES", func(t *testing.T) {
		handler, engine := setupTest(t)

		result, err := handler.Handle("KEYS")
		require.NoError(t, err)
		assert.Equal(t, ResponseNoKeys, result)

		result, err = handler.Handle("VALUES")
		require.NoError(t, err)
		assert.Equal(t, ResponseNoValues, result)

		engine.Set("b", "two words")
		engine.Set("a", "1")

		result, err = handler.Handle("keys")
		require.NoError(t, err)
		assert.Equal(t, `Keys: ["a", "b"]`, result)

		result, err = handler.Handle("values")
		require.NoError(t, err)
		assert.Equal(t, `Values: ["1", "two words"]`, result)
	})

	t.Run("LIST command", func(t *testing.T) {
		handler, engine := setupTest(t)

		result, err := handler.Handle("LIST")
		require.NoError(t, err)
		assert.Equal(t, ResponseEmpty, result)

		engine.Set("b", "2")
		engine.Set("a", "1")

		result, err = handler.Handle("LIST")
		require.NoError(t, err)
		assert.Equal(t, "Store contents:\n  a => 1\n  b => 2", result)
	})

	t.Run("LEN and CLEAR", func(t *testing.T) {
		handler, engine := setupTest(t)

		_, err := handler.Handle("SET a 1")
		require.NoError(t, err)
		_, err = handler.Handle("SET b 2")
		require.NoError(t, err)

		result, err := handler.Handle("LEN")
		require.NoError(t, err)
		assert.Equal(t, "Number of elements: 2", result)

		result, err = handler.Handle("CLEAR")
		require.NoError(t, err)
		assert.Equal(t, ResponseCleared, result)
		assert.True(t, engine.IsEmpty())

		result, err = handler.Handle("LEN")
		require.NoError(t, err)
		assert.Equal(t, "Number of elements: 0", result)
	})

	t.Run("Invalid commands", func(t *testing.T) {
		handler, engine := setupTest(t)
		engine.Set("key1", "value1")

		testCases := []struct {
			name    string
			command string
			wantErr error
		}{
			{"Empty command", "", ErrEmptyCommand},
			{"Unknown command", "FOO", ErrUnknownCommand},
			{"SET without value", "SET key2", ErrInvalidFormat},
			{"GET without key", "GET", ErrInvalidFormat},
			{"REMOVE without key", "REMOVE", ErrInvalidFormat},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				result, err := handler.Handle(tc.command)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, result)
			})
		}

		assert.Equal(t, []storage.Entry{{Key: "key1", Value: "value1"}}, engine.Iterate())
	})

	t.Run("HELP command", func(t *testing.T) {
		handler, _ := setupTest(t)

		result, err := handler.Handle("HELP")
		require.NoError(t, err)
		assert.Equal(t, HelpMessage, result)
	})

	t.Run("EXIT command", func(t *testing.T) {
		handler, _ := setupTest(t)

		result, err := handler.Handle("EXIT")
		require.NoError(t, err)
		assert.Equal(t, ResponseGoodbye, result)
	})

	t.Run("Execute rejects unknown type", func(t *testing.T) {
		handler, _ := setupTest(t)

		_, err := handler.Execute(Command{Type: "DEL"})
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})
}
