package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-client/internal/config"
	"github.com/rocketscienceinc/minesweeper-client/internal/entity"
)

var connection = []string{"-h", "localhost", "-p", "8080", "-u", "alice", "-pw", "pw"}

func parse(t *testing.T, args ...string) (*Command, string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd, err := Parse(append(append([]string{}, connection...), args...), &out)

	return cmd, out.String(), err
}

func TestParse(t *testing.T) {
	t.Run("New game", func(t *testing.T) {
		cmd, _, err := parse(t, "-n", "8,9,10")

		require.NoError(t, err)
		assert.Equal(t, KindNewGame, cmd.Kind)
		assert.Equal(t, 8, cmd.Rows)
		assert.Equal(t, 9, cmd.Cols)
		assert.Equal(t, 10, cmd.Mines)
		assert.Equal(t, "localhost", cmd.Host)
		assert.Equal(t, "8080", cmd.Port)
		assert.Equal(t, "alice", cmd.Username)
		assert.Equal(t, "pw", cmd.Password)
		assert.Equal(t, DefaultConfigPath, cmd.ConfigPath)
	})

	t.Run("Get game with long option names", func(t *testing.T) {
		var out bytes.Buffer
		cmd, err := Parse([]string{"--host", "srv", "--port", "1", "--username", "bob", "--password", "x", "--get", "42"}, &out)

		require.NoError(t, err)
		assert.Equal(t, KindGetGame, cmd.Kind)
		assert.Equal(t, int64(42), cmd.GameID)
		assert.Equal(t, "srv", cmd.Host)
		assert.Equal(t, "bob", cmd.Username)
	})

	t.Run("List games", func(t *testing.T) {
		cmd, _, err := parse(t, "-l")

		require.NoError(t, err)
		assert.Equal(t, KindListGames, cmd.Kind)
	})

	t.Run("Cell actions", func(t *testing.T) {
		tests := []struct {
			flag   string
			action entity.Action
		}{
			{"-m", entity.ActionMark},
			{"-mark", entity.ActionMark},
			{"-f", entity.ActionFlag},
			{"-s", entity.ActionReveal},
			{"-swipe", entity.ActionReveal},
			{"-reveal", entity.ActionReveal},
		}

		for _, tt := range tests {
			cmd, _, err := parse(t, tt.flag, "3, 1, 2")

			require.NoError(t, err, tt.flag)
			assert.Equal(t, KindAction, cmd.Kind)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, int64(3), cmd.GameID)
			assert.Equal(t, 1, cmd.Row)
			assert.Equal(t, 2, cmd.Col)
		}
	})

	t.Run("Requires an operation", func(t *testing.T) {
		_, out, err := parse(t)

		require.ErrorIs(t, err, apperror.ErrUsage)
		assert.ErrorIs(t, err, errNoOperation)
		assert.Contains(t, out, "Parsing failed.")
		assert.Contains(t, out, "Usage of "+Name)
	})

	t.Run("Rejects more than one operation", func(t *testing.T) {
		_, _, err := parse(t, "-l", "-g", "1")

		require.ErrorIs(t, err, apperror.ErrUsage)
		assert.ErrorIs(t, err, errManyOperations)
	})

	t.Run("Rejects malformed values", func(t *testing.T) {
		for _, args := range [][]string{
			{"-n", "8,8"},
			{"-n", "8,x,10"},
			{"-g", "abc"},
			{"-m", "1,2"},
			{"-l", "extra"},
		} {
			_, _, err := parse(t, args...)

			require.ErrorIs(t, err, apperror.ErrUsage, args)
			assert.ErrorIs(t, err, errBadValue, args)
		}
	})

	t.Run("Unknown flag is a usage error", func(t *testing.T) {
		_, out, err := parse(t, "-unknown")

		require.ErrorIs(t, err, apperror.ErrUsage)
		assert.Contains(t, out, "flag provided but not defined")
	})
}

func TestCommand_Resolve(t *testing.T) {
	t.Run("Command line wins over config", func(t *testing.T) {
		cmd := &Command{Host: "cli-host", Port: "9000", Username: "alice", Password: "pw"}

		err := cmd.Resolve(&config.Config{Host: "conf-host", Port: "1", Username: "bob", Password: "x"})

		require.NoError(t, err)
		assert.Equal(t, "cli-host", cmd.Host)
		assert.Equal(t, "9000", cmd.Port)
		assert.Equal(t, "alice", cmd.Username)
	})

	t.Run("Config fills missing options", func(t *testing.T) {
		cmd := &Command{Username: "alice"}

		err := cmd.Resolve(&config.Config{Host: "conf-host", Port: "8080", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "conf-host", cmd.Host)
		assert.Equal(t, "8080", cmd.Port)
		assert.Equal(t, "pw", cmd.Password)
	})

	t.Run("Reports every missing option", func(t *testing.T) {
		cmd := &Command{Host: "h"}

		err := cmd.Resolve(&config.Config{})

		require.ErrorIs(t, err, apperror.ErrUsage)
		assert.ErrorIs(t, err, errMissingOption)
		assert.Contains(t, err.Error(), "port, username, password")
	})

	t.Run("Rejects a non numeric port", func(t *testing.T) {
		cmd := &Command{Host: "h", Port: "http", Username: "u", Password: "p"}

		err := cmd.Resolve(&config.Config{})

		require.ErrorIs(t, err, apperror.ErrUsage)
		assert.ErrorIs(t, err, errBadValue)
	})
}
