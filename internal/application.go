package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper-client/internal/command"
	"github.com/rocketscienceinc/minesweeper-client/internal/config"
	"github.com/rocketscienceinc/minesweeper-client/internal/entity"
	"github.com/rocketscienceinc/minesweeper-client/internal/game"
	"github.com/rocketscienceinc/minesweeper-client/internal/session"
	"github.com/rocketscienceinc/minesweeper-client/internal/transport/rest"
)

const msgInvalidCredentials = "Invalid username or password"

// RunApp - logs in and runs exactly one command, writing its result to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, cmd *command.Command, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithTimeout(ctx, conf.RequestTimeout)
	defer cancel()

	client := rest.New(logger, cmd.Host, cmd.Port, conf.RequestTimeout)
	sess := session.New(logger, client)

	if !sess.Login(ctx, cmd.Username, cmd.Password) {
		fmt.Fprintln(out, msgInvalidCredentials)
		return nil
	}
	log.Debug("logged in", "username", cmd.Username)

	switch cmd.Kind {
	case command.KindListGames:
		ids, err := sess.ListGames(ctx)
		if err != nil {
			return fmt.Errorf("failed to list games: %w", err)
		}
		fmt.Fprintln(out, formatIDs(ids))

	case command.KindNewGame:
		view, err := game.Create(ctx, sess, cmd.Rows, cmd.Cols, cmd.Mines, game.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}
		dumpGame(out, view)

	case command.KindGetGame:
		view, err := game.Fetch(ctx, sess, cmd.GameID, game.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}
		dumpGame(out, view)

	case command.KindAction:
		view, err := game.Fetch(ctx, sess, cmd.GameID, game.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		applied, err := applyAction(ctx, view, cmd)
		if err != nil {
			return fmt.Errorf("failed to %s cell: %w", cmd.Action, err)
		}
		if !applied {
			fmt.Fprintln(out, notAppliedReason(view, cmd))
		}
		dumpGame(out, view)

	default:
		return fmt.Errorf("unsupported command kind %d", cmd.Kind)
	}

	return nil
}

func applyAction(ctx context.Context, view *game.View, cmd *command.Command) (bool, error) {
	switch cmd.Action {
	case entity.ActionMark:
		return view.Mark(ctx, cmd.Row, cmd.Col)
	case entity.ActionFlag:
		return view.Flag(ctx, cmd.Row, cmd.Col)
	case entity.ActionReveal:
		return view.Reveal(ctx, cmd.Row, cmd.Col)
	default:
		return false, fmt.Errorf("%w: %d", entity.ErrUnknownAction, int(cmd.Action))
	}
}

func notAppliedReason(view *game.View, cmd *command.Command) string {
	if view.Status() != entity.StatusUndecided {
		return fmt.Sprintf("Cannot %s cell (%d, %d): game is %s", cmd.Action, cmd.Row, cmd.Col, view.Status())
	}
	return fmt.Sprintf("Server rejected %s of cell (%d, %d)", cmd.Action, cmd.Row, cmd.Col)
}

func dumpGame(out io.Writer, view *game.View) {
	fmt.Fprintf(out, "Game: %d\n", view.ID())
	fmt.Fprintf(out, "Play time: %d seconds\n", view.ElapsedSeconds())
	fmt.Fprintln(out, view.Render())
	fmt.Fprintf(out, "Status: %s\n", view.Status())
	fmt.Fprintf(out, "Mines count: %d\n", view.MineCount())
}

// formatIDs prints ids as "[1, 2, 3]".
func formatIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
