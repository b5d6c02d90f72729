package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-client/internal/entity"
)

const (
	cellSeparator = " | "
	rowStart      = "| "
	rowEnd        = " |"
)

type sessionDep interface {
	ApplyAction(ctx context.Context, gameID int64, row, col int, action entity.Action) (bool, error)
	FetchGame(ctx context.Context, gameID int64) (*entity.GameState, error)
}

type creatorDep interface {
	sessionDep
	CreateGame(ctx context.Context, rows, cols, mines int) (*entity.GameState, error)
}

// View presents one game and mediates the actions sent for it.
// Its snapshot is only ever replaced by a state fetched from the server after an accepted action.
type View struct {
	mu sync.Mutex

	logger  *slog.Logger
	session sessionDep
	state   *entity.GameState
	now     func() time.Time
}

type Option func(*View)

func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithClock replaces the wall clock used for the elapsed time of games in progress.
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		if now != nil {
			v.now = now
		}
	}
}

func NewView(session sessionDep, state *entity.GameState, opts ...Option) *View {
	view := &View{
		logger:  slog.Default(),
		session: session,
		state:   state,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(view)
	}

	view.logger = view.logger.With("component", "game", "game_id", state.ID)

	return view
}

// Create - asks the server for a new game and wraps it in a view.
func Create(ctx context.Context, s creatorDep, rows, cols, mines int, opts ...Option) (*View, error) {
	state, err := s.CreateGame(ctx, rows, cols, mines)
	if err != nil {
		return nil, err
	}

	return NewView(s, state, opts...), nil
}

// Fetch - loads an existing game and wraps it in a view.
func Fetch(ctx context.Context, s sessionDep, gameID int64, opts ...Option) (*View, error) {
	state, err := s.FetchGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return NewView(s, state, opts...), nil
}

func (that *View) snapshot() *entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// Snapshot returns the current state. Callers must not modify it.
func (that *View) Snapshot() *entity.GameState {
	return that.snapshot()
}

func (that *View) ID() int64 {
	return that.snapshot().ID
}

func (that *View) Status() entity.Status {
	return that.snapshot().Status
}

func (that *View) MineCount() int {
	return that.snapshot().Mines
}

// ElapsedSeconds is recomputed on every call; games in progress count up to now.
func (that *View) ElapsedSeconds() int64 {
	return int64(that.snapshot().Elapsed(that.now()) / time.Second)
}

// Render formats the board one row per line, e.g. "| # | 3 | F |".
func (that *View) Render() string {
	board := that.snapshot().Board

	lines := make([]string, 0, len(board))
	for _, row := range board {
		lines = append(lines, rowStart+strings.Join(row, cellSeparator)+rowEnd)
	}

	return strings.Join(lines, "\n")
}

func (that *View) String() string {
	return that.Render()
}

func (that *View) Mark(ctx context.Context, row, col int) (bool, error) {
	return that.act(ctx, row, col, entity.ActionMark)
}

func (that *View) Flag(ctx context.Context, row, col int) (bool, error) {
	return that.act(ctx, row, col, entity.ActionFlag)
}

func (that *View) Reveal(ctx context.Context, row, col int) (bool, error) {
	return that.act(ctx, row, col, entity.ActionReveal)
}

// act - sends the action unless the game is decided, then replaces the snapshot with the server's state.
// When the action was accepted but the refresh fails or returns another game id or board size,
// the previous snapshot is kept and ErrRefreshFailed returned.
func (that *View) act(ctx context.Context, row, col int, action entity.Action) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("action", action.String(), "row", row, "col", col)

	if err := that.state.ConfirmUndecidedState(); err != nil {
		log.Debug("action skipped", "status", string(that.state.Status))
		return false, nil
	}

	accepted, err := that.session.ApplyAction(ctx, that.state.ID, row, col, action)
	if err != nil {
		return false, fmt.Errorf("failed to %s cell (%d, %d): %w", action, row, col, err)
	}

	if !accepted {
		log.Debug("action not accepted")
		return false, nil
	}

	state, err := that.session.FetchGame(ctx, that.state.ID)
	if err != nil {
		log.Error("failed to refresh game state", "error", err)
		return false, fmt.Errorf("%w: %w", apperror.ErrRefreshFailed, err)
	}

	if !that.state.SameGame(state) {
		log.Error("refreshed state describes another game", "refreshed_id", state.ID,
			"rows", state.Rows(), "cols", state.Cols())
		return false, fmt.Errorf("%w: %w: got game %d with %dx%d board",
			apperror.ErrRefreshFailed, entity.ErrMalformedGame, state.ID, state.Rows(), state.Cols())
	}

	that.state = state
	log.Debug("game state refreshed", "status", string(state.Status))

	return true, nil
}
