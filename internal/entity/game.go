package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
)

type Status string

const (
	StatusUndecided Status = "undecided"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

// Cell display values as reported by the server.
const (
	CellUnexplored = "#"
	CellMarked     = "?"
	CellFlagged    = "F"
	CellMine       = "*"
	CellCleared    = " "
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrMalformedGame     = errors.New("malformed game state")
)

// GameState is a point-in-time snapshot of a game as reported by the server.
// Snapshots are never modified after decoding; a newer snapshot replaces an older one.
type GameState struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	StartedAt Timestamp  `json:"started_at"`
	EndedAt   *Timestamp `json:"ended_at"`
	Status    Status     `json:"game_status"`
	Mines     int        `json:"mines"`
	Board     [][]string `json:"board"`
}

func (that *GameState) IsUndecided() bool {
	return that.Status == StatusUndecided
}

func (that *GameState) IsWon() bool {
	return that.Status == StatusWon
}

func (that *GameState) IsLost() bool {
	return that.Status == StatusLost
}

func (that *GameState) IsFinished() bool {
	return that.IsWon() || that.IsLost()
}

// ConfirmUndecidedState - reports whether actions may still be sent for this game.
func (that *GameState) ConfirmUndecidedState() error {
	switch {
	case that.IsUndecided():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Validate - reports why a decoded snapshot cannot be presented, e.g. a ragged board.
func (that *GameState) Validate() error {
	switch that.Status {
	case StatusUndecided, StatusWon, StatusLost:
	default:
		return fmt.Errorf("%w: %w %q", ErrMalformedGame, ErrUnknownGameStatus, that.Status)
	}

	if that.StartedAt.IsZero() {
		return fmt.Errorf("%w: missing started_at", ErrMalformedGame)
	}

	if len(that.Board) == 0 || len(that.Board[0]) == 0 {
		return fmt.Errorf("%w: empty board", ErrMalformedGame)
	}

	cols := len(that.Board[0])
	for r, row := range that.Board {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGame, r, len(row), cols)
		}
	}

	return nil
}

// SameGame reports whether other describes the same game id with the same board dimensions.
func (that *GameState) SameGame(other *GameState) bool {
	return that.ID == other.ID && that.Rows() == other.Rows() && that.Cols() == other.Cols()
}

func (that *GameState) Rows() int {
	return len(that.Board)
}

func (that *GameState) Cols() int {
	if len(that.Board) == 0 {
		return 0
	}
	return len(that.Board[0])
}

// Cell returns the display value at row, col or an empty string when out of range.
func (that *GameState) Cell(row, col int) string {
	if row < 0 || row >= len(that.Board) || col < 0 || col >= len(that.Board[row]) {
		return ""
	}
	return that.Board[row][col]
}

// Elapsed - time between start and end, or start and now while the game is in progress.
func (that *GameState) Elapsed(now time.Time) time.Duration {
	to := now
	if that.EndedAt != nil && !that.EndedAt.IsZero() {
		to = that.EndedAt.Time
	}
	return to.Sub(that.StartedAt.Time)
}

// Timestamp accepts RFC 3339 strings and epoch milliseconds.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (that Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Time.UTC().Format(time.RFC3339Nano))
}

func (that *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		that.Time = time.Time{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTimestamp, err)
		}

		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTimestamp, err)
		}
		that.Time = parsed
		return nil
	}

	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestamp, data)
	}
	that.Time = time.UnixMilli(millis).UTC()

	return nil
}
