package suite

import (
	"errors"
	"strconv"
	"time"

	"github.com/rocketscienceinc/minesweeper-client/internal/entity"
)

var (
	ErrInvalidCell   = errors.New("invalid cell")
	ErrInvalidSize   = errors.New("invalid board size")
	ErrGameDecided   = errors.New("game is already decided")
	ErrCellRevealed  = errors.New("cell is already revealed")
	ErrUnknownStatus = errors.New("unknown cell status")
)

// minefield is the server-side state of one game. Mines occupy the last cells in row-major order
// so that tests know the layout without inspecting the server.
type minefield struct {
	id        int64
	owner     int64
	rows      int
	cols      int
	mines     int
	mined     [][]bool
	display   [][]string
	status    entity.Status
	startedAt time.Time
	endedAt   *time.Time
}

func newMinefield(id, owner int64, rows, cols, mines int, now time.Time) (*minefield, error) {
	if rows <= 0 || cols <= 0 || mines < 0 || mines >= rows*cols {
		return nil, ErrInvalidSize
	}

	field := &minefield{
		id:        id,
		owner:     owner,
		rows:      rows,
		cols:      cols,
		mines:     mines,
		mined:     make([][]bool, rows),
		display:   make([][]string, rows),
		status:    entity.StatusUndecided,
		startedAt: now,
	}

	for r := range rows {
		field.mined[r] = make([]bool, cols)
		field.display[r] = make([]string, cols)
		for c := range cols {
			field.display[r][c] = entity.CellUnexplored
			field.mined[r][c] = r*cols+c >= rows*cols-mines
		}
	}

	return field, nil
}

func (that *minefield) apply(row, col int, status string, now time.Time) error {
	if that.status != entity.StatusUndecided {
		return ErrGameDecided
	}

	if row < 0 || row >= that.rows || col < 0 || col >= that.cols {
		return ErrInvalidCell
	}

	current := that.display[row][col]
	if current != entity.CellUnexplored && current != entity.CellMarked && current != entity.CellFlagged {
		return ErrCellRevealed
	}

	switch status {
	case entity.CellMarked, entity.CellFlagged:
		that.display[row][col] = status
	case entity.CellUnexplored:
		that.display[row][col] = entity.CellUnexplored
	case entity.CellCleared:
		that.reveal(row, col, now)
	default:
		return ErrUnknownStatus
	}

	return nil
}

func (that *minefield) reveal(row, col int, now time.Time) {
	if that.mined[row][col] {
		that.display[row][col] = entity.CellMine
		that.finish(entity.StatusLost, now)
		return
	}

	that.flood(row, col)

	if that.cleared() {
		that.finish(entity.StatusWon, now)
	}
}

func (that *minefield) flood(row, col int) {
	queue := [][2]int{{row, col}}

	for len(queue) > 0 {
		r, c := queue[0][0], queue[0][1]
		queue = queue[1:]

		if that.display[r][c] != entity.CellUnexplored && that.display[r][c] != entity.CellMarked {
			continue
		}

		count := that.adjacentMines(r, c)
		if count > 0 {
			that.display[r][c] = strconv.Itoa(count)
			continue
		}

		that.display[r][c] = entity.CellCleared
		that.neighbours(r, c, func(nr, nc int) {
			queue = append(queue, [2]int{nr, nc})
		})
	}
}

func (that *minefield) adjacentMines(row, col int) int {
	count := 0
	that.neighbours(row, col, func(r, c int) {
		if that.mined[r][c] {
			count++
		}
	})
	return count
}

func (that *minefield) neighbours(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if (dr == 0 && dc == 0) || r < 0 || r >= that.rows || c < 0 || c >= that.cols {
				continue
			}
			fn(r, c)
		}
	}
}

func (that *minefield) cleared() bool {
	for r := range that.rows {
		for c := range that.cols {
			if that.mined[r][c] {
				continue
			}
			switch that.display[r][c] {
			case entity.CellUnexplored, entity.CellMarked, entity.CellFlagged:
				return false
			}
		}
	}
	return true
}

func (that *minefield) finish(status entity.Status, now time.Time) {
	that.status = status
	that.endedAt = &now
}

func (that *minefield) state() *entity.GameState {
	board := make([][]string, that.rows)
	for r := range board {
		board[r] = append([]string(nil), that.display[r]...)
	}

	state := &entity.GameState{
		ID:        that.id,
		UserID:    that.owner,
		StartedAt: entity.NewTimestamp(that.startedAt),
		Status:    that.status,
		Mines:     that.mines,
		Board:     board,
	}

	if that.endedAt != nil {
		ended := entity.NewTimestamp(*that.endedAt)
		state.EndedAt = &ended
	}

	return state
}
