package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsUndecided returns true when game status is undecided", func(t *testing.T) {
		// Given: a game with StatusUndecided
		game := &GameState{Status: StatusUndecided}

		// Then: it is undecided and not finished
		assert.True(t, game.IsUndecided())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished returns true when game is won", func(t *testing.T) {
		// Given: a game with StatusWon
		game := &GameState{Status: StatusWon}

		// Then: it is won and finished
		assert.True(t, game.IsWon())
		assert.True(t, game.IsFinished())
	})

	t.Run("IsFinished returns true when game is lost", func(t *testing.T) {
		// Given: a game with StatusLost
		game := &GameState{Status: StatusLost}

		// Then: it is lost and finished
		assert.True(t, game.IsLost())
		assert.True(t, game.IsFinished())
	})
}

func TestGameState_ConfirmUndecidedState(t *testing.T) {
	t.Run("Returns nil when game is undecided", func(t *testing.T) {
		game := &GameState{Status: StatusUndecided}

		assert.NoError(t, game.ConfirmUndecidedState())
	})

	t.Run("Returns ErrGameFinished when game is won or lost", func(t *testing.T) {
		for _, status := range []Status{StatusWon, StatusLost} {
			game := &GameState{Status: status}

			assert.ErrorIs(t, game.ConfirmUndecidedState(), apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &GameState{Status: "paused"}

		// When: checking if actions are allowed
		err := game.ConfirmUndecidedState()

		// Then: it should return ErrUnknownGameStatus
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "paused")
	})
}

func TestGameState_Dimensions(t *testing.T) {
	game := &GameState{Board: [][]string{
		{"#", "1", " "},
		{"F", "?", "*"},
	}}

	assert.Equal(t, 2, game.Rows())
	assert.Equal(t, 3, game.Cols())
	assert.Equal(t, "?", game.Cell(1, 1))
	assert.Equal(t, "", game.Cell(2, 0))
	assert.Equal(t, "", game.Cell(0, -1))

	empty := &GameState{}
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())
}

func TestGameState_Validate(t *testing.T) {
	valid := func() *GameState {
		return &GameState{
			ID:        5,
			StartedAt: NewTimestamp(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
			Status:    StatusUndecided,
			Board:     [][]string{{"#", "#"}, {"#", "#"}},
		}
	}

	t.Run("Accepts a complete snapshot", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name   string
		modify func(*GameState)
	}{
		{"empty status", func(g *GameState) { g.Status = "" }},
		{"unknown status", func(g *GameState) { g.Status = "paused" }},
		{"zero start time", func(g *GameState) { g.StartedAt = Timestamp{} }},
		{"no rows", func(g *GameState) { g.Board = nil }},
		{"empty row", func(g *GameState) { g.Board = [][]string{{}} }},
		{"ragged board", func(g *GameState) { g.Board = [][]string{{"#", "#"}, {"#"}} }},
	}

	for _, tt := range tests {
		t.Run("Rejects "+tt.name, func(t *testing.T) {
			game := valid()
			tt.modify(game)

			assert.ErrorIs(t, game.Validate(), ErrMalformedGame)
		})
	}
}

func TestGameState_SameGame(t *testing.T) {
	board := [][]string{{"#", "#", "#"}, {"#", "#", "#"}}
	current := &GameState{ID: 5, Board: board}

	assert.True(t, current.SameGame(&GameState{ID: 5, Board: [][]string{{" ", "1", "#"}, {"#", "#", "F"}}}))
	assert.False(t, current.SameGame(&GameState{ID: 6, Board: board}))
	assert.False(t, current.SameGame(&GameState{ID: 5, Board: board[:1]}))
	assert.False(t, current.SameGame(&GameState{ID: 5, Board: [][]string{{"#", "#"}, {"#", "#"}}}))
}

func TestGameState_Elapsed(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Uses ended_at when the game has ended", func(t *testing.T) {
		end := NewTimestamp(start.Add(42 * time.Second))
		game := &GameState{StartedAt: NewTimestamp(start), EndedAt: &end}

		assert.Equal(t, 42*time.Second, game.Elapsed(start.Add(time.Hour)))
	})

	t.Run("Uses now while the game is in progress", func(t *testing.T) {
		game := &GameState{StartedAt: NewTimestamp(start)}

		assert.Equal(t, 90*time.Second, game.Elapsed(start.Add(90*time.Second)))
	})
}

func TestGameState_UnmarshalJSON(t *testing.T) {
	t.Run("Decodes RFC 3339 timestamps and null ended_at", func(t *testing.T) {
		// Given: a server payload for a game in progress
		payload := `{
			"id": 7,
			"user_id": 3,
			"started_at": "2024-05-01T12:00:00Z",
			"ended_at": null,
			"game_status": "undecided",
			"mines": 10,
			"board": [["#", "#"], ["#", "#"]]
		}`

		// When: decoding it
		var game GameState
		require.NoError(t, json.Unmarshal([]byte(payload), &game))

		// Then: every field is populated
		assert.Equal(t, int64(7), game.ID)
		assert.Equal(t, int64(3), game.UserID)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), game.StartedAt.Time)
		assert.Nil(t, game.EndedAt)
		assert.Equal(t, StatusUndecided, game.Status)
		assert.Equal(t, 10, game.Mines)
		assert.Equal(t, 2, game.Rows())
	})

	t.Run("Decodes epoch millisecond timestamps", func(t *testing.T) {
		payload := `{"id": 1, "started_at": 1714564800000, "ended_at": 1714564810000, "game_status": "won"}`

		var game GameState
		require.NoError(t, json.Unmarshal([]byte(payload), &game))

		require.NotNil(t, game.EndedAt)
		assert.Equal(t, 10*time.Second, game.Elapsed(time.Now()))
	})

	t.Run("Rejects malformed timestamps", func(t *testing.T) {
		payload := `{"id": 1, "started_at": "yesterday"}`

		var game GameState
		err := json.Unmarshal([]byte(payload), &game)

		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}

func TestAction_WireTag(t *testing.T) {
	tests := []struct {
		action Action
		tag    string
		name   string
	}{
		{ActionMark, "?", "mark"},
		{ActionFlag, "F", "flag"},
		{ActionReveal, " ", "reveal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := tt.action.WireTag()

			require.NoError(t, err)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.name, tt.action.String())
		})
	}

	t.Run("Unknown action", func(t *testing.T) {
		_, err := Action(0).WireTag()

		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}
