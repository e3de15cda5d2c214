package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123", "Alice")

	// Then: the board is empty and the human moves first
	expectedGame := &Game{
		ID:         "123",
		PlayerName: "Alice",
		Board:      Board{},
		State:      StateAwaitingHuman,
		Outcome:    Outcome{Result: ResultInProgress},
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_ConfirmTurn(t *testing.T) {
	t.Run("Human may move while awaiting human", func(t *testing.T) {
		game := &Game{State: StateAwaitingHuman}

		assert.NoError(t, game.ConfirmTurn(Human))
		assert.ErrorIs(t, game.ConfirmTurn(Computer), apperror.ErrNotYourTurn)
	})

	t.Run("Computer may move while awaiting computer", func(t *testing.T) {
		game := &Game{State: StateAwaitingComputer}

		assert.NoError(t, game.ConfirmTurn(Computer))
		assert.ErrorIs(t, game.ConfirmTurn(Human), apperror.ErrNotYourTurn)
	})

	t.Run("Nobody moves in a finished game", func(t *testing.T) {
		game := &Game{State: StateTerminal}

		assert.ErrorIs(t, game.ConfirmTurn(Human), apperror.ErrGameFinished)
		assert.ErrorIs(t, game.ConfirmTurn(Computer), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game state", func(t *testing.T) {
		game := &Game{State: "unknown"}

		err := game.ConfirmTurn(Human)

		require.ErrorIs(t, err, ErrUnknownGameState)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", "Alice")

		// When: the human plays cell 0
		err := game.MakeTurn(Human, 0)
		require.NoError(t, err)

		// Then: the computer is to move next
		expectedGame := &Game{
			ID:         "123",
			PlayerName: "Alice",
			Board:      Board{x, e, e, e, e, e, e, e, e},
			State:      StateAwaitingComputer,
			Outcome:    Outcome{Result: ResultInProgress},
			LastMove:   &Move{Mark: Human, Cell: 0},
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Turns alternate", func(t *testing.T) {
		game := NewGame("123", "Alice")

		require.NoError(t, game.MakeTurn(Human, 0))
		require.NoError(t, game.MakeTurn(Computer, 4))

		assert.Equal(t, StateAwaitingHuman, game.State)
		assert.Equal(t, &Move{Mark: Computer, Cell: 4}, game.LastMove)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where the computer is to move and cell 0 is taken
		game := NewGame("123", "Alice")
		require.NoError(t, game.MakeTurn(Human, 0))
		before := *game

		// When: the computer tries the same cell
		err := game.MakeTurn(Computer, 0)

		// Then: ErrCellOccupied is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, before, *game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", "Alice")

		// When: the computer moves first
		err := game.MakeTurn(Computer, 1)

		// Then: ErrNotYourTurn is returned and the board is still empty
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, NewGame("123", "Alice"), game)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: the human owns 0 and 1
		game := NewGame("123", "Alice")
		game.Board = Board{x, x, e, o, o, e, e, e, e}

		// When: the human completes the row
		require.NoError(t, game.MakeTurn(Human, 2))

		// Then: the game is over with the human as winner
		assert.Equal(t, StateTerminal, game.State)
		assert.Equal(t, WinOutcome(Human), game.Outcome)

		// And: nobody may move any more
		assert.ErrorIs(t, game.MakeTurn(Computer, 5), apperror.ErrGameFinished)
	})

	t.Run("Last cell without a line is a draw", func(t *testing.T) {
		// Given: one empty cell left and no line possible
		game := NewGame("123", "Alice")
		game.Board = Board{x, o, x, x, o, o, o, x, e}

		// When: the human fills it
		require.NoError(t, game.MakeTurn(Human, 8))

		// Then: the game is a draw
		assert.Equal(t, StateTerminal, game.State)
		assert.Equal(t, Outcome{Result: ResultDraw}, game.Outcome)
	})
}

func TestGame_Clear(t *testing.T) {
	// Given: a finished game
	game := NewGame("123", "Alice")
	game.Board = Board{o, o, o, x, x, e, x, e, e}
	game.UpdateGameState(Computer)
	require.True(t, game.IsFinished())

	// When: it is cleared
	game.Clear()

	// Then: it is back to the initial state with identity kept
	assert.Equal(t, NewGame("123", "Alice"), game)
	assert.True(t, game.IsAwaitingHuman())
}
