package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var errBrokenSelector = errors.New("broken selector")

type fixedSelector struct {
	cell int
	err  error
}

func (that fixedSelector) BestMove(entity.Board) (int, error) {
	return that.cell, that.err
}

func TestGameController_NewGame(t *testing.T) {
	// Given: a controller
	controller := NewGameController(minimax.New())

	// When: a new game is created
	game := controller.NewGame("123", "Alice")

	// Then: the game waits for the human on an empty board
	require.Equal(t, entity.NewGame("123", "Alice"), game)
}

func TestGameController_ApplyHumanMove(t *testing.T) {
	t.Run("Hands the turn to the computer", func(t *testing.T) {
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")

		outcome, err := controller.ApplyHumanMove(game, 0)

		require.NoError(t, err)
		assert.True(t, outcome.IsInProgress())
		assert.Equal(t, entity.StateAwaitingComputer, game.State)
	})

	t.Run("Rejects a second human move in a row", func(t *testing.T) {
		// Given: the human already moved
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")
		_, err := controller.ApplyHumanMove(game, 0)
		require.NoError(t, err)

		// When: the human moves again
		_, err = controller.ApplyHumanMove(game, 1)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Occupied cell leaves the game unchanged", func(t *testing.T) {
		// Given: a game where cell 4 is the computer's
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")
		_, err := controller.PlayRound(game, 0)
		require.NoError(t, err)
		require.Equal(t, entity.Computer, game.Board[4])
		before := *game

		// When: the human plays cell 4
		_, err = controller.ApplyHumanMove(game, 4)

		// Then: the move is illegal and nothing changed
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, *game)
	})

	t.Run("Winning move goes straight to terminal", func(t *testing.T) {
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")
		game.Board = entity.Board{
			entity.Human, entity.Human, entity.EmptyCell,
			entity.Computer, entity.Computer, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		outcome, err := controller.ApplyHumanMove(game, 2)

		require.NoError(t, err)
		assert.Equal(t, entity.WinOutcome(entity.Human), outcome)
		assert.True(t, game.IsFinished())
	})
}

func TestGameController_ComputerTurn(t *testing.T) {
	t.Run("Blocks after the human threatens a row", func(t *testing.T) {
		// Given: the human opened in the corner and the computer answered
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")

		_, err := controller.ApplyHumanMove(game, 0)
		require.NoError(t, err)
		_, first, err := controller.ComputerTurn(game)
		require.NoError(t, err)
		require.Equal(t, 4, first)

		// When: the human plays 1 and the computer replies
		_, err = controller.ApplyHumanMove(game, 1)
		require.NoError(t, err)
		outcome, cell, err := controller.ComputerTurn(game)

		// Then: the computer blocks at 2 and it is the human's turn again
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		assert.True(t, outcome.IsInProgress())
		assert.Equal(t, entity.StateAwaitingHuman, game.State)
		assert.Equal(t, &entity.Move{Mark: entity.Computer, Cell: 2}, game.LastMove)
	})

	t.Run("Computer cannot move out of turn", func(t *testing.T) {
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")

		_, cell, err := controller.ComputerTurn(game)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, -1, cell)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Computer cannot move after the game is over", func(t *testing.T) {
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")
		game.State = entity.StateTerminal

		_, _, err := controller.ComputerTurn(game)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Selector failure is reported", func(t *testing.T) {
		controller := NewGameController(fixedSelector{err: errBrokenSelector})
		game := controller.NewGame("123", "Alice")
		_, err := controller.ApplyHumanMove(game, 0)
		require.NoError(t, err)

		_, _, err = controller.ComputerTurn(game)

		require.ErrorIs(t, err, errBrokenSelector)
		assert.Equal(t, entity.StateAwaitingComputer, game.State)
	})

	t.Run("Illegal selector choice is rejected", func(t *testing.T) {
		controller := NewGameController(fixedSelector{cell: 0})
		game := controller.NewGame("123", "Alice")
		_, err := controller.ApplyHumanMove(game, 0)
		require.NoError(t, err)

		_, _, err = controller.ComputerTurn(game)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestGameController_PlayRound(t *testing.T) {
	t.Run("A full game against the computer never ends in a human win", func(t *testing.T) {
		// Given: a human who always plays the lowest free cell
		controller := NewGameController(minimax.New())
		game := controller.NewGame("123", "Alice")

		// When: rounds are played until the game ends
		for !game.IsFinished() {
			_, err := controller.PlayRound(game, game.Board.AvailableMoves()[0])
			require.NoError(t, err)
		}

		// Then: the computer won or drew
		assert.False(t, game.Outcome.IsWinFor(entity.Human))
	})
}

func TestGameController_Reset(t *testing.T) {
	// Given: a game in progress
	controller := NewGameController(minimax.New())
	game := controller.NewGame("123", "Alice")
	_, err := controller.PlayRound(game, 4)
	require.NoError(t, err)

	// When: the game is reset
	controller.Reset(game)

	// Then: the board is empty, the human moves first and the player is kept
	assert.Equal(t, entity.NewGame("123", "Alice"), game)
}
