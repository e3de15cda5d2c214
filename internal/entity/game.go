package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type State string

const (
	StateAwaitingHuman    State = "awaiting_human"
	StateAwaitingComputer State = "awaiting_computer"
	StateTerminal         State = "terminal"
)

var ErrUnknownGameState = errors.New("unknown game state")

// Move records who played which cell.
type Move struct {
	Mark Mark `json:"mark"`
	Cell int  `json:"cell"`
}

// Game is a single human-vs-computer session.
type Game struct {
	ID         string  `json:"id"`
	PlayerName string  `json:"player_name,omitempty"`
	Board      Board   `json:"board"`
	State      State   `json:"state"`
	Outcome    Outcome `json:"outcome"`
	LastMove   *Move   `json:"last_move,omitempty"`
}

func NewGame(id, playerName string) *Game {
	game := &Game{
		ID:         id,
		PlayerName: playerName,
	}
	game.Clear()

	return game
}

// Clear empties the board and hands the first move to the human.
func (that *Game) Clear() {
	that.Board = Board{}
	that.State = StateAwaitingHuman
	that.Outcome = Outcome{Result: ResultInProgress}
	that.LastMove = nil
}

func (that *Game) IsFinished() bool {
	return that.State == StateTerminal
}

func (that *Game) IsAwaitingHuman() bool {
	return that.State == StateAwaitingHuman
}

func (that *Game) IsAwaitingComputer() bool {
	return that.State == StateAwaitingComputer
}

// ConfirmTurn checks that mark is allowed to move in the current state.
func (that *Game) ConfirmTurn(mark Mark) error {
	switch that.State {
	case StateTerminal:
		return apperror.ErrGameFinished
	case StateAwaitingHuman:
		if mark != Human {
			return apperror.ErrNotYourTurn
		}
		return nil
	case StateAwaitingComputer:
		if mark != Computer {
			return apperror.ErrNotYourTurn
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameState, that.State)
	}
}

// MakeTurn places mark on cell and advances the state machine.
// On error the game is left untouched.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if err := that.ConfirmTurn(mark); err != nil {
		return err
	}

	board, err := that.Board.ApplyMove(cell, mark)
	if err != nil {
		return err
	}

	that.Board = board
	that.LastMove = &Move{Mark: mark, Cell: cell}
	that.UpdateGameState(mark)

	return nil
}

// UpdateGameState recomputes the outcome after lastMover has played.
func (that *Game) UpdateGameState(lastMover Mark) {
	that.Outcome = that.Board.Outcome()

	switch {
	case that.Outcome.IsTerminal():
		that.State = StateTerminal
	case lastMover == Human:
		that.State = StateAwaitingComputer
	default:
		that.State = StateAwaitingHuman
	}
}
