package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type moveSelector interface {
	BestMove(board entity.Board) (int, error)
}

// GameController drives one game through AwaitingHuman -> AwaitingComputer -> ... -> Terminal.
type GameController struct {
	selector moveSelector
}

func NewGameController(selector moveSelector) *GameController {
	return &GameController{
		selector: selector,
	}
}

// NewGame - creates a game with an empty board waiting for the human.
func (that *GameController) NewGame(id, playerName string) *entity.Game {
	return entity.NewGame(id, playerName)
}

// ApplyHumanMove - validates and applies the human's move.
func (that *GameController) ApplyHumanMove(game *entity.Game, cell int) (entity.Outcome, error) {
	if err := game.MakeTurn(entity.Human, cell); err != nil {
		return game.Outcome, fmt.Errorf("invalid turn: %w", err)
	}

	return game.Outcome, nil
}

// ComputerTurn - picks and applies the computer's reply. Returns the chosen cell.
func (that *GameController) ComputerTurn(game *entity.Game) (entity.Outcome, int, error) {
	if err := game.ConfirmTurn(entity.Computer); err != nil {
		return game.Outcome, -1, fmt.Errorf("computer can't move: %w", err)
	}

	cell, err := that.selector.BestMove(game.Board)
	if err != nil {
		return game.Outcome, -1, fmt.Errorf("failed to select computer move: %w", err)
	}

	if err = game.MakeTurn(entity.Computer, cell); err != nil {
		return game.Outcome, -1, fmt.Errorf("computer failed to make turn: %w", err)
	}

	return game.Outcome, cell, nil
}

// PlayRound - applies the human's move and, while the game goes on, the computer's answer.
func (that *GameController) PlayRound(game *entity.Game, cell int) (entity.Outcome, error) {
	outcome, err := that.ApplyHumanMove(game, cell)
	if err != nil {
		return outcome, err
	}

	if !outcome.IsInProgress() {
		return outcome, nil
	}

	outcome, _, err = that.ComputerTurn(game)

	return outcome, err
}

// Reset - starts a new round in the same session; the player's name survives.
func (that *GameController) Reset(game *entity.Game) {
	game.Clear()
}
