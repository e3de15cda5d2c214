package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the content of a single cell.
type Mark string

const (
	EmptyCell Mark = ""
	Human     Mark = "X"
	Computer  Mark = "O"
)

const BoardSize = 9

// WinCombos are the rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == Human || that == Computer
}

// Board is a 3x3 grid stored row-major. It is a value: assigning or passing it copies the cells.
type Board [BoardSize]Mark

// ApplyMove returns a copy of the board with mark placed on cell.
// The receiver is never modified, so a rejected move leaves the caller's board as it was.
func (that Board) ApplyMove(cell int, mark Mark) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: unknown mark %q", apperror.ErrIllegalMove, mark)
	}

	if that[cell] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return that, nil
}

func (that Board) CheckWin(mark Mark) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// AvailableMoves lists the empty cells in ascending order.
func (that Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Outcome derives the game status from the board alone.
func (that Board) Outcome() Outcome {
	switch {
	case that.CheckWin(Human):
		return WinOutcome(Human)
	case that.CheckWin(Computer):
		return WinOutcome(Computer)
	case that.IsFull():
		return Outcome{Result: ResultDraw}
	default:
		return Outcome{Result: ResultInProgress}
	}
}
