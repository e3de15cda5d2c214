// Package minimax picks moves by searching the whole game tree from the current position.
package minimax

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const winScore = 10

// Selector plays for one mark against its opponent. Every position is scored from the
// selector's point of view: its own wins are positive, losses negative, draws zero.
type Selector struct {
	player   entity.Mark
	opponent entity.Mark
}

// New returns the computer's selector.
func New() *Selector {
	return NewFor(entity.Computer)
}

func NewFor(player entity.Mark) *Selector {
	return &Selector{
		player:   player,
		opponent: player.Opponent(),
	}
}

func (that *Selector) Player() entity.Mark {
	return that.player
}

// BestMove returns the cell that guarantees the best outcome for the selector's player,
// assuming both sides play perfectly afterwards. Among equally scored cells the lowest
// index wins. The board must not be decided yet.
func (that *Selector) BestMove(board entity.Board) (int, error) {
	bestScore := math.MinInt
	bestMove := -1

	for _, cell := range board.AvailableMoves() {
		next := board
		next[cell] = that.player

		// the opponent replies next; the first simulated position is depth 0
		score := that.score(next, 0, false)
		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	if bestMove < 0 {
		return 0, ErrNoAvailableMoves
	}

	return bestMove, nil
}

// score is plain minimax without pruning. board is a copy, so children are built
// from it without any undo step.
func (that *Selector) score(board entity.Board, depth int, maximizing bool) int {
	switch {
	case board.CheckWin(that.player):
		return winScore - depth
	case board.CheckWin(that.opponent):
		return depth - winScore
	case board.IsFull():
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range board.AvailableMoves() {
			next := board
			next[cell] = that.player
			best = max(best, that.score(next, depth+1, false))
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range board.AvailableMoves() {
		next := board
		next[cell] = that.opponent
		best = min(best, that.score(next, depth+1, true))
	}
	return best
}
