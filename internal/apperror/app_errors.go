package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidCell     = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrCellOccupied    = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrGameNotFound    = errors.New("game not found")
	ErrEmptyPlayerName = errors.New("player name is empty")
)
