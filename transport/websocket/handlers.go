package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, req *RequestPayload) (ResponsePayload, error) {
	game, err := that.uGame.CreateGame(ctx, req.PlayerName)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to create game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, req *RequestPayload) (ResponsePayload, error) {
	if req.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	game, err := that.uGame.GetGame(ctx, req.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to get game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

// handleGameTurn - replies with the game and the computer's cell, if it answered.
func (that *Server) handleGameTurn(ctx context.Context, req *RequestPayload) (ResponsePayload, error) {
	if req.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if req.Cell == nil {
		return ResponsePayload{}, errCellRequired
	}

	game, err := that.uGame.MakeTurn(ctx, req.GameID, *req.Cell)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to make turn: %w", err)
	}

	response := ResponsePayload{Game: game}
	if game.LastMove != nil && game.LastMove.Mark == entity.Computer {
		cell := game.LastMove.Cell
		response.Cell = &cell
	}

	return response, nil
}

func (that *Server) handleReset(ctx context.Context, req *RequestPayload) (ResponsePayload, error) {
	if req.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	game, err := that.uGame.ResetGame(ctx, req.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to reset game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleHint(ctx context.Context, req *RequestPayload) (ResponsePayload, error) {
	if req.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	cell, err := that.uGame.Hint(ctx, req.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to get hint: %w", err)
	}

	return ResponsePayload{Cell: &cell}, nil
}

// clientError - only errors the player can act on are shown verbatim.
func clientError(err error) string {
	for _, known := range []error{
		errGameIDRequired,
		errCellRequired,
		apperror.ErrEmptyPlayerName,
		apperror.ErrGameNotFound,
		apperror.ErrGameFinished,
		apperror.ErrNotYourTurn,
		apperror.ErrCellOccupied,
		apperror.ErrInvalidCell,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "internal error"
}
