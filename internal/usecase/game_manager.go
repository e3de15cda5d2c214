package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameController interface {
	NewGame(id, playerName string) *entity.Game
	PlayRound(game *entity.Game, cell int) (entity.Outcome, error)
	Reset(game *entity.Game)
}

type moveSelector interface {
	BestMove(board entity.Board) (int, error)
}

type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	controller gameController
	hints      moveSelector
}

// NewGameManager - hints must be a selector playing for the human.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller gameController, hints moveSelector) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		controller: controller,
		hints:      hints,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, playerName string) (*entity.Game, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, apperror.ErrEmptyPlayerName
	}

	game := that.controller.NewGame(uuid.NewString(), playerName)
	if err := that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "player", playerName)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// MakeTurn - applies the human's move and, if the game is not over, the computer's reply.
// A rejected move is not saved.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id, "cell", cell)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := that.controller.PlayRound(game, cell)
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.LastMove != nil && game.LastMove.Mark == entity.Computer {
		log.Debug("computer answered", "computerCell", game.LastMove.Cell)
	}

	if outcome.IsTerminal() {
		log.Info("game finished", "result", outcome.Result, "winner", outcome.Winner)
	}

	return game, nil
}

// ResetGame - starts a new round for the same player.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	that.controller.Reset(game)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game reset", "gameID", id)

	return game, nil
}

// Hint - the cell the computer would play in the human's place.
func (that *GameManager) Hint(ctx context.Context, id string) (int, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if err = game.ConfirmTurn(entity.Human); err != nil {
		return 0, fmt.Errorf("can't give a hint: %w", err)
	}

	cell, err := that.hints.BestMove(game.Board)
	if err != nil {
		return 0, fmt.Errorf("failed to select hint: %w", err)
	}

	return cell, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
