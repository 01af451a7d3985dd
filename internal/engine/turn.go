// internal/engine/turn.go
package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// ReverseResult reports the outcome of a Reverse: the new direction and the
// seat the turn advanced to.
type ReverseResult struct {
	Direction  models.TurnDirection `json:"direction"`
	NextPlayer uuid.UUID            `json:"next_player_id"`
	NextName   string               `json:"next_player_name"`
}

// NextPlayer returns the seat following currentPlayerID in the game's present
// turn direction. It is read-only.
func (e *Engine) NextPlayer(ctx context.Context, gameID, currentPlayerID uuid.UUID) (*models.Seat, *Error) {
	return e.nextSeat(ctx, gameID, currentPlayerID)
}

// nextSeat is NextPlayer without the public contract; internal callers hold
// the game lock already.
func (e *Engine) nextSeat(ctx context.Context, gameID, fromPlayerID uuid.UUID) (*models.Seat, *Error) {
	dir, err := e.Seats.GetDirection(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "turn order for game %s not found", gameID)
	}
	seats, serr := e.orderedSeats(ctx, gameID, dir)
	if serr != nil {
		return nil, serr
	}
	return seatAfter(seats, fromPlayerID)
}

// Reverse toggles the game's turn direction and advances the turn one seat in
// the NEW direction starting from the current player. In a two-player game
// this makes Reverse act as a skip, per standard UNO semantics.
func (e *Engine) Reverse(ctx context.Context, gameID uuid.UUID) (*ReverseResult, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	game, err := e.Games.GetGame(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "game %s not found", gameID)
	}
	if game.Status != models.GameInProgress {
		return nil, invalidState("game %s is not in progress (status %s)", gameID, game.Status)
	}

	dir, err := e.Seats.GetDirection(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "turn order for game %s not found", gameID)
	}
	newDir := dir.Opposite()
	if err := e.Seats.SetDirection(ctx, gameID, newDir); err != nil {
		return nil, dependency(err, "failed to persist turn direction for game %s", gameID)
	}

	seats, serr := e.orderedSeats(ctx, gameID, newDir)
	if serr != nil {
		return nil, serr
	}
	next, serr := seatAfter(seats, game.CurrentPlayerID)
	if serr != nil {
		return nil, serr
	}
	if err := e.Games.UpdateCurrentPlayer(ctx, gameID, next.PlayerID); err != nil {
		return nil, dependency(err, "failed to persist current player for game %s", gameID)
	}
	if herr := e.appendHistory(ctx, gameID, game.CurrentPlayerID, "Reversed turn order"); herr != nil {
		return nil, herr
	}

	e.Log.WithFields(map[string]interface{}{
		"game_id":   gameID,
		"direction": newDir,
		"next":      next.PlayerID,
	}).Info("turn order reversed")
	return &ReverseResult{
		Direction:  newDir,
		NextPlayer: next.PlayerID,
		NextName:   e.playerName(ctx, next.PlayerID),
	}, nil
}
