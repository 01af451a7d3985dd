// internal/engine/uno.go
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UnoResult is the outcome of a SayUno declaration.
type UnoResult struct {
	PlayerID uuid.UUID `json:"player_id"`
	Message  string    `json:"message"`
}

// ChallengeResult is the outcome of a ChallengeUno dispute. Succeeded means
// the challenger was right: the defender held one card without declaring UNO.
type ChallengeResult struct {
	Succeeded  bool      `json:"succeeded"`
	Message    string    `json:"message"`
	NextPlayer uuid.UUID `json:"next_player_id,omitempty"`
}

// SayUno records a player's UNO declaration. It is valid only while the
// declaring player holds exactly one card; the declaration is persisted on
// the seat and cleared again whenever a card enters the hand.
func (e *Engine) SayUno(ctx context.Context, gameID, playerID uuid.UUID) (*UnoResult, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	if _, err := e.Seats.GetSeat(ctx, gameID, playerID); err != nil {
		return nil, storeErr(err, "player %s is not seated in game %s", playerID, gameID)
	}

	hand, err := e.Cards.ListHand(ctx, gameID, playerID)
	if err != nil {
		return nil, dependency(err, "failed to fetch hand for player %s", playerID)
	}
	name := e.playerName(ctx, playerID)
	if len(hand) != 1 {
		return nil, preconditionFailed("%s cannot say UNO with %d cards in hand", name, len(hand))
	}

	if err := e.Seats.SetUnoDeclared(ctx, gameID, playerID, true); err != nil {
		return nil, dependency(err, "failed to persist UNO declaration for player %s", playerID)
	}
	if herr := e.appendHistory(ctx, gameID, playerID, "Said UNO"); herr != nil {
		return nil, herr
	}

	e.Log.WithFields(map[string]interface{}{
		"game_id":   gameID,
		"player_id": playerID,
	}).Info("player said UNO")
	return &UnoResult{PlayerID: playerID, Message: fmt.Sprintf("%s said UNO", name)}, nil
}

// ChallengeUno resolves a dispute over whether the defender said UNO in time.
// The challenge fails when the defender's seat carries a standing declaration
// AND their hand still holds exactly one card; in that case the turn advances
// to the seat after the challenger. Otherwise the challenge succeeds against
// the defender (message only; no penalty cards are applied).
func (e *Engine) ChallengeUno(ctx context.Context, gameID, challengerID, defenderID uuid.UUID) (*ChallengeResult, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	seat, err := e.Seats.GetSeat(ctx, gameID, defenderID)
	if err != nil {
		return nil, storeErr(err, "player %s is not seated in game %s", defenderID, gameID)
	}

	hand, err := e.Cards.ListHand(ctx, gameID, defenderID)
	if err != nil {
		return nil, dependency(err, "failed to fetch hand for player %s", defenderID)
	}
	defenderName := e.playerName(ctx, defenderID)

	if seat.UnoDeclared && len(hand) == 1 {
		next, serr := e.nextSeat(ctx, gameID, challengerID)
		if serr != nil {
			return nil, serr
		}
		if err := e.Games.UpdateCurrentPlayer(ctx, gameID, next.PlayerID); err != nil {
			return nil, dependency(err, "failed to persist current player for game %s", gameID)
		}
		if herr := e.appendHistory(ctx, gameID, challengerID, fmt.Sprintf("Challenged %s and lost", defenderName)); herr != nil {
			return nil, herr
		}
		e.Log.WithFields(map[string]interface{}{
			"game_id":  gameID,
			"defender": defenderID,
		}).Info("UNO challenge failed, defender declared in time")
		return &ChallengeResult{
			Succeeded:  false,
			Message:    fmt.Sprintf("%s said UNO in time", defenderName),
			NextPlayer: next.PlayerID,
		}, nil
	}

	if herr := e.appendHistory(ctx, gameID, challengerID, fmt.Sprintf("Challenged %s and won", defenderName)); herr != nil {
		return nil, herr
	}
	e.Log.WithFields(map[string]interface{}{
		"game_id":  gameID,
		"defender": defenderID,
	}).Info("UNO challenge succeeded")
	return &ChallengeResult{
		Succeeded: true,
		Message:   fmt.Sprintf("%s failed to say UNO", defenderName),
	}, nil
}
