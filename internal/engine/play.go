// internal/engine/play.go
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// PlayResult is returned by PlayCard on success.
type PlayResult struct {
	Played     *models.Card `json:"played"`
	NextPlayer uuid.UUID    `json:"next_player_id"`
	NextName   string       `json:"next_player_name"`
}

// ValidatePlay checks whether playerID may legally play cardID right now.
// A play is legal iff the candidate matches the top discard by color OR by
// value; it is rejected only when BOTH differ. Wilds carry no extra rule:
// black matches black by color like any other card. When nothing has been
// discarded yet, any card is legal.
func (e *Engine) ValidatePlay(ctx context.Context, gameID, playerID, cardID uuid.UUID) (*models.Card, *Error) {
	return e.validatePlay(ctx, gameID, playerID, cardID)
}

func (e *Engine) validatePlay(ctx context.Context, gameID, playerID, cardID uuid.UUID) (*models.Card, *Error) {
	if _, err := e.Players.GetPlayer(ctx, playerID); err != nil {
		return nil, storeErr(err, "player %s not found", playerID)
	}
	card, err := e.Cards.GetCard(ctx, cardID)
	if err != nil {
		return nil, storeErr(err, "card %s not found", cardID)
	}
	if card.GameID != gameID {
		return nil, notFound("card %s not found in game %s", cardID, gameID)
	}

	top, err := e.Cards.TopDiscard(ctx, gameID)
	if err != nil {
		if errors.Is(err, ErrNoRow) {
			// Empty discard pile: the first play is unconstrained.
			return card, nil
		}
		return nil, dependency(err, "failed to read discard pile for game %s", gameID)
	}

	if card.Color != top.Color && card.Value != top.Value {
		return nil, invalidMove("card %s does not match the discard pile's %s", card.Label(), top.Label())
	}
	return card, nil
}

// PlayCard validates the play, discards the card (new top of pile), advances
// the turn to the next seat and records "Played {color} {value}". On
// validation failure the error propagates unchanged and no state mutates.
func (e *Engine) PlayCard(ctx context.Context, gameID, playerID, cardID uuid.UUID) (*PlayResult, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	card, verr := e.validatePlay(ctx, gameID, playerID, cardID)
	if verr != nil {
		return nil, verr
	}

	if err := e.Cards.MoveToDiscard(ctx, cardID); err != nil {
		return nil, dependency(err, "failed to discard card %s", cardID)
	}

	next, serr := e.nextSeat(ctx, gameID, playerID)
	if serr != nil {
		return nil, serr
	}
	if err := e.Games.UpdateCurrentPlayer(ctx, gameID, next.PlayerID); err != nil {
		return nil, dependency(err, "failed to persist current player for game %s", gameID)
	}
	if herr := e.appendHistory(ctx, gameID, playerID, fmt.Sprintf("Played %s", card.Label())); herr != nil {
		return nil, herr
	}

	e.Log.WithFields(map[string]interface{}{
		"game_id":   gameID,
		"player_id": playerID,
		"card":      card.Label(),
		"next":      next.PlayerID,
	}).Info("card played")
	return &PlayResult{
		Played:     card,
		NextPlayer: next.PlayerID,
		NextName:   e.playerName(ctx, next.PlayerID),
	}, nil
}
