// internal/engine/deal.go
package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// PlayerDeal summarizes one player's share of an initial deal.
type PlayerDeal struct {
	PlayerID   uuid.UUID      `json:"player_id"`
	PlayerName string         `json:"player_name"`
	Cards      []*models.Card `json:"cards"`
}

// DrawnCard is the caller-visible result of a draw.
type DrawnCard struct {
	CardID uuid.UUID        `json:"card_id"`
	Color  models.CardColor `json:"color"`
	Value  models.CardValue `json:"value"`
}

// DealInitialHands moves perPlayer random cards from the undealt pool into
// each active seat's hand. The game must exist and be in progress and the
// pool must be non-empty; each violated precondition is a distinct error.
// Dealing stops early if the pool runs dry mid-deal. Receiving cards clears
// a player's UNO declaration, same as drawing.
func (e *Engine) DealInitialHands(ctx context.Context, gameID uuid.UUID, perPlayer int) ([]PlayerDeal, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	game, err := e.Games.GetGame(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "game %s not found", gameID)
	}
	if game.Status != models.GameInProgress {
		return nil, invalidState("game %s is not in progress (status %s)", gameID, game.Status)
	}

	pool, err := e.Cards.ListPool(ctx, gameID)
	if err != nil {
		return nil, dependency(err, "failed to list undealt cards for game %s", gameID)
	}
	if len(pool) == 0 {
		return nil, resourceExhausted("no undealt cards remain in game %s", gameID)
	}

	seats, serr := e.orderedSeats(ctx, gameID, models.Clockwise)
	if serr != nil {
		return nil, serr
	}

	deals := make([]PlayerDeal, 0, len(seats))
	for _, seat := range seats {
		deal := PlayerDeal{
			PlayerID:   seat.PlayerID,
			PlayerName: e.playerName(ctx, seat.PlayerID),
		}
		for len(deal.Cards) < perPlayer && len(pool) > 0 {
			idx := e.randIntn(len(pool))
			card := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)

			if err := e.Cards.MoveToHand(ctx, card.ID, seat.PlayerID); err != nil {
				return nil, dependency(err, "failed to deal card %s to player %s", card.ID, seat.PlayerID)
			}
			card.Location = models.LocationHand
			holder := seat.PlayerID
			card.HolderID = &holder
			deal.Cards = append(deal.Cards, card)
		}
		if len(deal.Cards) > 0 {
			// Cards entered the hand, so any standing declaration is stale.
			if err := e.Seats.SetUnoDeclared(ctx, gameID, seat.PlayerID, false); err != nil {
				return nil, dependency(err, "failed to reset UNO declaration for player %s", seat.PlayerID)
			}
		}
		deals = append(deals, deal)
	}

	e.Log.WithFields(map[string]interface{}{
		"game_id":    gameID,
		"per_player": perPlayer,
		"players":    len(deals),
		"pool_left":  len(pool),
	}).Info("dealt initial hands")
	return deals, nil
}

// DrawCard moves one random undealt card into the drawing player's hand and
// records "Drew a card". Drawing clears the player's UNO declaration (their
// hand grew) and does NOT advance the turn.
func (e *Engine) DrawCard(ctx context.Context, gameID, playerID uuid.UUID) (*DrawnCard, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	pool, err := e.Cards.ListPool(ctx, gameID)
	if err != nil {
		return nil, dependency(err, "failed to list undealt cards for game %s", gameID)
	}
	if len(pool) == 0 {
		return nil, resourceExhausted("no undealt cards remain in game %s", gameID)
	}

	card := pool[e.randIntn(len(pool))]
	if err := e.Cards.MoveToHand(ctx, card.ID, playerID); err != nil {
		return nil, dependency(err, "failed to move card %s to player %s", card.ID, playerID)
	}
	if err := e.Seats.SetUnoDeclared(ctx, gameID, playerID, false); err != nil {
		return nil, dependency(err, "failed to reset UNO declaration for player %s", playerID)
	}
	if herr := e.appendHistory(ctx, gameID, playerID, "Drew a card"); herr != nil {
		return nil, herr
	}

	e.Log.WithFields(map[string]interface{}{
		"game_id":   gameID,
		"player_id": playerID,
		"card":      card.Label(),
	}).Debug("player drew a card")
	return &DrawnCard{CardID: card.ID, Color: card.Color, Value: card.Value}, nil
}
