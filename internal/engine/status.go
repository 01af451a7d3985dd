// internal/engine/status.go
package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// HandView renders one seated player's hand for the status snapshot.
type HandView struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Cards    []string  `json:"cards"`
}

// HistoryView is one audit entry in caller-friendly form.
type HistoryView struct {
	PlayerID uuid.UUID `json:"player_id"`
	Action   string    `json:"action"`
}

// Snapshot aggregates the whole observable game state: whose turn it is, the
// discard top, the full turn history and every hand.
type Snapshot struct {
	GameID            uuid.UUID         `json:"game_id"`
	Status            models.GameStatus `json:"status"`
	CurrentPlayerID   uuid.UUID         `json:"current_player_id"`
	CurrentPlayerName string            `json:"current_player_name"`
	TopCard           string            `json:"top_card,omitempty"`
	History           []HistoryView     `json:"history"`
	Hands             []HandView        `json:"hands"`
}

// GameStatus builds a read-only projection of the game. It mutates nothing
// and takes no lock; a snapshot racing a mutation sees either the old or the
// new state of each store read.
func (e *Engine) GameStatus(ctx context.Context, gameID uuid.UUID) (*Snapshot, *Error) {
	game, err := e.Games.GetGame(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "game %s not found", gameID)
	}

	snap := &Snapshot{
		GameID:            gameID,
		Status:            game.Status,
		CurrentPlayerID:   game.CurrentPlayerID,
		CurrentPlayerName: e.playerName(ctx, game.CurrentPlayerID),
	}

	top, err := e.Cards.TopDiscard(ctx, gameID)
	switch {
	case err == nil:
		snap.TopCard = top.Label()
	case !errors.Is(err, ErrNoRow):
		return nil, dependency(err, "failed to read discard pile for game %s", gameID)
	}

	entries, err := e.History.List(ctx, gameID)
	if err != nil {
		return nil, dependency(err, "failed to list turn history for game %s", gameID)
	}
	snap.History = make([]HistoryView, 0, len(entries))
	for _, h := range entries {
		snap.History = append(snap.History, HistoryView{PlayerID: h.PlayerID, Action: h.Action})
	}

	seats, serr := e.orderedSeats(ctx, gameID, models.Clockwise)
	if serr != nil {
		return nil, serr
	}
	hands, err := e.Cards.ListHands(ctx, gameID)
	if err != nil {
		return nil, dependency(err, "failed to list hands for game %s", gameID)
	}
	snap.Hands = make([]HandView, 0, len(seats))
	for _, seat := range seats {
		view := HandView{
			PlayerID: seat.PlayerID,
			Name:     e.playerName(ctx, seat.PlayerID),
			Cards:    make([]string, 0, len(hands[seat.PlayerID])),
		}
		for _, card := range hands[seat.PlayerID] {
			view.Cards = append(view.Cards, card.Label())
		}
		snap.Hands = append(snap.Hands, view)
	}
	return snap, nil
}
