// internal/engine/stores.go
package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// The engine owns no durable state. Everything it reads and writes goes
// through these capability interfaces; internal/database provides the pgx
// adapters and the tests provide in-memory fakes.
//
// Adapters return ErrNoRow (possibly wrapped) when a fetch matches nothing.

// GameStore reads and mutates the games table.
type GameStore interface {
	GetGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	UpdateStatus(ctx context.Context, gameID uuid.UUID, status models.GameStatus) error
	UpdateCurrentPlayer(ctx context.Context, gameID, playerID uuid.UUID) error
}

// CardStore covers both the card catalog and, because a hand is just the set
// of cards located with a player, the per-player hand operations.
type CardStore interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCard(ctx context.Context, cardID uuid.UUID) (*models.Card, error)

	// ListPool returns the undealt cards of a game in no particular order.
	ListPool(ctx context.Context, gameID uuid.UUID) ([]*models.Card, error)

	// ListHand returns one player's cards; ListHands returns every hand in
	// the game keyed by player.
	ListHand(ctx context.Context, gameID, playerID uuid.UUID) ([]*models.Card, error)
	ListHands(ctx context.Context, gameID uuid.UUID) (map[uuid.UUID][]*models.Card, error)

	// MoveToHand and MoveToDiscard are the only location transitions. Moving
	// to discard places the card on top of the pile.
	MoveToHand(ctx context.Context, cardID, playerID uuid.UUID) error
	MoveToDiscard(ctx context.Context, cardID uuid.UUID) error

	// TopDiscard returns the current top of the discard pile, or ErrNoRow if
	// nothing has been discarded yet.
	TopDiscard(ctx context.Context, gameID uuid.UUID) (*models.Card, error)
}

// SeatStore reads seating and the per-game turn direction.
type SeatStore interface {
	// ListActiveSeats returns seats with status inGame ordered by position
	// ascending (the clockwise order).
	ListActiveSeats(ctx context.Context, gameID uuid.UUID) ([]*models.Seat, error)
	GetSeat(ctx context.Context, gameID, playerID uuid.UUID) (*models.Seat, error)
	SetUnoDeclared(ctx context.Context, gameID, playerID uuid.UUID, declared bool) error

	GetDirection(ctx context.Context, gameID uuid.UUID) (models.TurnDirection, error)
	SetDirection(ctx context.Context, gameID uuid.UUID, dir models.TurnDirection) error
}

// HistoryStore appends to and lists the write-only audit trail.
type HistoryStore interface {
	Append(ctx context.Context, entry *models.TurnHistory) error
	List(ctx context.Context, gameID uuid.UUID) ([]*models.TurnHistory, error)
}

// PlayerStore resolves player identity; the engine only needs existence
// checks and display names.
type PlayerStore interface {
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*models.User, error)
}
