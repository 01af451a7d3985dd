// internal/engine/engine.go
//
// Package engine implements the game turn & rules engine: dealing, drawing,
// play validation, turn order, UNO challenges and game completion. It holds
// no game state between calls; every operation reads through the store
// interfaces, applies one transition, persists through the same interfaces
// and returns a plain result or an *Error.
package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Engine wires the five stores together with a logger and the per-game
// serialization boundary.
type Engine struct {
	Games   GameStore
	Cards   CardStore
	Seats   SeatStore
	History HistoryStore
	Players PlayerStore

	Log *logrus.Logger

	locks *gameLocks

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New builds an Engine over the given stores. A nil logger falls back to the
// logrus standard logger.
func New(games GameStore, cards CardStore, seats SeatStore, history HistoryStore, players PlayerStore, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		Games:   games,
		Cards:   cards,
		Seats:   seats,
		History: history,
		Players: players,
		Log:     log,
		locks:   newGameLocks(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed reseeds the random source. Tests use it for deterministic deals.
func (e *Engine) Seed(seed int64) {
	e.rngMu.Lock()
	e.rng = rand.New(rand.NewSource(seed))
	e.rngMu.Unlock()
}

func (e *Engine) randIntn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

// playerName resolves a display name, falling back to the id string when the
// user row is missing so audit output never fails an operation.
func (e *Engine) playerName(ctx context.Context, playerID uuid.UUID) string {
	u, err := e.Players.GetPlayer(ctx, playerID)
	if err != nil || u == nil {
		return playerID.String()
	}
	return u.Username
}

// appendHistory writes one audit entry.
func (e *Engine) appendHistory(ctx context.Context, gameID, playerID uuid.UUID, action string) *Error {
	entry := &models.TurnHistory{
		ID:        uuid.New(),
		GameID:    gameID,
		PlayerID:  playerID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.History.Append(ctx, entry); err != nil {
		return dependency(err, "failed to record turn history")
	}
	return nil
}

// orderedSeats returns the active seats of a game walked in the given
// direction: position-ascending for clockwise, reversed otherwise.
func (e *Engine) orderedSeats(ctx context.Context, gameID uuid.UUID, dir models.TurnDirection) ([]*models.Seat, *Error) {
	seats, err := e.Seats.ListActiveSeats(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "seats for game %s not found", gameID)
	}
	if len(seats) == 0 {
		return nil, notFound("game %s has no active seats", gameID)
	}
	if dir == models.Counterclockwise {
		reversed := make([]*models.Seat, len(seats))
		for i, s := range seats {
			reversed[len(seats)-1-i] = s
		}
		seats = reversed
	}
	return seats, nil
}

// seatAfter locates playerID in the direction-ordered seat list and returns
// the next seat, wrapping around.
func seatAfter(seats []*models.Seat, playerID uuid.UUID) (*models.Seat, *Error) {
	for i, s := range seats {
		if s.PlayerID == playerID {
			return seats[(i+1)%len(seats)], nil
		}
	}
	return nil, notFound("player %s is not seated in this game", playerID)
}
