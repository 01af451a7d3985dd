// internal/engine/fakes_test.go
package engine

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
	"github.com/sirupsen/logrus"
)

// fakeStores is a single in-memory implementation of all five store
// interfaces, good enough to exercise every engine operation.
type fakeStores struct {
	mu sync.Mutex

	games   map[uuid.UUID]*models.Game
	cards   map[uuid.UUID]*models.Card
	seats   map[uuid.UUID][]*models.Seat
	dirs    map[uuid.UUID]models.TurnDirection
	history []*models.TurnHistory
	users   map[uuid.UUID]*models.User

	discardSeq int

	// failCreateCardAfter, when > 0, makes CreateCard fail once that many
	// cards exist. Used to test the catalog abort path.
	failCreateCardAfter int

	// topDiscardErr, when set, makes TopDiscard fail with it.
	topDiscardErr error
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		games: make(map[uuid.UUID]*models.Game),
		cards: make(map[uuid.UUID]*models.Card),
		seats: make(map[uuid.UUID][]*models.Seat),
		dirs:  make(map[uuid.UUID]models.TurnDirection),
		users: make(map[uuid.UUID]*models.User),
	}
}

// --- GameStore ---

func (f *fakeStores) GetGame(_ context.Context, gameID uuid.UUID) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[gameID]
	if !ok {
		return nil, ErrNoRow
	}
	copy := *g
	return &copy, nil
}

func (f *fakeStores) UpdateStatus(_ context.Context, gameID uuid.UUID, status models.GameStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[gameID]
	if !ok {
		return ErrNoRow
	}
	g.Status = status
	return nil
}

func (f *fakeStores) UpdateCurrentPlayer(_ context.Context, gameID, playerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[gameID]
	if !ok {
		return ErrNoRow
	}
	g.CurrentPlayerID = playerID
	return nil
}

// --- CardStore ---

func (f *fakeStores) CreateCard(_ context.Context, card *models.Card) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateCardAfter > 0 && len(f.cards) >= f.failCreateCardAfter {
		return fmt.Errorf("simulated insert failure")
	}
	copy := *card
	f.cards[card.ID] = &copy
	return nil
}

func (f *fakeStores) GetCard(_ context.Context, cardID uuid.UUID) (*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cards[cardID]
	if !ok {
		return nil, ErrNoRow
	}
	copy := *c
	return &copy, nil
}

func (f *fakeStores) ListPool(_ context.Context, gameID uuid.UUID) ([]*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pool []*models.Card
	for _, c := range f.cards {
		if c.GameID == gameID && c.Location == models.LocationPool {
			copy := *c
			pool = append(pool, &copy)
		}
	}
	return pool, nil
}

func (f *fakeStores) ListHand(_ context.Context, gameID, playerID uuid.UUID) ([]*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var hand []*models.Card
	for _, c := range f.cards {
		if c.GameID == gameID && c.Location == models.LocationHand && c.HolderID != nil && *c.HolderID == playerID {
			copy := *c
			hand = append(hand, &copy)
		}
	}
	return hand, nil
}

func (f *fakeStores) ListHands(_ context.Context, gameID uuid.UUID) (map[uuid.UUID][]*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hands := make(map[uuid.UUID][]*models.Card)
	for _, c := range f.cards {
		if c.GameID == gameID && c.Location == models.LocationHand {
			copy := *c
			hands[*c.HolderID] = append(hands[*c.HolderID], &copy)
		}
	}
	return hands, nil
}

func (f *fakeStores) MoveToHand(_ context.Context, cardID, playerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cards[cardID]
	if !ok {
		return ErrNoRow
	}
	c.Location = models.LocationHand
	holder := playerID
	c.HolderID = &holder
	c.DiscardOrder = 0
	return nil
}

func (f *fakeStores) MoveToDiscard(_ context.Context, cardID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cards[cardID]
	if !ok {
		return ErrNoRow
	}
	f.discardSeq++
	c.Location = models.LocationDiscard
	c.HolderID = nil
	c.DiscardOrder = f.discardSeq
	return nil
}

func (f *fakeStores) TopDiscard(_ context.Context, gameID uuid.UUID) (*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.topDiscardErr != nil {
		return nil, f.topDiscardErr
	}
	var top *models.Card
	for _, c := range f.cards {
		if c.GameID == gameID && c.Location == models.LocationDiscard {
			if top == nil || c.DiscardOrder > top.DiscardOrder {
				top = c
			}
		}
	}
	if top == nil {
		return nil, ErrNoRow
	}
	copy := *top
	return &copy, nil
}

// --- SeatStore ---

func (f *fakeStores) ListActiveSeats(_ context.Context, gameID uuid.UUID) ([]*models.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []*models.Seat
	for _, s := range f.seats[gameID] {
		if s.Status == models.SeatInGame {
			copy := *s
			active = append(active, &copy)
		}
	}
	return active, nil
}

func (f *fakeStores) GetSeat(_ context.Context, gameID, playerID uuid.UUID) (*models.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.seats[gameID] {
		if s.PlayerID == playerID {
			copy := *s
			return &copy, nil
		}
	}
	return nil, ErrNoRow
}

func (f *fakeStores) SetUnoDeclared(_ context.Context, gameID, playerID uuid.UUID, declared bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.seats[gameID] {
		if s.PlayerID == playerID {
			s.UnoDeclared = declared
			return nil
		}
	}
	return ErrNoRow
}

func (f *fakeStores) GetDirection(_ context.Context, gameID uuid.UUID) (models.TurnDirection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dir, ok := f.dirs[gameID]
	if !ok {
		return "", ErrNoRow
	}
	return dir, nil
}

func (f *fakeStores) SetDirection(_ context.Context, gameID uuid.UUID, dir models.TurnDirection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.dirs[gameID]; !ok {
		return ErrNoRow
	}
	f.dirs[gameID] = dir
	return nil
}

// --- HistoryStore ---

func (f *fakeStores) Append(_ context.Context, entry *models.TurnHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *entry
	f.history = append(f.history, &copy)
	return nil
}

func (f *fakeStores) List(_ context.Context, gameID uuid.UUID) ([]*models.TurnHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []*models.TurnHistory
	for _, h := range f.history {
		if h.GameID == gameID {
			copy := *h
			entries = append(entries, &copy)
		}
	}
	return entries, nil
}

// --- PlayerStore ---

func (f *fakeStores) GetPlayer(_ context.Context, playerID uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[playerID]
	if !ok {
		return nil, ErrNoRow
	}
	copy := *u
	return &copy, nil
}

// lastAction returns the most recent history entry for the game, or "".
func (f *fakeStores) lastAction(gameID uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.history) - 1; i >= 0; i-- {
		if f.history[i].GameID == gameID {
			return f.history[i].Action
		}
	}
	return ""
}

// countLocations tallies the game's cards per location for conservation checks.
func (f *fakeStores) countLocations(gameID uuid.UUID) (pool, hand, discard int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cards {
		if c.GameID != gameID {
			continue
		}
		switch c.Location {
		case models.LocationPool:
			pool++
		case models.LocationHand:
			hand++
		case models.LocationDiscard:
			discard++
		}
	}
	return
}

// setupTestGame creates an in-progress game with numPlayers seated players
// named "player0".."playerN", turn on player0, clockwise order, no cards yet.
func setupTestGame(t *testing.T, numPlayers int) (*Engine, *fakeStores, uuid.UUID, []uuid.UUID) {
	t.Helper()

	f := newFakeStores()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := New(f, f, f, f, f, logger)
	e.Seed(42)

	gameID := uuid.New()
	players := make([]uuid.UUID, numPlayers)
	for i := 0; i < numPlayers; i++ {
		id := uuid.New()
		players[i] = id
		f.users[id] = &models.User{ID: id, Username: fmt.Sprintf("player%d", i)}
		f.seats[gameID] = append(f.seats[gameID], &models.Seat{
			GameID:   gameID,
			PlayerID: id,
			Position: i,
			Status:   models.SeatInGame,
		})
	}
	f.games[gameID] = &models.Game{
		ID:              gameID,
		Name:            "test game",
		Status:          models.GameInProgress,
		MaxPlayers:      numPlayers,
		OwnerID:         players[0],
		CurrentPlayerID: players[0],
	}
	f.dirs[gameID] = models.Clockwise

	return e, f, gameID, players
}

// addCard inserts a card directly into the fake store.
func (f *fakeStores) addCard(gameID uuid.UUID, color models.CardColor, value models.CardValue, loc models.CardLocation, holder *uuid.UUID) *models.Card {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Card{
		ID:       uuid.New(),
		GameID:   gameID,
		Color:    color,
		Value:    value,
		Location: loc,
		HolderID: holder,
	}
	if loc == models.LocationDiscard {
		f.discardSeq++
		c.DiscardOrder = f.discardSeq
	}
	f.cards[c.ID] = c
	return c
}
