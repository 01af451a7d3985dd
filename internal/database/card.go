// internal/database/card.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openuno/uno-service/internal/engine"
	"github.com/openuno/uno-service/internal/models"
)

// CardStore is the pgx adapter behind engine.CardStore.
type CardStore struct {
	Pool *pgxpool.Pool
}

func NewCardStore(pool *pgxpool.Pool) *CardStore {
	return &CardStore{Pool: pool}
}

const cardColumns = `id, game_id, color, value, location, holder_id, discard_order`

func scanCard(row pgx.Row) (*models.Card, error) {
	var c models.Card
	var discardOrder *int
	err := row.Scan(&c.ID, &c.GameID, &c.Color, &c.Value, &c.Location, &c.HolderID, &discardOrder)
	if err != nil {
		return nil, err
	}
	if discardOrder != nil {
		c.DiscardOrder = *discardOrder
	}
	return &c, nil
}

func (s *CardStore) CreateCard(ctx context.Context, card *models.Card) error {
	q := `
	INSERT INTO cards (id, game_id, color, value, location)
	VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.Pool.Exec(ctx, q, card.ID, card.GameID, card.Color, card.Value, card.Location); err != nil {
		return fmt.Errorf("insert card %s: %w", card.ID, err)
	}
	return nil
}

func (s *CardStore) GetCard(ctx context.Context, cardID uuid.UUID) (*models.Card, error) {
	q := `SELECT ` + cardColumns + ` FROM cards WHERE id=$1`
	c, err := scanCard(s.Pool.QueryRow(ctx, q, cardID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, engine.ErrNoRow
	}
	if err != nil {
		return nil, fmt.Errorf("fetch card %s: %w", cardID, err)
	}
	return c, nil
}

func (s *CardStore) listCards(ctx context.Context, q string, args ...interface{}) ([]*models.Card, error) {
	rows, err := s.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (s *CardStore) ListPool(ctx context.Context, gameID uuid.UUID) ([]*models.Card, error) {
	q := `SELECT ` + cardColumns + ` FROM cards WHERE game_id=$1 AND location='pool'`
	cards, err := s.listCards(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("list pool for game %s: %w", gameID, err)
	}
	return cards, nil
}

func (s *CardStore) ListHand(ctx context.Context, gameID, playerID uuid.UUID) ([]*models.Card, error) {
	q := `SELECT ` + cardColumns + ` FROM cards WHERE game_id=$1 AND location='hand' AND holder_id=$2`
	cards, err := s.listCards(ctx, q, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("list hand for player %s: %w", playerID, err)
	}
	return cards, nil
}

func (s *CardStore) ListHands(ctx context.Context, gameID uuid.UUID) (map[uuid.UUID][]*models.Card, error) {
	q := `SELECT ` + cardColumns + ` FROM cards WHERE game_id=$1 AND location='hand'`
	cards, err := s.listCards(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("list hands for game %s: %w", gameID, err)
	}
	hands := make(map[uuid.UUID][]*models.Card)
	for _, c := range cards {
		hands[*c.HolderID] = append(hands[*c.HolderID], c)
	}
	return hands, nil
}

func (s *CardStore) MoveToHand(ctx context.Context, cardID, playerID uuid.UUID) error {
	q := `
	UPDATE cards SET location='hand', holder_id=$1, discard_order=NULL
	WHERE id=$2
	`
	tag, err := s.Pool.Exec(ctx, q, playerID, cardID)
	if err != nil {
		return fmt.Errorf("move card %s to hand: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrNoRow
	}
	return nil
}

func (s *CardStore) MoveToDiscard(ctx context.Context, cardID uuid.UUID) error {
	// The subquery computes the next discard_order within the card's game,
	// making the moved card the new top of the pile.
	q := `
	UPDATE cards SET location='discard', holder_id=NULL,
	       discard_order = (
	           SELECT COALESCE(MAX(discard_order), 0) + 1
	           FROM cards c2 WHERE c2.game_id = cards.game_id
	       )
	WHERE id=$1
	`
	tag, err := s.Pool.Exec(ctx, q, cardID)
	if err != nil {
		return fmt.Errorf("move card %s to discard: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrNoRow
	}
	return nil
}

func (s *CardStore) TopDiscard(ctx context.Context, gameID uuid.UUID) (*models.Card, error) {
	q := `
	SELECT ` + cardColumns + ` FROM cards
	WHERE game_id=$1 AND location='discard'
	ORDER BY discard_order DESC
	LIMIT 1
	`
	c, err := scanCard(s.Pool.QueryRow(ctx, q, gameID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, engine.ErrNoRow
	}
	if err != nil {
		return nil, fmt.Errorf("fetch top discard for game %s: %w", gameID, err)
	}
	return c, nil
}
