// internal/engine/deck.go
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// CatalogSize is the fixed deck size: per color one "0" and two each of
// "1".."9", Skip, Reverse and Draw2 (25 cards x 4 colors), plus 4 Wild and
// 4 Wild_Draw4.
const CatalogSize = 108

// newCatalog builds the 108 card rows for a game, all in the undealt pool.
func newCatalog(gameID uuid.UUID) []*models.Card {
	cards := make([]*models.Card, 0, CatalogSize)

	add := func(color models.CardColor, value models.CardValue) {
		cards = append(cards, &models.Card{
			ID:       uuid.New(),
			GameID:   gameID,
			Color:    color,
			Value:    value,
			Location: models.LocationPool,
		})
	}

	for _, color := range models.Colors {
		add(color, "0")
		for n := 1; n <= 9; n++ {
			v := models.CardValue(fmt.Sprintf("%d", n))
			add(color, v)
			add(color, v)
		}
		for _, v := range []models.CardValue{models.ValueSkip, models.ValueReverse, models.ValueDraw2} {
			add(color, v)
			add(color, v)
		}
	}
	for i := 0; i < 4; i++ {
		add(models.ColorBlack, models.ValueWild)
		add(models.ColorBlack, models.ValueWildDraw4)
	}
	return cards
}

// BuildCatalog creates and persists the full card catalog for a game.
//
// It is NOT idempotent: a second invocation duplicates the catalog, so the
// caller must invoke it exactly once per game (the /game/start handler is the
// single call site). A persistence error aborts the remaining inserts and
// surfaces DependencyFailure; cards already inserted are not rolled back.
func (e *Engine) BuildCatalog(ctx context.Context, gameID uuid.UUID) ([]*models.Card, *Error) {
	cards := newCatalog(gameID)
	for i, c := range cards {
		if err := e.Cards.CreateCard(ctx, c); err != nil {
			e.Log.WithFields(map[string]interface{}{
				"game_id": gameID,
				"created": i,
			}).WithError(err).Error("card catalog creation aborted")
			return nil, dependency(err, "failed to create card catalog for game %s", gameID)
		}
	}
	e.Log.WithField("game_id", gameID).Infof("created %d-card catalog", len(cards))
	return cards, nil
}
