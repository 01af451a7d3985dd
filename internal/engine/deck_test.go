// internal/engine/deck_test.go
package engine

import (
	"context"
	"testing"

	"github.com/openuno/uno-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogComposition(t *testing.T) {
	e, f, gameID, _ := setupTestGame(t, 2)

	cards, err := e.BuildCatalog(context.Background(), gameID)
	require.Nil(t, err)
	require.Len(t, cards, CatalogSize)

	perColor := make(map[models.CardColor]int)
	perValue := make(map[models.CardValue]int)
	for _, c := range cards {
		assert.Equal(t, gameID, c.GameID)
		assert.Equal(t, models.LocationPool, c.Location)
		assert.Nil(t, c.HolderID)
		perColor[c.Color]++
		perValue[c.Value]++
	}

	// 25 cards per playable color, 8 black wilds.
	for _, color := range models.Colors {
		assert.Equal(t, 25, perColor[color], "color %s", color)
	}
	assert.Equal(t, 8, perColor[models.ColorBlack])

	// One "0" per color, two of everything else.
	assert.Equal(t, 4, perValue["0"])
	assert.Equal(t, 8, perValue["5"])
	assert.Equal(t, 8, perValue[models.ValueSkip])
	assert.Equal(t, 8, perValue[models.ValueReverse])
	assert.Equal(t, 8, perValue[models.ValueDraw2])
	assert.Equal(t, 4, perValue[models.ValueWild])
	assert.Equal(t, 4, perValue[models.ValueWildDraw4])

	pool, _, _ := f.countLocations(gameID)
	assert.Equal(t, CatalogSize, pool)
}

func TestBuildCatalogAbortsOnInsertFailure(t *testing.T) {
	e, f, gameID, _ := setupTestGame(t, 2)
	f.failCreateCardAfter = 10

	cards, err := e.BuildCatalog(context.Background(), gameID)
	require.NotNil(t, err)
	assert.Nil(t, cards)
	assert.Equal(t, CodeDependencyFailure, err.Code)
	assert.Equal(t, 500, err.StatusCode)

	// Already inserted cards stay where they are; nothing rolls back.
	pool, _, _ := f.countLocations(gameID)
	assert.Equal(t, 10, pool)
}

func TestCardValueScore(t *testing.T) {
	assert.Equal(t, 0, models.CardValue("0").Score())
	assert.Equal(t, 7, models.CardValue("7").Score())
	assert.Equal(t, 9, models.CardValue("9").Score())
	assert.Equal(t, 20, models.ValueSkip.Score())
	assert.Equal(t, 20, models.ValueReverse.Score())
	assert.Equal(t, 20, models.ValueDraw2.Score())
	assert.Equal(t, 50, models.ValueWild.Score())
	assert.Equal(t, 50, models.ValueWildDraw4.Score())
}
