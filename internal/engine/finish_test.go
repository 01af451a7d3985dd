// internal/engine/finish_test.go
package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishGameCallerWins(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 3)
	ctx := context.Background()

	// player0 has an empty hand; the others still hold cards.
	f.addCard(gameID, models.ColorRed, "7", models.LocationHand, &players[1])
	f.addCard(gameID, models.ColorBlue, models.ValueSkip, models.LocationHand, &players[1])
	f.addCard(gameID, models.ColorBlack, models.ValueWild, models.LocationHand, &players[2])

	result, err := e.FinishGame(ctx, gameID, players[0])
	require.Nil(t, err)
	assert.Equal(t, players[0], result.WinnerID)
	assert.Equal(t, "player0", result.WinnerName)
	assert.Equal(t, "player0 wins!", result.Message)

	require.Len(t, result.Scores, 2)
	byPlayer := make(map[uuid.UUID]int)
	for _, s := range result.Scores {
		byPlayer[s.PlayerID] = s.Points
	}
	assert.Equal(t, 27, byPlayer[players[1]]) // 7 + Skip(20)
	assert.Equal(t, 50, byPlayer[players[2]]) // Wild

	game, _ := f.GetGame(ctx, gameID)
	assert.Equal(t, models.GameFinished, game.Status)
	assert.Equal(t, "Won the game", f.lastAction(gameID))
}

func TestFinishGameWalksToLaterSeat(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 3)

	// The caller still holds a card; the empty hand sits two seats on.
	f.addCard(gameID, models.ColorRed, "3", models.LocationHand, &players[0])
	f.addCard(gameID, models.ColorBlue, "4", models.LocationHand, &players[1])

	result, err := e.FinishGame(context.Background(), gameID, players[0])
	require.Nil(t, err)
	assert.Equal(t, players[2], result.WinnerID)
}

func TestFinishGameNoWinner(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 3)
	ctx := context.Background()

	for _, p := range players {
		holder := p
		f.addCard(gameID, models.ColorRed, "3", models.LocationHand, &holder)
	}

	// The walk is bounded: one full loop over the seats, then a hard error.
	_, err := e.FinishGame(ctx, gameID, players[0])
	require.NotNil(t, err)
	assert.Equal(t, CodePreconditionFailed, err.Code)

	game, _ := f.GetGame(ctx, gameID)
	assert.Equal(t, models.GameInProgress, game.Status)
}

func TestFinishGameRequiresInProgress(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 2)
	f.games[gameID].Status = models.GameFinished

	_, err := e.FinishGame(context.Background(), gameID, players[0])
	require.NotNil(t, err)
	assert.Equal(t, CodeInvalidState, err.Code)
}

func TestFinishGameUnseatedStart(t *testing.T) {
	e, _, gameID, _ := setupTestGame(t, 2)

	_, err := e.FinishGame(context.Background(), gameID, uuid.New())
	require.NotNil(t, err)
	assert.Equal(t, CodeNotFound, err.Code)
}
