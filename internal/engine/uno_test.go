// internal/engine/uno_test.go
package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSayUnoWithOneCard(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 2)
	ctx := context.Background()

	f.addCard(gameID, models.ColorRed, "5", models.LocationHand, &players[0])

	result, err := e.SayUno(ctx, gameID, players[0])
	require.Nil(t, err)
	assert.Equal(t, players[0], result.PlayerID)
	assert.Equal(t, "player0 said UNO", result.Message)

	seat, _ := f.GetSeat(ctx, gameID, players[0])
	assert.True(t, seat.UnoDeclared)
	assert.Equal(t, "Said UNO", f.lastAction(gameID))
}

func TestSayUnoRejectedWithTwoCards(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 2)
	ctx := context.Background()

	f.addCard(gameID, models.ColorRed, "5", models.LocationHand, &players[0])
	f.addCard(gameID, models.ColorBlue, "2", models.LocationHand, &players[0])

	_, err := e.SayUno(ctx, gameID, players[0])
	require.NotNil(t, err)
	assert.Equal(t, CodePreconditionFailed, err.Code)
	assert.Equal(t, 400, err.StatusCode)
	assert.Contains(t, err.Message, "player0")
	assert.Contains(t, err.Message, "2 cards")

	seat, _ := f.GetSeat(ctx, gameID, players[0])
	assert.False(t, seat.UnoDeclared)
}

func TestSayUnoRejectedWithEmptyHand(t *testing.T) {
	e, _, gameID, players := setupTestGame(t, 2)

	_, err := e.SayUno(context.Background(), gameID, players[0])
	require.NotNil(t, err)
	assert.Equal(t, CodePreconditionFailed, err.Code)
}

func TestSayUnoUnseatedPlayer(t *testing.T) {
	e, _, gameID, _ := setupTestGame(t, 2)

	_, err := e.SayUno(context.Background(), gameID, uuid.New())
	require.NotNil(t, err)
	assert.Equal(t, CodeNotFound, err.Code)
}

func TestChallengeUnoFailsWhenDefenderDeclared(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 3)
	ctx := context.Background()

	// player1 is down to one card and declared in time; player0 challenges.
	f.addCard(gameID, models.ColorRed, "5", models.LocationHand, &players[1])
	require.NoError(t, f.SetUnoDeclared(ctx, gameID, players[1], true))

	result, err := e.ChallengeUno(ctx, gameID, players[0], players[1])
	require.Nil(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "player1 said UNO in time", result.Message)
	// The failed challenge costs the challenger their turn.
	assert.Equal(t, players[1], result.NextPlayer)

	game, _ := f.GetGame(ctx, gameID)
	assert.Equal(t, players[1], game.CurrentPlayerID)
	assert.Equal(t, "Challenged player1 and lost", f.lastAction(gameID))
}

func TestChallengeUnoSucceedsWhenDefenderSilent(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 3)
	ctx := context.Background()

	f.addCard(gameID, models.ColorRed, "5", models.LocationHand, &players[1])

	result, err := e.ChallengeUno(ctx, gameID, players[0], players[1])
	require.Nil(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "player1 failed to say UNO", result.Message)

	// A won challenge does not move the turn.
	game, _ := f.GetGame(ctx, gameID)
	assert.Equal(t, players[0], game.CurrentPlayerID)
	assert.Equal(t, "Challenged player1 and won", f.lastAction(gameID))
}

func TestChallengeUnoSucceedsWhenHandGrewBack(t *testing.T) {
	e, f, gameID, players := setupTestGame(t, 3)
	ctx := context.Background()

	// A stale declaration with two cards in hand no longer protects.
	f.addCard(gameID, models.ColorRed, "5", models.LocationHand, &players[1])
	f.addCard(gameID, models.ColorBlue, "2", models.LocationHand, &players[1])
	require.NoError(t, f.SetUnoDeclared(ctx, gameID, players[1], true))

	result, err := e.ChallengeUno(ctx, gameID, players[0], players[1])
	require.Nil(t, err)
	assert.True(t, result.Succeeded)
}

func TestChallengeUnoUnseatedDefender(t *testing.T) {
	e, _, gameID, players := setupTestGame(t, 2)

	_, err := e.ChallengeUno(context.Background(), gameID, players[0], uuid.New())
	require.NotNil(t, err)
	assert.Equal(t, CodeNotFound, err.Code)
}
