// internal/engine/finish.go
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
)

// PlayerScore is one player's remaining-hand total at game end.
type PlayerScore struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Points   int       `json:"points"`
}

// GameResult announces the winner and the per-player score summary.
// Scoring table: numeric cards at face value, Skip/Reverse/Draw2 at 20,
// Wild and Wild_Draw4 at 50.
type GameResult struct {
	WinnerID   uuid.UUID     `json:"winner_id"`
	WinnerName string        `json:"winner_name"`
	Message    string        `json:"message"`
	Scores     []PlayerScore `json:"scores"`
}

// FinishGame checks whether playerID has emptied their hand; if not, it walks
// the seats after them, at most once around the table, looking for an empty
// hand. Finding one ends the game: every other player's remaining hand is
// scored and the game status becomes finished. If no hand is empty the result
// is PreconditionFailed rather than an endless re-check.
func (e *Engine) FinishGame(ctx context.Context, gameID, playerID uuid.UUID) (*GameResult, *Error) {
	unlock := e.locks.lock(gameID)
	defer unlock()

	game, err := e.Games.GetGame(ctx, gameID)
	if err != nil {
		return nil, storeErr(err, "game %s not found", gameID)
	}
	if game.Status != models.GameInProgress {
		return nil, invalidState("game %s is not in progress (status %s)", gameID, game.Status)
	}

	seats, serr := e.orderedSeats(ctx, gameID, models.Clockwise)
	if serr != nil {
		return nil, serr
	}
	hands, err := e.Cards.ListHands(ctx, gameID)
	if err != nil {
		return nil, dependency(err, "failed to list hands for game %s", gameID)
	}

	var winner *models.Seat
	candidate := playerID
	for i := 0; i < len(seats); i++ {
		idx := seatIndex(seats, candidate)
		if idx < 0 {
			return nil, notFound("player %s is not seated in game %s", candidate, gameID)
		}
		if len(hands[candidate]) == 0 {
			winner = seats[idx]
			break
		}
		candidate = seats[(idx+1)%len(seats)].PlayerID
	}
	if winner == nil {
		return nil, preconditionFailed("no player has emptied their hand in game %s", gameID)
	}

	scores := make([]PlayerScore, 0, len(seats)-1)
	for _, seat := range seats {
		if seat.PlayerID == winner.PlayerID {
			continue
		}
		points := 0
		for _, card := range hands[seat.PlayerID] {
			points += card.Value.Score()
		}
		scores = append(scores, PlayerScore{
			PlayerID: seat.PlayerID,
			Name:     e.playerName(ctx, seat.PlayerID),
			Points:   points,
		})
	}

	if err := e.Games.UpdateStatus(ctx, gameID, models.GameFinished); err != nil {
		return nil, dependency(err, "failed to finish game %s", gameID)
	}
	if herr := e.appendHistory(ctx, gameID, winner.PlayerID, "Won the game"); herr != nil {
		return nil, herr
	}

	winnerName := e.playerName(ctx, winner.PlayerID)
	e.Log.WithFields(map[string]interface{}{
		"game_id": gameID,
		"winner":  winner.PlayerID,
	}).Info("game finished")
	return &GameResult{
		WinnerID:   winner.PlayerID,
		WinnerName: winnerName,
		Message:    fmt.Sprintf("%s wins!", winnerName),
		Scores:     scores,
	}, nil
}

// seatIndex returns the slice index of playerID's seat, or -1.
func seatIndex(seats []*models.Seat, playerID uuid.UUID) int {
	for i, s := range seats {
		if s.PlayerID == playerID {
			return i
		}
	}
	return -1
}
