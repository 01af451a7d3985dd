// internal/models/seat.go
package models

import "github.com/google/uuid"

// SeatStatus is a player's participation state within one game.
type SeatStatus string

const (
	SeatWait        SeatStatus = "wait"
	SeatReady       SeatStatus = "ready"
	SeatInGame      SeatStatus = "inGame"
	SeatAbandonment SeatStatus = "abandonment"
	SeatFinalized   SeatStatus = "finalized"
)

// Seat ties a player to a game at a fixed position. Positions define the
// clockwise traversal order; counterclockwise play walks them in reverse.
type Seat struct {
	GameID   uuid.UUID  `json:"game_id"`
	PlayerID uuid.UUID  `json:"player_id"`
	Position int        `json:"position"`
	Status   SeatStatus `json:"status"`

	// UnoDeclared records that the player said UNO while holding exactly one
	// card. It is cleared whenever a card enters the player's hand.
	UnoDeclared bool `json:"uno_declared"`
}
