// internal/models/game.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// GameStatus is the lifecycle state of a game row.
type GameStatus string

const (
	GameOnHold     GameStatus = "on_hold"
	GameInProgress GameStatus = "in_progress"
	GameFinished   GameStatus = "finished"
)

// Game represents a row in the games table.
type Game struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Status          GameStatus `json:"status"`
	MaxPlayers      int        `json:"max_players"`
	Rules           string     `json:"rules"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	CurrentPlayerID uuid.UUID  `json:"current_player_id"`

	// TimeLimitSec is an optional per-game time limit (0 => no limit).
	TimeLimitSec int       `json:"time_limit_sec"`
	CreatedAt    time.Time `json:"created_at"`
}
