// internal/models/turn_history.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// TurnHistory is an append-only audit entry. The engine only ever writes and
// lists these; entries are never mutated or deleted.
type TurnHistory struct {
	ID        uuid.UUID `json:"id"`
	GameID    uuid.UUID `json:"game_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
