// internal/models/turn_order.go
package models

// TurnDirection is the per-game traversal direction over seats.
type TurnDirection string

const (
	Clockwise        TurnDirection = "clockwise"
	Counterclockwise TurnDirection = "counterclockwise"
)

// Opposite returns the flipped direction.
func (d TurnDirection) Opposite() TurnDirection {
	if d == Clockwise {
		return Counterclockwise
	}
	return Clockwise
}
