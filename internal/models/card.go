// internal/models/card.go
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// CardColor is one of the four playable colors, or black for wilds.
type CardColor string

const (
	ColorRed    CardColor = "red"
	ColorGreen  CardColor = "green"
	ColorBlue   CardColor = "blue"
	ColorYellow CardColor = "yellow"
	ColorBlack  CardColor = "black"
)

// Colors lists the four non-wild colors in deck-building order.
var Colors = []CardColor{ColorRed, ColorGreen, ColorBlue, ColorYellow}

// CardValue is the face of a card: "0".."9" or one of the action values.
type CardValue string

const (
	ValueSkip      CardValue = "Skip"
	ValueReverse   CardValue = "Reverse"
	ValueDraw2     CardValue = "Draw2"
	ValueWild      CardValue = "Wild"
	ValueWildDraw4 CardValue = "Wild_Draw4"
)

// IsWild reports whether the value belongs to one of the 8 black cards.
func (v CardValue) IsWild() bool {
	return v == ValueWild || v == ValueWildDraw4
}

// IsAction reports whether the value is a non-numeric card.
func (v CardValue) IsAction() bool {
	switch v {
	case ValueSkip, ValueReverse, ValueDraw2, ValueWild, ValueWildDraw4:
		return true
	}
	return false
}

// Score returns the card's contribution to an opponent's final score:
// numbers at face value, Skip/Reverse/Draw2 at 20, wilds at 50.
func (v CardValue) Score() int {
	switch v {
	case ValueSkip, ValueReverse, ValueDraw2:
		return 20
	case ValueWild, ValueWildDraw4:
		return 50
	default:
		// "0".."9"
		return int(v[0] - '0')
	}
}

// CardLocation is the tagged state a card occupies at any instant.
// A card is always in exactly one of the three.
type CardLocation string

const (
	LocationPool    CardLocation = "pool"
	LocationHand    CardLocation = "hand"
	LocationDiscard CardLocation = "discard"
)

// Card is one of the 108 cards belonging to a game.
type Card struct {
	ID       uuid.UUID    `json:"id"`
	GameID   uuid.UUID    `json:"game_id"`
	Color    CardColor    `json:"color"`
	Value    CardValue    `json:"value"`
	Location CardLocation `json:"location"`

	// HolderID is the player holding the card when Location is "hand".
	HolderID *uuid.UUID `json:"holder_id,omitempty"`

	// DiscardOrder orders the discard pile; the highest value is the top card.
	DiscardOrder int `json:"discard_order,omitempty"`
}

// Label renders the card the way it appears in status views and history,
// e.g. "red 5" or "black Wild_Draw4".
func (c *Card) Label() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}
