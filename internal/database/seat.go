// internal/database/seat.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openuno/uno-service/internal/engine"
	"github.com/openuno/uno-service/internal/models"
)

// SeatStore is the pgx adapter behind engine.SeatStore.
type SeatStore struct {
	Pool *pgxpool.Pool
}

func NewSeatStore(pool *pgxpool.Pool) *SeatStore {
	return &SeatStore{Pool: pool}
}

func (s *SeatStore) ListActiveSeats(ctx context.Context, gameID uuid.UUID) ([]*models.Seat, error) {
	q := `
	SELECT game_id, player_id, position, status, uno_declared
	FROM seats
	WHERE game_id=$1 AND status='inGame'
	ORDER BY position ASC
	`
	rows, err := s.Pool.Query(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("list seats for game %s: %w", gameID, err)
	}
	defer rows.Close()

	var seats []*models.Seat
	for rows.Next() {
		var seat models.Seat
		if err := rows.Scan(&seat.GameID, &seat.PlayerID, &seat.Position, &seat.Status, &seat.UnoDeclared); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}
	return seats, rows.Err()
}

func (s *SeatStore) GetSeat(ctx context.Context, gameID, playerID uuid.UUID) (*models.Seat, error) {
	var seat models.Seat
	q := `
	SELECT game_id, player_id, position, status, uno_declared
	FROM seats
	WHERE game_id=$1 AND player_id=$2
	`
	err := s.Pool.QueryRow(ctx, q, gameID, playerID).Scan(
		&seat.GameID, &seat.PlayerID, &seat.Position, &seat.Status, &seat.UnoDeclared,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, engine.ErrNoRow
	}
	if err != nil {
		return nil, fmt.Errorf("fetch seat (%s, %s): %w", gameID, playerID, err)
	}
	return &seat, nil
}

func (s *SeatStore) SetUnoDeclared(ctx context.Context, gameID, playerID uuid.UUID, declared bool) error {
	q := `UPDATE seats SET uno_declared=$1 WHERE game_id=$2 AND player_id=$3`
	tag, err := s.Pool.Exec(ctx, q, declared, gameID, playerID)
	if err != nil {
		return fmt.Errorf("set uno_declared for (%s, %s): %w", gameID, playerID, err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrNoRow
	}
	return nil
}

func (s *SeatStore) GetDirection(ctx context.Context, gameID uuid.UUID) (models.TurnDirection, error) {
	var dir models.TurnDirection
	err := s.Pool.QueryRow(ctx, `SELECT direction FROM turn_orders WHERE game_id=$1`, gameID).Scan(&dir)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", engine.ErrNoRow
	}
	if err != nil {
		return "", fmt.Errorf("fetch turn direction for game %s: %w", gameID, err)
	}
	return dir, nil
}

func (s *SeatStore) SetDirection(ctx context.Context, gameID uuid.UUID, dir models.TurnDirection) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE turn_orders SET direction=$1 WHERE game_id=$2`, dir, gameID)
	if err != nil {
		return fmt.Errorf("set turn direction for game %s: %w", gameID, err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrNoRow
	}
	return nil
}
