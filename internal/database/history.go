// internal/database/history.go
package database

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openuno/uno-service/internal/cache"
	"github.com/openuno/uno-service/internal/models"
)

// HistoryStore is the pgx adapter behind engine.HistoryStore. Every appended
// entry is also pushed to the Redis turn queue for the audit consumer; the
// push is best-effort and never fails the operation.
type HistoryStore struct {
	Pool *pgxpool.Pool
}

func NewHistoryStore(pool *pgxpool.Pool) *HistoryStore {
	return &HistoryStore{Pool: pool}
}

func (s *HistoryStore) Append(ctx context.Context, entry *models.TurnHistory) error {
	q := `
	INSERT INTO turn_history (id, game_id, player_id, action, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.Pool.Exec(ctx, q,
		entry.ID, entry.GameID, entry.PlayerID, entry.Action, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("append turn history: %w", err)
	}

	go func(entry models.TurnHistory) {
		record := cache.TurnRecord{
			GameID:    entry.GameID,
			PlayerID:  entry.PlayerID,
			Action:    entry.Action,
			Timestamp: entry.CreatedAt.Unix(),
		}
		if err := cache.PublishTurn(context.Background(), record); err != nil {
			log.Printf("failed to publish turn record for game %v: %v", entry.GameID, err)
		}
	}(*entry)
	return nil
}

func (s *HistoryStore) List(ctx context.Context, gameID uuid.UUID) ([]*models.TurnHistory, error) {
	q := `
	SELECT id, game_id, player_id, action, created_at
	FROM turn_history
	WHERE game_id=$1
	ORDER BY created_at ASC
	`
	rows, err := s.Pool.Query(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("list turn history for game %s: %w", gameID, err)
	}
	defer rows.Close()

	var entries []*models.TurnHistory
	for rows.Next() {
		var h models.TurnHistory
		if err := rows.Scan(&h.ID, &h.GameID, &h.PlayerID, &h.Action, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn history: %w", err)
		}
		entries = append(entries, &h)
	}
	return entries, rows.Err()
}
