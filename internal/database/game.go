// internal/database/game.go
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

// GameStore is the pgx adapter behind engine.GameStore.
type GameStore struct {
	Pool *pgxpool.Pool
}

func NewGameStore(pool *pgxpool.Pool) *GameStore {
	return &GameStore{Pool: pool}
}

func (s *GameStore) GetGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	var g models.Game
	var current *uuid.UUID
	q := `
	SELECT id, name, status, max_players, rules, owner_id, current_player_id, time_limit_sec, created_at
	FROM games
	WHERE id=$1
	`
	err := s.Pool.QueryRow(ctx, q, gameID).Scan(
		&g.ID, &g.Name, &g.Status, &g.MaxPlayers, &g.Rules,
		&g.OwnerID, &current, &g.TimeLimitSec, &g.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, engine.ErrNoRow
	}
	if err != nil {
		return nil, fmt.Errorf("fetch game %s: %w", gameID, err)
	}
	if current != nil {
		g.CurrentPlayerID = *current
	}
	return &g, nil
}

func (s *GameStore) UpdateStatus(ctx context.Context, gameID uuid.UUID, status models.GameStatus) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE games SET status=$1 WHERE id=$2`, status, gameID)
	if err != nil {
		return fmt.Errorf("update game %s status: %w", gameID, err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrNoRow
	}
	return nil
}

func (s *GameStore) UpdateCurrentPlayer(ctx context.Context, gameID, playerID uuid.UUID) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE games SET current_player_id=$1 WHERE id=$2`, playerID, gameID)
	if err != nil {
		return fmt.Errorf("update game %s current player: %w", gameID, err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrNoRow
	}
	return nil
}

// CreateGame inserts a new on-hold game owned by ownerID and seats the owner
// at position 0 in one transaction. Lifecycle plumbing, outside the engine.
func (s *GameStore) CreateGame(ctx context.Context, game *models.Game) error {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	game.Status = models.GameOnHold

	err := pgx.BeginTxFunc(ctx, s.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		insGame := `
		INSERT INTO games (id, name, status, max_players, rules, owner_id, time_limit_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, e := tx.Exec(ctx, insGame,
			game.ID, game.Name, game.Status, game.MaxPlayers,
			game.Rules, game.OwnerID, game.TimeLimitSec,
		); e != nil {
			return e
		}
		insSeat := `
		INSERT INTO seats (game_id, player_id, position, status)
		VALUES ($1, $2, 0, 'wait')
		`
		if _, e := tx.Exec(ctx, insSeat, game.ID, game.OwnerID); e != nil {
			return e
		}
		insOrder := `
		INSERT INTO turn_orders (game_id, direction) VALUES ($1, 'clockwise')
		`
		_, e := tx.Exec(ctx, insOrder, game.ID)
		return e
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

// JoinGame seats playerID at the next free position with status 'wait'.
func (s *GameStore) JoinGame(ctx context.Context, gameID, playerID uuid.UUID) error {
	err := pgx.BeginTxFunc(ctx, s.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var maxPlayers, seated int
		q := `
		SELECT g.max_players, (SELECT COUNT(*) FROM seats s WHERE s.game_id = g.id)
		FROM games g WHERE g.id=$1
		`
		if e := tx.QueryRow(ctx, q, gameID).Scan(&maxPlayers, &seated); e != nil {
			return e
		}
		if seated >= maxPlayers {
			return fmt.Errorf("game is full (%d seats)", maxPlayers)
		}
		ins := `
		INSERT INTO seats (game_id, player_id, position, status)
		SELECT $1, $2, COALESCE(MAX(position), -1) + 1, 'wait'
		FROM seats WHERE game_id=$1
		`
		_, e := tx.Exec(ctx, ins, gameID, playerID)
		return e
	})
	if err != nil {
		return fmt.Errorf("join game %s: %w", gameID, err)
	}
	return nil
}

// StartGame flips every seat to inGame, marks the game in_progress and hands
// the first turn to the owner. The caller then builds the catalog and deals.
func (s *GameStore) StartGame(ctx context.Context, gameID uuid.UUID) error {
	err := pgx.BeginTxFunc(ctx, s.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var status models.GameStatus
		var ownerID uuid.UUID
		if e := tx.QueryRow(ctx, `SELECT status, owner_id FROM games WHERE id=$1`, gameID).Scan(&status, &ownerID); e != nil {
			return e
		}
		if status != models.GameOnHold {
			return fmt.Errorf("game already started (status %s)", status)
		}
		if _, e := tx.Exec(ctx, `UPDATE seats SET status='inGame' WHERE game_id=$1`, gameID); e != nil {
			return e
		}
		_, e := tx.Exec(ctx,
			`UPDATE games SET status='in_progress', current_player_id=$1 WHERE id=$2`,
			ownerID, gameID)
		return e
	})
	if err != nil {
		return fmt.Errorf("start game %s: %w", gameID, err)
	}
	return nil
}
