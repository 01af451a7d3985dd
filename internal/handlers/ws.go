// internal/handlers/ws.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/models"
	"github.com/sirupsen/logrus"
)

// statusPushInterval is how often the status feed pushes a fresh snapshot.
const statusPushInterval = 2 * time.Second

// StatusWSHandler upgrades the connection to WebSocket and streams read-only
// game status snapshots until the game finishes or the client goes away.
// Path: /game/ws/{game_id}.
func StatusWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameIDStr := strings.TrimPrefix(r.URL.Path, "/game/ws/")
		gameID, err := uuid.Parse(strings.Split(gameIDStr, "/")[0])
		if err != nil {
			http.Error(w, "invalid game_id format (/game/ws/{game_id})", http.StatusBadRequest)
			return
		}

		if _, eerr := gs.Engine.GameStatus(r.Context(), gameID); eerr != nil {
			writeEngineError(w, eerr)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"status"},
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for game %s: %v", gameID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exit")

		if c.Subprotocol() != "status" {
			c.Close(websocket.StatusPolicyViolation, "Client must use the 'status' subprotocol.")
			return
		}
		logger.Infof("Status feed opened for game %s from %s", gameID, r.RemoteAddr)

		ctx := r.Context()
		ticker := time.NewTicker(statusPushInterval)
		defer ticker.Stop()

		for {
			snap, eerr := gs.Engine.GameStatus(ctx, gameID)
			if eerr != nil {
				c.Close(websocket.StatusInternalError, "status read failed")
				return
			}
			data, err := json.Marshal(snap)
			if err != nil {
				c.Close(websocket.StatusInternalError, "encode failed")
				return
			}
			if err := c.Write(ctx, websocket.MessageText, data); err != nil {
				logger.Infof("Status feed closed for game %s: %v", gameID, err)
				return
			}
			if snap.Status == models.GameFinished {
				c.Close(websocket.StatusNormalClosure, "game finished")
				return
			}

			select {
			case <-ctx.Done():
				c.Close(websocket.StatusGoingAway, "server shutting down")
				return
			case <-ticker.C:
			}
		}
	}
}
