// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/database"
	"github.com/openuno/uno-service/internal/engine"
	"github.com/openuno/uno-service/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultHandSize is how many cards each player receives when a game starts.
const DefaultHandSize = 7

// GameServer bundles the game endpoints: lifecycle plumbing goes straight to
// the stores, in-game actions go through the engine.
type GameServer struct {
	Engine *engine.Engine
	Games  *database.GameStore
	Log    *logrus.Logger
}

func NewGameServer(e *engine.Engine, games *database.GameStore, log *logrus.Logger) *GameServer {
	return &GameServer{Engine: e, Games: games, Log: log}
}

type gameRequest struct {
	GameID     uuid.UUID `json:"game_id"`
	CardID     uuid.UUID `json:"card_id,omitempty"`
	DefenderID uuid.UUID `json:"defender_id,omitempty"`
	PlayerID   uuid.UUID `json:"player_id,omitempty"`
	PerPlayer  int       `json:"per_player,omitempty"`
}

func decodeGameRequest(w http.ResponseWriter, r *http.Request) (*gameRequest, uuid.UUID, bool) {
	userID, err := authedUser(r)
	if err != nil {
		http.Error(w, "invalid or missing auth token", http.StatusForbidden)
		return nil, uuid.Nil, false
	}
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return nil, uuid.Nil, false
	}
	if req.GameID == uuid.Nil {
		http.Error(w, "game_id is required", http.StatusBadRequest)
		return nil, uuid.Nil, false
	}
	return &req, userID, true
}

// CreateGameHandler creates a new on-hold game owned by the caller.
func (s *GameServer) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := authedUser(r)
	if err != nil {
		http.Error(w, "invalid or missing auth token", http.StatusForbidden)
		return
	}
	var req struct {
		Name         string `json:"name"`
		MaxPlayers   int    `json:"max_players"`
		Rules        string `json:"rules"`
		TimeLimitSec int    `json:"time_limit_sec"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.MaxPlayers <= 0 {
		req.MaxPlayers = 4
	}

	game := models.Game{
		Name:         req.Name,
		MaxPlayers:   req.MaxPlayers,
		Rules:        req.Rules,
		OwnerID:      userID,
		TimeLimitSec: req.TimeLimitSec,
	}
	if err := s.Games.CreateGame(r.Context(), &game); err != nil {
		s.Log.WithError(err).Error("failed to create game")
		http.Error(w, "error creating game", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// JoinGameHandler seats the caller in an on-hold game.
func (s *GameServer) JoinGameHandler(w http.ResponseWriter, r *http.Request) {
	req, userID, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	if err := s.Games.JoinGame(r.Context(), req.GameID, userID); err != nil {
		s.Log.WithError(err).Warn("failed to join game")
		http.Error(w, "unable to join game", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"game_id": req.GameID, "player_id": userID})
}

// StartGameHandler moves the game to in_progress, builds the 108-card
// catalog and deals the initial hands. This is the single BuildCatalog call
// site, which keeps the non-idempotent catalog builder from running twice.
func (s *GameServer) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	req, _, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	perPlayer := req.PerPlayer
	if perPlayer <= 0 {
		perPlayer = DefaultHandSize
	}

	if err := s.Games.StartGame(r.Context(), req.GameID); err != nil {
		s.Log.WithError(err).Warn("failed to start game")
		http.Error(w, "unable to start game", http.StatusConflict)
		return
	}
	if _, err := s.Engine.BuildCatalog(r.Context(), req.GameID); err != nil {
		writeEngineError(w, err)
		return
	}
	deals, err := s.Engine.DealInitialHands(r.Context(), req.GameID, perPlayer)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"game_id": req.GameID, "deals": deals})
}

// DealHandler deals additional cards to every active seat.
func (s *GameServer) DealHandler(w http.ResponseWriter, r *http.Request) {
	req, _, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	if req.PerPlayer <= 0 {
		http.Error(w, "per_player must be positive", http.StatusBadRequest)
		return
	}
	deals, err := s.Engine.DealInitialHands(r.Context(), req.GameID, req.PerPlayer)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"game_id": req.GameID, "deals": deals})
}

// DrawHandler draws one card for the caller. The turn does not advance.
func (s *GameServer) DrawHandler(w http.ResponseWriter, r *http.Request) {
	req, userID, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	drawn, err := s.Engine.DrawCard(r.Context(), req.GameID, userID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drawn)
}

// PlayHandler plays a card from the caller's hand.
func (s *GameServer) PlayHandler(w http.ResponseWriter, r *http.Request) {
	req, userID, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	if req.CardID == uuid.Nil {
		http.Error(w, "card_id is required", http.StatusBadRequest)
		return
	}
	result, err := s.Engine.PlayCard(r.Context(), req.GameID, userID, req.CardID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ReverseHandler flips the turn direction and advances one seat.
func (s *GameServer) ReverseHandler(w http.ResponseWriter, r *http.Request) {
	req, _, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	result, err := s.Engine.Reverse(r.Context(), req.GameID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SayUnoHandler records the caller's UNO declaration.
func (s *GameServer) SayUnoHandler(w http.ResponseWriter, r *http.Request) {
	req, userID, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	result, err := s.Engine.SayUno(r.Context(), req.GameID, userID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ChallengeUnoHandler disputes a defender's missing UNO declaration.
func (s *GameServer) ChallengeUnoHandler(w http.ResponseWriter, r *http.Request) {
	req, userID, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	if req.DefenderID == uuid.Nil {
		http.Error(w, "defender_id is required", http.StatusBadRequest)
		return
	}
	result, err := s.Engine.ChallengeUno(r.Context(), req.GameID, userID, req.DefenderID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// FinishGameHandler checks for a winner starting at player_id (default: the
// caller) and ends the game when an empty hand is found.
func (s *GameServer) FinishGameHandler(w http.ResponseWriter, r *http.Request) {
	req, userID, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	startAt := req.PlayerID
	if startAt == uuid.Nil {
		startAt = userID
	}
	result, err := s.Engine.FinishGame(r.Context(), req.GameID, startAt)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// StatusHandler returns the full read-only snapshot of a game.
func (s *GameServer) StatusHandler(w http.ResponseWriter, r *http.Request) {
	gameIDStr := r.URL.Query().Get("game_id")
	gameID, err := uuid.Parse(gameIDStr)
	if err != nil {
		http.Error(w, "invalid game_id", http.StatusBadRequest)
		return
	}
	snap, eerr := s.Engine.GameStatus(r.Context(), gameID)
	if eerr != nil {
		writeEngineError(w, eerr)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
