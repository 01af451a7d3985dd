// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/openuno/uno-service/internal/auth"
	"github.com/openuno/uno-service/internal/cache"
	"github.com/openuno/uno-service/internal/database"
	"github.com/openuno/uno-service/internal/engine"
	"github.com/openuno/uno-service/internal/handlers"
	"github.com/openuno/uno-service/internal/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	auth.Init()
	database.ConnectDB()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	if err := cache.ConnectRedis(); err != nil {
		// The turn queue is a fan-out copy; the service runs without it.
		logger.Warnf("redis unavailable, turn queue disabled: %v", err)
	}

	games := database.NewGameStore(database.DB)
	cards := database.NewCardStore(database.DB)
	seats := database.NewSeatStore(database.DB)
	history := database.NewHistoryStore(database.DB)
	users := database.NewUserStore(database.DB)

	eng := engine.New(games, cards, seats, history, users, logger)

	userSrv := handlers.NewUserServer(users)
	gameSrv := handlers.NewGameServer(eng, games, logger)

	mux := http.NewServeMux()

	// user endpoints
	mux.HandleFunc("/user/create", userSrv.CreateUserHandler)
	mux.HandleFunc("/user/login", userSrv.LoginHandler)

	logged := middleware.LogMiddleware(logger)

	// game lifecycle
	mux.Handle("/game/create", logged(http.HandlerFunc(gameSrv.CreateGameHandler)))
	mux.Handle("/game/join", logged(http.HandlerFunc(gameSrv.JoinGameHandler)))
	mux.Handle("/game/start", logged(http.HandlerFunc(gameSrv.StartGameHandler)))

	// in-game actions
	mux.Handle("/game/deal", logged(http.HandlerFunc(gameSrv.DealHandler)))
	mux.Handle("/game/draw", logged(http.HandlerFunc(gameSrv.DrawHandler)))
	mux.Handle("/game/play", logged(http.HandlerFunc(gameSrv.PlayHandler)))
	mux.Handle("/game/reverse", logged(http.HandlerFunc(gameSrv.ReverseHandler)))
	mux.Handle("/game/uno", logged(http.HandlerFunc(gameSrv.SayUnoHandler)))
	mux.Handle("/game/uno/challenge", logged(http.HandlerFunc(gameSrv.ChallengeUnoHandler)))
	mux.Handle("/game/finish", logged(http.HandlerFunc(gameSrv.FinishGameHandler)))
	mux.Handle("/game/status", logged(http.HandlerFunc(gameSrv.StatusHandler)))

	// read-only status feed
	mux.Handle("/game/ws/", logged(http.HandlerFunc(
		handlers.StatusWSHandler(logger, gameSrv),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
