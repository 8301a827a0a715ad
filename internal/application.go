package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/scheduler"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/service"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/rest"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	seed := conf.Game.AISeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("computer opponent seeded", "seed", seed)

	gameRepo := repository.NewGameRepository(redisStorage)
	leaderboardRepo := repository.NewLeaderboardRepository(redisStorage)
	botService := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint:gosec // game AI, not crypto
	gameManager := usecase.NewGameManager(logger, gameRepo, leaderboardRepo, botService, scoreTable(conf.Scoring), conf.Game.LeaderboardSize)

	sched := scheduler.New()
	defer func() {
		log.Info("dropping pending game timers", "pending", sched.Pending())
		sched.Stop()
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort, rest.NewHandlers(logger, gameManager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, sched, websocket.Pacing{
			ComputerDelay: conf.Game.ComputerDelay,
			TurnTimeout:   conf.Game.TurnTimeout,
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func scoreTable(conf config.Scoring) tictactoe.ScoreTable {
	return tictactoe.ScoreTable{
		entity.DifficultyEasy:   {Base: conf.EasyBase, TimeCap: conf.TimeCap},
		entity.DifficultyMedium: {Base: conf.MediumBase, TimeCap: conf.TimeCap},
		entity.DifficultyHard:   {Base: conf.HardBase, TimeCap: conf.TimeCap},
	}
}
