package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-learner/internal/config"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-learner/internal/scheduler"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
	"github.com/rocketscienceinc/tictactoe-learner/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-learner/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-learner/transport/tui"
)

var ErrAddrNotFound = errors.New("redis host is empty")

const recordBuffer = 16

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rewards := entity.NewRewardTable()

	keeper, closeStorage, err := initRewardKeeper(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	if keeper != nil {
		restoreCtx, restoreCancel := context.WithTimeout(ctx, conf.Redis.Timeout())
		_, err = keeper.Restore(restoreCtx, rewards)
		restoreCancel()

		if err != nil {
			return fmt.Errorf("could not restore rewards: %w", err)
		}
	}

	var recorder *usecase.Recorder
	if keeper != nil {
		recorder = usecase.NewRecorder(logger, keeper, recordBuffer, conf.Redis.Timeout())
		defer recorder.Close()
	}

	records := make(chan tictactoe.GameRecord, recordBuffer)
	onGameRecorded := func(record tictactoe.GameRecord) {
		if recorder != nil {
			recorder.Enqueue(entity.NewGameResult(record.GameID, record.History, record.Winner, record.Reward, record.NextPlayer, time.Now()))
		}

		// the view only shows recent games, dropping one is harmless
		select {
		case records <- record:
		default:
		}
	}

	controller := tictactoe.NewGameController(
		logger,
		tictactoe.Config{
			HumanMoveDelay:        conf.Delays.HumanMove(),
			RestartFirstMoveDelay: conf.Delays.RestartFirstMove(),
		},
		service.NewBotService(),
		rewards,
		scheduler.NewTimerScheduler(),
		tictactoe.WithOnGameRecorded(onGameRecorded),
	)
	defer controller.Stop()

	log.Info("Starting game", "rewardKeys", rewards.Len(), "persistent", keeper != nil)

	program := tea.NewProgram(tui.NewModel(controller, records), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	controller.Stop()
	log.Info("Game closed, shutting down", "rewardKeys", rewards.Len())

	if keeper != nil {
		recorder.Close()

		// ctx may already be canceled by a signal
		flushCtx, flushCancel := context.WithTimeout(context.Background(), conf.Redis.Timeout())
		defer flushCancel()

		if err = keeper.Flush(flushCtx, rewards); err != nil {
			return fmt.Errorf("could not flush rewards: %w", err)
		}
	}

	return nil
}

// initRewardKeeper connects to redis when persistence is enabled. A nil keeper means
// rewards live in memory only.
func initRewardKeeper(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.RewardKeeper, func(), error) {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		return nil, func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Timeout())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	rewardRepo := repository.NewRewardRepository(redisStorage.Connection, conf.Redis.RewardKey)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GamePrefix, conf.Redis.GameTTL())

	return usecase.NewRewardKeeper(logger, rewardRepo, gameRepo), closeStorage, nil
}
