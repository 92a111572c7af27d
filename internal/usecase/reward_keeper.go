package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

type rewardStore interface {
	Load(ctx context.Context) (map[string]int, error)
	Save(ctx context.Context, rewards map[string]int) error
	SaveDelta(ctx context.Context, deltas map[string]int) error
}

type gameStore interface {
	Save(ctx context.Context, game *entity.GameResult) error
}

// RewardKeeper moves the in-memory reward table to and from persistent storage
// and archives every scored game.
type RewardKeeper struct {
	logger *slog.Logger
	store  rewardStore
	games  gameStore
}

func NewRewardKeeper(logger *slog.Logger, store rewardStore, games gameStore) *RewardKeeper {
	return &RewardKeeper{
		logger: logger.With("component", "reward_keeper"),
		store:  store,
		games:  games,
	}
}

// Restore merges the persisted rewards into table and returns how many keys were read.
// Nothing persisted yet is not an error.
func (that *RewardKeeper) Restore(ctx context.Context, table *entity.RewardTable) (int, error) {
	log := that.logger.With("method", "Restore")

	rewards, err := that.store.Load(ctx)
	if errors.Is(err, apperror.ErrRewardsNotFound) {
		log.Info("no persisted rewards, starting fresh")
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to restore rewards: %w", err)
	}

	table.Load(rewards)
	log.Info("rewards restored", "keys", len(rewards))

	return len(rewards), nil
}

// Record persists the reward a scored game added to each of its positions, then
// archives the game itself.
func (that *RewardKeeper) Record(ctx context.Context, game *entity.GameResult) error {
	deltas := make(map[string]int, len(game.Positions))
	for _, position := range game.Positions {
		deltas[position] += game.Reward
	}

	if err := that.store.SaveDelta(ctx, deltas); err != nil {
		return fmt.Errorf("failed to record game rewards: %w", err)
	}

	if err := that.games.Save(ctx, game); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	that.logger.Debug("game recorded", "method", "Record", "gameID", game.ID, "keys", len(deltas), "reward", game.Reward)

	return nil
}

// Flush overwrites the persisted table with table's current content.
func (that *RewardKeeper) Flush(ctx context.Context, table *entity.RewardTable) error {
	snapshot := table.Snapshot()

	if err := that.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to flush rewards: %w", err)
	}

	that.logger.Info("rewards flushed", "method", "Flush", "keys", len(snapshot))

	return nil
}
