package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

// RewardRepository keeps a reward table as one redis hash: field is the board key,
// value the accumulated reward.
type RewardRepository interface {
	Load(ctx context.Context) (map[string]int, error)
	Save(ctx context.Context, rewards map[string]int) error
	SaveDelta(ctx context.Context, deltas map[string]int) error
	Delete(ctx context.Context) error
}

type dbReward struct {
	client *redis.Client
	key    string
}

func NewRewardRepository(client *redis.Client, key string) RewardRepository {
	return &dbReward{
		client: client,
		key:    key,
	}
}

func (that *dbReward) Load(ctx context.Context) (map[string]int, error) {
	fields, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}

	if len(fields) == 0 {
		return nil, apperror.ErrRewardsNotFound
	}

	rewards := make(map[string]int, len(fields))
	for boardKey, value := range fields {
		if _, err = entity.ParseBoard(boardKey); err != nil {
			return nil, fmt.Errorf("failed to load rewards: %w", err)
		}

		reward, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reward for %q: %w", boardKey, err)
		}

		rewards[boardKey] = reward
	}

	return rewards, nil
}

// Save replaces the stored table with rewards.
func (that *dbReward) Save(ctx context.Context, rewards map[string]int) error {
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, that.key)

		if len(rewards) == 0 {
			return nil
		}

		values := make(map[string]interface{}, len(rewards))
		for boardKey, reward := range rewards {
			values[boardKey] = reward
		}

		pipe.HSet(ctx, that.key, values)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save rewards: %w", err)
	}

	return nil
}

// SaveDelta adds deltas to the stored rewards. Zero deltas still create the field.
func (that *dbReward) SaveDelta(ctx context.Context, deltas map[string]int) error {
	if len(deltas) == 0 {
		return nil
	}

	_, err := that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for boardKey, delta := range deltas {
			pipe.HIncrBy(ctx, that.key, boardKey, int64(delta))
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add reward deltas: %w", err)
	}

	return nil
}

func (that *dbReward) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to delete rewards: %w", err)
	}

	return nil
}
