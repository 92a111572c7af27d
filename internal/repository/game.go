package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository archives scored games, one JSON value per game.
type GameRepository interface {
	Save(ctx context.Context, game *entity.GameResult) error
	GetByID(ctx context.Context, id string) (*entity.GameResult, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewGameRepository stores games under prefix+id. A zero ttl keeps them forever.
func NewGameRepository(client *redis.Client, prefix string, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (that *dbGame) Save(ctx context.Context, game *entity.GameResult) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, that.prefix+game.ID, gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameResult, error) {
	response, err := that.client.Get(ctx, that.prefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.GameResult
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, that.prefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}
