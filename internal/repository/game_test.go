package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/testing/suite"
)

const testGamePrefix = "game:test:"

func newTestGame() *entity.GameResult {
	return &entity.GameResult{
		ID:         "123",
		Positions:  []string{"---------", "----X----"},
		Winner:     entity.EmptyCell,
		Reward:     entity.RewardDraw,
		NextPlayer: entity.PlayerO,
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGameRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Client(), testGamePrefix, time.Minute)

	// When: Save is called
	err := gameRepo.Save(ctx, newTestGame())

	// Then: the game is stored with the configured expiry
	require.NoError(t, err)

	ttl, err := st.Client().TTL(ctx, testGamePrefix+"123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), testGamePrefix, 0)

		// Given: a saved game
		game := newTestGame()
		require.NoError(t, gameRepo.Save(ctx, game))

		// When: GetByID is called with its ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game matches the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Client(), testGamePrefix, 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Client(), testGamePrefix, 0)

	// Given: a saved game
	game := newTestGame()
	require.NoError(t, gameRepo.Save(ctx, game))

	// When: DeleteByID is called
	require.NoError(t, gameRepo.DeleteByID(ctx, game.ID))

	// Then: the game cannot be found anymore
	_, err := gameRepo.GetByID(ctx, game.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
}
