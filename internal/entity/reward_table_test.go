package entity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardTable_Get(t *testing.T) {
	t.Run("Unknown key reads as zero", func(t *testing.T) {
		table := NewRewardTable()

		assert.Equal(t, 0, table.Get("---------"))
		assert.NotContains(t, table.Snapshot(), "---------")
	})

	t.Run("Accumulate creates and adds", func(t *testing.T) {
		table := NewRewardTable()

		table.Accumulate("X--------", 2)
		table.Accumulate("X--------", -3)

		assert.Equal(t, -1, table.Get("X--------"))
	})
}

func TestRewardTable_UpdateFromGame(t *testing.T) {
	t.Run("Computer win rewards every visited position", func(t *testing.T) {
		// Given: a game O won with the top row
		history := playHistory(4, 0, 8, 1, 6, 2)
		require.Equal(t, PlayerO, history.Last().Board.Winner())
		table := NewRewardTable()

		// When: updating the table
		reward := table.UpdateFromGame(history, PlayerO)

		// Then: every position got +1, the empty board included
		assert.Equal(t, RewardWin, reward)
		assert.Equal(t, history.Len(), table.Len())
		for _, state := range history.States() {
			assert.Equal(t, 1, table.Get(state.Board.Key()))
		}
		assert.Equal(t, 1, table.Get(Board{}.Key()))
	})

	t.Run("Human win penalises every position", func(t *testing.T) {
		history := playHistory(0, 3, 1, 4, 2)
		table := NewRewardTable()

		reward := table.UpdateFromGame(history, PlayerX)

		assert.Equal(t, RewardLoss, reward)
		for _, state := range history.States() {
			assert.Equal(t, -1, table.Get(state.Board.Key()))
		}
	})

	t.Run("Draw creates zero entries", func(t *testing.T) {
		history := playHistory(0, 4)
		table := NewRewardTable()

		reward := table.UpdateFromGame(history, EmptyCell)

		assert.Equal(t, RewardDraw, reward)
		value, ok := table.Snapshot()[history.Last().Board.Key()]
		assert.True(t, ok)
		assert.Equal(t, 0, value)
	})

	t.Run("Repeated positions accumulate", func(t *testing.T) {
		// Given: a history that visits the empty board twice
		history := NewHistory()
		history = history.Append(0, NewBoardState())
		table := NewRewardTable()

		// When: O wins
		table.UpdateFromGame(history, PlayerO)

		// Then: the key was added twice, not overwritten
		assert.Equal(t, 2, table.Get(Board{}.Key()))
	})

	t.Run("Games add up", func(t *testing.T) {
		history := playHistory(0, 4)
		table := NewRewardTable()

		table.UpdateFromGame(history, PlayerO)
		table.UpdateFromGame(history, PlayerO)
		table.UpdateFromGame(history, PlayerX)

		assert.Equal(t, 1, table.Get(history.Last().Board.Key()))
	})
}

func TestRewardTable_SnapshotAndLoad(t *testing.T) {
	// Given: a table with two entries
	table := NewRewardTable()
	table.Accumulate("a", 1)
	table.Accumulate("b", -2)

	// When: snapshotting and loading into another table
	snapshot := table.Snapshot()
	snapshot["a"] = 100

	restored := NewRewardTable()
	restored.Accumulate("c", 5)
	restored.Load(table.Snapshot())

	// Then: the snapshot is a copy and Load merges
	assert.Equal(t, 1, table.Get("a"))
	assert.Equal(t, map[string]int{"a": 1, "b": -2, "c": 5}, restored.Snapshot())
}

func TestRewardTable_ConcurrentAccess(t *testing.T) {
	table := NewRewardTable()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table.Accumulate("key", 1)
				_ = table.Get("key")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, table.Get("key"))
}
