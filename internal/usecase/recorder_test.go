package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-learner/mocks/usecase"
)

func newTestGame(id string) *entity.GameResult {
	return entity.NewGameResult(id, entity.NewHistory(), entity.EmptyCell, entity.RewardDraw, entity.PlayerX, time.Now())
}

func TestRecorder(t *testing.T) {
	t.Run("Enqueue returns before storage answers", func(t *testing.T) {
		// Given: a store that blocks until released
		mockStore := mockedUseCase.NewMockrewardStore(t)
		mockGames := mockedUseCase.NewMockgameStore(t)
		keeper := NewRewardKeeper(newTestLogger(), mockStore, mockGames)

		release := make(chan struct{})
		mockStore.EXPECT().
			SaveDelta(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, map[string]int) error {
				<-release
				return nil
			}).
			Twice()
		mockGames.EXPECT().
			Save(mock.Anything, mock.Anything).
			Return(nil).
			Twice()

		recorder := NewRecorder(newTestLogger(), keeper, 4, time.Second)

		// When: two games are handed over
		queued := make(chan bool, 2)
		go func() {
			queued <- recorder.Enqueue(newTestGame("a"))
			queued <- recorder.Enqueue(newTestGame("b"))
		}()

		// Then: both are accepted while the store is still blocked
		for range 2 {
			select {
			case ok := <-queued:
				assert.True(t, ok)
			case <-time.After(time.Second):
				t.Fatal("Enqueue blocked on storage")
			}
		}

		// When: storage answers and the recorder closes
		close(release)
		recorder.Close()

		// Then: both games were written (checked by the mock cleanup)
	})

	t.Run("Full queue drops the game", func(t *testing.T) {
		var mu sync.Mutex
		recorded := make([]string, 0, 2)
		release := make(chan struct{})

		keeper := recorderFunc(func(_ context.Context, game *entity.GameResult) error {
			<-release
			mu.Lock()
			recorded = append(recorded, game.ID)
			mu.Unlock()
			return nil
		})

		// Given: a one-slot queue whose worker is stuck on the first game
		recorder := NewRecorder(newTestLogger(), keeper, 1, time.Second)
		assert.True(t, recorder.Enqueue(newTestGame("first")))
		assert.Eventually(t, func() bool { return len(recorder.games) == 0 }, time.Second, time.Millisecond)
		assert.True(t, recorder.Enqueue(newTestGame("second")))

		// When: a third game arrives
		ok := recorder.Enqueue(newTestGame("third"))

		// Then: it is refused and the others still land
		assert.False(t, ok)
		close(release)
		recorder.Close()
		assert.Equal(t, []string{"first", "second"}, recorded)
	})

	t.Run("Closed recorder refuses games", func(t *testing.T) {
		recorder := NewRecorder(newTestLogger(), recorderFunc(func(context.Context, *entity.GameResult) error {
			return errRedisDown
		}), 1, time.Second)

		recorder.Close()
		recorder.Close()

		assert.False(t, recorder.Enqueue(newTestGame("late")))
	})
}

type recorderFunc func(ctx context.Context, game *entity.GameResult) error

func (that recorderFunc) Record(ctx context.Context, game *entity.GameResult) error {
	return that(ctx, game)
}
