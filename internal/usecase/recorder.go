package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

type gameRecorder interface {
	Record(ctx context.Context, game *entity.GameResult) error
}

// Recorder persists scored games on its own goroutine so the caller never waits on storage.
type Recorder struct {
	logger  *slog.Logger
	keeper  gameRecorder
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	games  chan *entity.GameResult
	done   chan struct{}
}

func NewRecorder(logger *slog.Logger, keeper gameRecorder, buffer int, timeout time.Duration) *Recorder {
	recorder := &Recorder{
		logger:  logger.With("component", "recorder"),
		keeper:  keeper,
		timeout: timeout,
		games:   make(chan *entity.GameResult, buffer),
		done:    make(chan struct{}),
	}

	go recorder.run()

	return recorder
}

// Enqueue hands game to the worker. It reports false when the queue is full or closed.
func (that *Recorder) Enqueue(game *entity.GameResult) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return false
	}

	select {
	case that.games <- game:
		return true
	default:
		that.logger.Warn("record queue full, game dropped", "method", "Enqueue", "gameID", game.ID)
		return false
	}
}

// Close stops accepting games and waits until the queued ones are written.
func (that *Recorder) Close() {
	that.mu.Lock()
	if !that.closed {
		that.closed = true
		close(that.games)
	}
	that.mu.Unlock()

	<-that.done
}

func (that *Recorder) run() {
	defer close(that.done)

	for game := range that.games {
		ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
		if err := that.keeper.Record(ctx, game); err != nil {
			that.logger.Error("could not persist game", "gameID", game.ID, "error", err)
		}
		cancel()
	}
}
