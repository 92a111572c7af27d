package tictactoe

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/scheduler"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
)

const (
	DefaultHumanMoveDelay        = 2000 * time.Millisecond
	DefaultRestartFirstMoveDelay = 1000 * time.Millisecond
)

type State int

const (
	StateAwaitingHumanMove State = iota
	StateAwaitingComputerMove
	StateGameOver
)

func (that State) String() string {
	switch that {
	case StateAwaitingHumanMove:
		return "awaiting_human_move"
	case StateAwaitingComputerMove:
		return "awaiting_computer_move"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

type Config struct {
	HumanMoveDelay        time.Duration
	RestartFirstMoveDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		HumanMoveDelay:        DefaultHumanMoveDelay,
		RestartFirstMoveDelay: DefaultRestartFirstMoveDelay,
	}
}

// GameRecord describes a game that was scored on restart.
type GameRecord struct {
	GameID     string
	History    entity.History
	Winner     entity.Cell
	Reward     int
	NextPlayer entity.Cell
}

type Option func(*GameController)

// WithOnGameRecorded registers a hook called after every restart, outside the controller lock.
func WithOnGameRecorded(hook func(GameRecord)) Option {
	return func(that *GameController) {
		that.onGameRecorded = hook
	}
}

// GameController owns one game session: the timeline, the displayed step,
// whose turn it is and the reward table the bot learns from.
type GameController struct {
	mu     sync.Mutex
	logger *slog.Logger

	conf      Config
	bot       service.BotService
	rewards   *entity.RewardTable
	scheduler scheduler.Scheduler

	gameID     string
	history    entity.History
	stepNumber int
	xIsNext    bool
	state      State

	// epoch changes whenever a scheduled computer move becomes obsolete.
	epoch         uint64
	cancelPending scheduler.CancelFunc

	onGameRecorded func(GameRecord)
}

func NewGameController(
	logger *slog.Logger,
	conf Config,
	bot service.BotService,
	rewards *entity.RewardTable,
	sched scheduler.Scheduler,
	opts ...Option,
) *GameController {
	controller := &GameController{
		logger:    logger.With("component", "game_controller"),
		conf:      conf,
		bot:       bot,
		rewards:   rewards,
		scheduler: sched,

		gameID:  uuid.NewString(),
		history: entity.NewHistory(),
		xIsNext: true,
		state:   StateAwaitingHumanMove,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// ApplyHumanMove places X on cell. Occupied cells, decided games and moves
// outside the human's turn are ignored.
func (that *GameController) ApplyHumanMove(cell int) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "ApplyHumanMove", "gameID", that.gameID, "cell", cell)

	if that.state != StateAwaitingHumanMove {
		log.Debug("move ignored", "state", that.state)
		return that.snapshotLocked()
	}

	current := that.history.At(that.stepNumber)
	if current.Board.Winner() != entity.EmptyCell {
		log.Debug("move ignored", "reason", "game already has a winner")
		return that.snapshotLocked()
	}

	if err := current.Board.ValidateCell(cell); err != nil {
		log.Debug("move ignored", "reason", err)
		return that.snapshotLocked()
	}

	that.placeLocked(current.Place(cell, entity.HumanMark))
	that.advanceLocked(that.conf.HumanMoveDelay)

	log.Debug("human moved", "step", that.stepNumber, "state", that.state)

	return that.snapshotLocked()
}

// ApplyComputerMove plays the computer's move now instead of waiting for the
// scheduled callback. It is a no-op unless the computer is to move.
func (that *GameController) ApplyComputerMove() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state == StateAwaitingComputerMove {
		that.cancelPendingLocked()
		that.computerMoveLocked()
	}

	return that.snapshotLocked()
}

// Restart scores the finished timeline into the reward table and starts a new game.
// The winner moves first; after a draw the mark whose turn it was moves first.
func (that *GameController) Restart() Snapshot {
	that.mu.Lock()

	log := that.logger.With("method", "Restart", "gameID", that.gameID)

	that.cancelPendingLocked()

	winner := that.history.Last().Board.Winner()
	reward := that.rewards.UpdateFromGame(that.history, winner)

	nextPlayer := winner
	if nextPlayer == entity.EmptyCell {
		nextPlayer = entity.PlayerO
		if that.xIsNext {
			nextPlayer = entity.PlayerX
		}
	}

	record := GameRecord{
		GameID:     that.gameID,
		History:    that.history,
		Winner:     winner,
		Reward:     reward,
		NextPlayer: nextPlayer,
	}

	log.Info("game recorded",
		"winner", string(winner),
		"reward", reward,
		"steps", that.history.Len(),
		"nextPlayer", string(nextPlayer),
		"rewardKeys", that.rewards.Len(),
	)

	that.gameID = uuid.NewString()
	that.history = entity.NewHistory()
	that.stepNumber = 0
	that.xIsNext = nextPlayer == entity.PlayerX
	that.state = StateAwaitingHumanMove

	if nextPlayer == entity.ComputerMark {
		that.state = StateAwaitingComputerMove
		that.scheduleComputerMoveLocked(that.conf.RestartFirstMoveDelay)
	}

	snapshot := that.snapshotLocked()
	hook := that.onGameRecorded
	that.mu.Unlock()

	if hook != nil {
		hook(record)
	}

	return snapshot
}

// JumpTo displays step without touching the timeline. The next move made from
// there discards the later steps. Turn order is recomputed from step parity.
// Nothing is scheduled: on the computer's turn it waits for ApplyComputerMove.
func (that *GameController) JumpTo(step int) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "JumpTo", "gameID", that.gameID, "step", step)

	if step < 0 || step >= that.history.Len() {
		log.Debug("jump ignored", "reason", "step out of range", "steps", that.history.Len())
		return that.snapshotLocked()
	}

	that.cancelPendingLocked()

	that.stepNumber = step
	that.xIsNext = step%2 == 0
	that.deriveStateLocked()

	log.Debug("jumped", "state", that.state)

	return that.snapshotLocked()
}

// Stop cancels a pending computer move. The controller stays usable.
func (that *GameController) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelPendingLocked()
}

func (that *GameController) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

func (that *GameController) Board() entity.Board {
	return that.Snapshot().Board
}

func (that *GameController) Status() Status {
	return that.Snapshot().Status
}

func (that *GameController) MoveList() []Move {
	return that.Snapshot().Moves
}

// applyScheduledComputerMove is the scheduler callback. It re-validates that the
// move it was scheduled for is still wanted.
func (that *GameController) applyScheduledComputerMove(epoch uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if epoch != that.epoch || that.state != StateAwaitingComputerMove {
		that.logger.Debug("stale computer move ignored", "gameID", that.gameID, "state", that.state)
		return
	}

	that.cancelPending = nil
	that.computerMoveLocked()
}

func (that *GameController) computerMoveLocked() {
	current := that.history.At(that.stepNumber)

	cell, err := that.bot.SelectMove(current.Board, that.rewards)
	if err != nil {
		// the controller never asks for a move on a decided board
		panic(fmt.Errorf("implementation error: computer asked to move on %s: %w", current.Board.Key(), err))
	}

	that.placeLocked(current.Place(cell, entity.ComputerMark))
	that.advanceLocked(that.conf.HumanMoveDelay)

	that.logger.Debug("computer moved", "gameID", that.gameID, "cell", cell, "step", that.stepNumber, "state", that.state)
}

func (that *GameController) placeLocked(state entity.BoardState) {
	that.history = that.history.Append(that.stepNumber, state)
	that.stepNumber = that.history.Len() - 1
	that.xIsNext = !that.xIsNext
}

// advanceLocked derives the state after a move and schedules the computer when it is O's turn.
func (that *GameController) advanceLocked(computerDelay time.Duration) {
	that.deriveStateLocked()

	if that.state == StateAwaitingComputerMove {
		that.scheduleComputerMoveLocked(computerDelay)
	}
}

func (that *GameController) deriveStateLocked() {
	switch board := that.history.At(that.stepNumber).Board; {
	case board.IsDecided():
		that.state = StateGameOver
	case that.xIsNext:
		that.state = StateAwaitingHumanMove
	default:
		that.state = StateAwaitingComputerMove
	}
}

func (that *GameController) scheduleComputerMoveLocked(delay time.Duration) {
	that.cancelPendingLocked()

	epoch := that.epoch
	that.cancelPending = that.scheduler.ScheduleAfterDelay(func() {
		that.applyScheduledComputerMove(epoch)
	}, delay)
}

func (that *GameController) cancelPendingLocked() {
	that.epoch++

	if that.cancelPending != nil {
		that.cancelPending()
		that.cancelPending = nil
	}
}
