package service

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

// RewardReader is the part of the reward table the bot consults.
type RewardReader interface {
	Get(key string) int
}

type BotService interface {
	SelectMove(board entity.Board, rewards RewardReader) (int, error)
}

// botService picks moves with a single-ply cascade: win, block, then the
// highest learned reward.
type botService struct {
	mark entity.Cell
}

func NewBotService() BotService {
	return &botService{mark: entity.ComputerMark}
}

func (that *botService) SelectMove(board entity.Board, rewards RewardReader) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, fmt.Errorf("bot failed to select move: %w", apperror.ErrNoAvailableMoves)
	}

	if cell, ok := findWinningMove(board, availableCells, that.mark); ok {
		return cell, nil
	}

	if cell, ok := findBlockingMove(board, availableCells, that.mark); ok {
		return cell, nil
	}

	return bestRewardMove(board, availableCells, that.mark, rewards), nil
}

// findWinningMove returns the first cell that completes a line for mark.
func findWinningMove(board entity.Board, cells []int, mark entity.Cell) (int, bool) {
	for _, cell := range cells {
		if entity.DetermineWinner(board.With(cell, mark)) == mark {
			return cell, true
		}
	}

	return 0, false
}

// findBlockingMove returns the first cell where the opponent would complete a line.
func findBlockingMove(board entity.Board, cells []int, mark entity.Cell) (int, bool) {
	return findWinningMove(board, cells, mark.Opponent())
}

// bestRewardMove picks the cell whose resulting position has the highest reward.
// Only a strictly greater reward replaces the current best, so ties keep the lowest index.
func bestRewardMove(board entity.Board, cells []int, mark entity.Cell, rewards RewardReader) int {
	bestMove := cells[0]
	bestReward := math.MinInt

	for _, cell := range cells {
		reward := rewards.Get(board.With(cell, mark).Key())
		if reward > bestReward {
			bestReward = reward
			bestMove = cell
		}
	}

	return bestMove
}
