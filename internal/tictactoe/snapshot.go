package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

type Status struct {
	Winner  entity.Cell `json:"winner"`
	XIsNext bool        `json:"x_is_next"`
	State   State       `json:"state"`
}

// Text is the status line shown above the board.
func (that Status) Text() string {
	if that.Winner != entity.EmptyCell {
		return "Winner: " + string(that.Winner)
	}

	if that.XIsNext {
		return "Next player: " + string(entity.PlayerX)
	}

	return "Next player: " + string(entity.PlayerO)
}

// Move is one entry of the jump list.
type Move struct {
	Step      int    `json:"step"`
	IsInitial bool   `json:"is_initial"`
	Current   bool   `json:"current"`
	Label     string `json:"label"`
}

// Snapshot is everything a view needs to draw the game. It never aliases controller state.
type Snapshot struct {
	GameID     string       `json:"game_id"`
	Board      entity.Board `json:"board"`
	Status     Status       `json:"status"`
	StepNumber int          `json:"step_number"`
	Moves      []Move       `json:"moves"`
}

func (that *GameController) snapshotLocked() Snapshot {
	board := that.history.At(that.stepNumber).Board

	moves := make([]Move, that.history.Len())
	for step := range moves {
		label := fmt.Sprintf("Go to move #%d", step)
		if step == 0 {
			label = "Go to game start"
		}

		moves[step] = Move{
			Step:      step,
			IsInitial: step == 0,
			Current:   step == that.stepNumber,
			Label:     label,
		}
	}

	return Snapshot{
		GameID: that.gameID,
		Board:  board,
		Status: Status{
			Winner:  board.Winner(),
			XIsNext: that.xIsNext,
			State:   that.state,
		},
		StepNumber: that.stepNumber,
		Moves:      moves,
	}
}
