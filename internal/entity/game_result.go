package entity

import "time"

// GameResult is the archived form of a scored game.
type GameResult struct {
	ID         string    `json:"id"`
	Positions  []string  `json:"positions"`
	Winner     Cell      `json:"winner"`
	Reward     int       `json:"reward"`
	NextPlayer Cell      `json:"next_player"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewGameResult(id string, history History, winner Cell, reward int, nextPlayer Cell, finishedAt time.Time) *GameResult {
	positions := make([]string, 0, history.Len())
	for _, state := range history.States() {
		positions = append(positions, state.Board.Key())
	}

	return &GameResult{
		ID:         id,
		Positions:  positions,
		Winner:     winner,
		Reward:     reward,
		NextPlayer: nextPlayer,
		FinishedAt: finishedAt,
	}
}
