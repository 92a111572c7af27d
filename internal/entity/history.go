package entity

// BoardState is one immutable position of the game timeline.
type BoardState struct {
	Board Board `json:"board"`
}

func NewBoardState() BoardState {
	return BoardState{}
}

// Place returns the state reached by putting mark on cell.
func (that BoardState) Place(cell int, mark Cell) BoardState {
	return BoardState{Board: that.Board.With(cell, mark)}
}

// History is the ordered game timeline. Index 0 is always the empty board.
// Values are never modified in place: every operation returns a new History.
type History struct {
	states []BoardState
}

func NewHistory() History {
	return History{states: []BoardState{NewBoardState()}}
}

func (that History) Len() int {
	return len(that.states)
}

func (that History) At(step int) BoardState {
	return that.states[step]
}

func (that History) Last() BoardState {
	return that.states[len(that.states)-1]
}

// States returns a copy of the timeline.
func (that History) States() []BoardState {
	states := make([]BoardState, len(that.states))
	copy(states, that.states)

	return states
}

// TruncateAt keeps the steps [0, step]. Steps outside the timeline are clamped.
func (that History) TruncateAt(step int) History {
	step = that.clamp(step)

	states := make([]BoardState, step+1, step+2)
	copy(states, that.states[:step+1])

	return History{states: states}
}

// Append drops everything after step and adds state as the new last step.
func (that History) Append(step int, state BoardState) History {
	next := that.TruncateAt(step)
	next.states = append(next.states, state)

	return next
}

func (that History) clamp(step int) int {
	switch {
	case step < 0:
		return 0
	case step >= len(that.states):
		return len(that.states) - 1
	default:
		return step
	}
}
