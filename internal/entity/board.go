package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
)

// Cell is a single square occupant.
type Cell string

const (
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
	PlayerTie Cell = "-"

	EmptyCell Cell = ""

	HumanMark    = PlayerX
	ComputerMark = PlayerO
)

const BoardSize = 9

// keyEmpty stands for an empty cell inside a reward table key.
const keyEmpty = '-'

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 board stored row-major.
type Board [BoardSize]Cell

// Opponent returns the other mark. Anything that is not X maps to X.
func (that Cell) Opponent() Cell {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// DetermineWinner returns the occupant of the first complete line, or EmptyCell.
func DetermineWinner(board Board) Cell {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// Winner is DetermineWinner for this board.
func (that Board) Winner() Cell {
	return DetermineWinner(that)
}

// Result returns the winner, PlayerTie for a full board without one, or EmptyCell while ongoing.
func (that Board) Result() Cell {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	// the game will continue until all the squares are full
	if !that.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}

// IsDecided reports whether no further move may be played.
func (that Board) IsDecided() bool {
	return that.Result() != EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells lists free indexes in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) ValidateCell(cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// With returns a copy of the board with mark placed at cell. The receiver is untouched.
func (that Board) With(cell int, mark Cell) Board {
	that[cell] = mark
	return that
}

// Key serializes the board positionally: X, O and '-' for empty.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte(keyEmpty)
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// ParseBoard is the inverse of Board.Key.
func ParseBoard(key string) (Board, error) {
	var board Board
	if len(key) != BoardSize {
		return board, fmt.Errorf("invalid board key %q: want %d cells", key, BoardSize)
	}

	for i := 0; i < len(key); i++ {
		switch key[i] {
		case 'X':
			board[i] = PlayerX
		case 'O':
			board[i] = PlayerO
		case keyEmpty:
			board[i] = EmptyCell
		default:
			return board, fmt.Errorf("invalid board key %q: unknown cell %q", key, key[i])
		}
	}

	return board, nil
}
