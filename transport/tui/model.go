package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/tictactoe"
)

const (
	refreshInterval = 100 * time.Millisecond
	maxRecentGames  = 5
	boardWidth      = 3
)

// Controller is what the view drives. The view holds no game state of its own.
type Controller interface {
	ApplyHumanMove(cell int) tictactoe.Snapshot
	ApplyComputerMove() tictactoe.Snapshot
	Restart() tictactoe.Snapshot
	JumpTo(step int) tictactoe.Snapshot
	Snapshot() tictactoe.Snapshot
}

type TickMsg time.Time

// RecordMsg carries a game the controller scored on restart.
type RecordMsg tictactoe.GameRecord

type Model struct {
	controller  Controller
	records     <-chan tictactoe.GameRecord
	snapshot    tictactoe.Snapshot
	cursor      int
	gamesPlayed int
	recentGames []string
}

// NewModel builds the view. records may be nil when nobody publishes finished games.
func NewModel(controller Controller, records <-chan tictactoe.GameRecord) Model {
	return Model{
		controller: controller,
		records:    records,
		snapshot:   controller.Snapshot(),
		cursor:     4,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForRecord(records <-chan tictactoe.GameRecord) tea.Cmd {
	if records == nil {
		return nil
	}

	return func() tea.Msg {
		record, ok := <-records
		if !ok {
			return nil
		}

		return RecordMsg(record)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForRecord(m.records))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		// computer moves land from the scheduler, so poll
		m.snapshot = m.controller.Snapshot()
		return m, tickCmd()
	case RecordMsg:
		m.gamesPlayed++
		m.recentGames = append([]string{summarize(tictactoe.GameRecord(msg))}, m.recentGames...)
		if len(m.recentGames) > maxRecentGames {
			m.recentGames = m.recentGames[:maxRecentGames]
		}
		return m, waitForRecord(m.records)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= boardWidth {
			m.cursor -= boardWidth
		}
	case "down", "j":
		if m.cursor < entity.BoardSize-boardWidth {
			m.cursor += boardWidth
		}
	case "left", "h":
		if m.cursor%boardWidth > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%boardWidth < boardWidth-1 {
			m.cursor++
		}
	case "enter", " ":
		m.snapshot = m.controller.ApplyHumanMove(m.cursor)
	case "c":
		m.snapshot = m.controller.ApplyComputerMove()
	case "r":
		m.snapshot = m.controller.Restart()
	case "[":
		m.snapshot = m.controller.JumpTo(m.snapshot.StepNumber - 1)
	case "]":
		m.snapshot = m.controller.JumpTo(m.snapshot.StepNumber + 1)
	case "g":
		m.snapshot = m.controller.JumpTo(0)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.cursor = int(key[0] - '1')
			m.snapshot = m.controller.ApplyHumanMove(m.cursor)
		}
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.snapshot.Status.Text())
	sb.WriteString("\n\n")

	for row := 0; row < boardWidth; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < boardWidth; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := row*boardWidth + col
			sb.WriteString(renderCell(m.snapshot.Board[cell], cell == m.cursor))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, move := range m.snapshot.Moves {
		marker := "  "
		if move.Current {
			marker = "> "
		}

		fmt.Fprintf(&sb, "%s%s\n", marker, move.Label)
	}

	if len(m.recentGames) > 0 {
		fmt.Fprintf(&sb, "\nGames played: %d\n", m.gamesPlayed)
		for _, game := range m.recentGames {
			sb.WriteString(game + "\n")
		}
	}

	sb.WriteString("\narrows/hjkl + enter or 1-9: play  [ ]: step  g: start  c: computer plays  r: restart  q: quit\n")

	return sb.String()
}

func renderCell(cell entity.Cell, selected bool) string {
	mark := string(cell)
	if cell == entity.EmptyCell {
		mark = "."
	}

	if selected {
		return "[" + mark + "]"
	}

	return " " + mark + " "
}

func summarize(record tictactoe.GameRecord) string {
	winner := "draw"
	switch {
	case record.Winner != entity.EmptyCell:
		winner = "winner " + string(record.Winner)
	case !record.History.Last().Board.IsFull():
		winner = "abandoned"
	}

	gameID := record.GameID
	if len(gameID) > 8 {
		gameID = gameID[:8]
	}

	return fmt.Sprintf("%s: %s, reward %d over %d positions, %s starts next",
		gameID, winner, record.Reward, record.History.Len(), record.NextPlayer)
}
