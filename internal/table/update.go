package table

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case blinkMsg:
		m.blinkCopiedCell = false
	case drillDoneMsg:
		return m.handleDrillDone(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg), nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detailViewMode {
		switch msg.String() {
		case "q", "esc", "enter":
			return m.closeDetailView(), nil
		case "up", "k":
			return m.scrollDetailViewUp(), nil
		case "down", "j":
			return m.scrollDetailViewDown(), nil
		case "y":
			return m.copyDetailView()
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.promptMode {
		switch msg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.promptMode = false
			m.promptInput.Reset()
			return m, nil
		case tea.KeyEnter:
			spec := strings.TrimSpace(m.promptInput.Value())
			if spec == "" {
				m.promptMode = false
				return m, nil
			}
			m.shouldReconfigure = true
			m.reconfigSpec = spec
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.promptInput, cmd = m.promptInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case ";":
		m.promptMode = true
		m.promptInput.Focus()
		return m, nil

	case "up", "k":
		return m.clearStatus().moveUp(), nil
	case "down", "j":
		return m.clearStatus().moveDown(), nil
	case "left", "h":
		return m.clearStatus().moveLeft(), nil
	case "right", "l":
		return m.clearStatus().moveRight(), nil

	case "home", "0", "_":
		return m.jumpToFirstCol(), nil
	case "end", "$":
		return m.jumpToLastCol(), nil
	case "g":
		return m.jumpToFirstRow(), nil
	case "G":
		return m.jumpToLastRow(), nil

	case "pgup", "ctrl+u":
		return m.pageUp(), nil
	case "pgdown", "ctrl+d":
		return m.pageDown(), nil

	case "v":
		return m.toggleVisualMode()

	case "y":
		return m.copySelection()

	case "enter":
		if m.onDrill != nil {
			return m.drillSelection()
		}
		return m.showCellView(), nil
	}

	return m, nil
}

func (m Model) copyDetailView() (Model, tea.Cmd) {
	copied, cmd := m.copyText(m.detailViewContent)
	return copied, cmd
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	m.visibleCols = (m.width - 2) / (m.cellWidth + 1)
	if m.visibleCols > m.numCols() {
		m.visibleCols = m.numCols()
	}
	if m.visibleCols < 1 {
		m.visibleCols = 1
	}

	// Reserve space for: title + header row + separator + footer
	reservedLines := 5

	m.visibleRows = m.height - reservedLines
	if m.visibleRows > m.numRows() {
		m.visibleRows = m.numRows()
	}
	if m.visibleRows < 3 {
		m.visibleRows = 3
	}

	return m
}
