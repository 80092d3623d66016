package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) moveUp() Model {
	if m.selectedRow > 0 {
		m.selectedRow--
		if m.selectedRow < m.offsetY {
			m.offsetY = m.selectedRow
		}
	}
	return m
}

func (m Model) moveDown() Model {
	if m.selectedRow < m.numRows()-1 {
		m.selectedRow++
		if m.selectedRow >= m.offsetY+m.visibleRows {
			m.offsetY = m.selectedRow - m.visibleRows + 1
		}
	}
	return m
}

func (m Model) moveLeft() Model {
	if m.selectedCol > 0 {
		m.selectedCol--
		if m.selectedCol < m.offsetX {
			m.offsetX = m.selectedCol
		}
	}
	return m
}

func (m Model) moveRight() Model {
	if m.selectedCol < m.numCols()-1 {
		m.selectedCol++
		if m.selectedCol >= m.offsetX+m.visibleCols {
			m.offsetX = m.selectedCol - m.visibleCols + 1
		}
	}
	return m
}

func (m Model) jumpToFirstCol() Model {
	m.selectedCol = 0
	m.offsetX = 0
	return m
}

func (m Model) jumpToLastCol() Model {
	m.selectedCol = m.numCols() - 1
	if m.visibleCols < m.numCols() {
		m.offsetX = m.numCols() - m.visibleCols
	}
	return m
}

func (m Model) jumpToFirstRow() Model {
	m.selectedRow = 0
	m.offsetY = 0
	return m
}

func (m Model) jumpToLastRow() Model {
	m.selectedRow = m.numRows() - 1
	m.offsetY = m.numRows() - m.visibleRows
	if m.offsetY < 0 {
		m.offsetY = 0
	}
	return m
}

func (m Model) pageUp() Model {
	m.selectedRow -= m.visibleRows
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.offsetY = m.selectedRow
	return m
}

func (m Model) pageDown() Model {
	m.selectedRow += m.visibleRows
	if m.selectedRow >= m.numRows() {
		m.selectedRow = m.numRows() - 1
	}
	if m.selectedRow >= m.offsetY+m.visibleRows {
		m.offsetY = m.selectedRow - m.visibleRows + 1
	}
	return m
}

func (m Model) toggleVisualMode() (Model, tea.Cmd) {
	m.visualMode = !m.visualMode

	if m.visualMode {
		m.visualStartRow = m.selectedRow
		m.visualStartCol = m.selectedCol
	}

	return m, nil
}

func (m Model) getSelectionBounds() (minRow, maxRow, minCol, maxCol int) {
	if !m.visualMode {
		return m.selectedRow, m.selectedRow, m.selectedCol, m.selectedCol
	}

	// Multi-cell selection
	minRow = min(m.visualStartRow, m.selectedRow)
	maxRow = max(m.visualStartRow, m.selectedRow)
	minCol = min(m.visualStartCol, m.selectedCol)
	maxCol = max(m.visualStartCol, m.selectedCol)

	return
}

func (m Model) isCellInSelection(row, col int) bool {
	minRow, maxRow, minCol, maxCol := m.getSelectionBounds()
	return row >= minRow && row <= maxRow && col >= minCol && col <= maxCol
}

func (m Model) copySelection() (Model, tea.Cmd) {
	if m.numRows() == 0 {
		return m, nil
	}

	minRow, maxRow, minCol, maxCol := m.getSelectionBounds()

	var allRows [][]string

	if m.visualMode {
		headerRow := make([]string, 0)
		for col := minCol; col <= maxCol; col++ {
			headerRow = append(headerRow, m.columns[col])
		}
		allRows = append(allRows, headerRow)
	}

	for row := minRow; row <= maxRow; row++ {
		dataRow := make([]string, 0)
		for col := minCol; col <= maxCol; col++ {
			dataRow = append(dataRow, m.data[row][col])
		}
		allRows = append(allRows, dataRow)
	}

	numCols := maxCol - minCol + 1
	colWidths := make([]int, numCols)

	for _, row := range allRows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var result strings.Builder

	for rowIdx, row := range allRows {
		for colIdx, cell := range row {
			paddedCell := fmt.Sprintf("%-*s", colWidths[colIdx], cell)
			result.WriteString(paddedCell)

			if colIdx < len(row)-1 {
				result.WriteString("  ")
			}
		}

		if rowIdx < len(allRows)-1 {
			result.WriteString("\n")
		}
	}

	m.visualMode = false
	return m.copyText(result.String())
}

func (m Model) copyText(content string) (Model, tea.Cmd) {
	clipboard.WriteAll(content)
	m.blinkCopiedCell = true

	return m, func() tea.Msg {
		time.Sleep(200 * time.Millisecond)
		return blinkMsg{}
	}
}

// drillSelection asks the drill callback for the records behind the
// selected cell and opens them in the detail view.
func (m Model) drillSelection() (Model, tea.Cmd) {
	if m.onDrill == nil || m.drillPending {
		return m, nil
	}
	if m.selectedRow < 0 || m.selectedRow >= m.numRows() ||
		m.selectedCol < 0 || m.selectedCol >= m.numCols() {
		return m, nil
	}

	rowValue := m.data[m.selectedRow][0]
	colValue := m.columns[m.selectedCol]

	m.drillPending = true
	m.statusMsg = fmt.Sprintf("Fetching %s × %s...", rowValue, colValue)

	drill := m.onDrill
	return m, func() tea.Msg {
		content, err := drill(rowValue, colValue)
		return drillDoneMsg{
			title:   fmt.Sprintf("%s × %s", rowValue, colValue),
			content: content,
			err:     err,
		}
	}
}

func (m Model) handleDrillDone(msg drillDoneMsg) (Model, tea.Cmd) {
	m.drillPending = false
	m.statusMsg = ""

	if msg.err != nil {
		m.statusMsg = fmt.Sprintf("Drill failed: %v", msg.err)
		return m, nil
	}

	m.detailViewMode = true
	m.detailTitle = msg.title
	m.detailViewContent = msg.content
	m.detailViewScroll = 0

	return m, nil
}

// showCellView opens the detail view on the raw cell value. Used when
// no drill callback is wired.
func (m Model) showCellView() Model {
	if m.selectedRow < 0 || m.selectedRow >= m.numRows() ||
		m.selectedCol < 0 || m.selectedCol >= m.numCols() {
		return m
	}

	m.detailViewMode = true
	m.detailTitle = m.columns[m.selectedCol]
	m.detailViewContent = m.data[m.selectedRow][m.selectedCol]
	m.detailViewScroll = 0

	return m
}

func (m Model) closeDetailView() Model {
	m.detailViewMode = false
	m.detailTitle = ""
	m.detailViewContent = ""
	m.detailViewScroll = 0
	return m
}

func (m Model) scrollDetailViewUp() Model {
	if m.detailViewScroll > 0 {
		m.detailViewScroll--
	}
	return m
}

func (m Model) scrollDetailViewDown() Model {
	lines := strings.Count(m.detailViewContent, "\n") + 1
	maxScroll := lines - (m.height - 6)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.detailViewScroll < maxScroll {
		m.detailViewScroll++
	}
	return m
}
