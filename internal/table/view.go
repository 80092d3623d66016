package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/eduardofuncao/cubo/internal/styles"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.detailViewMode {
		return m.renderDetailView()
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n")

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	endRow := min(m.offsetY+m.visibleRows, m.numRows())
	for i := m.offsetY; i < endRow; i++ {
		b.WriteString(m.renderDataRow(i))
		b.WriteString("\n")
	}
	if len(m.data) < 1 {
		b.WriteString("Nothing to show here...")
	}

	if m.promptMode {
		b.WriteString("\n")
		b.WriteString(styles.DetailLabel.Render("pivot: "))
		b.WriteString(m.promptInput.View())
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	var cells []string
	endCol := min(m.offsetX+m.visibleCols, m.numCols())

	for j := m.offsetX; j < endCol; j++ {
		content := m.formatCell(m.columns[j])
		cells = append(cells, styles.TableHeader.Render(content))
	}

	return strings.Join(cells, styles.TableBorder.Render("│"))
}

func (m Model) renderDataRow(rowIndex int) string {
	var cells []string
	endCol := min(m.offsetX+m.visibleCols, m.numCols())

	for j := m.offsetX; j < endCol; j++ {
		content := m.formatCell(m.data[rowIndex][j])
		style := m.getCellStyle(rowIndex, j)
		cells = append(cells, style.Render(content))
	}

	return strings.Join(cells, styles.TableBorder.Render("│"))
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		return "\n" + styles.Faint.Render(m.statusMsg)
	}

	drill := ""
	if m.onDrill != nil {
		drill = styles.TableHeader.Render("⏎") + styles.Faint.Render("drill")
	}
	pivot := styles.TableHeader.Render(";") + styles.Faint.Render("pivot")
	sel := styles.TableHeader.Render("v") + styles.Faint.Render("sel")
	yank := styles.TableHeader.Render("y") + styles.Faint.Render("ank")
	quit := styles.TableHeader.Render("q") + styles.Faint.Render("uit")
	hjkl := styles.TableHeader.Render("hjkl") + styles.Faint.Render("←↓↑→")

	footer := fmt.Sprintf("\n%s %s | %s | %s  %s  %s  %s  %s  %s",
		styles.Faint.Render(fmt.Sprintf("%sx%d", humanize.Comma(int64(m.numRows())), m.numCols())),
		styles.Faint.Render(fmt.Sprintf("In %.2fs", m.elapsed.Seconds())),
		styles.Faint.Render(fmt.Sprintf("[%d/%d]", m.selectedRow+1, m.selectedCol+1)),
		drill, yank, sel, pivot, quit, hjkl)
	return footer
}

func (m Model) renderDetailView() string {
	var b strings.Builder

	b.WriteString(styles.DetailLabel.Render(m.detailTitle))
	b.WriteString("\n\n")

	lines := strings.Split(m.detailViewContent, "\n")
	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}

	end := min(m.detailViewScroll+visible, len(lines))
	for i := m.detailViewScroll; i < end; i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString(styles.Faint.Render(
			fmt.Sprintf("\n[%d-%d/%d] ", m.detailViewScroll+1, end, len(lines))))
	} else {
		b.WriteString("\n")
	}

	scroll := styles.TableHeader.Render("jk") + styles.Faint.Render("scroll")
	yank := styles.TableHeader.Render("y") + styles.Faint.Render("ank")
	back := styles.TableHeader.Render("q") + styles.Faint.Render("/esc back")
	b.WriteString(fmt.Sprintf("%s  %s  %s", scroll, yank, back))

	return b.String()
}

func (m Model) getCellStyle(row, col int) lipgloss.Style {
	if m.isCellInSelection(row, col) {
		if m.blinkCopiedCell {
			return styles.TableCopiedBlink
		}
		return styles.TableSelected
	}

	return styles.TableCell
}

func (m Model) formatCell(content string) string {
	if runewidth.StringWidth(content) > m.cellWidth {
		return runewidth.Truncate(content, m.cellWidth, "…")
	}
	return runewidth.FillRight(content, m.cellWidth)
}
