// Package table implements the interactive cube explorer: a scrollable
// result table with vim-style navigation, clipboard yank, drill-down
// into the records behind a cell, and an inline prompt to re-pivot.
package table

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Explore runs the explorer over a rendered result set. onDrill may be
// nil, in which case enter shows the raw cell value instead of the
// records behind it. The returned model carries the re-pivot request,
// if the user made one.
func Explore(
	title string,
	columns []string,
	data [][]string,
	elapsed time.Duration,
	columnWidth int,
	onDrill DrillFunc,
) (Model, error) {
	model := New(title, columns, data, elapsed, columnWidth, onDrill)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	return finalModel.(Model), nil
}
