package table

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DrillFunc resolves the detail records behind a cell. It receives the
// row label (first column of the selected row) and the selected column
// header, and returns the rendered detail text.
type DrillFunc func(rowValue, colValue string) (string, error)

type Model struct {
	width             int
	height            int
	selectedRow       int
	selectedCol       int
	offsetX           int
	offsetY           int
	visibleCols       int
	visibleRows       int
	title             string
	columns           []string
	data              [][]string
	elapsed           time.Duration
	cellWidth         int
	blinkCopiedCell   bool
	visualMode        bool
	visualStartRow    int
	visualStartCol    int
	detailViewMode    bool
	detailTitle       string
	detailViewContent string
	detailViewScroll  int
	drillPending      bool
	onDrill           DrillFunc
	promptMode        bool
	promptInput       textinput.Model
	shouldReconfigure bool
	reconfigSpec      string
	statusMsg         string
}

type blinkMsg struct{}

type drillDoneMsg struct {
	title   string
	content string
	err     error
}

func New(
	title string,
	columns []string,
	data [][]string,
	elapsed time.Duration,
	columnWidth int,
	onDrill DrillFunc,
) Model {
	input := textinput.New()
	input.Placeholder = "index | columns | metric"
	input.CharLimit = 120
	input.Width = 60

	return Model{
		selectedRow: 0,
		selectedCol: 0,
		offsetX:     0,
		offsetY:     0,
		title:       title,
		columns:     columns,
		data:        data,
		elapsed:     elapsed,
		cellWidth:   columnWidth,
		onDrill:     onDrill,
		promptInput: input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) numRows() int {
	return len(m.data)
}

func (m Model) numCols() int {
	return len(m.columns)
}

// ShouldReconfigure reports whether the user asked for a new pivot
// before quitting. The caller re-fetches and relaunches the explorer.
func (m Model) ShouldReconfigure() bool {
	return m.shouldReconfigure
}

// ReconfigSpec is the raw prompt text: "index | columns | metric".
func (m Model) ReconfigSpec() string {
	return m.reconfigSpec
}

func (m Model) clearStatus() Model {
	m.statusMsg = ""
	return m
}
