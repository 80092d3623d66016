// Package render turns a result set (ordered columns + row records) into a
// formatted text table. It is a stateless leaf: callers hand it a writer
// and data, and every call produces complete, fresh output.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/eduardofuncao/cubo/internal/styles"
)

// Placeholder is written instead of a table when there are no rows.
const Placeholder = "Nothing to show here..."

var errNilColumns = errors.New("render: columns must not be nil")

// Renderer writes result sets as aligned tables, applying a formatting
// policy to numeric cells.
type Renderer struct {
	policy Policy
}

func New(policy Policy) *Renderer {
	return &Renderer{policy: policy}
}

// Render writes the table for columns/rows to w. Column order in the
// header and in every row follows the columns argument exactly. Nil or
// empty rows produce only the placeholder line. A nil columns slice is a
// caller error.
func (r *Renderer) Render(w io.Writer, columns []string, rows []map[string]any) error {
	if columns == nil {
		return errNilColumns
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, styles.Faint.Render(Placeholder))
		return err
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(columns))
		for i, col := range columns {
			line[i] = r.policy.Format(col, row[col])
		}
		cells = append(cells, line)
	}

	widths := columnWidths(columns, cells)

	var b strings.Builder
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = styles.TableHeader.Render(pad(col, widths[i]))
	}
	sep := styles.TableBorder.Render("│")
	b.WriteString(strings.Join(header, sep))
	b.WriteString("\n")

	rule := make([]string, len(columns))
	for i := range columns {
		rule[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(styles.TableBorder.Render(strings.Join(rule, "┼")))
	b.WriteString("\n")

	for _, line := range cells {
		for i := range line {
			line[i] = styles.TableCell.Render(pad(line[i], widths[i]))
		}
		b.WriteString(strings.Join(line, sep))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func columnWidths(columns []string, cells [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, line := range cells {
		for i, cell := range line {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
