package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var ActiveScheme ColorScheme

// Style variables used throughout the application
var (
	Title, Success, Error, Faint, Separator            lipgloss.Style
	TableSelected, TableHeader, TableCell, TableBorder lipgloss.Style
	TableCopiedBlink, DetailLabel, ViewLabel           lipgloss.Style
)

// InitScheme initializes the color scheme from config
func InitScheme(schemeName string, custom *ColorScheme) {
	var scheme ColorScheme

	if custom != nil {
		scheme = *custom
		if scheme.Primary == "" {
			scheme = DefaultScheme
			fmt.Fprintf(os.Stderr, "Warning: Incomplete custom color scheme, using defaults\n")
		}
	} else {
		scheme = GetScheme(schemeName)
	}

	ActiveScheme = scheme
	reloadAllStyles()
}

// reloadAllStyles updates all style variables based on ActiveScheme
func reloadAllStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ActiveScheme.Primary))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Success)).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Error)).
		Bold(true)

	Faint = lipgloss.NewStyle().
		Faint(true)

	Separator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Muted))

	TableSelected = lipgloss.NewStyle().
		Background(lipgloss.Color(ActiveScheme.Highlight)).
		Foreground(lipgloss.Color(ActiveScheme.Normal)).
		Bold(true)

	TableHeader = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Primary)).
		Bold(true)

	TableCell = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Normal))

	TableBorder = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Muted))

	TableCopiedBlink = lipgloss.NewStyle().
		Background(lipgloss.Color(ActiveScheme.Highlight)).
		Foreground(lipgloss.Color(ActiveScheme.Primary)).
		Bold(true)

	DetailLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Accent)).
		Bold(true)

	ViewLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Accent)).
		Bold(true)
}
