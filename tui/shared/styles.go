package shared

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/dylan/specdash/config"
)

var (
	// App title / pane headers
	TitleStyle      lipgloss.Style
	PaneHeaderStyle lipgloss.Style

	// Accordion section headers
	SectionOpenStyle  lipgloss.Style
	SectionShutStyle  lipgloss.Style
	SectionCountStyle lipgloss.Style

	// Section content
	ContentStyle lipgloss.Style
	LabelStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	DimStyle     lipgloss.Style

	// Cursor highlight
	CursorStyle lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Help styles
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpOverlayStyle lipgloss.Style

	// Feedback
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	// Preview pane
	PreviewBorderStyle lipgloss.Style
	PreviewHeaderStyle lipgloss.Style
	PreviewFooterStyle lipgloss.Style

	// Spinner used for busy indication
	Spinner spinner.Model
)

func InitStyles(theme config.ThemeConfig) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	PaneHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FG))

	SectionOpenStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SectionOpen))

	SectionShutStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SectionShut))

	SectionCountStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	ContentStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	DimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBG)).
		Foreground(lipgloss.Color(theme.StatusBarFG))

	HelpKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success))

	PreviewBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Dim))

	PreviewHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Foreground(lipgloss.Color(theme.StatusBarFG))

	PreviewFooterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	Spinner = spinner.New()
	Spinner.Spinner = spinner.Dot
	Spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SpinnerFG))
}
