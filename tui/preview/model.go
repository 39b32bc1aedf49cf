package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylan/specdash/tui/shared"
)

// Model shows the exact text an export would produce, so what you see is
// what lands on the clipboard or in the file.
type Model struct {
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	headerHeight := 1
	footerHeight := 1
	contentHeight := h - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport = viewport.New(w, contentHeight)
	m.viewport.YPosition = headerHeight
	m.ready = true
}

// SetContent replaces the rendered serialization.
func (m *Model) SetContent(serialized string) {
	m.viewport.SetContent(styleJSON(serialized))
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := shared.PreviewHeaderStyle.Width(m.width).Render(" Export preview")
	footer := shared.PreviewFooterStyle.Width(m.width).Render(" j/k: scroll  p: close")

	body := shared.PreviewBorderStyle.Render(m.viewport.View())
	return fmt.Sprintf("%s\n%s\n%s", header, body, footer)
}

// styleJSON dims structural lines and highlights keys.
func styleJSON(raw string) string {
	var b strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "{" || trimmed == "}" || trimmed == "}," ||
			trimmed == "[" || trimmed == "]" || trimmed == "],":
			b.WriteString(shared.DimStyle.Render(line))
		case strings.HasPrefix(trimmed, `"`):
			if idx := strings.Index(line, `":`); idx >= 0 {
				b.WriteString(shared.LabelStyle.Render(line[:idx+1]))
				b.WriteString(shared.ContentStyle.Render(line[idx+1:]))
			} else {
				b.WriteString(shared.ContentStyle.Render(line))
			}
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
