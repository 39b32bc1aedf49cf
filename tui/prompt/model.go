package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylan/specdash/tui/shared"
)

// Model is the requirements input pane.
type Model struct {
	textarea    textarea.Model
	errMsg      string
	generating  bool
	spinnerView string
	width       int
	height      int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "Describe the product you want specified..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()
	return Model{
		textarea: ta,
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	taWidth := w - 6
	if taWidth > 100 {
		taWidth = 100
	}
	if taWidth < 20 {
		taWidth = 20
	}
	m.textarea.SetWidth(taWidth)
	taHeight := h - 10
	if taHeight < 3 {
		taHeight = 3
	}
	if taHeight > 16 {
		taHeight = 16
	}
	m.textarea.SetHeight(taHeight)
}

func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

func (m *Model) SetGenerating(v bool) {
	m.generating = v
	if !v {
		m.spinnerView = ""
	}
}

// SetSpinnerView sets the rendered spinner string shown while generating.
func (m *Model) SetSpinnerView(view string) {
	m.spinnerView = view
}

func (m *Model) Focus() {
	m.textarea.Focus()
}

func (m *Model) Blur() {
	m.textarea.Blur()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// Value returns the trimmed requirements text.
func (m Model) Value() string {
	return strings.TrimSpace(m.textarea.Value())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + shared.TitleStyle.Render("Requirements"))
	b.WriteString("\n\n")

	if m.generating {
		label := "Generating specification..."
		if m.spinnerView != "" {
			label = m.spinnerView + " " + label
		}
		b.WriteString("  " + shared.HelpDescStyle.Render(label))
		b.WriteString("\n\n")
	} else {
		b.WriteString(indent(m.textarea.View(), "  "))
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString("  " + shared.ErrorStyle.Render("Error: "+m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(shared.HelpDescStyle.Render("  C-g: generate  esc: back to spec  ?: help  C-c: quit"))

	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
