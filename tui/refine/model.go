package refine

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylan/specdash/tui/shared"
)

// Model is the single-line refinement input shown over the spec view.
type Model struct {
	textInput   textinput.Model
	errMsg      string
	refining    bool
	spinnerView string
	width       int
	height      int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Describe the change to make..."
	ti.CharLimit = 500
	ti.Width = 60
	return Model{
		textInput: ti,
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.textInput.Width = w - 10
	if m.textInput.Width > 80 {
		m.textInput.Width = 80
	}
}

// Reset clears the input and focuses it for a new refinement.
func (m *Model) Reset() {
	m.errMsg = ""
	m.refining = false
	m.textInput.Reset()
	m.textInput.Focus()
}

func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

func (m *Model) SetRefining(v bool) {
	m.refining = v
	if !v {
		m.spinnerView = ""
	}
}

// SetSpinnerView sets the rendered spinner string shown while refining.
func (m *Model) SetSpinnerView(view string) {
	m.spinnerView = view
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// Value returns the trimmed refinement text.
func (m Model) Value() string {
	return strings.TrimSpace(m.textInput.Value())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + shared.TitleStyle.Render("Refine specification"))
	b.WriteString("\n\n")

	if m.refining {
		label := "Refining..."
		if m.spinnerView != "" {
			label = m.spinnerView + " " + label
		}
		b.WriteString("  " + shared.HelpDescStyle.Render(label))
		b.WriteString("\n\n")
	} else {
		b.WriteString("  " + m.textInput.View())
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString("  " + shared.ErrorStyle.Render("Error: "+m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(shared.HelpDescStyle.Render("  enter: refine  esc: cancel"))

	return b.String()
}
