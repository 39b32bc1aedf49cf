package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dylan/specdash/config"
	"github.com/dylan/specdash/editor"
	"github.com/dylan/specdash/export"
	"github.com/dylan/specdash/session"
	"github.com/dylan/specdash/tui/help"
	"github.com/dylan/specdash/tui/preview"
	"github.com/dylan/specdash/tui/prompt"
	"github.com/dylan/specdash/tui/refine"
	"github.com/dylan/specdash/tui/shared"
	"github.com/dylan/specdash/tui/specview"
)

type ActiveView int

const (
	PromptView ActiveView = iota
	SpecView
	RefineView
)

type App struct {
	cfg   config.Config
	store *session.Store
	orch  *session.Orchestrator

	activeView ActiveView
	showHelp   bool
	statusMsg  string
	statusErr  bool

	promptView  prompt.Model
	specView    specview.Model
	refineView  refine.Model
	previewPane preview.Model
	helpView    help.Model
	spinner     spinner.Model

	showPreview    bool
	previewFocused bool
	lastExportPath string

	width  int
	height int
}

func NewApp(cfg config.Config, store *session.Store, orch *session.Orchestrator) App {
	shared.InitStyles(cfg.ResolvedTheme())

	return App{
		cfg:         cfg,
		store:       store,
		orch:        orch,
		activeView:  PromptView,
		promptView:  prompt.New(),
		specView:    specview.New(),
		refineView:  refine.New(),
		previewPane: preview.New(),
		helpView:    help.New(),
		spinner:     shared.Spinner,
		showPreview: cfg.ResolvedShowPreview(),
	}
}

func (a App) Init() tea.Cmd {
	return textarea.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutSizes()
		a.promptView.SetSize(msg.Width, msg.Height)
		a.refineView.SetSize(msg.Width, msg.Height)
		a.helpView.SetSize(msg.Width, msg.Height)
		return a, nil

	case spinner.TickMsg:
		if !a.store.Busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.promptView.SetSpinnerView(a.spinner.View())
		a.refineView.SetSpinnerView(a.spinner.View())
		return a, cmd

	case shared.GenerateDoneMsg:
		a.promptView.SetGenerating(false)
		if errMsg := a.store.Err(); errMsg != "" {
			a.promptView.SetError(errMsg)
			return a, nil
		}
		a.activeView = SpecView
		a.promptView.SetError("")
		a.refreshSpec()
		a.setStatus("Specification generated", false)
		return a, nil

	case shared.RefineDoneMsg:
		a.refineView.SetRefining(false)
		if errMsg := a.store.Err(); errMsg != "" {
			// The previous specification is still shown unchanged; the
			// error rides alongside it.
			a.refineView.SetError(errMsg)
			return a, nil
		}
		a.activeView = SpecView
		a.refreshSpec()
		a.setStatus("Specification refined", false)
		return a, nil

	case shared.ClipboardExportedMsg:
		if msg.Err != nil {
			a.setStatus("Copy failed: "+msg.Err.Error(), true)
		} else {
			a.setStatus("Specification copied to clipboard", false)
		}
		return a, nil

	case shared.FileExportedMsg:
		if msg.Err != nil {
			a.setStatus("Export failed: "+msg.Err.Error(), true)
		} else {
			a.lastExportPath = msg.Path
			a.setStatus("Exported to "+msg.Path, false)
		}
		return a, nil

	case editor.FinishedMsg:
		if msg.Err != nil {
			a.setStatus("Editor: "+msg.Err.Error(), true)
		}
		return a, nil

	case shared.ClosePromptMsg:
		a.activeView = SpecView
		return a, nil

	case shared.CloseRefineMsg:
		a.activeView = SpecView
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Route remaining messages (blink ticks etc.) to the focused input.
	switch a.activeView {
	case PromptView:
		var cmd tea.Cmd
		a.promptView, cmd = a.promptView.Update(msg)
		return a, cmd
	case RefineView:
		var cmd tea.Cmd
		a.refineView, cmd = a.refineView.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	// Help toggle is global, except while typing into an input.
	if a.activeView == SpecView && key.Matches(msg, shared.Keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeView {
	case PromptView:
		return a.handlePromptKey(msg)
	case SpecView:
		return a.handleSpecKey(msg)
	case RefineView:
		return a.handleRefineKey(msg)
	}

	return a, nil
}

func (a App) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, shared.Keys.Generate):
		// The busy flag is the concurrency gate: the trigger is inert
		// while a call is outstanding.
		if a.store.Busy() {
			return a, nil
		}
		text := a.promptView.Value()
		if text == "" {
			a.promptView.SetError("requirements text is empty")
			return a, nil
		}
		a.promptView.SetError("")
		a.promptView.SetGenerating(true)
		return a, tea.Batch(a.spinner.Tick, a.generateCmd(text))

	case key.Matches(msg, shared.Keys.Escape):
		if a.store.Spec() != nil {
			return a, func() tea.Msg { return shared.ClosePromptMsg{} }
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.promptView, cmd = a.promptView.Update(msg)
	return a, cmd
}

func (a App) handleSpecKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// When the preview pane is focused, route scroll keys there.
	if a.previewFocused {
		switch {
		case key.Matches(msg, shared.Keys.FocusLeft), key.Matches(msg, shared.Keys.Escape):
			a.previewFocused = false
			return a, nil
		case key.Matches(msg, shared.Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, shared.Keys.TogglePreview):
			a.showPreview = false
			a.previewFocused = false
			a.layoutSizes()
			return a, nil
		default:
			var cmd tea.Cmd
			a.previewPane, cmd = a.previewPane.Update(msg)
			return a, cmd
		}
	}

	switch {
	case key.Matches(msg, shared.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.Up):
		a.specView.MoveUp()
		return a, nil

	case key.Matches(msg, shared.Keys.Down):
		a.specView.MoveDown()
		return a, nil

	case key.Matches(msg, shared.Keys.ToggleSection):
		a.specView.ToggleSelected()
		return a, nil

	case key.Matches(msg, shared.Keys.JumpSection):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			a.specView.ToggleAt(n - 1)
		}
		return a, nil

	case key.Matches(msg, shared.Keys.Refine):
		if a.store.Busy() || a.store.Spec() == nil {
			return a, nil
		}
		a.activeView = RefineView
		a.refineView.Reset()
		return a, nil

	case key.Matches(msg, shared.Keys.NewRequirements):
		if a.store.Busy() {
			return a, nil
		}
		a.activeView = PromptView
		a.promptView.Focus()
		return a, nil

	case key.Matches(msg, shared.Keys.CopyExport):
		if a.store.Spec() == nil {
			a.setStatus("Nothing to export yet", true)
			return a, nil
		}
		return a, a.exportClipboardCmd()

	case key.Matches(msg, shared.Keys.WriteExport):
		if a.store.Spec() == nil {
			a.setStatus("Nothing to export yet", true)
			return a, nil
		}
		return a, a.exportFileCmd()

	case key.Matches(msg, shared.Keys.OpenExport):
		if a.lastExportPath == "" {
			a.setStatus("No export written yet", true)
			return a, nil
		}
		return a, editor.OpenFile(a.lastExportPath)

	case key.Matches(msg, shared.Keys.TogglePreview):
		a.showPreview = !a.showPreview
		a.previewFocused = false
		a.layoutSizes()
		if a.showPreview {
			a.refreshPreview()
		}
		return a, nil

	case key.Matches(msg, shared.Keys.FocusRight):
		if a.showPreview {
			a.previewFocused = true
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleRefineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, shared.Keys.Escape):
		return a, func() tea.Msg { return shared.CloseRefineMsg{} }

	case msg.Type == tea.KeyEnter:
		if a.store.Busy() {
			return a, nil
		}
		text := a.refineView.Value()
		if text == "" {
			a.refineView.SetError("refinement text is empty")
			return a, nil
		}
		a.refineView.SetError("")
		a.refineView.SetRefining(true)
		return a, tea.Batch(a.spinner.Tick, a.refineCmd(text))
	}

	var cmd tea.Cmd
	a.refineView, cmd = a.refineView.Update(msg)
	return a, cmd
}

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}

	var view string

	contentH := a.height - 1 // reserve 1 for status bar
	if contentH < 1 {
		contentH = 1
	}

	switch a.activeView {
	case PromptView:
		view = a.promptView.View()
		view += a.renderStatusBar()
	case SpecView:
		specV := a.specView.View()
		if a.showPreview {
			// Lock the accordion to a fixed width so it doesn't shift
			// when the preview scrolls.
			specW := a.width - a.width/2
			specV = lipgloss.NewStyle().Width(specW).Height(contentH).MaxHeight(contentH).Render(specV)
			view = lipgloss.JoinHorizontal(lipgloss.Top, specV, a.previewPane.View())
		} else {
			view = specV
		}
		view += a.renderStatusBar()
	case RefineView:
		view = a.refineView.View()
		view += a.renderStatusBar()
	}

	return view
}

func (a *App) layoutSizes() {
	contentH := a.height - 1 // 1 for status bar
	if contentH < 3 {
		contentH = 3
	}

	if a.showPreview && a.width > 60 {
		previewW := a.width / 2
		specW := a.width - previewW
		a.specView.SetSize(specW, contentH)
		// preview width accounts for left border (1 char)
		a.previewPane.SetSize(previewW-1, contentH)
	} else {
		a.specView.SetSize(a.width, contentH)
	}
}

// refreshSpec pushes the stored specification into the accordion and, when
// visible, the preview pane. Disclosure state is left alone.
func (a *App) refreshSpec() {
	sp, trace := a.store.Current()
	a.specView.SetSpec(sp, trace)
	if a.showPreview {
		a.refreshPreview()
	}
}

func (a *App) refreshPreview() {
	sp, trace := a.store.Current()
	text, err := export.Serialize(sp, trace)
	if err != nil {
		a.previewPane.SetContent(shared.DimStyle.Render("No specification yet."))
		return
	}
	a.previewPane.SetContent(text)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusErr = isErr
}

func (a App) renderStatusBar() string {
	parts := []string{a.cfg.WorkspaceName()}

	if a.store.Busy() {
		parts = append(parts, a.spinner.View()+" working")
	}
	if trace := a.store.TraceID(); trace != "" {
		parts = append(parts, "trace "+trace)
	}

	status := ""
	for i, p := range parts {
		if i > 0 {
			status += " │ "
		}
		status += p
	}

	if errMsg := a.store.Err(); errMsg != "" {
		status += " │ " + shared.ErrorStyle.Render(errMsg)
	} else if a.statusMsg != "" {
		if a.statusErr {
			status += " │ " + shared.ErrorStyle.Render(a.statusMsg)
		} else {
			status += " │ " + shared.SuccessStyle.Render(a.statusMsg)
		}
	}
	status += " │ ? for help"

	return "\n" + shared.StatusBarStyle.Width(a.width).Render(status)
}

// --- Commands ---

func (a App) generateCmd(text string) tea.Cmd {
	orch := a.orch
	return func() tea.Msg {
		orch.Generate(context.Background(), text)
		return shared.GenerateDoneMsg{}
	}
}

func (a App) refineCmd(text string) tea.Cmd {
	orch := a.orch
	return func() tea.Msg {
		orch.Refine(context.Background(), text)
		return shared.RefineDoneMsg{}
	}
}

func (a App) exportClipboardCmd() tea.Cmd {
	sp, trace := a.store.Current()
	return func() tea.Msg {
		text, err := export.Serialize(sp, trace)
		if err != nil {
			return shared.ClipboardExportedMsg{Err: err}
		}
		return shared.ClipboardExportedMsg{Err: export.CopyToClipboard(text)}
	}
}

func (a App) exportFileCmd() tea.Cmd {
	sp, trace := a.store.Current()
	path := a.cfg.ResolvedExportPath()
	return func() tea.Msg {
		text, err := export.Serialize(sp, trace)
		if err != nil {
			return shared.FileExportedMsg{Err: err}
		}
		if err := export.WriteFile(text, path); err != nil {
			return shared.FileExportedMsg{Err: err}
		}
		return shared.FileExportedMsg{Path: path}
	}
}
