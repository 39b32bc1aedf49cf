package editor

import (
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

type FinishedMsg struct {
	Err error
}

// OpenFile suspends the TUI and opens path in the user's editor.
func OpenFile(path string) tea.Cmd {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "nvim"
	}

	c := exec.Command(editorCmd, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return FinishedMsg{Err: err}
	})
}
