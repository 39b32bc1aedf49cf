package shared

// GenerateDoneMsg signals that a generate call has completed; the outcome
// lives in the session store.
type GenerateDoneMsg struct{}

// RefineDoneMsg signals that a refine call has completed.
type RefineDoneMsg struct{}

// ClipboardExportedMsg reports a clipboard export attempt.
type ClipboardExportedMsg struct {
	Err error
}

// FileExportedMsg reports a file export attempt.
type FileExportedMsg struct {
	Path string
	Err  error
}

type ClosePromptMsg struct{}
type CloseRefineMsg struct{}
