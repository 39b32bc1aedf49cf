// Package export serializes the stored specification for the clipboard and
// for file downloads. Both sinks consume the same serializer so their output
// never diverges.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/dylan/specdash/spec"
)

// document is the exported shape: the trace identifier followed by the
// specification fields in their declared order.
type document struct {
	TraceID string `json:"trace_id"`
	*spec.Specification
}

// Serialize renders the specification as pretty-printed JSON with a stable
// key order. Serializing the same stored state twice yields identical text.
func Serialize(sp *spec.Specification, traceID string) (string, error) {
	if sp == nil {
		return "", fmt.Errorf("no specification to export")
	}

	data, err := json.MarshalIndent(document{TraceID: traceID, Specification: sp}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing specification: %w", err)
	}
	return string(data) + "\n", nil
}

// CopyToClipboard writes the serialized text to the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// WriteFile writes the serialized text to path, creating the directory if
// needed. os.WriteFile closes the handle before returning, so nothing leaks
// across repeated exports.
func WriteFile(text, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}
