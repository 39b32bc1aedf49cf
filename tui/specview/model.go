package specview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylan/specdash/spec"
	"github.com/dylan/specdash/tui/shared"
)

var sectionTitles = map[Section]string{
	SectionModules:   "Modules",
	SectionFeatures:  "Features",
	SectionStories:   "User Stories",
	SectionAPIs:      "API Endpoints",
	SectionDB:        "Database Schema",
	SectionQuestions: "Open Questions",
}

// Model renders the stored specification as an exclusive accordion.
// Disclosure state survives data changes: replacing the specification after a
// refinement leaves the same section open.
type Model struct {
	spec    *spec.Specification
	traceID string
	cursor  int
	disc    Disclosure
	width   int
	height  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetSpec replaces the rendered specification. The disclosure state is
// deliberately not reset.
func (m *Model) SetSpec(sp *spec.Specification, traceID string) {
	m.spec = sp
	m.traceID = traceID
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(Sections)-1 {
		m.cursor++
	}
}

// ToggleSelected toggles the section under the cursor.
func (m *Model) ToggleSelected() {
	m.disc = m.disc.Toggle(Sections[m.cursor])
}

// ToggleAt toggles the i-th section (0-based) and moves the cursor to it.
func (m *Model) ToggleAt(i int) {
	if i < 0 || i >= len(Sections) {
		return
	}
	m.cursor = i
	m.disc = m.disc.Toggle(Sections[i])
}

// Disclosure exposes the current accordion state.
func (m Model) Disclosure() Disclosure {
	return m.disc
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + shared.TitleStyle.Render("Specification"))
	if m.traceID != "" {
		b.WriteString(shared.DimStyle.Render("  trace " + m.traceID))
	}
	b.WriteString("\n\n")

	if m.spec == nil {
		b.WriteString(shared.MutedStyle.Render("  No specification yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, sec := range Sections {
		open := m.disc.IsOpen(sec)

		marker := "▸"
		headerStyle := shared.SectionShutStyle
		if open {
			marker = "▾"
			headerStyle = shared.SectionOpenStyle
		}

		header := fmt.Sprintf(" %s %d. %s %s", marker, i+1,
			sectionTitles[sec], shared.SectionCountStyle.Render(m.countLabel(sec)))
		line := headerStyle.Render(header)
		if i == m.cursor {
			line = shared.CursorStyle.Render(line)
		}
		b.WriteString(" " + line + "\n")

		if open {
			b.WriteString(m.renderSection(sec))
		}
	}

	return b.String()
}

func (m Model) countLabel(sec Section) string {
	n := 0
	switch sec {
	case SectionModules:
		n = len(m.spec.Modules)
	case SectionFeatures:
		n = len(m.spec.FeaturesByModule)
	case SectionStories:
		n = len(m.spec.UserStories)
	case SectionAPIs:
		n = len(m.spec.APIEndpoints)
	case SectionDB:
		n = len(m.spec.DBSchema)
	case SectionQuestions:
		n = len(m.spec.OpenQuestions)
	}
	return fmt.Sprintf("(%d)", n)
}

func (m Model) renderSection(sec Section) string {
	var lines []string

	switch sec {
	case SectionModules:
		for _, mod := range m.spec.Modules {
			line := shared.ContentStyle.Render(mod.Name)
			if mod.Description != "" {
				line += shared.MutedStyle.Render(": " + mod.Description)
			}
			lines = append(lines, line)
		}

	case SectionFeatures:
		// List module entries in their declared order first, then any
		// extra feature-map keys the service emitted without a matching
		// module entry.
		seen := make(map[string]bool)
		for _, mod := range m.spec.Modules {
			if feats := m.spec.Features(mod.Name); feats != nil {
				seen[mod.Name] = true
				lines = append(lines, featureLines(mod.Name, feats)...)
			}
		}
		var extra []string
		for name := range m.spec.FeaturesByModule {
			if !seen[name] {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
		for _, name := range extra {
			lines = append(lines, featureLines(name, m.spec.FeaturesByModule[name])...)
		}

	case SectionStories:
		for _, st := range m.spec.UserStories {
			lines = append(lines, shared.ContentStyle.Render(
				fmt.Sprintf("As a %s, I want %s, so that %s", st.Role, st.Goal, st.Benefit)))
		}

	case SectionAPIs:
		for _, ep := range m.spec.APIEndpoints {
			head := shared.LabelStyle.Render(ep.Method) + " " + shared.ContentStyle.Render(ep.Path)
			if ep.Auth {
				head += shared.MutedStyle.Render("  [auth]")
			}
			lines = append(lines, head)
			if len(ep.Request) > 0 {
				lines = append(lines, shared.DimStyle.Render("  req:  "+fieldMap(ep.Request)))
			}
			if len(ep.Response) > 0 {
				lines = append(lines, shared.DimStyle.Render("  resp: "+fieldMap(ep.Response)))
			}
			if len(ep.Errors) > 0 {
				lines = append(lines, shared.DimStyle.Render("  errs: "+strings.Join(ep.Errors, ", ")))
			}
		}

	case SectionDB:
		for _, tbl := range m.spec.DBSchema {
			lines = append(lines, shared.LabelStyle.Render(tbl.Name))
			for _, col := range tbl.Columns {
				line := fmt.Sprintf("  %s %s", col.Name, col.Type)
				if col.Constraint != "" {
					line += " " + col.Constraint
				}
				lines = append(lines, shared.MutedStyle.Render(line))
			}
		}

	case SectionQuestions:
		for _, q := range m.spec.OpenQuestions {
			lines = append(lines, shared.ContentStyle.Render("• "+q))
		}
	}

	if len(lines) == 0 {
		lines = []string{shared.DimStyle.Render("(none)")}
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString("     " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func featureLines(module string, feats []string) []string {
	lines := []string{shared.LabelStyle.Render(module)}
	for _, f := range feats {
		lines = append(lines, shared.MutedStyle.Render("  • "+f))
	}
	return lines
}

func fieldMap(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + fields[k]
	}
	return strings.Join(parts, "  ")
}
