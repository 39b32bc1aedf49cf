package specview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylan/specdash/config"
	"github.com/dylan/specdash/spec"
	"github.com/dylan/specdash/tui/shared"
)

func testSpec() *spec.Specification {
	return &spec.Specification{
		Modules:          []spec.Module{{Name: "Auth", Description: "login"}},
		FeaturesByModule: map[string][]string{"Auth": {"login"}, "Orphan": {"dangling feature"}},
		UserStories:      []spec.UserStory{{Role: "admin", Goal: "ban users", Benefit: "spam stops"}},
		OpenQuestions:    []string{"Which SSO provider?"},
	}
}

func TestViewWithoutSpec(t *testing.T) {
	shared.InitStyles(config.Config{}.ResolvedTheme())

	m := New()
	assert.Contains(t, m.View(), "No specification yet")
}

func TestViewRendersOpenSection(t *testing.T) {
	shared.InitStyles(config.Config{}.ResolvedTheme())

	m := New()
	m.SetSpec(testSpec(), "t1")

	view := m.View()
	assert.Contains(t, view, "Modules")
	assert.Contains(t, view, "trace t1")
	assert.NotContains(t, view, "login", "collapsed sections hide their content")

	m.ToggleAt(0)
	view = m.View()
	assert.Contains(t, view, "Auth")
	assert.Contains(t, view, "login")
}

func TestFeatureKeysWithoutModuleEntryStillRender(t *testing.T) {
	shared.InitStyles(config.Config{}.ResolvedTheme())

	m := New()
	m.SetSpec(testSpec(), "t1")
	m.ToggleAt(1)

	view := m.View()
	assert.Contains(t, view, "Orphan", "feature-map keys need not match module entries")
	assert.Contains(t, view, "dangling feature")
}

func TestCursorStaysInBounds(t *testing.T) {
	m := New()
	m.SetSpec(testSpec(), "t1")

	m.MoveUp()
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 20; i++ {
		m.MoveDown()
	}
	assert.Equal(t, len(Sections)-1, m.cursor)

	m.ToggleAt(99) // out of range, ignored
	_, open := m.Disclosure().Open()
	assert.False(t, open)
}

func TestDisclosureSurvivesSpecReplacement(t *testing.T) {
	m := New()
	m.SetSpec(testSpec(), "t1")
	m.ToggleAt(3)

	m.SetSpec(testSpec(), "t2")

	assert.True(t, m.Disclosure().IsOpen(SectionAPIs), "refinement does not reset the accordion")
}
