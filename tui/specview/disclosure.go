package specview

// Section identifies one collapsible group of the rendered specification.
type Section string

const (
	SectionModules   Section = "modules"
	SectionFeatures  Section = "features"
	SectionStories   Section = "stories"
	SectionAPIs      Section = "apis"
	SectionDB        Section = "db"
	SectionQuestions Section = "questions"
)

// Sections is the fixed display order of the accordion.
var Sections = []Section{
	SectionModules,
	SectionFeatures,
	SectionStories,
	SectionAPIs,
	SectionDB,
	SectionQuestions,
}

// Disclosure tracks which single section is expanded. The zero value has no
// section open. At most one section is ever open: opening one implicitly
// closes whatever was open before.
type Disclosure struct {
	open Section // "" means none open
}

// Toggle returns the state after toggling id: toggling the open section
// closes it, toggling any other section opens it exclusively. Pure function
// of the current state and input.
func (d Disclosure) Toggle(id Section) Disclosure {
	if d.open == id {
		return Disclosure{}
	}
	return Disclosure{open: id}
}

// Open returns the open section and whether any section is open.
func (d Disclosure) Open() (Section, bool) {
	return d.open, d.open != ""
}

// IsOpen reports whether id is the open section.
func (d Disclosure) IsOpen(id Section) bool {
	return d.open == id
}
