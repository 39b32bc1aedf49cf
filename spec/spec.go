package spec

// Module is a top-level building block of the generated specification.
type Module struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserStory is a single "as a / I want / so that" entry.
type UserStory struct {
	Role    string `json:"role"`
	Goal    string `json:"goal"`
	Benefit string `json:"benefit"`
}

// Endpoint describes one generated API endpoint.
type Endpoint struct {
	Method   string            `json:"method"`
	Path     string            `json:"path"`
	Auth     bool              `json:"auth"`
	Request  map[string]string `json:"request"`
	Response map[string]string `json:"response"`
	Errors   []string          `json:"errors"`
}

// Column is a single column of a generated table.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Constraint string `json:"constraint,omitempty"`
}

// Table is one table of the generated database schema.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Specification is the structured result produced by the generation service.
// The service is the source of truth: keys in FeaturesByModule are not
// required to match entries in Modules, and no cross-field validation is
// performed here.
type Specification struct {
	Modules          []Module            `json:"modules"`
	FeaturesByModule map[string][]string `json:"features_by_module"`
	UserStories      []UserStory         `json:"user_stories"`
	APIEndpoints     []Endpoint          `json:"api_endpoints"`
	DBSchema         []Table             `json:"db_schema"`
	OpenQuestions    []string            `json:"open_questions"`
}

// Features returns the feature list for a module name, or nil if the
// service didn't emit one for it.
func (s *Specification) Features(module string) []string {
	if s == nil || s.FeaturesByModule == nil {
		return nil
	}
	return s.FeaturesByModule[module]
}
