package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylan/specdash/spec"
)

func sampleSpec() *spec.Specification {
	return &spec.Specification{
		Modules:          []spec.Module{{Name: "Auth", Description: "login and sessions"}},
		FeaturesByModule: map[string][]string{"Auth": {"login", "logout"}},
		UserStories: []spec.UserStory{
			{Role: "user", Goal: "log in", Benefit: "I can see my data"},
		},
		APIEndpoints: []spec.Endpoint{
			{
				Method:   "POST",
				Path:     "/login",
				Auth:     false,
				Request:  map[string]string{"email": "string", "password": "string"},
				Response: map[string]string{"token": "string"},
				Errors:   []string{"invalid_credentials"},
			},
		},
		DBSchema: []spec.Table{
			{Name: "users", Columns: []spec.Column{
				{Name: "id", Type: "uuid", Constraint: "primary key"},
				{Name: "email", Type: "text"},
			}},
		},
		OpenQuestions: []string{"Is SSO required?"},
	}
}

func TestSerializeRequiresSpec(t *testing.T) {
	_, err := Serialize(nil, "t1")
	assert.Error(t, err)
}

func TestSerializeIsDeterministic(t *testing.T) {
	sp := sampleSpec()

	first, err := Serialize(sp, "t1")
	require.NoError(t, err)
	second, err := Serialize(sp, "t1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged store serializes to byte-identical text")
}

func TestSerializeFieldOrder(t *testing.T) {
	text, err := Serialize(sampleSpec(), "t1")
	require.NoError(t, err)

	order := []string{
		`"trace_id"`,
		`"modules"`,
		`"features_by_module"`,
		`"user_stories"`,
		`"api_endpoints"`,
		`"db_schema"`,
		`"open_questions"`,
	}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		require.GreaterOrEqual(t, idx, 0, "missing %s", key)
		assert.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
}

func TestSerializeIncludesTraceID(t *testing.T) {
	text, err := Serialize(sampleSpec(), "trace-42")
	require.NoError(t, err)
	assert.Contains(t, text, `"trace_id": "trace-42"`)
}

func TestWriteFileMatchesSerialization(t *testing.T) {
	text, err := Serialize(sampleSpec(), "t1")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "specification.json")
	require.NoError(t, WriteFile(text, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(data), "file sink content equals the serialization")
}
