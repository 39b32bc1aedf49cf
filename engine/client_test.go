package engine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylan/specdash/spec"
)

func TestClientGenerate(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		wantErr        string
		wantService    bool
		wantTraceID    string
	}{
		{
			name: "successful_generation",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/generate", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

				var req generateRequest
				err := json.NewDecoder(r.Body).Decode(&req)
				assert.NoError(t, err)
				assert.Equal(t, "Build a todo app", req.RequirementsText)

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(envelope{
					Status:  "success",
					TraceID: "t1",
					Spec: &spec.Specification{
						Modules: []spec.Module{{Name: "Auth"}},
					},
				})
			},
			wantTraceID: "t1",
		},
		{
			name: "service_reported_failure_with_message",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(envelope{Status: "error", Message: "quota exceeded"})
			},
			wantErr:     "quota exceeded",
			wantService: true,
		},
		{
			name: "service_reported_failure_without_message",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(envelope{Status: "failed"})
			},
			wantErr:     `status "failed"`,
			wantService: true,
		},
		{
			name: "server_error",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Internal server error"))
			},
			wantErr: "returned status 500",
		},
		{
			name: "invalid_json_response",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte("not json"))
			},
			wantErr: "decoding response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second, nil)
			res, err := client.Generate(context.Background(), "Build a todo app")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var svcErr *ServiceError
				if tt.wantService {
					assert.ErrorAs(t, err, &svcErr, "service failures are typed")
				} else {
					assert.False(t, errors.As(err, &svcErr), "transport failures are not ServiceError")
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTraceID, res.TraceID)
			require.NotNil(t, res.Spec)
			assert.Equal(t, "Auth", res.Spec.Modules[0].Name)
		})
	}
}

func TestClientRefineSendsSpecAndText(t *testing.T) {
	current := &spec.Specification{
		Modules:          []spec.Module{{Name: "Auth"}},
		FeaturesByModule: map[string][]string{"Auth": {"login"}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refine", r.URL.Path)

		var req refineRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "Add auth to all APIs", req.RefinementText)
		require.NotNil(t, req.Spec)
		assert.Equal(t, "Auth", req.Spec.Modules[0].Name)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelope{Status: "success", TraceID: "t2", Spec: req.Spec})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nil)
	res, err := client.Refine(context.Background(), current, "Add auth to all APIs")

	require.NoError(t, err)
	assert.Equal(t, "t2", res.TraceID)
}

func TestClientTransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 1*time.Second, nil)
	_, err := client.Generate(context.Background(), "Build a todo app")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling generation service")
}

func TestIncompleteSpecAcceptedAsIs(t *testing.T) {
	// A success envelope with missing collections is not rejected; the
	// client does not deep-validate payloads.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","trace_id":"t3","spec":{"modules":[{"name":"Core"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nil)
	res, err := client.Generate(context.Background(), "minimal")

	require.NoError(t, err)
	assert.Equal(t, "t3", res.TraceID)
	require.NotNil(t, res.Spec)
	assert.Nil(t, res.Spec.UserStories)
	assert.Nil(t, res.Spec.FeaturesByModule)
}
