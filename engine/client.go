// Package engine talks to the remote generation service that turns
// free-text requirements into a structured specification.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dylan/specdash/spec"
)

// Result is a successful service response.
type Result struct {
	Spec    *spec.Specification
	TraceID string
}

// ServiceError is a failure the service itself reported (status != "success").
// Message is the service-provided text and may be empty.
type ServiceError struct {
	Status  string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("generation service reported status %q", e.Status)
}

type generateRequest struct {
	RequirementsText string `json:"requirements_text"`
}

type refineRequest struct {
	Spec           *spec.Specification `json:"spec"`
	RefinementText string              `json:"refinement_text"`
}

type envelope struct {
	Status  string              `json:"status"`
	TraceID string              `json:"trace_id"`
	Message string              `json:"message"`
	Spec    *spec.Specification `json:"spec"`
}

// Client is an HTTP client for the generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Generate asks the service to produce a specification from requirements text.
func (c *Client) Generate(ctx context.Context, requirementsText string) (Result, error) {
	return c.post(ctx, "/generate", generateRequest{RequirementsText: requirementsText})
}

// Refine asks the service to modify an existing specification per free-text
// instructions.
func (c *Client) Refine(ctx context.Context, current *spec.Specification, refinementText string) (Result, error) {
	return c.post(ctx, "/refine", refineRequest{Spec: current, RefinementText: refinementText})
}

func (c *Client) post(ctx context.Context, path string, body any) (Result, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("marshaling request: %w", err)
	}

	reqID := uuid.New().String()
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	c.logger.Debug("calling generation service",
		zap.String("url", url),
		zap.String("request_id", reqID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("generation service unreachable",
			zap.String("request_id", reqID), zap.Error(err))
		return Result{}, fmt.Errorf("calling generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("generation service returned non-2xx",
			zap.String("request_id", reqID),
			zap.Int("status_code", resp.StatusCode))
		return Result{}, fmt.Errorf("generation service returned status %d: %s", resp.StatusCode, bodyBytes)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Warn("generation service response unparseable",
			zap.String("request_id", reqID), zap.Error(err))
		return Result{}, fmt.Errorf("decoding response: %w", err)
	}

	if env.Status != "success" {
		c.logger.Warn("generation service reported failure",
			zap.String("request_id", reqID),
			zap.String("status", env.Status),
			zap.String("message", env.Message))
		return Result{}, &ServiceError{Status: env.Status, Message: env.Message}
	}

	// A success envelope is accepted as-is; nested spec fields are not
	// deep-validated here.
	c.logger.Debug("generation service succeeded",
		zap.String("request_id", reqID),
		zap.String("trace_id", env.TraceID))
	return Result{Spec: env.Spec, TraceID: env.TraceID}, nil
}
