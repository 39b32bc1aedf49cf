package session

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dylan/specdash/engine"
	"github.com/dylan/specdash/spec"
)

// generationClient is the slice of the engine client the orchestrator needs.
type generationClient interface {
	Generate(ctx context.Context, requirementsText string) (engine.Result, error)
	Refine(ctx context.Context, current *spec.Specification, refinementText string) (engine.Result, error)
}

const genericFailureMsg = "the generation service is unavailable or returned an unexpected response"

// Orchestrator drives the two supported operations against the generation
// service and is the only writer of the Store. Generate and Refine share one
// acceptance rule: replace the stored specification on success, retain it on
// any failure. Overlapping calls are not deduplicated here; the UI disables
// its triggers while Busy() is true.
type Orchestrator struct {
	store  *Store
	client generationClient
	logger *zap.Logger
}

func NewOrchestrator(store *Store, client generationClient, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{store: store, client: client, logger: logger}
}

// Generate produces a specification from requirements text. Empty input
// after trimming is a no-op: no network call, no state change.
func (o *Orchestrator) Generate(ctx context.Context, requirementsText string) {
	text := strings.TrimSpace(requirementsText)
	if text == "" {
		return
	}

	o.store.begin()
	defer o.store.finish()

	res, err := o.client.Generate(ctx, text)
	if err != nil {
		o.logger.Warn("generate failed", zap.Error(err))
		o.store.fail(failureMessage(err))
		return
	}

	o.store.setResult(res.Spec, res.TraceID)
	o.logger.Debug("generate succeeded", zap.String("trace_id", res.TraceID))
}

// Refine asks the service to modify the stored specification. It requires a
// stored specification and non-empty refinement text; otherwise it records a
// precondition error locally without touching the network. A failed call
// never destroys the last good specification.
func (o *Orchestrator) Refine(ctx context.Context, refinementText string) {
	text := strings.TrimSpace(refinementText)
	current := o.store.Spec()

	if current == nil {
		o.store.fail("nothing to refine yet: generate a specification first")
		return
	}
	if text == "" {
		o.store.fail("refinement text is empty")
		return
	}

	o.store.begin()
	defer o.store.finish()

	res, err := o.client.Refine(ctx, current, text)
	if err != nil {
		o.logger.Warn("refine failed", zap.Error(err))
		o.store.fail(failureMessage(err) + " (previous specification unchanged)")
		return
	}

	o.store.setResult(res.Spec, res.TraceID)
	o.logger.Debug("refine succeeded", zap.String("trace_id", res.TraceID))
}

// failureMessage surfaces a service-reported message verbatim when present
// and falls back to a generic message for transport and parse failures.
func failureMessage(err error) string {
	var svcErr *engine.ServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return genericFailureMsg
}
