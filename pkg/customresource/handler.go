package customresource

import (
	"context"
	"fmt"

	awscfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/oklog/ulid/v2"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/observability"
	"github.com/theory-cloud/zonetheory/pkg/route53api"
	"github.com/theory-cloud/zonetheory/pkg/sanitization"
	"github.com/theory-cloud/zonetheory/route53"
)

// ClientFactory builds a Route 53 client; handlers pass role and region options.
type ClientFactory func(ctx context.Context, options ...route53api.Option) (route53api.Client, error)

// IDGenerator provides physical resource ids for new resources.
type IDGenerator interface {
	NewID() string
}

// ULIDGenerator generates lexically sortable ids.
type ULIDGenerator struct{}

func (ULIDGenerator) NewID() string {
	return ulid.Make().String()
}

// Handler serves the custom resources emitted by the route53 constructs.
type Handler struct {
	newClient ClientFactory
	logger    observability.StructuredLogger
	ids       IDGenerator
	wait      bool
}

type Option func(*Handler)

func WithClientFactory(factory ClientFactory) Option {
	return func(h *Handler) {
		h.newClient = factory
	}
}

func WithLogger(logger observability.StructuredLogger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithIDGenerator(ids IDGenerator) Option {
	return func(h *Handler) {
		h.ids = ids
	}
}

// WithWaitForChanges controls whether handlers wait for record changes to reach INSYNC.
func WithWaitForChanges(wait bool) Option {
	return func(h *Handler) {
		h.wait = wait
	}
}

func NewHandler(options ...Option) *Handler {
	h := &Handler{
		newClient: route53api.NewClient,
		logger:    observability.NewNoOpLogger(),
		ids:       ULIDGenerator{},
		wait:      true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.logger == nil {
		h.logger = observability.NewNoOpLogger()
	}
	return h
}

// Handle implements cfn.CustomResourceFunction; wrap it with cfn.LambdaWrap.
func (h *Handler) Handle(ctx context.Context, event awscfn.Event) (string, map[string]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := h.logger.
		WithRequestID(event.RequestID).
		WithStackID(event.StackID).
		WithLogicalResourceID(event.LogicalResourceID)

	physicalID := event.PhysicalResourceID
	if physicalID == "" {
		physicalID = h.ids.NewID()
	}

	log.Info("custom resource request", map[string]any{
		"request_type":  string(event.RequestType),
		"resource_type": event.ResourceType,
		"response_url":  sanitization.SanitizeURL(event.ResponseURL),
	})

	var err error
	switch event.ResourceType {
	case route53.CrossAccountZoneDelegationResourceType:
		err = h.handleDelegation(ctx, log, event)
	case route53.DeleteExistingRecordSetResourceType:
		err = h.handleDeleteExisting(ctx, log, event)
	default:
		err = cfn.Errorf(cfn.CodeUnsupported, "unsupported resource type %q", event.ResourceType)
	}
	if err != nil {
		log.Error("custom resource failed", map[string]any{"error": err})
		return physicalID, nil, fmt.Errorf("%s %s: %w", event.RequestType, event.LogicalResourceID, err)
	}
	log.Info("custom resource succeeded")
	return physicalID, nil, nil
}

func (h *Handler) applyChange(ctx context.Context, client route53api.Client, changeID string) error {
	if !h.wait {
		return nil
	}
	return client.WaitForChange(ctx, changeID)
}
