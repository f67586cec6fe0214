package customresource

import (
	"context"

	awscfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/theory-cloud/zonetheory/pkg/observability"
)

// handleDeleteExisting removes a record that would collide with one about to be created.
// Only Create does any work.
func (h *Handler) handleDeleteExisting(ctx context.Context, log observability.StructuredLogger, event awscfn.Event) error {
	if event.RequestType != awscfn.RequestCreate {
		return nil
	}
	var props deleteExistingProps
	if err := decodeProps(event.ResourceProperties, &props); err != nil {
		return err
	}

	client, err := h.newClient(ctx)
	if err != nil {
		return err
	}
	rrType := types.RRType(props.RecordType)
	existing, err := client.FindRecordSet(ctx, props.HostedZoneId, props.RecordName, rrType)
	if err != nil {
		return err
	}
	fields := map[string]any{
		"hosted_zone_id": props.HostedZoneId,
		"record_name":    props.RecordName,
		"record_type":    props.RecordType,
	}
	if existing == nil {
		log.Info("no existing record to delete", fields)
		return nil
	}

	log.Info("deleting existing record", fields)
	changeID, err := client.ChangeRecordSet(ctx, props.HostedZoneId, types.ChangeActionDelete, *existing)
	if err != nil {
		return err
	}
	return h.applyChange(ctx, client, changeID)
}
