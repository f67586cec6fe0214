package customresource

import (
	"context"

	awscfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/observability"
	"github.com/theory-cloud/zonetheory/pkg/route53api"
)

const delegationSessionName = "cross-account-zone-delegation"

// handleDelegation keeps the NS record for a delegated zone in a parent zone owned by
// another account.
func (h *Handler) handleDelegation(ctx context.Context, log observability.StructuredLogger, event awscfn.Event) error {
	var props delegationProps
	if err := decodeProps(event.ResourceProperties, &props); err != nil {
		return err
	}

	switch event.RequestType {
	case awscfn.RequestCreate:
		return h.changeDelegation(ctx, log, props, types.ChangeActionUpsert)
	case awscfn.RequestUpdate:
		var old delegationProps
		if err := decodeProps(event.OldResourceProperties, &old); err == nil &&
			route53api.NormalizeName(old.DelegatedZoneName) != route53api.NormalizeName(props.DelegatedZoneName) {
			if err := h.changeDelegation(ctx, log, old, types.ChangeActionDelete); err != nil {
				return err
			}
		}
		return h.changeDelegation(ctx, log, props, types.ChangeActionUpsert)
	case awscfn.RequestDelete:
		return h.changeDelegation(ctx, log, props, types.ChangeActionDelete)
	default:
		return cfn.Errorf(cfn.CodeUnsupported, "unsupported request type %q", event.RequestType)
	}
}

func (h *Handler) changeDelegation(ctx context.Context, log observability.StructuredLogger, props delegationProps, action types.ChangeAction) error {
	options := []route53api.Option{route53api.WithAssumeRole(props.AssumeRoleArn, delegationSessionName)}
	if props.AssumeRoleRegion != "" {
		options = append(options, route53api.WithRegion(props.AssumeRoleRegion))
	}
	client, err := h.newClient(ctx, options...)
	if err != nil {
		return err
	}

	parentID, err := resolveParentZone(ctx, client, props)
	if err != nil {
		return err
	}

	records := make([]types.ResourceRecord, 0, len(props.DelegatedZoneNameServers))
	for _, ns := range props.DelegatedZoneNameServers {
		records = append(records, types.ResourceRecord{Value: aws.String(ns)})
	}
	rrset := types.ResourceRecordSet{
		Name:            aws.String(route53api.NormalizeName(props.DelegatedZoneName)),
		Type:            types.RRTypeNs,
		TTL:             aws.Int64(int64(props.TTL)),
		ResourceRecords: records,
	}

	log.Info("changing delegation record", map[string]any{
		"action":          string(action),
		"hosted_zone_id":  parentID,
		"record_name":     aws.ToString(rrset.Name),
		"assume_role_arn": props.AssumeRoleArn,
	})
	changeID, err := client.ChangeRecordSet(ctx, parentID, action, rrset)
	if err != nil {
		if action == types.ChangeActionDelete && route53api.IsRecordNotFound(err) {
			log.Warn("delegation record already removed", map[string]any{"record_name": aws.ToString(rrset.Name)})
			return nil
		}
		return err
	}
	return h.applyChange(ctx, client, changeID)
}

func resolveParentZone(ctx context.Context, client route53api.Client, props delegationProps) (string, error) {
	if props.ParentZoneId != "" {
		return route53api.NormalizeHostedZoneID(props.ParentZoneId), nil
	}
	if props.ParentZoneName == "" {
		return "", cfn.Errorf(cfn.CodeRequiredMissing, "One of ParentZoneId or ParentZoneName must be specified")
	}
	zones, err := client.FindHostedZonesByName(ctx, props.ParentZoneName)
	if err != nil {
		return "", err
	}
	if len(zones) != 1 {
		return "", cfn.Errorf(cfn.CodeLookupFailed, "Expected one hosted zone to match the given name but found %d", len(zones))
	}
	return zones[0].ID, nil
}
