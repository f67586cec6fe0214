package cdkbridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/cloudformationinclude"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// Attach synthesizes stack and declares every resource under scope, keeping logical ids,
// dependencies and policies. Route53 L1 resources become the matching awsroute53.CfnXxx;
// anything else is declared as a generic awscdk.CfnResource.
func Attach(scope constructs.Construct, stack *cfn.Stack) (map[string]awscdk.CfnResource, error) {
	tmpl, err := stack.Synth()
	if err != nil {
		return nil, err
	}

	hosts := make(map[string]cfn.IConstruct, len(tmpl.Resources))
	for _, r := range stack.Resources() {
		hosts[r.LogicalId()] = r.Node().Host()
	}

	ids := tmpl.LogicalIDs()
	out := make(map[string]awscdk.CfnResource, len(ids))
	for _, id := range ids {
		res := tmpl.Resources[id]
		r := declare(scope, id, hosts[id], res)
		r.OverrideLogicalId(jsii.String(id))
		if res.DeletionPolicy != "" {
			r.AddOverride(jsii.String("DeletionPolicy"), res.DeletionPolicy)
		}
		if res.UpdateReplacePolicy != "" {
			r.AddOverride(jsii.String("UpdateReplacePolicy"), res.UpdateReplacePolicy)
		}
		if res.Condition != "" {
			r.AddOverride(jsii.String("Condition"), res.Condition)
		}
		for k, v := range res.Metadata {
			r.AddMetadata(jsii.String(k), v)
		}
		out[id] = r
	}

	for _, id := range ids {
		for _, dep := range tmpl.Resources[id].DependsOn {
			target, ok := out[dep]
			if !ok {
				return nil, cfn.Errorf(cfn.CodeNotFound, "resource '%s' depends on unknown resource '%s'", id, dep)
			}
			out[id].AddDependency(target)
		}
	}
	return out, nil
}

// declare creates the CDK construct for one resource. Typed props carry token text for
// references, so every property whose resolved value holds an intrinsic is overridden
// with that value.
func declare(scope constructs.Construct, id string, host cfn.IConstruct, res *cfn.Resource) awscdk.CfnResource {
	c := converter{lenient: true}
	cid := jsii.String(id)

	var r awscdk.CfnResource
	switch h := host.(type) {
	case *route53.CfnHostedZone:
		r = awsroute53.NewCfnHostedZone(scope, cid, c.hostedZone(&route53.CfnHostedZoneProps{
			Name:               h.Name(),
			HostedZoneConfig:   h.HostedZoneConfig(),
			HostedZoneFeatures: h.HostedZoneFeatures(),
			HostedZoneTags:     h.HostedZoneTags(),
			QueryLoggingConfig: h.QueryLoggingConfig(),
			Vpcs:               h.Vpcs(),
		}))
	case *route53.CfnRecordSet:
		r = awsroute53.NewCfnRecordSet(scope, cid, c.recordSet(&route53.CfnRecordSetProps{
			Name:                 h.Name(),
			Type:                 h.Type(),
			AliasTarget:          h.AliasTarget(),
			CidrRoutingConfig:    h.CidrRoutingConfig(),
			Comment:              h.Comment(),
			Failover:             h.Failover(),
			GeoLocation:          h.GeoLocation(),
			GeoProximityLocation: h.GeoProximityLocation(),
			HealthCheckId:        h.HealthCheckId(),
			HostedZoneId:         h.HostedZoneId(),
			HostedZoneName:       h.HostedZoneName(),
			MultiValueAnswer:     h.MultiValueAnswer(),
			Region:               h.Region(),
			ResourceRecords:      h.ResourceRecords(),
			SetIdentifier:        h.SetIdentifier(),
			Ttl:                  h.Ttl(),
			Weight:               h.Weight(),
		}))
	case *route53.CfnRecordSetGroup:
		r = awsroute53.NewCfnRecordSetGroup(scope, cid, c.recordSetGroup(&route53.CfnRecordSetGroupProps{
			Comment:        h.Comment(),
			HostedZoneId:   h.HostedZoneId(),
			HostedZoneName: h.HostedZoneName(),
			RecordSets:     h.RecordSets(),
		}))
	case *route53.CfnHealthCheck:
		r = awsroute53.NewCfnHealthCheck(scope, cid, c.healthCheck(&route53.CfnHealthCheckProps{
			HealthCheckConfig: h.HealthCheckConfig(),
			HealthCheckTags:   h.HealthCheckTags(),
		}))
	case *route53.CfnKeySigningKey:
		r = awsroute53.NewCfnKeySigningKey(scope, cid, c.keySigningKey(&route53.CfnKeySigningKeyProps{
			HostedZoneId:            h.HostedZoneId(),
			KeyManagementServiceArn: h.KeyManagementServiceArn(),
			Name:                    h.Name(),
			Status:                  h.Status(),
		}))
	case *route53.CfnDNSSEC:
		r = awsroute53.NewCfnDNSSEC(scope, cid, &awsroute53.CfnDNSSECProps{HostedZoneId: h.HostedZoneId()})
	case *route53.CfnCidrCollection:
		r = awsroute53.NewCfnCidrCollection(scope, cid, c.cidrCollection(&route53.CfnCidrCollectionProps{
			Name:      h.Name(),
			Locations: h.Locations(),
		}))
	default:
		props := res.Properties
		if props == nil {
			props = map[string]any{}
		}
		return awscdk.NewCfnResource(scope, cid, &awscdk.CfnResourceProps{
			Type:       jsii.String(res.Type),
			Properties: &props,
		})
	}

	for k, v := range res.Properties {
		if hasIntrinsic(v) {
			r.AddPropertyOverride(jsii.String(k), v)
		}
	}
	return r
}

// hasIntrinsic reports whether a resolved value contains Ref or an Fn:: function.
func hasIntrinsic(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			if k == "Ref" || strings.HasPrefix(k, "Fn::") || hasIntrinsic(inner) {
				return true
			}
		}
	case []any:
		for _, inner := range t {
			if hasIntrinsic(inner) {
				return true
			}
		}
	}
	return false
}

// Include writes the synthesized stack to dir and loads it with cloudformationinclude,
// which also carries parameters, conditions and outputs.
func Include(scope constructs.Construct, id string, stack *cfn.Stack, dir string) (cloudformationinclude.CfnInclude, error) {
	tmpl, err := stack.Synth()
	if err != nil {
		return nil, err
	}
	data, err := tmpl.JSON()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.template.json", stack.StackName()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("cdkbridge: write template: %w", err)
	}
	return cloudformationinclude.NewCfnInclude(scope, jsii.String(id), &cloudformationinclude.CfnIncludeProps{
		TemplateFile: jsii.String(path),
	}), nil
}
