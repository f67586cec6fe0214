package route53

import (
	"fmt"
	"strconv"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Default TTL for records with values.
var defaultRecordTtl = cfn.Duration_Minutes(30)

const (
	maxWeight              = 255
	maxSetIdentifierLength = 128
)

// A record set.
//
// Unlike CfnRecordSet, RecordSet checks routing options: at most one routing policy, weight
// within 0..255, and a set identifier only alongside a routing policy.
type RecordSet struct {
	*cfn.Construct

	resource   *CfnRecordSet
	recordType RecordType

	geoLocation       *GeoLocation
	weight            *float64
	region            *string
	multiValueAnswer  *bool
	failover          Failover
	cidrRoutingConfig *CidrRoutingConfig
}

var _ IRecordSet = (*RecordSet)(nil)

func NewRecordSet(scope cfn.IConstruct, id *string, props *RecordSetProps) *RecordSet {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := newRecordSet(scope, *id, props)
	r.SetHost(r)
	return r
}

func newRecordSet(scope cfn.IConstruct, id string, props *RecordSetProps) *RecordSet {
	cfn.Must(validateRoutingOptions(props))

	r := &RecordSet{
		Construct:         cfn.NewConstruct(scope, id),
		recordType:        props.RecordType,
		geoLocation:       props.GeoLocation,
		weight:            props.Weight,
		region:            props.Region,
		multiValueAnswer:  props.MultiValueAnswer,
		failover:          props.Failover,
		cidrRoutingConfig: props.CidrRoutingConfig,
	}

	zone := props.Zone
	recordName := determineFullyQualifiedDomainName(props.RecordName, zone)

	cfnProps := &CfnRecordSetProps{
		HostedZoneId:     zone.HostedZoneId(),
		Name:             jsii.String(recordName),
		Type:             jsii.String(string(props.RecordType)),
		ResourceRecords:  props.Target.Values(),
		Comment:          props.Comment,
		MultiValueAnswer: props.MultiValueAnswer,
		Region:           props.Region,
		Weight:           props.Weight,
	}
	if alias := props.Target.AliasTarget(); alias != nil {
		cfg := alias.Bind(r, zone)
		cfnProps.AliasTarget = &CfnRecordSet_AliasTargetProperty{
			DnsName:              cfg.DnsName,
			HostedZoneId:         cfg.HostedZoneId,
			EvaluateTargetHealth: cfg.EvaluateTargetHealth,
		}
	} else {
		ttl := defaultRecordTtl
		if props.Ttl != nil {
			ttl = props.Ttl
		}
		secs, err := ttl.ToSeconds()
		cfn.Must(err)
		cfnProps.Ttl = jsii.String(strconv.FormatFloat(secs, 'f', -1, 64))
	}
	if props.GeoLocation != nil {
		cfnProps.GeoLocation = props.GeoLocation.property()
	}
	if props.HealthCheck != nil {
		cfnProps.HealthCheckId = props.HealthCheck.HealthCheckId()
	}
	if props.CidrRoutingConfig != nil {
		cfnProps.CidrRoutingConfig = props.CidrRoutingConfig.property()
	}
	if props.Failover != "" {
		cfnProps.Failover = jsii.String(string(props.Failover))
	}

	r.resource = NewCfnRecordSet(r, jsii.String("Resource"), cfnProps)
	if props.SetIdentifier != nil {
		r.resource.SetSetIdentifier(props.SetIdentifier)
	} else if generated := r.configureSetIdentifier(); generated != "" {
		r.resource.SetSetIdentifier(jsii.String(generated))
	}

	if props.DeleteExisting != nil && *props.DeleteExisting {
		deleteExisting := cfn.NewCfnResource(r, "DeleteExistingRecordSetCustomResource", &cfn.CfnResourceProps{
			Type: jsii.String(DeleteExistingRecordSetResourceType),
			Properties: map[string]any{
				"ServiceToken": customResourceServiceToken(r),
				"HostedZoneId": *zone.HostedZoneId(),
				"RecordName":   recordName,
				"RecordType":   string(props.RecordType),
			},
		})
		r.resource.AddDependency(deleteExisting)
	}
	return r
}

// The domain name of the record.
func (r *RecordSet) DomainName() *string {
	return jsii.String(r.resource.Ref())
}

// The record type.
func (r *RecordSet) RecordType() RecordType {
	return r.recordType
}

// The underlying AWS::Route53::RecordSet resource.
func (r *RecordSet) CfnRecordSet() *CfnRecordSet {
	return r.resource
}

// Apply the given removal policy to the underlying record set resource.
func (r *RecordSet) ApplyRemovalPolicy(policy cfn.RemovalPolicy) {
	r.resource.ApplyRemovalPolicy(policy)
}

func validateRoutingOptions(props *RecordSetProps) error {
	if props.Weight != nil && (*props.Weight < 0 || *props.Weight > maxWeight) {
		return cfn.Errorf(cfn.CodeValidationFailed, "weight must be between 0 and 255 inclusive, got: %v", *props.Weight)
	}
	if props.SetIdentifier != nil {
		if n := len(*props.SetIdentifier); n < 1 || n > maxSetIdentifierLength {
			return cfn.Errorf(cfn.CodeValidationFailed, "setIdentifier must be between 1 and 128 characters long, got: %d", n)
		}
	}

	policies := 0
	for _, set := range []bool{
		props.GeoLocation != nil,
		props.Region != nil,
		props.Weight != nil,
		props.MultiValueAnswer != nil,
		props.CidrRoutingConfig != nil,
		props.Failover != "",
	} {
		if set {
			policies++
		}
	}
	if props.SetIdentifier != nil && policies == 0 {
		return cfn.Errorf(cfn.CodeValidationFailed, "setIdentifier can only be specified for non-simple routing policies")
	}
	if props.MultiValueAnswer != nil && *props.MultiValueAnswer && props.Target != nil && props.Target.AliasTarget() != nil {
		return cfn.Errorf(cfn.CodeValidationFailed, "multiValueAnswer cannot be specified for alias record")
	}
	if policies > 1 {
		return cfn.Errorf(cfn.CodeValidationFailed, "Only one of region, weight, multiValueAnswer, geoLocation, cidrRoutingConfig or failover can be defined")
	}
	return nil
}

// configureSetIdentifier generates an identifier for records using a routing policy.
func (r *RecordSet) configureSetIdentifier() string {
	if g := r.geoLocation; g != nil {
		id := "GEO"
		if g.continentCode != nil {
			id += "_CONTINENT_" + *g.continentCode
		}
		if g.countryCode != nil {
			id += "_COUNTRY_" + *g.countryCode
		}
		if g.subdivisionCode != nil {
			id += "_SUBDIVISION_" + *g.subdivisionCode
		}
		return id
	}

	var prefix string
	switch {
	case r.weight != nil:
		prefix = fmt.Sprintf("WEIGHT_%s_ID_", formatNumber(r.weight))
	case r.region != nil:
		prefix = fmt.Sprintf("REGION_%s_ID_", *r.region)
	case r.multiValueAnswer != nil:
		prefix = "MVA_ID_"
	case r.failover != "":
		prefix = fmt.Sprintf("FAILOVER_%s_ID_", string(r.failover))
	case r.cidrRoutingConfig != nil:
		prefix = fmt.Sprintf("CIDR_%s_ID_", r.cidrRoutingConfig.locationName)
	default:
		return ""
	}
	return prefix + cfn.UniqueResourceName(r, maxSetIdentifierLength-len(prefix))
}
