package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnRecordSet_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::RecordSet"

// Information about the record that you want to create.
//
// No routing-policy rules are applied here: a record with both Weight and GeoLocation, or
// a routing field without SetIdentifier, is rendered as given.
type CfnRecordSet struct {
	*cfn.CfnResource
	props CfnRecordSetProps
}

var _ cfn.IInspectable = (*CfnRecordSet)(nil)

// Create a new `AWS::Route53::RecordSet`.
func NewCfnRecordSet(scope cfn.IConstruct, id *string, props *CfnRecordSetProps) *CfnRecordSet {
	if err := validateNewCfnRecordSetParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnRecordSet{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnRecordSet_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

func (j *CfnRecordSet) AttrId() *string {
	return jsii.String(j.GetAtt("Id"))
}

func (j *CfnRecordSet) CfnResourceTypeName() *string {
	return jsii.String(CfnRecordSet_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnRecordSet) Name() *string { return j.props.Name }

func (j *CfnRecordSet) SetName(val *string) {
	if err := j.validateSetNameParameters(val); err != nil {
		panic(err)
	}
	j.props.Name = val
}

func (j *CfnRecordSet) Type() *string { return j.props.Type }

func (j *CfnRecordSet) SetType(val *string) {
	if err := j.validateSetTypeParameters(val); err != nil {
		panic(err)
	}
	j.props.Type = val
}

func (j *CfnRecordSet) AliasTarget() *CfnRecordSet_AliasTargetProperty { return j.props.AliasTarget }

func (j *CfnRecordSet) SetAliasTarget(val *CfnRecordSet_AliasTargetProperty) {
	if err := j.validateSetAliasTargetParameters(val); err != nil {
		panic(err)
	}
	j.props.AliasTarget = val
}

func (j *CfnRecordSet) CidrRoutingConfig() *CfnRecordSet_CidrRoutingConfigProperty {
	return j.props.CidrRoutingConfig
}

func (j *CfnRecordSet) SetCidrRoutingConfig(val *CfnRecordSet_CidrRoutingConfigProperty) {
	if err := j.validateSetCidrRoutingConfigParameters(val); err != nil {
		panic(err)
	}
	j.props.CidrRoutingConfig = val
}

func (j *CfnRecordSet) Comment() *string        { return j.props.Comment }
func (j *CfnRecordSet) SetComment(val *string)  { j.props.Comment = val }
func (j *CfnRecordSet) Failover() *string       { return j.props.Failover }
func (j *CfnRecordSet) SetFailover(val *string) { j.props.Failover = val }

func (j *CfnRecordSet) GeoLocation() *CfnRecordSet_GeoLocationProperty { return j.props.GeoLocation }

func (j *CfnRecordSet) SetGeoLocation(val *CfnRecordSet_GeoLocationProperty) {
	j.props.GeoLocation = val
}

func (j *CfnRecordSet) GeoProximityLocation() *CfnRecordSet_GeoProximityLocationProperty {
	return j.props.GeoProximityLocation
}

func (j *CfnRecordSet) SetGeoProximityLocation(val *CfnRecordSet_GeoProximityLocationProperty) {
	if err := j.validateSetGeoProximityLocationParameters(val); err != nil {
		panic(err)
	}
	j.props.GeoProximityLocation = val
}

func (j *CfnRecordSet) HealthCheckId() *string            { return j.props.HealthCheckId }
func (j *CfnRecordSet) SetHealthCheckId(val *string)      { j.props.HealthCheckId = val }
func (j *CfnRecordSet) HostedZoneId() *string             { return j.props.HostedZoneId }
func (j *CfnRecordSet) SetHostedZoneId(val *string)       { j.props.HostedZoneId = val }
func (j *CfnRecordSet) HostedZoneName() *string           { return j.props.HostedZoneName }
func (j *CfnRecordSet) SetHostedZoneName(val *string)     { j.props.HostedZoneName = val }
func (j *CfnRecordSet) MultiValueAnswer() *bool           { return j.props.MultiValueAnswer }
func (j *CfnRecordSet) SetMultiValueAnswer(val *bool)     { j.props.MultiValueAnswer = val }
func (j *CfnRecordSet) Region() *string                   { return j.props.Region }
func (j *CfnRecordSet) SetRegion(val *string)             { j.props.Region = val }
func (j *CfnRecordSet) ResourceRecords() *[]*string       { return j.props.ResourceRecords }
func (j *CfnRecordSet) SetResourceRecords(val *[]*string) { j.props.ResourceRecords = val }
func (j *CfnRecordSet) SetIdentifier() *string            { return j.props.SetIdentifier }
func (j *CfnRecordSet) SetSetIdentifier(val *string)      { j.props.SetIdentifier = val }
func (j *CfnRecordSet) Ttl() *string                      { return j.props.Ttl }
func (j *CfnRecordSet) SetTtl(val *string)                { j.props.Ttl = val }
func (j *CfnRecordSet) Weight() *float64                  { return j.props.Weight }
func (j *CfnRecordSet) SetWeight(val *float64)            { j.props.Weight = val }

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnRecordSet) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnRecordSet_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

func (j *CfnRecordSet) RenderProperties() map[string]any {
	m := renderRecordSet(&j.props)
	m.Set("Comment", j.props.Comment)
	return m
}

func (j *CfnRecordSet) String() string {
	return cfn.Repr("CfnRecordSet", j.props)
}

// renderRecordSet renders the fields shared with record sets inside a RecordSetGroup.
func renderRecordSet(p *CfnRecordSetProps) cfn.PropertyMap {
	m := cfn.PropertyMap{}
	m.Set("Name", p.Name)
	m.Set("Type", p.Type)
	if a := p.AliasTarget; a != nil {
		m.Set("AliasTarget", cfn.PropertyMap{}.
			Set("DNSName", a.DnsName).
			Set("HostedZoneId", a.HostedZoneId).
			Set("EvaluateTargetHealth", a.EvaluateTargetHealth))
	}
	if c := p.CidrRoutingConfig; c != nil {
		m.Set("CidrRoutingConfig", cfn.PropertyMap{}.Set("CollectionId", c.CollectionId).Set("LocationName", c.LocationName))
	}
	m.Set("Failover", p.Failover)
	if g := p.GeoLocation; g != nil {
		m.Set("GeoLocation", cfn.PropertyMap{}.
			Set("ContinentCode", g.ContinentCode).
			Set("CountryCode", g.CountryCode).
			Set("SubdivisionCode", g.SubdivisionCode).OrNil())
	}
	if g := p.GeoProximityLocation; g != nil {
		gm := cfn.PropertyMap{}.
			Set("AWSRegion", g.AwsRegion).
			Set("Bias", g.Bias).
			Set("LocalZoneGroup", g.LocalZoneGroup)
		if c := g.Coordinates; c != nil {
			gm.Set("Coordinates", cfn.PropertyMap{}.Set("Latitude", c.Latitude).Set("Longitude", c.Longitude))
		}
		m.Set("GeoProximityLocation", gm.OrNil())
	}
	m.Set("HealthCheckId", p.HealthCheckId)
	m.Set("HostedZoneId", p.HostedZoneId)
	m.Set("HostedZoneName", p.HostedZoneName)
	m.Set("MultiValueAnswer", p.MultiValueAnswer)
	m.Set("Region", p.Region)
	m.Set("ResourceRecords", p.ResourceRecords)
	m.Set("SetIdentifier", p.SetIdentifier)
	m.Set("TTL", p.Ttl)
	m.Set("Weight", p.Weight)
	return m
}
