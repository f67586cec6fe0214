package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnHostedZone_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::HostedZone"

// Creates a new public or private hosted zone.
//
// A hosted zone with `Vpcs` is private. The L1 resource does not check that.
type CfnHostedZone struct {
	*cfn.CfnResource
	props CfnHostedZoneProps
}

var _ cfn.IInspectable = (*CfnHostedZone)(nil)

// Create a new `AWS::Route53::HostedZone`.
func NewCfnHostedZone(scope cfn.IConstruct, id *string, props *CfnHostedZoneProps) *CfnHostedZone {
	if err := validateNewCfnHostedZoneParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnHostedZone{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnHostedZone_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

// The ID that Amazon Route 53 assigned to the hosted zone.
func (j *CfnHostedZone) AttrId() *string {
	return jsii.String(j.GetAtt("Id"))
}

// The name servers assigned to a public hosted zone.
func (j *CfnHostedZone) AttrNameServers() *[]*string {
	list := j.GetAttList("NameServers")
	return &list
}

func (j *CfnHostedZone) CfnResourceTypeName() *string {
	return jsii.String(CfnHostedZone_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnHostedZone) Name() *string {
	return j.props.Name
}

func (j *CfnHostedZone) SetName(val *string) {
	if err := j.validateSetNameParameters(val); err != nil {
		panic(err)
	}
	j.props.Name = val
}

func (j *CfnHostedZone) HostedZoneConfig() *CfnHostedZone_HostedZoneConfigProperty {
	return j.props.HostedZoneConfig
}

func (j *CfnHostedZone) SetHostedZoneConfig(val *CfnHostedZone_HostedZoneConfigProperty) {
	j.props.HostedZoneConfig = val
}

func (j *CfnHostedZone) HostedZoneFeatures() *CfnHostedZone_HostedZoneFeaturesProperty {
	return j.props.HostedZoneFeatures
}

func (j *CfnHostedZone) SetHostedZoneFeatures(val *CfnHostedZone_HostedZoneFeaturesProperty) {
	j.props.HostedZoneFeatures = val
}

func (j *CfnHostedZone) HostedZoneTags() *[]*CfnHostedZone_HostedZoneTagProperty {
	return j.props.HostedZoneTags
}

func (j *CfnHostedZone) SetHostedZoneTags(val *[]*CfnHostedZone_HostedZoneTagProperty) {
	if err := j.validateSetHostedZoneTagsParameters(val); err != nil {
		panic(err)
	}
	j.props.HostedZoneTags = val
}

func (j *CfnHostedZone) QueryLoggingConfig() *CfnHostedZone_QueryLoggingConfigProperty {
	return j.props.QueryLoggingConfig
}

func (j *CfnHostedZone) SetQueryLoggingConfig(val *CfnHostedZone_QueryLoggingConfigProperty) {
	if err := j.validateSetQueryLoggingConfigParameters(val); err != nil {
		panic(err)
	}
	j.props.QueryLoggingConfig = val
}

func (j *CfnHostedZone) Vpcs() *[]*CfnHostedZone_VPCProperty {
	return j.props.Vpcs
}

func (j *CfnHostedZone) SetVpcs(val *[]*CfnHostedZone_VPCProperty) {
	if err := j.validateSetVpcsParameters(val); err != nil {
		panic(err)
	}
	j.props.Vpcs = val
}

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnHostedZone) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnHostedZone_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

// RenderProperties returns the CloudFormation Properties block. Tags applied with
// cfn.TagsOf on an enclosing scope are merged into HostedZoneTags.
func (j *CfnHostedZone) RenderProperties() map[string]any {
	p := &j.props
	m := cfn.PropertyMap{}
	m.Set("Name", p.Name)
	if c := p.HostedZoneConfig; c != nil {
		m.Set("HostedZoneConfig", cfn.PropertyMap{}.Set("Comment", c.Comment).OrNil())
	}
	if f := p.HostedZoneFeatures; f != nil {
		m.Set("HostedZoneFeatures", cfn.PropertyMap{}.Set("EnableAcceleratedRecovery", f.EnableAcceleratedRecovery).OrNil())
	}
	m.Set("HostedZoneTags", renderTags(j.Node(), hostedZoneTags(p.HostedZoneTags)))
	if q := p.QueryLoggingConfig; q != nil {
		m.Set("QueryLoggingConfig", map[string]any{"CloudWatchLogsLogGroupArn": q.CloudWatchLogsLogGroupArn})
	}
	m.Set("VPCs", cfn.RenderList(p.Vpcs, func(v *CfnHostedZone_VPCProperty) map[string]any {
		return cfn.PropertyMap{}.Set("VPCId", v.VpcId).Set("VPCRegion", v.VpcRegion)
	}))
	return m
}

func (j *CfnHostedZone) String() string {
	return cfn.Repr("CfnHostedZone", j.props)
}

func hostedZoneTags(tags *[]*CfnHostedZone_HostedZoneTagProperty) []cfn.Tag {
	if tags == nil {
		return nil
	}
	out := make([]cfn.Tag, 0, len(*tags))
	for _, t := range *tags {
		if t != nil && t.Key != nil && t.Value != nil {
			out = append(out, cfn.Tag{Key: *t.Key, Value: *t.Value})
		}
	}
	return out
}
