package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnRecordSetGroup_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::RecordSetGroup"

// A complex type that contains a list of the resource record sets that you want to create
// in one change batch.
type CfnRecordSetGroup struct {
	*cfn.CfnResource
	props CfnRecordSetGroupProps
}

var _ cfn.IInspectable = (*CfnRecordSetGroup)(nil)

// Create a new `AWS::Route53::RecordSetGroup`.
func NewCfnRecordSetGroup(scope cfn.IConstruct, id *string, props *CfnRecordSetGroupProps) *CfnRecordSetGroup {
	if err := validateNewCfnRecordSetGroupParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnRecordSetGroup{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnRecordSetGroup_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

func (j *CfnRecordSetGroup) AttrId() *string {
	return jsii.String(j.GetAtt("Id"))
}

func (j *CfnRecordSetGroup) CfnResourceTypeName() *string {
	return jsii.String(CfnRecordSetGroup_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnRecordSetGroup) Comment() *string            { return j.props.Comment }
func (j *CfnRecordSetGroup) SetComment(val *string)      { j.props.Comment = val }
func (j *CfnRecordSetGroup) HostedZoneId() *string       { return j.props.HostedZoneId }
func (j *CfnRecordSetGroup) SetHostedZoneId(val *string) { j.props.HostedZoneId = val }

func (j *CfnRecordSetGroup) HostedZoneName() *string       { return j.props.HostedZoneName }
func (j *CfnRecordSetGroup) SetHostedZoneName(val *string) { j.props.HostedZoneName = val }

func (j *CfnRecordSetGroup) RecordSets() *[]*CfnRecordSetGroup_RecordSetProperty {
	return j.props.RecordSets
}

func (j *CfnRecordSetGroup) SetRecordSets(val *[]*CfnRecordSetGroup_RecordSetProperty) {
	if err := j.validateSetRecordSetsParameters(val); err != nil {
		panic(err)
	}
	j.props.RecordSets = val
}

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnRecordSetGroup) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnRecordSetGroup_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

func (j *CfnRecordSetGroup) RenderProperties() map[string]any {
	m := cfn.PropertyMap{}
	m.Set("Comment", j.props.Comment)
	m.Set("HostedZoneId", j.props.HostedZoneId)
	m.Set("HostedZoneName", j.props.HostedZoneName)
	m.Set("RecordSets", cfn.RenderList(j.props.RecordSets, func(r *CfnRecordSetGroup_RecordSetProperty) map[string]any {
		return renderRecordSet(r.recordSetProps())
	}))
	return m
}

func (j *CfnRecordSetGroup) String() string {
	return cfn.Repr("CfnRecordSetGroup", j.props)
}
