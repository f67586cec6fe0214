package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnCidrCollection_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::CidrCollection"

// Creates a CIDR collection in the current AWS account.
type CfnCidrCollection struct {
	*cfn.CfnResource
	props CfnCidrCollectionProps
}

var _ cfn.IInspectable = (*CfnCidrCollection)(nil)

// Create a new `AWS::Route53::CidrCollection`.
func NewCfnCidrCollection(scope cfn.IConstruct, id *string, props *CfnCidrCollectionProps) *CfnCidrCollection {
	if err := validateNewCfnCidrCollectionParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnCidrCollection{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnCidrCollection_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

// "Arn" is the Amazon Resource Name (ARN) of the CIDR collection.
func (j *CfnCidrCollection) AttrArn() *string {
	return jsii.String(j.GetAtt("Arn"))
}

// The UUID of the CIDR collection.
func (j *CfnCidrCollection) AttrId() *string {
	return jsii.String(j.GetAtt("Id"))
}

func (j *CfnCidrCollection) CfnResourceTypeName() *string {
	return jsii.String(CfnCidrCollection_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnCidrCollection) Name() *string { return j.props.Name }

func (j *CfnCidrCollection) SetName(val *string) {
	if err := validateRequiredSetter(val); err != nil {
		panic(err)
	}
	j.props.Name = val
}

func (j *CfnCidrCollection) Locations() *[]*CfnCidrCollection_LocationProperty {
	return j.props.Locations
}

func (j *CfnCidrCollection) SetLocations(val *[]*CfnCidrCollection_LocationProperty) {
	if err := j.validateSetLocationsParameters(val); err != nil {
		panic(err)
	}
	j.props.Locations = val
}

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnCidrCollection) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnCidrCollection_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

func (j *CfnCidrCollection) RenderProperties() map[string]any {
	m := cfn.PropertyMap{}
	m.Set("Name", j.props.Name)
	m.Set("Locations", cfn.RenderList(j.props.Locations, func(l *CfnCidrCollection_LocationProperty) map[string]any {
		return cfn.PropertyMap{}.Set("CidrList", l.CidrList).Set("LocationName", l.LocationName)
	}))
	return m
}

func (j *CfnCidrCollection) String() string {
	return cfn.Repr("CfnCidrCollection", j.props)
}
