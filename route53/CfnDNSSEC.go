package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnDNSSEC_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::DNSSEC"

// The `AWS::Route53::DNSSEC` resource is used to enable DNSSEC signing in a hosted zone.
type CfnDNSSEC struct {
	*cfn.CfnResource
	props CfnDNSSECProps
}

var _ cfn.IInspectable = (*CfnDNSSEC)(nil)

// Create a new `AWS::Route53::DNSSEC`.
func NewCfnDNSSEC(scope cfn.IConstruct, id *string, props *CfnDNSSECProps) *CfnDNSSEC {
	if err := validateNewCfnDNSSECParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnDNSSEC{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnDNSSEC_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

func (j *CfnDNSSEC) CfnResourceTypeName() *string {
	return jsii.String(CfnDNSSEC_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnDNSSEC) HostedZoneId() *string { return j.props.HostedZoneId }

func (j *CfnDNSSEC) SetHostedZoneId(val *string) {
	if err := validateRequiredSetter(val); err != nil {
		panic(err)
	}
	j.props.HostedZoneId = val
}

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnDNSSEC) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnDNSSEC_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

func (j *CfnDNSSEC) RenderProperties() map[string]any {
	return cfn.PropertyMap{}.Set("HostedZoneId", j.props.HostedZoneId)
}

func (j *CfnDNSSEC) String() string {
	return cfn.Repr("CfnDNSSEC", j.props)
}
