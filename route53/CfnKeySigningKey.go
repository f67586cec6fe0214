package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::KeySigningKey"

// The `AWS::Route53::KeySigningKey` resource creates a new key-signing key (KSK) in a hosted zone.
type CfnKeySigningKey struct {
	*cfn.CfnResource
	props CfnKeySigningKeyProps
}

var _ cfn.IInspectable = (*CfnKeySigningKey)(nil)

// Create a new `AWS::Route53::KeySigningKey`.
func NewCfnKeySigningKey(scope cfn.IConstruct, id *string, props *CfnKeySigningKeyProps) *CfnKeySigningKey {
	if err := validateNewCfnKeySigningKeyParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnKeySigningKey{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

func (j *CfnKeySigningKey) CfnResourceTypeName() *string {
	return jsii.String(CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnKeySigningKey) HostedZoneId() *string { return j.props.HostedZoneId }

func (j *CfnKeySigningKey) SetHostedZoneId(val *string) {
	if err := validateRequiredSetter(val); err != nil {
		panic(err)
	}
	j.props.HostedZoneId = val
}

func (j *CfnKeySigningKey) KeyManagementServiceArn() *string { return j.props.KeyManagementServiceArn }

func (j *CfnKeySigningKey) SetKeyManagementServiceArn(val *string) {
	if err := validateRequiredSetter(val); err != nil {
		panic(err)
	}
	j.props.KeyManagementServiceArn = val
}

func (j *CfnKeySigningKey) Name() *string { return j.props.Name }

func (j *CfnKeySigningKey) SetName(val *string) {
	if err := validateRequiredSetter(val); err != nil {
		panic(err)
	}
	j.props.Name = val
}

func (j *CfnKeySigningKey) Status() *string { return j.props.Status }

func (j *CfnKeySigningKey) SetStatus(val *string) {
	if err := validateRequiredSetter(val); err != nil {
		panic(err)
	}
	j.props.Status = val
}

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnKeySigningKey) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

func (j *CfnKeySigningKey) RenderProperties() map[string]any {
	return cfn.PropertyMap{}.
		Set("HostedZoneId", j.props.HostedZoneId).
		Set("KeyManagementServiceArn", j.props.KeyManagementServiceArn).
		Set("Name", j.props.Name).
		Set("Status", j.props.Status)
}

func (j *CfnKeySigningKey) String() string {
	return cfn.Repr("CfnKeySigningKey", j.props)
}
