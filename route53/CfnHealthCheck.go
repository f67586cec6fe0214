package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CloudFormation resource type name for this resource class.
const CfnHealthCheck_CFN_RESOURCE_TYPE_NAME = "AWS::Route53::HealthCheck"

// The `AWS::Route53::HealthCheck` resource is a Route 53 resource type that contains settings
// for a Route 53 health check.
type CfnHealthCheck struct {
	*cfn.CfnResource
	props CfnHealthCheckProps
}

var _ cfn.IInspectable = (*CfnHealthCheck)(nil)

// Create a new `AWS::Route53::HealthCheck`.
func NewCfnHealthCheck(scope cfn.IConstruct, id *string, props *CfnHealthCheckProps) *CfnHealthCheck {
	if err := validateNewCfnHealthCheckParameters(scope, id, props); err != nil {
		panic(err)
	}
	j := &CfnHealthCheck{}
	if props != nil {
		j.props = *props
	}
	j.CfnResource = cfn.NewTypedResource(scope, *id, CfnHealthCheck_CFN_RESOURCE_TYPE_NAME, j.RenderProperties)
	j.SetHost(j)
	return j
}

// The identifier that Amazon Route 53 assigned to the health check.
func (j *CfnHealthCheck) AttrHealthCheckId() *string {
	return jsii.String(j.GetAtt("HealthCheckId"))
}

func (j *CfnHealthCheck) CfnResourceTypeName() *string {
	return jsii.String(CfnHealthCheck_CFN_RESOURCE_TYPE_NAME)
}

func (j *CfnHealthCheck) HealthCheckConfig() *CfnHealthCheck_HealthCheckConfigProperty {
	return j.props.HealthCheckConfig
}

func (j *CfnHealthCheck) SetHealthCheckConfig(val *CfnHealthCheck_HealthCheckConfigProperty) {
	if err := j.validateSetHealthCheckConfigParameters(val); err != nil {
		panic(err)
	}
	j.props.HealthCheckConfig = val
}

func (j *CfnHealthCheck) HealthCheckTags() *[]*CfnHealthCheck_HealthCheckTagProperty {
	return j.props.HealthCheckTags
}

func (j *CfnHealthCheck) SetHealthCheckTags(val *[]*CfnHealthCheck_HealthCheckTagProperty) {
	if err := j.validateSetHealthCheckTagsParameters(val); err != nil {
		panic(err)
	}
	j.props.HealthCheckTags = val
}

// Examines the CloudFormation resource and discloses attributes.
func (j *CfnHealthCheck) Inspect(inspector *cfn.TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", CfnHealthCheck_CFN_RESOURCE_TYPE_NAME)
	inspector.AddAttribute("aws:cdk:cloudformation:props", j.RenderProperties())
}

func (j *CfnHealthCheck) RenderProperties() map[string]any {
	m := cfn.PropertyMap{}
	if c := j.props.HealthCheckConfig; c != nil {
		cm := cfn.PropertyMap{}
		if a := c.AlarmIdentifier; a != nil {
			cm.Set("AlarmIdentifier", cfn.PropertyMap{}.Set("Name", a.Name).Set("Region", a.Region))
		}
		cm.Set("ChildHealthChecks", c.ChildHealthChecks).
			Set("EnableSNI", c.EnableSni).
			Set("FailureThreshold", c.FailureThreshold).
			Set("FullyQualifiedDomainName", c.FullyQualifiedDomainName).
			Set("HealthThreshold", c.HealthThreshold).
			Set("InsufficientDataHealthStatus", c.InsufficientDataHealthStatus).
			Set("Inverted", c.Inverted).
			Set("IPAddress", c.IpAddress).
			Set("MeasureLatency", c.MeasureLatency).
			Set("Port", c.Port).
			Set("Regions", c.Regions).
			Set("RequestInterval", c.RequestInterval).
			Set("ResourcePath", c.ResourcePath).
			Set("RoutingControlArn", c.RoutingControlArn).
			Set("SearchString", c.SearchString).
			Set("Type", c.Type)
		m.Set("HealthCheckConfig", cm)
	}
	m.Set("HealthCheckTags", renderTags(j.Node(), healthCheckTags(j.props.HealthCheckTags)))
	return m
}

func (j *CfnHealthCheck) String() string {
	return cfn.Repr("CfnHealthCheck", j.props)
}

func healthCheckTags(tags *[]*CfnHealthCheck_HealthCheckTagProperty) []cfn.Tag {
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
