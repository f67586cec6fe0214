package route53

import (
	"strings"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The type of health check to be associated with the record.
type HealthCheckType string

const (
	// HTTP health check. Route 53 tries to establish a TCP connection and then submits an HTTP request.
	HealthCheckType_HTTP HealthCheckType = "HTTP"
	// HTTPS health check.
	HealthCheckType_HTTPS HealthCheckType = "HTTPS"
	// HTTP health check that also searches the response body for SearchString.
	HealthCheckType_HTTP_STR_MATCH HealthCheckType = "HTTP_STR_MATCH"
	// HTTPS health check that also searches the response body for SearchString.
	HealthCheckType_HTTPS_STR_MATCH HealthCheckType = "HTTPS_STR_MATCH"
	// TCP health check.
	HealthCheckType_TCP HealthCheckType = "TCP"
	// CloudWatch metric health check, driven by the state of a CloudWatch alarm.
	HealthCheckType_CLOUDWATCH_METRIC HealthCheckType = "CLOUDWATCH_METRIC"
	// Calculated health check, combining the status of other health checks.
	HealthCheckType_CALCULATED HealthCheckType = "CALCULATED"
	// Recovery control health check, driven by an Application Recovery Controller routing control.
	HealthCheckType_RECOVERY_CONTROL HealthCheckType = "RECOVERY_CONTROL"
)

func (t HealthCheckType) String() string {
	return "HealthCheckType." + string(t)
}

// The status to assign when Route 53 has insufficient data for a CLOUDWATCH_METRIC check.
type InsufficientDataHealthStatusEnum string

const (
	InsufficientDataHealthStatusEnum_HEALTHY           InsufficientDataHealthStatusEnum = "Healthy"
	InsufficientDataHealthStatusEnum_UNHEALTHY         InsufficientDataHealthStatusEnum = "Unhealthy"
	InsufficientDataHealthStatusEnum_LAST_KNOWN_STATUS InsufficientDataHealthStatusEnum = "LastKnownStatus"
)

// A CloudWatch alarm that a CLOUDWATCH_METRIC health check follows.
type AlarmIdentifier struct {
	// The name of the CloudWatch alarm.
	Name *string `field:"required" json:"name" yaml:"name"`
	// The region of the CloudWatch alarm.
	Region *string `field:"required" json:"region" yaml:"region"`
}

// Properties for a new health check.
type HealthCheckProps struct {
	// The type of health check to be associated with the record.
	Type HealthCheckType `field:"required" json:"type" yaml:"type"`
	// CloudWatch alarm that you want Amazon Route 53 health checkers to use to determine whether the specified health check is healthy.
	AlarmIdentifier *AlarmIdentifier `field:"optional" json:"alarmIdentifier" yaml:"alarmIdentifier"`
	// A list of health checks to monitor for this 'CALCULATED' health check.
	ChildHealthChecks *[]IHealthCheck `field:"optional" json:"childHealthChecks" yaml:"childHealthChecks"`
	// Specify whether you want Amazon Route 53 to send the value of FullyQualifiedDomainName to the endpoint in the client_hello message during TLS negotiation.
	//
	// Default: true for HTTPS checks.
	EnableSni *bool `field:"optional" json:"enableSni" yaml:"enableSni"`
	// The number of consecutive health checks that an endpoint must pass or fail for Amazon Route 53 to change the current status of the endpoint. Default: 3.
	FailureThreshold *float64 `field:"optional" json:"failureThreshold" yaml:"failureThreshold"`
	// Fully qualified domain name of the endpoint to be checked.
	Fqdn *string `field:"optional" json:"fqdn" yaml:"fqdn"`
	// The number of child health checks that are associated with a CALCULATED health that Amazon Route 53 must consider healthy.
	HealthThreshold *float64 `field:"optional" json:"healthThreshold" yaml:"healthThreshold"`
	// The status of the health check when CloudWatch has insufficient data about the state of associated alarm.
	InsufficientDataHealthStatus InsufficientDataHealthStatusEnum `field:"optional" json:"insufficientDataHealthStatus" yaml:"insufficientDataHealthStatus"`
	// Specify whether you want Amazon Route 53 to invert the status of a health check.
	Inverted *bool `field:"optional" json:"inverted" yaml:"inverted"`
	// The IPv4 or IPv6 IP address for the endpoint that you want Amazon Route 53 to perform health checks on.
	IpAddress *string `field:"optional" json:"ipAddress" yaml:"ipAddress"`
	// Specify whether you want Amazon Route 53 to measure the latency between health checkers in multiple AWS regions and your endpoint.
	MeasureLatency *bool `field:"optional" json:"measureLatency" yaml:"measureLatency"`
	// The port on the endpoint that you want Amazon Route 53 to perform health checks on.
	//
	// Default: 80 for HTTP, 443 for HTTPS.
	Port *float64 `field:"optional" json:"port" yaml:"port"`
	// An array of region identifiers that you want Amazon Route 53 health checkers to check the health of the endpoint from. At least three.
	Regions *[]*string `field:"optional" json:"regions" yaml:"regions"`
	// The duration between the time that Amazon Route 53 gets a response from your endpoint and the time that it sends the next health check request. Default: 30 seconds.
	RequestInterval *cfn.Duration `field:"optional" json:"requestInterval" yaml:"requestInterval"`
	// The path that you want Amazon Route 53 to request when performing health checks.
	//
	// Default: "/" for HTTP and HTTPS checks.
	ResourcePath *string `field:"optional" json:"resourcePath" yaml:"resourcePath"`
	// The Amazon Resource Name (ARN) for the Route 53 Application Recovery Controller routing control.
	RoutingControlArn *string `field:"optional" json:"routingControlArn" yaml:"routingControlArn"`
	// The string that you want Amazon Route 53 to search for in the response body from the specified resource.
	SearchString *string `field:"optional" json:"searchString" yaml:"searchString"`
}

func (p HealthCheckProps) String() string {
	return cfn.Repr("HealthCheckProps", p)
}

// Imported or created health check.
type IHealthCheck interface {
	cfn.IConstruct
	// The ID of the health check.
	HealthCheckId() *string
}

// Amazon Route 53 health checks monitor the health and performance of your web applications, web servers, and other resources.
type HealthCheck struct {
	*cfn.Construct

	resource *CfnHealthCheck
}

var _ IHealthCheck = (*HealthCheck)(nil)

func NewHealthCheck(scope cfn.IConstruct, id *string, props *HealthCheckProps) *HealthCheck {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	cfn.Must(validateHealthCheckProps(props))

	h := &HealthCheck{Construct: cfn.NewConstruct(scope, *id)}
	h.SetHost(h)

	config := &CfnHealthCheck_HealthCheckConfigProperty{
		Type:                     jsii.String(string(props.Type)),
		EnableSni:                props.EnableSni,
		FailureThreshold:         props.FailureThreshold,
		FullyQualifiedDomainName: props.Fqdn,
		HealthThreshold:          props.HealthThreshold,
		Inverted:                 props.Inverted,
		IpAddress:                props.IpAddress,
		MeasureLatency:           props.MeasureLatency,
		Port:                     props.Port,
		Regions:                  props.Regions,
		ResourcePath:             props.ResourcePath,
		RoutingControlArn:        props.RoutingControlArn,
		SearchString:             props.SearchString,
	}
	if props.AlarmIdentifier != nil {
		config.AlarmIdentifier = &CfnHealthCheck_AlarmIdentifierProperty{
			Name:   props.AlarmIdentifier.Name,
			Region: props.AlarmIdentifier.Region,
		}
	}
	if props.ChildHealthChecks != nil {
		children := make([]*string, 0, len(*props.ChildHealthChecks))
		for _, c := range *props.ChildHealthChecks {
			children = append(children, c.HealthCheckId())
		}
		config.ChildHealthChecks = &children
	}
	if props.InsufficientDataHealthStatus != "" {
		config.InsufficientDataHealthStatus = jsii.String(string(props.InsufficientDataHealthStatus))
	}
	if props.RequestInterval != nil {
		secs, err := props.RequestInterval.ToSeconds()
		cfn.Must(err)
		config.RequestInterval = jsii.Number(secs)
	}
	applyHealthCheckDefaults(props.Type, config)

	h.resource = NewCfnHealthCheck(h, jsii.String("Resource"), &CfnHealthCheckProps{HealthCheckConfig: config})
	return h
}

// Import an existing health check into this CDK app.
func HealthCheck_FromHealthCheckId(scope cfn.IConstruct, id *string, healthCheckId *string) IHealthCheck {
	if err := validateHealthCheck_FromHealthCheckIdParameters(scope, id, healthCheckId); err != nil {
		panic(err)
	}
	h := &importedHealthCheck{Construct: cfn.NewConstruct(scope, *id), id: *healthCheckId}
	h.SetHost(h)
	return h
}

func (h *HealthCheck) HealthCheckId() *string {
	return h.resource.AttrHealthCheckId()
}

// The underlying AWS::Route53::HealthCheck resource.
func (h *HealthCheck) CfnHealthCheck() *CfnHealthCheck {
	return h.resource
}

type importedHealthCheck struct {
	*cfn.Construct
	id string
}

func (h *importedHealthCheck) HealthCheckId() *string {
	return jsii.String(h.id)
}

func isEndpointCheck(t HealthCheckType) bool {
	switch t {
	case HealthCheckType_HTTP, HealthCheckType_HTTPS, HealthCheckType_HTTP_STR_MATCH, HealthCheckType_HTTPS_STR_MATCH, HealthCheckType_TCP:
		return true
	}
	return false
}

func validateHealthCheckProps(props *HealthCheckProps) error {
	t := props.Type
	strMatch := t == HealthCheckType_HTTP_STR_MATCH || t == HealthCheckType_HTTPS_STR_MATCH

	if !isEndpointCheck(t) {
		if props.IpAddress != nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "IpAddress is not supported for health check type: %s", string(t))
		}
		if props.Port != nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "Port is not supported for health check type: %s", string(t))
		}
		if props.Fqdn != nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "Fqdn is not supported for health check type: %s", string(t))
		}
	} else if props.Fqdn == nil && props.IpAddress == nil {
		return cfn.Errorf(cfn.CodeValidationFailed, "one of fqdn or ipAddress is required for health check type: %s", string(t))
	}

	if props.SearchString != nil && !strMatch {
		return cfn.Errorf(cfn.CodeValidationFailed, "SearchString is only supported for health check types: HTTP_STR_MATCH, HTTPS_STR_MATCH")
	}
	if strMatch && props.SearchString == nil {
		return cfn.Errorf(cfn.CodeValidationFailed, "SearchString is required for health check type: %s", string(t))
	}
	if props.SearchString != nil && len(*props.SearchString) > 255 {
		return cfn.Errorf(cfn.CodeValidationFailed, "SearchString must be 255 characters or less")
	}

	if props.EnableSni != nil && *props.EnableSni && t != HealthCheckType_HTTPS && t != HealthCheckType_HTTPS_STR_MATCH {
		return cfn.Errorf(cfn.CodeValidationFailed, "EnableSni is only supported for health check types: HTTPS, HTTPS_STR_MATCH")
	}

	if t == HealthCheckType_CALCULATED {
		if props.ChildHealthChecks == nil || len(*props.ChildHealthChecks) == 0 {
			return cfn.Errorf(cfn.CodeValidationFailed, "ChildHealthChecks is required for health check type: CALCULATED")
		}
		for i, c := range *props.ChildHealthChecks {
			if h, ok := c.(*HealthCheck); c == nil || (ok && h == nil) {
				return cfn.Errorf(cfn.CodeValidationFailed, "ChildHealthChecks[%d] is nil", i)
			}
		}
	} else {
		if props.ChildHealthChecks != nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "ChildHealthChecks is only supported for health check type: CALCULATED")
		}
		if props.HealthThreshold != nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "HealthThreshold is only supported for health check type: CALCULATED")
		}
	}

	if t == HealthCheckType_CLOUDWATCH_METRIC {
		if props.AlarmIdentifier == nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "AlarmIdentifier is required for health check type: CLOUDWATCH_METRIC")
		}
	} else {
		if props.AlarmIdentifier != nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "AlarmIdentifier is only supported for health check type: CLOUDWATCH_METRIC")
		}
		if props.InsufficientDataHealthStatus != "" {
			return cfn.Errorf(cfn.CodeValidationFailed, "InsufficientDataHealthStatus is only supported for health check type: CLOUDWATCH_METRIC")
		}
	}

	if t == HealthCheckType_RECOVERY_CONTROL {
		if props.RoutingControlArn == nil {
			return cfn.Errorf(cfn.CodeValidationFailed, "RoutingControlArn is required for health check type: RECOVERY_CONTROL")
		}
	} else if props.RoutingControlArn != nil {
		return cfn.Errorf(cfn.CodeValidationFailed, "RoutingControlArn is only supported for health check type: RECOVERY_CONTROL")
	}

	if props.FailureThreshold != nil && (*props.FailureThreshold < 1 || *props.FailureThreshold > 10) {
		return cfn.Errorf(cfn.CodeValidationFailed, "FailureThreshold must be between 1 and 10, got: %v", *props.FailureThreshold)
	}
	if props.Regions != nil && len(*props.Regions) < 3 {
		return cfn.Errorf(cfn.CodeValidationFailed, "At least three health check regions must be specified, got: %s", joinStrings(props.Regions, ", "))
	}
	if props.RequestInterval != nil {
		secs, err := props.RequestInterval.ToSeconds()
		if err != nil {
			return err
		}
		if secs != 10 && secs != 30 {
			return cfn.Errorf(cfn.CodeValidationFailed, "RequestInterval must be 10 or 30 seconds, got: %v", secs)
		}
	}
	if props.ResourcePath != nil && !strings.HasPrefix(*props.ResourcePath, "/") {
		return cfn.Errorf(cfn.CodeValidationFailed, "ResourcePath must start with a slash (/): %s", *props.ResourcePath)
	}
	return nil
}

// applyHealthCheckDefaults fills in the settings Route 53 would otherwise need spelled out
// for endpoint checks.
func applyHealthCheckDefaults(t HealthCheckType, c *CfnHealthCheck_HealthCheckConfigProperty) {
	if !isEndpointCheck(t) {
		return
	}
	if c.FailureThreshold == nil {
		c.FailureThreshold = jsii.Number(3)
	}
	if c.RequestInterval == nil {
		c.RequestInterval = jsii.Number(30)
	}
	switch t {
	case HealthCheckType_HTTP, HealthCheckType_HTTP_STR_MATCH:
		if c.Port == nil {
			c.Port = jsii.Number(80)
		}
		if c.ResourcePath == nil {
			c.ResourcePath = jsii.String("/")
		}
	case HealthCheckType_HTTPS, HealthCheckType_HTTPS_STR_MATCH:
		if c.Port == nil {
			c.Port = jsii.Number(443)
		}
		if c.ResourcePath == nil {
			c.ResourcePath = jsii.String("/")
		}
		if c.EnableSni == nil {
			c.EnableSni = jsii.Bool(true)
		}
	}
}
