package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnHealthCheck`.
type CfnHealthCheckProps struct {
	// A complex type that contains detailed information about one health check.
	HealthCheckConfig *CfnHealthCheck_HealthCheckConfigProperty `field:"required" json:"healthCheckConfig" yaml:"healthCheckConfig"`
	// The `HealthCheckTags` property describes key-value pairs that are associated with an `AWS::Route53::HealthCheck` resource.
	HealthCheckTags *[]*CfnHealthCheck_HealthCheckTagProperty `field:"optional" json:"healthCheckTags" yaml:"healthCheckTags"`
}

// A complex type that identifies the CloudWatch alarm that you want Amazon Route 53 health checkers to use.
type CfnHealthCheck_AlarmIdentifierProperty struct {
	Name   *string `field:"required" json:"name" yaml:"name"`
	Region *string `field:"required" json:"region" yaml:"region"`
}

// A complex type that contains information about the health check.
//
// Type selects which of the other fields Route 53 reads; nothing here enforces that.
type CfnHealthCheck_HealthCheckConfigProperty struct {
	// The type of health check that you want to create.
	Type                         *string                                 `field:"required" json:"type" yaml:"type"`
	AlarmIdentifier              *CfnHealthCheck_AlarmIdentifierProperty `field:"optional" json:"alarmIdentifier" yaml:"alarmIdentifier"`
	ChildHealthChecks            *[]*string                              `field:"optional" json:"childHealthChecks" yaml:"childHealthChecks"`
	EnableSni                    *bool                                   `field:"optional" json:"enableSni" yaml:"enableSni"`
	FailureThreshold             *float64                                `field:"optional" json:"failureThreshold" yaml:"failureThreshold"`
	FullyQualifiedDomainName     *string                                 `field:"optional" json:"fullyQualifiedDomainName" yaml:"fullyQualifiedDomainName"`
	HealthThreshold              *float64                                `field:"optional" json:"healthThreshold" yaml:"healthThreshold"`
	InsufficientDataHealthStatus *string                                 `field:"optional" json:"insufficientDataHealthStatus" yaml:"insufficientDataHealthStatus"`
	Inverted                     *bool                                   `field:"optional" json:"inverted" yaml:"inverted"`
	IpAddress                    *string                                 `field:"optional" json:"ipAddress" yaml:"ipAddress"`
	MeasureLatency               *bool                                   `field:"optional" json:"measureLatency" yaml:"measureLatency"`
	Port                         *float64                                `field:"optional" json:"port" yaml:"port"`
	Regions                      *[]*string                              `field:"optional" json:"regions" yaml:"regions"`
	RequestInterval              *float64                                `field:"optional" json:"requestInterval" yaml:"requestInterval"`
	ResourcePath                 *string                                 `field:"optional" json:"resourcePath" yaml:"resourcePath"`
	RoutingControlArn            *string                                 `field:"optional" json:"routingControlArn" yaml:"routingControlArn"`
	SearchString                 *string                                 `field:"optional" json:"searchString" yaml:"searchString"`
}

// A key-value pair to associate with a health check.
type CfnHealthCheck_HealthCheckTagProperty struct {
	Key   *string `field:"required" json:"key" yaml:"key"`
	Value *string `field:"required" json:"value" yaml:"value"`
}

func (p CfnHealthCheckProps) String() string { return cfn.Repr("CfnHealthCheckProps", p) }
func (p CfnHealthCheck_AlarmIdentifierProperty) String() string {
	return cfn.Repr("AlarmIdentifierProperty", p)
}
func (p CfnHealthCheck_HealthCheckConfigProperty) String() string {
	return cfn.Repr("HealthCheckConfigProperty", p)
}
func (p CfnHealthCheck_HealthCheckTagProperty) String() string {
	return cfn.Repr("HealthCheckTagProperty", p)
}
