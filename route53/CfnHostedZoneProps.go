package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnHostedZone`.
type CfnHostedZoneProps struct {
	// The name of the domain, for example www.example.com.
	Name *string `field:"required" json:"name" yaml:"name"`
	// A complex type that contains an optional comment.
	HostedZoneConfig *CfnHostedZone_HostedZoneConfigProperty `field:"optional" json:"hostedZoneConfig" yaml:"hostedZoneConfig"`
	// Optional features of the hosted zone.
	HostedZoneFeatures *CfnHostedZone_HostedZoneFeaturesProperty `field:"optional" json:"hostedZoneFeatures" yaml:"hostedZoneFeatures"`
	// Tags to associate with the hosted zone.
	HostedZoneTags *[]*CfnHostedZone_HostedZoneTagProperty `field:"optional" json:"hostedZoneTags" yaml:"hostedZoneTags"`
	// Where Route 53 publishes DNS query logs.
	QueryLoggingConfig *CfnHostedZone_QueryLoggingConfigProperty `field:"optional" json:"queryLoggingConfig" yaml:"queryLoggingConfig"`
	// VPCs to associate; setting any makes the zone private.
	Vpcs *[]*CfnHostedZone_VPCProperty `field:"optional" json:"vpcs" yaml:"vpcs"`
}

// A complex type that contains an optional comment about your hosted zone.
type CfnHostedZone_HostedZoneConfigProperty struct {
	Comment *string `field:"optional" json:"comment" yaml:"comment"`
}

type CfnHostedZone_HostedZoneFeaturesProperty struct {
	EnableAcceleratedRecovery *bool `field:"optional" json:"enableAcceleratedRecovery" yaml:"enableAcceleratedRecovery"`
}

type CfnHostedZone_HostedZoneTagProperty struct {
	Key   *string `field:"required" json:"key" yaml:"key"`
	Value *string `field:"required" json:"value" yaml:"value"`
}

// The CloudWatch Logs log group that receives DNS query logs.
type CfnHostedZone_QueryLoggingConfigProperty struct {
	CloudWatchLogsLogGroupArn *string `field:"required" json:"cloudWatchLogsLogGroupArn" yaml:"cloudWatchLogsLogGroupArn"`
}

// A VPC associated with a private hosted zone.
type CfnHostedZone_VPCProperty struct {
	VpcId     *string `field:"required" json:"vpcId" yaml:"vpcId"`
	VpcRegion *string `field:"required" json:"vpcRegion" yaml:"vpcRegion"`
}

func (p CfnHostedZoneProps) String() string                        { return cfn.Repr("CfnHostedZoneProps", p) }
func (p CfnHostedZone_HostedZoneConfigProperty) String() string    { return cfn.Repr("HostedZoneConfigProperty", p) }
func (p CfnHostedZone_HostedZoneFeaturesProperty) String() string  { return cfn.Repr("HostedZoneFeaturesProperty", p) }
func (p CfnHostedZone_HostedZoneTagProperty) String() string       { return cfn.Repr("HostedZoneTagProperty", p) }
func (p CfnHostedZone_QueryLoggingConfigProperty) String() string  { return cfn.Repr("QueryLoggingConfigProperty", p) }
func (p CfnHostedZone_VPCProperty) String() string                 { return cfn.Repr("VPCProperty", p) }
