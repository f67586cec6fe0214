package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Imported or created hosted zone.
type IHostedZone interface {
	cfn.IConstruct
	// ARN of this hosted zone, such as arn:${Partition}:route53:::hostedzone/${Id}.
	HostedZoneArn() *string
	// ID of this hosted zone, such as "Z23ABC4XYZL05B".
	HostedZoneId() *string
	// Returns the set of name servers for the specific hosted zone, or nil when unknown
	// (private zones and zones imported without name servers).
	HostedZoneNameServers() *[]*string
	// FQDN of this hosted zone, without the trailing dot.
	ZoneName() *string
}

// Represents a Route 53 public hosted zone.
type IPublicHostedZone interface {
	IHostedZone
	publicHostedZone()
}

// Represents a Route 53 private hosted zone.
type IPrivateHostedZone interface {
	IHostedZone
	privateHostedZone()
}

// Reference to a hosted zone.
type HostedZoneAttributes struct {
	// Identifier of the hosted zone.
	HostedZoneId *string `field:"required" json:"hostedZoneId" yaml:"hostedZoneId"`
	// Name of the hosted zone.
	ZoneName *string `field:"required" json:"zoneName" yaml:"zoneName"`
}

// Reference to a public hosted zone.
type PublicHostedZoneAttributes struct {
	HostedZoneAttributes `yaml:",inline"`
}

func (a HostedZoneAttributes) String() string {
	return cfn.Repr("HostedZoneAttributes", a)
}

// A VPC to associate with a private hosted zone.
type Vpc struct {
	// The VPC id, such as vpc-1a2b3c4d.
	VpcId *string `field:"required" json:"vpcId" yaml:"vpcId"`
	// The region of the VPC. Default: the region of the stack.
	Region *string `field:"optional" json:"region" yaml:"region"`
}

func (v Vpc) String() string {
	return cfn.Repr("Vpc", v)
}
