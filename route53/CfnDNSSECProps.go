package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnDNSSEC`.
type CfnDNSSECProps struct {
	// A unique string (ID) that is used to identify a hosted zone.
	HostedZoneId *string `field:"required" json:"hostedZoneId" yaml:"hostedZoneId"`
}

func (p CfnDNSSECProps) String() string { return cfn.Repr("CfnDNSSECProps", p) }
