package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Create a Route53 private hosted zone for use in one or more VPCs.
//
// Note that `enableDnsHostnames` and `enableDnsSupport` must have been enabled for the VPC
// you're configuring for private hosted zones.
type PrivateHostedZone struct {
	*HostedZone
}

var _ IPrivateHostedZone = (*PrivateHostedZone)(nil)

func NewPrivateHostedZone(scope cfn.IConstruct, id *string, props *PrivateHostedZoneProps) *PrivateHostedZone {
	if err := validateNewPrivateHostedZoneParameters(scope, id, props); err != nil {
		panic(err)
	}
	z := &PrivateHostedZone{HostedZone: newHostedZone(scope, *id, &props.CommonHostedZoneProps)}
	z.SetHost(z)
	z.AddVpc(props.Vpc)
	return z
}

func (z *PrivateHostedZone) privateHostedZone() {}
