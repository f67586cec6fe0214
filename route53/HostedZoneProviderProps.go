package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// The context provider that answers hosted zone lookups.
const HostedZoneContextProvider = "hosted-zone"

// Zone properties for looking up the Hosted Zone.
type HostedZoneProviderProps struct {
	// The zone domain e.g. example.com.
	DomainName *string `field:"required" json:"domainName" yaml:"domainName"`
	// Whether the zone that is being looked up is a private hosted zone. Default: false.
	PrivateZone *bool `field:"optional" json:"privateZone" yaml:"privateZone"`
	// Specifies the ID of the VPC associated with a private hosted zone.
	VpcId *string `field:"optional" json:"vpcId" yaml:"vpcId"`
}

func (p HostedZoneProviderProps) String() string {
	return cfn.Repr("HostedZoneProviderProps", p)
}

// HostedZoneContextResponse is the value stored in context for a hosted zone lookup.
type HostedZoneContextResponse struct {
	Id   string `json:"Id" yaml:"Id"`
	Name string `json:"Name" yaml:"Name"`
}

// contextProps renders the lookup as context provider properties.
func (p *HostedZoneProviderProps) contextProps() map[string]any {
	props := map[string]any{"domainName": *p.DomainName}
	if p.PrivateZone != nil {
		props["privateZone"] = *p.PrivateZone
	}
	if p.VpcId != nil {
		props["vpcId"] = *p.VpcId
	}
	return props
}
