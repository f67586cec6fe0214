package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Container for records, and records contain information about how to route traffic for a
// specific domain, such as example.com and its subdomains (acme.example.com, zenith.example.com).
//
// A HostedZone with VPCs is private; without VPCs it is public.
type HostedZone struct {
	*cfn.Construct

	resource *CfnHostedZone
	zoneName string
	vpcs     []*CfnHostedZone_VPCProperty
}

var _ IHostedZone = (*HostedZone)(nil)

func NewHostedZone(scope cfn.IConstruct, id *string, props *HostedZoneProps) *HostedZone {
	if err := validateNewHostedZoneParameters(scope, id, props); err != nil {
		panic(err)
	}
	h := newHostedZone(scope, *id, &props.CommonHostedZoneProps)
	h.SetHost(h)
	if props.Vpcs != nil {
		for _, vpc := range *props.Vpcs {
			h.AddVpc(vpc)
		}
	}
	return h
}

func newHostedZone(scope cfn.IConstruct, id string, props *CommonHostedZoneProps) *HostedZone {
	cfn.Must(validateZoneName(*props.ZoneName))

	h := &HostedZone{
		Construct: cfn.NewConstruct(scope, id),
		zoneName:  *props.ZoneName,
	}
	name := *props.ZoneName
	if props.AddTrailingDot == nil || *props.AddTrailingDot {
		name += "."
	}
	cfnProps := &CfnHostedZoneProps{Name: jsii.String(name)}
	if props.Comment != nil {
		cfnProps.HostedZoneConfig = &CfnHostedZone_HostedZoneConfigProperty{Comment: props.Comment}
	}
	if props.QueryLogsLogGroupArn != nil {
		cfnProps.QueryLoggingConfig = &CfnHostedZone_QueryLoggingConfigProperty{CloudWatchLogsLogGroupArn: props.QueryLogsLogGroupArn}
	}
	h.resource = NewCfnHostedZone(h, jsii.String("Resource"), cfnProps)
	return h
}

// The underlying AWS::Route53::HostedZone resource.
func (h *HostedZone) CfnHostedZone() *CfnHostedZone {
	return h.resource
}

func (h *HostedZone) HostedZoneId() *string {
	return jsii.String(h.resource.Ref())
}

func (h *HostedZone) HostedZoneArn() *string {
	return jsii.String(hostedZoneArn(h, *h.HostedZoneId()))
}

func (h *HostedZone) ZoneName() *string {
	return jsii.String(h.zoneName)
}

// Name servers of the zone; nil for private zones, which are not delegated.
func (h *HostedZone) HostedZoneNameServers() *[]*string {
	if len(h.vpcs) > 0 {
		return nil
	}
	return h.resource.AttrNameServers()
}

// Add another VPC to this private hosted zone. The region defaults to the stack's region.
func (h *HostedZone) AddVpc(vpc *Vpc) {
	if err := validateAddVpcParameters(vpc); err != nil {
		panic(err)
	}
	region := vpc.Region
	if region == nil {
		region = jsii.String(cfn.StackOf(h).Region())
	}
	h.vpcs = append(h.vpcs, &CfnHostedZone_VPCProperty{VpcId: vpc.VpcId, VpcRegion: region})
	vpcs := append([]*CfnHostedZone_VPCProperty(nil), h.vpcs...)
	h.resource.SetVpcs(&vpcs)
}

// Enable DNSSEC for this hosted zone.
//
// Creates a KeySigningKey and an AWS::Route53::DNSSEC resource that depends on it.
func (h *HostedZone) EnableDnssec(options *ZoneSigningOptions) *KeySigningKey {
	if err := validateEnableDnssecParameters(options); err != nil {
		panic(err)
	}
	zone := h.Node().Host().(IHostedZone)
	ksk := NewKeySigningKey(h, jsii.String("KeySigningKey"), &KeySigningKeyProps{
		HostedZone:        zone,
		KmsKeyArn:         options.KmsKeyArn,
		KeySigningKeyName: options.KeySigningKeyName,
	})
	dnssec := NewCfnDNSSEC(h, jsii.String("DNSSEC"), &CfnDNSSECProps{HostedZoneId: zone.HostedZoneId()})
	dnssec.AddDependency(ksk.CfnKeySigningKey())
	return ksk
}

// Apply the given removal policy to the underlying hosted zone resource.
func (h *HostedZone) ApplyRemovalPolicy(policy cfn.RemovalPolicy) {
	h.resource.ApplyRemovalPolicy(policy)
}

func hostedZoneArn(scope cfn.IConstruct, hostedZoneID string) string {
	return cfn.StackOf(scope).FormatArn("route53", "", "", "hostedzone/"+hostedZoneID)
}
