package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Common properties to create a Route 53 hosted zone.
type CommonHostedZoneProps struct {
	// The name of the domain. For resource record types that include a domain name, specify a fully qualified domain name.
	ZoneName *string `field:"required" json:"zoneName" yaml:"zoneName"`
	// Whether to add a trailing dot to the zone name. Default: true.
	AddTrailingDot *bool `field:"optional" json:"addTrailingDot" yaml:"addTrailingDot"`
	// Any comments that you want to include about the hosted zone.
	Comment *string `field:"optional" json:"comment" yaml:"comment"`
	// The Amazon Resource Name (ARN) for the log group that you want Amazon Route 53 to send query logs to.
	QueryLogsLogGroupArn *string `field:"optional" json:"queryLogsLogGroupArn" yaml:"queryLogsLogGroupArn"`
}

// Properties of a new hosted zone.
type HostedZoneProps struct {
	CommonHostedZoneProps `yaml:",inline"`
	// A VPC that you want to associate with this hosted zone. When specified, a private hosted zone will be created.
	Vpcs *[]*Vpc `field:"optional" json:"vpcs" yaml:"vpcs"`
}

// Construction properties for a PublicHostedZone.
type PublicHostedZoneProps struct {
	CommonHostedZoneProps `yaml:",inline"`
	// Whether to create a CAA record to restrict certificate authorities allowed to issue certificates for this domain to Amazon only. Default: false.
	CaaAmazon *bool `field:"optional" json:"caaAmazon" yaml:"caaAmazon"`
	// A principal (account id or IAM principal ARN) which is trusted to assume a role for zone delegation.
	CrossAccountZoneDelegationPrincipal *string `field:"optional" json:"crossAccountZoneDelegationPrincipal" yaml:"crossAccountZoneDelegationPrincipal"`
	// The name of the role created for cross account delegation. Default: a role name is generated automatically.
	CrossAccountZoneDelegationRoleName *string `field:"optional" json:"crossAccountZoneDelegationRoleName" yaml:"crossAccountZoneDelegationRoleName"`
}

// Properties to create a Route 53 private hosted zone.
type PrivateHostedZoneProps struct {
	CommonHostedZoneProps `yaml:",inline"`
	// A VPC that you want to associate with this hosted zone.
	Vpc *Vpc `field:"required" json:"vpc" yaml:"vpc"`
}

// Options available when creating a delegation relationship from one PublicHostedZone to another.
type ZoneDelegationOptions struct {
	// A comment to add on the DNS record created to incorporate the delegation. Default: none.
	Comment *string `field:"optional" json:"comment" yaml:"comment"`
	// The TTL (Time To Live) of the DNS delegation record in DNS caches. Default: 172800.
	Ttl *cfn.Duration `field:"optional" json:"ttl" yaml:"ttl"`
}

// Options for enabling key signing from a hosted zone.
type ZoneSigningOptions struct {
	// The ARN of the customer-managed, asymmetric KMS key (ECC_NIST_P256, SIGN_VERIFY) used for signing.
	KmsKeyArn *string `field:"required" json:"kmsKeyArn" yaml:"kmsKeyArn"`
	// The name for the key signing key. Default: an autogenerated name.
	KeySigningKeyName *string `field:"optional" json:"keySigningKeyName" yaml:"keySigningKeyName"`
}

func (p CommonHostedZoneProps) String() string  { return cfn.Repr("CommonHostedZoneProps", p) }
func (p HostedZoneProps) String() string        { return cfn.Repr("HostedZoneProps", p) }
func (p PublicHostedZoneProps) String() string  { return cfn.Repr("PublicHostedZoneProps", p) }
func (p PrivateHostedZoneProps) String() string { return cfn.Repr("PrivateHostedZoneProps", p) }
