package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnKeySigningKey`.
type CfnKeySigningKeyProps struct {
	// The unique string (ID) that is used to identify a hosted zone.
	HostedZoneId *string `field:"required" json:"hostedZoneId" yaml:"hostedZoneId"`
	// The Amazon resource name (ARN) for a customer managed customer master key (CMK) in AWS Key Management Service (AWS KMS ).
	KeyManagementServiceArn *string `field:"required" json:"keyManagementServiceArn" yaml:"keyManagementServiceArn"`
	// A string used to identify a key-signing key (KSK).
	Name *string `field:"required" json:"name" yaml:"name"`
	// A string that represents the current key-signing key (KSK) status: ACTIVE or INACTIVE.
	Status *string `field:"required" json:"status" yaml:"status"`
}

func (p CfnKeySigningKeyProps) String() string { return cfn.Repr("CfnKeySigningKeyProps", p) }
