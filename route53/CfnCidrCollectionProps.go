package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnCidrCollection`.
type CfnCidrCollectionProps struct {
	// The name of a CIDR collection.
	Name *string `field:"required" json:"name" yaml:"name"`
	// A complex type that contains information about the list of CIDR locations.
	Locations *[]*CfnCidrCollection_LocationProperty `field:"optional" json:"locations" yaml:"locations"`
}

// Specifies the list of CIDR blocks for a CIDR location.
type CfnCidrCollection_LocationProperty struct {
	// List of CIDR blocks.
	CidrList *[]*string `field:"required" json:"cidrList" yaml:"cidrList"`
	// The CIDR collection location name.
	LocationName *string `field:"required" json:"locationName" yaml:"locationName"`
}

func (p CfnCidrCollectionProps) String() string { return cfn.Repr("CfnCidrCollectionProps", p) }
func (p CfnCidrCollection_LocationProperty) String() string {
	return cfn.Repr("LocationProperty", p)
}
