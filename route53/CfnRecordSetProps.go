package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnRecordSet`.
//
// Routing fields (Weight, Region, GeoLocation, GeoProximityLocation, Failover,
// MultiValueAnswer, CidrRoutingConfig) are passed through as given; Route 53 decides which
// combinations are valid.
type CfnRecordSetProps struct {
	// For ChangeResourceRecordSets requests, the name of the record that you want to create.
	Name *string `field:"required" json:"name" yaml:"name"`
	// The DNS record type.
	Type *string `field:"required" json:"type" yaml:"type"`
	// Alias resource record sets only.
	AliasTarget *CfnRecordSet_AliasTargetProperty `field:"optional" json:"aliasTarget" yaml:"aliasTarget"`
	// The object that is specified in resource record set object when you are linking a resource record set to a CIDR location.
	CidrRoutingConfig *CfnRecordSet_CidrRoutingConfigProperty `field:"optional" json:"cidrRoutingConfig" yaml:"cidrRoutingConfig"`
	// Optional: Any comments you want to include about a change batch request.
	Comment *string `field:"optional" json:"comment" yaml:"comment"`
	// PRIMARY or SECONDARY.
	Failover *string `field:"optional" json:"failover" yaml:"failover"`
	// Geolocation resource record sets only.
	GeoLocation *CfnRecordSet_GeoLocationProperty `field:"optional" json:"geoLocation" yaml:"geoLocation"`
	// Geoproximity resource record sets only.
	GeoProximityLocation *CfnRecordSet_GeoProximityLocationProperty `field:"optional" json:"geoProximityLocation" yaml:"geoProximityLocation"`
	// The health check the record should be associated with.
	HealthCheckId *string `field:"optional" json:"healthCheckId" yaml:"healthCheckId"`
	// The ID of the hosted zone; specify either HostedZoneName or HostedZoneId, but not both.
	HostedZoneId *string `field:"optional" json:"hostedZoneId" yaml:"hostedZoneId"`
	// The name of the hosted zone, including the trailing dot.
	HostedZoneName *string `field:"optional" json:"hostedZoneName" yaml:"hostedZoneName"`
	// Multivalue answer resource record sets only.
	MultiValueAnswer *bool `field:"optional" json:"multiValueAnswer" yaml:"multiValueAnswer"`
	// Latency-based resource record sets only.
	Region *string `field:"optional" json:"region" yaml:"region"`
	// One or more values that correspond with the value that you specified for the `Type` property.
	ResourceRecords *[]*string `field:"optional" json:"resourceRecords" yaml:"resourceRecords"`
	// An identifier that differentiates among multiple resource record sets that have the same combination of name and type.
	SetIdentifier *string `field:"optional" json:"setIdentifier" yaml:"setIdentifier"`
	// The resource record cache time to live (TTL), in seconds.
	Ttl *string `field:"optional" json:"ttl" yaml:"ttl"`
	// Weighted resource record sets only.
	Weight *float64 `field:"optional" json:"weight" yaml:"weight"`
}

// Information about the AWS resource traffic is routed to for an alias record.
type CfnRecordSet_AliasTargetProperty struct {
	DnsName              *string `field:"required" json:"dnsName" yaml:"dnsName"`
	HostedZoneId         *string `field:"required" json:"hostedZoneId" yaml:"hostedZoneId"`
	EvaluateTargetHealth *bool   `field:"optional" json:"evaluateTargetHealth" yaml:"evaluateTargetHealth"`
}

type CfnRecordSet_CidrRoutingConfigProperty struct {
	CollectionId *string `field:"required" json:"collectionId" yaml:"collectionId"`
	LocationName *string `field:"required" json:"locationName" yaml:"locationName"`
}

type CfnRecordSet_CoordinatesProperty struct {
	Latitude  *string `field:"required" json:"latitude" yaml:"latitude"`
	Longitude *string `field:"required" json:"longitude" yaml:"longitude"`
}

// Geographic location for geolocation routing.
type CfnRecordSet_GeoLocationProperty struct {
	ContinentCode   *string `field:"optional" json:"continentCode" yaml:"continentCode"`
	CountryCode     *string `field:"optional" json:"countryCode" yaml:"countryCode"`
	SubdivisionCode *string `field:"optional" json:"subdivisionCode" yaml:"subdivisionCode"`
}

// Location for geoproximity routing.
type CfnRecordSet_GeoProximityLocationProperty struct {
	AwsRegion      *string                           `field:"optional" json:"awsRegion" yaml:"awsRegion"`
	Bias           *float64                          `field:"optional" json:"bias" yaml:"bias"`
	Coordinates    *CfnRecordSet_CoordinatesProperty `field:"optional" json:"coordinates" yaml:"coordinates"`
	LocalZoneGroup *string                           `field:"optional" json:"localZoneGroup" yaml:"localZoneGroup"`
}

func (p CfnRecordSetProps) String() string { return cfn.Repr("CfnRecordSetProps", p) }
func (p CfnRecordSet_AliasTargetProperty) String() string {
	return cfn.Repr("AliasTargetProperty", p)
}
func (p CfnRecordSet_CidrRoutingConfigProperty) String() string {
	return cfn.Repr("CidrRoutingConfigProperty", p)
}
func (p CfnRecordSet_CoordinatesProperty) String() string {
	return cfn.Repr("CoordinatesProperty", p)
}
func (p CfnRecordSet_GeoLocationProperty) String() string {
	return cfn.Repr("GeoLocationProperty", p)
}
func (p CfnRecordSet_GeoProximityLocationProperty) String() string {
	return cfn.Repr("GeoProximityLocationProperty", p)
}
