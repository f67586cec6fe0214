package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for defining a `CfnRecordSetGroup`.
type CfnRecordSetGroupProps struct {
	// Optional: Any comments you want to include about a change batch request.
	Comment *string `field:"optional" json:"comment" yaml:"comment"`
	// The ID of the hosted zone that you want to create records in.
	HostedZoneId *string `field:"optional" json:"hostedZoneId" yaml:"hostedZoneId"`
	// The name of the hosted zone that you want to create records in, including the trailing dot.
	HostedZoneName *string `field:"optional" json:"hostedZoneName" yaml:"hostedZoneName"`
	// A complex type that contains one `RecordSet` element for each record that you want to create.
	RecordSets *[]*CfnRecordSetGroup_RecordSetProperty `field:"optional" json:"recordSets" yaml:"recordSets"`
}

// Information about one record that you want to create.
type CfnRecordSetGroup_RecordSetProperty struct {
	Name                 *string                                         `field:"required" json:"name" yaml:"name"`
	Type                 *string                                         `field:"required" json:"type" yaml:"type"`
	AliasTarget          *CfnRecordSetGroup_AliasTargetProperty          `field:"optional" json:"aliasTarget" yaml:"aliasTarget"`
	CidrRoutingConfig    *CfnRecordSetGroup_CidrRoutingConfigProperty    `field:"optional" json:"cidrRoutingConfig" yaml:"cidrRoutingConfig"`
	Failover             *string                                         `field:"optional" json:"failover" yaml:"failover"`
	GeoLocation          *CfnRecordSetGroup_GeoLocationProperty          `field:"optional" json:"geoLocation" yaml:"geoLocation"`
	GeoProximityLocation *CfnRecordSetGroup_GeoProximityLocationProperty `field:"optional" json:"geoProximityLocation" yaml:"geoProximityLocation"`
	HealthCheckId        *string                                         `field:"optional" json:"healthCheckId" yaml:"healthCheckId"`
	HostedZoneId         *string                                         `field:"optional" json:"hostedZoneId" yaml:"hostedZoneId"`
	HostedZoneName       *string                                         `field:"optional" json:"hostedZoneName" yaml:"hostedZoneName"`
	MultiValueAnswer     *bool                                           `field:"optional" json:"multiValueAnswer" yaml:"multiValueAnswer"`
	Region               *string                                         `field:"optional" json:"region" yaml:"region"`
	ResourceRecords      *[]*string                                      `field:"optional" json:"resourceRecords" yaml:"resourceRecords"`
	SetIdentifier        *string                                         `field:"optional" json:"setIdentifier" yaml:"setIdentifier"`
	Ttl                  *string                                         `field:"optional" json:"ttl" yaml:"ttl"`
	Weight               *float64                                        `field:"optional" json:"weight" yaml:"weight"`
}

type CfnRecordSetGroup_AliasTargetProperty struct {
	DnsName              *string `field:"required" json:"dnsName" yaml:"dnsName"`
	HostedZoneId         *string `field:"required" json:"hostedZoneId" yaml:"hostedZoneId"`
	EvaluateTargetHealth *bool   `field:"optional" json:"evaluateTargetHealth" yaml:"evaluateTargetHealth"`
}

type CfnRecordSetGroup_CidrRoutingConfigProperty struct {
	CollectionId *string `field:"required" json:"collectionId" yaml:"collectionId"`
	LocationName *string `field:"required" json:"locationName" yaml:"locationName"`
}

type CfnRecordSetGroup_CoordinatesProperty struct {
	Latitude  *string `field:"required" json:"latitude" yaml:"latitude"`
	Longitude *string `field:"required" json:"longitude" yaml:"longitude"`
}

type CfnRecordSetGroup_GeoLocationProperty struct {
	ContinentCode   *string `field:"optional" json:"continentCode" yaml:"continentCode"`
	CountryCode     *string `field:"optional" json:"countryCode" yaml:"countryCode"`
	SubdivisionCode *string `field:"optional" json:"subdivisionCode" yaml:"subdivisionCode"`
}

type CfnRecordSetGroup_GeoProximityLocationProperty struct {
	AwsRegion      *string                                `field:"optional" json:"awsRegion" yaml:"awsRegion"`
	Bias           *float64                               `field:"optional" json:"bias" yaml:"bias"`
	Coordinates    *CfnRecordSetGroup_CoordinatesProperty `field:"optional" json:"coordinates" yaml:"coordinates"`
	LocalZoneGroup *string                                `field:"optional" json:"localZoneGroup" yaml:"localZoneGroup"`
}

func (p CfnRecordSetGroupProps) String() string { return cfn.Repr("CfnRecordSetGroupProps", p) }
func (p CfnRecordSetGroup_RecordSetProperty) String() string {
	return cfn.Repr("RecordSetProperty", p)
}
func (p CfnRecordSetGroup_AliasTargetProperty) String() string {
	return cfn.Repr("AliasTargetProperty", p)
}
func (p CfnRecordSetGroup_CidrRoutingConfigProperty) String() string {
	return cfn.Repr("CidrRoutingConfigProperty", p)
}
func (p CfnRecordSetGroup_CoordinatesProperty) String() string {
	return cfn.Repr("CoordinatesProperty", p)
}
func (p CfnRecordSetGroup_GeoLocationProperty) String() string {
	return cfn.Repr("GeoLocationProperty", p)
}
func (p CfnRecordSetGroup_GeoProximityLocationProperty) String() string {
	return cfn.Repr("GeoProximityLocationProperty", p)
}

// recordSetProps views a group member as standalone record set props for rendering.
func (p *CfnRecordSetGroup_RecordSetProperty) recordSetProps() *CfnRecordSetProps {
	out := &CfnRecordSetProps{
		Name:              p.Name,
		Type:              p.Type,
		AliasTarget:       (*CfnRecordSet_AliasTargetProperty)(p.AliasTarget),
		CidrRoutingConfig: (*CfnRecordSet_CidrRoutingConfigProperty)(p.CidrRoutingConfig),
		Failover:          p.Failover,
		GeoLocation:       (*CfnRecordSet_GeoLocationProperty)(p.GeoLocation),
		HealthCheckId:     p.HealthCheckId,
		HostedZoneId:      p.HostedZoneId,
		HostedZoneName:    p.HostedZoneName,
		MultiValueAnswer:  p.MultiValueAnswer,
		Region:            p.Region,
		ResourceRecords:   p.ResourceRecords,
		SetIdentifier:     p.SetIdentifier,
		Ttl:               p.Ttl,
		Weight:            p.Weight,
	}
	if g := p.GeoProximityLocation; g != nil {
		out.GeoProximityLocation = &CfnRecordSet_GeoProximityLocationProperty{
			AwsRegion:      g.AwsRegion,
			Bias:           g.Bias,
			Coordinates:    (*CfnRecordSet_CoordinatesProperty)(g.Coordinates),
			LocalZoneGroup: g.LocalZoneGroup,
		}
	}
	return out
}
