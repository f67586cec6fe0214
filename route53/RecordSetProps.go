package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Options for a RecordSet.
type RecordSetOptions struct {
	// The hosted zone in which to define the new record.
	Zone IHostedZone `field:"required" json:"zone" yaml:"zone"`
	// The object that is specified in resource record set object when you are linking a resource record set to a CIDR location.
	CidrRoutingConfig *CidrRoutingConfig `field:"optional" json:"cidrRoutingConfig" yaml:"cidrRoutingConfig"`
	// A comment to add on the record. Default: no comment.
	Comment *string `field:"optional" json:"comment" yaml:"comment"`
	// Whether to delete the same record set in the hosted zone if it already exists (dangerous!).
	//
	// This allows to deploy a new record set while minimizing the downtime because the new
	// record set will be created immediately after the existing one is deleted.
	DeleteExisting *bool `field:"optional" json:"deleteExisting" yaml:"deleteExisting"`
	// Failover resource record sets only. Default: no failover.
	Failover Failover `field:"optional" json:"failover" yaml:"failover"`
	// The geographical origin for this record to return DNS records based on the user's location.
	GeoLocation *GeoLocation `field:"optional" json:"geoLocation" yaml:"geoLocation"`
	// The health check to associate with the record set. Default: no health check configured.
	HealthCheck IHealthCheck `field:"optional" json:"healthCheck" yaml:"healthCheck"`
	// Whether to return multiple values, such as IP addresses for your web servers, in response to DNS queries.
	MultiValueAnswer *bool `field:"optional" json:"multiValueAnswer" yaml:"multiValueAnswer"`
	// The subdomain name for this record. This should be relative to the zone root name.
	//
	// Default: zone root.
	RecordName *string `field:"optional" json:"recordName" yaml:"recordName"`
	// The Amazon EC2 Region where you created the resource that this resource record set refers to.
	Region *string `field:"optional" json:"region" yaml:"region"`
	// A string used to distinguish between different records with the same combination of DNS name and type.
	//
	// Default: auto generated string when a routing policy is used.
	SetIdentifier *string `field:"optional" json:"setIdentifier" yaml:"setIdentifier"`
	// The resource record cache time to live (TTL). Default: Duration.minutes(30).
	Ttl *cfn.Duration `field:"optional" json:"ttl" yaml:"ttl"`
	// Among resource record sets that have the same combination of DNS name and type, a value that determines the proportion of DNS queries that Amazon Route 53 responds to using the current resource record set.
	Weight *float64 `field:"optional" json:"weight" yaml:"weight"`
}

// Construction properties for a RecordSet.
type RecordSetProps struct {
	RecordSetOptions `yaml:",inline"`
	// The record type.
	RecordType RecordType `field:"required" json:"recordType" yaml:"recordType"`
	// The target for this record, either `RecordTarget.fromValues()` or `RecordTarget.fromAlias()`.
	Target *RecordTarget `field:"required" json:"target" yaml:"target"`
}

func (o RecordSetOptions) String() string { return cfn.Repr("RecordSetOptions", o) }
func (p RecordSetProps) String() string   { return cfn.Repr("RecordSetProps", p) }
