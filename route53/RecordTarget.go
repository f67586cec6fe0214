package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Represents the properties of an alias target destination.
type AliasRecordTargetConfig struct {
	// DNS name of the target.
	DnsName *string `field:"required" json:"dnsName" yaml:"dnsName"`
	// Hosted zone ID of the target.
	HostedZoneId *string `field:"required" json:"hostedZoneId" yaml:"hostedZoneId"`
	// Evaluate the target health. Default: no health check configuration.
	EvaluateTargetHealth *bool `field:"optional" json:"evaluateTargetHealth" yaml:"evaluateTargetHealth"`
}

func (c AliasRecordTargetConfig) String() string {
	return cfn.Repr("AliasRecordTargetConfig", c)
}

// Classes that are valid alias record targets, like CloudFront distributions and load balancers.
type IAliasRecordTarget interface {
	// Return hosted zone ID and DNS name, usable for Route53 alias targets.
	Bind(record IRecordSet, zone IHostedZone) *AliasRecordTargetConfig
}

// A record set.
type IRecordSet interface {
	cfn.IConstruct
	// The domain name of the record.
	DomainName() *string
}

// Type union for a record that accepts multiple types of target.
type RecordTarget struct {
	values      *[]*string
	aliasTarget IAliasRecordTarget
}

// Use string values as target.
func RecordTarget_FromValues(values ...*string) *RecordTarget {
	list := append([]*string(nil), values...)
	return &RecordTarget{values: &list}
}

// Use ip addresses as target.
func RecordTarget_FromIpAddresses(ipAddresses ...*string) *RecordTarget {
	return RecordTarget_FromValues(ipAddresses...)
}

// Use an alias as target.
func RecordTarget_FromAlias(aliasTarget IAliasRecordTarget) *RecordTarget {
	if aliasTarget == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter aliasTarget is required, but nil was provided"))
	}
	return &RecordTarget{aliasTarget: aliasTarget}
}

// NewRecordTarget builds a target from values or an alias; exactly one must be given.
func NewRecordTarget(values *[]*string, aliasTarget IAliasRecordTarget) *RecordTarget {
	if (values == nil) == (aliasTarget == nil) {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Exactly one of values or aliasTarget must be specified"))
	}
	return &RecordTarget{values: values, aliasTarget: aliasTarget}
}

// The values of the record, or nil for an alias.
func (t *RecordTarget) Values() *[]*string { return t.values }

// The alias target of the record, or nil.
func (t *RecordTarget) AliasTarget() IAliasRecordTarget { return t.aliasTarget }

func (t *RecordTarget) String() string {
	if t.aliasTarget != nil {
		return "RecordTarget(alias_target=" + cfn.Repr("AliasRecordTarget", t.aliasTarget) + ")"
	}
	return cfn.Repr("RecordTarget", struct {
		Values *[]*string `json:"values"`
	}{t.values})
}
