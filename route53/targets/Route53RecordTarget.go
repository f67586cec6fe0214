package targets

import (
	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// Use another Route 53 record in the same zone as an alias record target.
type Route53RecordTarget struct {
	record               route53.IRecordSet
	evaluateTargetHealth *bool
}

var _ route53.IAliasRecordTarget = (*Route53RecordTarget)(nil)

func NewRoute53RecordTarget(record route53.IRecordSet, evaluateTargetHealth *bool) *Route53RecordTarget {
	if record == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter record is required, but nil was provided"))
	}
	return &Route53RecordTarget{record: record, evaluateTargetHealth: evaluateTargetHealth}
}

func (t *Route53RecordTarget) Bind(_ route53.IRecordSet, zone route53.IHostedZone) *route53.AliasRecordTargetConfig {
	if zone == nil {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Cannot bind to record without a zone"))
	}
	return &route53.AliasRecordTargetConfig{
		DnsName:              t.record.DomainName(),
		HostedZoneId:         zone.HostedZoneId(),
		EvaluateTargetHealth: t.evaluateTargetHealth,
	}
}
