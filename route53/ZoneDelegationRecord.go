package route53

import (
	"strings"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Default TTL for delegation records.
var defaultDelegationTtl = cfn.Duration_Days(2)

// Construction properties for a ZoneDelegationRecord.
type ZoneDelegationRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The name servers to report in the delegation records.
	NameServers *[]*string `field:"required" json:"nameServers" yaml:"nameServers"`
}

// A record to delegate further lookups to a different set of name servers.
type ZoneDelegationRecord struct {
	*RecordSet
}

func NewZoneDelegationRecord(scope cfn.IConstruct, id *string, props *ZoneDelegationRecordProps) *ZoneDelegationRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	var values []*string
	if cfn.IsUnresolvedList(*props.NameServers) {
		values = *props.NameServers
	} else {
		for _, ns := range *props.NameServers {
			name := stringValue(ns)
			if !cfn.IsUnresolved(name) && !strings.HasSuffix(name, ".") {
				name += "."
			}
			values = append(values, jsii.String(name))
		}
	}
	opts := props.RecordSetOptions
	if opts.Ttl == nil {
		opts.Ttl = defaultDelegationTtl
	}
	r := &ZoneDelegationRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: opts,
		RecordType:       RecordType_NS,
		Target:           RecordTarget_FromValues(values...),
	})}
	r.SetHost(r)
	return r
}
