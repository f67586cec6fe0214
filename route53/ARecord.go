package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a ARecord.
type ARecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The target.
	Target *RecordTarget `field:"required" json:"target" yaml:"target"`
}

// A DNS A record.
type ARecord struct {
	*RecordSet
}

func NewARecord(scope cfn.IConstruct, id *string, props *ARecordProps) *ARecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &ARecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_A,
		Target:           props.Target,
	})}
	r.SetHost(r)
	return r
}

// Construction properties for a AaaaRecord.
type AaaaRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The target.
	Target *RecordTarget `field:"required" json:"target" yaml:"target"`
}

// A DNS AAAA record.
type AaaaRecord struct {
	*RecordSet
}

func NewAaaaRecord(scope cfn.IConstruct, id *string, props *AaaaRecordProps) *AaaaRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &AaaaRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_AAAA,
		Target:           props.Target,
	})}
	r.SetHost(r)
	return r
}
