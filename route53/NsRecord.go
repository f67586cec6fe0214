package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a NSRecord.
type NsRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The NS values.
	Values *[]*string `field:"required" json:"values" yaml:"values"`
}

// A DNS NS record.
type NsRecord struct {
	*RecordSet
}

func NewNsRecord(scope cfn.IConstruct, id *string, props *NsRecordProps) *NsRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &NsRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_NS,
		Target:           RecordTarget_FromValues(*props.Values...),
	})}
	r.SetHost(r)
	return r
}

// Construction properties for a DSRecord.
type DsRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The DS values.
	Values *[]*string `field:"required" json:"values" yaml:"values"`
}

// A DNS DS record.
type DsRecord struct {
	*RecordSet
}

func NewDsRecord(scope cfn.IConstruct, id *string, props *DsRecordProps) *DsRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &DsRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_DS,
		Target:           RecordTarget_FromValues(*props.Values...),
	})}
	r.SetHost(r)
	return r
}
