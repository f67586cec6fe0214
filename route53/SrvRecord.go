package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a SrvRecord.
type SrvRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The values.
	Values *[]*SrvRecordValue `field:"required" json:"values" yaml:"values"`
}

// A DNS SRV record.
type SrvRecord struct {
	*RecordSet
}

func NewSrvRecord(scope cfn.IConstruct, id *string, props *SrvRecordProps) *SrvRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	values := make([]*string, 0, len(*props.Values))
	for _, v := range *props.Values {
		values = append(values, jsii.String(v.render()))
	}
	r := &SrvRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_SRV,
		Target:           RecordTarget_FromValues(values...),
	})}
	r.SetHost(r)
	return r
}
