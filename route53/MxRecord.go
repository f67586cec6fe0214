package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a MxRecord.
type MxRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The values.
	Values *[]*MxRecordValue `field:"required" json:"values" yaml:"values"`
}

// A DNS MX record.
type MxRecord struct {
	*RecordSet
}

func NewMxRecord(scope cfn.IConstruct, id *string, props *MxRecordProps) *MxRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	values := make([]*string, 0, len(*props.Values))
	for _, v := range *props.Values {
		values = append(values, jsii.String(v.render()))
	}
	r := &MxRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_MX,
		Target:           RecordTarget_FromValues(values...),
	})}
	r.SetHost(r)
	return r
}
