package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a CaaRecord.
type CaaRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The values.
	Values *[]*CaaRecordValue `field:"required" json:"values" yaml:"values"`
}

// A DNS CAA record.
type CaaRecord struct {
	*RecordSet
}

func NewCaaRecord(scope cfn.IConstruct, id *string, props *CaaRecordProps) *CaaRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &CaaRecord{newCaaRecord(scope, *id, props)}
	r.SetHost(r)
	return r
}

func newCaaRecord(scope cfn.IConstruct, id string, props *CaaRecordProps) *RecordSet {
	values := make([]*string, 0, len(*props.Values))
	for _, v := range *props.Values {
		values = append(values, jsii.String(v.render()))
	}
	return newRecordSet(scope, id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_CAA,
		Target:           RecordTarget_FromValues(values...),
	})
}

// Construction properties for a CaaAmazonRecord.
type CaaAmazonRecordProps struct {
	RecordSetOptions `yaml:",inline"`
}

// A DNS Amazon CAA record.
//
// A CAA record to restrict certificate authorities allowed
// to issue certificates for a domain to Amazon only.
type CaaAmazonRecord struct {
	*RecordSet
}

func NewCaaAmazonRecord(scope cfn.IConstruct, id *string, props *CaaAmazonRecordProps) *CaaAmazonRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &CaaAmazonRecord{newCaaRecord(scope, *id, &CaaRecordProps{
		RecordSetOptions: props.RecordSetOptions,
		Values: &[]*CaaRecordValue{{
			Flag:  jsii.Number(0),
			Tag:   CaaTag_ISSUE,
			Value: jsii.String("amazon.com"),
		}},
	})}
	r.SetHost(r)
	return r
}
