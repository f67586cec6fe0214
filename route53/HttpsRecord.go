package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for HttpsRecord.
//
// Exactly one of Values and Target must be set.
type HttpsRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The target for an alias record, such as a CloudFront distribution.
	Target *RecordTarget `field:"optional" json:"target" yaml:"target"`
	// The values.
	Values *[]*HttpsRecordValue `field:"optional" json:"values" yaml:"values"`
}

// A DNS HTTPS record.
type HttpsRecord struct {
	*RecordSet
}

func NewHttpsRecord(scope cfn.IConstruct, id *string, props *HttpsRecordProps) *HttpsRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	if (props.Values == nil) == (props.Target == nil) {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Exactly one of values or target must be specified"))
	}
	target := props.Target
	if props.Values != nil {
		values := make([]*string, 0, len(*props.Values))
		for _, v := range *props.Values {
			values = append(values, jsii.String(v.value))
		}
		target = RecordTarget_FromValues(values...)
	}
	r := &HttpsRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_HTTPS,
		Target:           target,
	})}
	r.SetHost(r)
	return r
}

// Construction properties for SvcbRecord.
type SvcbRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The values.
	Values *[]*SvcbRecordValue `field:"required" json:"values" yaml:"values"`
}

// A DNS SVCB record.
type SvcbRecord struct {
	*RecordSet
}

func NewSvcbRecord(scope cfn.IConstruct, id *string, props *SvcbRecordProps) *SvcbRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	values := make([]*string, 0, len(*props.Values))
	for _, v := range *props.Values {
		values = append(values, jsii.String(v.value))
	}
	r := &SvcbRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_SVCB,
		Target:           RecordTarget_FromValues(values...),
	})}
	r.SetHost(r)
	return r
}
