package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a CnameRecord.
type CnameRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The domain name of the target that this record should point to.
	DomainName *string `field:"required" json:"domainName" yaml:"domainName"`
}

// A DNS CNAME record.
type CnameRecord struct {
	*RecordSet
}

func NewCnameRecord(scope cfn.IConstruct, id *string, props *CnameRecordProps) *CnameRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	r := &CnameRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_CNAME,
		Target:           RecordTarget_FromValues(props.DomainName),
	})}
	r.SetHost(r)
	return r
}
