package route53

import (
	"strconv"
	"strings"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// TXT character strings are limited to 255 characters; longer values are split.
const txtChunkLength = 255

// Construction properties for a TxtRecord.
type TxtRecordProps struct {
	RecordSetOptions `yaml:",inline"`
	// The text values.
	Values *[]*string `field:"required" json:"values" yaml:"values"`
}

// A DNS TXT record.
type TxtRecord struct {
	*RecordSet
}

func NewTxtRecord(scope cfn.IConstruct, id *string, props *TxtRecordProps) *TxtRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	values := make([]*string, 0, len(*props.Values))
	for _, v := range *props.Values {
		values = append(values, jsii.String(formatTxt(stringValue(v))))
	}
	r := &TxtRecord{newRecordSet(scope, *id, &RecordSetProps{
		RecordSetOptions: props.RecordSetOptions,
		RecordType:       RecordType_TXT,
		Target:           RecordTarget_FromValues(values...),
	})}
	r.SetHost(r)
	return r
}

// formatTxt quotes a TXT value, splitting it into 255 character strings.
// Quotes and backslashes inside each string are escaped.
func formatTxt(value string) string {
	runes := []rune(value)
	var b strings.Builder
	for len(runes) > txtChunkLength {
		b.WriteString(strconv.Quote(string(runes[:txtChunkLength])))
		runes = runes[txtChunkLength:]
	}
	b.WriteString(strconv.Quote(string(runes)))
	return b.String()
}
