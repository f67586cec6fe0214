package route53

import (
	"strconv"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for a MX record value.
type MxRecordValue struct {
	// The mail server host name.
	HostName *string `field:"required" json:"hostName" yaml:"hostName"`
	// The priority.
	Priority *float64 `field:"required" json:"priority" yaml:"priority"`
}

func (v MxRecordValue) String() string {
	return cfn.Repr("MxRecordValue", v)
}

func (v *MxRecordValue) render() string {
	return formatNumber(v.Priority) + " " + stringValue(v.HostName)
}

func formatNumber(n *float64) string {
	if n == nil {
		return "0"
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}
