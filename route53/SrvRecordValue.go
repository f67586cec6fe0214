package route53

import (
	"strings"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Properties for a SRV record value.
type SrvRecordValue struct {
	// The server host name.
	HostName *string `field:"required" json:"hostName" yaml:"hostName"`
	// The port.
	Port *float64 `field:"required" json:"port" yaml:"port"`
	// The priority.
	Priority *float64 `field:"required" json:"priority" yaml:"priority"`
	// The weight.
	Weight *float64 `field:"required" json:"weight" yaml:"weight"`
}

func (v SrvRecordValue) String() string {
	return cfn.Repr("SrvRecordValue", v)
}

func (v *SrvRecordValue) render() string {
	return strings.Join([]string{formatNumber(v.Priority), formatNumber(v.Weight), formatNumber(v.Port), stringValue(v.HostName)}, " ")
}
