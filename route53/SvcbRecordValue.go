package route53

import (
	"strings"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Options for a SVCB or HTTPS record in ServiceMode.
type SvcbRecordServiceModeProps struct {
	// Alternative endpoint Application-Layer Protocol Negotiation protocol identifiers.
	Alpn *[]*string `field:"optional" json:"alpn" yaml:"alpn"`
	// Encrypted ClientHello config list, base64 encoded.
	Ech *string `field:"optional" json:"ech" yaml:"ech"`
	// IPv4 addresses of the alternative endpoint.
	Ipv4hint *[]*string `field:"optional" json:"ipv4hint" yaml:"ipv4hint"`
	// IPv6 addresses of the alternative endpoint.
	Ipv6hint *[]*string `field:"optional" json:"ipv6hint" yaml:"ipv6hint"`
	// Keys the client must understand to use the record.
	Mandatory *[]*string `field:"optional" json:"mandatory" yaml:"mandatory"`
	// Disables the default ALPN protocol.
	NoDefaultAlpn *bool `field:"optional" json:"noDefaultAlpn" yaml:"noDefaultAlpn"`
	// Alternative endpoint port.
	Port *float64 `field:"optional" json:"port" yaml:"port"`
	// The priority of the alternative endpoint. Default: 1.
	Priority *float64 `field:"optional" json:"priority" yaml:"priority"`
	// The domain name of the alternative endpoint. Default: "." (the owner name).
	TargetName *string `field:"optional" json:"targetName" yaml:"targetName"`
}

// Represents a SVCB record value.
type SvcbRecordValue struct {
	value string
}

// A SVCB record value in AliasMode.
func SvcbRecordValue_Alias(targetName *string) *SvcbRecordValue {
	return &SvcbRecordValue{value: "0 " + stringValue(targetName)}
}

// A SVCB record value in ServiceMode.
func SvcbRecordValue_Service(props *SvcbRecordServiceModeProps) *SvcbRecordValue {
	return &SvcbRecordValue{value: renderServiceMode(props)}
}

func (v *SvcbRecordValue) String() string {
	return "SvcbRecordValue('" + v.value + "')"
}

// Represents a HTTPS record value.
type HttpsRecordValue struct {
	value string
}

// A HTTPS record value in AliasMode.
func HttpsRecordValue_Alias(targetName *string) *HttpsRecordValue {
	return &HttpsRecordValue{value: "0 " + stringValue(targetName)}
}

// A HTTPS record value in ServiceMode.
func HttpsRecordValue_Service(props *SvcbRecordServiceModeProps) *HttpsRecordValue {
	return &HttpsRecordValue{value: renderServiceMode(props)}
}

func (v *HttpsRecordValue) String() string {
	return "HttpsRecordValue('" + v.value + "')"
}

func renderServiceMode(props *SvcbRecordServiceModeProps) string {
	if props == nil {
		props = &SvcbRecordServiceModeProps{}
	}
	priority := 1.0
	if props.Priority != nil {
		priority = *props.Priority
	}
	if priority < 1 || priority > 65535 {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "priority must be between 1 and 65535, got: %v", priority))
	}
	target := "."
	if props.TargetName != nil {
		target = *props.TargetName
	}

	parts := []string{formatNumber(&priority), target}
	if props.Mandatory != nil {
		parts = append(parts, "mandatory="+joinStrings(props.Mandatory, ","))
	}
	if props.Alpn != nil {
		parts = append(parts, "alpn="+joinStrings(props.Alpn, ","))
	}
	if props.NoDefaultAlpn != nil && *props.NoDefaultAlpn {
		if props.Alpn == nil || len(*props.Alpn) == 0 {
			panic(cfn.Errorf(cfn.CodeValidationFailed, "`alpn` must be specified when `noDefaultAlpn` is true"))
		}
		parts = append(parts, "no-default-alpn")
	}
	if props.Port != nil {
		parts = append(parts, "port="+formatNumber(props.Port))
	}
	if props.Ipv4hint != nil {
		parts = append(parts, "ipv4hint="+joinStrings(props.Ipv4hint, ","))
	}
	if props.Ech != nil {
		parts = append(parts, "ech="+*props.Ech)
	}
	if props.Ipv6hint != nil {
		parts = append(parts, "ipv6hint="+joinStrings(props.Ipv6hint, ","))
	}
	return strings.Join(parts, " ")
}

func joinStrings(list *[]*string, sep string) string {
	if list == nil {
		return ""
	}
	out := make([]string, 0, len(*list))
	for _, s := range *list {
		if s != nil {
			out = append(out, *s)
		}
	}
	return strings.Join(out, sep)
}
