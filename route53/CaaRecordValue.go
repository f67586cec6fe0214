package route53

import (
	"fmt"
	"strings"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The CAA tag.
type CaaTag string

const (
	// Explicity authorizes a single certificate authority to issue a certificate (any type) for the hostname.
	CaaTag_ISSUE CaaTag = "ISSUE"
	// Explicity authorizes a single certificate authority to issue a wildcard certificate (and only wildcard) for the hostname.
	CaaTag_ISSUEWILD CaaTag = "ISSUEWILD"
	// Specifies a URL to which a certificate authority may report policy violations.
	CaaTag_IODEF CaaTag = "IODEF"
)

// Value returns the tag as written in the record.
func (t CaaTag) Value() string {
	return strings.ToLower(string(t))
}

func (t CaaTag) String() string {
	return "CaaTag." + string(t)
}

// Properties for a CAA record value.
type CaaRecordValue struct {
	// The flag.
	Flag *float64 `field:"required" json:"flag" yaml:"flag"`
	// The tag.
	Tag CaaTag `field:"required" json:"tag" yaml:"tag"`
	// The value associated with the tag.
	Value *string `field:"required" json:"value" yaml:"value"`
}

func (v CaaRecordValue) String() string {
	return cfn.Repr("CaaRecordValue", v)
}

// render formats the value as `flag tag "value"`.
func (v *CaaRecordValue) render() string {
	return fmt.Sprintf("%s %s \"%s\"", formatNumber(v.Flag), v.Tag.Value(), stringValue(v.Value))
}
