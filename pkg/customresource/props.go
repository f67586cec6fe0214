package customresource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/theory-cloud/zonetheory/cfn"
)

// flexInt accepts numbers and numeric strings; CloudFormation stringifies scalar
// properties before they reach the handler.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %s", raw)
	}
	*f = flexInt(n)
	return nil
}

type delegationProps struct {
	AssumeRoleArn            string   `field:"required" json:"AssumeRoleArn"`
	AssumeRoleRegion         string   `field:"optional" json:"AssumeRoleRegion"`
	ParentZoneName           string   `field:"optional" json:"ParentZoneName"`
	ParentZoneId             string   `field:"optional" json:"ParentZoneId"`
	DelegatedZoneName        string   `field:"required" json:"DelegatedZoneName"`
	DelegatedZoneNameServers []string `field:"required" json:"DelegatedZoneNameServers"`
	TTL                      flexInt  `field:"required" json:"TTL"`
}

type deleteExistingProps struct {
	HostedZoneId string `field:"required" json:"HostedZoneId"`
	RecordName   string `field:"required" json:"RecordName"`
	RecordType   string `field:"required" json:"RecordType"`
}

// decodeProps maps ResourceProperties onto a typed struct and checks required fields.
func decodeProps(properties map[string]any, out any) error {
	data, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("encode resource properties: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return cfn.Errorf(cfn.CodeValidationFailed, "invalid resource properties: %v", err)
	}
	return cfn.ValidateStruct(out, func() string { return "ResourceProperties" })
}
