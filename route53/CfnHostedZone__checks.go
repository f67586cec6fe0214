//go:build !no_runtime_type_checking

package route53

import (
	"fmt"

	"github.com/theory-cloud/zonetheory/cfn"
)

func (j *CfnHostedZone) validateSetNameParameters(val *string) error {
	if val == nil {
		return fmt.Errorf("parameter val is required, but nil was provided")
	}

	return nil
}

func (j *CfnHostedZone) validateSetHostedZoneTagsParameters(val *[]*CfnHostedZone_HostedZoneTagProperty) error {
	return cfn.ValidateStruct(val, func() string { return "parameter val" })
}

func (j *CfnHostedZone) validateSetQueryLoggingConfigParameters(val *CfnHostedZone_QueryLoggingConfigProperty) error {
	return cfn.ValidateStruct(val, func() string { return "parameter val" })
}

func (j *CfnHostedZone) validateSetVpcsParameters(val *[]*CfnHostedZone_VPCProperty) error {
	return cfn.ValidateStruct(val, func() string { return "parameter val" })
}

func validateNewCfnHostedZoneParameters(scope cfn.IConstruct, id *string, props *CfnHostedZoneProps) error {
	if scope == nil {
		return fmt.Errorf("parameter scope is required, but nil was provided")
	}

	if id == nil {
		return fmt.Errorf("parameter id is required, but nil was provided")
	}

	if props == nil {
		return fmt.Errorf("parameter props is required, but nil was provided")
	}
	if err := cfn.ValidateStruct(props, func() string { return "parameter props" }); err != nil {
		return err
	}

	return nil
}
