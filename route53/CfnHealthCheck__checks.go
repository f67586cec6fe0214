//go:build !no_runtime_type_checking

package route53

import (
	"fmt"

	"github.com/theory-cloud/zonetheory/cfn"
)

func (j *CfnHealthCheck) validateSetHealthCheckConfigParameters(val *CfnHealthCheck_HealthCheckConfigProperty) error {
	if val == nil {
		return fmt.Errorf("parameter val is required, but nil was provided")
	}
	if err := cfn.ValidateStruct(val, func() string { return "parameter val" }); err != nil {
		return err
	}

	return nil
}

func (j *CfnHealthCheck) validateSetHealthCheckTagsParameters(val *[]*CfnHealthCheck_HealthCheckTagProperty) error {
	return cfn.ValidateStruct(val, func() string { return "parameter val" })
}

func validateNewCfnHealthCheckParameters(scope cfn.IConstruct, id *string, props *CfnHealthCheckProps) error {
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
