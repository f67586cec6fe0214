//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func (j *CfnHealthCheck) validateSetHealthCheckConfigParameters(val *CfnHealthCheck_HealthCheckConfigProperty) error {
	return nil
}

func (j *CfnHealthCheck) validateSetHealthCheckTagsParameters(val *[]*CfnHealthCheck_HealthCheckTagProperty) error {
	return nil
}

func validateNewCfnHealthCheckParameters(scope cfn.IConstruct, id *string, props *CfnHealthCheckProps) error {
	return nil
}
