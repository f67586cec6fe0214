//go:build !no_runtime_type_checking

package route53

import (
	"fmt"

	"github.com/theory-cloud/zonetheory/cfn"
)

func validateHealthCheck_FromHealthCheckIdParameters(scope cfn.IConstruct, id *string, healthCheckId *string) error {
	if scope == nil {
		return fmt.Errorf("parameter scope is required, but nil was provided")
	}

	if id == nil {
		return fmt.Errorf("parameter id is required, but nil was provided")
	}

	if healthCheckId == nil {
		return fmt.Errorf("parameter healthCheckId is required, but nil was provided")
	}

	return nil
}
