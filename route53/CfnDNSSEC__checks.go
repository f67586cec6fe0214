//go:build !no_runtime_type_checking

package route53

import (
	"fmt"

	"github.com/theory-cloud/zonetheory/cfn"
)

func validateNewCfnDNSSECParameters(scope cfn.IConstruct, id *string, props *CfnDNSSECProps) error {
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
