//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func validateRequiredSetter(val *string) error {
	return nil
}

func validateNewCfnKeySigningKeyParameters(scope cfn.IConstruct, id *string, props *CfnKeySigningKeyProps) error {
	return nil
}
