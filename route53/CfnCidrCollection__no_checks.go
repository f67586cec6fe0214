//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func (j *CfnCidrCollection) validateSetLocationsParameters(val *[]*CfnCidrCollection_LocationProperty) error {
	return nil
}

func validateNewCfnCidrCollectionParameters(scope cfn.IConstruct, id *string, props *CfnCidrCollectionProps) error {
	return nil
}
