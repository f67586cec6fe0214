//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func (j *CfnRecordSet) validateSetNameParameters(val *string) error {
	return nil
}

func (j *CfnRecordSet) validateSetTypeParameters(val *string) error {
	return nil
}

func (j *CfnRecordSet) validateSetAliasTargetParameters(val *CfnRecordSet_AliasTargetProperty) error {
	return nil
}

func (j *CfnRecordSet) validateSetCidrRoutingConfigParameters(val *CfnRecordSet_CidrRoutingConfigProperty) error {
	return nil
}

func (j *CfnRecordSet) validateSetGeoProximityLocationParameters(val *CfnRecordSet_GeoProximityLocationProperty) error {
	return nil
}

func validateNewCfnRecordSetParameters(scope cfn.IConstruct, id *string, props *CfnRecordSetProps) error {
	return nil
}
