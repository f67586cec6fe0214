//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func (j *CfnRecordSetGroup) validateSetRecordSetsParameters(val *[]*CfnRecordSetGroup_RecordSetProperty) error {
	return nil
}

func validateNewCfnRecordSetGroupParameters(scope cfn.IConstruct, id *string, props *CfnRecordSetGroupProps) error {
	return nil
}
