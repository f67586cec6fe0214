//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func (j *CfnHostedZone) validateSetNameParameters(val *string) error {
	return nil
}

func (j *CfnHostedZone) validateSetHostedZoneTagsParameters(val *[]*CfnHostedZone_HostedZoneTagProperty) error {
	return nil
}

func (j *CfnHostedZone) validateSetQueryLoggingConfigParameters(val *CfnHostedZone_QueryLoggingConfigProperty) error {
	return nil
}

func (j *CfnHostedZone) validateSetVpcsParameters(val *[]*CfnHostedZone_VPCProperty) error {
	return nil
}

func validateNewCfnHostedZoneParameters(scope cfn.IConstruct, id *string, props *CfnHostedZoneProps) error {
	return nil
}
