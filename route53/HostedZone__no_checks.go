//go:build no_runtime_type_checking

package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Building without runtime type checking enabled, so all the below just return nil

func validateAddVpcParameters(vpc *Vpc) error {
	return nil
}

func validateEnableDnssecParameters(options *ZoneSigningOptions) error {
	return nil
}

func validateHostedZone_FromHostedZoneIdParameters(scope cfn.IConstruct, id *string, hostedZoneId *string) error {
	return nil
}

func validateHostedZone_FromHostedZoneAttributesParameters(scope cfn.IConstruct, id *string, attrs *HostedZoneAttributes) error {
	return nil
}

func validateHostedZone_FromLookupParameters(scope cfn.IConstruct, id *string, query *HostedZoneProviderProps) error {
	return nil
}

func validateNewHostedZoneParameters(scope cfn.IConstruct, id *string, props *HostedZoneProps) error {
	return nil
}

func validateNewPublicHostedZoneParameters(scope cfn.IConstruct, id *string, props *PublicHostedZoneProps) error {
	return nil
}

func validateNewPrivateHostedZoneParameters(scope cfn.IConstruct, id *string, props *PrivateHostedZoneProps) error {
	return nil
}
