//go:build !no_runtime_type_checking

package route53

import (
	"fmt"

	"github.com/theory-cloud/zonetheory/cfn"
)

func validateAddVpcParameters(vpc *Vpc) error {
	if vpc == nil {
		return fmt.Errorf("parameter vpc is required, but nil was provided")
	}
	if err := cfn.ValidateStruct(vpc, func() string { return "parameter vpc" }); err != nil {
		return err
	}

	return nil
}

func validateEnableDnssecParameters(options *ZoneSigningOptions) error {
	if options == nil {
		return fmt.Errorf("parameter options is required, but nil was provided")
	}
	if err := cfn.ValidateStruct(options, func() string { return "parameter options" }); err != nil {
		return err
	}

	return nil
}

func validateHostedZone_FromHostedZoneIdParameters(scope cfn.IConstruct, id *string, hostedZoneId *string) error {
	if scope == nil {
		return fmt.Errorf("parameter scope is required, but nil was provided")
	}

	if id == nil {
		return fmt.Errorf("parameter id is required, but nil was provided")
	}

	if hostedZoneId == nil {
		return fmt.Errorf("parameter hostedZoneId is required, but nil was provided")
	}

	return nil
}

func validateHostedZone_FromHostedZoneAttributesParameters(scope cfn.IConstruct, id *string, attrs *HostedZoneAttributes) error {
	if scope == nil {
		return fmt.Errorf("parameter scope is required, but nil was provided")
	}

	if id == nil {
		return fmt.Errorf("parameter id is required, but nil was provided")
	}

	if attrs == nil {
		return fmt.Errorf("parameter attrs is required, but nil was provided")
	}
	if err := cfn.ValidateStruct(attrs, func() string { return "parameter attrs" }); err != nil {
		return err
	}

	return nil
}

func validateHostedZone_FromLookupParameters(scope cfn.IConstruct, id *string, query *HostedZoneProviderProps) error {
	if scope == nil {
		return fmt.Errorf("parameter scope is required, but nil was provided")
	}

	if id == nil {
		return fmt.Errorf("parameter id is required, but nil was provided")
	}

	if query == nil {
		return fmt.Errorf("parameter query is required, but nil was provided")
	}
	if err := cfn.ValidateStruct(query, func() string { return "parameter query" }); err != nil {
		return err
	}

	return nil
}

func validateNewHostedZoneParameters(scope cfn.IConstruct, id *string, props *HostedZoneProps) error {
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

func validateNewPublicHostedZoneParameters(scope cfn.IConstruct, id *string, props *PublicHostedZoneProps) error {
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

func validateNewPrivateHostedZoneParameters(scope cfn.IConstruct, id *string, props *PrivateHostedZoneProps) error {
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
