package route53

import (
	"fmt"
	"strings"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// importedHostedZone represents a zone that exists outside this app.
type importedHostedZone struct {
	*cfn.Construct

	hostedZoneID string
	zoneName     *string
	nameServers  *[]*string
	factory      string
}

func newImportedHostedZone(scope cfn.IConstruct, id, hostedZoneID string, zoneName *string, factory string) *importedHostedZone {
	z := &importedHostedZone{
		Construct:    cfn.NewConstruct(scope, id),
		hostedZoneID: hostedZoneID,
		zoneName:     zoneName,
		factory:      factory,
	}
	z.SetHost(z)
	return z
}

func (z *importedHostedZone) HostedZoneId() *string {
	return jsii.String(z.hostedZoneID)
}

func (z *importedHostedZone) HostedZoneArn() *string {
	return jsii.String(hostedZoneArn(z, z.hostedZoneID))
}

func (z *importedHostedZone) HostedZoneNameServers() *[]*string {
	return z.nameServers
}

func (z *importedHostedZone) ZoneName() *string {
	if z.zoneName == nil {
		panic(cfn.Errorf(cfn.CodeUnsupported,
			"Cannot reference `zoneName` when using `%s()`. A construct consuming this hosted zone may be trying to reference its `zoneName`. If this is the case, use `fromHostedZoneAttributes()` or `fromLookup()` instead.",
			z.factory))
	}
	return z.zoneName
}

type importedPublicHostedZone struct{ *importedHostedZone }

func (z *importedPublicHostedZone) publicHostedZone() {}

type importedPrivateHostedZone struct{ *importedHostedZone }

func (z *importedPrivateHostedZone) privateHostedZone() {}

// Import a Route 53 hosted zone defined either outside the CDK, or in a different CDK stack.
//
// Use when hosted zone ID is known. The zone name is unavailable on the returned zone.
func HostedZone_FromHostedZoneId(scope cfn.IConstruct, id *string, hostedZoneId *string) IHostedZone {
	if err := validateHostedZone_FromHostedZoneIdParameters(scope, id, hostedZoneId); err != nil {
		panic(err)
	}
	return newImportedHostedZone(scope, *id, *hostedZoneId, nil, "HostedZone.fromHostedZoneId")
}

// Imports a hosted zone from another stack.
//
// Use when both hosted zone ID and hosted zone name are known.
func HostedZone_FromHostedZoneAttributes(scope cfn.IConstruct, id *string, attrs *HostedZoneAttributes) IHostedZone {
	if err := validateHostedZone_FromHostedZoneAttributesParameters(scope, id, attrs); err != nil {
		panic(err)
	}
	return newImportedHostedZone(scope, *id, *attrs.HostedZoneId, attrs.ZoneName, "HostedZone.fromHostedZoneAttributes")
}

// Lookup a hosted zone in the current account/region based on query parameters.
//
// The result is read from context. When it is not there yet, a dummy zone with id DUMMY is
// returned and the lookup is recorded in App.MissingContext so it can be resolved and the
// app synthesized again.
func HostedZone_FromLookup(scope cfn.IConstruct, id *string, query *HostedZoneProviderProps) IHostedZone {
	if err := validateHostedZone_FromLookupParameters(scope, id, query); err != nil {
		panic(err)
	}
	domain := strings.TrimSuffix(*query.DomainName, ".")
	result := cfn.GetContextValue(scope, cfn.GetContextValueOptions{
		Provider:   HostedZoneContextProvider,
		Props:      query.contextProps(),
		DummyValue: map[string]any{"Id": "DUMMY", "Name": domain},
	})
	response, err := decodeHostedZoneResponse(result.Value)
	if err != nil {
		panic(err)
	}
	zoneID := strings.TrimPrefix(response.Id, "/hostedzone/")
	name := strings.TrimSuffix(response.Name, ".")
	if name == "" {
		name = domain
	}
	return HostedZone_FromHostedZoneAttributes(scope, id, &HostedZoneAttributes{
		HostedZoneId: jsii.String(zoneID),
		ZoneName:     jsii.String(name),
	})
}

// Import a Route 53 public hosted zone defined either outside the CDK, or in a different CDK stack.
func PublicHostedZone_FromPublicHostedZoneId(scope cfn.IConstruct, id *string, publicHostedZoneId *string) IPublicHostedZone {
	if err := validateHostedZone_FromHostedZoneIdParameters(scope, id, publicHostedZoneId); err != nil {
		panic(err)
	}
	return &importedPublicHostedZone{newImportedHostedZone(scope, *id, *publicHostedZoneId, nil, "PublicHostedZone.fromPublicHostedZoneId")}
}

// Imports a public hosted zone from another stack.
func PublicHostedZone_FromPublicHostedZoneAttributes(scope cfn.IConstruct, id *string, attrs *PublicHostedZoneAttributes) IPublicHostedZone {
	var base *HostedZoneAttributes
	if attrs != nil {
		base = &attrs.HostedZoneAttributes
	}
	if err := validateHostedZone_FromHostedZoneAttributesParameters(scope, id, base); err != nil {
		panic(err)
	}
	return &importedPublicHostedZone{newImportedHostedZone(scope, *id, *attrs.HostedZoneId, attrs.ZoneName, "PublicHostedZone.fromPublicHostedZoneAttributes")}
}

// Import a Route 53 private hosted zone defined either outside the CDK, or in a different CDK stack.
func PrivateHostedZone_FromPrivateHostedZoneId(scope cfn.IConstruct, id *string, privateHostedZoneId *string) IPrivateHostedZone {
	if err := validateHostedZone_FromHostedZoneIdParameters(scope, id, privateHostedZoneId); err != nil {
		panic(err)
	}
	return &importedPrivateHostedZone{newImportedHostedZone(scope, *id, *privateHostedZoneId, nil, "PrivateHostedZone.fromPrivateHostedZoneId")}
}

func decodeHostedZoneResponse(v any) (*HostedZoneContextResponse, error) {
	switch val := v.(type) {
	case *HostedZoneContextResponse:
		return val, nil
	case HostedZoneContextResponse:
		return &val, nil
	case map[string]any:
		id, _ := val["Id"].(string)
		name, _ := val["Name"].(string)
		if id == "" {
			return nil, cfn.Errorf(cfn.CodeLookupFailed, "hosted zone lookup returned no Id: %v", val)
		}
		return &HostedZoneContextResponse{Id: id, Name: name}, nil
	case map[string]string:
		return decodeHostedZoneResponse(map[string]any{"Id": val["Id"], "Name": val["Name"]})
	default:
		return nil, cfn.Errorf(cfn.CodeLookupFailed, "unexpected hosted zone lookup value %s", fmt.Sprintf("%T", v))
	}
}
