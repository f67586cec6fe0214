package route53_test

import (
	"strings"
	"testing"

	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
	"github.com/theory-cloud/zonetheory/testkit"
)

func TestPublicHostedZone_Render(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	zone := route53.NewPublicHostedZone(stack, jsii.String("Public"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{
			ZoneName: jsii.String("example.com"),
			Comment:  jsii.String("primary zone"),
		},
		CaaAmazon: jsii.Bool(true),
	})

	assert.Equal(t, "example.com", *zone.ZoneName())
	require.NotNil(t, zone.HostedZoneNameServers())

	tmpl := testkit.FromStack(t, stack)
	tmpl.ResourceCountIs(t, route53.CfnHostedZone_CFN_RESOURCE_TYPE_NAME, 1)
	tmpl.HasResourceProperties(t, route53.CfnHostedZone_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"Name":             "example.com.",
		"HostedZoneConfig": map[string]any{"Comment": "primary zone"},
	})
	tmpl.HasResourceProperties(t, route53.CfnRecordSet_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"Name":            "example.com.",
		"Type":            "CAA",
		"HostedZoneId":    map[string]any{"Ref": zone.CfnHostedZone().LogicalId()},
		"ResourceRecords": []any{`0 issue "amazon.com"`},
	})
}

func TestPublicHostedZone_RejectsVpc(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	zone := route53.NewPublicHostedZone(stack, jsii.String("Public"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
	})

	err := cfn.Try(func() { zone.AddVpc(&route53.Vpc{VpcId: jsii.String("vpc-1")}) })
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeUnsupported))
}

func TestHostedZone_InvalidNames(t *testing.T) {
	cases := map[string]string{
		"example.com.":                  "zone name must not end with a dot",
		"bad name.example.com":          "zone names can only contain",
		strings.Repeat("a", 64) + ".io": "zone name labels cannot be more than 63 bytes long",
	}
	for name, want := range cases {
		stack := testkit.New().Stack("Zones")
		err := cfn.Try(func() {
			route53.NewPublicHostedZone(stack, jsii.String("Zone"), &route53.PublicHostedZoneProps{
				CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String(name)},
			})
		})
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), want)
	}

	stack := testkit.New().Stack("Zones")
	err := cfn.Try(func() {
		route53.NewPublicHostedZone(stack, jsii.String("Zone"), &route53.PublicHostedZoneProps{})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required property 'zoneName' is missing")
}

func TestPrivateHostedZone_Vpcs(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	zone := route53.NewPrivateHostedZone(stack, jsii.String("Private"), &route53.PrivateHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("internal.example.com")},
		Vpc:                   &route53.Vpc{VpcId: jsii.String("vpc-1")},
	})
	zone.AddVpc(&route53.Vpc{VpcId: jsii.String("vpc-2"), Region: jsii.String("eu-west-1")})

	assert.Nil(t, zone.HostedZoneNameServers())

	tmpl := testkit.FromStack(t, stack)
	tmpl.HasResourceProperties(t, route53.CfnHostedZone_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"Name": "internal.example.com.",
		"VPCs": []any{
			map[string]any{"VPCId": "vpc-1", "VPCRegion": "us-east-1"},
			map[string]any{"VPCId": "vpc-2", "VPCRegion": "eu-west-1"},
		},
	})

	err := cfn.Try(func() {
		route53.NewPrivateHostedZone(stack, jsii.String("NoVpc"), &route53.PrivateHostedZoneProps{
			CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("other.example.com")},
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required property 'vpc' is missing")
}

func TestPublicHostedZone_AddDelegation(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	parent := route53.NewPublicHostedZone(stack, jsii.String("Parent"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
	})
	child := route53.NewPublicHostedZone(stack, jsii.String("Child"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("sub.example.com")},
	})
	parent.AddDelegation(child, nil)

	tmpl := testkit.FromStack(t, stack)
	tmpl.HasResourceProperties(t, route53.CfnRecordSet_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"Name":            "sub.example.com.",
		"Type":            "NS",
		"TTL":             "172800",
		"HostedZoneId":    map[string]any{"Ref": parent.CfnHostedZone().LogicalId()},
		"ResourceRecords": map[string]any{"Fn::GetAtt": []any{child.CfnHostedZone().LogicalId(), "NameServers"}},
	})

	imported := route53.PublicHostedZone_FromPublicHostedZoneId(stack, jsii.String("Imported"), jsii.String("ZIMPORTED"))
	err := cfn.Try(func() { parent.AddDelegation(imported, nil) })
	require.Error(t, err)
}

func TestZoneDelegationRecord_LiteralNameServers(t *testing.T) {
	stack, zone := newZone(t, testkit.New())
	route53.NewZoneDelegationRecord(stack, jsii.String("Ns"), &route53.ZoneDelegationRecordProps{
		RecordSetOptions: route53.RecordSetOptions{Zone: zone, RecordName: jsii.String("team")},
		NameServers:      jsii.Strings("ns-1.awsdns-01.org", "ns-2.awsdns-02.com."),
	})

	props := onlyRecord(t, stack)
	assert.Equal(t, []any{"ns-1.awsdns-01.org.", "ns-2.awsdns-02.com."}, props["ResourceRecords"])
	assert.Equal(t, "team.example.com.", props["Name"])
}

func TestCrossAccountZoneDelegationRecord(t *testing.T) {
	stack := testkit.New().Stack("Child")
	child := route53.NewPublicHostedZone(stack, jsii.String("Child"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("sub.example.com")},
	})

	base := func() *route53.CrossAccountZoneDelegationRecordProps {
		return &route53.CrossAccountZoneDelegationRecordProps{
			DelegatedZone:     child,
			DelegationRoleArn: jsii.String("arn:aws:iam::111111111111:role/delegation"),
		}
	}

	err := cfn.Try(func() { route53.NewCrossAccountZoneDelegationRecord(stack, jsii.String("Neither"), base()) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "At least one of parentHostedZoneName or parentHostedZoneId is required")

	both := base()
	both.ParentHostedZoneName = jsii.String("example.com")
	both.ParentHostedZoneId = jsii.String("ZPARENT")
	err = cfn.Try(func() { route53.NewCrossAccountZoneDelegationRecord(stack, jsii.String("Both"), both) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Only one of parentHostedZoneName and parentHostedZoneId is supported")

	props := base()
	props.ParentHostedZoneName = jsii.String("example.com")
	props.RemovalPolicy = cfn.RemovalPolicy_RETAIN
	record := route53.NewCrossAccountZoneDelegationRecord(stack, jsii.String("Delegate"), props)

	tmpl := testkit.FromStack(t, stack)
	require.Contains(t, tmpl.Parameters, route53.CustomResourceServiceTokenParameter)
	tmpl.HasResource(t, route53.CrossAccountZoneDelegationResourceType, map[string]any{
		"Properties": map[string]any{
			"ServiceToken":      map[string]any{"Ref": route53.CustomResourceServiceTokenParameter},
			"AssumeRoleArn":     "arn:aws:iam::111111111111:role/delegation",
			"ParentZoneName":    "example.com",
			"DelegatedZoneName": "sub.example.com",
			"TTL":               172800,
		},
		"DeletionPolicy": "Retain",
		"DependsOn":      []any{child.CfnHostedZone().LogicalId()},
	})
	res := tmpl.Resources[record.CustomResource().LogicalId()]
	require.NotNil(t, res)
	assert.NotContains(t, res.Properties, "ParentZoneId")
}

func TestPublicHostedZone_CrossAccountRole(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	zone := route53.NewPublicHostedZone(stack, jsii.String("Parent"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps:               route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
		CrossAccountZoneDelegationPrincipal: jsii.String("111111111111"),
		CrossAccountZoneDelegationRoleName:  jsii.String("DelegationRole"),
	})
	require.NotNil(t, zone.CrossAccountZoneDelegationRoleArn())

	tmpl := testkit.FromStack(t, stack)
	tmpl.HasResourceProperties(t, "AWS::IAM::Role", map[string]any{"RoleName": "DelegationRole"})

	err := cfn.Try(func() {
		route53.NewPublicHostedZone(stack, jsii.String("Bad"), &route53.PublicHostedZoneProps{
			CommonHostedZoneProps:              route53.CommonHostedZoneProps{ZoneName: jsii.String("other.com")},
			CrossAccountZoneDelegationRoleName: jsii.String("Orphan"),
		})
	})
	require.Error(t, err)
}

func TestPublicHostedZone_InvalidRoleLeavesNoChildren(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	err := cfn.Try(func() {
		route53.NewPublicHostedZone(stack, jsii.String("Bad"), &route53.PublicHostedZoneProps{
			CommonHostedZoneProps:              route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
			CaaAmazon:                          jsii.Bool(true),
			CrossAccountZoneDelegationRoleName: jsii.String("Orphan"),
		})
	})
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeValidationFailed))
	assert.Empty(t, stack.Node().Children())
	assert.Empty(t, stack.Resources())

	route53.NewPublicHostedZone(stack, jsii.String("Bad"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
		CaaAmazon:             jsii.Bool(true),
	})
	testkit.FromStack(t, stack).ResourceCountIs(t, route53.CfnRecordSet_CFN_RESOURCE_TYPE_NAME, 1)
}

func TestHostedZone_FromLookup(t *testing.T) {
	stack := testkit.New().Stack("Lookup")
	zone := route53.HostedZone_FromLookup(stack, jsii.String("Zone"), &route53.HostedZoneProviderProps{
		DomainName: jsii.String("example.com"),
	})
	assert.Equal(t, "DUMMY", *zone.HostedZoneId())
	assert.Equal(t, "example.com", *zone.ZoneName())

	missing := stack.App().MissingContext()
	require.Len(t, missing, 1)
	key := "hosted-zone:account=123456789012:domainName=example.com:region=us-east-1"
	assert.Equal(t, key, missing[0].Key)
	assert.Equal(t, route53.HostedZoneContextProvider, missing[0].Provider)

	resolved := testkit.New().WithContext(key, map[string]any{"Id": "/hostedzone/ZREAL", "Name": "example.com."}).Stack("Lookup")
	zone = route53.HostedZone_FromLookup(resolved, jsii.String("Zone"), &route53.HostedZoneProviderProps{
		DomainName: jsii.String("example.com"),
	})
	assert.Equal(t, "ZREAL", *zone.HostedZoneId())
	assert.Equal(t, "example.com", *zone.ZoneName())
	assert.Empty(t, resolved.App().MissingContext())
}

func TestHostedZone_FromLookupNeedsEnvironment(t *testing.T) {
	stack := testkit.New().AgnosticStack("Lookup")
	err := cfn.Try(func() {
		route53.HostedZone_FromLookup(stack, jsii.String("Zone"), &route53.HostedZoneProviderProps{
			DomainName: jsii.String("example.com"),
		})
	})
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeLookupFailed))
}

func TestHostedZone_FromHostedZoneIdHasNoName(t *testing.T) {
	stack := testkit.New().Stack("Import")
	zone := route53.HostedZone_FromHostedZoneId(stack, jsii.String("Zone"), jsii.String("Z123"))
	assert.Equal(t, "Z123", *zone.HostedZoneId())

	err := cfn.Try(func() { zone.ZoneName() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot reference `zoneName` when using `HostedZone.fromHostedZoneId()`")
}

func TestHostedZone_EnableDnssec(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	zone := route53.NewPublicHostedZone(stack, jsii.String("Signed"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
	})
	ksk := zone.EnableDnssec(&route53.ZoneSigningOptions{
		KmsKeyArn: jsii.String("arn:aws:kms:us-east-1:123456789012:key/abc"),
	})

	tmpl := testkit.FromStack(t, stack)
	tmpl.ResourceCountIs(t, route53.CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME, 1)
	tmpl.HasResourceProperties(t, route53.CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"KeyManagementServiceArn": "arn:aws:kms:us-east-1:123456789012:key/abc",
		"Status":                  "ACTIVE",
	})
	tmpl.HasResource(t, route53.CfnDNSSEC_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"DependsOn": []any{ksk.CfnKeySigningKey().LogicalId()},
	})
}
