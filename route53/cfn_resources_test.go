package route53_test

import (
	"testing"

	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
	"github.com/theory-cloud/zonetheory/testkit"
)

func TestCfnRecordSet_RequiredOnlyRendersSetFields(t *testing.T) {
	stack := testkit.New().Stack("Records")
	rec := route53.NewCfnRecordSet(stack, jsii.String("Www"), &route53.CfnRecordSetProps{
		Name: jsii.String("www.example.com."),
		Type: jsii.String("A"),
	})

	assert.Equal(t, "CfnRecordSet(name='www.example.com.', type='A')", rec.String())

	tmpl := testkit.FromStack(t, stack)
	id, res := tmpl.OnlyResource(t, route53.CfnRecordSet_CFN_RESOURCE_TYPE_NAME)
	assert.Equal(t, "Www", id)
	assert.Equal(t, map[string]any{"Name": "www.example.com.", "Type": "A"}, res.Properties)
}

func TestCfnRecordSet_MissingRequiredProperty(t *testing.T) {
	stack := testkit.New().Stack("Records")

	err := cfn.Try(func() {
		route53.NewCfnRecordSet(stack, jsii.String("NoName"), &route53.CfnRecordSetProps{Type: jsii.String("A")})
	})
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeRequiredMissing))
	assert.Contains(t, err.Error(), "Required property 'name' is missing")

	err = cfn.Try(func() {
		route53.NewCfnRecordSet(stack, jsii.String("BadAlias"), &route53.CfnRecordSetProps{
			Name:        jsii.String("a.example.com."),
			Type:        jsii.String("A"),
			AliasTarget: &route53.CfnRecordSet_AliasTargetProperty{DnsName: jsii.String("d.cloudfront.net")},
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required property 'aliasTarget.hostedZoneId' is missing")

	rec := route53.NewCfnRecordSet(stack, jsii.String("Ok"), &route53.CfnRecordSetProps{
		Name: jsii.String("b.example.com."),
		Type: jsii.String("A"),
	})
	require.Error(t, cfn.Try(func() { rec.SetName(nil) }))
	assert.Equal(t, "b.example.com.", *rec.Name())
}

func TestCfnRecordSet_DoesNotCheckRoutingPolicies(t *testing.T) {
	stack := testkit.New().Stack("Records")
	route53.NewCfnRecordSet(stack, jsii.String("Mixed"), &route53.CfnRecordSetProps{
		Name:            jsii.String("mixed.example.com."),
		Type:            jsii.String("A"),
		HostedZoneId:    jsii.String("Z1"),
		ResourceRecords: jsii.Strings("192.0.2.1"),
		Ttl:             jsii.String("60"),
		Weight:          jsii.Number(10),
		Region:          jsii.String("us-east-1"),
		GeoLocation:     &route53.CfnRecordSet_GeoLocationProperty{CountryCode: jsii.String("DE")},
	})

	tmpl := testkit.FromStack(t, stack)
	_, res := tmpl.OnlyResource(t, route53.CfnRecordSet_CFN_RESOURCE_TYPE_NAME)
	assert.Equal(t, float64(10), res.Properties["Weight"])
	assert.Equal(t, "us-east-1", res.Properties["Region"])
	assert.Equal(t, map[string]any{"CountryCode": "DE"}, res.Properties["GeoLocation"])
	assert.NotContains(t, res.Properties, "SetIdentifier")
}

func TestCfnRecordSet_GettersReturnConstructionValues(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[a-z]{1,12}\.example\.com\.`).Draw(rt, "name")
		typ := rapid.SampledFrom([]string{"A", "AAAA", "CNAME", "TXT", "MX"}).Draw(rt, "type")
		values := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,20}`), 0, 8).Draw(rt, "values")
		weight := rapid.Float64Range(0, 255).Draw(rt, "weight")
		comment := rapid.String().Draw(rt, "comment")

		stack := testkit.New().Stack("Records")
		rec := route53.NewCfnRecordSet(stack, jsii.String("Rec"), &route53.CfnRecordSetProps{
			Name:            &name,
			Type:            &typ,
			ResourceRecords: jsii.Strings(values...),
			Weight:          &weight,
			Comment:         &comment,
		})

		if *rec.Name() != name || *rec.Type() != typ || *rec.Weight() != weight || *rec.Comment() != comment {
			rt.Fatalf("getter mismatch: %s", rec)
		}
		got := *rec.ResourceRecords()
		if len(got) != len(values) {
			rt.Fatalf("got %d values, want %d", len(got), len(values))
		}
		for i := range values {
			if *got[i] != values[i] {
				rt.Fatalf("value %d: got %q, want %q", i, *got[i], values[i])
			}
		}
		if rec.SetIdentifier() != nil || rec.AliasTarget() != nil {
			rt.Fatalf("unset optional property reported a value")
		}
	})
}

func TestCfnHostedZone_VpcOrderPreserved(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	vpcs := []*route53.CfnHostedZone_VPCProperty{
		{VpcId: jsii.String("vpc-3"), VpcRegion: jsii.String("eu-west-1")},
		{VpcId: jsii.String("vpc-1"), VpcRegion: jsii.String("us-east-1")},
		{VpcId: jsii.String("vpc-2"), VpcRegion: jsii.String("us-west-2")},
	}
	zone := route53.NewCfnHostedZone(stack, jsii.String("Internal"), &route53.CfnHostedZoneProps{
		Name: jsii.String("internal.example.com."),
		Vpcs: &vpcs,
		HostedZoneTags: &[]*route53.CfnHostedZone_HostedZoneTagProperty{
			{Key: jsii.String("team"), Value: jsii.String("dns")},
			{Key: jsii.String("env"), Value: jsii.String("prod")},
		},
	})

	got := *zone.Vpcs()
	require.Len(t, got, 3)
	for i := range vpcs {
		assert.Equal(t, *vpcs[i], *got[i])
	}

	tmpl := testkit.FromStack(t, stack)
	tmpl.HasResourceProperties(t, route53.CfnHostedZone_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"Name": "internal.example.com.",
		"VPCs": []any{
			map[string]any{"VPCId": "vpc-3", "VPCRegion": "eu-west-1"},
			map[string]any{"VPCId": "vpc-1", "VPCRegion": "us-east-1"},
			map[string]any{"VPCId": "vpc-2", "VPCRegion": "us-west-2"},
		},
		"HostedZoneTags": []any{
			map[string]any{"Key": "team", "Value": "dns"},
			map[string]any{"Key": "env", "Value": "prod"},
		},
	})
}

func TestCfnHostedZone_NestedRequiredProperty(t *testing.T) {
	stack := testkit.New().Stack("Zones")
	err := cfn.Try(func() {
		route53.NewCfnHostedZone(stack, jsii.String("Zone"), &route53.CfnHostedZoneProps{
			Name: jsii.String("example.com."),
			Vpcs: &[]*route53.CfnHostedZone_VPCProperty{{VpcId: jsii.String("vpc-1")}},
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required property 'vpcs.vpcRegion' is missing")
}

func TestCfnRecordSetGroup_KeepsRecordOrder(t *testing.T) {
	stack := testkit.New().Stack("Records")
	route53.NewCfnRecordSetGroup(stack, jsii.String("Group"), &route53.CfnRecordSetGroupProps{
		HostedZoneName: jsii.String("example.com."),
		RecordSets: &[]*route53.CfnRecordSetGroup_RecordSetProperty{
			{Name: jsii.String("b.example.com."), Type: jsii.String("A"), Ttl: jsii.String("60"), ResourceRecords: jsii.Strings("192.0.2.2")},
			{Name: jsii.String("a.example.com."), Type: jsii.String("A"), Ttl: jsii.String("60"), ResourceRecords: jsii.Strings("192.0.2.1")},
		},
	})

	tmpl := testkit.FromStack(t, stack)
	_, res := tmpl.OnlyResource(t, route53.CfnRecordSetGroup_CFN_RESOURCE_TYPE_NAME)
	sets, ok := res.Properties["RecordSets"].([]any)
	require.True(t, ok)
	require.Len(t, sets, 2)
	assert.Equal(t, "b.example.com.", sets[0].(map[string]any)["Name"])
	assert.Equal(t, "a.example.com.", sets[1].(map[string]any)["Name"])
}

func TestCaaRecordValue_ReprAndFields(t *testing.T) {
	v := route53.CaaRecordValue{
		Flag:  jsii.Number(0),
		Tag:   route53.CaaTag_ISSUE,
		Value: jsii.String("letsencrypt.org"),
	}

	assert.Equal(t, float64(0), *v.Flag)
	assert.Equal(t, route53.CaaTag_ISSUE, v.Tag)
	assert.Equal(t, "letsencrypt.org", *v.Value)
	assert.Equal(t, "CaaRecordValue(flag=0, tag=CaaTag.ISSUE, value='letsencrypt.org')", v.String())
}

func TestSrvRecordValue_ReprAndFields(t *testing.T) {
	v := route53.SrvRecordValue{
		HostName: jsii.String("sip.example.com"),
		Port:     jsii.Number(5060),
		Priority: jsii.Number(10),
		Weight:   jsii.Number(0),
	}

	assert.Equal(t, "sip.example.com", *v.HostName)
	assert.Equal(t, float64(5060), *v.Port)
	assert.Equal(t, "SrvRecordValue(host_name='sip.example.com', port=5060, priority=10, weight=0)", v.String())
}

func TestCfnCidrCollection_RendersLocationsInOrder(t *testing.T) {
	stack := testkit.New().Stack("Cidr")
	coll := route53.NewCfnCidrCollection(stack, jsii.String("Offices"), &route53.CfnCidrCollectionProps{
		Name: jsii.String("offices"),
		Locations: &[]*route53.CfnCidrCollection_LocationProperty{
			{LocationName: jsii.String("berlin"), CidrList: jsii.Strings("198.51.100.0/24")},
			{LocationName: jsii.String("austin"), CidrList: jsii.Strings("203.0.113.0/24", "192.0.2.0/24")},
		},
	})

	assert.Equal(t, "offices", *coll.Name())
	assert.True(t, cfn.IsUnresolved(*coll.AttrId()))
	assert.Contains(t, coll.String(), "name='offices'")

	tmpl := testkit.FromStack(t, stack)
	id, res := tmpl.OnlyResource(t, route53.CfnCidrCollection_CFN_RESOURCE_TYPE_NAME)
	assert.Equal(t, "Offices", id)
	assert.Equal(t, map[string]any{
		"Name": "offices",
		"Locations": []any{
			map[string]any{"CidrList": []any{"198.51.100.0/24"}, "LocationName": "berlin"},
			map[string]any{"CidrList": []any{"203.0.113.0/24", "192.0.2.0/24"}, "LocationName": "austin"},
		},
	}, res.Properties)
}

func TestCfnCidrCollection_RequiresName(t *testing.T) {
	stack := testkit.New().Stack("Cidr")

	err := cfn.Try(func() {
		route53.NewCfnCidrCollection(stack, jsii.String("NoName"), &route53.CfnCidrCollectionProps{})
	})
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeRequiredMissing))
	assert.Contains(t, err.Error(), "Required property 'name' is missing")

	err = cfn.Try(func() {
		route53.NewCfnCidrCollection(stack, jsii.String("NoCidrs"), &route53.CfnCidrCollectionProps{
			Name:      jsii.String("offices"),
			Locations: &[]*route53.CfnCidrCollection_LocationProperty{{LocationName: jsii.String("berlin")}},
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required property 'locations.cidrList' is missing")

	coll := route53.NewCfnCidrCollection(stack, jsii.String("Ok"), &route53.CfnCidrCollectionProps{Name: jsii.String("offices")})
	require.Error(t, cfn.Try(func() { coll.SetName(nil) }))
	assert.Equal(t, "offices", *coll.Name())
}

func TestCfnResources_DependOnTypedResources(t *testing.T) {
	stack := testkit.New().Stack("Deps")
	zone := route53.NewCfnHostedZone(stack, jsii.String("Zone"), &route53.CfnHostedZoneProps{Name: jsii.String("example.com.")})
	rec := route53.NewCfnRecordSet(stack, jsii.String("Www"), &route53.CfnRecordSetProps{
		Name:         jsii.String("www.example.com."),
		Type:         jsii.String("A"),
		HostedZoneId: jsii.String(zone.Ref()),
	})
	var dep cfn.ICfnResource = zone
	rec.AddDependency(dep)

	assert.Same(t, zone.CfnResource, zone.Resource())
	tmpl := testkit.FromStack(t, stack)
	assert.Equal(t, []string{"Zone"}, tmpl.Resources["Www"].DependsOn)
}
