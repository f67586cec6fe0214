package cdkbridge

import (
	"os/exec"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

func requireNode(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("node"); err != nil {
		t.Skip("node is required for the jsii runtime")
	}
}

func dnsStack() *cfn.Stack {
	stack, _ := dnsStackWithZone()
	return stack
}

func dnsStackWithZone() (*cfn.Stack, *route53.PublicHostedZone) {
	stack := cfn.NewStack(nil, "Dns", nil)
	zone := route53.NewPublicHostedZone(stack, jsii.String("Zone"), &route53.PublicHostedZoneProps{
		CommonHostedZoneProps: route53.CommonHostedZoneProps{ZoneName: jsii.String("example.com")},
	})
	route53.NewARecord(stack, jsii.String("Www"), &route53.ARecordProps{
		RecordSetOptions: route53.RecordSetOptions{Zone: zone, RecordName: jsii.String("www")},
		Target:           route53.RecordTarget_FromIpAddresses(jsii.String("192.0.2.1")),
	})
	route53.NewHealthCheck(stack, jsii.String("Check"), &route53.HealthCheckProps{
		Type: route53.HealthCheckType_HTTPS,
		Fqdn: jsii.String("www.example.com"),
	})
	return stack, zone
}

func TestAttach_CopiesResources(t *testing.T) {
	requireNode(t)

	src := dnsStack()
	tmpl, err := src.Synth()
	require.NoError(t, err)

	app := awscdk.NewApp(nil)
	dst := awscdk.NewStack(app, jsii.String("Target"), nil)
	out, err := Attach(dst, src)
	require.NoError(t, err)
	require.Len(t, out, len(tmpl.Resources))

	for id, res := range tmpl.Resources {
		require.Contains(t, out, id)
		assert.Equal(t, res.Type, *out[id].CfnResourceType())
	}
}

func TestAttach_UsesTypedResourcesAndKeepsReferences(t *testing.T) {
	requireNode(t)

	src, zone := dnsStackWithZone()
	app := awscdk.NewApp(nil)
	dst := awscdk.NewStack(app, jsii.String("Target"), nil)
	out, err := Attach(dst, src)
	require.NoError(t, err)

	zoneID := zone.CfnHostedZone().LogicalId()
	_, ok := out[zoneID].(awsroute53.CfnHostedZone)
	assert.True(t, ok, "hosted zone should be an awsroute53.CfnHostedZone")
	for id, res := range out {
		switch *res.CfnResourceType() {
		case "AWS::Route53::RecordSet":
			_, ok := res.(awsroute53.CfnRecordSet)
			assert.True(t, ok, id)
		case "AWS::Route53::HealthCheck":
			_, ok := res.(awsroute53.CfnHealthCheck)
			assert.True(t, ok, id)
		}
	}

	tmpl := assertions.Template_FromStack(dst, nil)
	tmpl.ResourceCountIs(jsii.String("AWS::Route53::HostedZone"), jsii.Number(1))
	tmpl.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), map[string]any{
		"Name":            "www.example.com.",
		"HostedZoneId":    map[string]any{"Ref": zoneID},
		"ResourceRecords": []any{"192.0.2.1"},
	})
	tmpl.HasResourceProperties(jsii.String("AWS::Route53::HealthCheck"), map[string]any{
		"HealthCheckConfig": map[string]any{"Type": "HTTPS", "FullyQualifiedDomainName": "www.example.com"},
	})
}

func TestHasIntrinsic(t *testing.T) {
	assert.True(t, hasIntrinsic(map[string]any{"Ref": "Zone"}))
	assert.True(t, hasIntrinsic([]any{"a", map[string]any{"Fn::GetAtt": []any{"Zone", "NameServers"}}}))
	assert.True(t, hasIntrinsic(map[string]any{"DNSName": map[string]any{"Fn::Select": []any{1, "x"}}}))
	assert.False(t, hasIntrinsic(map[string]any{"Comment": "main"}))
	assert.False(t, hasIntrinsic("Ref"))
}

func TestInclude_LoadsTemplate(t *testing.T) {
	requireNode(t)

	app := awscdk.NewApp(nil)
	dst := awscdk.NewStack(app, jsii.String("Target"), nil)
	include, err := Include(dst, "Dns", dnsStack(), t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, include)
}
