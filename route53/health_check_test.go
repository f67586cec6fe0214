package route53_test

import (
	"testing"

	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
	"github.com/theory-cloud/zonetheory/testkit"
)

func TestHealthCheck_EndpointDefaults(t *testing.T) {
	stack := testkit.New().Stack("Checks")
	route53.NewHealthCheck(stack, jsii.String("Https"), &route53.HealthCheckProps{
		Type: route53.HealthCheckType_HTTPS,
		Fqdn: jsii.String("api.example.com"),
	})
	route53.NewHealthCheck(stack, jsii.String("Tcp"), &route53.HealthCheckProps{
		Type:      route53.HealthCheckType_TCP,
		IpAddress: jsii.String("192.0.2.10"),
		Port:      jsii.Number(5432),
	})

	tmpl := testkit.FromStack(t, stack)
	tmpl.HasResourceProperties(t, route53.CfnHealthCheck_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"HealthCheckConfig": map[string]any{
			"Type":                     "HTTPS",
			"FullyQualifiedDomainName": "api.example.com",
			"Port":                     443,
			"ResourcePath":             "/",
			"EnableSNI":                true,
			"FailureThreshold":         3,
			"RequestInterval":          30,
		},
	})
	tcp := tmpl.FindResources(route53.CfnHealthCheck_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"HealthCheckConfig": map[string]any{"Type": "TCP"},
	})
	require.Len(t, tcp, 1)
	for _, res := range tcp {
		cfg := res.Properties["HealthCheckConfig"].(map[string]any)
		assert.Equal(t, float64(5432), cfg["Port"])
		assert.Equal(t, "192.0.2.10", cfg["IPAddress"])
		assert.NotContains(t, cfg, "ResourcePath")
		assert.NotContains(t, cfg, "EnableSNI")
	}
}

func TestHealthCheck_Calculated(t *testing.T) {
	stack := testkit.New().Stack("Checks")
	child := route53.NewHealthCheck(stack, jsii.String("Child"), &route53.HealthCheckProps{
		Type: route53.HealthCheckType_HTTP,
		Fqdn: jsii.String("a.example.com"),
	})
	imported := route53.HealthCheck_FromHealthCheckId(stack, jsii.String("Imported"), jsii.String("hc-imported"))
	route53.NewHealthCheck(stack, jsii.String("Parent"), &route53.HealthCheckProps{
		Type:              route53.HealthCheckType_CALCULATED,
		ChildHealthChecks: &[]route53.IHealthCheck{child, imported},
		HealthThreshold:   jsii.Number(1),
	})

	tmpl := testkit.FromStack(t, stack)
	tmpl.HasResourceProperties(t, route53.CfnHealthCheck_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"HealthCheckConfig": map[string]any{
			"Type": "CALCULATED",
			"ChildHealthChecks": []any{
				map[string]any{"Fn::GetAtt": []any{child.CfnHealthCheck().LogicalId(), "HealthCheckId"}},
				"hc-imported",
			},
			"HealthThreshold": 1,
		},
	})
}

func TestHealthCheck_Validation(t *testing.T) {
	cases := []struct {
		name  string
		props route53.HealthCheckProps
		want  string
	}{
		{"endpoint without target", route53.HealthCheckProps{Type: route53.HealthCheckType_HTTP}, "one of fqdn or ipAddress is required"},
		{"ip on metric check", route53.HealthCheckProps{
			Type:            route53.HealthCheckType_CLOUDWATCH_METRIC,
			IpAddress:       jsii.String("192.0.2.1"),
			AlarmIdentifier: &route53.AlarmIdentifier{Name: jsii.String("a"), Region: jsii.String("us-east-1")},
		}, "IpAddress is not supported for health check type"},
		{"metric without alarm", route53.HealthCheckProps{Type: route53.HealthCheckType_CLOUDWATCH_METRIC}, "AlarmIdentifier is required"},
		{"search string on tcp", route53.HealthCheckProps{
			Type: route53.HealthCheckType_TCP, Fqdn: jsii.String("a.example.com"), SearchString: jsii.String("ok"),
		}, "SearchString is only supported"},
		{"str match without search string", route53.HealthCheckProps{
			Type: route53.HealthCheckType_HTTP_STR_MATCH, Fqdn: jsii.String("a.example.com"),
		}, "SearchString is required"},
		{"sni on http", route53.HealthCheckProps{
			Type: route53.HealthCheckType_HTTP, Fqdn: jsii.String("a.example.com"), EnableSni: jsii.Bool(true),
		}, "EnableSni is only supported"},
		{"calculated without children", route53.HealthCheckProps{Type: route53.HealthCheckType_CALCULATED}, "ChildHealthChecks is required"},
		{"nil child", route53.HealthCheckProps{
			Type: route53.HealthCheckType_CALCULATED, ChildHealthChecks: &[]route53.IHealthCheck{nil},
		}, "ChildHealthChecks[0] is nil"},
		{"typed nil child", route53.HealthCheckProps{
			Type: route53.HealthCheckType_CALCULATED, ChildHealthChecks: &[]route53.IHealthCheck{(*route53.HealthCheck)(nil)},
		}, "ChildHealthChecks[0] is nil"},
		{"recovery control without arn", route53.HealthCheckProps{Type: route53.HealthCheckType_RECOVERY_CONTROL}, "RoutingControlArn is required"},
		{"failure threshold", route53.HealthCheckProps{
			Type: route53.HealthCheckType_HTTP, Fqdn: jsii.String("a.example.com"), FailureThreshold: jsii.Number(11),
		}, "FailureThreshold must be between 1 and 10"},
		{"two regions", route53.HealthCheckProps{
			Type: route53.HealthCheckType_HTTP, Fqdn: jsii.String("a.example.com"), Regions: jsii.Strings("us-east-1", "eu-west-1"),
		}, "At least three health check regions must be specified, got: us-east-1, eu-west-1"},
		{"request interval", route53.HealthCheckProps{
			Type: route53.HealthCheckType_HTTP, Fqdn: jsii.String("a.example.com"), RequestInterval: cfn.Duration_Seconds(15),
		}, "RequestInterval must be 10 or 30 seconds"},
		{"resource path", route53.HealthCheckProps{
			Type: route53.HealthCheckType_HTTP, Fqdn: jsii.String("a.example.com"), ResourcePath: jsii.String("health"),
		}, "ResourcePath must start with a slash"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stack := testkit.New().Stack("Checks")
			props := tc.props
			err := cfn.Try(func() { route53.NewHealthCheck(stack, jsii.String("Check"), &props) })
			require.Error(t, err)
			assert.True(t, cfn.HasCode(err, cfn.CodeValidationFailed))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestHealthCheck_AttachedToRecord(t *testing.T) {
	stack, zone := newZone(t, testkit.New())
	check := route53.NewHealthCheck(stack, jsii.String("Check"), &route53.HealthCheckProps{
		Type:            route53.HealthCheckType_HTTP,
		Fqdn:            jsii.String("primary.example.com"),
		RequestInterval: cfn.Duration_Seconds(10),
	})
	route53.NewARecord(stack, jsii.String("Primary"), &route53.ARecordProps{
		RecordSetOptions: route53.RecordSetOptions{
			Zone:        zone,
			RecordName:  jsii.String("app"),
			Failover:    route53.Failover_PRIMARY,
			HealthCheck: check,
		},
		Target: route53.RecordTarget_FromIpAddresses(jsii.String("192.0.2.1")),
	})

	props := onlyRecord(t, stack)
	assert.Equal(t, "PRIMARY", props["Failover"])
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{check.CfnHealthCheck().LogicalId(), "HealthCheckId"}}, props["HealthCheckId"])

	testkit.FromStack(t, stack).HasResourceProperties(t, route53.CfnHealthCheck_CFN_RESOURCE_TYPE_NAME, map[string]any{
		"HealthCheckConfig": map[string]any{"RequestInterval": 10},
	})
}
