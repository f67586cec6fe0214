package testkit_test

import (
	"context"
	"testing"

	awscfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/testkit"
)

func TestManualIDGenerator(t *testing.T) {
	ids := testkit.NewManualIDGenerator()
	ids.Queue("fixed")
	assert.Equal(t, "fixed", ids.NewID())
	assert.Equal(t, "test-id-1", ids.NewID())
	assert.Equal(t, "test-id-2", ids.NewID())
	ids.Reset()
	assert.Equal(t, "test-id-1", ids.NewID())
}

func TestEnvStack(t *testing.T) {
	env := testkit.New().WithContext("k", "v")
	stack := env.Stack("Test")
	assert.Equal(t, testkit.DefaultRegion, stack.Region())
	assert.Equal(t, testkit.DefaultAccount, stack.Account())
	assert.Equal(t, "v", stack.Node().TryGetContext("k"))
	assert.True(t, cfn.IsUnresolved(env.AgnosticStack("Other").Region()))
}

func TestTemplateAssertions(t *testing.T) {
	stack := testkit.New().Stack("Test")
	cfn.NewCfnResource(stack, "Zone", &cfn.CfnResourceProps{
		Type: strPtr("AWS::Route53::HostedZone"),
		Properties: map[string]any{
			"Name":           "example.com.",
			"HostedZoneTags": []any{map[string]any{"Key": "a", "Value": "b"}},
			"TTL":            300,
		},
	})

	tmpl := testkit.FromStack(t, stack)
	tmpl.ResourceCountIs(t, "AWS::Route53::HostedZone", 1)
	tmpl.ResourceCountIs(t, "AWS::Route53::RecordSet", 0)
	tmpl.HasResourceProperties(t, "AWS::Route53::HostedZone", map[string]any{
		"Name": "example.com.",
		"TTL":  300,
	})
	tmpl.HasResource(t, "AWS::Route53::HostedZone", map[string]any{
		"Properties": map[string]any{"HostedZoneTags": []any{map[string]any{"Key": "a"}}},
	})

	assert.Len(t, tmpl.FindResources("AWS::Route53::HostedZone", nil), 1)
	assert.Empty(t, tmpl.FindResources("AWS::Route53::HostedZone", map[string]any{"Name": "other.com."}))
	assert.Empty(t, tmpl.FindResources("AWS::Route53::HostedZone", map[string]any{
		"HostedZoneTags": []any{map[string]any{"Key": "a"}, map[string]any{"Key": "c"}},
	}))

	id, res := tmpl.OnlyResource(t, "AWS::Route53::HostedZone")
	assert.Equal(t, "Zone", id)
	assert.Equal(t, "example.com.", res.Properties["Name"])
}

func TestCustomResourceEvent_Defaults(t *testing.T) {
	event := testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType:       "Custom::Thing",
		ResourceProperties: map[string]any{"A": "b"},
	})
	assert.Equal(t, awscfn.RequestCreate, event.RequestType)
	assert.Equal(t, "Resource", event.LogicalResourceID)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, "b", event.ResourceProperties["A"])
	assert.Contains(t, event.ResourceProperties, "ServiceToken")
	assert.Empty(t, event.PhysicalResourceID)
}

func TestInvokeCustomResource(t *testing.T) {
	env := testkit.New()
	var seen awscfn.Event
	fn := func(_ context.Context, event awscfn.Event) (string, map[string]any, error) {
		seen = event
		return env.IDs.NewID(), map[string]any{"ok": true}, nil
	}
	id, data, err := env.InvokeCustomResource(context.Background(), fn, testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{RequestID: "r9"}))
	require.NoError(t, err)
	assert.Equal(t, "test-id-1", id)
	assert.Equal(t, true, data["ok"])
	assert.Equal(t, "r9", seen.RequestID)
}

func strPtr(s string) *string { return &s }
