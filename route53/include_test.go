package route53_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
	"github.com/theory-cloud/zonetheory/testkit"
)

const existingTemplate = `
AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Zone:
    Type: AWS::Route53::HostedZone
    Properties:
      Name: example.com.
      HostedZoneConfig:
        Comment: legacy
  Www:
    Type: AWS::Route53::RecordSet
    DependsOn: Zone
    DeletionPolicy: Retain
    Properties:
      HostedZoneId: !Ref Zone
      Name: www.example.com.
      Type: A
      TTL: 300
      ResourceRecords:
        - 192.0.2.1
        - 192.0.2.2
  Topic:
    Type: AWS::SNS::Topic
    Properties:
      TopicName: dns-events
`

func TestIncludeTemplate_TypedRoute53Resources(t *testing.T) {
	tmpl, err := cfn.ParseTemplate([]byte(existingTemplate))
	require.NoError(t, err)

	stack := testkit.New().Stack("Imported")
	resources, err := cfn.IncludeTemplate(stack, tmpl)
	require.NoError(t, err)
	require.Len(t, resources, 3)

	zone, ok := resources["Zone"].(*route53.CfnHostedZone)
	require.True(t, ok)
	assert.Equal(t, "example.com.", *zone.Name())
	assert.Equal(t, "legacy", *zone.HostedZoneConfig().Comment)

	www, ok := resources["Www"].(*route53.CfnRecordSet)
	require.True(t, ok)
	assert.Equal(t, "300", *www.Ttl())
	require.Len(t, *www.ResourceRecords(), 2)
	assert.Equal(t, "192.0.2.1", *(*www.ResourceRecords())[0])

	www.SetTtl(stringPtr("60"))

	out := testkit.FromStack(t, stack)
	res := out.Resources["Www"]
	require.NotNil(t, res)
	assert.Equal(t, map[string]any{"Ref": "Zone"}, res.Properties["HostedZoneId"])
	assert.Equal(t, "60", res.Properties["TTL"])
	assert.Equal(t, []string{"Zone"}, res.DependsOn)
	assert.Equal(t, "Retain", res.DeletionPolicy)
	out.HasResourceProperties(t, "AWS::SNS::Topic", map[string]any{"TopicName": "dns-events"})
}

func TestIncludeTemplate_MissingRequiredProperty(t *testing.T) {
	tmpl, err := cfn.ParseTemplate([]byte(`
Resources:
  Broken:
    Type: AWS::Route53::RecordSet
    Properties:
      Type: A
`))
	require.NoError(t, err)

	_, err = cfn.IncludeTemplate(testkit.New().Stack("Imported"), tmpl)
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeRequiredMissing))
	assert.Contains(t, err.Error(), "Required property 'name' is missing")
}

func stringPtr(s string) *string { return &s }
