package zonefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/testkit"
)

const sample = `
stack:
  name: Dns
  account: "123456789012"
  region: us-east-1
  tags:
    team: edge
defaults:
  ttl: 300
  comment: managed
zones:
  - name: example.com
    records:
      - name: www
        target: 192.0.2.10
      - name: v6
        target: 2001:db8::1
      - name: blog
        target: example.github.io
        ttl: 60
      - type: MX
        values: ["10 mail.example.com", "20 backup.example.com"]
      - type: txt
        values: ["v=spf1 -all"]
  - name: internal.example.com
    private: true
    vpcs:
      - id: vpc-0abc
        region: us-east-1
    records:
      - name: db
        target: 10.0.0.5
`

func TestParse_DefaultsAndInference(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Zones, 2)

	records := f.Zones[0].Records
	assert.Equal(t, "A", records[0].Type)
	assert.Equal(t, []string{"192.0.2.10"}, records[0].Values)
	require.NotNil(t, records[0].TTL)
	assert.Equal(t, 300, *records[0].TTL)
	assert.Equal(t, "managed", records[0].Comment)
	assert.Equal(t, "AAAA", records[1].Type)
	assert.Equal(t, "CNAME", records[2].Type)
	assert.Equal(t, 60, *records[2].TTL)
	assert.Equal(t, "TXT", records[4].Type)
}

func TestParse_DefaultsDoNotOverrideRecords(t *testing.T) {
	f, err := Parse([]byte(`
stack: {name: Dns}
defaults:
  ttl: 300
  type: A
zones:
  - name: example.com
    records:
      - name: fast
        ttl: 0
        values: ["192.0.2.1"]
      - name: www
        target: lb.example.net
      - name: plain
        values: ["192.0.2.2"]
`))
	require.NoError(t, err)

	records := f.Zones[0].Records
	assert.Equal(t, "A", records[0].Type)
	require.NotNil(t, records[0].TTL)
	assert.Equal(t, 0, *records[0].TTL)
	assert.Equal(t, "CNAME", records[1].Type)
	assert.Equal(t, 300, *records[1].TTL)
	assert.Equal(t, "A", records[2].Type)
	assert.Equal(t, "plain", records[2].Name)

	stack, err := Build(nil, f)
	require.NoError(t, err)
	tmpl := testkit.FromStack(t, stack)
	fast := tmpl.FindResources("AWS::Route53::RecordSet", map[string]any{"Name": "fast.example.com."})
	require.Len(t, fast, 1)
	for _, res := range fast {
		assert.Equal(t, "0", res.Properties["TTL"])
	}
}

func TestParse_DefaultsRejectPerRecordFields(t *testing.T) {
	for _, field := range []string{"id: x", "name: www", "target: 192.0.2.1", "values: [x]"} {
		_, err := Parse([]byte("stack: {name: Dns}\ndefaults: {" + field + "}\nzones: []\n"))
		require.Error(t, err, field)
		assert.True(t, cfn.HasCode(err, cfn.CodeValidationFailed), field)
		assert.Contains(t, err.Error(), "cannot be defaulted")
	}
}

func TestInferType(t *testing.T) {
	assert.Equal(t, "A", InferType("198.51.100.7"))
	assert.Equal(t, "AAAA", InferType("::1"))
	assert.Equal(t, "CNAME", InferType("lb.example.net"))
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":            ``,
		"unknown field":    "stack: {name: Dns}\nzonez: []\n",
		"missing name":     "stack: {}\n",
		"bad account":      "stack: {name: Dns, account: abc}\n",
		"bad type":         "stack: {name: Dns}\nzones: [{name: example.com, records: [{type: BOGUS, values: [x]}]}]\n",
		"no values":        "stack: {name: Dns}\nzones: [{name: example.com, records: [{type: A}]}]\n",
		"no type":          "stack: {name: Dns}\nzones: [{name: example.com, records: [{values: [x]}]}]\n",
		"target and value": "stack: {name: Dns}\nzones: [{name: example.com, records: [{target: 1.2.3.4, values: [x]}]}]\n",
		"private no vpc":   "stack: {name: Dns}\nzones: [{name: example.com, private: true}]\n",
		"bad vpc":          "stack: {name: Dns}\nzones: [{name: example.com, private: true, vpcs: [{id: subnet-1}]}]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestParse_DerivesStackNameFromProject(t *testing.T) {
	f, err := Parse([]byte("stack: {project: example.com, stage: production}\nzones: [{name: example.com}]\n"))
	require.NoError(t, err)
	assert.Equal(t, "example-com-dns-live", f.Stack.Name)
	assert.Equal(t, map[string]string{"stage": "live"}, f.Stack.Tags)

	f, err = Parse([]byte("stack: {name: Dns, stage: dev, tags: {stage: sandbox}}\n"))
	require.NoError(t, err)
	assert.Equal(t, "Dns", f.Stack.Name)
	assert.Equal(t, "sandbox", f.Stack.Tags["stage"])
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dns", f.Stack.Name)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBuild_RendersZonesAndRecords(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	stack, err := Build(cfn.NewApp(nil), f)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", stack.Account())

	tmpl := testkit.FromStack(t, stack)
	tmpl.ResourceCountIs(t, "AWS::Route53::HostedZone", 2)
	tmpl.ResourceCountIs(t, "AWS::Route53::RecordSet", 6)
	tmpl.HasResourceProperties(t, "AWS::Route53::HostedZone", map[string]any{"Name": "example.com."})
	tmpl.HasResourceProperties(t, "AWS::Route53::HostedZone", map[string]any{
		"Name": "internal.example.com.",
		"VPCs": []any{map[string]any{"VPCId": "vpc-0abc", "VPCRegion": "us-east-1"}},
	})
	tmpl.HasResourceProperties(t, "AWS::Route53::RecordSet", map[string]any{
		"Name":            "www.example.com.",
		"Type":            "A",
		"TTL":             "300",
		"Comment":         "managed",
		"ResourceRecords": []any{"192.0.2.10"},
	})
	tmpl.HasResourceProperties(t, "AWS::Route53::RecordSet", map[string]any{
		"Name": "blog.example.com.",
		"Type": "CNAME",
		"TTL":  "60",
	})
	tmpl.HasResourceProperties(t, "AWS::Route53::RecordSet", map[string]any{
		"Name":            "example.com.",
		"Type":            "MX",
		"ResourceRecords": []any{"10 mail.example.com", "20 backup.example.com"},
	})
	tmpl.HasResourceProperties(t, "AWS::Route53::RecordSet", map[string]any{
		"Type":            "TXT",
		"ResourceRecords": []any{`"v=spf1 -all"`},
	})
}

func TestBuild_ImportedZoneAndDuplicateIDs(t *testing.T) {
	f, err := Parse([]byte(`
stack: {name: Dns}
zones:
  - name: example.com
    hostedZoneId: Z123
    records:
      - {name: api, target: 192.0.2.1, weight: 10}
      - {name: api, target: 192.0.2.2, weight: 20}
`))
	require.NoError(t, err)

	stack, err := Build(cfn.NewApp(nil), f)
	require.NoError(t, err)

	tmpl := testkit.FromStack(t, stack)
	tmpl.ResourceCountIs(t, "AWS::Route53::HostedZone", 0)
	tmpl.ResourceCountIs(t, "AWS::Route53::RecordSet", 2)
	tmpl.HasResourceProperties(t, "AWS::Route53::RecordSet", map[string]any{
		"HostedZoneId": "Z123",
		"Name":         "api.example.com.",
		"Weight":       float64(20),
	})
}

func TestBuild_ConstructionErrorsAreReturned(t *testing.T) {
	f, err := Parse([]byte(`
stack: {name: Dns}
zones:
  - name: example.com
    records:
      - {name: api, target: 192.0.2.1, weight: 300}
`))
	require.NoError(t, err)

	_, err = Build(cfn.NewApp(nil), f)
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeValidationFailed))
}

func TestConstructID(t *testing.T) {
	assert.Equal(t, "ExampleCom", constructID("example.com."))
	assert.Equal(t, "WildcardExampleCom", constructID("*.example.com"))
	assert.Equal(t, "Zone", constructID("."))
}
