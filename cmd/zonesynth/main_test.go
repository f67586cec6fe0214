package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/theory-cloud/zonetheory/pkg/route53api"
)

type fakeClient struct {
	zones []route53api.HostedZone
	calls int
}

func (f *fakeClient) ChangeRecordSet(context.Context, string, types.ChangeAction, types.ResourceRecordSet) (string, error) {
	return "", nil
}

func (f *fakeClient) WaitForChange(context.Context, string) error { return nil }

func (f *fakeClient) FindRecordSet(context.Context, string, string, types.RRType) (*types.ResourceRecordSet, error) {
	return nil, nil
}

func (f *fakeClient) FindHostedZonesByName(_ context.Context, name string) ([]route53api.HostedZone, error) {
	f.calls++
	var out []route53api.HostedZone
	for _, z := range f.zones {
		if z.Name == route53api.NormalizeName(name) {
			out = append(out, z)
		}
	}
	return out, nil
}

func (f *fakeClient) GetHostedZone(_ context.Context, id string) (route53api.HostedZone, error) {
	return route53api.HostedZone{ID: id}, nil
}

func run(t *testing.T, client *fakeClient, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ZONETHEORY_LOG_LEVEL", "error")
	root := newRootCmd(deps{newClient: func(context.Context, ...route53api.Option) (route53api.Client, error) {
		return client, nil
	}})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	root.SetContext(context.Background())
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const zoneFile = `
stack:
  name: Dns
  account: "123456789012"
  region: us-east-1
zones:
  - name: example.com
    lookup: true
    records:
      - name: www
        target: 192.0.2.1
`

func TestSynth_ResolvesLookupsAndCachesThem(t *testing.T) {
	dir := t.TempDir()
	zones := writeFile(t, dir, "zones.yaml", zoneFile)
	cachePath := filepath.Join(dir, "cdk.context.json")
	client := &fakeClient{zones: []route53api.HostedZone{{ID: "ZLOOK", Name: "example.com."}}}

	out, err := run(t, client, "synth", "-f", zones, "--context", cachePath)
	require.NoError(t, err)

	var tmpl map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tmpl))
	assert.Contains(t, out, `"ZLOOK"`)
	assert.Equal(t, 1, client.calls)

	cached, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	assert.Contains(t, string(cached), "hosted-zone:account=123456789012:domainName=example.com:region=us-east-1")

	out, err = run(t, client, "synth", "-f", zones, "--context", cachePath, "-o", "yaml", "--no-lookups")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "Resources")
	assert.Equal(t, 1, client.calls)
}

func TestSynth_NoLookupsFailsWhenUncached(t *testing.T) {
	dir := t.TempDir()
	zones := writeFile(t, dir, "zones.yaml", zoneFile)

	_, err := run(t, &fakeClient{}, "synth", "-f", zones, "--context", filepath.Join(dir, "ctx.json"), "--no-lookups")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not cached")
}

func TestSynth_NoLookupsFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	zones := writeFile(t, dir, "zones.yaml", zoneFile)
	client := &fakeClient{zones: []route53api.HostedZone{{ID: "ZLOOK", Name: "example.com."}}}

	t.Setenv("ZONETHEORY_NO_LOOKUPS", "false")
	out, err := run(t, client, "synth", "-f", zones, "--context", filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Contains(t, out, `"ZLOOK"`)

	t.Setenv("ZONETHEORY_NO_LOOKUPS", "1")
	_, err = run(t, client, "synth", "-f", zones, "--context", filepath.Join(dir, "b.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not cached")
}

func TestEnvBool(t *testing.T) {
	cases := map[string]bool{"": false, "0": false, "false": false, "no": false, "1": true, "true": true, "TRUE": true}
	for value, want := range cases {
		t.Setenv("ZONETHEORY_TEST_FLAG", value)
		assert.Equal(t, want, envBool("ZONETHEORY_TEST_FLAG"), value)
	}
}

func TestSynth_BadFormat(t *testing.T) {
	_, err := run(t, &fakeClient{}, "synth", "-o", "xml")
	require.Error(t, err)
}

func TestLookup_StoresResult(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "cdk.context.json")
	client := &fakeClient{zones: []route53api.HostedZone{{ID: "Z1", Name: "example.com."}}}

	out, err := run(t, client, "lookup", "--domain", "example.com", "--account", "123456789012", "--region", "us-east-1", "--context", cachePath)
	require.NoError(t, err)
	assert.Contains(t, out, "/hostedzone/Z1")

	cached, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	assert.Contains(t, string(cached), "hosted-zone:account=123456789012:domainName=example.com:region=us-east-1")
}

func TestLookup_RequiresDomain(t *testing.T) {
	_, err := run(t, &fakeClient{}, "lookup", "--account", "1", "--region", "r")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, &fakeClient{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "zonesynth dev\n", out)
}
