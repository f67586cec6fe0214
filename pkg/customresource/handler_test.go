package customresource

import (
	"context"
	"errors"
	"sync"
	"testing"

	awscfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/route53api"
	"github.com/theory-cloud/zonetheory/route53"
	"github.com/theory-cloud/zonetheory/testkit"
)

type change struct {
	zoneID string
	action types.ChangeAction
	rrset  types.ResourceRecordSet
}

type fakeClient struct {
	mu sync.Mutex

	zones    map[string][]route53api.HostedZone
	existing *types.ResourceRecordSet

	changes   []change
	waited    []string
	changeErr error
}

func (f *fakeClient) ChangeRecordSet(_ context.Context, zoneID string, action types.ChangeAction, rrset types.ResourceRecordSet) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.changeErr != nil {
		return "", f.changeErr
	}
	f.changes = append(f.changes, change{zoneID: zoneID, action: action, rrset: rrset})
	return "/change/C" + string(rune('0'+len(f.changes))), nil
}

func (f *fakeClient) WaitForChange(_ context.Context, changeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waited = append(f.waited, changeID)
	return nil
}

func (f *fakeClient) FindRecordSet(_ context.Context, _, _ string, _ types.RRType) (*types.ResourceRecordSet, error) {
	return f.existing, nil
}

func (f *fakeClient) FindHostedZonesByName(_ context.Context, name string) ([]route53api.HostedZone, error) {
	return f.zones[route53api.NormalizeName(name)], nil
}

func (f *fakeClient) GetHostedZone(_ context.Context, id string) (route53api.HostedZone, error) {
	return route53api.HostedZone{ID: id}, nil
}

type factoryCall struct {
	options int
}

func newTestHandler(env *testkit.Env, client *fakeClient, calls *[]factoryCall) *Handler {
	return NewHandler(
		WithLogger(env.Logger),
		WithIDGenerator(env.IDs),
		WithClientFactory(func(_ context.Context, options ...route53api.Option) (route53api.Client, error) {
			if calls != nil {
				*calls = append(*calls, factoryCall{options: len(options)})
			}
			return client, nil
		}),
	)
}

func delegationProperties(name string) map[string]any {
	return map[string]any{
		"AssumeRoleArn":            "arn:aws:iam::111111111111:role/Delegation",
		"ParentZoneName":           "example.com",
		"DelegatedZoneName":        name,
		"DelegatedZoneNameServers": []any{"ns-1.awsdns-01.org", "ns-2.awsdns-02.com"},
		"TTL":                      "172800",
	}
}

func TestDelegation_CreateUpsertsNSRecord(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{zones: map[string][]route53api.HostedZone{"example.com.": {{ID: "ZPARENT", Name: "example.com."}}}}
	var calls []factoryCall
	h := newTestHandler(env, client, &calls)

	event := testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType:       route53.CrossAccountZoneDelegationResourceType,
		ResourceProperties: delegationProperties("sub.example.com"),
	})
	id, data, err := env.InvokeCustomResource(context.Background(), h.Handle, event)
	require.NoError(t, err)
	assert.Equal(t, "test-id-1", id)
	assert.Nil(t, data)

	require.Len(t, calls, 1)
	assert.Equal(t, 1, calls[0].options)

	require.Len(t, client.changes, 1)
	c := client.changes[0]
	assert.Equal(t, "ZPARENT", c.zoneID)
	assert.Equal(t, types.ChangeActionUpsert, c.action)
	assert.Equal(t, "sub.example.com.", aws.ToString(c.rrset.Name))
	assert.Equal(t, types.RRTypeNs, c.rrset.Type)
	assert.Equal(t, int64(172800), aws.ToInt64(c.rrset.TTL))
	require.Len(t, c.rrset.ResourceRecords, 2)
	assert.Equal(t, "ns-1.awsdns-01.org", aws.ToString(c.rrset.ResourceRecords[0].Value))
	assert.Equal(t, []string{"/change/C1"}, client.waited)

	for _, e := range env.Logger.Entries() {
		assert.Equal(t, "req-1", e.RequestID)
	}
}

func TestHandle_LogsResponseURLWithoutQuery(t *testing.T) {
	env := testkit.New()
	h := newTestHandler(env, &fakeClient{}, nil)

	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		RequestType:        awscfn.RequestDelete,
		ResourceType:       route53.DeleteExistingRecordSetResourceType,
		PhysicalResourceID: "phys",
		ResourceProperties: map[string]any{"HostedZoneId": "Z1", "RecordName": "x.", "RecordType": "A"},
	}))
	require.NoError(t, err)

	var found bool
	for _, e := range env.Logger.Entries() {
		if e.Message != "custom resource request" {
			continue
		}
		found = true
		assert.Equal(t, "https://cloudformation-custom-resource-response.s3.amazonaws.com/req-1?[REDACTED]", e.Fields["response_url"])
	}
	assert.True(t, found)
}

func TestDelegation_ParentZoneIdAndRegion(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{}
	var calls []factoryCall
	h := newTestHandler(env, client, &calls)

	props := delegationProperties("sub.example.com")
	delete(props, "ParentZoneName")
	props["ParentZoneId"] = "/hostedzone/ZID"
	props["AssumeRoleRegion"] = "us-west-2"
	props["TTL"] = 60

	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType:       route53.CrossAccountZoneDelegationResourceType,
		PhysicalResourceID: "existing",
		ResourceProperties: props,
	}))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, 2, calls[0].options)
	require.Len(t, client.changes, 1)
	assert.Equal(t, "ZID", client.changes[0].zoneID)
	assert.Equal(t, int64(60), aws.ToInt64(client.changes[0].rrset.TTL))
}

func TestDelegation_UpdateRenamedZoneDeletesOldRecord(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{zones: map[string][]route53api.HostedZone{"example.com.": {{ID: "ZPARENT"}}}}
	h := newTestHandler(env, client, nil)

	id, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		RequestType:           awscfn.RequestUpdate,
		ResourceType:          route53.CrossAccountZoneDelegationResourceType,
		PhysicalResourceID:    "phys-1",
		ResourceProperties:    delegationProperties("new.example.com"),
		OldResourceProperties: delegationProperties("old.example.com"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "phys-1", id)
	require.Len(t, client.changes, 2)
	assert.Equal(t, types.ChangeActionDelete, client.changes[0].action)
	assert.Equal(t, "old.example.com.", aws.ToString(client.changes[0].rrset.Name))
	assert.Equal(t, types.ChangeActionUpsert, client.changes[1].action)
	assert.Equal(t, "new.example.com.", aws.ToString(client.changes[1].rrset.Name))
}

func TestDelegation_UpdateSameZoneOnlyUpserts(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{zones: map[string][]route53api.HostedZone{"example.com.": {{ID: "ZPARENT"}}}}
	h := newTestHandler(env, client, nil)

	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		RequestType:           awscfn.RequestUpdate,
		ResourceType:          route53.CrossAccountZoneDelegationResourceType,
		ResourceProperties:    delegationProperties("sub.example.com"),
		OldResourceProperties: delegationProperties("SUB.example.com."),
	}))
	require.NoError(t, err)
	require.Len(t, client.changes, 1)
	assert.Equal(t, types.ChangeActionUpsert, client.changes[0].action)
}

func TestDelegation_DeleteIgnoresMissingRecord(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{
		zones:     map[string][]route53api.HostedZone{"example.com.": {{ID: "ZPARENT"}}},
		changeErr: &types.InvalidChangeBatch{Messages: []string{"Tried to delete resource record set but it was not found"}},
	}
	h := newTestHandler(env, client, nil)

	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		RequestType:        awscfn.RequestDelete,
		ResourceType:       route53.CrossAccountZoneDelegationResourceType,
		PhysicalResourceID: "phys-1",
		ResourceProperties: delegationProperties("sub.example.com"),
	}))
	require.NoError(t, err)
	assert.Contains(t, env.Logger.Messages(), "delegation record already removed")
}

func TestDelegation_Errors(t *testing.T) {
	env := testkit.New()

	t.Run("ambiguous parent", func(t *testing.T) {
		client := &fakeClient{zones: map[string][]route53api.HostedZone{"example.com.": {{ID: "Z1"}, {ID: "Z2"}}}}
		_, _, err := newTestHandler(env, client, nil).Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
			ResourceType:       route53.CrossAccountZoneDelegationResourceType,
			ResourceProperties: delegationProperties("sub.example.com"),
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected one hosted zone to match the given name but found 2")
		assert.True(t, cfn.HasCode(err, cfn.CodeLookupFailed))
	})

	t.Run("missing role", func(t *testing.T) {
		props := delegationProperties("sub.example.com")
		delete(props, "AssumeRoleArn")
		_, _, err := newTestHandler(env, &fakeClient{}, nil).Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
			ResourceType:       route53.CrossAccountZoneDelegationResourceType,
			ResourceProperties: props,
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Required property 'AssumeRoleArn' is missing")
	})

	t.Run("bad ttl", func(t *testing.T) {
		props := delegationProperties("sub.example.com")
		props["TTL"] = "two days"
		_, _, err := newTestHandler(env, &fakeClient{}, nil).Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
			ResourceType:       route53.CrossAccountZoneDelegationResourceType,
			ResourceProperties: props,
		}))
		require.Error(t, err)
	})

	t.Run("change fails", func(t *testing.T) {
		client := &fakeClient{
			zones:     map[string][]route53api.HostedZone{"example.com.": {{ID: "Z1"}}},
			changeErr: errors.New("throttled"),
		}
		id, _, err := newTestHandler(env, client, nil).Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
			ResourceType:       route53.CrossAccountZoneDelegationResourceType,
			PhysicalResourceID: "keep",
			ResourceProperties: delegationProperties("sub.example.com"),
		}))
		require.Error(t, err)
		assert.Equal(t, "keep", id)
	})
}

func TestDeleteExisting_CreateDeletesMatchingRecord(t *testing.T) {
	env := testkit.New()
	existing := &types.ResourceRecordSet{
		Name:            aws.String("www.example.com."),
		Type:            types.RRTypeA,
		TTL:             aws.Int64(300),
		ResourceRecords: []types.ResourceRecord{{Value: aws.String("1.2.3.4")}},
	}
	client := &fakeClient{existing: existing}
	h := newTestHandler(env, client, nil)

	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType: route53.DeleteExistingRecordSetResourceType,
		ResourceProperties: map[string]any{
			"HostedZoneId": "Z1",
			"RecordName":   "www.example.com.",
			"RecordType":   "A",
		},
	}))
	require.NoError(t, err)
	require.Len(t, client.changes, 1)
	assert.Equal(t, types.ChangeActionDelete, client.changes[0].action)
	assert.Equal(t, *existing, client.changes[0].rrset)
	assert.Len(t, client.waited, 1)
}

func TestDeleteExisting_NothingToDelete(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{}
	h := newTestHandler(env, client, nil)

	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType:       route53.DeleteExistingRecordSetResourceType,
		ResourceProperties: map[string]any{"HostedZoneId": "Z1", "RecordName": "www.example.com.", "RecordType": "A"},
	}))
	require.NoError(t, err)
	assert.Empty(t, client.changes)
	assert.Contains(t, env.Logger.Messages(), "no existing record to delete")
}

func TestDeleteExisting_UpdateAndDeleteAreNoOps(t *testing.T) {
	env := testkit.New()
	client := &fakeClient{existing: &types.ResourceRecordSet{Name: aws.String("x."), Type: types.RRTypeA}}
	var calls []factoryCall
	h := newTestHandler(env, client, &calls)

	for _, rt := range []awscfn.RequestType{awscfn.RequestUpdate, awscfn.RequestDelete} {
		_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
			RequestType:        rt,
			ResourceType:       route53.DeleteExistingRecordSetResourceType,
			PhysicalResourceID: "phys",
			ResourceProperties: map[string]any{"HostedZoneId": "Z1", "RecordName": "x.", "RecordType": "A"},
		}))
		require.NoError(t, err)
	}
	assert.Empty(t, calls)
	assert.Empty(t, client.changes)
}

func TestHandle_UnsupportedResourceType(t *testing.T) {
	env := testkit.New()
	_, _, err := newTestHandler(env, &fakeClient{}, nil).Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType: "Custom::Unknown",
	}))
	require.Error(t, err)
	assert.True(t, cfn.HasCode(err, cfn.CodeUnsupported))
}

func TestNoWait(t *testing.T) {
	client := &fakeClient{existing: &types.ResourceRecordSet{Name: aws.String("x."), Type: types.RRTypeA}}
	h := NewHandler(
		WithWaitForChanges(false),
		WithClientFactory(func(context.Context, ...route53api.Option) (route53api.Client, error) { return client, nil }),
	)
	_, _, err := h.Handle(context.Background(), testkit.CustomResourceEvent(testkit.CustomResourceEventOptions{
		ResourceType:       route53.DeleteExistingRecordSetResourceType,
		ResourceProperties: map[string]any{"HostedZoneId": "Z1", "RecordName": "x.", "RecordType": "A"},
	}))
	require.NoError(t, err)
	assert.Len(t, client.changes, 1)
	assert.Empty(t, client.waited)
}

func TestULIDGenerator(t *testing.T) {
	a, b := ULIDGenerator{}.NewID(), ULIDGenerator{}.NewID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
