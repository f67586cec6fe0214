package route53api

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

type fakeAPI struct {
	mu sync.Mutex

	zones   []types.HostedZone
	vpcs    map[string][]types.VPC
	ns      map[string][]string
	records map[string][]types.ResourceRecordSet

	changes      []*route53.ChangeResourceRecordSetsInput
	changeErr    error
	pendingPolls int
	getChanges   int
	listCalls    int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		vpcs:    map[string][]types.VPC{},
		ns:      map[string][]string{},
		records: map[string][]types.ResourceRecordSet{},
	}
}

func (f *fakeAPI) ChangeResourceRecordSets(_ context.Context, in *route53.ChangeResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, in)
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	return &route53.ChangeResourceRecordSetsOutput{
		ChangeInfo: &types.ChangeInfo{Id: aws.String("/change/C1"), Status: types.ChangeStatusPending},
	}, nil
}

func (f *fakeAPI) GetChange(_ context.Context, in *route53.GetChangeInput, _ ...func(*route53.Options)) (*route53.GetChangeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getChanges++
	status := types.ChangeStatusInsync
	if f.pendingPolls > 0 {
		f.pendingPolls--
		status = types.ChangeStatusPending
	}
	return &route53.GetChangeOutput{ChangeInfo: &types.ChangeInfo{Id: in.Id, Status: status}}, nil
}

func (f *fakeAPI) ListResourceRecordSets(_ context.Context, in *route53.ListResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []types.ResourceRecordSet
	for _, rr := range f.records[aws.ToString(in.HostedZoneId)] {
		if aws.ToString(rr.Name) >= aws.ToString(in.StartRecordName) {
			out = append(out, rr)
		}
	}
	if in.MaxItems != nil && len(out) > int(*in.MaxItems) {
		out = out[:*in.MaxItems]
	}
	return &route53.ListResourceRecordSetsOutput{ResourceRecordSets: out}, nil
}

// ListHostedZonesByName pages one zone at a time to exercise pagination.
func (f *fakeAPI) ListHostedZonesByName(_ context.Context, in *route53.ListHostedZonesByNameInput, _ ...func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	zones := append([]types.HostedZone(nil), f.zones...)
	sort.Slice(zones, func(i, j int) bool {
		ni, nj := aws.ToString(zones[i].Name), aws.ToString(zones[j].Name)
		if ni != nj {
			return ni < nj
		}
		return aws.ToString(zones[i].Id) < aws.ToString(zones[j].Id)
	})

	start := len(zones)
	for i, z := range zones {
		if in.HostedZoneId != nil {
			if aws.ToString(z.Id) == aws.ToString(in.HostedZoneId) {
				start = i
				break
			}
			continue
		}
		if aws.ToString(z.Name) >= aws.ToString(in.DNSName) {
			start = i
			break
		}
	}
	if start >= len(zones) {
		return &route53.ListHostedZonesByNameOutput{}, nil
	}
	out := &route53.ListHostedZonesByNameOutput{HostedZones: zones[start : start+1]}
	if start+1 < len(zones) {
		out.IsTruncated = true
		out.NextDNSName = zones[start+1].Name
		out.NextHostedZoneId = zones[start+1].Id
	}
	return out, nil
}

func (f *fakeAPI) GetHostedZone(_ context.Context, in *route53.GetHostedZoneInput, _ ...func(*route53.Options)) (*route53.GetHostedZoneOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := aws.ToString(in.Id)
	for _, z := range f.zones {
		if strings.TrimPrefix(aws.ToString(z.Id), "/hostedzone/") == id {
			zone := z
			out := &route53.GetHostedZoneOutput{HostedZone: &zone, VPCs: f.vpcs[id]}
			if ns := f.ns[id]; ns != nil {
				out.DelegationSet = &types.DelegationSet{NameServers: ns}
			}
			return out, nil
		}
	}
	return nil, &types.NoSuchHostedZone{Message: aws.String("No hosted zone found with ID: " + id)}
}
