package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/route53api"
	"github.com/theory-cloud/zonetheory/route53"
)

// ClientFactory builds a Route 53 client for the account/region of a lookup.
type ClientFactory func(ctx context.Context, options ...route53api.Option) (route53api.Client, error)

// HostedZoneProvider answers "hosted-zone" lookups recorded by HostedZone_FromLookup.
type HostedZoneProvider struct {
	newClient ClientFactory
}

func NewHostedZoneProvider(factory ClientFactory) *HostedZoneProvider {
	if factory == nil {
		factory = route53api.NewClient
	}
	return &HostedZoneProvider{newClient: factory}
}

// Name returns the context provider this resolves.
func (p *HostedZoneProvider) Name() string {
	return route53.HostedZoneContextProvider
}

// Lookup finds exactly one zone matching the props and returns its context value.
func (p *HostedZoneProvider) Lookup(ctx context.Context, props map[string]any) (any, error) {
	domain, _ := props["domainName"].(string)
	if domain == "" {
		return nil, cfn.Errorf(cfn.CodeRequiredMissing, "Required property 'domainName' is missing")
	}
	privateZone, _ := props["privateZone"].(bool)
	vpcID, _ := props["vpcId"].(string)

	var options []route53api.Option
	if region, _ := props["region"].(string); region != "" {
		options = append(options, route53api.WithRegion(region))
	}
	client, err := p.newClient(ctx, options...)
	if err != nil {
		return nil, err
	}

	candidates, err := client.FindHostedZonesByName(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("list hosted zones for %s: %w", domain, err)
	}

	var matches []route53api.HostedZone
	for _, zone := range candidates {
		if zone.Private != privateZone {
			continue
		}
		if vpcID != "" {
			described, err := client.GetHostedZone(ctx, zone.ID)
			if err != nil {
				return nil, fmt.Errorf("describe hosted zone %s: %w", zone.ID, err)
			}
			if !associatedWith(described, vpcID) {
				continue
			}
		}
		matches = append(matches, zone)
	}

	if len(matches) != 1 {
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return nil, cfn.Errorf(cfn.CodeLookupFailed,
			"Found zones: [%s] for dns:%s, privateZone:%t, vpcId:%s, but wanted exactly 1 zone",
			strings.Join(ids, ","), domain, privateZone, vpcID)
	}
	zone := matches[0]
	return map[string]any{
		"Id":   "/hostedzone/" + route53api.NormalizeHostedZoneID(zone.ID),
		"Name": zone.Name,
	}, nil
}

func associatedWith(zone route53api.HostedZone, vpcID string) bool {
	for _, vpc := range zone.VPCs {
		if vpc.ID == vpcID {
			return true
		}
	}
	return false
}
