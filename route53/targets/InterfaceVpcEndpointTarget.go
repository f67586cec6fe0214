package targets

import (
	"strings"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// An interface VPC endpoint.
type IInterfaceVpcEndpoint interface {
	// The DNS entries of the endpoint, each formatted "hostedZoneId:dnsName".
	VpcEndpointDnsEntries() *[]*string
}

// Set an InterfaceVpcEndpoint as a target for an ARecord.
type InterfaceVpcEndpointTarget struct {
	endpoint IInterfaceVpcEndpoint
}

var _ route53.IAliasRecordTarget = (*InterfaceVpcEndpointTarget)(nil)

func NewInterfaceVpcEndpointTarget(endpoint IInterfaceVpcEndpoint) *InterfaceVpcEndpointTarget {
	if endpoint == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter endpoint is required, but nil was provided"))
	}
	return &InterfaceVpcEndpointTarget{endpoint: endpoint}
}

func (t *InterfaceVpcEndpointTarget) Bind(_ route53.IRecordSet, _ route53.IHostedZone) *route53.AliasRecordTargetConfig {
	entries := t.endpoint.VpcEndpointDnsEntries()
	if entries == nil || len(*entries) == 0 {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "interface VPC endpoint has no DNS entries"))
	}

	if !cfn.IsUnresolvedList(*entries) && !cfn.IsUnresolved(*(*entries)[0]) {
		zoneID, dnsName, ok := strings.Cut(*(*entries)[0], ":")
		if !ok {
			panic(cfn.Errorf(cfn.CodeValidationFailed, "malformed VPC endpoint DNS entry: %s", *(*entries)[0]))
		}
		return &route53.AliasRecordTargetConfig{
			DnsName:      jsii.String(dnsName),
			HostedZoneId: jsii.String(zoneID),
		}
	}

	first := map[string]any{"Fn::Select": []any{0, *entries}}
	parts := map[string]any{"Fn::Split": []any{":", first}}
	return &route53.AliasRecordTargetConfig{
		DnsName:      jsii.String(cfn.RawToken(map[string]any{"Fn::Select": []any{1, parts}})),
		HostedZoneId: jsii.String(cfn.RawToken(map[string]any{"Fn::Select": []any{0, parts}})),
	}
}
