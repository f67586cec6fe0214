package targets

import (
	"strings"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// An Elastic Load Balancing v2 load balancer.
type ILoadBalancer interface {
	// The DNS name of the load balancer.
	LoadBalancerDnsName() *string
	// The canonical hosted zone id of the load balancer.
	LoadBalancerCanonicalHostedZoneId() *string
}

// Options for an alias that points at a load balancer.
type LoadBalancerTargetProps struct {
	// Evaluate the health of the load balancer. Default: false.
	EvaluateTargetHealth *bool `field:"optional" json:"evaluateTargetHealth" yaml:"evaluateTargetHealth"`
}

// Use an ELBv2 as an alias record target.
type LoadBalancerTarget struct {
	loadBalancer ILoadBalancer
	props        LoadBalancerTargetProps
}

var _ route53.IAliasRecordTarget = (*LoadBalancerTarget)(nil)

func NewLoadBalancerTarget(loadBalancer ILoadBalancer, props *LoadBalancerTargetProps) *LoadBalancerTarget {
	if loadBalancer == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter loadBalancer is required, but nil was provided"))
	}
	t := &LoadBalancerTarget{loadBalancer: loadBalancer}
	if props != nil {
		t.props = *props
	}
	return t
}

func (t *LoadBalancerTarget) Bind(_ route53.IRecordSet, _ route53.IHostedZone) *route53.AliasRecordTargetConfig {
	return &route53.AliasRecordTargetConfig{
		DnsName:              jsii.String(dualstack(*t.loadBalancer.LoadBalancerDnsName())),
		HostedZoneId:         t.loadBalancer.LoadBalancerCanonicalHostedZoneId(),
		EvaluateTargetHealth: t.props.EvaluateTargetHealth,
	}
}

// dualstack prefixes the load balancer name so the alias answers both A and AAAA queries.
func dualstack(dnsName string) string {
	return "dualstack." + strings.TrimPrefix(dnsName, "dualstack.")
}
