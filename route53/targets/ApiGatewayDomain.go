package targets

import (
	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// An API Gateway custom domain name.
type IDomainName interface {
	// The regional or edge domain name that the custom domain maps to.
	DomainNameAliasDomainName() *string
	// The hosted zone id of DomainNameAliasDomainName.
	DomainNameAliasHostedZoneId() *string
}

// Defines an API Gateway domain name as the alias target.
type ApiGatewayDomain struct {
	domainName IDomainName
}

var _ route53.IAliasRecordTarget = (*ApiGatewayDomain)(nil)

func NewApiGatewayDomain(domainName IDomainName) *ApiGatewayDomain {
	if domainName == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter domainName is required, but nil was provided"))
	}
	return &ApiGatewayDomain{domainName: domainName}
}

func (t *ApiGatewayDomain) Bind(_ route53.IRecordSet, _ route53.IHostedZone) *route53.AliasRecordTargetConfig {
	return &route53.AliasRecordTargetConfig{
		DnsName:      t.domainName.DomainNameAliasDomainName(),
		HostedZoneId: t.domainName.DomainNameAliasHostedZoneId(),
	}
}
