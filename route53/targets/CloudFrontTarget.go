package targets

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// The hosted zone id CloudFront uses for alias records in the aws partition.
const CloudFrontTarget_CLOUDFRONT_ZONE_ID = "Z2FDTNDATAQYW2"

// The hosted zone id CloudFront uses in the aws-cn partition.
const cloudFrontChinaZoneID = "Z3RFFRIM2A3IF5"

// A CloudFront distribution.
type IDistribution interface {
	// The domain name of the distribution, such as d111111abcdef8.cloudfront.net.
	DistributionDomainName() *string
}

// Use a CloudFront Distribution as an alias record target.
type CloudFrontTarget struct {
	distribution IDistribution
}

var _ route53.IAliasRecordTarget = (*CloudFrontTarget)(nil)

func NewCloudFrontTarget(distribution IDistribution) *CloudFrontTarget {
	if distribution == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter distribution is required, but nil was provided"))
	}
	return &CloudFrontTarget{distribution: distribution}
}

// Get the hosted zone id for the current partition.
//
// Stacks with a concrete China region get the aws-cn zone; everything else gets the
// global CloudFront zone.
func CloudFrontTarget_GetHostedZoneId(scope cfn.IConstruct) *string {
	region := cfn.StackOf(scope).Region()
	if !cfn.IsUnresolved(region) && len(region) > 3 && region[:3] == "cn-" {
		return jsii.String(cloudFrontChinaZoneID)
	}
	return jsii.String(CloudFrontTarget_CLOUDFRONT_ZONE_ID)
}

func (t *CloudFrontTarget) Bind(record route53.IRecordSet, _ route53.IHostedZone) *route53.AliasRecordTargetConfig {
	return &route53.AliasRecordTargetConfig{
		DnsName:      t.distribution.DistributionDomainName(),
		HostedZoneId: CloudFrontTarget_GetHostedZoneId(record),
	}
}
