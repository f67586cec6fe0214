package targets

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// An S3 bucket configured for static website hosting.
type IBucket interface {
	BucketName() *string
}

type websiteEndpoint struct {
	zoneID   string
	hostname string
}

// S3 website endpoints by region. Older regions use a dash before the region, newer
// ones a dot.
var websiteEndpoints = map[string]websiteEndpoint{
	"us-east-1":      {"Z3AQBSTGFYJSTF", "s3-website-us-east-1.amazonaws.com"},
	"us-east-2":      {"Z2O1EMRO9K5GLX", "s3-website.us-east-2.amazonaws.com"},
	"us-west-1":      {"Z2F56UZL2M1ACD", "s3-website-us-west-1.amazonaws.com"},
	"us-west-2":      {"Z3BJ6K6RIION7M", "s3-website-us-west-2.amazonaws.com"},
	"ca-central-1":   {"Z1QDHH18159H29", "s3-website.ca-central-1.amazonaws.com"},
	"eu-west-1":      {"Z1BKCTXD74EZPE", "s3-website-eu-west-1.amazonaws.com"},
	"eu-west-2":      {"Z3GKZC51ZF0DB4", "s3-website.eu-west-2.amazonaws.com"},
	"eu-west-3":      {"Z3R1K369G5AVDG", "s3-website.eu-west-3.amazonaws.com"},
	"eu-central-1":   {"Z21DNDUVLTQW6Q", "s3-website.eu-central-1.amazonaws.com"},
	"eu-north-1":     {"Z3BAZG2TWCNX0D", "s3-website.eu-north-1.amazonaws.com"},
	"ap-south-1":     {"Z11RGJOFQNVJUP", "s3-website.ap-south-1.amazonaws.com"},
	"ap-northeast-1": {"Z2M4EHUR26P7ZW", "s3-website-ap-northeast-1.amazonaws.com"},
	"ap-northeast-2": {"Z3W03O7B5YMIYP", "s3-website.ap-northeast-2.amazonaws.com"},
	"ap-northeast-3": {"Z2YQB5RD63NC85", "s3-website.ap-northeast-3.amazonaws.com"},
	"ap-southeast-1": {"Z3O0J2DXBE1FTB", "s3-website-ap-southeast-1.amazonaws.com"},
	"ap-southeast-2": {"Z1WCIGYICN2BYD", "s3-website-ap-southeast-2.amazonaws.com"},
	"sa-east-1":      {"Z7KQH4QJS55SO", "s3-website-sa-east-1.amazonaws.com"},
}

// Use an S3 website bucket as an alias record target.
type BucketWebsiteTarget struct {
	bucket IBucket
}

var _ route53.IAliasRecordTarget = (*BucketWebsiteTarget)(nil)

func NewBucketWebsiteTarget(bucket IBucket) *BucketWebsiteTarget {
	if bucket == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter bucket is required, but nil was provided"))
	}
	return &BucketWebsiteTarget{bucket: bucket}
}

func (t *BucketWebsiteTarget) Bind(record route53.IRecordSet, _ route53.IHostedZone) *route53.AliasRecordTargetConfig {
	region := cfn.StackOf(record).Region()
	if cfn.IsUnresolved(region) {
		panic(cfn.Errorf(cfn.CodeUnsupported, "Cannot use an S3 record alias in region-agnostic stacks. You must specify a specific region when you define the stack (see https://docs.aws.amazon.com/cdk/latest/guide/environments.html)"))
	}
	endpoint, ok := websiteEndpoints[region]
	if !ok {
		panic(cfn.Errorf(cfn.CodeUnsupported, "Bucket website target is not supported for the \"%s\" region", region))
	}
	return &route53.AliasRecordTargetConfig{
		DnsName:      jsii.String(endpoint.hostname),
		HostedZoneId: jsii.String(endpoint.zoneID),
	}
}
