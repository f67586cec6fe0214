// Package targets provides alias record targets for route53 records: CloudFront
// distributions, load balancers, API Gateway domains, S3 website buckets, other
// records and interface VPC endpoints.
package targets
