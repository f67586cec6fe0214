// Package route53 models Amazon Route 53 CloudFormation resources.
//
// The Cfn* types map 1:1 onto the AWS::Route53::* resource specification and perform no
// cross-field checks. The remaining constructs (HostedZone, ARecord, ...) build those
// resources with the defaults and validation of the AWS CDK Route 53 library.
package route53
