package route53

import (
	"fmt"
	"regexp"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Create a Route53 public hosted zone.
type PublicHostedZone struct {
	*HostedZone

	crossAccountZoneDelegationRole *cfn.CfnResource
}

var _ IPublicHostedZone = (*PublicHostedZone)(nil)

var accountIDPattern = regexp.MustCompile(`^\d{12}$`)

func NewPublicHostedZone(scope cfn.IConstruct, id *string, props *PublicHostedZoneProps) *PublicHostedZone {
	if err := validateNewPublicHostedZoneParameters(scope, id, props); err != nil {
		panic(err)
	}
	if props.CrossAccountZoneDelegationRoleName != nil && props.CrossAccountZoneDelegationPrincipal == nil {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "crossAccountZoneDelegationRoleName property is not supported without crossAccountZoneDelegationPrincipal"))
	}
	p := &PublicHostedZone{HostedZone: newHostedZone(scope, *id, &props.CommonHostedZoneProps)}
	p.SetHost(p)

	if props.CaaAmazon != nil && *props.CaaAmazon {
		NewCaaAmazonRecord(p, jsii.String("CaaAmazon"), &CaaAmazonRecordProps{
			RecordSetOptions: RecordSetOptions{Zone: p},
		})
	}
	if props.CrossAccountZoneDelegationPrincipal != nil {
		p.crossAccountZoneDelegationRole = p.newDelegationRole(*props.CrossAccountZoneDelegationPrincipal, props.CrossAccountZoneDelegationRoleName)
	}
	return p
}

func (p *PublicHostedZone) publicHostedZone() {}

// Public zones cannot be associated with VPCs.
func (p *PublicHostedZone) AddVpc(vpc *Vpc) {
	panic(cfn.Errorf(cfn.CodeUnsupported, "Cannot associate public hosted zones with a VPC"))
}

// Adds a delegation from this zone to a designated zone.
func (p *PublicHostedZone) AddDelegation(delegate IPublicHostedZone, opts *ZoneDelegationOptions) *ZoneDelegationRecord {
	if delegate == nil {
		panic(cfn.Errorf(cfn.CodeRequiredMissing, "parameter delegate is required, but nil was provided"))
	}
	nameServers := delegate.HostedZoneNameServers()
	if nameServers == nil {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Cannot delegate to zone '%s': its name servers are unknown", *delegate.ZoneName()))
	}
	if opts == nil {
		opts = &ZoneDelegationOptions{}
	}
	id := fmt.Sprintf("%s -> %s", p.zoneName, *delegate.ZoneName())
	return NewZoneDelegationRecord(p, jsii.String(id), &ZoneDelegationRecordProps{
		RecordSetOptions: RecordSetOptions{
			Zone:       p,
			RecordName: delegate.ZoneName(),
			Comment:    opts.Comment,
			Ttl:        opts.Ttl,
		},
		NameServers: nameServers,
	})
}

// ARN of the role that can be assumed to add delegation records, or nil when no
// cross-account principal was configured.
func (p *PublicHostedZone) CrossAccountZoneDelegationRoleArn() *string {
	if p.crossAccountZoneDelegationRole == nil {
		return nil
	}
	return jsii.String(p.crossAccountZoneDelegationRole.GetAtt("Arn"))
}

func (p *PublicHostedZone) newDelegationRole(principal string, roleName *string) *cfn.CfnResource {
	stack := cfn.StackOf(p)
	if accountIDPattern.MatchString(principal) {
		principal = "arn:" + stack.Partition() + ":iam::" + principal + ":root"
	}
	props := map[string]any{
		"AssumeRolePolicyDocument": map[string]any{
			"Version": "2012-10-17",
			"Statement": []any{map[string]any{
				"Action":    "sts:AssumeRole",
				"Effect":    "Allow",
				"Principal": map[string]any{"AWS": principal},
			}},
		},
		"Policies": []any{map[string]any{
			"PolicyName": "delegation",
			"PolicyDocument": map[string]any{
				"Version": "2012-10-17",
				"Statement": []any{
					map[string]any{
						"Action":   "route53:ChangeResourceRecordSets",
						"Effect":   "Allow",
						"Resource": *p.HostedZoneArn(),
						"Condition": map[string]any{
							"ForAllValues:StringEquals": map[string]any{
								"route53:ChangeResourceRecordSetsRecordTypes": []any{"NS"},
								"route53:ChangeResourceRecordSetsActions":     []any{"UPSERT", "DELETE"},
							},
						},
					},
					map[string]any{
						"Action":   "route53:ListHostedZonesByName",
						"Effect":   "Allow",
						"Resource": "*",
					},
				},
			},
		}},
	}
	if roleName != nil {
		props["RoleName"] = *roleName
	}
	return cfn.NewCfnResource(p, "CrossAccountZoneDelegationRole", &cfn.CfnResourceProps{
		Type:       jsii.String("AWS::IAM::Role"),
		Properties: props,
	})
}
