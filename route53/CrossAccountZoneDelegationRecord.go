package route53

import (
	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Construction properties for a CrossAccountZoneDelegationRecord.
//
// Exactly one of ParentHostedZoneName and ParentHostedZoneId must be set.
type CrossAccountZoneDelegationRecordProps struct {
	// The zone to be delegated.
	DelegatedZone IHostedZone `field:"required" json:"delegatedZone" yaml:"delegatedZone"`
	// The ARN of the role in the parent account that can upsert NS records in the parent zone.
	DelegationRoleArn *string `field:"required" json:"delegationRoleArn" yaml:"delegationRoleArn"`
	// Region from which to obtain temporary credentials. Default: the Route 53 signing region of the partition.
	AssumeRoleRegion *string `field:"optional" json:"assumeRoleRegion" yaml:"assumeRoleRegion"`
	// The hosted zone id in the parent account.
	ParentHostedZoneId *string `field:"optional" json:"parentHostedZoneId" yaml:"parentHostedZoneId"`
	// The hosted zone name in the parent account.
	ParentHostedZoneName *string `field:"optional" json:"parentHostedZoneName" yaml:"parentHostedZoneName"`
	// The removal policy to apply to the record set. Default: RemovalPolicy.DESTROY.
	RemovalPolicy cfn.RemovalPolicy `field:"optional" json:"removalPolicy" yaml:"removalPolicy"`
	// The resource record cache time to live (TTL). Default: Duration.days(2).
	Ttl *cfn.Duration `field:"optional" json:"ttl" yaml:"ttl"`
}

func (p CrossAccountZoneDelegationRecordProps) String() string {
	return cfn.Repr("CrossAccountZoneDelegationRecordProps", p)
}

// A Cross Account Zone Delegation record.
//
// The NS record is written into the parent zone at deploy time by the custom resource
// handler, using credentials from assuming DelegationRoleArn.
type CrossAccountZoneDelegationRecord struct {
	*cfn.Construct

	resource *cfn.CfnResource
}

func NewCrossAccountZoneDelegationRecord(scope cfn.IConstruct, id *string, props *CrossAccountZoneDelegationRecordProps) *CrossAccountZoneDelegationRecord {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	if props.ParentHostedZoneName == nil && props.ParentHostedZoneId == nil {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "At least one of parentHostedZoneName or parentHostedZoneId is required"))
	}
	if props.ParentHostedZoneName != nil && props.ParentHostedZoneId != nil {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Only one of parentHostedZoneName and parentHostedZoneId is supported"))
	}
	nameServers := props.DelegatedZone.HostedZoneNameServers()
	if nameServers == nil {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Cannot delegate zone '%s': its name servers are unknown", *props.DelegatedZone.ZoneName()))
	}

	ttl := defaultDelegationTtl
	if props.Ttl != nil {
		ttl = props.Ttl
	}
	secs, err := ttl.ToSeconds()
	cfn.Must(err)

	c := &CrossAccountZoneDelegationRecord{Construct: cfn.NewConstruct(scope, *id)}
	c.SetHost(c)

	properties := cfn.PropertyMap{}.
		Set("ServiceToken", customResourceServiceToken(c)).
		Set("AssumeRoleArn", props.DelegationRoleArn).
		Set("ParentZoneName", props.ParentHostedZoneName).
		Set("ParentZoneId", props.ParentHostedZoneId).
		Set("DelegatedZoneName", props.DelegatedZone.ZoneName()).
		Set("DelegatedZoneNameServers", nameServers).
		Set("TTL", secs).
		Set("AssumeRoleRegion", props.AssumeRoleRegion)

	c.resource = cfn.NewCfnResource(c, "CrossAccountZoneDelegationCustomResource", &cfn.CfnResourceProps{
		Type:       jsii.String(CrossAccountZoneDelegationResourceType),
		Properties: properties,
	})
	c.resource.ApplyRemovalPolicy(props.RemovalPolicy)
	if delegated, ok := props.DelegatedZone.(interface{ CfnHostedZone() *CfnHostedZone }); ok {
		c.resource.AddDependency(delegated.CfnHostedZone())
	}
	return c
}

// The custom resource that writes the delegation.
func (c *CrossAccountZoneDelegationRecord) CustomResource() *cfn.CfnResource {
	return c.resource
}
