package cdkbridge

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// converter records the first unresolved token it sees. A lenient converter keeps the
// token text; Attach replaces those properties with their resolved values afterwards.
type converter struct {
	lenient bool
	err     error
}

func (c *converter) str(field string, s *string) *string {
	if s != nil && !c.lenient && c.err == nil && cfn.IsUnresolved(*s) {
		c.err = cfn.Errorf(cfn.CodeUnsupported, "%s holds an unresolved token; use Attach for props that reference other resources", field)
	}
	return s
}

func (c *converter) strs(field string, list *[]*string) *[]*string {
	if list == nil {
		return nil
	}
	for _, s := range *list {
		c.str(field, s)
	}
	return list
}

// HostedZoneProps converts L1 hosted zone props.
func HostedZoneProps(p *route53.CfnHostedZoneProps) (*awsroute53.CfnHostedZoneProps, error) {
	var c converter
	out := c.hostedZone(p)
	return out, c.err
}

// RecordSetProps converts L1 record set props.
func RecordSetProps(p *route53.CfnRecordSetProps) (*awsroute53.CfnRecordSetProps, error) {
	var c converter
	out := c.recordSet(p)
	return out, c.err
}

// RecordSetGroupProps converts L1 record set group props, keeping record order.
func RecordSetGroupProps(p *route53.CfnRecordSetGroupProps) (*awsroute53.CfnRecordSetGroupProps, error) {
	var c converter
	out := c.recordSetGroup(p)
	return out, c.err
}

// HealthCheckProps converts L1 health check props.
func HealthCheckProps(p *route53.CfnHealthCheckProps) (*awsroute53.CfnHealthCheckProps, error) {
	var c converter
	out := c.healthCheck(p)
	return out, c.err
}

// KeySigningKeyProps converts L1 key signing key props.
func KeySigningKeyProps(p *route53.CfnKeySigningKeyProps) (*awsroute53.CfnKeySigningKeyProps, error) {
	var c converter
	out := c.keySigningKey(p)
	return out, c.err
}

// DNSSECProps converts L1 DNSSEC props.
func DNSSECProps(p *route53.CfnDNSSECProps) (*awsroute53.CfnDNSSECProps, error) {
	var c converter
	out := &awsroute53.CfnDNSSECProps{HostedZoneId: c.str("hostedZoneId", p.HostedZoneId)}
	return out, c.err
}

// CidrCollectionProps converts L1 CIDR collection props.
func CidrCollectionProps(p *route53.CfnCidrCollectionProps) (*awsroute53.CfnCidrCollectionProps, error) {
	var c converter
	out := c.cidrCollection(p)
	return out, c.err
}

func (c *converter) hostedZone(p *route53.CfnHostedZoneProps) *awsroute53.CfnHostedZoneProps {
	out := &awsroute53.CfnHostedZoneProps{Name: c.str("name", p.Name)}
	if cfg := p.HostedZoneConfig; cfg != nil {
		out.HostedZoneConfig = &awsroute53.CfnHostedZone_HostedZoneConfigProperty{Comment: c.str("hostedZoneConfig.comment", cfg.Comment)}
	}
	if f := p.HostedZoneFeatures; f != nil && f.EnableAcceleratedRecovery != nil {
		out.HostedZoneFeatures = &awsroute53.CfnHostedZone_HostedZoneFeaturesProperty{
			EnableAcceleratedRecovery: *f.EnableAcceleratedRecovery,
		}
	}
	if q := p.QueryLoggingConfig; q != nil {
		out.QueryLoggingConfig = &awsroute53.CfnHostedZone_QueryLoggingConfigProperty{
			CloudWatchLogsLogGroupArn: c.str("queryLoggingConfig.cloudWatchLogsLogGroupArn", q.CloudWatchLogsLogGroupArn),
		}
	}
	if p.HostedZoneTags != nil {
		tags := make([]*awsroute53.CfnHostedZone_HostedZoneTagProperty, 0, len(*p.HostedZoneTags))
		for _, t := range *p.HostedZoneTags {
			tags = append(tags, &awsroute53.CfnHostedZone_HostedZoneTagProperty{Key: c.str("hostedZoneTags.key", t.Key), Value: c.str("hostedZoneTags.value", t.Value)})
		}
		out.HostedZoneTags = &tags
	}
	if p.Vpcs != nil {
		vpcs := make([]any, 0, len(*p.Vpcs))
		for _, v := range *p.Vpcs {
			vpcs = append(vpcs, &awsroute53.CfnHostedZone_VPCProperty{VpcId: c.str("vpcs.vpcId", v.VpcId), VpcRegion: c.str("vpcs.vpcRegion", v.VpcRegion)})
		}
		out.Vpcs = vpcs
	}
	return out
}

func (c *converter) recordSet(p *route53.CfnRecordSetProps) *awsroute53.CfnRecordSetProps {
	out := &awsroute53.CfnRecordSetProps{
		Name:            c.str("name", p.Name),
		Type:            c.str("type", p.Type),
		Comment:         c.str("comment", p.Comment),
		Failover:        c.str("failover", p.Failover),
		HealthCheckId:   c.str("healthCheckId", p.HealthCheckId),
		HostedZoneId:    c.str("hostedZoneId", p.HostedZoneId),
		HostedZoneName:  c.str("hostedZoneName", p.HostedZoneName),
		Region:          c.str("region", p.Region),
		ResourceRecords: c.strs("resourceRecords", p.ResourceRecords),
		SetIdentifier:   c.str("setIdentifier", p.SetIdentifier),
		Ttl:             c.str("ttl", p.Ttl),
		Weight:          p.Weight,
	}
	if p.MultiValueAnswer != nil {
		out.MultiValueAnswer = *p.MultiValueAnswer
	}
	if a := p.AliasTarget; a != nil {
		alias := &awsroute53.CfnRecordSet_AliasTargetProperty{
			DnsName:      c.str("aliasTarget.dnsName", a.DnsName),
			HostedZoneId: c.str("aliasTarget.hostedZoneId", a.HostedZoneId),
		}
		if a.EvaluateTargetHealth != nil {
			alias.EvaluateTargetHealth = *a.EvaluateTargetHealth
		}
		out.AliasTarget = alias
	}
	if g := p.GeoLocation; g != nil {
		out.GeoLocation = &awsroute53.CfnRecordSet_GeoLocationProperty{
			ContinentCode:   g.ContinentCode,
			CountryCode:     g.CountryCode,
			SubdivisionCode: g.SubdivisionCode,
		}
	}
	if cr := p.CidrRoutingConfig; cr != nil {
		out.CidrRoutingConfig = &awsroute53.CfnRecordSet_CidrRoutingConfigProperty{
			CollectionId: c.str("cidrRoutingConfig.collectionId", cr.CollectionId),
			LocationName: c.str("cidrRoutingConfig.locationName", cr.LocationName),
		}
	}
	if gp := p.GeoProximityLocation; gp != nil {
		prox := &awsroute53.CfnRecordSet_GeoProximityLocationProperty{
			AwsRegion:      gp.AwsRegion,
			Bias:           gp.Bias,
			LocalZoneGroup: gp.LocalZoneGroup,
		}
		if co := gp.Coordinates; co != nil {
			prox.Coordinates = &awsroute53.CfnRecordSet_CoordinatesProperty{Latitude: co.Latitude, Longitude: co.Longitude}
		}
		out.GeoProximityLocation = prox
	}
	return out
}

func (c *converter) recordSetGroup(p *route53.CfnRecordSetGroupProps) *awsroute53.CfnRecordSetGroupProps {
	out := &awsroute53.CfnRecordSetGroupProps{
		Comment:        c.str("comment", p.Comment),
		HostedZoneId:   c.str("hostedZoneId", p.HostedZoneId),
		HostedZoneName: c.str("hostedZoneName", p.HostedZoneName),
	}
	if p.RecordSets == nil {
		return out
	}
	records := make([]any, 0, len(*p.RecordSets))
	for _, r := range *p.RecordSets {
		rec := &awsroute53.CfnRecordSetGroup_RecordSetProperty{
			Name:            c.str("recordSets.name", r.Name),
			Type:            c.str("recordSets.type", r.Type),
			Failover:        c.str("recordSets.failover", r.Failover),
			HealthCheckId:   c.str("recordSets.healthCheckId", r.HealthCheckId),
			HostedZoneId:    c.str("recordSets.hostedZoneId", r.HostedZoneId),
			HostedZoneName:  c.str("recordSets.hostedZoneName", r.HostedZoneName),
			Region:          c.str("recordSets.region", r.Region),
			ResourceRecords: c.strs("recordSets.resourceRecords", r.ResourceRecords),
			SetIdentifier:   c.str("recordSets.setIdentifier", r.SetIdentifier),
			Ttl:             c.str("recordSets.ttl", r.Ttl),
			Weight:          r.Weight,
		}
		if r.MultiValueAnswer != nil {
			rec.MultiValueAnswer = *r.MultiValueAnswer
		}
		if a := r.AliasTarget; a != nil {
			alias := &awsroute53.CfnRecordSetGroup_AliasTargetProperty{
				DnsName:      c.str("recordSets.aliasTarget.dnsName", a.DnsName),
				HostedZoneId: c.str("recordSets.aliasTarget.hostedZoneId", a.HostedZoneId),
			}
			if a.EvaluateTargetHealth != nil {
				alias.EvaluateTargetHealth = *a.EvaluateTargetHealth
			}
			rec.AliasTarget = alias
		}
		if g := r.GeoLocation; g != nil {
			rec.GeoLocation = &awsroute53.CfnRecordSetGroup_GeoLocationProperty{
				ContinentCode:   g.ContinentCode,
				CountryCode:     g.CountryCode,
				SubdivisionCode: g.SubdivisionCode,
			}
		}
		if cr := r.CidrRoutingConfig; cr != nil {
			rec.CidrRoutingConfig = &awsroute53.CfnRecordSetGroup_CidrRoutingConfigProperty{
				CollectionId: c.str("recordSets.cidrRoutingConfig.collectionId", cr.CollectionId),
				LocationName: c.str("recordSets.cidrRoutingConfig.locationName", cr.LocationName),
			}
		}
		if gp := r.GeoProximityLocation; gp != nil {
			prox := &awsroute53.CfnRecordSetGroup_GeoProximityLocationProperty{
				AwsRegion:      gp.AwsRegion,
				Bias:           gp.Bias,
				LocalZoneGroup: gp.LocalZoneGroup,
			}
			if co := gp.Coordinates; co != nil {
				prox.Coordinates = &awsroute53.CfnRecordSetGroup_CoordinatesProperty{Latitude: co.Latitude, Longitude: co.Longitude}
			}
			rec.GeoProximityLocation = prox
		}
		records = append(records, rec)
	}
	out.RecordSets = records
	return out
}

func (c *converter) healthCheck(p *route53.CfnHealthCheckProps) *awsroute53.CfnHealthCheckProps {
	out := &awsroute53.CfnHealthCheckProps{}
	if cfg := p.HealthCheckConfig; cfg != nil {
		hc := &awsroute53.CfnHealthCheck_HealthCheckConfigProperty{
			Type:                         c.str("healthCheckConfig.type", cfg.Type),
			ChildHealthChecks:            c.strs("healthCheckConfig.childHealthChecks", cfg.ChildHealthChecks),
			FailureThreshold:             cfg.FailureThreshold,
			FullyQualifiedDomainName:     c.str("healthCheckConfig.fullyQualifiedDomainName", cfg.FullyQualifiedDomainName),
			HealthThreshold:              cfg.HealthThreshold,
			InsufficientDataHealthStatus: cfg.InsufficientDataHealthStatus,
			IpAddress:                    c.str("healthCheckConfig.ipAddress", cfg.IpAddress),
			Port:                         cfg.Port,
			Regions:                      cfg.Regions,
			RequestInterval:              cfg.RequestInterval,
			ResourcePath:                 c.str("healthCheckConfig.resourcePath", cfg.ResourcePath),
			RoutingControlArn:            c.str("healthCheckConfig.routingControlArn", cfg.RoutingControlArn),
			SearchString:                 c.str("healthCheckConfig.searchString", cfg.SearchString),
		}
		if a := cfg.AlarmIdentifier; a != nil {
			hc.AlarmIdentifier = &awsroute53.CfnHealthCheck_AlarmIdentifierProperty{
				Name:   c.str("healthCheckConfig.alarmIdentifier.name", a.Name),
				Region: a.Region,
			}
		}
		if cfg.EnableSni != nil {
			hc.EnableSni = *cfg.EnableSni
		}
		if cfg.Inverted != nil {
			hc.Inverted = *cfg.Inverted
		}
		if cfg.MeasureLatency != nil {
			hc.MeasureLatency = *cfg.MeasureLatency
		}
		out.HealthCheckConfig = hc
	}
	if p.HealthCheckTags != nil {
		tags := make([]*awsroute53.CfnHealthCheck_HealthCheckTagProperty, 0, len(*p.HealthCheckTags))
		for _, t := range *p.HealthCheckTags {
			tags = append(tags, &awsroute53.CfnHealthCheck_HealthCheckTagProperty{Key: c.str("healthCheckTags.key", t.Key), Value: c.str("healthCheckTags.value", t.Value)})
		}
		out.HealthCheckTags = &tags
	}
	return out
}

func (c *converter) keySigningKey(p *route53.CfnKeySigningKeyProps) *awsroute53.CfnKeySigningKeyProps {
	return &awsroute53.CfnKeySigningKeyProps{
		HostedZoneId:            c.str("hostedZoneId", p.HostedZoneId),
		KeyManagementServiceArn: c.str("keyManagementServiceArn", p.KeyManagementServiceArn),
		Name:                    c.str("name", p.Name),
		Status:                  c.str("status", p.Status),
	}
}

func (c *converter) cidrCollection(p *route53.CfnCidrCollectionProps) *awsroute53.CfnCidrCollectionProps {
	out := &awsroute53.CfnCidrCollectionProps{Name: c.str("name", p.Name)}
	if p.Locations != nil {
		locations := make([]any, 0, len(*p.Locations))
		for _, l := range *p.Locations {
			locations = append(locations, &awsroute53.CfnCidrCollection_LocationProperty{
				CidrList:     c.strs("locations.cidrList", l.CidrList),
				LocationName: c.str("locations.locationName", l.LocationName),
			})
		}
		out.Locations = locations
	}
	return out
}
