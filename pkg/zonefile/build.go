package zonefile

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/route53"
)

// Build adds the stack described by f to app.
func Build(app *cfn.App, f *File) (stack *cfn.Stack, err error) {
	err = cfn.Try(func() {
		stack = cfn.NewStack(app, f.Stack.Name, f.stackProps())
		for i := range f.Zones {
			buildZone(stack, &f.Zones[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return stack, nil
}

func (f *File) stackProps() *cfn.StackProps {
	props := &cfn.StackProps{}
	if f.Stack.Account != "" || f.Stack.Region != "" {
		props.Env = &cfn.Environment{}
		if f.Stack.Account != "" {
			props.Env.Account = jsii.String(f.Stack.Account)
		}
		if f.Stack.Region != "" {
			props.Env.Region = jsii.String(f.Stack.Region)
		}
	}
	if f.Stack.Description != "" {
		props.Description = jsii.String(f.Stack.Description)
	}
	if len(f.Stack.Tags) > 0 {
		tags := make(map[string]*string, len(f.Stack.Tags))
		for k, v := range f.Stack.Tags {
			tags[k] = jsii.String(v)
		}
		props.Tags = &tags
	}
	return props
}

func buildZone(stack *cfn.Stack, z *Zone) {
	id := z.ID
	if id == "" {
		id = constructID(z.Name)
	}
	zone := newZone(stack, id, z)

	used := map[string]int{}
	for i := range z.Records {
		rec := &z.Records[i]
		recordID := rec.ID
		if recordID == "" {
			label := rec.Name
			if label == "" {
				label = "Apex"
			}
			recordID = constructID(label) + rec.Type
		}
		if n := used[recordID]; n > 0 {
			used[recordID] = n + 1
			recordID = fmt.Sprintf("%s%d", recordID, n+1)
		} else {
			used[recordID] = 1
		}
		buildRecord(zone, recordID, rec)
	}
}

func newZone(stack *cfn.Stack, id string, z *Zone) route53.IHostedZone {
	switch {
	case z.HostedZoneID != "":
		return route53.HostedZone_FromHostedZoneAttributes(stack, jsii.String(id), &route53.HostedZoneAttributes{
			HostedZoneId: jsii.String(z.HostedZoneID),
			ZoneName:     jsii.String(z.Name),
		})
	case z.Lookup:
		query := &route53.HostedZoneProviderProps{DomainName: jsii.String(z.Name)}
		if z.Private {
			query.PrivateZone = jsii.Bool(true)
		}
		if len(z.Vpcs) > 0 {
			query.VpcId = jsii.String(z.Vpcs[0].ID)
		}
		return route53.HostedZone_FromLookup(stack, jsii.String(id), query)
	}

	common := route53.CommonHostedZoneProps{ZoneName: jsii.String(z.Name)}
	if z.Comment != "" {
		common.Comment = jsii.String(z.Comment)
	}
	if z.QueryLogsLogGroupArn != "" {
		common.QueryLogsLogGroupArn = jsii.String(z.QueryLogsLogGroupArn)
	}

	if z.Private {
		zone := route53.NewPrivateHostedZone(stack, jsii.String(id), &route53.PrivateHostedZoneProps{
			CommonHostedZoneProps: common,
			Vpc:                   z.Vpcs[0].props(),
		})
		for _, vpc := range z.Vpcs[1:] {
			zone.AddVpc(vpc.props())
		}
		return zone
	}
	props := &route53.PublicHostedZoneProps{CommonHostedZoneProps: common}
	if z.CaaAmazon {
		props.CaaAmazon = jsii.Bool(true)
	}
	return route53.NewPublicHostedZone(stack, jsii.String(id), props)
}

func (v Vpc) props() *route53.Vpc {
	out := &route53.Vpc{VpcId: jsii.String(v.ID)}
	if v.Region != "" {
		out.Region = jsii.String(v.Region)
	}
	return out
}

func buildRecord(zone route53.IHostedZone, id string, rec *Record) {
	options := route53.RecordSetOptions{
		Zone:             zone,
		Weight:           rec.Weight,
		MultiValueAnswer: rec.MultiValueAnswer,
		DeleteExisting:   rec.DeleteExisting,
	}
	if rec.Name != "" {
		options.RecordName = jsii.String(rec.Name)
	}
	if rec.TTL != nil {
		options.Ttl = cfn.Duration_Seconds(float64(*rec.TTL))
	}
	if rec.Comment != "" {
		options.Comment = jsii.String(rec.Comment)
	}
	if rec.Region != "" {
		options.Region = jsii.String(rec.Region)
	}
	if rec.SetIdentifier != "" {
		options.SetIdentifier = jsii.String(rec.SetIdentifier)
	}

	values := jsii.Strings(rec.Values...)
	if route53.RecordType(rec.Type) == route53.RecordType_TXT {
		route53.NewTxtRecord(zone, jsii.String(id), &route53.TxtRecordProps{
			RecordSetOptions: options,
			Values:           values,
		})
		return
	}
	route53.NewRecordSet(zone, jsii.String(id), &route53.RecordSetProps{
		RecordSetOptions: options,
		RecordType:       route53.RecordType(rec.Type),
		Target:           route53.RecordTarget_FromValues(*values...),
	})
}

// constructID turns a DNS name into a PascalCase construct id.
func constructID(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range strings.TrimSuffix(name, ".") {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if r == '*' {
				b.WriteString("Wildcard")
			}
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Zone"
	}
	return b.String()
}
