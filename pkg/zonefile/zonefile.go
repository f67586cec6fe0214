// Package zonefile describes hosted zones and their records in YAML and builds the
// matching stack.
package zonefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/naming"
)

// File is the root of a zone file.
type File struct {
	Stack    Stack  `yaml:"stack"`
	Defaults Record `yaml:"defaults"`
	Zones    []Zone `yaml:"zones"`
}

// Stack names the target stack. Name may be left out when Project is set, in which
// case it is derived from Project and Stage.
type Stack struct {
	Name        string            `yaml:"name"`
	Project     string            `yaml:"project"`
	Stage       string            `yaml:"stage"`
	Account     string            `yaml:"account" valid:"numeric,stringlength(12|12)"`
	Region      string            `yaml:"region"`
	Description string            `yaml:"description"`
	Tags        map[string]string `yaml:"tags"`
}

// Zone is a hosted zone. With HostedZoneID or Lookup set the zone is imported rather
// than created.
type Zone struct {
	ID                   string   `yaml:"id"`
	Name                 string   `yaml:"name" valid:"required,dns"`
	Comment              string   `yaml:"comment"`
	HostedZoneID         string   `yaml:"hostedZoneId"`
	Lookup               bool     `yaml:"lookup"`
	Private              bool     `yaml:"private"`
	Vpcs                 []Vpc    `yaml:"vpcs"`
	QueryLogsLogGroupArn string   `yaml:"queryLogsLogGroupArn"`
	CaaAmazon            bool     `yaml:"caaAmazon"`
	Records              []Record `yaml:"records"`
}

type Vpc struct {
	ID     string `yaml:"id" valid:"required,matches(^vpc-[0-9a-f]+$)"`
	Region string `yaml:"region"`
}

// Record is one record set. Target is shorthand for a single value; when Type is empty
// it is inferred from Target. TTL is a pointer so an explicit 0 survives defaults.
type Record struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Type             string   `yaml:"type" valid:"in(A|AAAA|CAA|CNAME|DS|HTTPS|MX|NAPTR|NS|PTR|SOA|SPF|SRV|SSHFP|SVCB|TLSA|TXT)"`
	Target           string   `yaml:"target"`
	Values           []string `yaml:"values"`
	TTL              *int     `yaml:"ttl" valid:"range(0|2147483647)"`
	Comment          string   `yaml:"comment"`
	Weight           *float64 `yaml:"weight"`
	Region           string   `yaml:"region"`
	SetIdentifier    string   `yaml:"setIdentifier"`
	MultiValueAnswer *bool    `yaml:"multiValueAnswer"`
	DeleteExisting   *bool    `yaml:"deleteExisting"`
}

// ReadFile loads and normalizes a zone file from disk.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path) //nolint:gosec // Caller-selected zone file.
	if err != nil {
		return nil, fmt.Errorf("zonefile: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Parse loads a zone file from memory.
func Parse(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a zone file, applies defaults, infers record types and validates it.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, cfn.Errorf(cfn.CodeRequiredMissing, "Required property 'stack' is missing")
		}
		return nil, fmt.Errorf("zonefile: decode: %w", err)
	}
	if err := file.normalize(); err != nil {
		return nil, err
	}
	if _, err := govalidator.ValidateStruct(&file); err != nil {
		return nil, cfn.Errorf(cfn.CodeValidationFailed, "zonefile: %v", err)
	}
	return &file, nil
}

func (f *File) normalize() error {
	if f.Stack.Name == "" {
		if f.Stack.Project == "" {
			return cfn.Errorf(cfn.CodeRequiredMissing, "Required property 'stack.name' is missing")
		}
		f.Stack.Name = naming.StackName(f.Stack.Project, f.Stack.Stage)
	}
	if f.Stack.Stage != "" {
		if f.Stack.Tags == nil {
			f.Stack.Tags = map[string]string{}
		}
		if _, ok := f.Stack.Tags["stage"]; !ok {
			f.Stack.Tags["stage"] = naming.NormalizeStage(f.Stack.Stage)
		}
	}
	defaults, err := f.recordDefaults()
	if err != nil {
		return err
	}
	for zi := range f.Zones {
		zone := &f.Zones[zi]
		if zone.Private && zone.HostedZoneID == "" && !zone.Lookup && len(zone.Vpcs) == 0 {
			return cfn.Errorf(cfn.CodeRequiredMissing, "zone %s: Required property 'vpcs' is missing for a private zone", zone.Name)
		}
		for ri := range zone.Records {
			rec := &zone.Records[ri]
			d := defaults
			if rec.Target != "" {
				d.Type = ""
			}
			if err := mergo.Merge(rec, d); err != nil {
				return fmt.Errorf("zonefile: apply defaults: %w", err)
			}
			if err := rec.normalize(); err != nil {
				return fmt.Errorf("zone %s: %w", zone.Name, err)
			}
		}
	}
	return nil
}

// recordDefaults returns the defaults block. Identity and value fields are per record
// and may not be defaulted.
func (f *File) recordDefaults() (Record, error) {
	d := f.Defaults
	var field string
	switch {
	case d.ID != "":
		field = "id"
	case d.Name != "":
		field = "name"
	case d.Target != "":
		field = "target"
	case len(d.Values) > 0:
		field = "values"
	default:
		return d, nil
	}
	return Record{}, cfn.Errorf(cfn.CodeValidationFailed, "defaults: %s cannot be defaulted", field)
}

func (r *Record) normalize() error {
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
	if r.Target != "" {
		if len(r.Values) > 0 {
			return cfn.Errorf(cfn.CodeValidationFailed, "record %q: target and values are mutually exclusive", r.Name)
		}
		r.Values = []string{r.Target}
		if r.Type == "" {
			r.Type = InferType(r.Target)
		}
	}
	if r.Type == "" {
		return cfn.Errorf(cfn.CodeRequiredMissing, "record %q: Required property 'type' is missing", r.Name)
	}
	if len(r.Values) == 0 {
		return cfn.Errorf(cfn.CodeRequiredMissing, "record %q: Required property 'values' is missing", r.Name)
	}
	return nil
}

// InferType picks A for IPv4 targets, AAAA for IPv6 and CNAME for anything else.
func InferType(target string) string {
	switch {
	case govalidator.IsIPv4(target):
		return "A"
	case govalidator.IsIPv6(target):
		return "AAAA"
	default:
		return "CNAME"
	}
}
