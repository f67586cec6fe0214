package route53api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client is the subset of Route 53 used by custom resources and context lookups.
type Client interface {
	// ChangeRecordSet submits a single change and returns the change id.
	ChangeRecordSet(ctx context.Context, hostedZoneID string, action types.ChangeAction, rrset types.ResourceRecordSet) (string, error)
	// WaitForChange polls until the change is INSYNC or ctx is done.
	WaitForChange(ctx context.Context, changeID string) error
	// FindRecordSet returns the record set with exactly this name and type, or nil.
	FindRecordSet(ctx context.Context, hostedZoneID, name string, rrType types.RRType) (*types.ResourceRecordSet, error)
	// FindHostedZonesByName lists zones whose name matches exactly.
	FindHostedZonesByName(ctx context.Context, name string) ([]HostedZone, error)
	// GetHostedZone describes one zone, including name servers and VPC associations.
	GetHostedZone(ctx context.Context, hostedZoneID string) (HostedZone, error)
}

// HostedZone is a flattened hosted zone description.
type HostedZone struct {
	ID          string
	Name        string
	Private     bool
	NameServers []string
	VPCs        []VPC
}

type VPC struct {
	ID     string
	Region string
}

type route53API interface {
	ChangeResourceRecordSets(
		ctx context.Context,
		params *route53.ChangeResourceRecordSetsInput,
		optFns ...func(*route53.Options),
	) (*route53.ChangeResourceRecordSetsOutput, error)
	GetChange(
		ctx context.Context,
		params *route53.GetChangeInput,
		optFns ...func(*route53.Options),
	) (*route53.GetChangeOutput, error)
	ListResourceRecordSets(
		ctx context.Context,
		params *route53.ListResourceRecordSetsInput,
		optFns ...func(*route53.Options),
	) (*route53.ListResourceRecordSetsOutput, error)
	ListHostedZonesByName(
		ctx context.Context,
		params *route53.ListHostedZonesByNameInput,
		optFns ...func(*route53.Options),
	) (*route53.ListHostedZonesByNameOutput, error)
	GetHostedZone(
		ctx context.Context,
		params *route53.GetHostedZoneInput,
		optFns ...func(*route53.Options),
	) (*route53.GetHostedZoneOutput, error)
}

type client struct {
	api          route53API
	pollInterval time.Duration
}

type clientOptions struct {
	api          route53API
	awsCfg       *aws.Config
	region       string
	roleArn      string
	sessionName  string
	pollInterval time.Duration
}

type Option func(*clientOptions)

func WithAWSConfig(cfg aws.Config) Option {
	return func(opts *clientOptions) {
		cfgCopy := cfg
		opts.awsCfg = &cfgCopy
	}
}

func WithAPI(api route53API) Option {
	return func(opts *clientOptions) {
		opts.api = api
	}
}

// WithRegion overrides the region used for the SDK and for STS.
func WithRegion(region string) Option {
	return func(opts *clientOptions) {
		opts.region = strings.TrimSpace(region)
	}
}

// WithAssumeRole makes the client call Route 53 with credentials from assuming roleArn.
func WithAssumeRole(roleArn, sessionName string) Option {
	return func(opts *clientOptions) {
		opts.roleArn = strings.TrimSpace(roleArn)
		opts.sessionName = strings.TrimSpace(sessionName)
	}
}

// WithPollInterval sets how often WaitForChange polls GetChange.
func WithPollInterval(d time.Duration) Option {
	return func(opts *clientOptions) {
		opts.pollInterval = d
	}
}

const defaultPollInterval = 5 * time.Second

func NewClient(ctx context.Context, options ...Option) (Client, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := &clientOptions{pollInterval: defaultPollInterval}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}
	if opts.pollInterval <= 0 {
		opts.pollInterval = defaultPollInterval
	}

	if opts.api != nil {
		return &client{api: opts.api, pollInterval: opts.pollInterval}, nil
	}

	var cfg aws.Config
	if opts.awsCfg != nil {
		cfg = *opts.awsCfg
	} else {
		loaded, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("route53api: load aws config: %w", err)
		}
		cfg = loaded
	}
	if opts.region != "" {
		cfg.Region = opts.region
	}

	if opts.roleArn != "" {
		sessionName := opts.sessionName
		if sessionName == "" {
			sessionName = "zonetheory"
		}
		provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), opts.roleArn, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = sessionName
		})
		cfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return &client{api: route53.NewFromConfig(cfg), pollInterval: opts.pollInterval}, nil
}

// NormalizeHostedZoneID strips the "/hostedzone/" prefix the API returns.
func NormalizeHostedZoneID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "/hostedzone/")
}

// NormalizeName lowercases a DNS name and ensures a single trailing dot.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".") + "."
}

func (c *client) ChangeRecordSet(ctx context.Context, hostedZoneID string, action types.ChangeAction, rrset types.ResourceRecordSet) (string, error) {
	if c == nil || c.api == nil {
		return "", errors.New("route53api: client is nil")
	}
	hostedZoneID = NormalizeHostedZoneID(hostedZoneID)
	if hostedZoneID == "" {
		return "", errors.New("route53api: hosted zone id is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := c.api.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(hostedZoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{{Action: action, ResourceRecordSet: &rrset}},
		},
	})
	if err != nil {
		return "", err
	}
	if out.ChangeInfo == nil {
		return "", nil
	}
	return aws.ToString(out.ChangeInfo.Id), nil
}

func (c *client) WaitForChange(ctx context.Context, changeID string) error {
	if c == nil || c.api == nil {
		return errors.New("route53api: client is nil")
	}
	if strings.TrimSpace(changeID) == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		out, err := c.api.GetChange(ctx, &route53.GetChangeInput{Id: aws.String(changeID)})
		if err != nil {
			return err
		}
		if out.ChangeInfo != nil && out.ChangeInfo.Status == types.ChangeStatusInsync {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *client) FindRecordSet(ctx context.Context, hostedZoneID, name string, rrType types.RRType) (*types.ResourceRecordSet, error) {
	if c == nil || c.api == nil {
		return nil, errors.New("route53api: client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	want := NormalizeName(name)
	out, err := c.api.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId:    aws.String(NormalizeHostedZoneID(hostedZoneID)),
		StartRecordName: aws.String(want),
		StartRecordType: rrType,
		MaxItems:        aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	for i := range out.ResourceRecordSets {
		rr := out.ResourceRecordSets[i]
		if NormalizeName(aws.ToString(rr.Name)) == want && rr.Type == rrType {
			return &rr, nil
		}
	}
	return nil, nil
}

func (c *client) FindHostedZonesByName(ctx context.Context, name string) ([]HostedZone, error) {
	if c == nil || c.api == nil {
		return nil, errors.New("route53api: client is nil")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("route53api: zone name is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	want := NormalizeName(name)

	var zones []HostedZone
	input := &route53.ListHostedZonesByNameInput{DNSName: aws.String(want)}
	for {
		out, err := c.api.ListHostedZonesByName(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, z := range out.HostedZones {
			zoneName := NormalizeName(aws.ToString(z.Name))
			if zoneName != want {
				// Results are sorted by name; nothing later can match.
				return zones, nil
			}
			hz := HostedZone{ID: NormalizeHostedZoneID(aws.ToString(z.Id)), Name: zoneName}
			if z.Config != nil {
				hz.Private = z.Config.PrivateZone
			}
			zones = append(zones, hz)
		}
		if !out.IsTruncated {
			return zones, nil
		}
		input = &route53.ListHostedZonesByNameInput{DNSName: out.NextDNSName, HostedZoneId: out.NextHostedZoneId}
	}
}

func (c *client) GetHostedZone(ctx context.Context, hostedZoneID string) (HostedZone, error) {
	if c == nil || c.api == nil {
		return HostedZone{}, errors.New("route53api: client is nil")
	}
	hostedZoneID = NormalizeHostedZoneID(hostedZoneID)
	if hostedZoneID == "" {
		return HostedZone{}, errors.New("route53api: hosted zone id is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := c.api.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(hostedZoneID)})
	if err != nil {
		return HostedZone{}, err
	}

	hz := HostedZone{ID: hostedZoneID}
	if out.HostedZone != nil {
		hz.Name = NormalizeName(aws.ToString(out.HostedZone.Name))
		if out.HostedZone.Config != nil {
			hz.Private = out.HostedZone.Config.PrivateZone
		}
	}
	if out.DelegationSet != nil {
		hz.NameServers = append(hz.NameServers, out.DelegationSet.NameServers...)
	}
	for _, v := range out.VPCs {
		hz.VPCs = append(hz.VPCs, VPC{ID: aws.ToString(v.VPCId), Region: string(v.VPCRegion)})
	}
	return hz, nil
}

// IsRecordNotFound reports whether err is Route 53 rejecting a DELETE for a record
// that does not exist.
func IsRecordNotFound(err error) bool {
	var invalid *types.InvalidChangeBatch
	if errors.As(err, &invalid) {
		msg := strings.ToLower(invalid.ErrorMessage())
		for _, m := range invalid.Messages {
			msg += " " + strings.ToLower(m)
		}
		return strings.Contains(msg, "not found")
	}
	return false
}

// IsZoneNotFound reports whether err is a NoSuchHostedZone error.
func IsZoneNotFound(err error) bool {
	var noZone *types.NoSuchHostedZone
	return errors.As(err, &noZone)
}
