package route53

import (
	"regexp"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
)

// The status for a Key Signing Key.
type KeySigningKeyStatus string

const (
	// The KSK is being used for signing.
	KeySigningKeyStatus_ACTIVE KeySigningKeyStatus = "ACTIVE"
	// The KSK is not being used for signing.
	KeySigningKeyStatus_INACTIVE KeySigningKeyStatus = "INACTIVE"
)

func (s KeySigningKeyStatus) String() string {
	return "KeySigningKeyStatus." + string(s)
}

var keySigningKeyNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,128}$`)

// Properties for constructing a Key Signing Key.
type KeySigningKeyProps struct {
	// The hosted zone that this key will be used to sign.
	HostedZone IHostedZone `field:"required" json:"hostedZone" yaml:"hostedZone"`
	// The ARN of the customer-managed KMS key used to create the key signing key.
	//
	// The key must be asymmetric (ECC_NIST_P256, SIGN_VERIFY) and live in us-east-1.
	KmsKeyArn *string `field:"required" json:"kmsKeyArn" yaml:"kmsKeyArn"`
	// The name for the key signing key. Default: an autogenerated name.
	KeySigningKeyName *string `field:"optional" json:"keySigningKeyName" yaml:"keySigningKeyName"`
	// The status of the key signing key. Default: ACTIVE.
	Status KeySigningKeyStatus `field:"optional" json:"status" yaml:"status"`
}

func (p KeySigningKeyProps) String() string {
	return cfn.Repr("KeySigningKeyProps", p)
}

// The attributes of a key signing key.
type KeySigningKeyAttributes struct {
	// The hosted zone that the key signing key signs.
	HostedZone IHostedZone `field:"required" json:"hostedZone" yaml:"hostedZone"`
	// The name of the key signing key.
	KeySigningKeyName *string `field:"required" json:"keySigningKeyName" yaml:"keySigningKeyName"`
}

// A Key Signing Key for a Route 53 Hosted Zone.
type IKeySigningKey interface {
	cfn.IConstruct
	HostedZone() IHostedZone
	// The ID of the key signing key, derived from the hosted zone ID and its name.
	KeySigningKeyId() *string
	KeySigningKeyName() *string
}

// A Key Signing Key for a Route 53 Hosted Zone.
type KeySigningKey struct {
	*cfn.Construct

	resource   *CfnKeySigningKey
	hostedZone IHostedZone
}

var _ IKeySigningKey = (*KeySigningKey)(nil)

func NewKeySigningKey(scope cfn.IConstruct, id *string, props *KeySigningKeyProps) *KeySigningKey {
	if err := validateConstructorParameters(scope, id, props); err != nil {
		panic(err)
	}
	k := &KeySigningKey{Construct: cfn.NewConstruct(scope, *id), hostedZone: props.HostedZone}
	k.SetHost(k)

	name := props.KeySigningKeyName
	if name == nil {
		name = jsii.String(cfn.UniqueResourceName(k, 128))
	}
	if !cfn.IsUnresolved(*name) && !keySigningKeyNamePattern.MatchString(*name) {
		panic(cfn.Errorf(cfn.CodeValidationFailed, "Key Signing Key name must be 3 to 128 alphanumeric or underscore characters, got: %s", *name))
	}
	status := props.Status
	if status == "" {
		status = KeySigningKeyStatus_ACTIVE
	}

	k.resource = NewCfnKeySigningKey(k, jsii.String("Resource"), &CfnKeySigningKeyProps{
		HostedZoneId:            props.HostedZone.HostedZoneId(),
		KeyManagementServiceArn: props.KmsKeyArn,
		Name:                    name,
		Status:                  jsii.String(string(status)),
	})
	return k
}

// Imports a key signing key from its attributes.
func KeySigningKey_FromKeySigningKeyAttributes(scope cfn.IConstruct, id *string, attrs *KeySigningKeyAttributes) IKeySigningKey {
	if err := validateConstructorParameters(scope, id, attrs); err != nil {
		panic(err)
	}
	k := &importedKeySigningKey{
		Construct:  cfn.NewConstruct(scope, *id),
		hostedZone: attrs.HostedZone,
		name:       *attrs.KeySigningKeyName,
	}
	k.SetHost(k)
	return k
}

func (k *KeySigningKey) HostedZone() IHostedZone { return k.hostedZone }

func (k *KeySigningKey) KeySigningKeyId() *string {
	return jsii.String(k.resource.Ref())
}

func (k *KeySigningKey) KeySigningKeyName() *string {
	return k.resource.Name()
}

// The underlying AWS::Route53::KeySigningKey resource.
func (k *KeySigningKey) CfnKeySigningKey() *CfnKeySigningKey {
	return k.resource
}

type importedKeySigningKey struct {
	*cfn.Construct

	hostedZone IHostedZone
	name       string
}

func (k *importedKeySigningKey) HostedZone() IHostedZone { return k.hostedZone }

func (k *importedKeySigningKey) KeySigningKeyId() *string {
	return jsii.String(*k.hostedZone.HostedZoneId() + "|" + k.name)
}

func (k *importedKeySigningKey) KeySigningKeyName() *string {
	return jsii.String(k.name)
}
