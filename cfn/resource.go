package cfn

import (
	"strings"
)

// RemovalPolicy controls what happens to a resource when it leaves the stack.
type RemovalPolicy string

const (
	RemovalPolicy_DESTROY  RemovalPolicy = "destroy"
	RemovalPolicy_RETAIN   RemovalPolicy = "retain"
	RemovalPolicy_SNAPSHOT RemovalPolicy = "snapshot"
)

// ICfnResource is implemented by every CloudFormation resource construct.
type ICfnResource interface {
	IConstruct
	Resource() *CfnResource
}

// CfnResourceProps configures an untyped resource.
type CfnResourceProps struct {
	Type       *string        `field:"required" json:"type" yaml:"type"`
	Properties map[string]any `field:"optional" json:"properties" yaml:"properties"`
}

// CfnResource is a single entry in the Resources section of a template.
type CfnResource struct {
	*Construct

	stack   *Stack
	cfnType string
	render  func() map[string]any

	logicalIDOverride   string
	condition           string
	deletionPolicy      string
	updateReplacePolicy string
	dependsOn           []*CfnResource
	overrides           map[string]any
	metadata            map[string]any
}

var _ ICfnResource = (*CfnResource)(nil)

// NewCfnResource creates a resource with a fixed property map.
func NewCfnResource(scope IConstruct, id string, props *CfnResourceProps) *CfnResource {
	if props == nil || props.Type == nil || *props.Type == "" {
		panic(Errorf(CodeRequiredMissing, "Required property 'type' is missing"))
	}
	properties := props.Properties
	return NewTypedResource(scope, id, *props.Type, func() map[string]any { return properties })
}

// NewTypedResource creates a resource whose properties are produced by render at synth time.
func NewTypedResource(scope IConstruct, id, cfnType string, render func() map[string]any) *CfnResource {
	if scope == nil {
		panic(Errorf(CodeRequiredMissing, "parameter scope is required, but nil was provided"))
	}
	stack := StackOf(scope)
	r := &CfnResource{
		Construct: NewConstruct(scope, id),
		stack:     stack,
		cfnType:   cfnType,
		render:    render,
	}
	r.SetHost(r)
	stack.registerResource(r)
	return r
}

// Resource returns itself; embedding types inherit it.
func (r *CfnResource) Resource() *CfnResource {
	return r
}

// CfnResourceType returns the CloudFormation type name, for example AWS::Route53::HostedZone.
func (r *CfnResource) CfnResourceType() string {
	return r.cfnType
}

// Stack returns the stack that owns this resource.
func (r *CfnResource) Stack() *Stack {
	return r.stack
}

// LogicalId returns the logical id this resource synthesizes under.
func (r *CfnResource) LogicalId() string {
	if r.logicalIDOverride != "" {
		return r.logicalIDOverride
	}
	return r.stack.allocateLogicalID(r)
}

// OverrideLogicalId pins the logical id.
func (r *CfnResource) OverrideLogicalId(id string) {
	if strings.TrimSpace(id) == "" {
		panic(Errorf(CodeValidationFailed, "logical id cannot be empty"))
	}
	r.logicalIDOverride = id
}

// Ref returns a token that resolves to {"Ref": <logical id>}.
func (r *CfnResource) Ref() string {
	return refToken(r.Node().Path())
}

// GetAtt returns a token that resolves to {"Fn::GetAtt": [<logical id>, attr]}.
func (r *CfnResource) GetAtt(attr string) string {
	return getAttToken(r.Node().Path(), attr)
}

// GetAttList returns a list token for a list-valued attribute.
func (r *CfnResource) GetAttList(attr string) []*string {
	return listGetAttToken(r.Node().Path(), attr)
}

// AddDependency makes this resource depend on target (DependsOn).
func (r *CfnResource) AddDependency(target ICfnResource) {
	if target == nil {
		return
	}
	t := target.Resource()
	for _, existing := range r.dependsOn {
		if existing == t {
			return
		}
	}
	r.dependsOn = append(r.dependsOn, t)
}

// ApplyRemovalPolicy sets DeletionPolicy and UpdateReplacePolicy.
func (r *CfnResource) ApplyRemovalPolicy(policy RemovalPolicy) {
	var value string
	switch policy {
	case RemovalPolicy_DESTROY, "":
		value = "Delete"
	case RemovalPolicy_RETAIN:
		value = "Retain"
	case RemovalPolicy_SNAPSHOT:
		value = "Snapshot"
	default:
		panic(Errorf(CodeValidationFailed, "invalid removal policy: %s", policy))
	}
	r.deletionPolicy = value
	r.updateReplacePolicy = value
}

// SetCondition attaches a template condition name.
func (r *CfnResource) SetCondition(name string) {
	r.condition = name
}

// AddMetadata sets a resource-level metadata entry.
func (r *CfnResource) AddMetadata(key string, value any) {
	if r.metadata == nil {
		r.metadata = map[string]any{}
	}
	r.metadata[key] = value
}

// AddOverride sets a raw value at a dotted path inside the resource declaration,
// for example "Properties.HostedZoneConfig.Comment". A nil value deletes the path.
func (r *CfnResource) AddOverride(path string, value any) {
	if r.overrides == nil {
		r.overrides = map[string]any{}
	}
	r.overrides[path] = value
}

// AddPropertyOverride is AddOverride scoped under "Properties.".
func (r *CfnResource) AddPropertyOverride(path string, value any) {
	r.AddOverride("Properties."+path, value)
}

// declaration renders the unresolved resource body.
func (r *CfnResource) declaration() map[string]any {
	decl := map[string]any{"Type": r.cfnType}
	if r.render != nil {
		if props := r.render(); len(props) > 0 {
			decl["Properties"] = normalize(props)
		}
	}
	if len(r.dependsOn) > 0 {
		deps := make([]any, 0, len(r.dependsOn))
		for _, d := range r.dependsOn {
			deps = append(deps, d.LogicalId())
		}
		decl["DependsOn"] = deps
	}
	if r.deletionPolicy != "" {
		decl["DeletionPolicy"] = r.deletionPolicy
	}
	if r.updateReplacePolicy != "" {
		decl["UpdateReplacePolicy"] = r.updateReplacePolicy
	}
	if r.condition != "" {
		decl["Condition"] = r.condition
	}
	if len(r.metadata) > 0 {
		decl["Metadata"] = r.metadata
	}
	for path, value := range r.overrides {
		applyOverride(decl, strings.Split(path, "."), value)
	}
	return decl
}

func applyOverride(target map[string]any, parts []string, value any) {
	for i, part := range parts {
		if i == len(parts)-1 {
			if value == nil {
				delete(target, part)
			} else {
				target[part] = value
			}
			return
		}
		next, ok := target[part].(map[string]any)
		if !ok {
			if value == nil {
				return
			}
			next = map[string]any{}
			target[part] = next
		}
		target = next
	}
}
