package cfn

import (
	"strings"
	"sync"
)

// Environment pins a stack to an account and region.
type Environment struct {
	Account *string `field:"optional" json:"account" yaml:"account"`
	Region  *string `field:"optional" json:"region" yaml:"region"`
}

// StackProps configures a Stack.
type StackProps struct {
	Description *string             `field:"optional" json:"description" yaml:"description"`
	Env         *Environment        `field:"optional" json:"env" yaml:"env"`
	StackName   *string             `field:"optional" json:"stackName" yaml:"stackName"`
	Tags        *map[string]*string `field:"optional" json:"tags" yaml:"tags"`
}

// OutputProps configures a template output.
type OutputProps struct {
	Value       *string `field:"required" json:"value" yaml:"value"`
	Condition   *string `field:"optional" json:"condition" yaml:"condition"`
	Description *string `field:"optional" json:"description" yaml:"description"`
	ExportName  *string `field:"optional" json:"exportName" yaml:"exportName"`
}

type output struct {
	id    string
	props OutputProps
}

// Stack is the unit of synthesis: one stack produces one template.
type Stack struct {
	*Construct

	app   *App
	props StackProps

	mu         sync.Mutex
	resources  []*CfnResource
	byPath     map[string]*CfnResource
	outputs    []output
	parameters map[string]map[string]any
	conditions map[string]any
}

// NewStack creates a stack. A nil app creates a fresh App to host it.
func NewStack(app *App, id string, props *StackProps) *Stack {
	if app == nil {
		app = NewApp(nil)
	}
	if err := validateNewStackParameters(id, props); err != nil {
		panic(err)
	}
	s := &Stack{
		Construct: NewConstruct(app, id),
		app:       app,
		byPath:    map[string]*CfnResource{},
	}
	if props != nil {
		s.props = *props
	}
	s.SetHost(s)
	if s.props.Tags != nil {
		tags := TagsOf(s)
		for k, v := range *s.props.Tags {
			if v != nil {
				tags.Add(k, *v)
			}
		}
	}
	return s
}

func validateNewStackParameters(id string, props *StackProps) error {
	if strings.TrimSpace(id) == "" {
		return Errorf(CodeValidationFailed, "stack id cannot be empty")
	}
	if props != nil && props.StackName != nil {
		name := *props.StackName
		if len(name) > 128 || !stackNamePattern.MatchString(name) {
			return Errorf(CodeValidationFailed, "Stack name must match the regular expression: %s, got '%s'", stackNamePattern, name)
		}
	}
	return nil
}

// StackOf returns the stack that contains construct c.
func StackOf(c IConstruct) *Stack {
	for n := c.Node(); n != nil; n = n.Scope() {
		if s, ok := n.Host().(*Stack); ok {
			return s
		}
	}
	panic(Errorf(CodeValidationFailed, "No stack could be identified for the construct at path '%s'", c.Node().Path()))
}

// App returns the owning app.
func (s *Stack) App() *App {
	return s.app
}

// StackName returns the physical stack name.
func (s *Stack) StackName() string {
	if s.props.StackName != nil {
		return *s.props.StackName
	}
	return s.Node().Id()
}

// Account returns the configured account or an AWS::AccountId token.
func (s *Stack) Account() string {
	if s.props.Env != nil && s.props.Env.Account != nil {
		return *s.props.Env.Account
	}
	return RefPseudo(PseudoAccountID)
}

// Region returns the configured region or an AWS::Region token.
func (s *Stack) Region() string {
	if s.props.Env != nil && s.props.Env.Region != nil {
		return *s.props.Env.Region
	}
	return RefPseudo(PseudoRegion)
}

// Partition returns an AWS::Partition token.
func (s *Stack) Partition() string {
	return RefPseudo(PseudoPartition)
}

// URLSuffix returns an AWS::URLSuffix token.
func (s *Stack) URLSuffix() string {
	return RefPseudo(PseudoURLSuffix)
}

// FormatArn builds an ARN in this stack's partition.
//
// Route53 ARNs are global, so empty region and account render as "::".
func (s *Stack) FormatArn(service, region, account, resource string) string {
	return "arn:" + s.Partition() + ":" + service + ":" + region + ":" + account + ":" + resource
}

// AddOutput declares a template output.
func (s *Stack) AddOutput(id string, props *OutputProps) {
	if props == nil || props.Value == nil {
		panic(Errorf(CodeRequiredMissing, "parameter props: Required property 'value' is missing"))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.outputs {
		if o.id == id {
			panic(Errorf(CodeDuplicateID, "There is already an Output with name '%s' in %s", id, s.Node().Path()))
		}
	}
	s.outputs = append(s.outputs, output{id: id, props: *props})
}

// AddParameter declares a template parameter and returns a Ref token to it.
func (s *Stack) AddParameter(id string, declaration map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.parameters == nil {
		s.parameters = map[string]map[string]any{}
	}
	s.parameters[id] = declaration
	return RefLogicalID(id)
}

// AddCondition declares a template condition.
func (s *Stack) AddCondition(id string, expression any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conditions == nil {
		s.conditions = map[string]any{}
	}
	s.conditions[id] = expression
}

// Resources returns every resource in the stack, in creation order.
func (s *Stack) Resources() []*CfnResource {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*CfnResource, len(s.resources))
	copy(out, s.resources)
	return out
}

func (s *Stack) registerResource(r *CfnResource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append(s.resources, r)
	s.byPath[r.Node().Path()] = r
}

func (s *Stack) allocateLogicalID(r *CfnResource) string {
	full := r.Node().Scopes()
	base := len(s.Node().Scopes())
	return MakeUniqueID(full[base:])
}

func (s *Stack) logicalIDFor(target string) (string, error) {
	switch {
	case strings.HasPrefix(target, "AWS::"):
		return target, nil
	case strings.HasPrefix(target, logicalIDPrefix):
		return strings.TrimPrefix(target, logicalIDPrefix), nil
	}
	s.mu.Lock()
	r, ok := s.byPath[target]
	s.mu.Unlock()
	if !ok {
		return "", Errorf(CodeNotFound, "cannot reference '%s' from stack '%s': resource is not part of this stack", target, s.StackName())
	}
	return r.LogicalId(), nil
}

func (s *Stack) resolver() tokenResolver {
	var resolve tokenResolver
	resolve = func(kind, target, attr string) (any, error) {
		if kind == tokenRaw {
			// Raw intrinsics may wrap other tokens, such as a list attribute inside Fn::Select.
			raw, err := decodeRawToken(target)
			if err != nil {
				return nil, err
			}
			return resolveValue(raw, resolve)
		}
		logicalID, err := s.logicalIDFor(target)
		if err != nil {
			return nil, err
		}
		if kind == tokenRef {
			return map[string]any{"Ref": logicalID}, nil
		}
		return map[string]any{"Fn::GetAtt": []any{logicalID, attr}}, nil
	}
	return resolve
}

// Resolve turns a value containing tokens into its CloudFormation form.
func (s *Stack) Resolve(v any) (any, error) {
	return resolveValue(normalize(v), s.resolver())
}
