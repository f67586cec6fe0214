package cfn

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ParseTemplate reads a JSON or YAML template, including YAML short-form intrinsics
// such as !Ref and !GetAtt.
func ParseTemplate(data []byte) (*Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cfn: parse template: %w", err)
	}
	raw, err := nodeToValue(&doc)
	if err != nil {
		return nil, fmt.Errorf("cfn: parse template: %w", err)
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, Errorf(CodeValidationFailed, "template must be a mapping")
	}

	tmpl := &Template{Resources: map[string]*Resource{}}
	tmpl.AWSTemplateFormatVersion, _ = root["AWSTemplateFormatVersion"].(string)
	tmpl.Description, _ = root["Description"].(string)
	if md, ok := root["Metadata"].(map[string]any); ok {
		tmpl.Metadata = md
	}
	if conds, ok := root["Conditions"].(map[string]any); ok {
		tmpl.Conditions = conds
	}
	if params, ok := root["Parameters"].(map[string]any); ok {
		tmpl.Parameters = map[string]map[string]any{}
		for id, p := range params {
			if pm, ok := p.(map[string]any); ok {
				tmpl.Parameters[id] = pm
			}
		}
	}
	resources, ok := root["Resources"].(map[string]any)
	if !ok {
		return nil, Errorf(CodeRequiredMissing, "Required property 'Resources' is missing")
	}
	for id, r := range resources {
		rm, ok := r.(map[string]any)
		if !ok {
			return nil, Errorf(CodeValidationFailed, "resource '%s' must be a mapping", id)
		}
		res, err := resourceFromMap(rm)
		if err != nil {
			return nil, fmt.Errorf("cfn: resource %s: %w", id, err)
		}
		tmpl.Resources[id] = res
	}
	if outputs, ok := root["Outputs"].(map[string]any); ok {
		tmpl.Outputs = map[string]*Output{}
		for id, o := range outputs {
			om, ok := o.(map[string]any)
			if !ok {
				continue
			}
			out := &Output{Value: om["Value"]}
			out.Description, _ = om["Description"].(string)
			out.Condition, _ = om["Condition"].(string)
			if exp, ok := om["Export"].(map[string]any); ok {
				out.Export = exp
			}
			tmpl.Outputs[id] = out
		}
	}
	return tmpl, nil
}

func nodeToValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(n.Content[0])
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return wrapShortForm(n.Tag, out)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return wrapShortForm(n.Tag, out)
	case yaml.ScalarNode:
		if strings.HasPrefix(n.Tag, "!") && !strings.HasPrefix(n.Tag, "!!") {
			return wrapShortForm(n.Tag, n.Value)
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
}

func wrapShortForm(tag string, v any) (any, error) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") {
		return v, nil
	}
	name := strings.TrimPrefix(tag, "!")
	switch name {
	case "Ref":
		return map[string]any{"Ref": v}, nil
	case "Condition":
		return map[string]any{"Condition": v}, nil
	case "GetAtt":
		if s, ok := v.(string); ok {
			logicalID, attr, found := strings.Cut(s, ".")
			if !found {
				return nil, fmt.Errorf("!GetAtt %q must be Resource.Attribute", s)
			}
			return map[string]any{"Fn::GetAtt": []any{logicalID, attr}}, nil
		}
		return map[string]any{"Fn::GetAtt": v}, nil
	default:
		return map[string]any{"Fn::" + name: v}, nil
	}
}

// DecodeProperties decodes a resource's CloudFormation properties into a typed props
// struct and verifies required fields. Intrinsic functions become tokens.
func DecodeProperties(logicalID string, properties map[string]any, out any) error {
	data, err := json.Marshal(tokenize(properties))
	if err != nil {
		return fmt.Errorf("cfn: encode properties of %s: %w", logicalID, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return Errorf(CodeValidationFailed, "%s: %v", logicalID, err)
	}
	return ValidateStruct(out, func() string { return logicalID })
}

// IncludeFactory turns a parsed resource into a typed construct.
type IncludeFactory func(scope IConstruct, logicalID string, res *Resource) (ICfnResource, error)

var (
	includeMu        sync.RWMutex
	includeFactories = map[string]IncludeFactory{}
)

// RegisterIncludeFactory makes IncludeTemplate build typed constructs for cfnType.
func RegisterIncludeFactory(cfnType string, factory IncludeFactory) {
	includeMu.Lock()
	defer includeMu.Unlock()
	includeFactories[cfnType] = factory
}

// IncludeTemplate adds every resource of tmpl to scope, keeping logical ids.
//
// Resource types with a registered factory become typed constructs; the rest are kept
// as untyped resources with their properties passed through unchanged.
func IncludeTemplate(scope IConstruct, tmpl *Template) (map[string]ICfnResource, error) {
	ids := tmpl.LogicalIDs()
	out := make(map[string]ICfnResource, len(ids))

	for _, id := range ids {
		res := tmpl.Resources[id]
		includeMu.RLock()
		factory := includeFactories[res.Type]
		includeMu.RUnlock()

		var created ICfnResource
		if factory != nil {
			c, err := factory(scope, id, res)
			if err != nil {
				return nil, err
			}
			created = c
		} else {
			typ := res.Type
			created = NewCfnResource(scope, id, &CfnResourceProps{Type: &typ, Properties: res.Properties})
		}

		r := created.Resource()
		r.OverrideLogicalId(id)
		r.deletionPolicy = res.DeletionPolicy
		r.updateReplacePolicy = res.UpdateReplacePolicy
		r.condition = res.Condition
		for k, v := range res.Metadata {
			r.AddMetadata(k, v)
		}
		out[id] = created
	}

	for _, id := range ids {
		deps := append([]string(nil), tmpl.Resources[id].DependsOn...)
		sort.Strings(deps)
		for _, dep := range deps {
			target, ok := out[dep]
			if !ok {
				return nil, Errorf(CodeNotFound, "resource '%s' depends on unknown resource '%s'", id, dep)
			}
			out[id].Resource().AddDependency(target)
		}
	}

	stack := StackOf(scope)
	for id, p := range tmpl.Parameters {
		stack.AddParameter(id, p)
	}
	for id, c := range tmpl.Conditions {
		stack.AddCondition(id, c)
	}
	return out, nil
}
