package cfn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

var stackNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Template is a synthesized CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                    `json:"AWSTemplateFormatVersion,omitempty" yaml:"AWSTemplateFormatVersion,omitempty"`
	Description              string                    `json:"Description,omitempty" yaml:"Description,omitempty"`
	Metadata                 map[string]any            `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
	Parameters               map[string]map[string]any `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Conditions               map[string]any            `json:"Conditions,omitempty" yaml:"Conditions,omitempty"`
	Resources                map[string]*Resource      `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]*Output        `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// Resource is one resolved resource declaration.
type Resource struct {
	Type                string         `json:"Type" yaml:"Type"`
	Properties          map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn           []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	DeletionPolicy      string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
	UpdateReplacePolicy string         `json:"UpdateReplacePolicy,omitempty" yaml:"UpdateReplacePolicy,omitempty"`
	Condition           string         `json:"Condition,omitempty" yaml:"Condition,omitempty"`
	Metadata            map[string]any `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
}

// Output is one resolved template output.
type Output struct {
	Value       any            `json:"Value" yaml:"Value"`
	Description string         `json:"Description,omitempty" yaml:"Description,omitempty"`
	Condition   string         `json:"Condition,omitempty" yaml:"Condition,omitempty"`
	Export      map[string]any `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// Synth renders the stack into a template, resolving every token.
func (s *Stack) Synth() (*Template, error) {
	tmpl := &Template{
		Resources: map[string]*Resource{},
	}
	if s.props.Description != nil {
		tmpl.Description = *s.props.Description
	}

	resolve := s.resolver()
	for _, r := range s.Resources() {
		logicalID := r.LogicalId()
		if _, dup := tmpl.Resources[logicalID]; dup {
			return nil, Errorf(CodeDuplicateID, "duplicate logical id '%s' in stack '%s'", logicalID, s.StackName())
		}
		resolved, err := resolveValue(normalize(r.declaration()), resolve)
		if err != nil {
			return nil, fmt.Errorf("cfn: resolve %s: %w", r.Node().Path(), err)
		}
		res, err := resourceFromMap(resolved.(map[string]any))
		if err != nil {
			return nil, fmt.Errorf("cfn: render %s: %w", r.Node().Path(), err)
		}
		tmpl.Resources[logicalID] = res
	}

	s.mu.Lock()
	outputs := append([]output(nil), s.outputs...)
	params := s.parameters
	conditions := s.conditions
	s.mu.Unlock()

	if len(params) > 0 {
		tmpl.Parameters = params
	}
	if len(conditions) > 0 {
		resolved, err := resolveValue(normalize(conditions), resolve)
		if err != nil {
			return nil, err
		}
		tmpl.Conditions = resolved.(map[string]any)
	}
	if len(outputs) > 0 {
		tmpl.Outputs = map[string]*Output{}
		for _, o := range outputs {
			value, err := resolveValue(*o.props.Value, resolve)
			if err != nil {
				return nil, fmt.Errorf("cfn: resolve output %s: %w", o.id, err)
			}
			out := &Output{Value: value}
			if o.props.Description != nil {
				out.Description = *o.props.Description
			}
			if o.props.Condition != nil {
				out.Condition = *o.props.Condition
			}
			if o.props.ExportName != nil {
				name, err := resolveValue(*o.props.ExportName, resolve)
				if err != nil {
					return nil, err
				}
				out.Export = map[string]any{"Name": name}
			}
			tmpl.Outputs[MakeUniqueID([]string{o.id})] = out
		}
	}
	return tmpl, nil
}

// LogicalIDs returns resource logical ids in sorted order.
func (t *Template) LogicalIDs() []string {
	ids := make([]string, 0, len(t.Resources))
	for id := range t.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResourcesOfType returns resources with the given type keyed by logical id.
func (t *Template) ResourcesOfType(cfnType string) map[string]*Resource {
	out := map[string]*Resource{}
	for id, r := range t.Resources {
		if r.Type == cfnType {
			out[id] = r
		}
	}
	return out
}

// JSON renders the template as indented JSON with sorted keys.
func (t *Template) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("cfn: encode template: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders the template as YAML.
func (t *Template) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("cfn: encode template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("cfn: encode template: %w", err)
	}
	return buf.Bytes(), nil
}

// normalize converts typed Go values (slices of pointers, string maps, numbers) into
// the generic JSON shapes the resolver walks.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		panic(Errorf(CodeValidationFailed, "cannot render value: %v", err))
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		panic(Errorf(CodeValidationFailed, "cannot render value: %v", err))
	}
	return out
}

func resourceFromMap(m map[string]any) (*Resource, error) {
	r := &Resource{}
	typ, ok := m["Type"].(string)
	if !ok || typ == "" {
		return nil, Errorf(CodeRequiredMissing, "Required property 'Type' is missing")
	}
	r.Type = typ
	if props, ok := m["Properties"].(map[string]any); ok {
		r.Properties = props
	}
	switch deps := m["DependsOn"].(type) {
	case string:
		r.DependsOn = []string{deps}
	case []any:
		for _, d := range deps {
			if s, ok := d.(string); ok {
				r.DependsOn = append(r.DependsOn, s)
			}
		}
	}
	r.DeletionPolicy, _ = m["DeletionPolicy"].(string)
	r.UpdateReplacePolicy, _ = m["UpdateReplacePolicy"].(string)
	r.Condition, _ = m["Condition"].(string)
	if md, ok := m["Metadata"].(map[string]any); ok {
		r.Metadata = md
	}
	return r, nil
}
