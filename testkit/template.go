package testkit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/theory-cloud/zonetheory/cfn"
)

// Template wraps a synthesized template with assertions.
type Template struct {
	*cfn.Template
}

// FromStack synthesizes stack, failing the test on error.
func FromStack(tb testing.TB, stack *cfn.Stack) *Template {
	tb.Helper()
	tmpl, err := stack.Synth()
	if err != nil {
		tb.Fatalf("synth %s: %v", stack.StackName(), err)
	}
	return &Template{Template: tmpl}
}

// ResourceCountIs asserts how many resources of cfnType exist.
func (t *Template) ResourceCountIs(tb testing.TB, cfnType string, count int) {
	tb.Helper()
	if got := len(t.ResourcesOfType(cfnType)); got != count {
		tb.Errorf("expected %d resources of type %s, found %d", count, cfnType, got)
	}
}

// HasResourceProperties asserts that some resource of cfnType has properties matching
// expected. Maps match as subsets; lists must match element by element.
func (t *Template) HasResourceProperties(tb testing.TB, cfnType string, expected map[string]any) {
	tb.Helper()
	if len(t.FindResources(cfnType, expected)) > 0 {
		return
	}
	var got []string
	for _, id := range sortedIDs(t.ResourcesOfType(cfnType)) {
		data, _ := json.Marshal(t.Resources[id].Properties)
		got = append(got, id+": "+string(data))
	}
	want, _ := json.Marshal(expected)
	tb.Errorf("no %s resource matches %s; candidates:\n%v", cfnType, want, got)
}

// HasResource asserts that some resource of cfnType matches the whole declaration
// (Properties, DependsOn, DeletionPolicy...).
func (t *Template) HasResource(tb testing.TB, cfnType string, expected map[string]any) {
	tb.Helper()
	want := normalizeExpected(expected)
	for _, r := range t.ResourcesOfType(cfnType) {
		if matches(want, normalizeExpected(r)) {
			return
		}
	}
	data, _ := json.Marshal(expected)
	tb.Errorf("no %s resource matches %s", cfnType, data)
}

// FindResources returns resources of cfnType whose properties match expected.
// A nil expected matches every resource of the type.
func (t *Template) FindResources(cfnType string, expected map[string]any) map[string]*cfn.Resource {
	want := normalizeExpected(expected)
	out := map[string]*cfn.Resource{}
	for id, r := range t.ResourcesOfType(cfnType) {
		if expected == nil || matches(want, normalizeExpected(r.Properties)) {
			out[id] = r
		}
	}
	return out
}

// OnlyResource returns the single resource of cfnType, failing otherwise.
func (t *Template) OnlyResource(tb testing.TB, cfnType string) (string, *cfn.Resource) {
	tb.Helper()
	found := t.ResourcesOfType(cfnType)
	if len(found) != 1 {
		tb.Fatalf("expected exactly one %s, found %d", cfnType, len(found))
	}
	for id, r := range found {
		return id, r
	}
	return "", nil
}

func sortedIDs(m map[string]*cfn.Resource) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// normalizeExpected pushes a value through JSON so numbers and nested types compare
// the way synthesized templates store them.
func normalizeExpected(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testkit: cannot encode expected value: %v", err))
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("testkit: cannot decode expected value: %v", err))
	}
	return out
}

func matches(expected, actual any) bool {
	switch want := expected.(type) {
	case map[string]any:
		got, ok := actual.(map[string]any)
		if !ok {
			return false
		}
		for k, v := range want {
			gv, present := got[k]
			if !present || !matches(v, gv) {
				return false
			}
		}
		return true
	case []any:
		got, ok := actual.([]any)
		if !ok || len(got) != len(want) {
			return false
		}
		for i := range want {
			if !matches(want[i], got[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(expected, actual)
	}
}
