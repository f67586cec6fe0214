package cfn

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MissingContext describes a lookup that could not be answered from context.
type MissingContext struct {
	Key      string         `json:"key" yaml:"key"`
	Provider string         `json:"provider" yaml:"provider"`
	Props    map[string]any `json:"props" yaml:"props"`
}

// GetContextValueOptions describes a context lookup.
type GetContextValueOptions struct {
	Provider   string
	Props      map[string]any
	DummyValue any
}

// GetContextValueResult is the value of a context lookup.
type GetContextValueResult struct {
	Value any
	// Missing is true when DummyValue was returned because no value was available.
	Missing bool
}

type missingRegistry struct {
	mu      sync.Mutex
	entries map[string]MissingContext
}

var missingByApp sync.Map // *App -> *missingRegistry

// ContextKey renders the cache key for a provider lookup:
// provider:key1=value1:key2=value2 with keys sorted.
func ContextKey(provider string, props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{provider}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, ":")
}

// GetContextValue reads a lookup result from the construct context.
//
// When nothing is stored under the key, the lookup is recorded as missing and the
// dummy value is returned so synthesis can finish and the caller can resolve it.
func GetContextValue(scope IConstruct, opts GetContextValueOptions) GetContextValueResult {
	stack := StackOf(scope)
	props := map[string]any{}
	for k, v := range opts.Props {
		props[k] = v
	}
	if _, ok := props["account"]; !ok {
		props["account"] = stack.Account()
	}
	if _, ok := props["region"]; !ok {
		props["region"] = stack.Region()
	}
	if IsUnresolved(fmt.Sprint(props["account"])) || IsUnresolved(fmt.Sprint(props["region"])) {
		panic(Errorf(CodeLookupFailed,
			"Cannot retrieve value from context provider %s since account/region are not specified at the stack level. Configure \"env\" with an account and region when you define your stack.",
			opts.Provider))
	}

	key := ContextKey(opts.Provider, props)
	if v := scope.Node().TryGetContext(key); v != nil {
		return GetContextValueResult{Value: v}
	}

	reg := missingFor(stack.App())
	reg.mu.Lock()
	reg.entries[key] = MissingContext{Key: key, Provider: opts.Provider, Props: props}
	reg.mu.Unlock()
	return GetContextValueResult{Value: opts.DummyValue, Missing: true}
}

// MissingContext lists lookups that returned dummy values, sorted by key.
func (a *App) MissingContext() []MissingContext {
	reg := missingFor(a)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]MissingContext, 0, len(reg.entries))
	for _, m := range reg.entries {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func missingFor(a *App) *missingRegistry {
	v, _ := missingByApp.LoadOrStore(a, &missingRegistry{entries: map[string]MissingContext{}})
	return v.(*missingRegistry)
}
