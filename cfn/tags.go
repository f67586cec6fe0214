package cfn

import (
	"sort"
	"sync"
)

// Tag is a key/value pair applied to taggable resources.
type Tag struct {
	Key   string
	Value string
}

// TagManager holds tags set on a single construct.
type TagManager struct {
	mu   sync.Mutex
	tags map[string]string
}

var tagManagers sync.Map // *Node -> *TagManager

// TagsOf returns the tag manager for scope; tags propagate to taggable resources below it.
func TagsOf(scope IConstruct) *TagManager {
	m, _ := tagManagers.LoadOrStore(scope.Node(), &TagManager{tags: map[string]string{}})
	return m.(*TagManager)
}

// Add sets a tag.
func (t *TagManager) Add(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tags[key] = value
}

// Remove deletes a tag.
func (t *TagManager) Remove(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tags, key)
}

// InheritedTags collects tags from the root down to node; nearer scopes win.
func InheritedTags(node *Node) map[string]string {
	var chain []*Node
	for n := node; n != nil; n = n.Scope() {
		chain = append([]*Node{n}, chain...)
	}
	out := map[string]string{}
	for _, n := range chain {
		v, ok := tagManagers.Load(n)
		if !ok {
			continue
		}
		m := v.(*TagManager)
		m.mu.Lock()
		for k, val := range m.tags {
			out[k] = val
		}
		m.mu.Unlock()
	}
	return out
}

// MergeTags overlays explicit tags onto inherited ones and returns them sorted by key.
func MergeTags(inherited map[string]string, explicit []Tag) []Tag {
	merged := map[string]string{}
	for k, v := range inherited {
		merged[k] = v
	}
	for _, t := range explicit {
		merged[t.Key] = t.Value
	}
	out := make([]Tag, 0, len(merged))
	for k, v := range merged {
		out = append(out, Tag{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
