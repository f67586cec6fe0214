package cfn

// TreeInspector collects attributes describing a construct.
type TreeInspector struct {
	attributes map[string]any
}

// NewTreeInspector returns an empty inspector.
func NewTreeInspector() *TreeInspector {
	return &TreeInspector{attributes: map[string]any{}}
}

// AddAttribute records a key/value pair.
func (t *TreeInspector) AddAttribute(key string, value any) {
	t.attributes[key] = value
}

// Attributes returns the recorded attributes.
func (t *TreeInspector) Attributes() map[string]any {
	return t.attributes
}

// IInspectable is implemented by constructs that describe themselves in the tree.
type IInspectable interface {
	Inspect(inspector *TreeInspector)
}

// InspectTree collects attributes for every inspectable construct under scope, keyed by path.
func InspectTree(scope IConstruct) map[string]map[string]any {
	out := map[string]map[string]any{}
	for _, n := range scope.Node().FindAll() {
		inspectable, ok := n.Host().(IInspectable)
		if !ok {
			continue
		}
		inspector := NewTreeInspector()
		inspectable.Inspect(inspector)
		out[n.Path()] = inspector.Attributes()
	}
	return out
}
