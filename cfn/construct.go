package cfn

import (
	"strings"
	"sync"
)

// PathSeparator joins construct ids into a path.
const PathSeparator = "/"

// IConstruct is anything that owns a node in the construct tree.
type IConstruct interface {
	Node() *Node
}

// Node is the tree bookkeeping shared by every construct.
type Node struct {
	id    string
	scope *Node
	host  IConstruct

	mu       sync.Mutex
	children []*Node
	byID     map[string]*Node
	context  map[string]any
	deps     []IConstruct
}

// Id returns the construct id within its scope.
func (n *Node) Id() string {
	return n.id
}

// Scope returns the parent node, or nil for the root.
func (n *Node) Scope() *Node {
	return n.scope
}

// Host returns the construct that owns this node.
func (n *Node) Host() IConstruct {
	return n.host
}

// Path returns the ids from the root's first child down to this node, joined by "/".
//
// The root (App) contributes no path component.
func (n *Node) Path() string {
	return strings.Join(n.Scopes(), PathSeparator)
}

// Scopes returns the path components of this node.
func (n *Node) Scopes() []string {
	var parts []string
	for cur := n; cur != nil && cur.scope != nil; cur = cur.scope {
		parts = append([]string{cur.id}, parts...)
	}
	return parts
}

// Children returns child nodes in creation order.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// TryFindChild returns the direct child with the given id.
func (n *Node) TryFindChild(id string) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.byID[id]
}

// SetContext stores a context value on this node. It must be called before children are added.
func (n *Node) SetContext(key string, value any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.children) > 0 {
		panic(Errorf(CodeValidationFailed, "cannot set context after children are added: %s", n.Path()))
	}
	if n.context == nil {
		n.context = map[string]any{}
	}
	n.context[key] = value
}

// TryGetContext walks up the tree looking for a context value.
func (n *Node) TryGetContext(key string) any {
	for cur := n; cur != nil; cur = cur.scope {
		cur.mu.Lock()
		v, ok := cur.context[key]
		cur.mu.Unlock()
		if ok {
			return v
		}
	}
	return nil
}

// AddDependency records that this construct depends on others.
func (n *Node) AddDependency(deps ...IConstruct) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deps = append(n.deps, deps...)
}

// Dependencies returns constructs this node depends on.
func (n *Node) Dependencies() []IConstruct {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]IConstruct, len(n.deps))
	copy(out, n.deps)
	return out
}

// FindAll returns this node and all descendants, depth first in creation order.
func (n *Node) FindAll() []*Node {
	out := []*Node{n}
	for _, child := range n.Children() {
		out = append(out, child.FindAll()...)
	}
	return out
}

func (n *Node) addChild(child *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.byID == nil {
		n.byID = map[string]*Node{}
	}
	if _, exists := n.byID[child.id]; exists {
		where := n.Path()
		if where == "" {
			where = "App"
		}
		panic(Errorf(CodeDuplicateID, "There is already a Construct with name '%s' in %s", child.id, where))
	}
	n.byID[child.id] = child
	n.children = append(n.children, child)
}

// Construct is the embeddable base of every construct.
type Construct struct {
	node *Node
}

var _ IConstruct = (*Construct)(nil)

// NewConstruct creates a construct under scope.
//
// A nil scope creates a root. Ids may not contain "/"; it is replaced with "--".
func NewConstruct(scope IConstruct, id string) *Construct {
	c := &Construct{}
	c.node = &Node{id: sanitizeID(id), host: c}
	if scope != nil {
		parent := scope.Node()
		c.node.scope = parent
		parent.addChild(c.node)
	}
	return c
}

// Node returns the tree node for this construct.
func (c *Construct) Node() *Node {
	return c.node
}

// SetHost points the node at the outer construct that embeds this one.
func (c *Construct) SetHost(host IConstruct) {
	c.node.host = host
}

// String returns the construct path.
func (c *Construct) String() string {
	return c.node.Path()
}

func sanitizeID(id string) string {
	return strings.ReplaceAll(id, PathSeparator, "--")
}

// AppProps configures an App.
type AppProps struct {
	// Context seeds values readable through Node.TryGetContext.
	Context map[string]any `field:"optional" json:"context" yaml:"context"`
}

// App is the root of a construct tree.
type App struct {
	*Construct
}

// NewApp creates an empty App.
func NewApp(props *AppProps) *App {
	a := &App{Construct: NewConstruct(nil, "App")}
	a.SetHost(a)
	if props != nil {
		for k, v := range props.Context {
			a.Node().SetContext(k, v)
		}
	}
	return a
}

// Stacks returns the stacks defined in this app, in creation order.
func (a *App) Stacks() []*Stack {
	var out []*Stack
	for _, n := range a.Node().FindAll() {
		if s, ok := n.Host().(*Stack); ok {
			out = append(out, s)
		}
	}
	return out
}

// Synth renders every stack in the app, keyed by stack name.
func (a *App) Synth() (map[string]*Template, error) {
	out := map[string]*Template{}
	for _, s := range a.Stacks() {
		tmpl, err := s.Synth()
		if err != nil {
			return nil, err
		}
		out[s.StackName()] = tmpl
	}
	return out, nil
}
