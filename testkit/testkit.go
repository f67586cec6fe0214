package testkit

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/jsii-runtime-go"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/observability"
)

// Default environment for stacks created by Env.Stack.
const (
	DefaultAccount = "123456789012"
	DefaultRegion  = "us-east-1"
)

// Env is a deterministic local test environment for stacks and custom resource handlers.
type Env struct {
	IDs    *ManualIDGenerator
	Logger *observability.TestLogger

	context map[string]any
}

func New() *Env {
	return &Env{
		IDs:     NewManualIDGenerator(),
		Logger:  observability.NewTestLogger(),
		context: map[string]any{},
	}
}

// WithContext seeds app context for stacks created afterwards (lookup results,
// custom resource service tokens).
func (e *Env) WithContext(key string, value any) *Env {
	e.context[key] = value
	return e
}

// App creates an app carrying the seeded context.
func (e *Env) App() *cfn.App {
	ctx := make(map[string]any, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return cfn.NewApp(&cfn.AppProps{Context: ctx})
}

// Stack creates a stack pinned to DefaultAccount and DefaultRegion in a fresh app.
func (e *Env) Stack(id string) *cfn.Stack {
	return cfn.NewStack(e.App(), id, &cfn.StackProps{
		Env: &cfn.Environment{
			Account: jsii.String(DefaultAccount),
			Region:  jsii.String(DefaultRegion),
		},
	})
}

// AgnosticStack creates a stack without account or region.
func (e *Env) AgnosticStack(id string) *cfn.Stack {
	return cfn.NewStack(e.App(), id, nil)
}

// ManualIDGenerator is a deterministic, predictable ID generator for tests.
type ManualIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int64
	queue  []string
}

func NewManualIDGenerator() *ManualIDGenerator {
	return &ManualIDGenerator{prefix: "test-id", next: 1}
}

func (g *ManualIDGenerator) Queue(ids ...string) {
	g.mu.Lock()
	g.queue = append(g.queue, ids...)
	g.mu.Unlock()
}

func (g *ManualIDGenerator) Reset() {
	g.mu.Lock()
	g.queue = nil
	g.next = 1
	g.mu.Unlock()
}

func (g *ManualIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.queue) > 0 {
		out := g.queue[0]
		g.queue = g.queue[1:]
		return out
	}

	out := fmt.Sprintf("%s-%s", g.prefix, strconv.FormatInt(g.next, 10))
	g.next++
	return out
}
