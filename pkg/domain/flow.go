package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// State type tags with dedicated behavior. Any other value is treated as a
// generic process state.
const (
	// StateTypeTrigger marks the flow entry state. It carries one transition
	// per trigger event the flow reacts to.
	StateTypeTrigger = "trigger"

	// StateTypeSplit marks a branching state, rendered as a decision shape.
	StateTypeSplit = "split-based-on"
)

// Condition is a human-readable guard on a transition. When present, its
// friendly name labels the edge instead of the event name.
type Condition struct {
	FriendlyName string `json:"friendly_name" mapstructure:"friendly_name"`
}

// Transition is a directed edge from a state. Next may reference a state
// that does not exist in the graph; that is tolerated everywhere.
type Transition struct {
	Event      string      `json:"event" mapstructure:"event"`
	Conditions []Condition `json:"conditions,omitempty" mapstructure:"conditions"`
	Next       string      `json:"next,omitempty" mapstructure:"next"`
}

// State is a named node in the flow graph.
type State struct {
	Name        string       `json:"name" mapstructure:"name"`
	Type        string       `json:"type" mapstructure:"type"`
	Transitions []Transition `json:"transitions,omitempty" mapstructure:"transitions"`
}

// Graph is the immutable name-to-state view of a flow definition. It keeps
// the original definition order because entry resolution and traversal
// tie-breaking depend on it.
type Graph struct {
	states map[string]State
	order  []string
}

// BuildGraph decodes a raw flow definition (as delivered by the Studio API)
// into a Graph. It fails with ErrInvalidDefinition when the definition has
// no states collection or the collection cannot be decoded.
//
// Duplicate state names keep the first position in definition order but the
// last definition wins, matching a plain map build.
func BuildGraph(raw map[string]any) (*Graph, error) {
	rawStates, ok := raw["states"]
	if !ok {
		return nil, fmt.Errorf("%w: no states collection", ErrInvalidDefinition)
	}

	var states []State
	if err := mapstructure.Decode(rawStates, &states); err != nil {
		return nil, fmt.Errorf("%w: decoding states: %v", ErrInvalidDefinition, err)
	}

	g := &Graph{
		states: make(map[string]State, len(states)),
		order:  make([]string, 0, len(states)),
	}
	for _, s := range states {
		if _, seen := g.states[s.Name]; !seen {
			g.order = append(g.order, s.Name)
		}
		g.states[s.Name] = s
	}
	return g, nil
}

// NewGraph builds a Graph directly from typed states. Used by tests and by
// callers that already hold a decoded definition.
func NewGraph(states ...State) *Graph {
	g := &Graph{states: make(map[string]State, len(states))}
	for _, s := range states {
		if _, seen := g.states[s.Name]; !seen {
			g.order = append(g.order, s.Name)
		}
		g.states[s.Name] = s
	}
	return g
}

// State looks up a state by name.
func (g *Graph) State(name string) (State, bool) {
	s, ok := g.states[name]
	return s, ok
}

// Names returns state names in original definition order.
func (g *Graph) Names() []string {
	return g.order
}

// Len returns the number of distinct states.
func (g *Graph) Len() int {
	return len(g.states)
}
