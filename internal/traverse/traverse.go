// Package traverse resolves flow entry points and walks the state graph.
package traverse

import (
	"github.com/aretw0/studiograph/pkg/domain"
)

// FirstState resolves the entry state for a trigger type.
//
// It scans the graph in definition order for the first state of type
// "trigger"; a graph without one behaves as if it had an empty trigger
// state. Among that state's transitions, again in original order, the first
// whose event matches the trigger's value wins. The second return value is
// false when no transition matches, which callers treat as "no states for
// this trigger" rather than an error.
func FirstState(g *domain.Graph, trigger domain.TriggerType) (string, bool) {
	var entry domain.State
	for _, name := range g.Names() {
		s, _ := g.State(name)
		if s.Type == domain.StateTypeTrigger {
			entry = s
			break
		}
	}

	for _, t := range entry.Transitions {
		if t.Event == trigger.Event() {
			return t.Next, t.Next != ""
		}
	}
	return "", false
}

// Reachable collects every state reachable from entry, in first-visit
// order. The walk is depth-first and marks a state visited before expanding
// its transitions, so cycles terminate and diamonds are visited once.
// Targets missing from the graph are skipped silently.
func Reachable(g *domain.Graph, entry string) []string {
	visited := make(map[string]bool, g.Len())
	var order []string

	var walk func(name string)
	walk = func(name string) {
		if visited[name] {
			return
		}
		s, ok := g.State(name)
		if !ok {
			return
		}
		visited[name] = true
		order = append(order, name)

		for _, t := range s.Transitions {
			if t.Next != "" {
				walk(t.Next)
			}
		}
	}

	if entry != "" {
		walk(entry)
	}
	return order
}
