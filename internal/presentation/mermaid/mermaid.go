// Package mermaid renders a flow graph as a fenced Mermaid flowchart.
package mermaid

import (
	"fmt"

	"github.com/aretw0/studiograph/pkg/domain"
)

const (
	openFence   = "```mermaid"
	closeFence  = "```"
	declaration = "flowchart TD"
)

// Render walks the graph depth-first from entry and returns the lines of a
// fenced "flowchart TD" block.
//
// Each newly visited state gets one node line: a decision shape {label} for
// split states, a process shape (label) otherwise, labeled with its friendly
// name when one is known. Each transition with a target gets one edge line,
// in original order, labeled by the first condition's friendly name when
// conditions exist, by the event name for any event other than "next", and
// unlabeled for the default "next" pass-through. Edges carrying a "failed"
// or "timeout" event get a linkStyle line painting them red; the link index
// counts every emitted edge, so condition-labeled edges advance it too.
//
// Traversal recurses into a target right after its edge is emitted, so
// sibling ordering in the output follows depth-first descent. Edges to
// dangling or already-visited states are still drawn; only the expansion is
// skipped. An empty entry yields the empty fenced block.
func Render(entry string, g *domain.Graph, friendly map[string]string) []string {
	lines := []string{openFence, declaration}
	visited := make(map[string]bool, g.Len())
	linkIndex := -1

	var walk func(name string)
	walk = func(name string) {
		if visited[name] {
			return
		}
		state, ok := g.State(name)
		if !ok {
			return
		}
		visited[name] = true

		label := name
		if f, ok := friendly[name]; ok {
			label = f
		}
		if state.Type == domain.StateTypeSplit {
			lines = append(lines, fmt.Sprintf("    %s{%s}", name, label))
		} else {
			lines = append(lines, fmt.Sprintf("    %s(%s)", name, label))
		}

		for _, t := range state.Transitions {
			if t.Next == "" {
				continue
			}
			linkIndex++

			if len(t.Conditions) > 0 {
				lines = append(lines, fmt.Sprintf("    %s --> |%s| %s", name, t.Conditions[0].FriendlyName, t.Next))
			} else {
				if t.Event != "next" {
					lines = append(lines, fmt.Sprintf("    %s --> |%s| %s", name, t.Event, t.Next))
				} else {
					lines = append(lines, fmt.Sprintf("    %s --> %s", name, t.Next))
				}

				// Styling only applies in the event-labeled branch: a
				// condition-labeled edge is never painted red even when its
				// underlying event is failed/timeout.
				if t.Event == "failed" || t.Event == "timeout" {
					lines = append(lines, fmt.Sprintf("    linkStyle %d stroke:red", linkIndex))
				}
			}

			walk(t.Next)
		}
	}

	if entry != "" {
		walk(entry)
	}

	return append(lines, closeFence)
}
