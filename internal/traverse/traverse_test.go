package traverse

import (
	"testing"

	"github.com/aretw0/studiograph/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func triggerState(transitions ...domain.Transition) domain.State {
	return domain.State{Name: "Trigger", Type: domain.StateTypeTrigger, Transitions: transitions}
}

func TestFirstState(t *testing.T) {
	t.Run("Matches Trigger Event In Order", func(t *testing.T) {
		g := domain.NewGraph(
			triggerState(
				domain.Transition{Event: "incomingMessage", Next: "msg_start"},
				domain.Transition{Event: "incomingCall", Next: "call_start"},
				domain.Transition{Event: "incomingCall", Next: "never_here"},
			),
			domain.State{Name: "call_start"},
			domain.State{Name: "msg_start"},
		)

		entry, ok := FirstState(g, domain.TriggerIncomingCall)
		assert.True(t, ok)
		assert.Equal(t, "call_start", entry)
	})

	t.Run("First Trigger State Wins", func(t *testing.T) {
		second := domain.State{
			Name: "Trigger2", Type: domain.StateTypeTrigger,
			Transitions: []domain.Transition{{Event: "incomingCall", Next: "wrong"}},
		}
		g := domain.NewGraph(
			domain.State{Name: "plain"},
			triggerState(domain.Transition{Event: "incomingCall", Next: "right"}),
			second,
		)

		entry, ok := FirstState(g, domain.TriggerIncomingCall)
		assert.True(t, ok)
		assert.Equal(t, "right", entry)
	})

	t.Run("No Matching Transition", func(t *testing.T) {
		g := domain.NewGraph(triggerState(domain.Transition{Event: "incomingMessage", Next: "msg_start"}))

		_, ok := FirstState(g, domain.TriggerSubflow)
		assert.False(t, ok)
	})

	t.Run("No Trigger State", func(t *testing.T) {
		g := domain.NewGraph(domain.State{Name: "lonely"})

		_, ok := FirstState(g, domain.TriggerIncomingCall)
		assert.False(t, ok)
	})
}

func TestReachable(t *testing.T) {
	t.Run("Acyclic Depth First Order", func(t *testing.T) {
		// a -> b -> d, a -> c. Depth-first means d is visited before c.
		g := domain.NewGraph(
			domain.State{Name: "a", Transitions: []domain.Transition{
				{Event: "next", Next: "b"},
				{Event: "next", Next: "c"},
			}},
			domain.State{Name: "b", Transitions: []domain.Transition{{Event: "next", Next: "d"}}},
			domain.State{Name: "c"},
			domain.State{Name: "d"},
			domain.State{Name: "unreachable"},
		)

		assert.Equal(t, []string{"a", "b", "d", "c"}, Reachable(g, "a"))
	})

	t.Run("Cycle Terminates", func(t *testing.T) {
		g := domain.NewGraph(
			domain.State{Name: "a", Transitions: []domain.Transition{{Event: "next", Next: "b"}}},
			domain.State{Name: "b", Transitions: []domain.Transition{{Event: "next", Next: "a"}}},
		)

		assert.Equal(t, []string{"a", "b"}, Reachable(g, "a"))
	})

	t.Run("Diamond Visited Once", func(t *testing.T) {
		g := domain.NewGraph(
			domain.State{Name: "a", Transitions: []domain.Transition{
				{Event: "next", Next: "b"},
				{Event: "next", Next: "c"},
			}},
			domain.State{Name: "b", Transitions: []domain.Transition{{Event: "next", Next: "d"}}},
			domain.State{Name: "c", Transitions: []domain.Transition{{Event: "next", Next: "d"}}},
			domain.State{Name: "d"},
		)

		assert.Equal(t, []string{"a", "b", "d", "c"}, Reachable(g, "a"))
	})

	t.Run("Dangling Target Skipped", func(t *testing.T) {
		g := domain.NewGraph(
			domain.State{Name: "a", Transitions: []domain.Transition{
				{Event: "next", Next: "ghost"},
				{Event: "next", Next: "b"},
			}},
			domain.State{Name: "b"},
		)

		assert.Equal(t, []string{"a", "b"}, Reachable(g, "a"))
	})

	t.Run("Empty Or Unknown Entry", func(t *testing.T) {
		g := domain.NewGraph(domain.State{Name: "a"})

		assert.Empty(t, Reachable(g, ""))
		assert.Empty(t, Reachable(g, "ghost"))
	})
}
