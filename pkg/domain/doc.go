/*
Package domain contains the core model for studiograph: flow states,
transitions, the trigger-type enum, and the graph built from a raw Studio
flow definition.

It is kept pure (no I/O, no presentation) so traversal and rendering can be
exercised against in-memory graphs.

# Key Entities

  - State: a named node in the flow graph with a type tag and ordered
    outgoing transitions.
  - Transition: a directed edge keyed by event name and/or conditions,
    pointing at a target state name (which may dangle).
  - Graph: the name to State mapping plus the original definition order.
  - TriggerType: the closed set of external events that can start a flow.
*/
package domain
