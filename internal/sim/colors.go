package sim

import (
	"github.com/wesen/linkgraph/pkg/events"
	"github.com/wesen/linkgraph/pkg/graphmodel"
)

// ColorTable holds the display role of every live node as last reported
// by ColorChanged events. Renderers read it; only the color stage
// writes it.
type ColorTable struct {
	roles map[graphmodel.NodeID]events.Role
}

func newColorTable() *ColorTable {
	return &ColorTable{roles: make(map[graphmodel.NodeID]events.Role)}
}

// Role returns the node's role, RoleBase if none was recorded.
func (c *ColorTable) Role(id graphmodel.NodeID) events.Role {
	return c.roles[id]
}

// Len returns the number of tracked nodes.
func (c *ColorTable) Len() int {
	return len(c.roles)
}

// colorSync is the color stage. It applies role changes and forgets
// removed nodes.
type colorSync struct {
	table *ColorTable
}

func (c colorSync) EventTypes() []events.Type {
	return []events.Type{events.TypeColorChanged, events.TypeNodeRemoved}
}

func (c colorSync) HandleEvent(ev events.Event) {
	switch ev := ev.(type) {
	case events.ColorChanged:
		c.table.roles[ev.Node] = ev.Role
	case events.NodeRemoved:
		delete(c.table.roles, ev.Node)
	}
}
