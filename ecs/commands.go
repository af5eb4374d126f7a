package ecs

import "reflect"

// Commands buffers structural changes made by systems during a frame. The
// Scheduler flushes the buffer once every system has run.
type Commands struct {
	deletes []EntityId
	removes []componentChange
	adds    []componentChange
	spawns  [][]any
	defers  []func()

	deleted map[EntityId]struct{}
}

// componentChange targets one component of one entity. component is nil for
// removals.
type componentChange struct {
	entity    EntityId
	compType  reflect.Type
	component any
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues a new entity with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues the removal of an entity.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues setting a component on an existing entity.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, componentChange{entity: entity, component: component})
}

// RemoveComponent queues detaching a component type from an entity.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, componentChange{entity: entity, compType: compType})
}

// Defer queues fn to run after every structural change of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the buffer to storage. Deletes run first, then component
// removals, additions, spawns, and finally deferred functions. Changes aimed
// at an entity deleted in the same flush are dropped, as are changes aimed at
// entities that are already gone. Anything a deferred function queues stays
// in the buffer for the next flush.
func (c *Commands) Flush(storage *Storage) {
	if c.Len() == 0 {
		return
	}

	deletes, removes, adds, spawns, defers := c.deletes, c.removes, c.adds, c.spawns, c.defers
	c.deletes, c.removes, c.adds, c.spawns, c.defers = nil, nil, nil, nil, nil

	if c.deleted == nil {
		c.deleted = make(map[EntityId]struct{}, len(deletes))
	}

	for _, id := range deletes {
		storage.Delete(id)
		c.deleted[id] = struct{}{}
	}

	for _, change := range removes {
		if _, gone := c.deleted[change.entity]; !gone {
			storage.RemoveComponent(change.entity, change.compType)
		}
	}

	for _, change := range adds {
		if _, gone := c.deleted[change.entity]; !gone {
			_ = storage.AddComponent(change.entity, change.component)
		}
	}

	for _, components := range spawns {
		storage.Spawn(components...)
	}

	clear(c.deleted)

	for _, fn := range defers {
		fn()
	}
}
