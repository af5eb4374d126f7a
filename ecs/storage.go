package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sync/atomic"

	"github.com/kamstrup/intmap"
)

// lastEntityId is shared by every Storage so ids stay unique across the
// process.
var lastEntityId atomic.Uint64

// Storage is the main ECS storage. Entities live in an arena of slots, and
// every registered component kind has one slot-indexed array. Entity ids map
// to slots through an integer map, so a deleted id simply stops resolving.
type Storage struct {
	registry *ComponentRegistry
	storages []iComponentStorage

	index     *intmap.Map[EntityId, int]
	slots     []EntityId
	freeSlots []int
	live      int

	// order holds ids in creation order. While an iteration is running,
	// deleted ids are left in place and skipped; the list is compacted once
	// the outermost iteration finishes.
	order     []EntityId
	iterating int
	stale     bool

	singletons     map[reflect.Type]*singletonEntry
	singletonOrder []reflect.Type

	// version changes on every structural mutation.
	version uint64
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		index:      intmap.New[EntityId, int](256),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Create allocates a new entity without components and returns its id.
func (s *Storage) Create() EntityId {
	id := EntityId(lastEntityId.Add(1))

	var slot int
	if n := len(s.freeSlots); n > 0 {
		slot = s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
		s.slots[slot] = id
	} else {
		slot = len(s.slots)
		s.slots = append(s.slots, id)
	}

	s.index.Put(id, slot)
	s.order = append(s.order, id)
	s.live++
	s.version++
	return id
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	id := s.Create()
	for _, comp := range components {
		s.setComponent(id, s.mustSlot(id), comp)
	}
	return id
}

// Delete removes all data related to the entity ID. It reports whether the
// entity was alive. Deleting during Iter is allowed; the deleted entity is
// not yielded afterwards.
func (s *Storage) Delete(id EntityId) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}

	for _, storage := range s.storages {
		if storage != nil {
			storage.Delete(slot)
		}
	}

	s.index.Del(id)
	s.slots[slot] = 0
	s.freeSlots = append(s.freeSlots, slot)
	s.live--
	s.version++

	if s.iterating > 0 {
		s.stale = true
	} else if idx, found := slices.BinarySearch(s.order, id); found {
		s.order = slices.Delete(s.order, idx, idx+1)
	}
	return true
}

// Alive reports whether the id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.index.Get(id)
	return ok
}

// Version returns a counter that changes whenever an entity is created or
// deleted or a component is added or removed. Tooling uses it to invalidate
// caches.
func (s *Storage) Version() uint64 {
	return s.version
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return s.live
}

// Iter yields live entity ids in creation order. Entities created while the
// iteration runs are not visited by it.
func (s *Storage) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		s.iterating++
		defer s.endIteration()

		n := len(s.order)
		for i := 0; i < n; i++ {
			id := s.order[i]
			if !s.Alive(id) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

func (s *Storage) endIteration() {
	s.iterating--
	if s.iterating == 0 && s.stale {
		s.order = slices.DeleteFunc(s.order, func(id EntityId) bool {
			return !s.Alive(id)
		})
		s.stale = false
	}
}

// AddComponent attaches the component to the entity, replacing an existing
// component of the same type.
func (s *Storage) AddComponent(id EntityId, component any) error {
	slot, ok := s.index.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	s.setComponent(id, slot, component)
	return nil
}

// RemoveComponent detaches a component type from the entity. It reports
// whether the component was present.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}
	storage := s.storageFor(compType, false)
	if storage == nil || !storage.Has(slot) {
		return false
	}
	storage.Delete(slot)
	s.version++
	return true
}

// GetComponent returns a pointer to the component for the given entity ID and
// component type, or nil when either is missing.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	storage := s.storageFor(compType, false)
	if storage == nil {
		return nil
	}
	return storage.Get(slot)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}
	storage := s.storageFor(compType, false)
	return storage != nil && storage.Has(slot)
}

// ComponentTypes returns the types attached to the entity in registration order.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	var types []reflect.Type
	for _, storage := range s.storages {
		if storage != nil && storage.Has(slot) {
			types = append(types, storage.Type())
		}
	}
	return types
}

func (s *Storage) setComponent(id EntityId, slot int, component any) {
	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("cannot add a nil component")
	}
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	storage := s.storageFor(compType, true)
	if !storage.Set(slot, component) {
		panic(fmt.Sprintf("component %s rejected by storage for entity %d", compType, id))
	}
	s.version++
}

// storageFor returns the storage of a component type. Unregistered types
// panic when create is set and return nil otherwise.
func (s *Storage) storageFor(compType reflect.Type, create bool) iComponentStorage {
	kind := s.registry.kindOf(compType)
	if kind < 0 {
		if create {
			panic("component type " + compType.String() + " not registered")
		}
		return nil
	}

	if kind < len(s.storages) && s.storages[kind] != nil {
		return s.storages[kind]
	}
	if !create {
		return nil
	}

	for kind >= len(s.storages) {
		s.storages = append(s.storages, nil)
	}
	s.storages[kind] = s.registry.factories[kind]()
	return s.storages[kind]
}

func (s *Storage) mustSlot(id EntityId) int {
	slot, ok := s.index.Get(id)
	if !ok {
		panic(fmt.Sprintf("entity %d not found", id))
	}
	return slot
}

// slotOf resolves an entity id to its arena slot.
func (s *Storage) slotOf(id EntityId) (int, bool) {
	return s.index.Get(id)
}
