package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEntityNotFound is returned when an id does not refer to a live entity.
	ErrEntityNotFound = errors.New("ecs: entity not found")
	// ErrComponentNotFound is returned when an entity lacks the requested component.
	ErrComponentNotFound = errors.New("ecs: component not found")
)

// Add attaches c to the entity, replacing any existing T.
func Add[T any](s *Storage, id EntityId, c T) error {
	slot, ok := s.slotOf(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	typedStorage[T](s, true).set(slot, c)
	s.version++
	return nil
}

// Get returns a pointer to the entity's T. Callers that cannot guarantee the
// component exists should check Has first.
func Get[T any](s *Storage, id EntityId) (*T, error) {
	slot, ok := s.slotOf(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	if storage := typedStorage[T](s, false); storage != nil {
		if ptr := storage.ptr(slot); ptr != nil {
			return ptr, nil
		}
	}
	return nil, fmt.Errorf("%w: %s on entity %d", ErrComponentNotFound, reflect.TypeFor[T](), id)
}

// MustGet is like Get but panics when the component is missing.
func MustGet[T any](s *Storage, id EntityId) *T {
	ptr, err := Get[T](s, id)
	if err != nil {
		panic(err)
	}
	return ptr
}

// Has reports whether the entity carries a T.
func Has[T any](s *Storage, id EntityId) bool {
	slot, ok := s.slotOf(id)
	if !ok {
		return false
	}
	storage := typedStorage[T](s, false)
	return storage != nil && storage.Has(slot)
}

// Remove detaches T from the entity.
func Remove[T any](s *Storage, id EntityId) bool {
	return s.RemoveComponent(id, reflect.TypeFor[T]())
}

// Count returns how many live entities carry a T.
func Count[T any](s *Storage) int {
	storage := typedStorage[T](s, false)
	if storage == nil {
		return 0
	}
	return storage.Len()
}

func typedStorage[T any](s *Storage, create bool) *genericComponentStorage[T] {
	storage := s.storageFor(reflect.TypeFor[T](), create)
	if storage == nil {
		return nil
	}
	return storage.(*genericComponentStorage[T])
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent fetches a T through a ComponentReader and panics if it is absent.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp := reader.GetComponent(entityId, reflect.TypeFor[T]())
	if comp == nil {
		panic(fmt.Errorf("%w: %s on entity %d", ErrComponentNotFound, reflect.TypeFor[T](), entityId))
	}
	return comp.(*T)
}
