package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each registered type is assigned a dense kind index; a Storage keeps one
// slot-indexed array per kind. Using a type that was never registered is a
// programming error and panics.
type ComponentRegistry struct {
	kinds     map[reflect.Type]int
	types     []reflect.Type
	factories []func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		kinds: make(map[reflect.Type]int),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.kinds[t]; ok {
		return
	}
	checkComponentType(t)

	r.kinds[t] = len(r.types)
	r.types = append(r.types, t)
	r.factories = append(r.factories, func() iComponentStorage {
		return &genericComponentStorage[T]{typ: t}
	})
}

// kindOf returns the kind index of a registered type, or -1.
func (r *ComponentRegistry) kindOf(t reflect.Type) int {
	kind, ok := r.kinds[t]
	if !ok {
		return -1
	}
	return kind
}

// Types returns every registered component type in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	return r.types
}

func checkComponentType(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("components cannot be pointers, maps, channels, interfaces, or functions: " + t.String())
	}
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of a specific type `T` in blocks,
// indexed by the owning entity's arena slot. Blocks are allocated individually
// so pointers handed out by Get stay valid while the storage grows.
type genericComponentStorage[T any] struct {
	typ    reflect.Type
	blocks []*[genericBlockSize]T
	filled [][genericBlockSize]bool
	count  int
}

// Set stores a component in the given slot, replacing any previous value.
// Returns false if item is neither a T nor a *T.
func (cs *genericComponentStorage[T]) Set(slot int, item any) bool {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return false
	}
	cs.set(slot, concreteItem)
	return true
}

func (cs *genericComponentStorage[T]) set(slot int, item T) {
	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	for blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		cs.filled = append(cs.filled, [genericBlockSize]bool{})
	}

	if !cs.filled[blockIdx][slotIdx] {
		cs.count++
	}
	cs.blocks[blockIdx][slotIdx] = item
	cs.filled[blockIdx][slotIdx] = true
}

// Get returns a pointer to the component at the given slot, or nil.
func (cs *genericComponentStorage[T]) Get(slot int) any {
	ptr := cs.ptr(slot)
	if ptr == nil {
		return nil
	}
	return ptr
}

func (cs *genericComponentStorage[T]) ptr(slot int) *T {
	if slot < 0 {
		return nil
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	if blockIdx >= len(cs.blocks) || !cs.filled[blockIdx][slotIdx] {
		return nil
	}

	return &cs.blocks[blockIdx][slotIdx]
}

// Delete marks a component slot as empty.
func (cs *genericComponentStorage[T]) Delete(slot int) {
	if slot < 0 {
		return
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		return
	}

	if cs.filled[blockIdx][slotIdx] {
		cs.filled[blockIdx][slotIdx] = false
		var zero T
		cs.blocks[blockIdx][slotIdx] = zero // Zero out the value
		cs.count--
	}
}

// Has checks if a component exists at the given slot.
func (cs *genericComponentStorage[T]) Has(slot int) bool {
	if slot < 0 {
		return false
	}

	blockIdx := slot / genericBlockSize
	slotIdx := slot % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		return false
	}

	return cs.filled[blockIdx][slotIdx]
}

// Len returns the number of filled slots.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

func (cs *genericComponentStorage[T]) Type() reflect.Type {
	return cs.typ
}

// Iter yields every filled slot in ascending order.
func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for blockIdx := range cs.filled {
			for slotIdx, filled := range cs.filled[blockIdx] {
				if filled && !yield(blockIdx*genericBlockSize+slotIdx) {
					return
				}
			}
		}
	}
}
